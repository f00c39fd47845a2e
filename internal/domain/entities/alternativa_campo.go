package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StatusAlternativa string

const (
	StatusAlternativaAtiva   StatusAlternativa = "ativa"
	StatusAlternativaInativa StatusAlternativa = "inativa"
)

// AlternativaCampo é uma opção selecionável de um campo de seleção.
// Código e valor são únicos dentro do campo dono.
type AlternativaCampo struct {
	ID                string `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	CampoFormularioID string `json:"campo_formulario_id" gorm:"column:campo_formulario_id;type:uuid;uniqueIndex:uq_alternativas_campo_codigo;uniqueIndex:uq_alternativas_campo_valor;index:idx_alternativas_campo_ordem"`

	CampoFormulario *CampoFormulario `json:"campo_formulario,omitempty" gorm:"foreignKey:CampoFormularioID"`

	CodigoAlternativa string `json:"codigo_alternativa" gorm:"column:codigo_alternativa;size:50;uniqueIndex:uq_alternativas_campo_codigo"`
	TextoAlternativa  string `json:"texto_alternativa" gorm:"column:texto_alternativa;type:text"`
	Descricao         string `json:"descricao,omitempty" gorm:"column:descricao;type:text"`
	Valor             string `json:"valor" gorm:"column:valor;size:255;uniqueIndex:uq_alternativas_campo_valor"`
	Ordem             int    `json:"ordem" gorm:"column:ordem;default:0;index:idx_alternativas_campo_ordem"`

	// Apresentação
	Icone     string `json:"icone,omitempty" gorm:"column:icone;size:50"`
	Cor       string `json:"cor,omitempty" gorm:"column:cor;size:50"`
	ImagemURL string `json:"imagem_url,omitempty" gorm:"column:imagem_url;size:500"`

	// Controle e lógica
	SelecionadoPadrao     bool `json:"selecionado_padrao" gorm:"column:selecionado_padrao;default:false"`
	PermiteTextoAdicional bool `json:"permite_texto_adicional" gorm:"column:permite_texto_adicional;default:false"`
	Exclusiva             bool `json:"exclusiva" gorm:"column:exclusiva;default:false"`

	// Pontuação e peso (para questionários e avaliações)
	Pontuacao *float64 `json:"pontuacao,omitempty" gorm:"column:pontuacao;type:decimal(10,2)"`
	Peso      float64  `json:"peso" gorm:"column:peso;type:decimal(5,2);default:1.0"`

	// Ações ao selecionar (metadados opacos para o renderizador)
	CamposMostrar      datatypes.JSON `json:"campos_mostrar,omitempty" gorm:"column:campos_mostrar;type:jsonb"`
	CamposOcultar      datatypes.JSON `json:"campos_ocultar,omitempty" gorm:"column:campos_ocultar;type:jsonb"`
	CamposObrigatorios datatypes.JSON `json:"campos_obrigatorios,omitempty" gorm:"column:campos_obrigatorios;type:jsonb"`

	// Integração
	CodigoExterno string `json:"codigo_externo,omitempty" gorm:"column:codigo_externo;size:255"`
	Categoria     string `json:"categoria,omitempty" gorm:"column:categoria;size:100"`

	// Status e controle
	Status           StatusAlternativa `json:"status" gorm:"column:status;size:30;default:ativa"`
	Ativo            bool              `json:"ativo" gorm:"column:ativo;default:true"`
	VisivelImpressao bool              `json:"visivel_impressao" gorm:"column:visivel_impressao;default:true"`
	VisivelPortal    bool              `json:"visivel_portal" gorm:"column:visivel_portal;default:true"`

	Metadados   datatypes.JSON `json:"metadados,omitempty" gorm:"column:metadados;type:jsonb"`
	Observacoes string         `json:"observacoes,omitempty" gorm:"column:observacoes;type:text"`

	// Auditoria
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
	CreatedBy string    `json:"created_by,omitempty" gorm:"column:created_by;size:100"`
	UpdatedBy string    `json:"updated_by,omitempty" gorm:"column:updated_by;size:100"`
}

func (AlternativaCampo) TableName() string {
	return "alternativas_campo"
}

func (a *AlternativaCampo) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
