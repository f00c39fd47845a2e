package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TipoFormulario classifica o propósito do formulário
type TipoFormulario string

const (
	TipoFormularioExame             TipoFormulario = "exame"
	TipoFormularioAnamnese          TipoFormulario = "anamnese"
	TipoFormularioPrescricao        TipoFormulario = "prescricao"
	TipoFormularioLaudo             TipoFormulario = "laudo"
	TipoFormularioReceita           TipoFormulario = "receita"
	TipoFormularioAtestado          TipoFormulario = "atestado"
	TipoFormularioDeclaracao        TipoFormulario = "declaracao"
	TipoFormularioQuestionario      TipoFormulario = "questionario"
	TipoFormularioFichaClinica      TipoFormulario = "ficha_clinica"
	TipoFormularioEvolucao          TipoFormulario = "evolucao"
	TipoFormularioTermoConsentimento TipoFormulario = "termo_consentimento"
	TipoFormularioCustomizado       TipoFormulario = "customizado"
)

type StatusFormulario string

const (
	StatusFormularioRascunho  StatusFormulario = "rascunho"
	StatusFormularioPublicado StatusFormulario = "publicado"
	StatusFormularioArquivado StatusFormulario = "arquivado"
	StatusFormularioEmRevisao StatusFormulario = "em_revisao"
)

type CategoriaFormulario string

const (
	CategoriaFormularioClinico        CategoriaFormulario = "clinico"
	CategoriaFormularioAdministrativo CategoriaFormulario = "administrativo"
	CategoriaFormularioFinanceiro     CategoriaFormulario = "financeiro"
	CategoriaFormularioOperacional    CategoriaFormulario = "operacional"
	CategoriaFormularioQualidade      CategoriaFormulario = "qualidade"
	CategoriaFormularioPesquisa       CategoriaFormulario = "pesquisa"
)

// Formulario representa um template de formulário versionável.
// Os campos pertencem ao formulário e são ordenados por `ordem`.
type Formulario struct {
	ID               string              `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	CodigoFormulario string              `json:"codigo_formulario" gorm:"column:codigo_formulario;size:50;uniqueIndex"`
	NomeFormulario   string              `json:"nome_formulario" gorm:"column:nome_formulario;size:255"`
	Descricao        string              `json:"descricao,omitempty" gorm:"column:descricao;type:text"`
	Tipo             TipoFormulario      `json:"tipo" gorm:"column:tipo;size:50;default:customizado;index:idx_formularios_tipo_status"`
	Categoria        CategoriaFormulario `json:"categoria,omitempty" gorm:"column:categoria;size:50"`

	// Configurações do formulário
	Versao           int              `json:"versao" gorm:"column:versao;default:1"`
	Status           StatusFormulario `json:"status" gorm:"column:status;size:30;default:rascunho;index:idx_formularios_tipo_status"`
	Ativo            bool             `json:"ativo" gorm:"column:ativo;default:true"`
	Obrigatorio      bool             `json:"obrigatorio" gorm:"column:obrigatorio;default:false"`
	PermiteEdicao    bool             `json:"permite_edicao" gorm:"column:permite_edicao;default:true"`
	RequerAssinatura bool             `json:"requer_assinatura" gorm:"column:requer_assinatura;default:false"`
	PermiteAnexos    bool             `json:"permite_anexos" gorm:"column:permite_anexos;default:false"`

	// Versionamento: versões derivadas apontam para o formulário original
	FormularioPaiID *string `json:"formulario_pai_id,omitempty" gorm:"column:formulario_pai_id;type:uuid"`

	// Relações
	Campos    []CampoFormulario    `json:"campos,omitempty" gorm:"foreignKey:FormularioID;constraint:OnDelete:CASCADE"`
	Respostas []RespostaFormulario `json:"respostas,omitempty" gorm:"foreignKey:FormularioID"`

	Metadados   datatypes.JSON `json:"metadados,omitempty" gorm:"column:metadados;type:jsonb"`
	Observacoes string         `json:"observacoes,omitempty" gorm:"column:observacoes;type:text"`

	// Auditoria
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
	CreatedBy string    `json:"created_by,omitempty" gorm:"column:created_by;size:100"`
	UpdatedBy string    `json:"updated_by,omitempty" gorm:"column:updated_by;size:100"`
}

func (Formulario) TableName() string {
	return "formularios"
}

func (f *Formulario) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
