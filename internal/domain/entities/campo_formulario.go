package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TipoCampoPadrao separa campos fixos do sistema dos criados pelo usuário
type TipoCampoPadrao string

const (
	TipoCampoPadraoSistema     TipoCampoPadrao = "sistema"
	TipoCampoPadraoCustomizado TipoCampoPadrao = "customizado"
)

// TipoCampo enumera os tipos de campo suportados pelo renderizador
type TipoCampo string

const (
	// Campos de texto
	TipoCampoTexto      TipoCampo = "texto"
	TipoCampoTextoLongo TipoCampo = "texto_longo"
	TipoCampoTextoRico  TipoCampo = "texto_rico"
	TipoCampoEmail      TipoCampo = "email"
	TipoCampoURL        TipoCampo = "url"
	TipoCampoTelefone   TipoCampo = "telefone"
	TipoCampoCPF        TipoCampo = "cpf"
	TipoCampoCNPJ       TipoCampo = "cnpj"
	TipoCampoCEP        TipoCampo = "cep"

	// Campos numéricos
	TipoCampoNumero      TipoCampo = "numero"
	TipoCampoDecimal     TipoCampo = "decimal"
	TipoCampoMoeda       TipoCampo = "moeda"
	TipoCampoPorcentagem TipoCampo = "porcentagem"

	// Campos de data/hora
	TipoCampoData        TipoCampo = "data"
	TipoCampoHora        TipoCampo = "hora"
	TipoCampoDataHora    TipoCampo = "data_hora"
	TipoCampoPeriodoData TipoCampo = "periodo_data"

	// Campos de seleção
	TipoCampoSelect          TipoCampo = "select"
	TipoCampoRadio           TipoCampo = "radio"
	TipoCampoCheckbox        TipoCampo = "checkbox"
	TipoCampoSwitch          TipoCampo = "switch"
	TipoCampoMultiplaEscolha TipoCampo = "multipla_escolha"

	// Campos especiais
	TipoCampoArquivo      TipoCampo = "arquivo"
	TipoCampoImagem       TipoCampo = "imagem"
	TipoCampoAssinatura   TipoCampo = "assinatura"
	TipoCampoLocalizacao  TipoCampo = "localizacao"
	TipoCampoCodigoBarras TipoCampo = "codigo_barras"
	TipoCampoQRCode       TipoCampo = "qr_code"

	// Campos de layout
	TipoCampoSecao     TipoCampo = "secao"
	TipoCampoSeparador TipoCampo = "separador"
	TipoCampoTitulo    TipoCampo = "titulo"
	TipoCampoParagrafo TipoCampo = "paragrafo"
	TipoCampoHTML      TipoCampo = "html"

	// Campos complexos
	TipoCampoTabela      TipoCampo = "tabela"
	TipoCampoLista       TipoCampo = "lista"
	TipoCampoMatriz      TipoCampo = "matriz"
	TipoCampoFormula     TipoCampo = "formula"
	TipoCampoCondicional TipoCampo = "condicional"
)

// PermiteAlternativas indica se o tipo de campo aceita alternativas vinculadas
func (t TipoCampo) PermiteAlternativas() bool {
	switch t {
	case TipoCampoSelect, TipoCampoRadio, TipoCampoCheckbox, TipoCampoMultiplaEscolha:
		return true
	}
	return false
}

type StatusCampo string

const (
	StatusCampoAtivo   StatusCampo = "ativo"
	StatusCampoInativo StatusCampo = "inativo"
	StatusCampoOculto  StatusCampo = "oculto"
)

// CampoFormulario define um campo de um formulário: tipo, validações,
// aparência e lógica condicional. As condições de visibilidade/obrigatoriedade
// e a fórmula de cálculo são metadados opacos interpretados pelo renderizador.
type CampoFormulario struct {
	ID           string `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	FormularioID string `json:"formulario_id" gorm:"column:formulario_id;type:uuid;uniqueIndex:uq_campos_formulario_codigo;index:idx_campos_formulario_ordem"`

	Formulario *Formulario `json:"formulario,omitempty" gorm:"foreignKey:FormularioID"`

	TipoCampoPadrao TipoCampoPadrao `json:"tipo_campo_padrao" gorm:"column:tipo_campo_padrao;size:30;default:customizado"`
	CodigoCampo     string          `json:"codigo_campo" gorm:"column:codigo_campo;size:50;uniqueIndex:uq_campos_formulario_codigo"`
	NomeCampo       string          `json:"nome_campo" gorm:"column:nome_campo;size:255"`
	Descricao       string          `json:"descricao,omitempty" gorm:"column:descricao;type:text"`
	Placeholder     string          `json:"placeholder,omitempty" gorm:"column:placeholder;type:text"`
	TextoAjuda      string          `json:"texto_ajuda,omitempty" gorm:"column:texto_ajuda;type:text"`
	TipoCampo       TipoCampo       `json:"tipo_campo" gorm:"column:tipo_campo;size:50;index:idx_campos_tipo_campo"`
	Ordem           int             `json:"ordem" gorm:"column:ordem;default:0;index:idx_campos_formulario_ordem"`

	// Validações
	Obrigatorio    bool     `json:"obrigatorio" gorm:"column:obrigatorio;default:false"`
	SomenteLeitura bool     `json:"somente_leitura" gorm:"column:somente_leitura;default:false"`
	TamanhoMinimo  *int     `json:"tamanho_minimo,omitempty" gorm:"column:tamanho_minimo"`
	TamanhoMaximo  *int     `json:"tamanho_maximo,omitempty" gorm:"column:tamanho_maximo"`
	ValorMinimo    *float64 `json:"valor_minimo,omitempty" gorm:"column:valor_minimo;type:decimal(15,2)"`
	ValorMaximo    *float64 `json:"valor_maximo,omitempty" gorm:"column:valor_maximo;type:decimal(15,2)"`
	Mascara        string   `json:"mascara,omitempty" gorm:"column:mascara;size:255"`
	Regex          string   `json:"regex,omitempty" gorm:"column:regex;size:500"`
	MensagemErro   string   `json:"mensagem_erro,omitempty" gorm:"column:mensagem_erro;type:text"`

	// Valores padrão e seleção
	ValorPadrao            string `json:"valor_padrao,omitempty" gorm:"column:valor_padrao;type:text"`
	PermiteMultiplaSelecao bool   `json:"permite_multipla_selecao" gorm:"column:permite_multipla_selecao;default:false"`
	PermiteOutro           bool   `json:"permite_outro" gorm:"column:permite_outro;default:false"`

	// Lógica condicional (metadados opacos, avaliados pelo cliente)
	CondicoesVisibilidade    datatypes.JSON `json:"condicoes_visibilidade,omitempty" gorm:"column:condicoes_visibilidade;type:jsonb"`
	CondicoesObrigatoriedade datatypes.JSON `json:"condicoes_obrigatoriedade,omitempty" gorm:"column:condicoes_obrigatoriedade;type:jsonb"`
	CondicoesValidacao       datatypes.JSON `json:"condicoes_validacao,omitempty" gorm:"column:condicoes_validacao;type:jsonb"`
	FormulaCalculo           string         `json:"formula_calculo,omitempty" gorm:"column:formula_calculo;type:text"`
	CamposDependentes        datatypes.JSON `json:"campos_dependentes,omitempty" gorm:"column:campos_dependentes;type:jsonb"`
	DependeDe                datatypes.JSON `json:"depende_de,omitempty" gorm:"column:depende_de;type:jsonb"`

	// Unidades de medida (para campos de exames)
	UnidadeMedida     string         `json:"unidade_medida,omitempty" gorm:"column:unidade_medida;size:50"`
	ValoresReferencia datatypes.JSON `json:"valores_referencia,omitempty" gorm:"column:valores_referencia;type:jsonb"`

	// Status e controle
	Status           StatusCampo `json:"status" gorm:"column:status;size:30;default:ativo"`
	Ativo            bool        `json:"ativo" gorm:"column:ativo;default:true"`
	VisivelImpressao bool        `json:"visivel_impressao" gorm:"column:visivel_impressao;default:true"`
	VisivelPortal    bool        `json:"visivel_portal" gorm:"column:visivel_portal;default:true"`

	// Relações
	Alternativas []AlternativaCampo `json:"alternativas,omitempty" gorm:"foreignKey:CampoFormularioID;constraint:OnDelete:CASCADE"`

	Metadados   datatypes.JSON `json:"metadados,omitempty" gorm:"column:metadados;type:jsonb"`
	Observacoes string         `json:"observacoes,omitempty" gorm:"column:observacoes;type:text"`

	// Auditoria
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
	CreatedBy string    `json:"created_by,omitempty" gorm:"column:created_by;size:100"`
	UpdatedBy string    `json:"updated_by,omitempty" gorm:"column:updated_by;size:100"`
}

func (CampoFormulario) TableName() string {
	return "campos_formulario"
}

func (c *CampoFormulario) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
