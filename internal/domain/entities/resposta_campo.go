package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RespostaCampo é a resposta a um campo dentro de uma resposta de formulário.
// O valor é gravado na coluna correspondente ao tipo do campo.
type RespostaCampo struct {
	ID                   string `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	RespostaFormularioID string `json:"resposta_formulario_id" gorm:"column:resposta_formulario_id;type:uuid;uniqueIndex:uq_respostas_campo_resposta_campo"`
	CampoFormularioID    string `json:"campo_formulario_id" gorm:"column:campo_formulario_id;type:uuid;uniqueIndex:uq_respostas_campo_resposta_campo"`

	RespostaFormulario *RespostaFormulario `json:"resposta_formulario,omitempty" gorm:"foreignKey:RespostaFormularioID"`
	CampoFormulario    *CampoFormulario    `json:"campo_formulario,omitempty" gorm:"foreignKey:CampoFormularioID"`

	// Valores de resposta
	ValorTexto    *string        `json:"valor_texto,omitempty" gorm:"column:valor_texto;type:text"`
	ValorNumerico *float64       `json:"valor_numerico,omitempty" gorm:"column:valor_numerico;type:decimal(15,4)"`
	ValorData     *time.Time     `json:"valor_data,omitempty" gorm:"column:valor_data"`
	ValorBooleano *bool          `json:"valor_booleano,omitempty" gorm:"column:valor_booleano"`
	ValorJSON     datatypes.JSON `json:"valor_json,omitempty" gorm:"column:valor_json;type:jsonb"`

	// Alternativas selecionadas (para campos de seleção)
	AlternativasSelecionadasIDs datatypes.JSON `json:"alternativas_selecionadas_ids,omitempty" gorm:"column:alternativas_selecionadas_ids;type:jsonb"`
	TextoAdicionalAlternativa   string         `json:"texto_adicional_alternativa,omitempty" gorm:"column:texto_adicional_alternativa;type:text"`

	// Validação
	Validado       bool           `json:"validado" gorm:"column:validado;default:false"`
	ErrosValidacao datatypes.JSON `json:"erros_validacao,omitempty" gorm:"column:erros_validacao;type:jsonb"`

	// Metadados da resposta
	DataResposta          *time.Time `json:"data_resposta,omitempty" gorm:"column:data_resposta"`
	TempoRespostaSegundos *int       `json:"tempo_resposta_segundos,omitempty" gorm:"column:tempo_resposta_segundos"`
	Editado               bool       `json:"editado" gorm:"column:editado;default:false"`
	DataUltimaEdicao      *time.Time `json:"data_ultima_edicao,omitempty" gorm:"column:data_ultima_edicao"`

	// Auditoria
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
	CreatedBy string    `json:"created_by,omitempty" gorm:"column:created_by;size:100"`
	UpdatedBy string    `json:"updated_by,omitempty" gorm:"column:updated_by;size:100"`
}

func (RespostaCampo) TableName() string {
	return "respostas_campo"
}

func (r *RespostaCampo) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Preenchida informa se a resposta carrega algum valor não nulo
func (r *RespostaCampo) Preenchida() bool {
	if r.ValorTexto != nil && *r.ValorTexto != "" {
		return true
	}
	if r.ValorNumerico != nil || r.ValorData != nil || r.ValorBooleano != nil {
		return true
	}
	if len(r.ValorJSON) > 0 && string(r.ValorJSON) != "null" {
		return true
	}
	if len(r.AlternativasSelecionadasIDs) > 0 && string(r.AlternativasSelecionadasIDs) != "null" && string(r.AlternativasSelecionadasIDs) != "[]" {
		return true
	}
	return false
}

// ValorComoTexto devolve a representação textual do valor preenchido,
// usada na validação de regex e limites de tamanho.
func (r *RespostaCampo) ValorComoTexto() string {
	if r.ValorTexto != nil {
		return *r.ValorTexto
	}
	return ""
}
