package dto

import (
	"time"

	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"gorm.io/datatypes"
)

// ResponderCampoDTO grava (ou regrava) o valor de um campo dentro de uma resposta.
type ResponderCampoDTO struct {
	CampoFormularioID string `json:"campo_formulario_id" validate:"required,uuid"`

	ValorTexto    *string        `json:"valor_texto,omitempty"`
	ValorNumerico *float64       `json:"valor_numerico,omitempty"`
	ValorData     *time.Time     `json:"valor_data,omitempty"`
	ValorBooleano *bool          `json:"valor_booleano,omitempty"`
	ValorJSON     datatypes.JSON `json:"valor_json,omitempty"`

	AlternativasSelecionadasIDs datatypes.JSON `json:"alternativas_selecionadas_ids,omitempty"`
	TextoAdicionalAlternativa   string         `json:"texto_adicional_alternativa,omitempty"`

	TempoRespostaSegundos *int `json:"tempo_resposta_segundos,omitempty" validate:"omitempty,min=0"`

	// Preenchido pelo middleware de autenticação, nunca pelo corpo
	CreatedBy string `json:"-"`
}

func (d *ResponderCampoDTO) ToEntity(respostaFormularioID string) *entities.RespostaCampo {
	agora := time.Now()
	return &entities.RespostaCampo{
		RespostaFormularioID:        respostaFormularioID,
		CampoFormularioID:           d.CampoFormularioID,
		ValorTexto:                  d.ValorTexto,
		ValorNumerico:               d.ValorNumerico,
		ValorData:                   d.ValorData,
		ValorBooleano:               d.ValorBooleano,
		ValorJSON:                   d.ValorJSON,
		AlternativasSelecionadasIDs: d.AlternativasSelecionadasIDs,
		TextoAdicionalAlternativa:   d.TextoAdicionalAlternativa,
		DataResposta:                &agora,
		TempoRespostaSegundos:       d.TempoRespostaSegundos,
		CreatedBy:                   d.CreatedBy,
	}
}

// ApplyTo regrava os valores em uma resposta existente marcando a edição.
func (d *ResponderCampoDTO) ApplyTo(resposta *entities.RespostaCampo) {
	agora := time.Now()
	resposta.ValorTexto = d.ValorTexto
	resposta.ValorNumerico = d.ValorNumerico
	resposta.ValorData = d.ValorData
	resposta.ValorBooleano = d.ValorBooleano
	resposta.ValorJSON = d.ValorJSON
	resposta.AlternativasSelecionadasIDs = d.AlternativasSelecionadasIDs
	resposta.TextoAdicionalAlternativa = d.TextoAdicionalAlternativa
	if d.TempoRespostaSegundos != nil {
		resposta.TempoRespostaSegundos = d.TempoRespostaSegundos
	}
	resposta.Editado = true
	resposta.DataUltimaEdicao = &agora
	if d.CreatedBy != "" {
		resposta.UpdatedBy = d.CreatedBy
	}
}
