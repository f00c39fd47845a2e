package dto

import (
	"time"

	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"gorm.io/datatypes"
)

type CreateRespostaFormularioDTO struct {
	FormularioID           string  `json:"formulario_id" validate:"required,uuid"`
	PacienteID             *string `json:"paciente_id,omitempty" validate:"omitempty,uuid"`
	UsuarioPreenchimentoID *string `json:"usuario_preenchimento_id,omitempty" validate:"omitempty,uuid"`

	OrigemResposta string  `json:"origem_resposta,omitempty" validate:"omitempty,max=50"`
	OrdemServicoID *string `json:"ordem_servico_id,omitempty" validate:"omitempty,uuid"`
	AtendimentoID  *string `json:"atendimento_id,omitempty" validate:"omitempty,uuid"`

	Metadados   datatypes.JSON `json:"metadados,omitempty"`
	Observacoes string         `json:"observacoes,omitempty"`

	// Preenchido pelo middleware de autenticação, nunca pelo corpo
	CreatedBy string `json:"-"`
}

func (d *CreateRespostaFormularioDTO) ToEntity() *entities.RespostaFormulario {
	agora := time.Now()
	return &entities.RespostaFormulario{
		FormularioID:            d.FormularioID,
		PacienteID:              d.PacienteID,
		UsuarioPreenchimentoID:  d.UsuarioPreenchimentoID,
		DataInicioPreenchimento: &agora,
		Status:                  entities.StatusRespostaRascunho,
		OrigemResposta:          d.OrigemResposta,
		OrdemServicoID:          d.OrdemServicoID,
		AtendimentoID:           d.AtendimentoID,
		Metadados:               d.Metadados,
		Observacoes:             d.Observacoes,
		CreatedBy:               d.CreatedBy,
	}
}

type UpdateRespostaFormularioDTO struct {
	PacienteID             *string `json:"paciente_id,omitempty" validate:"omitempty,uuid"`
	UsuarioPreenchimentoID *string `json:"usuario_preenchimento_id,omitempty" validate:"omitempty,uuid"`

	TempoPreenchimentoSegundos *int `json:"tempo_preenchimento_segundos,omitempty" validate:"omitempty,min=0"`

	ObservacoesValidacao *string `json:"observacoes_validacao,omitempty"`

	OrigemResposta *string `json:"origem_resposta,omitempty" validate:"omitempty,max=50"`
	OrdemServicoID *string `json:"ordem_servico_id,omitempty" validate:"omitempty,uuid"`
	AtendimentoID  *string `json:"atendimento_id,omitempty" validate:"omitempty,uuid"`

	Metadados   datatypes.JSON `json:"metadados,omitempty"`
	Observacoes *string        `json:"observacoes,omitempty"`

	UpdatedBy string `json:"-"`
}

func (d *UpdateRespostaFormularioDTO) ApplyTo(resposta *entities.RespostaFormulario) {
	if d.PacienteID != nil {
		resposta.PacienteID = d.PacienteID
	}
	if d.UsuarioPreenchimentoID != nil {
		resposta.UsuarioPreenchimentoID = d.UsuarioPreenchimentoID
	}
	if d.TempoPreenchimentoSegundos != nil {
		resposta.TempoPreenchimentoSegundos = d.TempoPreenchimentoSegundos
	}
	if d.ObservacoesValidacao != nil {
		resposta.ObservacoesValidacao = *d.ObservacoesValidacao
	}
	if d.OrigemResposta != nil {
		resposta.OrigemResposta = *d.OrigemResposta
	}
	if d.OrdemServicoID != nil {
		resposta.OrdemServicoID = d.OrdemServicoID
	}
	if d.AtendimentoID != nil {
		resposta.AtendimentoID = d.AtendimentoID
	}
	if d.Metadados != nil {
		resposta.Metadados = d.Metadados
	}
	if d.Observacoes != nil {
		resposta.Observacoes = *d.Observacoes
	}
	if d.UpdatedBy != "" {
		resposta.UpdatedBy = d.UpdatedBy
	}
	agora := time.Now()
	resposta.DataUltimaEdicao = &agora
}

// AssinarRespostaDTO carrega a assinatura produzida pelo assinador externo.
type AssinarRespostaDTO struct {
	HashAssinatura     string `json:"hash_assinatura" validate:"required"`
	CertificadoDigital string `json:"certificado_digital,omitempty"`
}

type UpdateStatusRespostaDTO struct {
	Status      entities.StatusResposta `json:"status" validate:"required,oneof=rascunho em_preenchimento concluido revisao aprovado rejeitado cancelado"`
	Observacoes string                  `json:"observacoes,omitempty"`
}

type DuplicarRespostaDTO struct {
	NovoPacienteID string `json:"novo_paciente_id,omitempty" validate:"omitempty,uuid"`
}
