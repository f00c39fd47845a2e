package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StatusResposta é o ciclo de vida de uma resposta:
// rascunho → em_preenchimento → concluido → revisao → aprovado | rejeitado,
// com cancelado alcançável a partir de qualquer estado não terminal.
type StatusResposta string

const (
	StatusRespostaRascunho        StatusResposta = "rascunho"
	StatusRespostaEmPreenchimento StatusResposta = "em_preenchimento"
	StatusRespostaConcluido       StatusResposta = "concluido"
	StatusRespostaRevisao         StatusResposta = "revisao"
	StatusRespostaAprovado        StatusResposta = "aprovado"
	StatusRespostaRejeitado       StatusResposta = "rejeitado"
	StatusRespostaCancelado       StatusResposta = "cancelado"
)

// RespostaFormulario é uma instância preenchida de um formulário para um
// paciente/atendimento, com as respostas por campo e o estado do ciclo de vida.
type RespostaFormulario struct {
	ID             string `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	CodigoResposta string `json:"codigo_resposta" gorm:"column:codigo_resposta;size:50;uniqueIndex"`
	FormularioID   string `json:"formulario_id" gorm:"column:formulario_id;type:uuid;index:idx_respostas_formulario_paciente"`

	Formulario *Formulario `json:"formulario,omitempty" gorm:"foreignKey:FormularioID"`

	PacienteID *string   `json:"paciente_id,omitempty" gorm:"column:paciente_id;type:uuid;index:idx_respostas_formulario_paciente"`
	Paciente   *Paciente `json:"paciente,omitempty" gorm:"foreignKey:PacienteID"`

	UsuarioPreenchimentoID *string  `json:"usuario_preenchimento_id,omitempty" gorm:"column:usuario_preenchimento_id;type:uuid"`
	UsuarioPreenchimento   *Usuario `json:"usuario_preenchimento,omitempty" gorm:"foreignKey:UsuarioPreenchimentoID"`

	// Informações temporais
	DataInicioPreenchimento    *time.Time `json:"data_inicio_preenchimento,omitempty" gorm:"column:data_inicio_preenchimento"`
	DataFimPreenchimento       *time.Time `json:"data_fim_preenchimento,omitempty" gorm:"column:data_fim_preenchimento"`
	TempoPreenchimentoSegundos *int       `json:"tempo_preenchimento_segundos,omitempty" gorm:"column:tempo_preenchimento_segundos"`
	DataUltimaEdicao           *time.Time `json:"data_ultima_edicao,omitempty" gorm:"column:data_ultima_edicao"`

	// Status e progresso
	Status             StatusResposta `json:"status" gorm:"column:status;size:30;default:rascunho;index:idx_respostas_status_created"`
	PercentualCompleto float64        `json:"percentual_completo" gorm:"column:percentual_completo;type:decimal(5,2);default:0"`
	CamposRespondidos  int            `json:"campos_respondidos" gorm:"column:campos_respondidos;default:0"`
	TotalCampos        int            `json:"total_campos" gorm:"column:total_campos;default:0"`
	VersaoFormulario   int            `json:"versao_formulario" gorm:"column:versao_formulario;default:1"`

	// Validação e revisão
	Validado             bool       `json:"validado" gorm:"column:validado;default:false"`
	DataValidacao        *time.Time `json:"data_validacao,omitempty" gorm:"column:data_validacao"`
	UsuarioValidacaoID   *string    `json:"usuario_validacao_id,omitempty" gorm:"column:usuario_validacao_id;type:uuid"`
	ObservacoesValidacao string     `json:"observacoes_validacao,omitempty" gorm:"column:observacoes_validacao;type:text"`

	// Assinatura digital: hash e certificado fornecidos pelo assinador externo
	Assinado          bool       `json:"assinado" gorm:"column:assinado;default:false"`
	DataAssinatura    *time.Time `json:"data_assinatura,omitempty" gorm:"column:data_assinatura"`
	AssinaturaDigital string     `json:"assinatura_digital,omitempty" gorm:"column:assinatura_digital;type:text"`
	IPAssinatura      string     `json:"ip_assinatura,omitempty" gorm:"column:ip_assinatura;size:100"`

	// Pontuação (para questionários)
	PontuacaoTotal  *float64 `json:"pontuacao_total,omitempty" gorm:"column:pontuacao_total;type:decimal(10,2)"`
	PontuacaoMaxima *float64 `json:"pontuacao_maxima,omitempty" gorm:"column:pontuacao_maxima;type:decimal(10,2)"`

	// Origem e referências externas
	OrigemResposta string  `json:"origem_resposta,omitempty" gorm:"column:origem_resposta;size:50"`
	OrdemServicoID *string `json:"ordem_servico_id,omitempty" gorm:"column:ordem_servico_id;type:uuid"`
	AtendimentoID  *string `json:"atendimento_id,omitempty" gorm:"column:atendimento_id;type:uuid"`

	// Relações
	RespostasCampos []RespostaCampo `json:"respostas_campos,omitempty" gorm:"foreignKey:RespostaFormularioID;constraint:OnDelete:CASCADE"`

	Metadados   datatypes.JSON `json:"metadados,omitempty" gorm:"column:metadados;type:jsonb"`
	Observacoes string         `json:"observacoes,omitempty" gorm:"column:observacoes;type:text"`

	// Auditoria
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;index:idx_respostas_status_created"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
	CreatedBy string    `json:"created_by,omitempty" gorm:"column:created_by;size:100"`
	UpdatedBy string    `json:"updated_by,omitempty" gorm:"column:updated_by;size:100"`
}

func (RespostaFormulario) TableName() string {
	return "respostas_formulario"
}

func (r *RespostaFormulario) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
