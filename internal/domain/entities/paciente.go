package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Paciente é a entidade referenciada pelas respostas de formulário.
// O cadastro completo de pacientes é mantido por outro serviço.
type Paciente struct {
	ID             string     `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	NomeCompleto   string     `json:"nome_completo" gorm:"column:nome_completo;size:255"`
	CPF            string     `json:"cpf,omitempty" gorm:"column:cpf;size:14"`
	DataNascimento *time.Time `json:"data_nascimento,omitempty" gorm:"column:data_nascimento"`
	Sexo           string     `json:"sexo,omitempty" gorm:"column:sexo;size:20"`
	Email          string     `json:"email,omitempty" gorm:"column:email;size:255"`
	Telefone       string     `json:"telefone,omitempty" gorm:"column:telefone;size:20"`
	Ativo          bool       `json:"ativo" gorm:"column:ativo;default:true"`
	CreatedAt      time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Paciente) TableName() string {
	return "pacientes"
}

func (p *Paciente) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
