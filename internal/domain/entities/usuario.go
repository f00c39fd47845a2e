package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario é o usuário referenciado no preenchimento e validação de respostas.
// Autenticação e gestão de usuários ficam fora deste serviço.
type Usuario struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	Nome      string    `json:"nome" gorm:"column:nome;size:255"`
	Email     string    `json:"email" gorm:"column:email;size:255"`
	Perfil    string    `json:"perfil,omitempty" gorm:"column:perfil;size:50"`
	Ativo     bool      `json:"ativo" gorm:"column:ativo;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
