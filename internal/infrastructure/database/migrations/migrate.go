package migrations

import (
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Usuario{},
		&entities.Paciente{},
		&entities.Formulario{},
		&entities.CampoFormulario{},
		&entities.AlternativaCampo{},
		&entities.RespostaFormulario{},
		&entities.RespostaCampo{},
	)
}
