package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Add indexes to the formularios table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_formularios_status ON formularios (status)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_formularios_tipo ON formularios (tipo)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_formularios_ativo ON formularios (ativo)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_formularios_created_at ON formularios (created_at)").Error; err != nil {
		return err
	}

	// Add indexes to the campos_formulario table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_campos_formulario_tipo ON campos_formulario (tipo_campo)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_campos_formulario_obrigatorio ON campos_formulario (formulario_id, obrigatorio)").Error; err != nil {
		return err
	}

	// Add indexes to the respostas_formulario table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_formulario_formulario_id ON respostas_formulario (formulario_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_formulario_paciente_id ON respostas_formulario (paciente_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_formulario_usuario_id ON respostas_formulario (usuario_preenchimento_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_formulario_ordem_servico ON respostas_formulario (ordem_servico_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_formulario_status ON respostas_formulario (status)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_formulario_assinado ON respostas_formulario (assinado)").Error; err != nil {
		return err
	}

	// Add indexes to the respostas_campo table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_campo_campo_id ON respostas_campo (campo_formulario_id)").Error; err != nil {
		return err
	}

	return nil
}
