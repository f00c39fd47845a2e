package migrations

import (
	"log"

	"gorm.io/gorm"
)

// OptimizePerformanceIndexes adiciona índices otimizados para melhorar o desempenho das consultas
func OptimizePerformanceIndexes(db *gorm.DB) error {
	log.Println("Adicionando índices de performance otimizados...")

	// Índice composto para listagem de campos na ordem de exibição
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_campos_formulario_listagem ON campos_formulario (formulario_id, status, ordem)`).Error; err != nil {
		return err
	}

	// Índice para alternativas ativas na ordem de exibição
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_alternativas_campo_listagem ON alternativas_campo (campo_formulario_id, status, ordem)`).Error; err != nil {
		return err
	}

	// Índice parcial para alternativas marcadas como padrão
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_alternativas_campo_padrao ON alternativas_campo (campo_formulario_id) WHERE selecionado_padrao = true`).Error; err != nil {
		return err
	}

	// Índice BRIN para consultas por período em respostas (mais eficiente para grandes volumes de data sequencial)
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_respostas_formulario_inicio_brin ON respostas_formulario USING BRIN (data_inicio_preenchimento)`).Error; err != nil {
		return err
	}

	// Índice parcial para a fila de revisão
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_respostas_formulario_revisao ON respostas_formulario (status) WHERE status = 'revisao'`).Error; err != nil {
		return err
	}

	// Índice para geração sequencial do código de resposta por prefixo mensal
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_respostas_formulario_codigo_desc ON respostas_formulario (codigo_resposta DESC)`).Error; err != nil {
		return err
	}

	log.Println("Índices de performance adicionados com sucesso!")
	return nil
}
