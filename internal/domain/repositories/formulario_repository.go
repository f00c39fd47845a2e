package repositories

import (
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ContagemPorTipo é o resultado das agregações group-by por tipo
type ContagemPorTipo struct {
	Tipo  string `json:"tipo"`
	Total int64  `json:"total"`
}

// ContagemPorStatus é o resultado das agregações group-by por status
type ContagemPorStatus struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// EstatisticasFormularios agrega os contadores de formulários
type EstatisticasFormularios struct {
	Total        int64               `json:"total"`
	Ativos       int64               `json:"ativos"`
	Inativos     int64               `json:"inativos"`
	Publicados   int64               `json:"publicados"`
	ComRespostas int64               `json:"com_respostas"`
	PorTipo      []ContagemPorTipo   `json:"por_tipo"`
	PorStatus    []ContagemPorStatus `json:"por_status"`
}

type FormularioRepository interface {
	Create(formulario *entities.Formulario) error
	Save(formulario *entities.Formulario) error
	Delete(formulario *entities.Formulario) error
	FindAll() ([]entities.Formulario, error)
	FindAtivos() ([]entities.Formulario, error)
	FindPublicados() ([]entities.Formulario, error)
	FindByTipo(tipo entities.TipoFormulario) ([]entities.Formulario, error)
	FindByStatus(status entities.StatusFormulario) ([]entities.Formulario, error)
	FindByCodigo(codigo string) (*entities.Formulario, error)
	FindByID(id string) (*entities.Formulario, error)
	ExistsByCodigo(codigo string, excludeID string) (bool, error)
	Search(termo string) ([]entities.Formulario, error)
	Estatisticas() (*EstatisticasFormularios, error)
}

type formularioRepository struct {
	db *gorm.DB
}

func NewFormularioRepository(db *gorm.DB) FormularioRepository {
	return &formularioRepository{db}
}

func (r *formularioRepository) Create(formulario *entities.Formulario) error {
	return r.db.Create(formulario).Error
}

func (r *formularioRepository) Save(formulario *entities.Formulario) error {
	return r.db.Save(formulario).Error
}

func (r *formularioRepository) Delete(formulario *entities.Formulario) error {
	return r.db.Delete(formulario).Error
}

func (r *formularioRepository) FindAll() ([]entities.Formulario, error) {
	var formularios []entities.Formulario
	err := r.db.
		Preload("Campos", func(db *gorm.DB) *gorm.DB {
			return db.Order("campos_formulario.ordem ASC")
		}).
		Order("nome_formulario ASC").
		Find(&formularios).Error
	return formularios, err
}

func (r *formularioRepository) FindAtivos() ([]entities.Formulario, error) {
	var formularios []entities.Formulario
	err := r.db.
		Where("ativo = ?", true).
		Preload("Campos", func(db *gorm.DB) *gorm.DB {
			return db.Order("campos_formulario.ordem ASC")
		}).
		Order("nome_formulario ASC").
		Find(&formularios).Error
	return formularios, err
}

func (r *formularioRepository) FindPublicados() ([]entities.Formulario, error) {
	var formularios []entities.Formulario
	err := r.db.
		Where("status = ? AND ativo = ?", entities.StatusFormularioPublicado, true).
		Preload("Campos", func(db *gorm.DB) *gorm.DB {
			return db.Order("campos_formulario.ordem ASC")
		}).
		Order("nome_formulario ASC").
		Find(&formularios).Error
	return formularios, err
}

func (r *formularioRepository) FindByTipo(tipo entities.TipoFormulario) ([]entities.Formulario, error) {
	var formularios []entities.Formulario
	err := r.db.
		Where("tipo = ?", tipo).
		Preload("Campos").
		Order("nome_formulario ASC").
		Find(&formularios).Error
	return formularios, err
}

func (r *formularioRepository) FindByStatus(status entities.StatusFormulario) ([]entities.Formulario, error) {
	var formularios []entities.Formulario
	err := r.db.
		Where("status = ?", status).
		Preload("Campos").
		Order("nome_formulario ASC").
		Find(&formularios).Error
	return formularios, err
}

func (r *formularioRepository) FindByCodigo(codigo string) (*entities.Formulario, error) {
	var formulario entities.Formulario
	err := r.db.
		Where("codigo_formulario = ?", codigo).
		Preload("Campos", func(db *gorm.DB) *gorm.DB {
			return db.Order("campos_formulario.ordem ASC")
		}).
		Preload("Campos.Alternativas", func(db *gorm.DB) *gorm.DB {
			return db.Order("alternativas_campo.ordem ASC")
		}).
		First(&formulario).Error
	if err != nil {
		return nil, err
	}
	return &formulario, nil
}

func (r *formularioRepository) FindByID(id string) (*entities.Formulario, error) {
	var formulario entities.Formulario
	err := r.db.
		Where("id = ?", id).
		Preload("Campos", func(db *gorm.DB) *gorm.DB {
			return db.Order("campos_formulario.ordem ASC")
		}).
		Preload("Campos.Alternativas", func(db *gorm.DB) *gorm.DB {
			return db.Order("alternativas_campo.ordem ASC")
		}).
		First(&formulario).Error
	if err != nil {
		return nil, err
	}
	return &formulario, nil
}

func (r *formularioRepository) ExistsByCodigo(codigo string, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&entities.Formulario{}).Where("codigo_formulario = ?", codigo)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *formularioRepository) Search(termo string) ([]entities.Formulario, error) {
	var formularios []entities.Formulario
	pattern := "%" + termo + "%"
	err := r.db.
		Where("nome_formulario ILIKE ? OR descricao ILIKE ? OR codigo_formulario ILIKE ?", pattern, pattern, pattern).
		Preload("Campos").
		Order("nome_formulario ASC").
		Find(&formularios).Error
	return formularios, err
}

func (r *formularioRepository) Estatisticas() (*EstatisticasFormularios, error) {
	stats := &EstatisticasFormularios{}

	if err := r.db.Model(&entities.Formulario{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Formulario{}).Where("ativo = ?", true).Count(&stats.Ativos).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Formulario{}).Where("ativo = ?", false).Count(&stats.Inativos).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Formulario{}).
		Where("status = ?", entities.StatusFormularioPublicado).
		Count(&stats.Publicados).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&entities.Formulario{}).
		Joins("JOIN respostas_formulario ON respostas_formulario.formulario_id = formularios.id").
		Distinct("formularios.id").
		Count(&stats.ComRespostas).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&entities.Formulario{}).
		Select("tipo, COUNT(*) as total").
		Group("tipo").
		Scan(&stats.PorTipo).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Formulario{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&stats.PorStatus).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
