package repositories

import (
	"fmt"
	"time"

	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// EstatisticasCampos agrega os contadores de campos de um formulário
type EstatisticasCampos struct {
	Total        int64               `json:"total"`
	Ativos       int64               `json:"ativos"`
	Inativos     int64               `json:"inativos"`
	Obrigatorios int64               `json:"obrigatorios"`
	PorTipo      []ContagemPorTipo   `json:"por_tipo"`
	PorStatus    []ContagemPorStatus `json:"por_status"`
}

type CampoFormularioRepository interface {
	Create(campo *entities.CampoFormulario) error
	Save(campo *entities.CampoFormulario) error
	Delete(campo *entities.CampoFormulario) error
	FindByFormulario(formularioID string) ([]entities.CampoFormulario, error)
	FindAtivos(formularioID string) ([]entities.CampoFormulario, error)
	FindByTipo(formularioID string, tipo entities.TipoCampo) ([]entities.CampoFormulario, error)
	FindObrigatorios(formularioID string) ([]entities.CampoFormulario, error)
	FindByCodigo(formularioID, codigo string) (*entities.CampoFormulario, error)
	FindByID(id string) (*entities.CampoFormulario, error)
	Search(formularioID, termo string) ([]entities.CampoFormulario, error)
	MaxOrdem(formularioID string) (int, error)
	ExistsByCodigo(formularioID, codigo string, excludeID string) (bool, error)
	Reordenar(campos []entities.CampoFormulario) error
	Estatisticas(formularioID string) (*EstatisticasCampos, error)
}

type campoFormularioRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCampoFormularioRepository(db *gorm.DB) CampoFormularioRepository {
	return &campoFormularioRepository{
		db:    db,
		cache: cache.New(time.Minute, 5*time.Minute),
	}
}

func (r *campoFormularioRepository) estatisticasKey(formularioID string) string {
	return fmt.Sprintf("estatisticas_campos:%s", formularioID)
}

func (r *campoFormularioRepository) Create(campo *entities.CampoFormulario) error {
	r.cache.Delete(r.estatisticasKey(campo.FormularioID))
	return r.db.Create(campo).Error
}

func (r *campoFormularioRepository) Save(campo *entities.CampoFormulario) error {
	r.cache.Delete(r.estatisticasKey(campo.FormularioID))
	return r.db.Save(campo).Error
}

func (r *campoFormularioRepository) Delete(campo *entities.CampoFormulario) error {
	r.cache.Delete(r.estatisticasKey(campo.FormularioID))
	// Alternativas do campo caem junto (cascade definido no schema)
	return r.db.Select("Alternativas").Delete(campo).Error
}

func (r *campoFormularioRepository) FindByFormulario(formularioID string) ([]entities.CampoFormulario, error) {
	var campos []entities.CampoFormulario
	err := r.db.
		Where("formulario_id = ?", formularioID).
		Preload("Alternativas", func(db *gorm.DB) *gorm.DB {
			return db.Order("alternativas_campo.ordem ASC")
		}).
		Order("ordem ASC").
		Find(&campos).Error
	return campos, err
}

func (r *campoFormularioRepository) FindAtivos(formularioID string) ([]entities.CampoFormulario, error) {
	var campos []entities.CampoFormulario
	err := r.db.
		Where("formulario_id = ? AND ativo = ?", formularioID, true).
		Preload("Alternativas", func(db *gorm.DB) *gorm.DB {
			return db.Order("alternativas_campo.ordem ASC")
		}).
		Order("ordem ASC").
		Find(&campos).Error
	return campos, err
}

func (r *campoFormularioRepository) FindByTipo(formularioID string, tipo entities.TipoCampo) ([]entities.CampoFormulario, error) {
	var campos []entities.CampoFormulario
	err := r.db.
		Where("formulario_id = ? AND tipo_campo = ?", formularioID, tipo).
		Preload("Alternativas").
		Order("ordem ASC").
		Find(&campos).Error
	return campos, err
}

func (r *campoFormularioRepository) FindObrigatorios(formularioID string) ([]entities.CampoFormulario, error) {
	var campos []entities.CampoFormulario
	err := r.db.
		Where("formulario_id = ? AND obrigatorio = ?", formularioID, true).
		Preload("Alternativas").
		Order("ordem ASC").
		Find(&campos).Error
	return campos, err
}

func (r *campoFormularioRepository) FindByCodigo(formularioID, codigo string) (*entities.CampoFormulario, error) {
	var campo entities.CampoFormulario
	err := r.db.
		Where("formulario_id = ? AND codigo_campo = ?", formularioID, codigo).
		Preload("Alternativas", func(db *gorm.DB) *gorm.DB {
			return db.Order("alternativas_campo.ordem ASC")
		}).
		First(&campo).Error
	if err != nil {
		return nil, err
	}
	return &campo, nil
}

func (r *campoFormularioRepository) FindByID(id string) (*entities.CampoFormulario, error) {
	var campo entities.CampoFormulario
	err := r.db.
		Where("id = ?", id).
		Preload("Alternativas", func(db *gorm.DB) *gorm.DB {
			return db.Order("alternativas_campo.ordem ASC")
		}).
		Preload("Formulario").
		First(&campo).Error
	if err != nil {
		return nil, err
	}
	return &campo, nil
}

func (r *campoFormularioRepository) Search(formularioID, termo string) ([]entities.CampoFormulario, error) {
	var campos []entities.CampoFormulario
	pattern := "%" + termo + "%"
	err := r.db.
		Where("formulario_id = ?", formularioID).
		Where("nome_campo ILIKE ? OR descricao ILIKE ? OR codigo_campo ILIKE ?", pattern, pattern, pattern).
		Preload("Alternativas").
		Order("ordem ASC").
		Find(&campos).Error
	return campos, err
}

func (r *campoFormularioRepository) MaxOrdem(formularioID string) (int, error) {
	var max *int
	err := r.db.Model(&entities.CampoFormulario{}).
		Where("formulario_id = ?", formularioID).
		Select("MAX(ordem)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *campoFormularioRepository) ExistsByCodigo(formularioID, codigo string, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&entities.CampoFormulario{}).
		Where("formulario_id = ? AND codigo_campo = ?", formularioID, codigo)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Reordenar aplica as novas ordens em uma única transação
func (r *campoFormularioRepository) Reordenar(campos []entities.CampoFormulario) error {
	if len(campos) == 0 {
		return nil
	}
	r.cache.Delete(r.estatisticasKey(campos[0].FormularioID))
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range campos {
			if err := tx.Model(&entities.CampoFormulario{}).
				Where("id = ?", campos[i].ID).
				Update("ordem", campos[i].Ordem).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *campoFormularioRepository) Estatisticas(formularioID string) (*EstatisticasCampos, error) {
	cacheKey := r.estatisticasKey(formularioID)
	if cached, found := r.cache.Get(cacheKey); found {
		return cached.(*EstatisticasCampos), nil
	}

	stats := &EstatisticasCampos{}

	if err := r.db.Model(&entities.CampoFormulario{}).
		Where("formulario_id = ?", formularioID).
		Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.CampoFormulario{}).
		Where("formulario_id = ? AND ativo = ?", formularioID, true).
		Count(&stats.Ativos).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.CampoFormulario{}).
		Where("formulario_id = ? AND ativo = ?", formularioID, false).
		Count(&stats.Inativos).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.CampoFormulario{}).
		Where("formulario_id = ? AND obrigatorio = ?", formularioID, true).
		Count(&stats.Obrigatorios).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&entities.CampoFormulario{}).
		Select("tipo_campo as tipo, COUNT(*) as total").
		Where("formulario_id = ?", formularioID).
		Group("tipo_campo").
		Scan(&stats.PorTipo).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.CampoFormulario{}).
		Select("status, COUNT(*) as total").
		Where("formulario_id = ?", formularioID).
		Group("status").
		Scan(&stats.PorStatus).Error; err != nil {
		return nil, err
	}

	r.cache.Set(cacheKey, stats, cache.DefaultExpiration)
	return stats, nil
}
