package repositories

import (
	"fmt"
	"time"

	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// EstatisticasAlternativas agrega os contadores de alternativas de um campo
type EstatisticasAlternativas struct {
	Total     int64               `json:"total"`
	Ativas    int64               `json:"ativas"`
	Inativas  int64               `json:"inativas"`
	Padrao    int64               `json:"padrao"`
	PorStatus []ContagemPorStatus `json:"por_status"`
}

type AlternativaCampoRepository interface {
	Create(alternativa *entities.AlternativaCampo) error
	Save(alternativa *entities.AlternativaCampo) error
	Delete(alternativa *entities.AlternativaCampo) error
	FindByCampo(campoFormularioID string) ([]entities.AlternativaCampo, error)
	FindAtivas(campoFormularioID string) ([]entities.AlternativaCampo, error)
	FindPadrao(campoFormularioID string) ([]entities.AlternativaCampo, error)
	FindByValor(campoFormularioID, valor string) (*entities.AlternativaCampo, error)
	FindByCodigo(campoFormularioID, codigo string) (*entities.AlternativaCampo, error)
	FindByID(id string) (*entities.AlternativaCampo, error)
	Search(campoFormularioID, termo string) ([]entities.AlternativaCampo, error)
	MaxOrdem(campoFormularioID string) (int, error)
	ExistsByCodigo(campoFormularioID, codigo string, excludeID string) (bool, error)
	ExistsByValor(campoFormularioID, valor string, excludeID string) (bool, error)
	Reordenar(alternativas []entities.AlternativaCampo) error
	DefinirPadrao(alternativa *entities.AlternativaCampo) error
	LimparPadrao(campoFormularioID string) error
	Estatisticas(campoFormularioID string) (*EstatisticasAlternativas, error)
}

type alternativaCampoRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAlternativaCampoRepository(db *gorm.DB) AlternativaCampoRepository {
	return &alternativaCampoRepository{
		db:    db,
		cache: cache.New(time.Minute, 5*time.Minute),
	}
}

func (r *alternativaCampoRepository) estatisticasKey(campoFormularioID string) string {
	return fmt.Sprintf("estatisticas_alternativas:%s", campoFormularioID)
}

func (r *alternativaCampoRepository) Create(alternativa *entities.AlternativaCampo) error {
	r.cache.Delete(r.estatisticasKey(alternativa.CampoFormularioID))
	return r.db.Create(alternativa).Error
}

func (r *alternativaCampoRepository) Save(alternativa *entities.AlternativaCampo) error {
	r.cache.Delete(r.estatisticasKey(alternativa.CampoFormularioID))
	return r.db.Save(alternativa).Error
}

func (r *alternativaCampoRepository) Delete(alternativa *entities.AlternativaCampo) error {
	r.cache.Delete(r.estatisticasKey(alternativa.CampoFormularioID))
	return r.db.Delete(alternativa).Error
}

func (r *alternativaCampoRepository) FindByCampo(campoFormularioID string) ([]entities.AlternativaCampo, error) {
	var alternativas []entities.AlternativaCampo
	err := r.db.
		Where("campo_formulario_id = ?", campoFormularioID).
		Order("ordem ASC").
		Find(&alternativas).Error
	return alternativas, err
}

func (r *alternativaCampoRepository) FindAtivas(campoFormularioID string) ([]entities.AlternativaCampo, error) {
	var alternativas []entities.AlternativaCampo
	err := r.db.
		Where("campo_formulario_id = ? AND ativo = ?", campoFormularioID, true).
		Order("ordem ASC").
		Find(&alternativas).Error
	return alternativas, err
}

func (r *alternativaCampoRepository) FindPadrao(campoFormularioID string) ([]entities.AlternativaCampo, error) {
	var alternativas []entities.AlternativaCampo
	err := r.db.
		Where("campo_formulario_id = ? AND selecionado_padrao = ?", campoFormularioID, true).
		Order("ordem ASC").
		Find(&alternativas).Error
	return alternativas, err
}

func (r *alternativaCampoRepository) FindByValor(campoFormularioID, valor string) (*entities.AlternativaCampo, error) {
	var alternativa entities.AlternativaCampo
	err := r.db.
		Where("campo_formulario_id = ? AND valor = ?", campoFormularioID, valor).
		First(&alternativa).Error
	if err != nil {
		return nil, err
	}
	return &alternativa, nil
}

func (r *alternativaCampoRepository) FindByCodigo(campoFormularioID, codigo string) (*entities.AlternativaCampo, error) {
	var alternativa entities.AlternativaCampo
	err := r.db.
		Where("campo_formulario_id = ? AND codigo_alternativa = ?", campoFormularioID, codigo).
		First(&alternativa).Error
	if err != nil {
		return nil, err
	}
	return &alternativa, nil
}

func (r *alternativaCampoRepository) FindByID(id string) (*entities.AlternativaCampo, error) {
	var alternativa entities.AlternativaCampo
	err := r.db.
		Where("id = ?", id).
		Preload("CampoFormulario").
		First(&alternativa).Error
	if err != nil {
		return nil, err
	}
	return &alternativa, nil
}

func (r *alternativaCampoRepository) Search(campoFormularioID, termo string) ([]entities.AlternativaCampo, error) {
	var alternativas []entities.AlternativaCampo
	pattern := "%" + termo + "%"
	err := r.db.
		Where("campo_formulario_id = ?", campoFormularioID).
		Where("texto_alternativa ILIKE ? OR valor ILIKE ? OR codigo_alternativa ILIKE ?", pattern, pattern, pattern).
		Order("ordem ASC").
		Find(&alternativas).Error
	return alternativas, err
}

func (r *alternativaCampoRepository) MaxOrdem(campoFormularioID string) (int, error) {
	var max *int
	err := r.db.Model(&entities.AlternativaCampo{}).
		Where("campo_formulario_id = ?", campoFormularioID).
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

func (r *alternativaCampoRepository) ExistsByCodigo(campoFormularioID, codigo string, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&entities.AlternativaCampo{}).
		Where("campo_formulario_id = ? AND codigo_alternativa = ?", campoFormularioID, codigo)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *alternativaCampoRepository) ExistsByValor(campoFormularioID, valor string, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&entities.AlternativaCampo{}).
		Where("campo_formulario_id = ? AND valor = ?", campoFormularioID, valor)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Reordenar aplica as novas ordens em uma única transação
func (r *alternativaCampoRepository) Reordenar(alternativas []entities.AlternativaCampo) error {
	if len(alternativas) == 0 {
		return nil
	}
	r.cache.Delete(r.estatisticasKey(alternativas[0].CampoFormularioID))
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range alternativas {
			if err := tx.Model(&entities.AlternativaCampo{}).
				Where("id = ?", alternativas[i].ID).
				Update("ordem", alternativas[i].Ordem).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DefinirPadrao limpa o padrão de todas as alternativas do campo e marca a
// alternativa informada, tudo dentro da mesma transação: nunca há um instante
// observável com zero ou dois padrões.
func (r *alternativaCampoRepository) DefinirPadrao(alternativa *entities.AlternativaCampo) error {
	r.cache.Delete(r.estatisticasKey(alternativa.CampoFormularioID))
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.AlternativaCampo{}).
			Where("campo_formulario_id = ?", alternativa.CampoFormularioID).
			Update("selecionado_padrao", false).Error; err != nil {
			return err
		}
		return tx.Model(&entities.AlternativaCampo{}).
			Where("id = ?", alternativa.ID).
			Update("selecionado_padrao", true).Error
	})
}

func (r *alternativaCampoRepository) LimparPadrao(campoFormularioID string) error {
	r.cache.Delete(r.estatisticasKey(campoFormularioID))
	return r.db.Model(&entities.AlternativaCampo{}).
		Where("campo_formulario_id = ?", campoFormularioID).
		Update("selecionado_padrao", false).Error
}

func (r *alternativaCampoRepository) Estatisticas(campoFormularioID string) (*EstatisticasAlternativas, error) {
	cacheKey := r.estatisticasKey(campoFormularioID)
	if cached, found := r.cache.Get(cacheKey); found {
		return cached.(*EstatisticasAlternativas), nil
	}

	stats := &EstatisticasAlternativas{}

	if err := r.db.Model(&entities.AlternativaCampo{}).
		Where("campo_formulario_id = ?", campoFormularioID).
		Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.AlternativaCampo{}).
		Where("campo_formulario_id = ? AND ativo = ?", campoFormularioID, true).
		Count(&stats.Ativas).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.AlternativaCampo{}).
		Where("campo_formulario_id = ? AND ativo = ?", campoFormularioID, false).
		Count(&stats.Inativas).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.AlternativaCampo{}).
		Where("campo_formulario_id = ? AND selecionado_padrao = ?", campoFormularioID, true).
		Count(&stats.Padrao).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&entities.AlternativaCampo{}).
		Select("status, COUNT(*) as total").
		Where("campo_formulario_id = ?", campoFormularioID).
		Group("status").
		Scan(&stats.PorStatus).Error; err != nil {
		return nil, err
	}

	r.cache.Set(cacheKey, stats, cache.DefaultExpiration)
	return stats, nil
}
