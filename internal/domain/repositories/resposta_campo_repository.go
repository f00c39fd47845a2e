package repositories

import (
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"gorm.io/gorm"
)

type RespostaCampoRepository interface {
	Create(resposta *entities.RespostaCampo) error
	Save(resposta *entities.RespostaCampo) error
	Delete(resposta *entities.RespostaCampo) error
	FindByResposta(respostaFormularioID string) ([]entities.RespostaCampo, error)
	FindByRespostaECampo(respostaFormularioID, campoFormularioID string) (*entities.RespostaCampo, error)
	FindByID(id string) (*entities.RespostaCampo, error)
	DeleteByResposta(respostaFormularioID string) error
}

type respostaCampoRepository struct {
	db *gorm.DB
}

func NewRespostaCampoRepository(db *gorm.DB) RespostaCampoRepository {
	return &respostaCampoRepository{db}
}

func (r *respostaCampoRepository) Create(resposta *entities.RespostaCampo) error {
	return r.db.Create(resposta).Error
}

func (r *respostaCampoRepository) Save(resposta *entities.RespostaCampo) error {
	return r.db.Save(resposta).Error
}

func (r *respostaCampoRepository) Delete(resposta *entities.RespostaCampo) error {
	return r.db.Delete(resposta).Error
}

func (r *respostaCampoRepository) FindByResposta(respostaFormularioID string) ([]entities.RespostaCampo, error) {
	var respostas []entities.RespostaCampo
	err := r.db.
		Where("resposta_formulario_id = ?", respostaFormularioID).
		Preload("CampoFormulario").
		Find(&respostas).Error
	return respostas, err
}

func (r *respostaCampoRepository) FindByRespostaECampo(respostaFormularioID, campoFormularioID string) (*entities.RespostaCampo, error) {
	var resposta entities.RespostaCampo
	err := r.db.
		Where("resposta_formulario_id = ? AND campo_formulario_id = ?", respostaFormularioID, campoFormularioID).
		First(&resposta).Error
	if err != nil {
		return nil, err
	}
	return &resposta, nil
}

func (r *respostaCampoRepository) FindByID(id string) (*entities.RespostaCampo, error) {
	var resposta entities.RespostaCampo
	err := r.db.
		Where("id = ?", id).
		Preload("CampoFormulario").
		First(&resposta).Error
	if err != nil {
		return nil, err
	}
	return &resposta, nil
}

func (r *respostaCampoRepository) DeleteByResposta(respostaFormularioID string) error {
	return r.db.
		Where("resposta_formulario_id = ?", respostaFormularioID).
		Delete(&entities.RespostaCampo{}).Error
}
