package usecases

import (
	"errors"

	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/domain/repositories"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"gorm.io/gorm"
)

type RespostaCampoUseCase interface {
	Responder(respostaFormularioID string, d *dto.ResponderCampoDTO) (*entities.RespostaCampo, error)
	FindByResposta(respostaFormularioID string) ([]entities.RespostaCampo, error)
	FindOne(id string) (*entities.RespostaCampo, error)
	Remove(id string) error
}

type respostaCampoUseCase struct {
	respostaCampoRepo repositories.RespostaCampoRepository
	respostaRepo      repositories.RespostaFormularioRepository
}

func NewRespostaCampoUseCase(
	respostaCampoRepo repositories.RespostaCampoRepository,
	respostaRepo repositories.RespostaFormularioRepository,
) RespostaCampoUseCase {
	return &respostaCampoUseCase{respostaCampoRepo, respostaRepo}
}

// Responder grava o valor de um campo dentro de uma resposta. Existe no
// máximo uma resposta por par (resposta, campo): a segunda gravação regrava
// a primeira. Respostas concluídas ou assinadas não aceitam novos valores.
func (uc *respostaCampoUseCase) Responder(respostaFormularioID string, d *dto.ResponderCampoDTO) (*entities.RespostaCampo, error) {
	resposta, err := uc.respostaRepo.FindByID(respostaFormularioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Resposta com ID %s não encontrada", respostaFormularioID)
		}
		return nil, err
	}

	if resposta.Status == entities.StatusRespostaConcluido {
		return nil, apperrors.BadRequest("Não é possível responder campos de resposta concluída")
	}
	if resposta.Assinado {
		return nil, apperrors.BadRequest("Não é possível responder campos de resposta assinada digitalmente")
	}

	existente, err := uc.respostaCampoRepo.FindByRespostaECampo(respostaFormularioID, d.CampoFormularioID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existente != nil {
		d.ApplyTo(existente)
		if err := uc.respostaCampoRepo.Save(existente); err != nil {
			return nil, err
		}
		return existente, nil
	}

	respostaCampo := d.ToEntity(respostaFormularioID)
	if err := uc.respostaCampoRepo.Create(respostaCampo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Campo já respondido nesta resposta")
		}
		return nil, err
	}

	// O primeiro valor gravado tira a resposta do rascunho
	if resposta.Status == entities.StatusRespostaRascunho {
		resposta.Status = entities.StatusRespostaEmPreenchimento
		if err := uc.respostaRepo.Save(resposta); err != nil {
			return nil, err
		}
	}

	return respostaCampo, nil
}

func (uc *respostaCampoUseCase) FindByResposta(respostaFormularioID string) ([]entities.RespostaCampo, error) {
	return uc.respostaCampoRepo.FindByResposta(respostaFormularioID)
}

func (uc *respostaCampoUseCase) FindOne(id string) (*entities.RespostaCampo, error) {
	respostaCampo, err := uc.respostaCampoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Resposta de campo com ID %s não encontrada", id)
		}
		return nil, err
	}
	return respostaCampo, nil
}

func (uc *respostaCampoUseCase) Remove(id string) error {
	respostaCampo, err := uc.FindOne(id)
	if err != nil {
		return err
	}
	return uc.respostaCampoRepo.Delete(respostaCampo)
}
