package usecases

import (
	"testing"

	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoRespostaCampoUseCase() (RespostaCampoUseCase, *fakeRespostaRepo, *fakeRespostaCampoRepo) {
	respostaRepo := newFakeRespostaRepo()
	respostaCampoRepo := newFakeRespostaCampoRepo()
	return NewRespostaCampoUseCase(respostaCampoRepo, respostaRepo), respostaRepo, respostaCampoRepo
}

func TestResponderCriaESaiDoRascunho(t *testing.T) {
	uc, respostaRepo, _ := novoRespostaCampoUseCase()

	resposta := &entities.RespostaFormulario{
		CodigoResposta: "RESP0001",
		FormularioID:   "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		Status:         entities.StatusRespostaRascunho,
	}
	require.NoError(t, respostaRepo.Create(resposta))

	respondida, err := uc.Responder(resposta.ID, &dto.ResponderCampoDTO{
		CampoFormularioID: "c1",
		ValorTexto:        textoPtr("36.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", respondida.CampoFormularioID)
	assert.False(t, respondida.Editado)
	require.NotNil(t, respondida.DataResposta)

	atual, err := respostaRepo.FindByID(resposta.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusRespostaEmPreenchimento, atual.Status)
}

func TestResponderRegravaValorExistente(t *testing.T) {
	uc, respostaRepo, respostaCampoRepo := novoRespostaCampoUseCase()

	resposta := &entities.RespostaFormulario{
		CodigoResposta: "RESP0002",
		FormularioID:   "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		Status:         entities.StatusRespostaEmPreenchimento,
	}
	require.NoError(t, respostaRepo.Create(resposta))

	primeira, err := uc.Responder(resposta.ID, &dto.ResponderCampoDTO{
		CampoFormularioID: "c1",
		ValorNumerico:     numeroPtr(36.5),
	})
	require.NoError(t, err)

	segunda, err := uc.Responder(resposta.ID, &dto.ResponderCampoDTO{
		CampoFormularioID: "c1",
		ValorNumerico:     numeroPtr(37.2),
	})
	require.NoError(t, err)

	// A segunda gravação regrava a primeira em vez de criar outra linha
	assert.Equal(t, primeira.ID, segunda.ID)
	assert.True(t, segunda.Editado)
	require.NotNil(t, segunda.DataUltimaEdicao)
	assert.Equal(t, 37.2, *segunda.ValorNumerico)

	todas, err := respostaCampoRepo.FindByResposta(resposta.ID)
	require.NoError(t, err)
	assert.Len(t, todas, 1)
}

func TestResponderBloqueios(t *testing.T) {
	uc, respostaRepo, _ := novoRespostaCampoUseCase()

	concluida := &entities.RespostaFormulario{
		CodigoResposta: "RESP0003",
		FormularioID:   "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		Status:         entities.StatusRespostaConcluido,
	}
	require.NoError(t, respostaRepo.Create(concluida))

	_, err := uc.Responder(concluida.ID, &dto.ResponderCampoDTO{CampoFormularioID: "c1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))
	assert.Equal(t, "Não é possível responder campos de resposta concluída", err.Error())

	assinada := &entities.RespostaFormulario{
		CodigoResposta: "RESP0004",
		FormularioID:   "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		Status:         entities.StatusRespostaAprovado,
		Assinado:       true,
	}
	require.NoError(t, respostaRepo.Create(assinada))

	_, err = uc.Responder(assinada.ID, &dto.ResponderCampoDTO{CampoFormularioID: "c1"})
	require.Error(t, err)
	assert.Equal(t, "Não é possível responder campos de resposta assinada digitalmente", err.Error())

	_, err = uc.Responder("inexistente", &dto.ResponderCampoDTO{CampoFormularioID: "c1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRespostaCampoRemove(t *testing.T) {
	uc, respostaRepo, _ := novoRespostaCampoUseCase()

	resposta := &entities.RespostaFormulario{
		CodigoResposta: "RESP0005",
		FormularioID:   "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		Status:         entities.StatusRespostaEmPreenchimento,
	}
	require.NoError(t, respostaRepo.Create(resposta))

	respondida, err := uc.Responder(resposta.ID, &dto.ResponderCampoDTO{
		CampoFormularioID: "c1",
		ValorTexto:        textoPtr("valor"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Remove(respondida.ID))

	_, err = uc.FindOne(respondida.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
