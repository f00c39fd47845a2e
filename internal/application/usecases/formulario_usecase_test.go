package usecases

import (
	"testing"

	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoFormularioUseCase() (FormularioUseCase, *fakeFormularioRepo, *fakeRespostaRepo) {
	formularioRepo := newFakeFormularioRepo()
	respostaRepo := newFakeRespostaRepo()
	return NewFormularioUseCase(formularioRepo, respostaRepo), formularioRepo, respostaRepo
}

func TestFormularioCreateAplicaDefaults(t *testing.T) {
	uc, _, _ := novoFormularioUseCase()

	formulario, err := uc.Create(&dto.CreateFormularioDTO{
		CodigoFormulario: "HEMOGRAMA",
		NomeFormulario:   "Hemograma Completo",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, formulario.ID)
	assert.Equal(t, entities.TipoFormularioCustomizado, formulario.Tipo)
	assert.Equal(t, entities.StatusFormularioRascunho, formulario.Status)
	assert.Equal(t, 1, formulario.Versao)
	assert.True(t, formulario.Ativo)
	assert.True(t, formulario.PermiteEdicao)
}

func TestFormularioCreateCodigoDuplicado(t *testing.T) {
	uc, _, _ := novoFormularioUseCase()

	_, err := uc.Create(&dto.CreateFormularioDTO{CodigoFormulario: "HEMOGRAMA", NomeFormulario: "Hemograma"})
	require.NoError(t, err)

	_, err = uc.Create(&dto.CreateFormularioDTO{CodigoFormulario: "HEMOGRAMA", NomeFormulario: "Outro"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Já existe um formulário com o código HEMOGRAMA", err.Error())
}

func TestFormularioUpdateCodigoParaExistente(t *testing.T) {
	uc, _, _ := novoFormularioUseCase()

	_, err := uc.Create(&dto.CreateFormularioDTO{CodigoFormulario: "FORM_A", NomeFormulario: "A"})
	require.NoError(t, err)
	formularioB, err := uc.Create(&dto.CreateFormularioDTO{CodigoFormulario: "FORM_B", NomeFormulario: "B"})
	require.NoError(t, err)

	codigo := "FORM_A"
	_, err = uc.Update(formularioB.ID, &dto.UpdateFormularioDTO{CodigoFormulario: &codigo})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestFormularioPublicar(t *testing.T) {
	uc, formularioRepo, _ := novoFormularioUseCase()

	formulario := &entities.Formulario{
		CodigoFormulario: "ANAMNESE",
		NomeFormulario:   "Anamnese",
		Status:           entities.StatusFormularioRascunho,
		Campos: []entities.CampoFormulario{
			{CodigoCampo: "QUEIXA", NomeCampo: "Queixa principal", Obrigatorio: true},
		},
	}
	require.NoError(t, formularioRepo.Create(formulario))

	publicado, err := uc.Publicar(formulario.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusFormularioPublicado, publicado.Status)

	_, err = uc.Publicar(formulario.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Formulário já está publicado", err.Error())
}

func TestFormularioPublicarSemCampos(t *testing.T) {
	uc, formularioRepo, _ := novoFormularioUseCase()

	formulario := &entities.Formulario{
		CodigoFormulario: "VAZIO",
		NomeFormulario:   "Sem campos",
		Status:           entities.StatusFormularioRascunho,
	}
	require.NoError(t, formularioRepo.Create(formulario))

	_, err := uc.Publicar(formulario.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))
	assert.Equal(t, "Formulário deve ter pelo menos um campo para ser publicado", err.Error())
}

func TestFormularioCriarVersao(t *testing.T) {
	uc, formularioRepo, _ := novoFormularioUseCase()

	original := &entities.Formulario{
		CodigoFormulario: "TRIAGEM",
		NomeFormulario:   "Triagem",
		Versao:           1,
		Status:           entities.StatusFormularioPublicado,
		Campos: []entities.CampoFormulario{
			{ID: "c1", CodigoCampo: "PESO", NomeCampo: "Peso", Obrigatorio: true},
			{ID: "c2", CodigoCampo: "ALTURA", NomeCampo: "Altura"},
		},
	}
	require.NoError(t, formularioRepo.Create(original))

	versao, err := uc.CriarVersao(original.ID)
	require.NoError(t, err)

	assert.Equal(t, "TRIAGEM_V2", versao.CodigoFormulario)
	assert.Equal(t, 2, versao.Versao)
	assert.Equal(t, entities.StatusFormularioRascunho, versao.Status)
	require.NotNil(t, versao.FormularioPaiID)
	assert.Equal(t, original.ID, *versao.FormularioPaiID)
	require.Len(t, versao.Campos, 2)
	assert.Empty(t, versao.Campos[0].ID)
	assert.Empty(t, versao.Campos[0].FormularioID)
}

func TestFormularioCriarVersaoDeVersao(t *testing.T) {
	uc, formularioRepo, _ := novoFormularioUseCase()

	raizID := "raiz-id"
	segunda := &entities.Formulario{
		CodigoFormulario: "TRIAGEM_V2",
		NomeFormulario:   "Triagem",
		Versao:           2,
		FormularioPaiID:  &raizID,
	}
	require.NoError(t, formularioRepo.Create(segunda))

	terceira, err := uc.CriarVersao(segunda.ID)
	require.NoError(t, err)

	// Toda versão aponta para o formulário raiz, não para a versão anterior
	require.NotNil(t, terceira.FormularioPaiID)
	assert.Equal(t, raizID, *terceira.FormularioPaiID)
	assert.Equal(t, 3, terceira.Versao)
}

func TestFormularioRemoveBloqueios(t *testing.T) {
	uc, formularioRepo, respostaRepo := novoFormularioUseCase()

	publicado := &entities.Formulario{CodigoFormulario: "PUB", NomeFormulario: "Publicado", Status: entities.StatusFormularioPublicado}
	require.NoError(t, formularioRepo.Create(publicado))

	err := uc.Remove(publicado.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	comResposta := &entities.Formulario{CodigoFormulario: "RESP", NomeFormulario: "Com resposta", Status: entities.StatusFormularioRascunho}
	require.NoError(t, formularioRepo.Create(comResposta))
	require.NoError(t, respostaRepo.Create(&entities.RespostaFormulario{CodigoResposta: "RESP2026080001", FormularioID: comResposta.ID}))

	err = uc.Remove(comResposta.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	livre := &entities.Formulario{CodigoFormulario: "LIVRE", NomeFormulario: "Livre", Status: entities.StatusFormularioRascunho}
	require.NoError(t, formularioRepo.Create(livre))
	require.NoError(t, uc.Remove(livre.ID))

	_, err = uc.FindOne(livre.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestValidarFormulario(t *testing.T) {
	uc, formularioRepo, _ := novoFormularioUseCase()

	semCampos := &entities.Formulario{CodigoFormulario: "F1", NomeFormulario: "F1"}
	require.NoError(t, formularioRepo.Create(semCampos))

	resultado, err := uc.ValidarFormulario(semCampos.ID)
	require.NoError(t, err)
	assert.False(t, resultado.Valido)
	assert.Contains(t, resultado.Erros, "Formulário deve ter pelo menos um campo")
	assert.Contains(t, resultado.Erros, "Formulário deve ter pelo menos um campo obrigatório")

	comDuplicados := &entities.Formulario{
		CodigoFormulario: "F2",
		NomeFormulario:   "F2",
		Campos: []entities.CampoFormulario{
			{CodigoCampo: "A", Obrigatorio: true},
			{CodigoCampo: "A"},
			{CodigoCampo: "B"},
			{CodigoCampo: "B"},
		},
	}
	require.NoError(t, formularioRepo.Create(comDuplicados))

	resultado, err = uc.ValidarFormulario(comDuplicados.ID)
	require.NoError(t, err)
	assert.False(t, resultado.Valido)
	assert.Contains(t, resultado.Erros, "Códigos de campos duplicados: A, B")

	valido := &entities.Formulario{
		CodigoFormulario: "F3",
		NomeFormulario:   "F3",
		Campos: []entities.CampoFormulario{
			{CodigoCampo: "A", Obrigatorio: true},
			{CodigoCampo: "B"},
		},
	}
	require.NoError(t, formularioRepo.Create(valido))

	resultado, err = uc.ValidarFormulario(valido.ID)
	require.NoError(t, err)
	assert.True(t, resultado.Valido)
	assert.Empty(t, resultado.Erros)
}

func TestFormularioToggleStatus(t *testing.T) {
	uc, formularioRepo, _ := novoFormularioUseCase()

	formulario := &entities.Formulario{CodigoFormulario: "TGL", NomeFormulario: "Toggle", Ativo: true}
	require.NoError(t, formularioRepo.Create(formulario))

	alterado, err := uc.ToggleStatus(formulario.ID)
	require.NoError(t, err)
	assert.False(t, alterado.Ativo)

	alterado, err = uc.ToggleStatus(formulario.ID)
	require.NoError(t, err)
	assert.True(t, alterado.Ativo)
}
