package usecases

import (
	"testing"

	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const campoID = "33333333-3333-3333-3333-333333333333"

func TestAlternativaCreateUnicidadeDupla(t *testing.T) {
	uc := NewAlternativaCampoUseCase(newFakeAlternativaRepo())

	_, err := uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: campoID,
		CodigoAlternativa: "POSITIVO",
		TextoAlternativa:  "Positivo",
		Valor:             "positivo",
	})
	require.NoError(t, err)

	// Mesmo código, valor diferente
	_, err = uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: campoID,
		CodigoAlternativa: "POSITIVO",
		TextoAlternativa:  "Positivo forte",
		Valor:             "positivo_forte",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Já existe uma alternativa com o código POSITIVO neste campo", err.Error())

	// Código diferente, mesmo valor
	_, err = uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: campoID,
		CodigoAlternativa: "POS",
		TextoAlternativa:  "Pos",
		Valor:             "positivo",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Já existe uma alternativa com o valor positivo neste campo", err.Error())

	// Em outro campo não há conflito
	_, err = uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: "44444444-4444-4444-4444-444444444444",
		CodigoAlternativa: "POSITIVO",
		TextoAlternativa:  "Positivo",
		Valor:             "positivo",
	})
	require.NoError(t, err)
}

func TestAlternativaCreateOrdemEDefaults(t *testing.T) {
	uc := NewAlternativaCampoUseCase(newFakeAlternativaRepo())

	primeira, err := uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: campoID,
		CodigoAlternativa: "SIM",
		TextoAlternativa:  "Sim",
		Valor:             "sim",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, primeira.Ordem)
	assert.Equal(t, 1.0, primeira.Peso)
	assert.Equal(t, entities.StatusAlternativaAtiva, primeira.Status)
	assert.True(t, primeira.Ativo)

	segunda, err := uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: campoID,
		CodigoAlternativa: "NAO",
		TextoAlternativa:  "Não",
		Valor:             "nao",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, segunda.Ordem)
}

func TestAlternativaDuplicar(t *testing.T) {
	uc := NewAlternativaCampoUseCase(newFakeAlternativaRepo())

	original, err := uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: campoID,
		CodigoAlternativa: "A_POSITIVO",
		TextoAlternativa:  "A+",
		Valor:             "a_positivo",
		SelecionadoPadrao: true,
	})
	require.NoError(t, err)

	copia, err := uc.Duplicar(original.ID, "")
	require.NoError(t, err)

	assert.Equal(t, "A_POSITIVO_COPY", copia.CodigoAlternativa)
	assert.Equal(t, "A+ (Cópia)", copia.TextoAlternativa)
	assert.Equal(t, "a_positivo_COPY", copia.Valor)
	assert.Equal(t, original.Ordem+1, copia.Ordem)
	// A cópia nunca nasce como padrão
	assert.False(t, copia.SelecionadoPadrao)
}

func TestAlternativaDefinirPadraoExclusivo(t *testing.T) {
	repo := newFakeAlternativaRepo()
	uc := NewAlternativaCampoUseCase(repo)

	primeira, err := uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: campoID,
		CodigoAlternativa: "UM",
		TextoAlternativa:  "Um",
		Valor:             "1",
		SelecionadoPadrao: true,
	})
	require.NoError(t, err)

	segunda, err := uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: campoID,
		CodigoAlternativa: "DOIS",
		TextoAlternativa:  "Dois",
		Valor:             "2",
	})
	require.NoError(t, err)

	atual, err := uc.DefinirPadrao(segunda.ID)
	require.NoError(t, err)
	assert.True(t, atual.SelecionadoPadrao)

	padrao, err := uc.FindPadrao(campoID)
	require.NoError(t, err)
	require.Len(t, padrao, 1)
	assert.Equal(t, segunda.ID, padrao[0].ID)

	anterior, err := uc.FindOne(primeira.ID)
	require.NoError(t, err)
	assert.False(t, anterior.SelecionadoPadrao)

	require.NoError(t, uc.RemoverPadrao(campoID))
	padrao, err = uc.FindPadrao(campoID)
	require.NoError(t, err)
	assert.Empty(t, padrao)
}

func TestImportarAlternativas(t *testing.T) {
	uc := NewAlternativaCampoUseCase(newFakeAlternativaRepo())

	_, err := uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: campoID,
		CodigoAlternativa: "EXISTENTE",
		TextoAlternativa:  "Existente",
		Valor:             "existente",
		Ordem:             3,
	})
	require.NoError(t, err)

	score := 2.5
	resultado, err := uc.ImportarAlternativas(campoID, []dto.ImportarAlternativaItemDTO{
		{Codigo: "NOVO_A", Valor: "novo_a", Rotulo: "Novo A", Score: &score},
		{Codigo: "EXISTENTE", Valor: "outro", Rotulo: "Colide por código"},
		{Codigo: "OUTRO", Valor: "existente", Rotulo: "Colide por valor"},
		{Codigo: "NOVO_B", Valor: "novo_b", Rotulo: "Novo B"},
		{Codigo: "NOVO_A", Valor: "novo_a_2", Rotulo: "Duplicado no lote"},
	})
	require.NoError(t, err)

	require.Len(t, resultado.Criadas, 2)
	assert.Equal(t, []string{"EXISTENTE", "OUTRO", "NOVO_A"}, resultado.Ignoradas)

	// Ordem sequencial a partir do maior valor existente
	assert.Equal(t, "NOVO_A", resultado.Criadas[0].CodigoAlternativa)
	assert.Equal(t, 4, resultado.Criadas[0].Ordem)
	assert.Equal(t, "NOVO_B", resultado.Criadas[1].CodigoAlternativa)
	assert.Equal(t, 5, resultado.Criadas[1].Ordem)

	require.NotNil(t, resultado.Criadas[0].Pontuacao)
	assert.Equal(t, 2.5, *resultado.Criadas[0].Pontuacao)
	assert.Equal(t, "Novo A", resultado.Criadas[0].TextoAlternativa)
}

func TestImportarAlternativasEmCampoVazio(t *testing.T) {
	uc := NewAlternativaCampoUseCase(newFakeAlternativaRepo())

	resultado, err := uc.ImportarAlternativas(campoID, []dto.ImportarAlternativaItemDTO{
		{Codigo: "A", Valor: "a", Rotulo: "A"},
		{Codigo: "B", Valor: "b", Rotulo: "B"},
	})
	require.NoError(t, err)

	require.Len(t, resultado.Criadas, 2)
	assert.Empty(t, resultado.Ignoradas)
	assert.Equal(t, 1, resultado.Criadas[0].Ordem)
	assert.Equal(t, 2, resultado.Criadas[1].Ordem)
}

func TestAlternativaUpdateStatus(t *testing.T) {
	uc := NewAlternativaCampoUseCase(newFakeAlternativaRepo())

	alternativa, err := uc.Create(&dto.CreateAlternativaCampoDTO{
		CampoFormularioID: campoID,
		CodigoAlternativa: "ATIVA",
		TextoAlternativa:  "Ativa",
		Valor:             "ativa",
	})
	require.NoError(t, err)

	inativada, err := uc.UpdateStatus(alternativa.ID, entities.StatusAlternativaInativa)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusAlternativaInativa, inativada.Status)

	desativada, err := uc.ToggleStatus(alternativa.ID)
	require.NoError(t, err)
	assert.False(t, desativada.Ativo)
}
