package usecases

import (
	"fmt"
	"testing"
	"time"

	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novaRespostaUseCase() (RespostaFormularioUseCase, *fakeRespostaRepo, *fakeRespostaCampoRepo) {
	respostaRepo := newFakeRespostaRepo()
	respostaCampoRepo := newFakeRespostaCampoRepo()
	return NewRespostaFormularioUseCase(respostaRepo, respostaCampoRepo), respostaRepo, respostaCampoRepo
}

func textoPtr(s string) *string    { return &s }
func inteiroPtr(i int) *int        { return &i }
func numeroPtr(f float64) *float64 { return &f }

// formularioComCampos monta um formulário preloadado no estilo que o
// repositório devolve, com os campos já carregados.
func formularioComCampos(campos ...entities.CampoFormulario) *entities.Formulario {
	return &entities.Formulario{
		ID:               "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		CodigoFormulario: "TRIAGEM",
		NomeFormulario:   "Triagem",
		Campos:           campos,
	}
}

func novaRespostaComFormulario(repo *fakeRespostaRepo, formulario *entities.Formulario) *entities.RespostaFormulario {
	inicio := time.Now().Add(-2 * time.Minute)
	resposta := &entities.RespostaFormulario{
		CodigoResposta:          fmt.Sprintf("RESP_TESTE_%d", len(repo.respostas)+1),
		FormularioID:            formulario.ID,
		Formulario:              formulario,
		Status:                  entities.StatusRespostaEmPreenchimento,
		DataInicioPreenchimento: &inicio,
	}
	if err := repo.Create(resposta); err != nil {
		panic(err)
	}
	return resposta
}

func TestRespostaCreateGeraCodigoSequencial(t *testing.T) {
	uc, _, _ := novaRespostaUseCase()

	agora := time.Now()
	prefixo := fmt.Sprintf("RESP%d%02d", agora.Year(), int(agora.Month()))

	primeira, err := uc.Create(&dto.CreateRespostaFormularioDTO{
		FormularioID: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
	})
	require.NoError(t, err)
	assert.Equal(t, prefixo+"0001", primeira.CodigoResposta)
	assert.Equal(t, entities.StatusRespostaRascunho, primeira.Status)
	require.NotNil(t, primeira.DataInicioPreenchimento)

	segunda, err := uc.Create(&dto.CreateRespostaFormularioDTO{
		FormularioID: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
	})
	require.NoError(t, err)
	assert.Equal(t, prefixo+"0002", segunda.CodigoResposta)
}

func TestRespostaCreateCodigoAcimaDeDezMil(t *testing.T) {
	uc, respostaRepo, _ := novaRespostaUseCase()

	agora := time.Now()
	prefixo := fmt.Sprintf("RESP%d%02d", agora.Year(), int(agora.Month()))

	// Mês com volume acima de 9999: o sufixo ganha o quinto dígito e a
	// sequência continua sem repetir código
	require.NoError(t, respostaRepo.Create(&entities.RespostaFormulario{
		CodigoResposta: prefixo + "9999",
		FormularioID:   "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
	}))

	primeira, err := uc.Create(&dto.CreateRespostaFormularioDTO{
		FormularioID: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
	})
	require.NoError(t, err)
	assert.Equal(t, prefixo+"10000", primeira.CodigoResposta)

	segunda, err := uc.Create(&dto.CreateRespostaFormularioDTO{
		FormularioID: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
	})
	require.NoError(t, err)
	assert.Equal(t, prefixo+"10001", segunda.CodigoResposta)
}

func TestFinalizarRespostaIncompleta(t *testing.T) {
	uc, respostaRepo, _ := novaRespostaUseCase()

	formulario := formularioComCampos(entities.CampoFormulario{
		ID:          "c1",
		CodigoCampo: "TEMPERATURA",
		NomeCampo:   "Temperatura",
		TipoCampo:   entities.TipoCampoNumero,
		Obrigatorio: true,
		Ativo:       true,
	})
	resposta := novaRespostaComFormulario(respostaRepo, formulario)

	_, err := uc.Finalizar(resposta.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))
	assert.Equal(t, "Resposta incompleta: Campo obrigatório não preenchido: Temperatura", err.Error())
}

func TestFinalizarResposta(t *testing.T) {
	uc, respostaRepo, respostaCampoRepo := novaRespostaUseCase()

	formulario := formularioComCampos(entities.CampoFormulario{
		ID:          "c1",
		CodigoCampo: "TEMPERATURA",
		NomeCampo:   "Temperatura",
		TipoCampo:   entities.TipoCampoNumero,
		Obrigatorio: true,
		Ativo:       true,
	})
	resposta := novaRespostaComFormulario(respostaRepo, formulario)

	require.NoError(t, respostaCampoRepo.Create(&entities.RespostaCampo{
		RespostaFormularioID: resposta.ID,
		CampoFormularioID:    "c1",
		ValorNumerico:        numeroPtr(36.5),
	}))

	concluida, err := uc.Finalizar(resposta.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusRespostaConcluido, concluida.Status)
	assert.Equal(t, 100.0, concluida.PercentualCompleto)
	require.NotNil(t, concluida.DataFimPreenchimento)
	require.NotNil(t, concluida.TempoPreenchimentoSegundos)
	assert.GreaterOrEqual(t, *concluida.TempoPreenchimentoSegundos, 0)

	// Finalizar duas vezes não é permitido
	_, err = uc.Finalizar(resposta.ID)
	require.Error(t, err)
	assert.Equal(t, "Resposta já está concluída", err.Error())
}

func TestAssinarDigitalmente(t *testing.T) {
	uc, respostaRepo, _ := novaRespostaUseCase()

	formulario := formularioComCampos(entities.CampoFormulario{
		ID: "c1", CodigoCampo: "OBS", NomeCampo: "Observação", TipoCampo: entities.TipoCampoTexto, Ativo: true,
	})
	resposta := novaRespostaComFormulario(respostaRepo, formulario)

	_, err := uc.AssinarDigitalmente(resposta.ID, "f1d2d2f9", "CERT-ICP")
	require.Error(t, err)
	assert.Equal(t, "Só é possível assinar resposta concluída", err.Error())

	resposta.Status = entities.StatusRespostaConcluido
	require.NoError(t, respostaRepo.Save(resposta))

	assinada, err := uc.AssinarDigitalmente(resposta.ID, "f1d2d2f9", "CERT-ICP")
	require.NoError(t, err)
	assert.True(t, assinada.Assinado)
	assert.Equal(t, "f1d2d2f9|CERT-ICP", assinada.AssinaturaDigital)
	require.NotNil(t, assinada.DataAssinatura)

	_, err = uc.AssinarDigitalmente(resposta.ID, "outro", "")
	require.Error(t, err)
	assert.Equal(t, "Resposta já está assinada digitalmente", err.Error())
}

func TestUpdateStatusResposta(t *testing.T) {
	uc, respostaRepo, _ := novaRespostaUseCase()

	resposta := novaRespostaComFormulario(respostaRepo, formularioComCampos())

	revisao, err := uc.UpdateStatus(resposta.ID, entities.StatusRespostaRevisao, "Conferir unidade de medida")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusRespostaRevisao, revisao.Status)
	assert.Equal(t, "Conferir unidade de medida", revisao.ObservacoesValidacao)

	concluida, err := uc.UpdateStatus(resposta.ID, entities.StatusRespostaConcluido, "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, concluida.PercentualCompleto)
	require.NotNil(t, concluida.DataFimPreenchimento)

	resposta.Assinado = true
	require.NoError(t, respostaRepo.Save(resposta))

	_, err = uc.UpdateStatus(resposta.ID, entities.StatusRespostaRascunho, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))
	assert.Equal(t, "Não é possível alterar status de resposta assinada digitalmente", err.Error())
}

func TestUpdateRespostaBloqueios(t *testing.T) {
	uc, respostaRepo, _ := novaRespostaUseCase()

	resposta := novaRespostaComFormulario(respostaRepo, formularioComCampos())
	resposta.Status = entities.StatusRespostaConcluido
	require.NoError(t, respostaRepo.Save(resposta))

	_, err := uc.Update(resposta.ID, &dto.UpdateRespostaFormularioDTO{Observacoes: textoPtr("x")})
	require.Error(t, err)
	assert.Equal(t, "Não é possível editar resposta concluída", err.Error())

	resposta.Status = entities.StatusRespostaAprovado
	resposta.Assinado = true
	require.NoError(t, respostaRepo.Save(resposta))

	_, err = uc.Update(resposta.ID, &dto.UpdateRespostaFormularioDTO{Observacoes: textoPtr("x")})
	require.Error(t, err)
	assert.Equal(t, "Não é possível editar resposta assinada digitalmente", err.Error())
}

func TestCalcularPercentualCompleto(t *testing.T) {
	uc, respostaRepo, respostaCampoRepo := novaRespostaUseCase()

	formulario := formularioComCampos(
		entities.CampoFormulario{ID: "c1", CodigoCampo: "A", NomeCampo: "Campo A", TipoCampo: entities.TipoCampoTexto, Obrigatorio: true, Ativo: true},
		entities.CampoFormulario{ID: "c2", CodigoCampo: "B", NomeCampo: "Campo B", TipoCampo: entities.TipoCampoTexto, Obrigatorio: true, Ativo: true},
		entities.CampoFormulario{ID: "c3", CodigoCampo: "C", NomeCampo: "Campo C", TipoCampo: entities.TipoCampoTexto, Ativo: true},
		entities.CampoFormulario{ID: "c4", CodigoCampo: "D", NomeCampo: "Campo D", TipoCampo: entities.TipoCampoTexto, Ativo: false},
	)
	resposta := novaRespostaComFormulario(respostaRepo, formulario)

	require.NoError(t, respostaCampoRepo.Create(&entities.RespostaCampo{
		RespostaFormularioID: resposta.ID,
		CampoFormularioID:    "c1",
		ValorTexto:           textoPtr("preenchido"),
	}))
	// Resposta sem valor não conta como preenchida
	require.NoError(t, respostaCampoRepo.Create(&entities.RespostaCampo{
		RespostaFormularioID: resposta.ID,
		CampoFormularioID:    "c2",
	}))
	require.NoError(t, respostaCampoRepo.Create(&entities.RespostaCampo{
		RespostaFormularioID: resposta.ID,
		CampoFormularioID:    "c3",
		ValorTexto:           textoPtr("tambem"),
	}))

	progresso, err := uc.CalcularPercentualCompleto(resposta.ID)
	require.NoError(t, err)

	// Campo inativo fica fora da conta
	assert.Equal(t, 3, progresso.TotalCampos)
	assert.Equal(t, 2, progresso.CamposPreenchidos)
	assert.Equal(t, 2, progresso.TotalObrigatorios)
	assert.Equal(t, 1, progresso.ObrigatoriosPreenchidos)
	assert.Equal(t, []string{"Campo B"}, progresso.CamposPendentes)
	assert.InDelta(t, 66.67, progresso.Percentual, 0.01)

	// O progresso calculado fica persistido na resposta
	atual, err := respostaRepo.FindByID(resposta.ID)
	require.NoError(t, err)
	assert.InDelta(t, 66.67, atual.PercentualCompleto, 0.01)
	assert.Equal(t, 2, atual.CamposRespondidos)
	assert.Equal(t, 3, atual.TotalCampos)
}

func TestValidarRespostaRegras(t *testing.T) {
	uc, respostaRepo, respostaCampoRepo := novaRespostaUseCase()

	formulario := formularioComCampos(
		entities.CampoFormulario{
			ID: "c1", CodigoCampo: "NOME", NomeCampo: "Nome", TipoCampo: entities.TipoCampoTexto,
			Ativo: true, TamanhoMinimo: inteiroPtr(5), TamanhoMaximo: inteiroPtr(10),
		},
		entities.CampoFormulario{
			ID: "c2", CodigoCampo: "CPF", NomeCampo: "CPF", TipoCampo: entities.TipoCampoTexto,
			Ativo: true, Regex: `^\d{11}$`, MensagemErro: "CPF deve ter 11 dígitos",
		},
		entities.CampoFormulario{
			ID: "c3", CodigoCampo: "IDADE", NomeCampo: "Idade", TipoCampo: entities.TipoCampoNumero,
			Ativo: true, ValorMinimo: numeroPtr(0), ValorMaximo: numeroPtr(130),
		},
	)
	resposta := novaRespostaComFormulario(respostaRepo, formulario)

	require.NoError(t, respostaCampoRepo.Create(&entities.RespostaCampo{
		RespostaFormularioID: resposta.ID, CampoFormularioID: "c1", ValorTexto: textoPtr("abc"),
	}))
	require.NoError(t, respostaCampoRepo.Create(&entities.RespostaCampo{
		RespostaFormularioID: resposta.ID, CampoFormularioID: "c2", ValorTexto: textoPtr("123"),
	}))
	require.NoError(t, respostaCampoRepo.Create(&entities.RespostaCampo{
		RespostaFormularioID: resposta.ID, CampoFormularioID: "c3", ValorNumerico: numeroPtr(150),
	}))

	resultado, err := uc.ValidarResposta(resposta.ID)
	require.NoError(t, err)
	assert.False(t, resultado.Valido)
	assert.Equal(t, []string{
		"Campo Nome abaixo do tamanho mínimo de 5 caracteres",
		"CPF deve ter 11 dígitos",
		"Campo Idade acima do valor máximo de 130",
	}, resultado.Erros)
}

func TestValidarRespostaSemFormularioCarregado(t *testing.T) {
	uc, respostaRepo, _ := novaRespostaUseCase()

	resposta := &entities.RespostaFormulario{
		CodigoResposta: "RESP_SEM_FORM",
		FormularioID:   "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		Status:         entities.StatusRespostaRascunho,
	}
	require.NoError(t, respostaRepo.Create(resposta))

	resultado, err := uc.ValidarResposta(resposta.ID)
	require.NoError(t, err)
	assert.False(t, resultado.Valido)
	assert.Equal(t, []string{"Formulário não encontrado ou sem campos"}, resultado.Erros)
}

func TestDuplicarResposta(t *testing.T) {
	uc, respostaRepo, _ := novaRespostaUseCase()

	paciente := "55555555-5555-5555-5555-555555555555"
	original := novaRespostaComFormulario(respostaRepo, formularioComCampos())
	original.PacienteID = &paciente
	original.Status = entities.StatusRespostaConcluido
	original.PercentualCompleto = 100
	require.NoError(t, respostaRepo.Save(original))

	copia, err := uc.Duplicar(original.ID, "")
	require.NoError(t, err)
	assert.NotEqual(t, original.CodigoResposta, copia.CodigoResposta)
	assert.Equal(t, entities.StatusRespostaRascunho, copia.Status)
	assert.Equal(t, 0.0, copia.PercentualCompleto)
	require.NotNil(t, copia.PacienteID)
	assert.Equal(t, paciente, *copia.PacienteID)

	outroPaciente := "66666666-6666-6666-6666-666666666666"
	outraCopia, err := uc.Duplicar(original.ID, outroPaciente)
	require.NoError(t, err)
	require.NotNil(t, outraCopia.PacienteID)
	assert.Equal(t, outroPaciente, *outraCopia.PacienteID)
}

func TestRemoveRespostaBloqueios(t *testing.T) {
	uc, respostaRepo, respostaCampoRepo := novaRespostaUseCase()

	resposta := novaRespostaComFormulario(respostaRepo, formularioComCampos())
	require.NoError(t, respostaCampoRepo.Create(&entities.RespostaCampo{
		RespostaFormularioID: resposta.ID,
		CampoFormularioID:    "c1",
		ValorTexto:           textoPtr("valor"),
	}))

	resposta.Status = entities.StatusRespostaConcluido
	require.NoError(t, respostaRepo.Save(resposta))

	err := uc.Remove(resposta.ID)
	require.Error(t, err)
	assert.Equal(t, "Não é possível excluir resposta concluída", err.Error())

	resposta.Status = entities.StatusRespostaRascunho
	require.NoError(t, respostaRepo.Save(resposta))

	require.NoError(t, uc.Remove(resposta.ID))
	_, err = uc.FindOne(resposta.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	// As respostas de campo saem junto
	orfas, err := respostaCampoRepo.FindByResposta(resposta.ID)
	require.NoError(t, err)
	assert.Empty(t, orfas)
}
