package usecases

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/domain/repositories"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// ProgressoResposta é o resultado do cálculo real de completude sobre as
// respostas de campo persistidas.
type ProgressoResposta struct {
	Percentual              float64  `json:"percentual"`
	CamposPreenchidos       int      `json:"campos_preenchidos"`
	TotalCampos             int      `json:"total_campos"`
	ObrigatoriosPreenchidos int      `json:"obrigatorios_preenchidos"`
	TotalObrigatorios       int      `json:"total_obrigatorios"`
	CamposPendentes         []string `json:"campos_pendentes"`
}

type RespostaFormularioUseCase interface {
	Create(d *dto.CreateRespostaFormularioDTO) (*entities.RespostaFormulario, error)
	FindAll() ([]entities.RespostaFormulario, error)
	FindByFormulario(formularioID string) ([]entities.RespostaFormulario, error)
	FindByPaciente(pacienteID string) ([]entities.RespostaFormulario, error)
	FindByUsuario(usuarioID string) ([]entities.RespostaFormulario, error)
	FindByStatus(status entities.StatusResposta) ([]entities.RespostaFormulario, error)
	FindByOrdemServico(ordemServicoID string) ([]entities.RespostaFormulario, error)
	FindCompletas() ([]entities.RespostaFormulario, error)
	FindPendentesRevisao() ([]entities.RespostaFormulario, error)
	FindAssinadasDigitalmente() ([]entities.RespostaFormulario, error)
	FindByCodigo(codigo string) (*entities.RespostaFormulario, error)
	Search(termo string) ([]entities.RespostaFormulario, error)
	FindOne(id string) (*entities.RespostaFormulario, error)
	Update(id string, d *dto.UpdateRespostaFormularioDTO) (*entities.RespostaFormulario, error)
	UpdateStatus(id string, status entities.StatusResposta, observacoes string) (*entities.RespostaFormulario, error)
	Finalizar(id string) (*entities.RespostaFormulario, error)
	AssinarDigitalmente(id, hashAssinatura, certificadoDigital string) (*entities.RespostaFormulario, error)
	CalcularPercentualCompleto(id string) (*ProgressoResposta, error)
	Duplicar(id, novoPacienteID string) (*entities.RespostaFormulario, error)
	ValidarResposta(id string) (*ResultadoValidacao, error)
	Remove(id string) error
	GetEstatisticas() (*repositories.EstatisticasRespostas, error)
}

type respostaFormularioUseCase struct {
	respostaRepo      repositories.RespostaFormularioRepository
	respostaCampoRepo repositories.RespostaCampoRepository
}

func NewRespostaFormularioUseCase(
	respostaRepo repositories.RespostaFormularioRepository,
	respostaCampoRepo repositories.RespostaCampoRepository,
) RespostaFormularioUseCase {
	return &respostaFormularioUseCase{respostaRepo, respostaCampoRepo}
}

func (uc *respostaFormularioUseCase) Create(d *dto.CreateRespostaFormularioDTO) (*entities.RespostaFormulario, error) {
	resposta := d.ToEntity()

	codigo, err := uc.gerarCodigoResposta()
	if err != nil {
		return nil, err
	}
	resposta.CodigoResposta = codigo

	if err := uc.respostaRepo.Create(resposta); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Já existe uma resposta com o código %s", codigo)
		}
		return nil, err
	}
	return resposta, nil
}

func (uc *respostaFormularioUseCase) FindAll() ([]entities.RespostaFormulario, error) {
	return uc.respostaRepo.FindAll()
}

func (uc *respostaFormularioUseCase) FindByFormulario(formularioID string) ([]entities.RespostaFormulario, error) {
	return uc.respostaRepo.FindByFormulario(formularioID)
}

func (uc *respostaFormularioUseCase) FindByPaciente(pacienteID string) ([]entities.RespostaFormulario, error) {
	return uc.respostaRepo.FindByPaciente(pacienteID)
}

func (uc *respostaFormularioUseCase) FindByUsuario(usuarioID string) ([]entities.RespostaFormulario, error) {
	return uc.respostaRepo.FindByUsuario(usuarioID)
}

func (uc *respostaFormularioUseCase) FindByStatus(status entities.StatusResposta) ([]entities.RespostaFormulario, error) {
	return uc.respostaRepo.FindByStatus(status)
}

func (uc *respostaFormularioUseCase) FindByOrdemServico(ordemServicoID string) ([]entities.RespostaFormulario, error) {
	return uc.respostaRepo.FindByOrdemServico(ordemServicoID)
}

func (uc *respostaFormularioUseCase) FindCompletas() ([]entities.RespostaFormulario, error) {
	return uc.respostaRepo.FindCompletas()
}

func (uc *respostaFormularioUseCase) FindPendentesRevisao() ([]entities.RespostaFormulario, error) {
	return uc.respostaRepo.FindByStatus(entities.StatusRespostaRevisao)
}

func (uc *respostaFormularioUseCase) FindAssinadasDigitalmente() ([]entities.RespostaFormulario, error) {
	return uc.respostaRepo.FindAssinadas()
}

func (uc *respostaFormularioUseCase) FindByCodigo(codigo string) (*entities.RespostaFormulario, error) {
	resposta, err := uc.respostaRepo.FindByCodigo(codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Resposta com código %s não encontrada", codigo)
		}
		return nil, err
	}
	return resposta, nil
}

func (uc *respostaFormularioUseCase) Search(termo string) ([]entities.RespostaFormulario, error) {
	return uc.respostaRepo.Search(termo)
}

func (uc *respostaFormularioUseCase) FindOne(id string) (*entities.RespostaFormulario, error) {
	resposta, err := uc.respostaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Resposta com ID %s não encontrada", id)
		}
		return nil, err
	}
	return resposta, nil
}

func (uc *respostaFormularioUseCase) Update(id string, d *dto.UpdateRespostaFormularioDTO) (*entities.RespostaFormulario, error) {
	resposta, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	if resposta.Status == entities.StatusRespostaConcluido {
		return nil, apperrors.BadRequest("Não é possível editar resposta concluída")
	}
	if resposta.Assinado {
		return nil, apperrors.BadRequest("Não é possível editar resposta assinada digitalmente")
	}

	d.ApplyTo(resposta)
	if err := uc.respostaRepo.Save(resposta); err != nil {
		return nil, err
	}
	return resposta, nil
}

func (uc *respostaFormularioUseCase) UpdateStatus(id string, status entities.StatusResposta, observacoes string) (*entities.RespostaFormulario, error) {
	resposta, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	if resposta.Assinado && status == entities.StatusRespostaRascunho {
		return nil, apperrors.BadRequest("Não é possível alterar status de resposta assinada digitalmente")
	}

	resposta.Status = status
	if observacoes != "" {
		resposta.ObservacoesValidacao = observacoes
	}

	if status == entities.StatusRespostaConcluido {
		agora := time.Now()
		resposta.PercentualCompleto = 100
		resposta.DataFimPreenchimento = &agora
	}

	if err := uc.respostaRepo.Save(resposta); err != nil {
		return nil, err
	}
	return resposta, nil
}

// Finalizar valida a completude real da resposta e conclui o preenchimento
func (uc *respostaFormularioUseCase) Finalizar(id string) (*entities.RespostaFormulario, error) {
	resposta, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	if resposta.Status == entities.StatusRespostaConcluido {
		return nil, apperrors.BadRequest("Resposta já está concluída")
	}

	validacao, err := uc.validar(resposta)
	if err != nil {
		return nil, err
	}
	if !validacao.Valido {
		return nil, apperrors.BadRequest("Resposta incompleta: %s", strings.Join(validacao.Erros, ", "))
	}

	agora := time.Now()
	resposta.Status = entities.StatusRespostaConcluido
	resposta.PercentualCompleto = 100
	resposta.DataFimPreenchimento = &agora
	if resposta.DataInicioPreenchimento != nil {
		segundos := int(agora.Sub(*resposta.DataInicioPreenchimento).Seconds())
		resposta.TempoPreenchimentoSegundos = &segundos
	}

	if err := uc.respostaRepo.Save(resposta); err != nil {
		return nil, err
	}
	return resposta, nil
}

// AssinarDigitalmente registra o hash e o certificado produzidos pelo
// assinador externo. Só respostas concluídas e ainda não assinadas aceitam
// assinatura.
func (uc *respostaFormularioUseCase) AssinarDigitalmente(id, hashAssinatura, certificadoDigital string) (*entities.RespostaFormulario, error) {
	resposta, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	if resposta.Status != entities.StatusRespostaConcluido {
		return nil, apperrors.BadRequest("Só é possível assinar resposta concluída")
	}
	if resposta.Assinado {
		return nil, apperrors.BadRequest("Resposta já está assinada digitalmente")
	}

	agora := time.Now()
	resposta.Assinado = true
	resposta.AssinaturaDigital = fmt.Sprintf("%s|%s", hashAssinatura, certificadoDigital)
	resposta.DataAssinatura = &agora

	if err := uc.respostaRepo.Save(resposta); err != nil {
		return nil, err
	}
	return resposta, nil
}

// CalcularPercentualCompleto recalcula a completude a partir das respostas de
// campo persistidas e grava o progresso na resposta.
func (uc *respostaFormularioUseCase) CalcularPercentualCompleto(id string) (*ProgressoResposta, error) {
	resposta, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	progresso, err := uc.progresso(resposta)
	if err != nil {
		return nil, err
	}

	if err := uc.respostaRepo.AtualizarProgresso(id, progresso.Percentual, progresso.CamposPreenchidos, progresso.TotalCampos); err != nil {
		return nil, err
	}
	return progresso, nil
}

// Duplicar cria uma nova resposta em rascunho a partir da original, com novo
// código e sem as respostas de campo.
func (uc *respostaFormularioUseCase) Duplicar(id, novoPacienteID string) (*entities.RespostaFormulario, error) {
	original, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	codigo, err := uc.gerarCodigoResposta()
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	clone := &entities.RespostaFormulario{
		CodigoResposta:          codigo,
		FormularioID:            original.FormularioID,
		PacienteID:              original.PacienteID,
		UsuarioPreenchimentoID:  original.UsuarioPreenchimentoID,
		DataInicioPreenchimento: &agora,
		Status:                  entities.StatusRespostaRascunho,
		VersaoFormulario:        original.VersaoFormulario,
		OrigemResposta:          original.OrigemResposta,
		OrdemServicoID:          original.OrdemServicoID,
		AtendimentoID:           original.AtendimentoID,
		Metadados:               original.Metadados,
		Observacoes:             original.Observacoes,
	}
	if novoPacienteID != "" {
		clone.PacienteID = &novoPacienteID
	}

	if err := uc.respostaRepo.Create(clone); err != nil {
		return nil, err
	}
	return clone, nil
}

// ValidarResposta cruza cada resposta de campo com as regras do campo
// (obrigatoriedade, regex, limites de tamanho e valor).
func (uc *respostaFormularioUseCase) ValidarResposta(id string) (*ResultadoValidacao, error) {
	resposta, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}
	return uc.validar(resposta)
}

func (uc *respostaFormularioUseCase) Remove(id string) error {
	resposta, err := uc.FindOne(id)
	if err != nil {
		return err
	}

	if resposta.Status == entities.StatusRespostaConcluido {
		return apperrors.BadRequest("Não é possível excluir resposta concluída")
	}
	if resposta.Assinado {
		return apperrors.BadRequest("Não é possível excluir resposta assinada digitalmente")
	}

	// As respostas de campo saem junto com a resposta
	if err := uc.respostaCampoRepo.DeleteByResposta(resposta.ID); err != nil {
		return err
	}
	return uc.respostaRepo.Delete(resposta)
}

func (uc *respostaFormularioUseCase) GetEstatisticas() (*repositories.EstatisticasRespostas, error) {
	return uc.respostaRepo.Estatisticas()
}

func (uc *respostaFormularioUseCase) validar(resposta *entities.RespostaFormulario) (*ResultadoValidacao, error) {
	var erros []string

	if resposta.Formulario == nil || len(resposta.Formulario.Campos) == 0 {
		return &ResultadoValidacao{
			Valido: false,
			Erros:  []string{"Formulário não encontrado ou sem campos"},
		}, nil
	}

	respostasCampo, err := uc.respostaCampoRepo.FindByResposta(resposta.ID)
	if err != nil {
		return nil, err
	}

	porCampo := make(map[string]*entities.RespostaCampo, len(respostasCampo))
	for i := range respostasCampo {
		porCampo[respostasCampo[i].CampoFormularioID] = &respostasCampo[i]
	}

	for _, campo := range resposta.Formulario.Campos {
		if !campo.Ativo {
			continue
		}

		respostaCampo := porCampo[campo.ID]
		preenchida := respostaCampo != nil && respostaCampo.Preenchida()

		if campo.Obrigatorio && !preenchida {
			erros = append(erros, fmt.Sprintf("Campo obrigatório não preenchido: %s", campo.NomeCampo))
			continue
		}
		if !preenchida {
			continue
		}

		valorTexto := respostaCampo.ValorComoTexto()
		if valorTexto != "" {
			if campo.TamanhoMinimo != nil && len([]rune(valorTexto)) < *campo.TamanhoMinimo {
				erros = append(erros, fmt.Sprintf("Campo %s abaixo do tamanho mínimo de %d caracteres", campo.NomeCampo, *campo.TamanhoMinimo))
			}
			if campo.TamanhoMaximo != nil && len([]rune(valorTexto)) > *campo.TamanhoMaximo {
				erros = append(erros, fmt.Sprintf("Campo %s acima do tamanho máximo de %d caracteres", campo.NomeCampo, *campo.TamanhoMaximo))
			}
			if campo.Regex != "" {
				re, err := regexp.Compile(campo.Regex)
				if err == nil && !re.MatchString(valorTexto) {
					mensagem := campo.MensagemErro
					if mensagem == "" {
						mensagem = fmt.Sprintf("Campo %s não atende ao formato exigido", campo.NomeCampo)
					}
					erros = append(erros, mensagem)
				}
			}
		}

		if respostaCampo.ValorNumerico != nil {
			if campo.ValorMinimo != nil && *respostaCampo.ValorNumerico < *campo.ValorMinimo {
				erros = append(erros, fmt.Sprintf("Campo %s abaixo do valor mínimo de %v", campo.NomeCampo, *campo.ValorMinimo))
			}
			if campo.ValorMaximo != nil && *respostaCampo.ValorNumerico > *campo.ValorMaximo {
				erros = append(erros, fmt.Sprintf("Campo %s acima do valor máximo de %v", campo.NomeCampo, *campo.ValorMaximo))
			}
		}
	}

	return &ResultadoValidacao{
		Valido: len(erros) == 0,
		Erros:  erros,
	}, nil
}

func (uc *respostaFormularioUseCase) progresso(resposta *entities.RespostaFormulario) (*ProgressoResposta, error) {
	progresso := &ProgressoResposta{CamposPendentes: []string{}}

	if resposta.Formulario == nil || len(resposta.Formulario.Campos) == 0 {
		return progresso, nil
	}

	respostasCampo, err := uc.respostaCampoRepo.FindByResposta(resposta.ID)
	if err != nil {
		return nil, err
	}

	preenchidos := make(map[string]bool, len(respostasCampo))
	for i := range respostasCampo {
		if respostasCampo[i].Preenchida() {
			preenchidos[respostasCampo[i].CampoFormularioID] = true
		}
	}

	for _, campo := range resposta.Formulario.Campos {
		if !campo.Ativo {
			continue
		}
		progresso.TotalCampos++
		if preenchidos[campo.ID] {
			progresso.CamposPreenchidos++
		}
		if campo.Obrigatorio {
			progresso.TotalObrigatorios++
			if preenchidos[campo.ID] {
				progresso.ObrigatoriosPreenchidos++
			} else {
				progresso.CamposPendentes = append(progresso.CamposPendentes, campo.NomeCampo)
			}
		}
	}

	if progresso.TotalCampos > 0 {
		progresso.Percentual = float64(progresso.CamposPreenchidos) / float64(progresso.TotalCampos) * 100
	}
	return progresso, nil
}

// gerarCodigoResposta produz o próximo código sequencial RESP<ano><mês><nnnn>,
// reiniciando a numeração a cada mês.
func (uc *respostaFormularioUseCase) gerarCodigoResposta() (string, error) {
	agora := time.Now()
	prefixo := fmt.Sprintf("RESP%d%02d", agora.Year(), int(agora.Month()))

	ultimo, err := uc.respostaRepo.UltimoCodigo(prefixo)
	if err != nil {
		return "", err
	}

	// O sufixo é o que sobra depois do prefixo. Acima de 9999 ele passa a ter
	// cinco dígitos, então não dá para fatiar um tamanho fixo.
	proximo := 1
	if len(ultimo) > len(prefixo) {
		if numero, err := strconv.Atoi(ultimo[len(prefixo):]); err == nil {
			proximo = numero + 1
		}
	}

	return fmt.Sprintf("%s%04d", prefixo, proximo), nil
}
