package usecases

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/domain/repositories"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// ResultadoValidacao acumula o veredito e as mensagens de uma validação
type ResultadoValidacao struct {
	Valido bool     `json:"valido"`
	Erros  []string `json:"erros"`
}

type FormularioUseCase interface {
	Create(d *dto.CreateFormularioDTO) (*entities.Formulario, error)
	FindAll() ([]entities.Formulario, error)
	FindAtivos() ([]entities.Formulario, error)
	FindPublicados() ([]entities.Formulario, error)
	FindByTipo(tipo entities.TipoFormulario) ([]entities.Formulario, error)
	FindByStatus(status entities.StatusFormulario) ([]entities.Formulario, error)
	FindByCodigo(codigo string) (*entities.Formulario, error)
	Search(termo string) ([]entities.Formulario, error)
	FindOne(id string) (*entities.Formulario, error)
	Update(id string, d *dto.UpdateFormularioDTO) (*entities.Formulario, error)
	ToggleStatus(id string) (*entities.Formulario, error)
	UpdateStatus(id string, status entities.StatusFormulario) (*entities.Formulario, error)
	Publicar(id string) (*entities.Formulario, error)
	CriarVersao(id string) (*entities.Formulario, error)
	Remove(id string) error
	GetEstatisticas() (*repositories.EstatisticasFormularios, error)
	ValidarFormulario(id string) (*ResultadoValidacao, error)
}

type formularioUseCase struct {
	formularioRepo repositories.FormularioRepository
	respostaRepo   repositories.RespostaFormularioRepository
}

func NewFormularioUseCase(
	formularioRepo repositories.FormularioRepository,
	respostaRepo repositories.RespostaFormularioRepository,
) FormularioUseCase {
	return &formularioUseCase{formularioRepo, respostaRepo}
}

func (uc *formularioUseCase) Create(d *dto.CreateFormularioDTO) (*entities.Formulario, error) {
	existe, err := uc.formularioRepo.ExistsByCodigo(d.CodigoFormulario, "")
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, apperrors.Conflict("Já existe um formulário com o código %s", d.CodigoFormulario)
	}

	formulario := d.ToEntity()
	if err := uc.formularioRepo.Create(formulario); err != nil {
		// O índice único do banco é a fonte de verdade; a checagem acima só
		// antecipa o caso comum.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Já existe um formulário com o código %s", d.CodigoFormulario)
		}
		return nil, err
	}
	return formulario, nil
}

func (uc *formularioUseCase) FindAll() ([]entities.Formulario, error) {
	return uc.formularioRepo.FindAll()
}

func (uc *formularioUseCase) FindAtivos() ([]entities.Formulario, error) {
	return uc.formularioRepo.FindAtivos()
}

func (uc *formularioUseCase) FindPublicados() ([]entities.Formulario, error) {
	return uc.formularioRepo.FindPublicados()
}

func (uc *formularioUseCase) FindByTipo(tipo entities.TipoFormulario) ([]entities.Formulario, error) {
	return uc.formularioRepo.FindByTipo(tipo)
}

func (uc *formularioUseCase) FindByStatus(status entities.StatusFormulario) ([]entities.Formulario, error) {
	return uc.formularioRepo.FindByStatus(status)
}

func (uc *formularioUseCase) FindByCodigo(codigo string) (*entities.Formulario, error) {
	formulario, err := uc.formularioRepo.FindByCodigo(codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Formulário com código %s não encontrado", codigo)
		}
		return nil, err
	}
	return formulario, nil
}

func (uc *formularioUseCase) Search(termo string) ([]entities.Formulario, error) {
	return uc.formularioRepo.Search(termo)
}

func (uc *formularioUseCase) FindOne(id string) (*entities.Formulario, error) {
	formulario, err := uc.formularioRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Formulário com ID %s não encontrado", id)
		}
		return nil, err
	}
	return formulario, nil
}

func (uc *formularioUseCase) Update(id string, d *dto.UpdateFormularioDTO) (*entities.Formulario, error) {
	formulario, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	if d.CodigoFormulario != nil && *d.CodigoFormulario != formulario.CodigoFormulario {
		existe, err := uc.formularioRepo.ExistsByCodigo(*d.CodigoFormulario, id)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, apperrors.Conflict("Já existe um formulário com o código %s", *d.CodigoFormulario)
		}
	}

	d.ApplyTo(formulario)
	if err := uc.formularioRepo.Save(formulario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Já existe um formulário com o código %s", formulario.CodigoFormulario)
		}
		return nil, err
	}
	return formulario, nil
}

func (uc *formularioUseCase) ToggleStatus(id string) (*entities.Formulario, error) {
	formulario, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}
	formulario.Ativo = !formulario.Ativo
	if err := uc.formularioRepo.Save(formulario); err != nil {
		return nil, err
	}
	return formulario, nil
}

func (uc *formularioUseCase) UpdateStatus(id string, status entities.StatusFormulario) (*entities.Formulario, error) {
	formulario, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}
	formulario.Status = status
	if err := uc.formularioRepo.Save(formulario); err != nil {
		return nil, err
	}
	return formulario, nil
}

// Publicar valida o formulário e muda o status para publicado.
// Republicar e publicar formulário sem campos são rejeitados.
func (uc *formularioUseCase) Publicar(id string) (*entities.Formulario, error) {
	formulario, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	if formulario.Status == entities.StatusFormularioPublicado {
		return nil, apperrors.Conflict("Formulário já está publicado")
	}

	if len(formulario.Campos) == 0 {
		return nil, apperrors.BadRequest("Formulário deve ter pelo menos um campo para ser publicado")
	}

	formulario.Status = entities.StatusFormularioPublicado
	if err := uc.formularioRepo.Save(formulario); err != nil {
		return nil, err
	}
	return formulario, nil
}

// CriarVersao duplica o formulário como nova versão em rascunho, com os campos
// e alternativas copiados. A nova versão aponta para o formulário original.
func (uc *formularioUseCase) CriarVersao(id string) (*entities.Formulario, error) {
	original, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	novaVersao := original.Versao + 1
	paiID := original.ID
	if original.FormularioPaiID != nil {
		paiID = *original.FormularioPaiID
	}

	clone := &entities.Formulario{
		CodigoFormulario: fmt.Sprintf("%s_V%d", original.CodigoFormulario, novaVersao),
		NomeFormulario:   original.NomeFormulario,
		Descricao:        original.Descricao,
		Tipo:             original.Tipo,
		Categoria:        original.Categoria,
		Versao:           novaVersao,
		Status:           entities.StatusFormularioRascunho,
		Ativo:            true,
		Obrigatorio:      original.Obrigatorio,
		PermiteEdicao:    original.PermiteEdicao,
		RequerAssinatura: original.RequerAssinatura,
		PermiteAnexos:    original.PermiteAnexos,
		FormularioPaiID:  &paiID,
		Metadados:        original.Metadados,
		Observacoes:      original.Observacoes,
	}

	for _, campo := range original.Campos {
		novoCampo := campo
		novoCampo.ID = ""
		novoCampo.FormularioID = ""
		novoCampo.Formulario = nil
		novoCampo.Alternativas = nil
		for _, alternativa := range campo.Alternativas {
			novaAlternativa := alternativa
			novaAlternativa.ID = ""
			novaAlternativa.CampoFormularioID = ""
			novaAlternativa.CampoFormulario = nil
			novoCampo.Alternativas = append(novoCampo.Alternativas, novaAlternativa)
		}
		clone.Campos = append(clone.Campos, novoCampo)
	}

	if err := uc.formularioRepo.Create(clone); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Já existe um formulário com o código %s", clone.CodigoFormulario)
		}
		return nil, err
	}
	return clone, nil
}

func (uc *formularioUseCase) Remove(id string) error {
	formulario, err := uc.FindOne(id)
	if err != nil {
		return err
	}
	if formulario.Status == entities.StatusFormularioPublicado {
		return apperrors.Conflict("Formulário publicado não pode ser removido")
	}
	respostas, err := uc.respostaRepo.FindByFormulario(id)
	if err != nil {
		return err
	}
	if len(respostas) > 0 {
		return apperrors.Conflict("Formulário com respostas não pode ser removido")
	}
	return uc.formularioRepo.Delete(formulario)
}

func (uc *formularioUseCase) GetEstatisticas() (*repositories.EstatisticasFormularios, error) {
	return uc.formularioRepo.Estatisticas()
}

func (uc *formularioUseCase) ValidarFormulario(id string) (*ResultadoValidacao, error) {
	formulario, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}
	return uc.validar(formulario), nil
}

func (uc *formularioUseCase) validar(formulario *entities.Formulario) *ResultadoValidacao {
	var erros []string

	if len(formulario.Campos) == 0 {
		erros = append(erros, "Formulário deve ter pelo menos um campo")
	}

	obrigatorios := 0
	codigosVistos := map[string]bool{}
	var duplicados []string
	for _, campo := range formulario.Campos {
		if campo.Obrigatorio {
			obrigatorios++
		}
		if codigosVistos[campo.CodigoCampo] {
			duplicados = append(duplicados, campo.CodigoCampo)
		}
		codigosVistos[campo.CodigoCampo] = true
	}

	if obrigatorios == 0 {
		erros = append(erros, "Formulário deve ter pelo menos um campo obrigatório")
	}
	if len(duplicados) > 0 {
		erros = append(erros, fmt.Sprintf("Códigos de campos duplicados: %s", strings.Join(duplicados, ", ")))
	}

	return &ResultadoValidacao{
		Valido: len(erros) == 0,
		Erros:  erros,
	}
}
