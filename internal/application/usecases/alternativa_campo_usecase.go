package usecases

import (
	"errors"
	"fmt"
	"time"

	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/domain/repositories"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// ResultadoImportacao separa as alternativas criadas dos códigos ignorados,
// para o chamador distinguir "pulada por duplicidade" de falha.
type ResultadoImportacao struct {
	Criadas   []entities.AlternativaCampo `json:"criadas"`
	Ignoradas []string                    `json:"ignoradas"`
}

type AlternativaCampoUseCase interface {
	Create(d *dto.CreateAlternativaCampoDTO) (*entities.AlternativaCampo, error)
	FindByCampo(campoFormularioID string) ([]entities.AlternativaCampo, error)
	FindAtivas(campoFormularioID string) ([]entities.AlternativaCampo, error)
	FindPadrao(campoFormularioID string) ([]entities.AlternativaCampo, error)
	FindByValor(campoFormularioID, valor string) (*entities.AlternativaCampo, error)
	FindByCodigo(campoFormularioID, codigo string) (*entities.AlternativaCampo, error)
	Search(campoFormularioID, termo string) ([]entities.AlternativaCampo, error)
	FindOne(id string) (*entities.AlternativaCampo, error)
	Update(id string, d *dto.UpdateAlternativaCampoDTO) (*entities.AlternativaCampo, error)
	Reordenar(campoFormularioID string, ordens []dto.OrdemItemDTO) error
	Duplicar(id, novoCodigo string) (*entities.AlternativaCampo, error)
	ToggleStatus(id string) (*entities.AlternativaCampo, error)
	UpdateStatus(id string, status entities.StatusAlternativa) (*entities.AlternativaCampo, error)
	DefinirPadrao(id string) (*entities.AlternativaCampo, error)
	RemoverPadrao(campoFormularioID string) error
	ImportarAlternativas(campoFormularioID string, itens []dto.ImportarAlternativaItemDTO) (*ResultadoImportacao, error)
	Remove(id string) error
	GetEstatisticas(campoFormularioID string) (*repositories.EstatisticasAlternativas, error)
}

type alternativaCampoUseCase struct {
	alternativaRepo repositories.AlternativaCampoRepository
}

func NewAlternativaCampoUseCase(alternativaRepo repositories.AlternativaCampoRepository) AlternativaCampoUseCase {
	return &alternativaCampoUseCase{alternativaRepo}
}

func (uc *alternativaCampoUseCase) Create(d *dto.CreateAlternativaCampoDTO) (*entities.AlternativaCampo, error) {
	existeCodigo, err := uc.alternativaRepo.ExistsByCodigo(d.CampoFormularioID, d.CodigoAlternativa, "")
	if err != nil {
		return nil, err
	}
	if existeCodigo {
		return nil, apperrors.Conflict("Já existe uma alternativa com o código %s neste campo", d.CodigoAlternativa)
	}

	existeValor, err := uc.alternativaRepo.ExistsByValor(d.CampoFormularioID, d.Valor, "")
	if err != nil {
		return nil, err
	}
	if existeValor {
		return nil, apperrors.Conflict("Já existe uma alternativa com o valor %s neste campo", d.Valor)
	}

	alternativa := d.ToEntity()
	if alternativa.Ordem == 0 {
		max, err := uc.alternativaRepo.MaxOrdem(d.CampoFormularioID)
		if err != nil {
			return nil, err
		}
		alternativa.Ordem = max + 1
	}

	if err := uc.alternativaRepo.Create(alternativa); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Já existe uma alternativa com o código %s ou valor %s neste campo", d.CodigoAlternativa, d.Valor)
		}
		return nil, err
	}
	return alternativa, nil
}

func (uc *alternativaCampoUseCase) FindByCampo(campoFormularioID string) ([]entities.AlternativaCampo, error) {
	return uc.alternativaRepo.FindByCampo(campoFormularioID)
}

func (uc *alternativaCampoUseCase) FindAtivas(campoFormularioID string) ([]entities.AlternativaCampo, error) {
	return uc.alternativaRepo.FindAtivas(campoFormularioID)
}

func (uc *alternativaCampoUseCase) FindPadrao(campoFormularioID string) ([]entities.AlternativaCampo, error) {
	return uc.alternativaRepo.FindPadrao(campoFormularioID)
}

func (uc *alternativaCampoUseCase) FindByValor(campoFormularioID, valor string) (*entities.AlternativaCampo, error) {
	alternativa, err := uc.alternativaRepo.FindByValor(campoFormularioID, valor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Alternativa com valor %s não encontrada neste campo", valor)
		}
		return nil, err
	}
	return alternativa, nil
}

func (uc *alternativaCampoUseCase) FindByCodigo(campoFormularioID, codigo string) (*entities.AlternativaCampo, error) {
	alternativa, err := uc.alternativaRepo.FindByCodigo(campoFormularioID, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Alternativa com código %s não encontrada neste campo", codigo)
		}
		return nil, err
	}
	return alternativa, nil
}

func (uc *alternativaCampoUseCase) Search(campoFormularioID, termo string) ([]entities.AlternativaCampo, error) {
	return uc.alternativaRepo.Search(campoFormularioID, termo)
}

func (uc *alternativaCampoUseCase) FindOne(id string) (*entities.AlternativaCampo, error) {
	alternativa, err := uc.alternativaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Alternativa com ID %s não encontrada", id)
		}
		return nil, err
	}
	return alternativa, nil
}

func (uc *alternativaCampoUseCase) Update(id string, d *dto.UpdateAlternativaCampoDTO) (*entities.AlternativaCampo, error) {
	alternativa, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	if d.CodigoAlternativa != nil && *d.CodigoAlternativa != alternativa.CodigoAlternativa {
		existe, err := uc.alternativaRepo.ExistsByCodigo(alternativa.CampoFormularioID, *d.CodigoAlternativa, id)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, apperrors.Conflict("Já existe uma alternativa com o código %s neste campo", *d.CodigoAlternativa)
		}
	}

	if d.Valor != nil && *d.Valor != alternativa.Valor {
		existe, err := uc.alternativaRepo.ExistsByValor(alternativa.CampoFormularioID, *d.Valor, id)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, apperrors.Conflict("Já existe uma alternativa com o valor %s neste campo", *d.Valor)
		}
	}

	d.ApplyTo(alternativa)
	if err := uc.alternativaRepo.Save(alternativa); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Já existe uma alternativa com o código %s ou valor %s neste campo", alternativa.CodigoAlternativa, alternativa.Valor)
		}
		return nil, err
	}
	return alternativa, nil
}

// Reordenar aplica as novas ordens atomicamente. Ids que não pertencem ao
// campo são ignorados.
func (uc *alternativaCampoUseCase) Reordenar(campoFormularioID string, ordens []dto.OrdemItemDTO) error {
	alternativas, err := uc.alternativaRepo.FindByCampo(campoFormularioID)
	if err != nil {
		return err
	}

	porID := make(map[string]*entities.AlternativaCampo, len(alternativas))
	for i := range alternativas {
		porID[alternativas[i].ID] = &alternativas[i]
	}

	var alteradas []entities.AlternativaCampo
	for _, item := range ordens {
		if alternativa, ok := porID[item.ID]; ok {
			alternativa.Ordem = item.Ordem
			alteradas = append(alteradas, *alternativa)
		}
	}

	return uc.alternativaRepo.Reordenar(alteradas)
}

// Duplicar copia a alternativa sufixando código, texto e valor. A cópia nunca
// nasce como padrão do campo.
func (uc *alternativaCampoUseCase) Duplicar(id, novoCodigo string) (*entities.AlternativaCampo, error) {
	original, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	codigo := novoCodigo
	if codigo == "" {
		codigo = original.CodigoAlternativa + "_COPY"
	}

	existe, err := uc.alternativaRepo.ExistsByCodigo(original.CampoFormularioID, codigo, "")
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, apperrors.Conflict("Já existe uma alternativa com o código %s neste campo", codigo)
	}

	max, err := uc.alternativaRepo.MaxOrdem(original.CampoFormularioID)
	if err != nil {
		return nil, err
	}

	clone := *original
	clone.ID = ""
	clone.CampoFormulario = nil
	clone.CodigoAlternativa = codigo
	clone.TextoAlternativa = fmt.Sprintf("%s (Cópia)", original.TextoAlternativa)
	clone.Valor = original.Valor + "_COPY"
	clone.Ordem = max + 1
	clone.SelecionadoPadrao = false
	clone.CreatedAt = time.Time{}
	clone.UpdatedAt = time.Time{}

	if err := uc.alternativaRepo.Create(&clone); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Já existe uma alternativa com o código %s ou valor %s neste campo", clone.CodigoAlternativa, clone.Valor)
		}
		return nil, err
	}
	return &clone, nil
}

func (uc *alternativaCampoUseCase) ToggleStatus(id string) (*entities.AlternativaCampo, error) {
	alternativa, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}
	alternativa.Ativo = !alternativa.Ativo
	if err := uc.alternativaRepo.Save(alternativa); err != nil {
		return nil, err
	}
	return alternativa, nil
}

func (uc *alternativaCampoUseCase) UpdateStatus(id string, status entities.StatusAlternativa) (*entities.AlternativaCampo, error) {
	alternativa, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}
	alternativa.Status = status
	if err := uc.alternativaRepo.Save(alternativa); err != nil {
		return nil, err
	}
	return alternativa, nil
}

// DefinirPadrao marca a alternativa como padrão do campo. A troca é atômica:
// ao final existe exatamente um padrão.
func (uc *alternativaCampoUseCase) DefinirPadrao(id string) (*entities.AlternativaCampo, error) {
	alternativa, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := uc.alternativaRepo.DefinirPadrao(alternativa); err != nil {
		return nil, err
	}
	alternativa.SelecionadoPadrao = true
	return alternativa, nil
}

func (uc *alternativaCampoUseCase) RemoverPadrao(campoFormularioID string) error {
	return uc.alternativaRepo.LimparPadrao(campoFormularioID)
}

// ImportarAlternativas cria em lote pulando colisões de código ou valor.
// A ordem segue sequencial a partir do maior valor existente.
func (uc *alternativaCampoUseCase) ImportarAlternativas(campoFormularioID string, itens []dto.ImportarAlternativaItemDTO) (*ResultadoImportacao, error) {
	existentes, err := uc.alternativaRepo.FindByCampo(campoFormularioID)
	if err != nil {
		return nil, err
	}

	codigosExistentes := map[string]bool{}
	valoresExistentes := map[string]bool{}
	ordem := 0
	for _, alternativa := range existentes {
		codigosExistentes[alternativa.CodigoAlternativa] = true
		valoresExistentes[alternativa.Valor] = true
		if alternativa.Ordem > ordem {
			ordem = alternativa.Ordem
		}
	}
	ordem++

	resultado := &ResultadoImportacao{
		Criadas:   []entities.AlternativaCampo{},
		Ignoradas: []string{},
	}

	for _, item := range itens {
		if codigosExistentes[item.Codigo] || valoresExistentes[item.Valor] {
			resultado.Ignoradas = append(resultado.Ignoradas, item.Codigo)
			continue
		}

		alternativa := &entities.AlternativaCampo{
			CampoFormularioID: campoFormularioID,
			CodigoAlternativa: item.Codigo,
			Valor:             item.Valor,
			TextoAlternativa:  item.Rotulo,
			Descricao:         item.Descricao,
			Pontuacao:         item.Score,
			Ordem:             ordem,
			Peso:              1.0,
			Status:            entities.StatusAlternativaAtiva,
			Ativo:             true,
			VisivelImpressao:  true,
			VisivelPortal:     true,
		}
		if err := uc.alternativaRepo.Create(alternativa); err != nil {
			return nil, err
		}
		ordem++

		// Itens duplicados dentro do próprio lote também são pulados
		codigosExistentes[item.Codigo] = true
		valoresExistentes[item.Valor] = true

		resultado.Criadas = append(resultado.Criadas, *alternativa)
	}

	return resultado, nil
}

func (uc *alternativaCampoUseCase) Remove(id string) error {
	alternativa, err := uc.FindOne(id)
	if err != nil {
		return err
	}
	return uc.alternativaRepo.Delete(alternativa)
}

func (uc *alternativaCampoUseCase) GetEstatisticas(campoFormularioID string) (*repositories.EstatisticasAlternativas, error) {
	return uc.alternativaRepo.Estatisticas(campoFormularioID)
}
