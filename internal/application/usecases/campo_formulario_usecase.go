package usecases

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/domain/repositories"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

type CampoFormularioUseCase interface {
	Create(d *dto.CreateCampoFormularioDTO) (*entities.CampoFormulario, error)
	FindByFormulario(formularioID string) ([]entities.CampoFormulario, error)
	FindAtivos(formularioID string) ([]entities.CampoFormulario, error)
	FindByTipo(formularioID string, tipo entities.TipoCampo) ([]entities.CampoFormulario, error)
	FindObrigatorios(formularioID string) ([]entities.CampoFormulario, error)
	FindByCodigo(formularioID, codigo string) (*entities.CampoFormulario, error)
	Search(formularioID, termo string) ([]entities.CampoFormulario, error)
	FindOne(id string) (*entities.CampoFormulario, error)
	Update(id string, d *dto.UpdateCampoFormularioDTO) (*entities.CampoFormulario, error)
	Reordenar(formularioID string, ordens []dto.OrdemItemDTO) error
	Duplicar(id, novoCodigoCampo string) (*entities.CampoFormulario, error)
	ToggleStatus(id string) (*entities.CampoFormulario, error)
	UpdateStatus(id string, status entities.StatusCampo) (*entities.CampoFormulario, error)
	Remove(id string) error
	GetEstatisticas(formularioID string) (*repositories.EstatisticasCampos, error)
	ValidarCampo(id string) (*ResultadoValidacao, error)
	GetCamposPadrao() *CatalogoCamposPadrao
	GetCampoPadraoByCodigo(codigo string) (*CampoPadraoInfo, error)
	GetCamposPadraoPorCategoria(categoria string) *CatalogoCamposPadrao
	GetTiposCampo() *CatalogoTiposCampo
}

type campoFormularioUseCase struct {
	campoRepo repositories.CampoFormularioRepository
	catalogo  *cache.Cache
}

func NewCampoFormularioUseCase(campoRepo repositories.CampoFormularioRepository) CampoFormularioUseCase {
	return &campoFormularioUseCase{
		campoRepo: campoRepo,
		catalogo:  cache.New(cache.NoExpiration, time.Hour),
	}
}

func (uc *campoFormularioUseCase) Create(d *dto.CreateCampoFormularioDTO) (*entities.CampoFormulario, error) {
	existe, err := uc.campoRepo.ExistsByCodigo(d.FormularioID, d.CodigoCampo, "")
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, apperrors.Conflict("Já existe um campo com o código %s neste formulário", d.CodigoCampo)
	}

	campo := d.ToEntity()
	if campo.Ordem == 0 {
		max, err := uc.campoRepo.MaxOrdem(d.FormularioID)
		if err != nil {
			return nil, err
		}
		campo.Ordem = max + 1
	}

	if err := uc.campoRepo.Create(campo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Já existe um campo com o código %s neste formulário", d.CodigoCampo)
		}
		return nil, err
	}
	return campo, nil
}

func (uc *campoFormularioUseCase) FindByFormulario(formularioID string) ([]entities.CampoFormulario, error) {
	return uc.campoRepo.FindByFormulario(formularioID)
}

func (uc *campoFormularioUseCase) FindAtivos(formularioID string) ([]entities.CampoFormulario, error) {
	return uc.campoRepo.FindAtivos(formularioID)
}

func (uc *campoFormularioUseCase) FindByTipo(formularioID string, tipo entities.TipoCampo) ([]entities.CampoFormulario, error) {
	return uc.campoRepo.FindByTipo(formularioID, tipo)
}

func (uc *campoFormularioUseCase) FindObrigatorios(formularioID string) ([]entities.CampoFormulario, error) {
	return uc.campoRepo.FindObrigatorios(formularioID)
}

func (uc *campoFormularioUseCase) FindByCodigo(formularioID, codigo string) (*entities.CampoFormulario, error) {
	campo, err := uc.campoRepo.FindByCodigo(formularioID, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Campo com código %s não encontrado neste formulário", codigo)
		}
		return nil, err
	}
	return campo, nil
}

func (uc *campoFormularioUseCase) Search(formularioID, termo string) ([]entities.CampoFormulario, error) {
	return uc.campoRepo.Search(formularioID, termo)
}

func (uc *campoFormularioUseCase) FindOne(id string) (*entities.CampoFormulario, error) {
	campo, err := uc.campoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Campo com ID %s não encontrado", id)
		}
		return nil, err
	}
	return campo, nil
}

func (uc *campoFormularioUseCase) Update(id string, d *dto.UpdateCampoFormularioDTO) (*entities.CampoFormulario, error) {
	campo, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	if d.CodigoCampo != nil && *d.CodigoCampo != campo.CodigoCampo {
		existe, err := uc.campoRepo.ExistsByCodigo(campo.FormularioID, *d.CodigoCampo, id)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, apperrors.Conflict("Já existe um campo com o código %s neste formulário", *d.CodigoCampo)
		}
	}

	d.ApplyTo(campo)
	if err := uc.campoRepo.Save(campo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Já existe um campo com o código %s neste formulário", campo.CodigoCampo)
		}
		return nil, err
	}
	return campo, nil
}

// Reordenar aplica as novas ordens atomicamente. Ids que não pertencem ao
// formulário são ignorados.
func (uc *campoFormularioUseCase) Reordenar(formularioID string, ordens []dto.OrdemItemDTO) error {
	campos, err := uc.campoRepo.FindByFormulario(formularioID)
	if err != nil {
		return err
	}

	porID := make(map[string]*entities.CampoFormulario, len(campos))
	for i := range campos {
		porID[campos[i].ID] = &campos[i]
	}

	var alterados []entities.CampoFormulario
	for _, item := range ordens {
		if campo, ok := porID[item.ID]; ok {
			campo.Ordem = item.Ordem
			alterados = append(alterados, *campo)
		}
	}

	return uc.campoRepo.Reordenar(alterados)
}

// Duplicar copia o campo com um novo código, nome sufixado e ordem no fim da
// lista. As alternativas do campo original são copiadas junto.
func (uc *campoFormularioUseCase) Duplicar(id, novoCodigoCampo string) (*entities.CampoFormulario, error) {
	original, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	codigo := novoCodigoCampo
	if codigo == "" {
		codigo = original.CodigoCampo + "_COPY"
	}

	existe, err := uc.campoRepo.ExistsByCodigo(original.FormularioID, codigo, "")
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, apperrors.Conflict("Já existe um campo com o código %s neste formulário", codigo)
	}

	max, err := uc.campoRepo.MaxOrdem(original.FormularioID)
	if err != nil {
		return nil, err
	}

	clone := *original
	clone.ID = ""
	clone.Formulario = nil
	clone.CodigoCampo = codigo
	clone.NomeCampo = fmt.Sprintf("%s (Cópia)", original.NomeCampo)
	clone.Ordem = max + 1
	clone.CreatedAt = time.Time{}
	clone.UpdatedAt = time.Time{}
	clone.Alternativas = nil
	for _, alternativa := range original.Alternativas {
		novaAlternativa := alternativa
		novaAlternativa.ID = ""
		novaAlternativa.CampoFormularioID = ""
		novaAlternativa.CampoFormulario = nil
		clone.Alternativas = append(clone.Alternativas, novaAlternativa)
	}

	if err := uc.campoRepo.Create(&clone); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Já existe um campo com o código %s neste formulário", codigo)
		}
		return nil, err
	}
	return &clone, nil
}

func (uc *campoFormularioUseCase) ToggleStatus(id string) (*entities.CampoFormulario, error) {
	campo, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}
	campo.Ativo = !campo.Ativo
	if err := uc.campoRepo.Save(campo); err != nil {
		return nil, err
	}
	return campo, nil
}

func (uc *campoFormularioUseCase) UpdateStatus(id string, status entities.StatusCampo) (*entities.CampoFormulario, error) {
	campo, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}
	campo.Status = status
	if err := uc.campoRepo.Save(campo); err != nil {
		return nil, err
	}
	return campo, nil
}

func (uc *campoFormularioUseCase) Remove(id string) error {
	campo, err := uc.FindOne(id)
	if err != nil {
		return err
	}
	return uc.campoRepo.Delete(campo)
}

func (uc *campoFormularioUseCase) GetEstatisticas(formularioID string) (*repositories.EstatisticasCampos, error) {
	return uc.campoRepo.Estatisticas(formularioID)
}

// ValidarCampo faz a checagem de consistência da definição, sem persistir
// nada. Todas as violações aparecem no resultado, na ordem de verificação.
func (uc *campoFormularioUseCase) ValidarCampo(id string) (*ResultadoValidacao, error) {
	campo, err := uc.FindOne(id)
	if err != nil {
		return nil, err
	}

	var erros []string

	if campo.TipoCampo == entities.TipoCampoSelect && len(campo.Alternativas) == 0 {
		erros = append(erros, "Campo de seleção deve ter pelo menos uma alternativa")
	}
	if campo.TipoCampo == entities.TipoCampoRadio && len(campo.Alternativas) == 0 {
		erros = append(erros, "Campo de rádio deve ter pelo menos uma alternativa")
	}
	if campo.TipoCampo == entities.TipoCampoMultiplaEscolha && len(campo.Alternativas) == 0 {
		erros = append(erros, "Campo de múltipla escolha deve ter pelo menos uma alternativa")
	}

	if campo.TamanhoMinimo != nil && campo.TamanhoMaximo != nil && *campo.TamanhoMinimo > *campo.TamanhoMaximo {
		erros = append(erros, "Tamanho mínimo não pode ser maior que o tamanho máximo")
	}
	if campo.ValorMinimo != nil && campo.ValorMaximo != nil && *campo.ValorMinimo > *campo.ValorMaximo {
		erros = append(erros, "Valor mínimo não pode ser maior que o valor máximo")
	}

	return &ResultadoValidacao{
		Valido: len(erros) == 0,
		Erros:  erros,
	}, nil
}

func (uc *campoFormularioUseCase) GetCamposPadrao() *CatalogoCamposPadrao {
	if cached, found := uc.catalogo.Get("campos_padrao"); found {
		return cached.(*CatalogoCamposPadrao)
	}

	campos := camposPadraoInfo()
	categorias := categoriasDe(campos)

	resultado := &CatalogoCamposPadrao{
		Campos:     campos,
		Total:      len(campos),
		Categorias: categorias,
	}
	uc.catalogo.Set("campos_padrao", resultado, cache.NoExpiration)
	return resultado
}

func (uc *campoFormularioUseCase) GetCampoPadraoByCodigo(codigo string) (*CampoPadraoInfo, error) {
	for _, campo := range camposPadraoInfo() {
		if campo.Codigo == codigo {
			return &campo, nil
		}
	}
	return nil, apperrors.NotFound("Campo padrão com código %s não encontrado", codigo)
}

func (uc *campoFormularioUseCase) GetCamposPadraoPorCategoria(categoria string) *CatalogoCamposPadrao {
	var campos []CampoPadraoInfo
	for _, campo := range camposPadraoInfo() {
		if campo.Categoria == categoria {
			campos = append(campos, campo)
		}
	}
	return &CatalogoCamposPadrao{
		Campos:     campos,
		Total:      len(campos),
		Categorias: []string{categoria},
	}
}

func (uc *campoFormularioUseCase) GetTiposCampo() *CatalogoTiposCampo {
	if cached, found := uc.catalogo.Get("tipos_campo"); found {
		return cached.(*CatalogoTiposCampo)
	}

	var tipos []TipoCampoInfo
	for _, tipo := range tiposCampoOrdenados() {
		tipos = append(tipos, TipoCampoInfo{
			Valor:               tipo,
			Label:               tipoCampoLabel(tipo),
			Categoria:           tipoCampoCategoria(tipo),
			PermiteAlternativas: tipo.PermiteAlternativas(),
			Descricao:           tipoCampoDescricao(tipo),
		})
	}

	vistas := map[string]bool{}
	var categorias []string
	for _, tipo := range tipos {
		if !vistas[tipo.Categoria] {
			vistas[tipo.Categoria] = true
			categorias = append(categorias, tipo.Categoria)
		}
	}
	sort.Strings(categorias)

	resultado := &CatalogoTiposCampo{
		Tipos:      tipos,
		Total:      len(tipos),
		Categorias: categorias,
	}
	uc.catalogo.Set("tipos_campo", resultado, cache.NoExpiration)
	return resultado
}

func categoriasDe(campos []CampoPadraoInfo) []string {
	vistas := map[string]bool{}
	var categorias []string
	for _, campo := range campos {
		if !vistas[campo.Categoria] {
			vistas[campo.Categoria] = true
			categorias = append(categorias, campo.Categoria)
		}
	}
	sort.Strings(categorias)
	return categorias
}
