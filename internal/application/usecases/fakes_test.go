package usecases

import (
	"strings"

	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/domain/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fakes em memória que reproduzem o contrato dos repositórios, inclusive os
// índices únicos (devolvendo gorm.ErrDuplicatedKey) e o gorm.ErrRecordNotFound.

type fakeFormularioRepo struct {
	formularios map[string]*entities.Formulario
}

func newFakeFormularioRepo() *fakeFormularioRepo {
	return &fakeFormularioRepo{formularios: map[string]*entities.Formulario{}}
}

func (f *fakeFormularioRepo) Create(formulario *entities.Formulario) error {
	for _, existente := range f.formularios {
		if existente.CodigoFormulario == formulario.CodigoFormulario {
			return gorm.ErrDuplicatedKey
		}
	}
	if formulario.ID == "" {
		formulario.ID = uuid.NewString()
	}
	f.formularios[formulario.ID] = formulario
	return nil
}

func (f *fakeFormularioRepo) Save(formulario *entities.Formulario) error {
	f.formularios[formulario.ID] = formulario
	return nil
}

func (f *fakeFormularioRepo) Delete(formulario *entities.Formulario) error {
	delete(f.formularios, formulario.ID)
	return nil
}

func (f *fakeFormularioRepo) FindAll() ([]entities.Formulario, error) {
	var resultado []entities.Formulario
	for _, formulario := range f.formularios {
		resultado = append(resultado, *formulario)
	}
	return resultado, nil
}

func (f *fakeFormularioRepo) FindAtivos() ([]entities.Formulario, error) {
	var resultado []entities.Formulario
	for _, formulario := range f.formularios {
		if formulario.Ativo {
			resultado = append(resultado, *formulario)
		}
	}
	return resultado, nil
}

func (f *fakeFormularioRepo) FindPublicados() ([]entities.Formulario, error) {
	return f.FindByStatus(entities.StatusFormularioPublicado)
}

func (f *fakeFormularioRepo) FindByTipo(tipo entities.TipoFormulario) ([]entities.Formulario, error) {
	var resultado []entities.Formulario
	for _, formulario := range f.formularios {
		if formulario.Tipo == tipo {
			resultado = append(resultado, *formulario)
		}
	}
	return resultado, nil
}

func (f *fakeFormularioRepo) FindByStatus(status entities.StatusFormulario) ([]entities.Formulario, error) {
	var resultado []entities.Formulario
	for _, formulario := range f.formularios {
		if formulario.Status == status {
			resultado = append(resultado, *formulario)
		}
	}
	return resultado, nil
}

func (f *fakeFormularioRepo) FindByCodigo(codigo string) (*entities.Formulario, error) {
	for _, formulario := range f.formularios {
		if formulario.CodigoFormulario == codigo {
			return formulario, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFormularioRepo) FindByID(id string) (*entities.Formulario, error) {
	formulario, ok := f.formularios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return formulario, nil
}

func (f *fakeFormularioRepo) ExistsByCodigo(codigo string, excludeID string) (bool, error) {
	for _, formulario := range f.formularios {
		if formulario.CodigoFormulario == codigo && formulario.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFormularioRepo) Search(termo string) ([]entities.Formulario, error) {
	var resultado []entities.Formulario
	for _, formulario := range f.formularios {
		if strings.Contains(strings.ToLower(formulario.NomeFormulario), strings.ToLower(termo)) {
			resultado = append(resultado, *formulario)
		}
	}
	return resultado, nil
}

func (f *fakeFormularioRepo) Estatisticas() (*repositories.EstatisticasFormularios, error) {
	return &repositories.EstatisticasFormularios{Total: int64(len(f.formularios))}, nil
}

type fakeCampoRepo struct {
	campos map[string]*entities.CampoFormulario
}

func newFakeCampoRepo() *fakeCampoRepo {
	return &fakeCampoRepo{campos: map[string]*entities.CampoFormulario{}}
}

func (f *fakeCampoRepo) Create(campo *entities.CampoFormulario) error {
	for _, existente := range f.campos {
		if existente.FormularioID == campo.FormularioID && existente.CodigoCampo == campo.CodigoCampo {
			return gorm.ErrDuplicatedKey
		}
	}
	if campo.ID == "" {
		campo.ID = uuid.NewString()
	}
	f.campos[campo.ID] = campo
	return nil
}

func (f *fakeCampoRepo) Save(campo *entities.CampoFormulario) error {
	f.campos[campo.ID] = campo
	return nil
}

func (f *fakeCampoRepo) Delete(campo *entities.CampoFormulario) error {
	delete(f.campos, campo.ID)
	return nil
}

func (f *fakeCampoRepo) FindByFormulario(formularioID string) ([]entities.CampoFormulario, error) {
	var resultado []entities.CampoFormulario
	for _, campo := range f.campos {
		if campo.FormularioID == formularioID {
			resultado = append(resultado, *campo)
		}
	}
	return resultado, nil
}

func (f *fakeCampoRepo) FindAtivos(formularioID string) ([]entities.CampoFormulario, error) {
	var resultado []entities.CampoFormulario
	for _, campo := range f.campos {
		if campo.FormularioID == formularioID && campo.Ativo {
			resultado = append(resultado, *campo)
		}
	}
	return resultado, nil
}

func (f *fakeCampoRepo) FindByTipo(formularioID string, tipo entities.TipoCampo) ([]entities.CampoFormulario, error) {
	var resultado []entities.CampoFormulario
	for _, campo := range f.campos {
		if campo.FormularioID == formularioID && campo.TipoCampo == tipo {
			resultado = append(resultado, *campo)
		}
	}
	return resultado, nil
}

func (f *fakeCampoRepo) FindObrigatorios(formularioID string) ([]entities.CampoFormulario, error) {
	var resultado []entities.CampoFormulario
	for _, campo := range f.campos {
		if campo.FormularioID == formularioID && campo.Obrigatorio {
			resultado = append(resultado, *campo)
		}
	}
	return resultado, nil
}

func (f *fakeCampoRepo) FindByCodigo(formularioID, codigo string) (*entities.CampoFormulario, error) {
	for _, campo := range f.campos {
		if campo.FormularioID == formularioID && campo.CodigoCampo == codigo {
			return campo, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCampoRepo) FindByID(id string) (*entities.CampoFormulario, error) {
	campo, ok := f.campos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return campo, nil
}

func (f *fakeCampoRepo) Search(formularioID, termo string) ([]entities.CampoFormulario, error) {
	var resultado []entities.CampoFormulario
	for _, campo := range f.campos {
		if campo.FormularioID == formularioID && strings.Contains(strings.ToLower(campo.NomeCampo), strings.ToLower(termo)) {
			resultado = append(resultado, *campo)
		}
	}
	return resultado, nil
}

func (f *fakeCampoRepo) MaxOrdem(formularioID string) (int, error) {
	max := 0
	for _, campo := range f.campos {
		if campo.FormularioID == formularioID && campo.Ordem > max {
			max = campo.Ordem
		}
	}
	return max, nil
}

func (f *fakeCampoRepo) ExistsByCodigo(formularioID, codigo string, excludeID string) (bool, error) {
	for _, campo := range f.campos {
		if campo.FormularioID == formularioID && campo.CodigoCampo == codigo && campo.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCampoRepo) Reordenar(campos []entities.CampoFormulario) error {
	for i := range campos {
		if existente, ok := f.campos[campos[i].ID]; ok {
			existente.Ordem = campos[i].Ordem
		}
	}
	return nil
}

func (f *fakeCampoRepo) Estatisticas(formularioID string) (*repositories.EstatisticasCampos, error) {
	campos, _ := f.FindByFormulario(formularioID)
	return &repositories.EstatisticasCampos{Total: int64(len(campos))}, nil
}

type fakeAlternativaRepo struct {
	alternativas map[string]*entities.AlternativaCampo
}

func newFakeAlternativaRepo() *fakeAlternativaRepo {
	return &fakeAlternativaRepo{alternativas: map[string]*entities.AlternativaCampo{}}
}

func (f *fakeAlternativaRepo) Create(alternativa *entities.AlternativaCampo) error {
	for _, existente := range f.alternativas {
		if existente.CampoFormularioID != alternativa.CampoFormularioID {
			continue
		}
		if existente.CodigoAlternativa == alternativa.CodigoAlternativa || existente.Valor == alternativa.Valor {
			return gorm.ErrDuplicatedKey
		}
	}
	if alternativa.ID == "" {
		alternativa.ID = uuid.NewString()
	}
	f.alternativas[alternativa.ID] = alternativa
	return nil
}

func (f *fakeAlternativaRepo) Save(alternativa *entities.AlternativaCampo) error {
	f.alternativas[alternativa.ID] = alternativa
	return nil
}

func (f *fakeAlternativaRepo) Delete(alternativa *entities.AlternativaCampo) error {
	delete(f.alternativas, alternativa.ID)
	return nil
}

func (f *fakeAlternativaRepo) FindByCampo(campoFormularioID string) ([]entities.AlternativaCampo, error) {
	var resultado []entities.AlternativaCampo
	for _, alternativa := range f.alternativas {
		if alternativa.CampoFormularioID == campoFormularioID {
			resultado = append(resultado, *alternativa)
		}
	}
	return resultado, nil
}

func (f *fakeAlternativaRepo) FindAtivas(campoFormularioID string) ([]entities.AlternativaCampo, error) {
	var resultado []entities.AlternativaCampo
	for _, alternativa := range f.alternativas {
		if alternativa.CampoFormularioID == campoFormularioID && alternativa.Ativo {
			resultado = append(resultado, *alternativa)
		}
	}
	return resultado, nil
}

func (f *fakeAlternativaRepo) FindPadrao(campoFormularioID string) ([]entities.AlternativaCampo, error) {
	var resultado []entities.AlternativaCampo
	for _, alternativa := range f.alternativas {
		if alternativa.CampoFormularioID == campoFormularioID && alternativa.SelecionadoPadrao {
			resultado = append(resultado, *alternativa)
		}
	}
	return resultado, nil
}

func (f *fakeAlternativaRepo) FindByValor(campoFormularioID, valor string) (*entities.AlternativaCampo, error) {
	for _, alternativa := range f.alternativas {
		if alternativa.CampoFormularioID == campoFormularioID && alternativa.Valor == valor {
			return alternativa, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAlternativaRepo) FindByCodigo(campoFormularioID, codigo string) (*entities.AlternativaCampo, error) {
	for _, alternativa := range f.alternativas {
		if alternativa.CampoFormularioID == campoFormularioID && alternativa.CodigoAlternativa == codigo {
			return alternativa, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAlternativaRepo) FindByID(id string) (*entities.AlternativaCampo, error) {
	alternativa, ok := f.alternativas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return alternativa, nil
}

func (f *fakeAlternativaRepo) Search(campoFormularioID, termo string) ([]entities.AlternativaCampo, error) {
	var resultado []entities.AlternativaCampo
	for _, alternativa := range f.alternativas {
		if alternativa.CampoFormularioID == campoFormularioID && strings.Contains(strings.ToLower(alternativa.TextoAlternativa), strings.ToLower(termo)) {
			resultado = append(resultado, *alternativa)
		}
	}
	return resultado, nil
}

func (f *fakeAlternativaRepo) MaxOrdem(campoFormularioID string) (int, error) {
	max := 0
	for _, alternativa := range f.alternativas {
		if alternativa.CampoFormularioID == campoFormularioID && alternativa.Ordem > max {
			max = alternativa.Ordem
		}
	}
	return max, nil
}

func (f *fakeAlternativaRepo) ExistsByCodigo(campoFormularioID, codigo string, excludeID string) (bool, error) {
	for _, alternativa := range f.alternativas {
		if alternativa.CampoFormularioID == campoFormularioID && alternativa.CodigoAlternativa == codigo && alternativa.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlternativaRepo) ExistsByValor(campoFormularioID, valor string, excludeID string) (bool, error) {
	for _, alternativa := range f.alternativas {
		if alternativa.CampoFormularioID == campoFormularioID && alternativa.Valor == valor && alternativa.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlternativaRepo) Reordenar(alternativas []entities.AlternativaCampo) error {
	for i := range alternativas {
		if existente, ok := f.alternativas[alternativas[i].ID]; ok {
			existente.Ordem = alternativas[i].Ordem
		}
	}
	return nil
}

func (f *fakeAlternativaRepo) DefinirPadrao(alternativa *entities.AlternativaCampo) error {
	for _, existente := range f.alternativas {
		if existente.CampoFormularioID == alternativa.CampoFormularioID {
			existente.SelecionadoPadrao = false
		}
	}
	if existente, ok := f.alternativas[alternativa.ID]; ok {
		existente.SelecionadoPadrao = true
	}
	return nil
}

func (f *fakeAlternativaRepo) LimparPadrao(campoFormularioID string) error {
	for _, alternativa := range f.alternativas {
		if alternativa.CampoFormularioID == campoFormularioID {
			alternativa.SelecionadoPadrao = false
		}
	}
	return nil
}

func (f *fakeAlternativaRepo) Estatisticas(campoFormularioID string) (*repositories.EstatisticasAlternativas, error) {
	alternativas, _ := f.FindByCampo(campoFormularioID)
	return &repositories.EstatisticasAlternativas{Total: int64(len(alternativas))}, nil
}

type fakeRespostaRepo struct {
	respostas map[string]*entities.RespostaFormulario
}

func newFakeRespostaRepo() *fakeRespostaRepo {
	return &fakeRespostaRepo{respostas: map[string]*entities.RespostaFormulario{}}
}

func (f *fakeRespostaRepo) Create(resposta *entities.RespostaFormulario) error {
	for _, existente := range f.respostas {
		if existente.CodigoResposta == resposta.CodigoResposta {
			return gorm.ErrDuplicatedKey
		}
	}
	if resposta.ID == "" {
		resposta.ID = uuid.NewString()
	}
	f.respostas[resposta.ID] = resposta
	return nil
}

func (f *fakeRespostaRepo) Save(resposta *entities.RespostaFormulario) error {
	f.respostas[resposta.ID] = resposta
	return nil
}

func (f *fakeRespostaRepo) Delete(resposta *entities.RespostaFormulario) error {
	delete(f.respostas, resposta.ID)
	return nil
}

func (f *fakeRespostaRepo) FindAll() ([]entities.RespostaFormulario, error) {
	var resultado []entities.RespostaFormulario
	for _, resposta := range f.respostas {
		resultado = append(resultado, *resposta)
	}
	return resultado, nil
}

func (f *fakeRespostaRepo) FindByFormulario(formularioID string) ([]entities.RespostaFormulario, error) {
	var resultado []entities.RespostaFormulario
	for _, resposta := range f.respostas {
		if resposta.FormularioID == formularioID {
			resultado = append(resultado, *resposta)
		}
	}
	return resultado, nil
}

func (f *fakeRespostaRepo) FindByPaciente(pacienteID string) ([]entities.RespostaFormulario, error) {
	var resultado []entities.RespostaFormulario
	for _, resposta := range f.respostas {
		if resposta.PacienteID != nil && *resposta.PacienteID == pacienteID {
			resultado = append(resultado, *resposta)
		}
	}
	return resultado, nil
}

func (f *fakeRespostaRepo) FindByUsuario(usuarioID string) ([]entities.RespostaFormulario, error) {
	var resultado []entities.RespostaFormulario
	for _, resposta := range f.respostas {
		if resposta.UsuarioPreenchimentoID != nil && *resposta.UsuarioPreenchimentoID == usuarioID {
			resultado = append(resultado, *resposta)
		}
	}
	return resultado, nil
}

func (f *fakeRespostaRepo) FindByStatus(status entities.StatusResposta) ([]entities.RespostaFormulario, error) {
	var resultado []entities.RespostaFormulario
	for _, resposta := range f.respostas {
		if resposta.Status == status {
			resultado = append(resultado, *resposta)
		}
	}
	return resultado, nil
}

func (f *fakeRespostaRepo) FindByOrdemServico(ordemServicoID string) ([]entities.RespostaFormulario, error) {
	var resultado []entities.RespostaFormulario
	for _, resposta := range f.respostas {
		if resposta.OrdemServicoID != nil && *resposta.OrdemServicoID == ordemServicoID {
			resultado = append(resultado, *resposta)
		}
	}
	return resultado, nil
}

func (f *fakeRespostaRepo) FindCompletas() ([]entities.RespostaFormulario, error) {
	var resultado []entities.RespostaFormulario
	for _, resposta := range f.respostas {
		if resposta.PercentualCompleto >= 100 {
			resultado = append(resultado, *resposta)
		}
	}
	return resultado, nil
}

func (f *fakeRespostaRepo) FindAssinadas() ([]entities.RespostaFormulario, error) {
	var resultado []entities.RespostaFormulario
	for _, resposta := range f.respostas {
		if resposta.Assinado {
			resultado = append(resultado, *resposta)
		}
	}
	return resultado, nil
}

func (f *fakeRespostaRepo) FindByCodigo(codigo string) (*entities.RespostaFormulario, error) {
	for _, resposta := range f.respostas {
		if resposta.CodigoResposta == codigo {
			return resposta, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRespostaRepo) FindByID(id string) (*entities.RespostaFormulario, error) {
	resposta, ok := f.respostas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return resposta, nil
}

func (f *fakeRespostaRepo) Search(termo string) ([]entities.RespostaFormulario, error) {
	var resultado []entities.RespostaFormulario
	for _, resposta := range f.respostas {
		if strings.Contains(resposta.CodigoResposta, termo) {
			resultado = append(resultado, *resposta)
		}
	}
	return resultado, nil
}

// UltimoCodigo ordena por tamanho antes do texto, como o repositório real,
// para o sufixo de cinco dígitos ganhar do de quatro.
func (f *fakeRespostaRepo) UltimoCodigo(prefix string) (string, error) {
	ultimo := ""
	for _, resposta := range f.respostas {
		codigo := resposta.CodigoResposta
		if !strings.HasPrefix(codigo, prefix) {
			continue
		}
		if len(codigo) > len(ultimo) || (len(codigo) == len(ultimo) && codigo > ultimo) {
			ultimo = codigo
		}
	}
	return ultimo, nil
}

func (f *fakeRespostaRepo) AtualizarProgresso(id string, percentual float64, respondidos, total int) error {
	resposta, ok := f.respostas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	resposta.PercentualCompleto = percentual
	resposta.CamposRespondidos = respondidos
	resposta.TotalCampos = total
	return nil
}

func (f *fakeRespostaRepo) Estatisticas() (*repositories.EstatisticasRespostas, error) {
	return &repositories.EstatisticasRespostas{Total: int64(len(f.respostas))}, nil
}

type fakeRespostaCampoRepo struct {
	respostas map[string]*entities.RespostaCampo
}

func newFakeRespostaCampoRepo() *fakeRespostaCampoRepo {
	return &fakeRespostaCampoRepo{respostas: map[string]*entities.RespostaCampo{}}
}

func (f *fakeRespostaCampoRepo) Create(resposta *entities.RespostaCampo) error {
	for _, existente := range f.respostas {
		if existente.RespostaFormularioID == resposta.RespostaFormularioID && existente.CampoFormularioID == resposta.CampoFormularioID {
			return gorm.ErrDuplicatedKey
		}
	}
	if resposta.ID == "" {
		resposta.ID = uuid.NewString()
	}
	f.respostas[resposta.ID] = resposta
	return nil
}

func (f *fakeRespostaCampoRepo) Save(resposta *entities.RespostaCampo) error {
	f.respostas[resposta.ID] = resposta
	return nil
}

func (f *fakeRespostaCampoRepo) Delete(resposta *entities.RespostaCampo) error {
	delete(f.respostas, resposta.ID)
	return nil
}

func (f *fakeRespostaCampoRepo) FindByResposta(respostaFormularioID string) ([]entities.RespostaCampo, error) {
	var resultado []entities.RespostaCampo
	for _, resposta := range f.respostas {
		if resposta.RespostaFormularioID == respostaFormularioID {
			resultado = append(resultado, *resposta)
		}
	}
	return resultado, nil
}

func (f *fakeRespostaCampoRepo) FindByRespostaECampo(respostaFormularioID, campoFormularioID string) (*entities.RespostaCampo, error) {
	for _, resposta := range f.respostas {
		if resposta.RespostaFormularioID == respostaFormularioID && resposta.CampoFormularioID == campoFormularioID {
			return resposta, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRespostaCampoRepo) FindByID(id string) (*entities.RespostaCampo, error) {
	resposta, ok := f.respostas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return resposta, nil
}

func (f *fakeRespostaCampoRepo) DeleteByResposta(respostaFormularioID string) error {
	for id, resposta := range f.respostas {
		if resposta.RespostaFormularioID == respostaFormularioID {
			delete(f.respostas, id)
		}
	}
	return nil
}
