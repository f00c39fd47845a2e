package repositories

import (
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ContagemPorFormulario é o resultado do group-by de respostas por formulário
type ContagemPorFormulario struct {
	Formulario string `json:"formulario"`
	Total      int64  `json:"total"`
}

// EstatisticasRespostas agrega os contadores globais de respostas
type EstatisticasRespostas struct {
	Total         int64                   `json:"total"`
	Completas     int64                   `json:"completas"`
	Incompletas   int64                   `json:"incompletas"`
	Concluidas    int64                   `json:"concluidas"`
	Assinadas     int64                   `json:"assinadas"`
	PorStatus     []ContagemPorStatus     `json:"por_status"`
	PorFormulario []ContagemPorFormulario `json:"por_formulario"`
}

type RespostaFormularioRepository interface {
	Create(resposta *entities.RespostaFormulario) error
	Save(resposta *entities.RespostaFormulario) error
	Delete(resposta *entities.RespostaFormulario) error
	FindAll() ([]entities.RespostaFormulario, error)
	FindByFormulario(formularioID string) ([]entities.RespostaFormulario, error)
	FindByPaciente(pacienteID string) ([]entities.RespostaFormulario, error)
	FindByUsuario(usuarioID string) ([]entities.RespostaFormulario, error)
	FindByStatus(status entities.StatusResposta) ([]entities.RespostaFormulario, error)
	FindByOrdemServico(ordemServicoID string) ([]entities.RespostaFormulario, error)
	FindCompletas() ([]entities.RespostaFormulario, error)
	FindAssinadas() ([]entities.RespostaFormulario, error)
	FindByCodigo(codigo string) (*entities.RespostaFormulario, error)
	FindByID(id string) (*entities.RespostaFormulario, error)
	Search(termo string) ([]entities.RespostaFormulario, error)
	UltimoCodigo(prefix string) (string, error)
	AtualizarProgresso(id string, percentual float64, respondidos, total int) error
	Estatisticas() (*EstatisticasRespostas, error)
}

type respostaFormularioRepository struct {
	db *gorm.DB
}

func NewRespostaFormularioRepository(db *gorm.DB) RespostaFormularioRepository {
	return &respostaFormularioRepository{db}
}

func (r *respostaFormularioRepository) Create(resposta *entities.RespostaFormulario) error {
	return r.db.Create(resposta).Error
}

func (r *respostaFormularioRepository) Save(resposta *entities.RespostaFormulario) error {
	return r.db.Save(resposta).Error
}

func (r *respostaFormularioRepository) Delete(resposta *entities.RespostaFormulario) error {
	// Respostas de campo caem junto (cascade definido no schema)
	return r.db.Select("RespostasCampos").Delete(resposta).Error
}

func (r *respostaFormularioRepository) findWithRelations() *gorm.DB {
	return r.db.
		Preload("Formulario").
		Preload("Paciente").
		Preload("UsuarioPreenchimento").
		Order("created_at DESC")
}

func (r *respostaFormularioRepository) FindAll() ([]entities.RespostaFormulario, error) {
	var respostas []entities.RespostaFormulario
	err := r.findWithRelations().Find(&respostas).Error
	return respostas, err
}

func (r *respostaFormularioRepository) FindByFormulario(formularioID string) ([]entities.RespostaFormulario, error) {
	var respostas []entities.RespostaFormulario
	err := r.findWithRelations().
		Where("formulario_id = ?", formularioID).
		Find(&respostas).Error
	return respostas, err
}

func (r *respostaFormularioRepository) FindByPaciente(pacienteID string) ([]entities.RespostaFormulario, error) {
	var respostas []entities.RespostaFormulario
	err := r.findWithRelations().
		Where("paciente_id = ?", pacienteID).
		Find(&respostas).Error
	return respostas, err
}

func (r *respostaFormularioRepository) FindByUsuario(usuarioID string) ([]entities.RespostaFormulario, error) {
	var respostas []entities.RespostaFormulario
	err := r.findWithRelations().
		Where("usuario_preenchimento_id = ?", usuarioID).
		Find(&respostas).Error
	return respostas, err
}

func (r *respostaFormularioRepository) FindByStatus(status entities.StatusResposta) ([]entities.RespostaFormulario, error) {
	var respostas []entities.RespostaFormulario
	err := r.findWithRelations().
		Where("status = ?", status).
		Find(&respostas).Error
	return respostas, err
}

func (r *respostaFormularioRepository) FindByOrdemServico(ordemServicoID string) ([]entities.RespostaFormulario, error) {
	var respostas []entities.RespostaFormulario
	err := r.findWithRelations().
		Where("ordem_servico_id = ?", ordemServicoID).
		Find(&respostas).Error
	return respostas, err
}

func (r *respostaFormularioRepository) FindCompletas() ([]entities.RespostaFormulario, error) {
	var respostas []entities.RespostaFormulario
	err := r.findWithRelations().
		Where("percentual_completo = ?", 100).
		Find(&respostas).Error
	return respostas, err
}

func (r *respostaFormularioRepository) FindAssinadas() ([]entities.RespostaFormulario, error) {
	var respostas []entities.RespostaFormulario
	err := r.findWithRelations().
		Where("assinado = ?", true).
		Find(&respostas).Error
	return respostas, err
}

func (r *respostaFormularioRepository) FindByCodigo(codigo string) (*entities.RespostaFormulario, error) {
	var resposta entities.RespostaFormulario
	err := r.db.
		Where("codigo_resposta = ?", codigo).
		Preload("Formulario").
		Preload("Paciente").
		Preload("UsuarioPreenchimento").
		First(&resposta).Error
	if err != nil {
		return nil, err
	}
	return &resposta, nil
}

func (r *respostaFormularioRepository) FindByID(id string) (*entities.RespostaFormulario, error) {
	var resposta entities.RespostaFormulario
	err := r.db.
		Where("id = ?", id).
		Preload("Formulario").
		Preload("Formulario.Campos", func(db *gorm.DB) *gorm.DB {
			return db.Order("campos_formulario.ordem ASC")
		}).
		Preload("Paciente").
		Preload("UsuarioPreenchimento").
		Preload("RespostasCampos").
		First(&resposta).Error
	if err != nil {
		return nil, err
	}
	return &resposta, nil
}

func (r *respostaFormularioRepository) Search(termo string) ([]entities.RespostaFormulario, error) {
	var respostas []entities.RespostaFormulario
	pattern := "%" + termo + "%"
	err := r.db.
		Joins("LEFT JOIN formularios ON formularios.id = respostas_formulario.formulario_id").
		Joins("LEFT JOIN pacientes ON pacientes.id = respostas_formulario.paciente_id").
		Where(
			"respostas_formulario.codigo_resposta ILIKE ? OR respostas_formulario.observacoes ILIKE ? OR formularios.nome_formulario ILIKE ? OR pacientes.nome_completo ILIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Preload("Formulario").
		Preload("Paciente").
		Preload("UsuarioPreenchimento").
		Order("respostas_formulario.created_at DESC").
		Find(&respostas).Error
	return respostas, err
}

// UltimoCodigo devolve o maior código de resposta com o prefixo informado,
// ou vazio quando ainda não existe nenhum. A ordenação considera o tamanho
// antes do texto porque o sufixo numérico ganha um dígito acima de 9999.
func (r *respostaFormularioRepository) UltimoCodigo(prefix string) (string, error) {
	var resposta entities.RespostaFormulario
	err := r.db.
		Where("codigo_resposta LIKE ?", prefix+"%").
		Order("length(codigo_resposta) DESC, codigo_resposta DESC").
		First(&resposta).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return resposta.CodigoResposta, nil
}

func (r *respostaFormularioRepository) AtualizarProgresso(id string, percentual float64, respondidos, total int) error {
	return r.db.Model(&entities.RespostaFormulario{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"percentual_completo": percentual,
			"campos_respondidos":  respondidos,
			"total_campos":        total,
		}).Error
}

func (r *respostaFormularioRepository) Estatisticas() (*EstatisticasRespostas, error) {
	stats := &EstatisticasRespostas{}

	if err := r.db.Model(&entities.RespostaFormulario{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.RespostaFormulario{}).
		Where("percentual_completo = ?", 100).
		Count(&stats.Completas).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.RespostaFormulario{}).
		Where("percentual_completo < ?", 100).
		Count(&stats.Incompletas).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.RespostaFormulario{}).
		Where("status = ?", entities.StatusRespostaConcluido).
		Count(&stats.Concluidas).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.RespostaFormulario{}).
		Where("assinado = ?", true).
		Count(&stats.Assinadas).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&entities.RespostaFormulario{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&stats.PorStatus).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.RespostaFormulario{}).
		Select("formularios.nome_formulario as formulario, COUNT(*) as total").
		Joins("LEFT JOIN formularios ON formularios.id = respostas_formulario.formulario_id").
		Group("formularios.nome_formulario").
		Scan(&stats.PorFormulario).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
