package handlers

import (
	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/application/usecases"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"github.com/gofiber/fiber/v2"
)

type RespostaFormularioHandler struct {
	respostaUseCase usecases.RespostaFormularioUseCase
}

func NewRespostaFormularioHandler(respostaUseCase usecases.RespostaFormularioUseCase) *RespostaFormularioHandler {
	return &RespostaFormularioHandler{respostaUseCase}
}

func (h *RespostaFormularioHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateRespostaFormularioDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	body.CreatedBy = userID(c)

	resposta, err := h.respostaUseCase.Create(&body)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": resposta})
}

func (h *RespostaFormularioHandler) GetAll(c *fiber.Ctx) error {
	// Filtros opcionais mutuamente exclusivos via query string
	if formularioID := c.Query("formulario_id"); formularioID != "" {
		respostas, err := h.respostaUseCase.FindByFormulario(formularioID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": respostas, "meta": fiber.Map{"total": len(respostas)}})
	}
	if pacienteID := c.Query("paciente_id"); pacienteID != "" {
		respostas, err := h.respostaUseCase.FindByPaciente(pacienteID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": respostas, "meta": fiber.Map{"total": len(respostas)}})
	}
	if usuarioID := c.Query("usuario_id"); usuarioID != "" {
		respostas, err := h.respostaUseCase.FindByUsuario(usuarioID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": respostas, "meta": fiber.Map{"total": len(respostas)}})
	}
	if ordemServicoID := c.Query("ordem_servico_id"); ordemServicoID != "" {
		respostas, err := h.respostaUseCase.FindByOrdemServico(ordemServicoID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": respostas, "meta": fiber.Map{"total": len(respostas)}})
	}
	if status := c.Query("status"); status != "" {
		respostas, err := h.respostaUseCase.FindByStatus(entities.StatusResposta(status))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": respostas, "meta": fiber.Map{"total": len(respostas), "status": status}})
	}

	respostas, err := h.respostaUseCase.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": respostas, "meta": fiber.Map{"total": len(respostas)}})
}

func (h *RespostaFormularioHandler) GetCompletas(c *fiber.Ctx) error {
	respostas, err := h.respostaUseCase.FindCompletas()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": respostas, "meta": fiber.Map{"total": len(respostas)}})
}

func (h *RespostaFormularioHandler) GetPendentesRevisao(c *fiber.Ctx) error {
	respostas, err := h.respostaUseCase.FindPendentesRevisao()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": respostas, "meta": fiber.Map{"total": len(respostas)}})
}

func (h *RespostaFormularioHandler) GetAssinadas(c *fiber.Ctx) error {
	respostas, err := h.respostaUseCase.FindAssinadasDigitalmente()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": respostas, "meta": fiber.Map{"total": len(respostas)}})
}

func (h *RespostaFormularioHandler) GetByCodigo(c *fiber.Ctx) error {
	resposta, err := h.respostaUseCase.FindByCodigo(c.Params("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": resposta})
}

func (h *RespostaFormularioHandler) Search(c *fiber.Ctx) error {
	termo := c.Query("q")
	if termo == "" {
		return respondError(c, apperrors.BadRequest("Parâmetro de busca q é obrigatório"))
	}
	respostas, err := h.respostaUseCase.Search(termo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": respostas, "meta": fiber.Map{"total": len(respostas), "termo": termo}})
}

func (h *RespostaFormularioHandler) GetEstatisticas(c *fiber.Ctx) error {
	stats, err := h.respostaUseCase.GetEstatisticas()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": stats})
}

func (h *RespostaFormularioHandler) GetOne(c *fiber.Ctx) error {
	resposta, err := h.respostaUseCase.FindOne(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": resposta})
}

func (h *RespostaFormularioHandler) Update(c *fiber.Ctx) error {
	var body dto.UpdateRespostaFormularioDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	body.UpdatedBy = userID(c)

	resposta, err := h.respostaUseCase.Update(c.Params("id"), &body)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": resposta})
}

func (h *RespostaFormularioHandler) UpdateStatus(c *fiber.Ctx) error {
	var body dto.UpdateStatusRespostaDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	resposta, err := h.respostaUseCase.UpdateStatus(c.Params("id"), body.Status, body.Observacoes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": resposta})
}

func (h *RespostaFormularioHandler) Finalizar(c *fiber.Ctx) error {
	resposta, err := h.respostaUseCase.Finalizar(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": resposta})
}

func (h *RespostaFormularioHandler) Assinar(c *fiber.Ctx) error {
	var body dto.AssinarRespostaDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	resposta, err := h.respostaUseCase.AssinarDigitalmente(c.Params("id"), body.HashAssinatura, body.CertificadoDigital)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": resposta})
}

func (h *RespostaFormularioHandler) GetProgresso(c *fiber.Ctx) error {
	progresso, err := h.respostaUseCase.CalcularPercentualCompleto(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": progresso})
}

func (h *RespostaFormularioHandler) Duplicar(c *fiber.Ctx) error {
	var body dto.DuplicarRespostaDTO
	// Corpo é opcional, sem corpo mantém o mesmo paciente
	_ = c.BodyParser(&body)

	resposta, err := h.respostaUseCase.Duplicar(c.Params("id"), body.NovoPacienteID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": resposta})
}

func (h *RespostaFormularioHandler) Validar(c *fiber.Ctx) error {
	resultado, err := h.respostaUseCase.ValidarResposta(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": resultado})
}

func (h *RespostaFormularioHandler) Delete(c *fiber.Ctx) error {
	if err := h.respostaUseCase.Remove(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
