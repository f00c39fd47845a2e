package handlers

import (
	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/application/usecases"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"github.com/gofiber/fiber/v2"
)

type FormularioHandler struct {
	formularioUseCase usecases.FormularioUseCase
}

func NewFormularioHandler(formularioUseCase usecases.FormularioUseCase) *FormularioHandler {
	return &FormularioHandler{formularioUseCase}
}

func (h *FormularioHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateFormularioDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	body.CreatedBy = userID(c)

	formulario, err := h.formularioUseCase.Create(&body)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": formulario})
}

func (h *FormularioHandler) GetAll(c *fiber.Ctx) error {
	// Filtros opcionais por query string, no estilo ?tipo=exame&status=publicado
	if tipo := c.Query("tipo"); tipo != "" {
		formularios, err := h.formularioUseCase.FindByTipo(entities.TipoFormulario(tipo))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": formularios, "meta": fiber.Map{"total": len(formularios), "tipo": tipo}})
	}
	if status := c.Query("status"); status != "" {
		formularios, err := h.formularioUseCase.FindByStatus(entities.StatusFormulario(status))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": formularios, "meta": fiber.Map{"total": len(formularios), "status": status}})
	}

	formularios, err := h.formularioUseCase.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": formularios, "meta": fiber.Map{"total": len(formularios)}})
}

func (h *FormularioHandler) GetAtivos(c *fiber.Ctx) error {
	formularios, err := h.formularioUseCase.FindAtivos()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": formularios, "meta": fiber.Map{"total": len(formularios)}})
}

func (h *FormularioHandler) GetPublicados(c *fiber.Ctx) error {
	formularios, err := h.formularioUseCase.FindPublicados()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": formularios, "meta": fiber.Map{"total": len(formularios)}})
}

func (h *FormularioHandler) GetByCodigo(c *fiber.Ctx) error {
	formulario, err := h.formularioUseCase.FindByCodigo(c.Params("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": formulario})
}

func (h *FormularioHandler) Search(c *fiber.Ctx) error {
	termo := c.Query("q")
	if termo == "" {
		return respondError(c, apperrors.BadRequest("Parâmetro de busca q é obrigatório"))
	}
	formularios, err := h.formularioUseCase.Search(termo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": formularios, "meta": fiber.Map{"total": len(formularios), "termo": termo}})
}

func (h *FormularioHandler) GetEstatisticas(c *fiber.Ctx) error {
	stats, err := h.formularioUseCase.GetEstatisticas()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": stats})
}

func (h *FormularioHandler) GetOne(c *fiber.Ctx) error {
	formulario, err := h.formularioUseCase.FindOne(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": formulario})
}

func (h *FormularioHandler) Update(c *fiber.Ctx) error {
	var body dto.UpdateFormularioDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	body.UpdatedBy = userID(c)

	formulario, err := h.formularioUseCase.Update(c.Params("id"), &body)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": formulario})
}

func (h *FormularioHandler) ToggleStatus(c *fiber.Ctx) error {
	formulario, err := h.formularioUseCase.ToggleStatus(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": formulario})
}

func (h *FormularioHandler) UpdateStatus(c *fiber.Ctx) error {
	var body dto.UpdateStatusFormularioDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	formulario, err := h.formularioUseCase.UpdateStatus(c.Params("id"), body.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": formulario})
}

func (h *FormularioHandler) Publicar(c *fiber.Ctx) error {
	formulario, err := h.formularioUseCase.Publicar(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": formulario})
}

func (h *FormularioHandler) CriarVersao(c *fiber.Ctx) error {
	formulario, err := h.formularioUseCase.CriarVersao(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": formulario})
}

func (h *FormularioHandler) Validar(c *fiber.Ctx) error {
	resultado, err := h.formularioUseCase.ValidarFormulario(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": resultado})
}

func (h *FormularioHandler) Delete(c *fiber.Ctx) error {
	if err := h.formularioUseCase.Remove(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
