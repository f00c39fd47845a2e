package handlers

import (
	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/application/usecases"
	"github.com/gestorlab/gestorlab-api/internal/domain/entities"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"github.com/gofiber/fiber/v2"
)

type CampoFormularioHandler struct {
	campoUseCase usecases.CampoFormularioUseCase
}

func NewCampoFormularioHandler(campoUseCase usecases.CampoFormularioUseCase) *CampoFormularioHandler {
	return &CampoFormularioHandler{campoUseCase}
}

func (h *CampoFormularioHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateCampoFormularioDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	body.CreatedBy = userID(c)

	campo, err := h.campoUseCase.Create(&body)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": campo})
}

func (h *CampoFormularioHandler) GetByFormulario(c *fiber.Ctx) error {
	formularioID := c.Params("formularioId")

	if tipo := c.Query("tipo"); tipo != "" {
		campos, err := h.campoUseCase.FindByTipo(formularioID, entities.TipoCampo(tipo))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": campos, "meta": fiber.Map{"total": len(campos), "tipo": tipo}})
	}

	campos, err := h.campoUseCase.FindByFormulario(formularioID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": campos, "meta": fiber.Map{"total": len(campos)}})
}

func (h *CampoFormularioHandler) GetAtivos(c *fiber.Ctx) error {
	campos, err := h.campoUseCase.FindAtivos(c.Params("formularioId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": campos, "meta": fiber.Map{"total": len(campos)}})
}

func (h *CampoFormularioHandler) GetObrigatorios(c *fiber.Ctx) error {
	campos, err := h.campoUseCase.FindObrigatorios(c.Params("formularioId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": campos, "meta": fiber.Map{"total": len(campos)}})
}

func (h *CampoFormularioHandler) GetByCodigo(c *fiber.Ctx) error {
	campo, err := h.campoUseCase.FindByCodigo(c.Params("formularioId"), c.Params("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": campo})
}

func (h *CampoFormularioHandler) Search(c *fiber.Ctx) error {
	termo := c.Query("q")
	if termo == "" {
		return respondError(c, apperrors.BadRequest("Parâmetro de busca q é obrigatório"))
	}
	campos, err := h.campoUseCase.Search(c.Params("formularioId"), termo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": campos, "meta": fiber.Map{"total": len(campos), "termo": termo}})
}

func (h *CampoFormularioHandler) GetEstatisticas(c *fiber.Ctx) error {
	stats, err := h.campoUseCase.GetEstatisticas(c.Params("formularioId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": stats})
}

func (h *CampoFormularioHandler) Reordenar(c *fiber.Ctx) error {
	var body dto.ReordenarDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	if err := h.campoUseCase.Reordenar(c.Params("formularioId"), body.Ordens); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reordenado": true}})
}

func (h *CampoFormularioHandler) GetCamposPadrao(c *fiber.Ctx) error {
	if categoria := c.Query("categoria"); categoria != "" {
		return c.JSON(fiber.Map{"data": h.campoUseCase.GetCamposPadraoPorCategoria(categoria)})
	}
	return c.JSON(fiber.Map{"data": h.campoUseCase.GetCamposPadrao()})
}

func (h *CampoFormularioHandler) GetCampoPadraoByCodigo(c *fiber.Ctx) error {
	info, err := h.campoUseCase.GetCampoPadraoByCodigo(c.Params("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": info})
}

func (h *CampoFormularioHandler) GetTiposCampo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.campoUseCase.GetTiposCampo()})
}

func (h *CampoFormularioHandler) GetOne(c *fiber.Ctx) error {
	campo, err := h.campoUseCase.FindOne(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": campo})
}

func (h *CampoFormularioHandler) Update(c *fiber.Ctx) error {
	var body dto.UpdateCampoFormularioDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	body.UpdatedBy = userID(c)

	campo, err := h.campoUseCase.Update(c.Params("id"), &body)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": campo})
}

func (h *CampoFormularioHandler) Duplicar(c *fiber.Ctx) error {
	var body dto.DuplicarDTO
	// Corpo é opcional, sem corpo o código duplicado recebe sufixo _COPY
	_ = c.BodyParser(&body)

	campo, err := h.campoUseCase.Duplicar(c.Params("id"), body.NovoCodigo)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": campo})
}

func (h *CampoFormularioHandler) ToggleStatus(c *fiber.Ctx) error {
	campo, err := h.campoUseCase.ToggleStatus(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": campo})
}

func (h *CampoFormularioHandler) UpdateStatus(c *fiber.Ctx) error {
	var body dto.UpdateStatusCampoDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	campo, err := h.campoUseCase.UpdateStatus(c.Params("id"), body.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": campo})
}

func (h *CampoFormularioHandler) Validar(c *fiber.Ctx) error {
	resultado, err := h.campoUseCase.ValidarCampo(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": resultado})
}

func (h *CampoFormularioHandler) Delete(c *fiber.Ctx) error {
	if err := h.campoUseCase.Remove(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
