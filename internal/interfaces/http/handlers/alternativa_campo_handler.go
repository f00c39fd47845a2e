package handlers

import (
	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/application/usecases"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"github.com/gofiber/fiber/v2"
)

type AlternativaCampoHandler struct {
	alternativaUseCase usecases.AlternativaCampoUseCase
}

func NewAlternativaCampoHandler(alternativaUseCase usecases.AlternativaCampoUseCase) *AlternativaCampoHandler {
	return &AlternativaCampoHandler{alternativaUseCase}
}

func (h *AlternativaCampoHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateAlternativaCampoDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	body.CreatedBy = userID(c)

	alternativa, err := h.alternativaUseCase.Create(&body)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": alternativa})
}

func (h *AlternativaCampoHandler) GetByCampo(c *fiber.Ctx) error {
	alternativas, err := h.alternativaUseCase.FindByCampo(c.Params("campoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativas, "meta": fiber.Map{"total": len(alternativas)}})
}

func (h *AlternativaCampoHandler) GetAtivas(c *fiber.Ctx) error {
	alternativas, err := h.alternativaUseCase.FindAtivas(c.Params("campoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativas, "meta": fiber.Map{"total": len(alternativas)}})
}

func (h *AlternativaCampoHandler) GetPadrao(c *fiber.Ctx) error {
	alternativas, err := h.alternativaUseCase.FindPadrao(c.Params("campoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativas, "meta": fiber.Map{"total": len(alternativas)}})
}

func (h *AlternativaCampoHandler) GetByValor(c *fiber.Ctx) error {
	valor := c.Query("valor")
	if valor == "" {
		return respondError(c, apperrors.BadRequest("Parâmetro valor é obrigatório"))
	}
	alternativa, err := h.alternativaUseCase.FindByValor(c.Params("campoId"), valor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativa})
}

func (h *AlternativaCampoHandler) GetByCodigo(c *fiber.Ctx) error {
	alternativa, err := h.alternativaUseCase.FindByCodigo(c.Params("campoId"), c.Params("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativa})
}

func (h *AlternativaCampoHandler) Search(c *fiber.Ctx) error {
	termo := c.Query("q")
	if termo == "" {
		return respondError(c, apperrors.BadRequest("Parâmetro de busca q é obrigatório"))
	}
	alternativas, err := h.alternativaUseCase.Search(c.Params("campoId"), termo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativas, "meta": fiber.Map{"total": len(alternativas), "termo": termo}})
}

func (h *AlternativaCampoHandler) GetEstatisticas(c *fiber.Ctx) error {
	stats, err := h.alternativaUseCase.GetEstatisticas(c.Params("campoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": stats})
}

func (h *AlternativaCampoHandler) Reordenar(c *fiber.Ctx) error {
	var body dto.ReordenarDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	if err := h.alternativaUseCase.Reordenar(c.Params("campoId"), body.Ordens); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reordenado": true}})
}

func (h *AlternativaCampoHandler) Importar(c *fiber.Ctx) error {
	var body dto.ImportarAlternativasDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	resultado, err := h.alternativaUseCase.ImportarAlternativas(c.Params("campoId"), body.Alternativas)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": resultado, "meta": fiber.Map{
		"criadas":   len(resultado.Criadas),
		"ignoradas": len(resultado.Ignoradas),
	}})
}

func (h *AlternativaCampoHandler) RemoverPadrao(c *fiber.Ctx) error {
	if err := h.alternativaUseCase.RemoverPadrao(c.Params("campoId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"padrao_removido": true}})
}

func (h *AlternativaCampoHandler) GetOne(c *fiber.Ctx) error {
	alternativa, err := h.alternativaUseCase.FindOne(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativa})
}

func (h *AlternativaCampoHandler) Update(c *fiber.Ctx) error {
	var body dto.UpdateAlternativaCampoDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	body.UpdatedBy = userID(c)

	alternativa, err := h.alternativaUseCase.Update(c.Params("id"), &body)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativa})
}

func (h *AlternativaCampoHandler) Duplicar(c *fiber.Ctx) error {
	var body dto.DuplicarDTO
	// Corpo é opcional, sem corpo o código duplicado recebe sufixo _COPY
	_ = c.BodyParser(&body)

	alternativa, err := h.alternativaUseCase.Duplicar(c.Params("id"), body.NovoCodigo)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": alternativa})
}

func (h *AlternativaCampoHandler) ToggleStatus(c *fiber.Ctx) error {
	alternativa, err := h.alternativaUseCase.ToggleStatus(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativa})
}

func (h *AlternativaCampoHandler) UpdateStatus(c *fiber.Ctx) error {
	var body dto.UpdateStatusAlternativaDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	alternativa, err := h.alternativaUseCase.UpdateStatus(c.Params("id"), body.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativa})
}

func (h *AlternativaCampoHandler) DefinirPadrao(c *fiber.Ctx) error {
	alternativa, err := h.alternativaUseCase.DefinirPadrao(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": alternativa})
}

func (h *AlternativaCampoHandler) Delete(c *fiber.Ctx) error {
	if err := h.alternativaUseCase.Remove(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
