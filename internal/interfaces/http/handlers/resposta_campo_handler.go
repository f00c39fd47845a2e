package handlers

import (
	"github.com/gestorlab/gestorlab-api/internal/application/dto"
	"github.com/gestorlab/gestorlab-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

type RespostaCampoHandler struct {
	respostaCampoUseCase usecases.RespostaCampoUseCase
}

func NewRespostaCampoHandler(respostaCampoUseCase usecases.RespostaCampoUseCase) *RespostaCampoHandler {
	return &RespostaCampoHandler{respostaCampoUseCase}
}

// Responder grava ou regrava a resposta de um campo dentro da resposta de formulário.
func (h *RespostaCampoHandler) Responder(c *fiber.Ctx) error {
	var body dto.ResponderCampoDTO
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	body.CreatedBy = userID(c)

	respostaCampo, err := h.respostaCampoUseCase.Responder(c.Params("respostaId"), &body)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": respostaCampo})
}

func (h *RespostaCampoHandler) GetByResposta(c *fiber.Ctx) error {
	respostasCampos, err := h.respostaCampoUseCase.FindByResposta(c.Params("respostaId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": respostasCampos, "meta": fiber.Map{"total": len(respostasCampos)}})
}

func (h *RespostaCampoHandler) GetOne(c *fiber.Ctx) error {
	respostaCampo, err := h.respostaCampoUseCase.FindOne(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": respostaCampo})
}

func (h *RespostaCampoHandler) Delete(c *fiber.Ctx) error {
	if err := h.respostaCampoUseCase.Remove(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
