package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gestorlab/gestorlab-api/internal/pkg/apperrors"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseBody decodifica o corpo JSON e aplica as validações do DTO
func parseBody(c *fiber.Ctx, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		return apperrors.BadRequest("Corpo da requisição inválido: %v", err)
	}
	if err := validate.Struct(dest); err != nil {
		return apperrors.BadRequest("Dados inválidos: %v", err)
	}
	return nil
}

// respondError mapeia o erro da aplicação para o status HTTP correspondente
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// userID lê o identificador do usuário autenticado colocado pelo middleware
func userID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}
