package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	allowOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public       fiber.Router
	Formularios  fiber.Router
	Campos       fiber.Router
	Alternativas fiber.Router
	Respostas    fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware func(c *fiber.Ctx) error) RouteGroups {
	// Grupo público (sem autenticação)
	public := app.Group("/")

	formularios := app.Group("/formularios")
	formularios.Use(authMiddleware)

	campos := app.Group("/campos")
	campos.Use(authMiddleware)

	alternativas := app.Group("/alternativas")
	alternativas.Use(authMiddleware)

	respostas := app.Group("/respostas")
	respostas.Use(authMiddleware)

	return RouteGroups{
		Public:       public,
		Formularios:  formularios,
		Campos:       campos,
		Alternativas: alternativas,
		Respostas:    respostas,
	}
}
