package routes

import (
	"github.com/gestorlab/gestorlab-api/internal/application/usecases"
	"github.com/gestorlab/gestorlab-api/internal/domain/repositories"
	"github.com/gestorlab/gestorlab-api/internal/interfaces/http/handlers"
	"github.com/gestorlab/gestorlab-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	formularioRepo := repositories.NewFormularioRepository(db)
	campoRepo := repositories.NewCampoFormularioRepository(db)
	alternativaRepo := repositories.NewAlternativaCampoRepository(db)
	respostaRepo := repositories.NewRespostaFormularioRepository(db)
	respostaCampoRepo := repositories.NewRespostaCampoRepository(db)

	// Use Cases
	formularioUseCase := usecases.NewFormularioUseCase(formularioRepo, respostaRepo)
	campoUseCase := usecases.NewCampoFormularioUseCase(campoRepo)
	alternativaUseCase := usecases.NewAlternativaCampoUseCase(alternativaRepo)
	respostaUseCase := usecases.NewRespostaFormularioUseCase(respostaRepo, respostaCampoRepo)
	respostaCampoUseCase := usecases.NewRespostaCampoUseCase(respostaCampoRepo, respostaRepo)

	// Handlers
	formularioHandler := handlers.NewFormularioHandler(formularioUseCase)
	campoHandler := handlers.NewCampoFormularioHandler(campoUseCase)
	alternativaHandler := handlers.NewAlternativaCampoHandler(alternativaUseCase)
	respostaHandler := handlers.NewRespostaFormularioHandler(respostaUseCase)
	respostaCampoHandler := handlers.NewRespostaCampoHandler(respostaCampoUseCase)

	// Routes
	auth := middleware.JWTAuth()
	groups := middleware.SetupRouteGroups(app, auth)

	// Formulários
	groups.Formularios.Post("/", formularioHandler.Create)
	groups.Formularios.Get("/", formularioHandler.GetAll)
	groups.Formularios.Get("/ativos", formularioHandler.GetAtivos)
	groups.Formularios.Get("/publicados", formularioHandler.GetPublicados)
	groups.Formularios.Get("/search", formularioHandler.Search)
	groups.Formularios.Get("/estatisticas", formularioHandler.GetEstatisticas)
	groups.Formularios.Get("/codigo/:codigo", formularioHandler.GetByCodigo)
	groups.Formularios.Get("/:id", formularioHandler.GetOne)
	groups.Formularios.Patch("/:id", formularioHandler.Update)
	groups.Formularios.Patch("/:id/toggle-status", formularioHandler.ToggleStatus)
	groups.Formularios.Patch("/:id/status", formularioHandler.UpdateStatus)
	groups.Formularios.Patch("/:id/publicar", formularioHandler.Publicar)
	groups.Formularios.Post("/:id/versao", formularioHandler.CriarVersao)
	groups.Formularios.Get("/:id/validar", formularioHandler.Validar)
	groups.Formularios.Delete("/:id", formularioHandler.Delete)

	// Campos aninhados no formulário
	groups.Formularios.Get("/:formularioId/campos", campoHandler.GetByFormulario)
	groups.Formularios.Get("/:formularioId/campos/ativos", campoHandler.GetAtivos)
	groups.Formularios.Get("/:formularioId/campos/obrigatorios", campoHandler.GetObrigatorios)
	groups.Formularios.Get("/:formularioId/campos/search", campoHandler.Search)
	groups.Formularios.Get("/:formularioId/campos/estatisticas", campoHandler.GetEstatisticas)
	groups.Formularios.Get("/:formularioId/campos/codigo/:codigo", campoHandler.GetByCodigo)
	groups.Formularios.Patch("/:formularioId/campos/reordenar", campoHandler.Reordenar)

	// Campos
	groups.Campos.Post("/", campoHandler.Create)
	groups.Campos.Get("/padrao", campoHandler.GetCamposPadrao)
	groups.Campos.Get("/padrao/:codigo", campoHandler.GetCampoPadraoByCodigo)
	groups.Campos.Get("/tipos", campoHandler.GetTiposCampo)
	groups.Campos.Get("/:id", campoHandler.GetOne)
	groups.Campos.Patch("/:id", campoHandler.Update)
	groups.Campos.Post("/:id/duplicar", campoHandler.Duplicar)
	groups.Campos.Patch("/:id/toggle-status", campoHandler.ToggleStatus)
	groups.Campos.Patch("/:id/status", campoHandler.UpdateStatus)
	groups.Campos.Get("/:id/validar", campoHandler.Validar)
	groups.Campos.Delete("/:id", campoHandler.Delete)

	// Alternativas aninhadas no campo
	groups.Campos.Get("/:campoId/alternativas", alternativaHandler.GetByCampo)
	groups.Campos.Get("/:campoId/alternativas/ativas", alternativaHandler.GetAtivas)
	groups.Campos.Get("/:campoId/alternativas/padrao", alternativaHandler.GetPadrao)
	groups.Campos.Get("/:campoId/alternativas/valor", alternativaHandler.GetByValor)
	groups.Campos.Get("/:campoId/alternativas/search", alternativaHandler.Search)
	groups.Campos.Get("/:campoId/alternativas/estatisticas", alternativaHandler.GetEstatisticas)
	groups.Campos.Get("/:campoId/alternativas/codigo/:codigo", alternativaHandler.GetByCodigo)
	groups.Campos.Patch("/:campoId/alternativas/reordenar", alternativaHandler.Reordenar)
	groups.Campos.Post("/:campoId/alternativas/importar", alternativaHandler.Importar)
	groups.Campos.Delete("/:campoId/alternativas/padrao", alternativaHandler.RemoverPadrao)

	// Alternativas
	groups.Alternativas.Post("/", alternativaHandler.Create)
	groups.Alternativas.Get("/:id", alternativaHandler.GetOne)
	groups.Alternativas.Patch("/:id", alternativaHandler.Update)
	groups.Alternativas.Post("/:id/duplicar", alternativaHandler.Duplicar)
	groups.Alternativas.Patch("/:id/toggle-status", alternativaHandler.ToggleStatus)
	groups.Alternativas.Patch("/:id/status", alternativaHandler.UpdateStatus)
	groups.Alternativas.Patch("/:id/padrao", alternativaHandler.DefinirPadrao)
	groups.Alternativas.Delete("/:id", alternativaHandler.Delete)

	// Respostas de formulário
	groups.Respostas.Post("/", respostaHandler.Create)
	groups.Respostas.Get("/", respostaHandler.GetAll)
	groups.Respostas.Get("/completas", respostaHandler.GetCompletas)
	groups.Respostas.Get("/pendentes-revisao", respostaHandler.GetPendentesRevisao)
	groups.Respostas.Get("/assinadas", respostaHandler.GetAssinadas)
	groups.Respostas.Get("/search", respostaHandler.Search)
	groups.Respostas.Get("/estatisticas", respostaHandler.GetEstatisticas)
	groups.Respostas.Get("/codigo/:codigo", respostaHandler.GetByCodigo)
	groups.Respostas.Get("/:id", respostaHandler.GetOne)
	groups.Respostas.Patch("/:id", respostaHandler.Update)
	groups.Respostas.Patch("/:id/status", respostaHandler.UpdateStatus)
	groups.Respostas.Patch("/:id/finalizar", respostaHandler.Finalizar)
	groups.Respostas.Patch("/:id/assinar", respostaHandler.Assinar)
	groups.Respostas.Get("/:id/progresso", respostaHandler.GetProgresso)
	groups.Respostas.Post("/:id/duplicar", respostaHandler.Duplicar)
	groups.Respostas.Get("/:id/validar", respostaHandler.Validar)
	groups.Respostas.Delete("/:id", respostaHandler.Delete)

	// Respostas de campo aninhadas na resposta
	groups.Respostas.Post("/:respostaId/campos", respostaCampoHandler.Responder)
	groups.Respostas.Get("/:respostaId/campos", respostaCampoHandler.GetByResposta)

	// Respostas de campo
	groups.Public.Get("/respostas-campos/:id", auth, respostaCampoHandler.GetOne)
	groups.Public.Delete("/respostas-campos/:id", auth, respostaCampoHandler.Delete)
}
