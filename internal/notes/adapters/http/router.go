// Package http содержит компоненты для HTTP сервера.
package http

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"notepad/internal/notes/adapters/http/health"
	"notepad/internal/notes/adapters/http/middleware"
	"notepad/internal/notes/adapters/http/notes"
	"notepad/internal/notes/ports/api"
)

// ErrMsgRouteNotFound - тело ответа для неизвестного маршрута.
const ErrMsgRouteNotFound = "route not found"

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, noteService api.NoteService, checker api.HealthChecker, requestTimeout time.Duration) {
	notesHandler := notes.NewHandler(noteService)
	healthHandler := health.NewHandler(checker)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestContextMiddleware(requestTimeout))
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	registerNoteRoutes(app.Group("/notes"), notesHandler)

	// API версии 1.
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/healthcheck", healthHandler.Check)
	registerNoteRoutes(apiV1.Group("/notes"), notesHandler)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": ErrMsgRouteNotFound,
		})
	})
}

func registerNoteRoutes(router fiber.Router, h *notes.Handler) {
	router.Post("/", h.CreateNote)
	router.Get("/", h.ListNotes)
	router.Get("/:"+notes.ParamNoteID, h.GetNote)
	router.Put("/:"+notes.ParamNoteID, h.UpdateNote)
	router.Patch("/:"+notes.ParamNoteID, h.UpdateNote)
	router.Delete("/:"+notes.ParamNoteID, h.DeleteNote)
}
