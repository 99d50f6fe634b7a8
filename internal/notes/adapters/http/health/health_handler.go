// Package health содержит HTTP-обработчик проверки работоспособности сервиса.
package health

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notepad/internal/notes/adapters/http/middleware"
	"notepad/internal/notes/ports/api"
	"notepad/pkg/logger"
)

// Константы ответов healthcheck.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	MsgServiceName    = "Note Pad API Services"
	MsgDBUnavailable  = "database is unreachable"
)

// Handler отвечает на запросы проверки работоспособности.
type Handler struct {
	checker api.HealthChecker
}

// NewHandler создает обработчик. checker == nil отключает проверку базы.
func NewHandler(checker api.HealthChecker) *Handler {
	return &Handler{checker: checker}
}

// Check возвращает 200, если база отвечает, и 503 иначе.
func (h *Handler) Check(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	status, body := fiber.StatusOK, fiber.Map{"status": StatusOK, "message": MsgServiceName}
	if h.checker != nil {
		if err := h.checker.Ping(requestCtx); err != nil {
			logger.Log(requestCtx).Warn(requestCtx, MsgDBUnavailable, zap.Error(err))
			status, body = fiber.StatusServiceUnavailable, fiber.Map{"status": StatusUnavailable, "message": MsgDBUnavailable}
		}
	}

	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
