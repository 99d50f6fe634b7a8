// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"notepad/pkg/logger"
)

// Ключи и заголовки контекста запроса.
const (
	RequestContextKey = "requestContext"
	HeaderRequestID   = "X-Request-ID"
)

// NewRequestContextMiddleware создает контекст запроса с request_id и таймаутом
// и кладет его в Locals. Таймаут <= 0 отключает ограничение.
func NewRequestContextMiddleware(timeout time.Duration) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx.Set(HeaderRequestID, requestID)

		var base context.Context = ctx.Context()
		requestCtx := logger.NewRequestIDContext(base, requestID)
		if timeout > 0 {
			var cancel context.CancelFunc
			requestCtx, cancel = context.WithTimeout(requestCtx, timeout)
			defer cancel()
		}

		ctx.Locals(RequestContextKey, requestCtx)

		return ctx.Next()
	}
}

// RequestContext возвращает контекст, созданный NewRequestContextMiddleware.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(RequestContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context() // Запасной вариант
}
