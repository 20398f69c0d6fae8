// Package admin содержит административные HTTP-обработчики.
package admin

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/adapters/http/middleware"
	"filmorate/internal/filmorate/adapters/http/respond"
	"filmorate/internal/filmorate/ports/api"
	"filmorate/pkg/logger"
)

const logHandlerClear = "handling clear request"

// Handler обработчик административных HTTP-запросов.
type Handler struct {
	adminService api.AdminUseCase
}

// NewHandler создает новый экземпляр административного обработчика.
func NewHandler(adminService api.AdminUseCase) *Handler {
	return &Handler{adminService: adminService}
}

// Clear сбрасывает состояние обоих хранилищ. Используется только для
// изоляции независимых тестовых сценариев.
func (h *Handler) Clear(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Clear"))
	log.Debug(requestCtx, logHandlerClear)

	if err := h.adminService.Reset(requestCtx); err != nil {
		log.Error(requestCtx, "failed to reset state", zap.Error(err))
		return respond.Error(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// requestContext извлекает контекст запроса, подготовленный промежуточным ПО.
func requestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(middleware.ContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
