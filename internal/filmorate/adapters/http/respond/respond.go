// Package respond отображает доменные ошибки на HTTP-ответы.
package respond

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"filmorate/internal/filmorate/domain/entities"
)

// Error сериализует доменную ошибку в JSON-ответ. Нарушения правил
// отдаются списком с кодом 400; отсутствующая сущность и нарушенное
// предусловие - кодом 404, как в исходном протоколе сервиса.
func Error(ctx fiber.Ctx, err error) error {
	var validationErr *entities.ValidationError
	if errors.As(err, &validationErr) {
		return send(ctx, fiber.StatusBadRequest, fiber.Map{
			"timestamp":     time.Now().Format(time.RFC3339),
			"status":        fiber.StatusBadRequest,
			"errorMessages": validationErr.Messages,
		})
	}

	var notFoundErr *entities.NotFoundError
	if errors.As(err, &notFoundErr) {
		return send(ctx, fiber.StatusNotFound, fiber.Map{
			"timestamp": time.Now().Format(time.RFC3339),
			"status":    fiber.StatusNotFound,
			"error":     notFoundErr.Error(),
		})
	}

	var conditionsErr *entities.ConditionsNotMetError
	if errors.As(err, &conditionsErr) {
		return send(ctx, fiber.StatusNotFound, fiber.Map{
			"timestamp": time.Now().Format(time.RFC3339),
			"status":    fiber.StatusNotFound,
			"error":     conditionsErr.Error(),
		})
	}

	return send(ctx, fiber.StatusInternalServerError, fiber.Map{
		"error": "Internal Server Error",
	})
}

// BadRequest отдает ответ 400 с единственным сообщением об ошибке.
func BadRequest(ctx fiber.Ctx, message string) error {
	return send(ctx, fiber.StatusBadRequest, fiber.Map{
		"timestamp": time.Now().Format(time.RFC3339),
		"status":    fiber.StatusBadRequest,
		"error":     message,
	})
}

func send(ctx fiber.Ctx, status int, body fiber.Map) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
