// Package films содержит HTTP-обработчики каталога фильмов.
package films

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/adapters/http/middleware"
	"filmorate/internal/filmorate/adapters/http/respond"
	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/ports/api"
	"filmorate/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerGetFilms     = "handling get films request"
	LogHandlerCreateFilm   = "handling create film request"
	LogHandlerUpdateFilm   = "handling update film request"
	LogHandlerLikeFilm     = "handling like film request"
	LogHandlerUnlikeFilm   = "handling unlike film request"
	LogHandlerPopularFilms = "handling popular films request"

	ErrMsgInvalidFilmID      = "invalid film id"
	ErrMsgInvalidUserID      = "invalid user id"
	ErrMsgInvalidCount       = "invalid count parameter"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// Handler обработчик HTTP-запросов для работы с фильмами.
type Handler struct {
	filmService   api.FilmUseCase
	socialService api.SocialUseCase
}

// NewHandler создает новый экземпляр обработчика фильмов.
func NewHandler(filmService api.FilmUseCase, socialService api.SocialUseCase) *Handler {
	return &Handler{
		filmService:   filmService,
		socialService: socialService,
	}
}

// GetFilms обрабатывает запрос на получение всех фильмов.
func (h *Handler) GetFilms(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetFilms"))
	log.Debug(requestCtx, LogHandlerGetFilms)

	films := h.filmService.GetFilms(requestCtx)

	if err := ctx.JSON(films); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateFilm обрабатывает запрос на добавление фильма.
func (h *Handler) CreateFilm(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateFilm"))
	log.Debug(requestCtx, LogHandlerCreateFilm)

	var film entities.Film
	if err := ctx.Bind().Body(&film); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respond.BadRequest(ctx, ErrMsgInvalidRequestBody)
	}

	created, err := h.filmService.CreateFilm(requestCtx, &film)
	if err != nil {
		log.Error(requestCtx, "failed to create film", zap.Error(err))
		return respond.Error(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(created); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateFilm обрабатывает запрос на обновление фильма.
func (h *Handler) UpdateFilm(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateFilm"))
	log.Debug(requestCtx, LogHandlerUpdateFilm)

	var film entities.Film
	if err := ctx.Bind().Body(&film); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respond.BadRequest(ctx, ErrMsgInvalidRequestBody)
	}

	updated, err := h.filmService.UpdateFilm(requestCtx, &film)
	if err != nil {
		log.Error(requestCtx, "failed to update film", zap.Error(err))
		return respond.Error(ctx, err)
	}

	if err := ctx.JSON(updated); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// LikeFilm обрабатывает запрос на добавление лайка фильму.
func (h *Handler) LikeFilm(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.LikeFilm"))
	log.Debug(requestCtx, LogHandlerLikeFilm)

	filmID, userID, err := likeParams(ctx)
	if err != nil {
		log.Error(requestCtx, err.Error())
		return respond.BadRequest(ctx, err.Error())
	}

	if err := h.filmService.LikeFilm(requestCtx, filmID, userID); err != nil {
		log.Error(requestCtx, "failed to like film", zap.Error(err))
		return respond.Error(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusOK)
}

// UnlikeFilm обрабатывает запрос на удаление лайка с фильма.
func (h *Handler) UnlikeFilm(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UnlikeFilm"))
	log.Debug(requestCtx, LogHandlerUnlikeFilm)

	filmID, userID, err := likeParams(ctx)
	if err != nil {
		log.Error(requestCtx, err.Error())
		return respond.BadRequest(ctx, err.Error())
	}

	if err := h.filmService.UnlikeFilm(requestCtx, filmID, userID); err != nil {
		log.Error(requestCtx, "failed to unlike film", zap.Error(err))
		return respond.Error(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusOK)
}

// PopularFilms обрабатывает запрос на рейтинг фильмов по лайкам.
func (h *Handler) PopularFilms(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.PopularFilms"))
	log.Debug(requestCtx, LogHandlerPopularFilms)

	countStr := ctx.Query("count", strconv.Itoa(api.DefaultPopularCount))
	count, err := strconv.Atoi(countStr)
	if err != nil {
		log.Error(requestCtx, ErrMsgInvalidCount, zap.Error(err))
		return respond.BadRequest(ctx, ErrMsgInvalidCount)
	}

	films, err := h.socialService.PopularFilms(requestCtx, count)
	if err != nil {
		log.Error(requestCtx, "failed to get popular films", zap.Error(err))
		return respond.Error(ctx, err)
	}

	if err := ctx.JSON(films); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// likeParams извлекает идентификаторы фильма и пользователя из пути.
func likeParams(ctx fiber.Ctx) (filmID, userID int64, err error) {
	filmID, err = strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s", ErrMsgInvalidFilmID)
	}
	userID, err = strconv.ParseInt(ctx.Params("userId"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s", ErrMsgInvalidUserID)
	}
	return filmID, userID, nil
}

// requestContext извлекает контекст запроса, подготовленный промежуточным ПО.
func requestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(middleware.ContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
