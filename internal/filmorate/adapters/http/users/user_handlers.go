// Package users содержит HTTP-обработчики пользователей и графа дружбы.
package users

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
	LogHandlerGetUsers      = "handling get users request"
	LogHandlerCreateUser    = "handling create user request"
	LogHandlerUpdateUser    = "handling update user request"
	LogHandlerAddFriend     = "handling add friend request"
	LogHandlerRemoveFriend  = "handling remove friend request"
	LogHandlerGetFriends    = "handling get friends request"
	LogHandlerCommonFriends = "handling common friends request"

	ErrMsgInvalidUserID      = "invalid user id"
	ErrMsgInvalidFriendID    = "invalid friend id"
	ErrMsgInvalidOtherID     = "invalid other user id"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// Handler обработчик HTTP-запросов для работы с пользователями.
type Handler struct {
	userService   api.UserUseCase
	socialService api.SocialUseCase
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(userService api.UserUseCase, socialService api.SocialUseCase) *Handler {
	return &Handler{
		userService:   userService,
		socialService: socialService,
	}
}

// GetUsers обрабатывает запрос на получение всех пользователей.
func (h *Handler) GetUsers(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetUsers"))
	log.Debug(requestCtx, LogHandlerGetUsers)

	users := h.userService.GetUsers(requestCtx)

	if err := ctx.JSON(users); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateUser обрабатывает запрос на добавление пользователя.
func (h *Handler) CreateUser(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateUser"))
	log.Debug(requestCtx, LogHandlerCreateUser)

	var user entities.User
	if err := ctx.Bind().Body(&user); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respond.BadRequest(ctx, ErrMsgInvalidRequestBody)
	}

	created, err := h.userService.CreateUser(requestCtx, &user)
	if err != nil {
		log.Error(requestCtx, "failed to create user", zap.Error(err))
		return respond.Error(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(created); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateUser обрабатывает запрос на обновление пользователя.
func (h *Handler) UpdateUser(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateUser"))
	log.Debug(requestCtx, LogHandlerUpdateUser)

	var user entities.User
	if err := ctx.Bind().Body(&user); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respond.BadRequest(ctx, ErrMsgInvalidRequestBody)
	}

	updated, err := h.userService.UpdateUser(requestCtx, &user)
	if err != nil {
		log.Error(requestCtx, "failed to update user", zap.Error(err))
		return respond.Error(ctx, err)
	}

	if err := ctx.JSON(updated); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// AddFriend обрабатывает запрос на установление дружбы.
func (h *Handler) AddFriend(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.AddFriend"))
	log.Debug(requestCtx, LogHandlerAddFriend)

	userID, friendID, err := friendParams(ctx)
	if err != nil {
		log.Error(requestCtx, err.Error())
		return respond.BadRequest(ctx, err.Error())
	}

	if err := h.userService.AddFriend(requestCtx, userID, friendID); err != nil {
		log.Error(requestCtx, "failed to add friend", zap.Error(err))
		return respond.Error(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusOK)
}

// RemoveFriend обрабатывает запрос на прекращение дружбы.
func (h *Handler) RemoveFriend(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.RemoveFriend"))
	log.Debug(requestCtx, LogHandlerRemoveFriend)

	userID, friendID, err := friendParams(ctx)
	if err != nil {
		log.Error(requestCtx, err.Error())
		return respond.BadRequest(ctx, err.Error())
	}

	if err := h.userService.RemoveFriend(requestCtx, userID, friendID); err != nil {
		log.Error(requestCtx, "failed to remove friend", zap.Error(err))
		return respond.Error(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusOK)
}

// GetFriends обрабатывает запрос на получение друзей пользователя.
func (h *Handler) GetFriends(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetFriends"))
	log.Debug(requestCtx, LogHandlerGetFriends)

	userID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		log.Error(requestCtx, ErrMsgInvalidUserID, zap.Error(err))
		return respond.BadRequest(ctx, ErrMsgInvalidUserID)
	}

	friends, err := h.socialService.Friends(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, "failed to get friends", zap.Error(err))
		return respond.Error(ctx, err)
	}

	if err := ctx.JSON(friends); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetCommonFriends обрабатывает запрос на пересечение друзей двух пользователей.
func (h *Handler) GetCommonFriends(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetCommonFriends"))
	log.Debug(requestCtx, LogHandlerCommonFriends)

	userID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		log.Error(requestCtx, ErrMsgInvalidUserID, zap.Error(err))
		return respond.BadRequest(ctx, ErrMsgInvalidUserID)
	}
	otherID, err := strconv.ParseInt(ctx.Params("otherId"), 10, 64)
	if err != nil {
		log.Error(requestCtx, ErrMsgInvalidOtherID, zap.Error(err))
		return respond.BadRequest(ctx, ErrMsgInvalidOtherID)
	}

	common, err := h.socialService.CommonFriends(requestCtx, userID, otherID)
	if err != nil {
		log.Error(requestCtx, "failed to get common friends", zap.Error(err))
		return respond.Error(ctx, err)
	}

	if err := ctx.JSON(common); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// friendParams извлекает идентификаторы пользователя и друга из пути.
func friendParams(ctx fiber.Ctx) (userID, friendID int64, err error) {
	userID, err = strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s", ErrMsgInvalidUserID)
	}
	friendID, err = strconv.ParseInt(ctx.Params("friendId"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s", ErrMsgInvalidFriendID)
	}
	return userID, friendID, nil
}

// requestContext извлекает контекст запроса, подготовленный промежуточным ПО.
func requestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(middleware.ContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
