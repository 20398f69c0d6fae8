package app

import (
	"context"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/ports/api"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

const (
	msgFriendAdded   = "friendship established"
	msgFriendRemoved = "friendship removed"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	users repositories.UserRepository
}

// NewUserUseCase создает новый сервис пользователей.
func NewUserUseCase(users repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{users: users}
}

// GetUsers возвращает всех пользователей в порядке добавления.
func (u *UserUseCaseImpl) GetUsers(ctx context.Context) []*entities.User {
	return u.users.FindAll(ctx)
}

// CreateUser добавляет пользователя в хранилище.
func (u *UserUseCaseImpl) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	return u.users.Add(ctx, user)
}

// UpdateUser обновляет изменяемые поля пользователя.
func (u *UserUseCaseImpl) UpdateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	return u.users.Update(ctx, user)
}

// AddFriend устанавливает двунаправленную дружбу между пользователями.
func (u *UserUseCaseImpl) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := u.users.AddFriend(ctx, userID, friendID); err != nil {
		return err
	}
	logger.Log(ctx).Debug(ctx, msgFriendAdded,
		zap.Int64("user_id", userID), zap.Int64("friend_id", friendID))
	return nil
}

// RemoveFriend симметрично убирает дружбу между пользователями.
func (u *UserUseCaseImpl) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := u.users.RemoveFriend(ctx, userID, friendID); err != nil {
		return err
	}
	logger.Log(ctx).Debug(ctx, msgFriendRemoved,
		zap.Int64("user_id", userID), zap.Int64("friend_id", friendID))
	return nil
}
