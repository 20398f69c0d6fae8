package api

import (
	"context"

	"filmorate/internal/filmorate/domain/entities"
)

// UserUseCase - операции над пользователями и графом дружбы.
type UserUseCase interface {
	GetUsers(ctx context.Context) []*entities.User
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
}
