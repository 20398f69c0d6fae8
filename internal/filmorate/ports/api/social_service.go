package api

import (
	"context"

	"filmorate/internal/filmorate/domain/entities"
)

// DefaultPopularCount - количество фильмов в рейтинге по умолчанию.
const DefaultPopularCount = 10

// SocialUseCase - производные запросы над состоянием хранилищ.
// Все операции только читают; хранилища никогда не мутируются.
type SocialUseCase interface {
	// PopularFilms возвращает count фильмов по убыванию числа лайков.
	// При равенстве лайков сохраняется порядок добавления.
	PopularFilms(ctx context.Context, count int) ([]*entities.Film, error)

	// Friends возвращает друзей пользователя.
	Friends(ctx context.Context, userID int64) ([]*entities.User, error)

	// CommonFriends возвращает пересечение множеств друзей двух пользователей.
	CommonFriends(ctx context.Context, userID, otherID int64) ([]*entities.User, error)
}
