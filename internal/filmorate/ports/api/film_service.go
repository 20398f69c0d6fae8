// Package api определяет интерфейсы сервисов, доступных HTTP-адаптеру.
package api

import (
	"context"

	"filmorate/internal/filmorate/domain/entities"
)

// FilmUseCase - операции над каталогом фильмов.
type FilmUseCase interface {
	GetFilms(ctx context.Context) []*entities.Film
	CreateFilm(ctx context.Context, film *entities.Film) (*entities.Film, error)
	UpdateFilm(ctx context.Context, film *entities.Film) (*entities.Film, error)
	LikeFilm(ctx context.Context, filmID, userID int64) error
	UnlikeFilm(ctx context.Context, filmID, userID int64) error
}
