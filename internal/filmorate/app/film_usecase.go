// Package app содержит сервисный слой: оркестрацию операций над
// хранилищами и производные запросы.
package app

import (
	"context"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/ports/api"
	"filmorate/internal/filmorate/ports/cache"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

const (
	msgFilmLiked   = "film liked"
	msgFilmUnliked = "film unliked"

	msgErrInvalidateCache = "failed to invalidate popular films cache"
)

// FilmUseCaseImpl реализует интерфейс FilmUseCase.
type FilmUseCaseImpl struct {
	films repositories.FilmRepository
	cache cache.PopularFilmsCache
}

// NewFilmUseCase создает новый сервис фильмов. Кэш необязателен: nil
// отключает кэширование рейтинга.
func NewFilmUseCase(films repositories.FilmRepository, popularCache cache.PopularFilmsCache) api.FilmUseCase {
	return &FilmUseCaseImpl{films: films, cache: popularCache}
}

// GetFilms возвращает все фильмы в порядке добавления.
func (u *FilmUseCaseImpl) GetFilms(ctx context.Context) []*entities.Film {
	return u.films.FindAll(ctx)
}

// CreateFilm добавляет фильм в хранилище.
func (u *FilmUseCaseImpl) CreateFilm(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	created, err := u.films.Add(ctx, film)
	if err != nil {
		return nil, err
	}
	u.invalidatePopular(ctx)
	return created, nil
}

// UpdateFilm обновляет изменяемые поля фильма.
func (u *FilmUseCaseImpl) UpdateFilm(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	updated, err := u.films.Update(ctx, film)
	if err != nil {
		return nil, err
	}
	u.invalidatePopular(ctx)
	return updated, nil
}

// LikeFilm добавляет лайк пользователя фильму.
func (u *FilmUseCaseImpl) LikeFilm(ctx context.Context, filmID, userID int64) error {
	if err := u.films.AddLike(ctx, filmID, userID); err != nil {
		return err
	}
	logger.Log(ctx).Debug(ctx, msgFilmLiked,
		zap.Int64("film_id", filmID), zap.Int64("user_id", userID))
	u.invalidatePopular(ctx)
	return nil
}

// UnlikeFilm убирает лайк пользователя с фильма.
func (u *FilmUseCaseImpl) UnlikeFilm(ctx context.Context, filmID, userID int64) error {
	if err := u.films.RemoveLike(ctx, filmID, userID); err != nil {
		return err
	}
	logger.Log(ctx).Debug(ctx, msgFilmUnliked,
		zap.Int64("film_id", filmID), zap.Int64("user_id", userID))
	u.invalidatePopular(ctx)
	return nil
}

// invalidatePopular сбрасывает кэш рейтинга после мутации каталога.
// Отказ кэша не считается ошибкой операции.
func (u *FilmUseCaseImpl) invalidatePopular(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrInvalidateCache, zap.Error(err))
	}
}
