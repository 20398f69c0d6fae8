package app

import (
	"context"

	"filmorate/internal/filmorate/ports/api"
	"filmorate/internal/filmorate/ports/cache"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

const msgStateReset = "all storages reset"

// AdminUseCaseImpl реализует интерфейс AdminUseCase.
type AdminUseCaseImpl struct {
	films repositories.FilmRepository
	users repositories.UserRepository
	cache cache.PopularFilmsCache
}

// NewAdminUseCase создает новый административный сервис.
func NewAdminUseCase(
	films repositories.FilmRepository,
	users repositories.UserRepository,
	popularCache cache.PopularFilmsCache,
) api.AdminUseCase {
	return &AdminUseCaseImpl{films: films, users: users, cache: popularCache}
}

// Reset опустошает оба хранилища, сбрасывает счетчики идентификаторов
// и закэшированные выборки. Следующая добавленная сущность получит id 1.
func (u *AdminUseCaseImpl) Reset(ctx context.Context) error {
	u.films.Clear(ctx)
	u.users.Clear(ctx)

	if u.cache != nil {
		if err := u.cache.Invalidate(ctx); err != nil {
			return err
		}
	}

	logger.Log(ctx).Info(ctx, msgStateReset)
	return nil
}
