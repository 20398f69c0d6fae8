package app

import (
	"context"
	"encoding/json"
	"sort"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/ports/api"
	"filmorate/internal/filmorate/ports/cache"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

const (
	msgPopularCacheHit = "popular films served from cache"

	msgErrReadCache   = "failed to read popular films cache"
	msgErrWriteCache  = "failed to write popular films cache"
	msgErrDecodeCache = "failed to decode cached popular films"
)

// SocialUseCaseImpl реализует интерфейс SocialUseCase. Сервис только
// читает состояние хранилищ и собирает результаты в новые коллекции.
type SocialUseCaseImpl struct {
	films repositories.FilmRepository
	users repositories.UserRepository
	cache cache.PopularFilmsCache
}

// NewSocialUseCase создает новый сервис производных запросов.
// Кэш необязателен: nil отключает кэширование рейтинга.
func NewSocialUseCase(
	films repositories.FilmRepository,
	users repositories.UserRepository,
	popularCache cache.PopularFilmsCache,
) api.SocialUseCase {
	return &SocialUseCaseImpl{films: films, users: users, cache: popularCache}
}

// PopularFilms возвращает count фильмов по убыванию числа лайков.
// Сортировка стабильна: при равенстве лайков сохраняется порядок добавления.
func (u *SocialUseCaseImpl) PopularFilms(ctx context.Context, count int) ([]*entities.Film, error) {
	if count <= 0 {
		return []*entities.Film{}, nil
	}

	if cached, ok := u.popularFromCache(ctx, count); ok {
		return cached, nil
	}

	films := u.films.FindAll(ctx)
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].LikeCount() > films[j].LikeCount()
	})

	if count < len(films) {
		films = films[:count]
	}

	u.popularToCache(ctx, count, films)
	return films, nil
}

// Friends возвращает друзей пользователя, разрешая идентификаторы через
// хранилище. Идентификаторы перечисляются по возрастанию.
func (u *SocialUseCaseImpl) Friends(ctx context.Context, userID int64) ([]*entities.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.resolveUsers(ctx, user.Friends.IDs())
}

// CommonFriends возвращает пересечение множеств друзей двух пользователей
// в порядке перечисления друзей первого.
func (u *SocialUseCaseImpl) CommonFriends(ctx context.Context, userID, otherID int64) ([]*entities.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := u.users.GetByID(ctx, otherID)
	if err != nil {
		return nil, err
	}

	var common []int64
	for _, id := range user.Friends.IDs() {
		if other.Friends.Contains(id) {
			common = append(common, id)
		}
	}
	return u.resolveUsers(ctx, common)
}

// resolveUsers превращает идентификаторы в сущности. Висячий идентификатор
// означает нарушение инварианта дружбы; ошибка отдается вызывающей стороне
// вместо паники.
func (u *SocialUseCaseImpl) resolveUsers(ctx context.Context, ids []int64) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(ids))
	for _, id := range ids {
		user, err := u.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (u *SocialUseCaseImpl) popularFromCache(ctx context.Context, count int) ([]*entities.Film, bool) {
	if u.cache == nil {
		return nil, false
	}
	log := logger.Log(ctx).With(zap.Int("count", count))

	payload, err := u.cache.Get(ctx, count)
	if err != nil {
		log.Warn(ctx, msgErrReadCache, zap.Error(err))
		return nil, false
	}
	if payload == "" {
		return nil, false
	}

	var films []*entities.Film
	if err := json.Unmarshal([]byte(payload), &films); err != nil {
		log.Warn(ctx, msgErrDecodeCache, zap.Error(err))
		return nil, false
	}

	log.Debug(ctx, msgPopularCacheHit)
	return films, true
}

func (u *SocialUseCaseImpl) popularToCache(ctx context.Context, count int, films []*entities.Film) {
	if u.cache == nil {
		return
	}

	payload, err := json.Marshal(films)
	if err != nil {
		logger.Log(ctx).Warn(ctx, msgErrWriteCache, zap.Error(err))
		return
	}
	if err := u.cache.Set(ctx, count, string(payload)); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrWriteCache, zap.Error(err))
	}
}
