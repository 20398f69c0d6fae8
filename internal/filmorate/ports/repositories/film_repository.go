// Package repositories определяет интерфейсы хранилищ сущностей.
package repositories

import (
	"context"

	"filmorate/internal/filmorate/domain/entities"
)

// FilmRepository - единственный владелец всех фильмов. Хранилище проверяет
// доменные правила перед каждой мутацией и выдает идентификаторы через
// собственный монотонный счетчик. Возвращаемые значения - независимые копии:
// вызывающая сторона не может изменить состояние хранилища через результат.
type FilmRepository interface {
	// FindAll возвращает все фильмы в порядке добавления.
	FindAll(ctx context.Context) []*entities.Film

	// GetByID возвращает фильм или NotFoundError.
	GetByID(ctx context.Context, id int64) (*entities.Film, error)

	// Add проверяет фильм, присваивает идентификатор и сохраняет его.
	Add(ctx context.Context, film *entities.Film) (*entities.Film, error)

	// Update заменяет изменяемые поля фильма, сохраняя множество лайков.
	// Возвращает ConditionsNotMetError без идентификатора и NotFoundError
	// для неизвестного идентификатора.
	Update(ctx context.Context, film *entities.Film) (*entities.Film, error)

	// AddLike добавляет лайк пользователя фильму.
	AddLike(ctx context.Context, filmID, userID int64) error

	// RemoveLike убирает лайк пользователя. Отсутствующий лайк - no-op.
	RemoveLike(ctx context.Context, filmID, userID int64) error

	// Clear опустошает хранилище и сбрасывает счетчик идентификаторов.
	Clear(ctx context.Context)
}
