package repositories

import (
	"context"

	"filmorate/internal/filmorate/domain/entities"
)

// UserRepository - единственный владелец всех пользователей. Дружба
// устанавливается двунаправленно и атомарно: промежуточное состояние,
// где связь есть только с одной стороны, не наблюдаемо.
type UserRepository interface {
	// FindAll возвращает всех пользователей в порядке добавления.
	FindAll(ctx context.Context) []*entities.User

	// GetByID возвращает пользователя или NotFoundError.
	GetByID(ctx context.Context, id int64) (*entities.User, error)

	// Add проверяет пользователя, применяет подстановку имени из логина,
	// присваивает идентификатор и сохраняет его.
	Add(ctx context.Context, user *entities.User) (*entities.User, error)

	// Update заменяет изменяемые поля пользователя, сохраняя множество друзей.
	Update(ctx context.Context, user *entities.User) (*entities.User, error)

	// AddFriend добавляет каждого из пользователей в друзья другому.
	// Повторное добавление существующей дружбы - no-op.
	AddFriend(ctx context.Context, userID, friendID int64) error

	// RemoveFriend симметрично убирает дружбу. Отсутствующая связь - no-op.
	RemoveFriend(ctx context.Context, userID, friendID int64) error

	// Clear опустошает хранилище и сбрасывает счетчик идентификаторов.
	Clear(ctx context.Context)
}
