package memory

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/domain/validation"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

// Сообщения для логирования хранилища пользователей.
const (
	msgUserAdded    = "user added"
	msgUserUpdated  = "user updated"
	msgUsersCleared = "user storage cleared"

	errUserIDRequired = "user id is required for update"
)

// UserStorage хранит пользователей в памяти. Обе стороны дружбы изменяются
// под одной блокировкой: состояние с односторонней связью не наблюдаемо.
type UserStorage struct {
	mu    sync.RWMutex
	users map[int64]*entities.User
	order []int64
	seq   sequence
}

// NewUserStorage создает пустое хранилище пользователей.
func NewUserStorage() *UserStorage {
	return &UserStorage{users: make(map[int64]*entities.User)}
}

var _ repositories.UserRepository = (*UserStorage)(nil)

// FindAll возвращает копии всех пользователей в порядке добавления.
func (s *UserStorage) FindAll(_ context.Context) []*entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entities.User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.users[id].Clone())
	}
	return users
}

// GetByID возвращает копию пользователя или NotFoundError.
func (s *UserStorage) GetByID(_ context.Context, id int64) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, entities.NewNotFoundError(entities.EntityUser, id)
	}
	return user.Clone(), nil
}

// Add проверяет пользователя, применяет подстановку имени из логина,
// присваивает идентификатор и сохраняет. Множество друзей нового
// пользователя всегда пустое.
func (s *UserStorage) Add(ctx context.Context, user *entities.User) (*entities.User, error) {
	stored := user.Clone()
	fallbackName(stored)

	if err := validation.ValidateUser(stored); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored.ID = s.seq.nextID()
	stored.Friends = make(entities.IDSet)

	s.users[stored.ID] = stored
	s.order = append(s.order, stored.ID)

	logger.Log(ctx).Info(ctx, msgUserAdded, zap.Int64("user_id", stored.ID))
	return stored.Clone(), nil
}

// Update заменяет изменяемые поля сохраненного пользователя, не трогая друзей.
func (s *UserStorage) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	if user.ID == 0 {
		return nil, entities.NewConditionsNotMetError(errUserIDRequired)
	}

	updated := user.Clone()
	fallbackName(updated)

	if err := validation.ValidateUser(updated); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[user.ID]
	if !ok {
		return nil, entities.NewNotFoundError(entities.EntityUser, user.ID)
	}

	stored.Email = updated.Email
	stored.Login = updated.Login
	stored.Name = updated.Name
	stored.Birthday = updated.Birthday

	logger.Log(ctx).Info(ctx, msgUserUpdated, zap.Int64("user_id", stored.ID))
	return stored.Clone(), nil
}

// AddFriend атомарно добавляет каждого из пользователей в друзья другому.
// Повторное добавление существующей дружбы - no-op.
func (s *UserStorage) AddFriend(_ context.Context, userID, friendID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.NewNotFoundError(entities.EntityUser, userID)
	}
	friend, ok := s.users[friendID]
	if !ok {
		return entities.NewNotFoundError(entities.EntityUser, friendID)
	}

	user.AddFriend(friendID)
	friend.AddFriend(userID)
	return nil
}

// RemoveFriend атомарно убирает дружбу с обеих сторон.
// Отсутствующая связь - no-op.
func (s *UserStorage) RemoveFriend(_ context.Context, userID, friendID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.NewNotFoundError(entities.EntityUser, userID)
	}
	friend, ok := s.users[friendID]
	if !ok {
		return entities.NewNotFoundError(entities.EntityUser, friendID)
	}

	user.RemoveFriend(friendID)
	friend.RemoveFriend(userID)
	return nil
}

// Clear опустошает хранилище и сбрасывает счетчик идентификаторов.
func (s *UserStorage) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[int64]*entities.User)
	s.order = nil
	s.seq.reset()

	logger.Log(ctx).Info(ctx, msgUsersCleared)
}

// fallbackName подставляет логин вместо пустого отображаемого имени.
func fallbackName(user *entities.User) {
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
}
