package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/domain/validation"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

// Сообщения для логирования хранилища фильмов.
const (
	msgFilmAdded    = "film added"
	msgFilmUpdated  = "film updated"
	msgFilmsCleared = "film storage cleared"

	errFilmIDRequired = "film id is required for update"
)

// FilmStorage хранит фильмы в памяти. Мутации сериализуются единственным
// RWMutex; чтения выполняются параллельно и видят согласованный снимок.
type FilmStorage struct {
	mu    sync.RWMutex
	films map[int64]*entities.Film
	order []int64
	seq   sequence
}

// NewFilmStorage создает пустое хранилище фильмов.
func NewFilmStorage() *FilmStorage {
	return &FilmStorage{films: make(map[int64]*entities.Film)}
}

var _ repositories.FilmRepository = (*FilmStorage)(nil)

// FindAll возвращает копии всех фильмов в порядке добавления.
func (s *FilmStorage) FindAll(_ context.Context) []*entities.Film {
	s.mu.RLock()
	defer s.mu.RUnlock()

	films := make([]*entities.Film, 0, len(s.order))
	for _, id := range s.order {
		films = append(films, s.films[id].Clone())
	}
	return films
}

// GetByID возвращает копию фильма или NotFoundError.
func (s *FilmStorage) GetByID(_ context.Context, id int64) (*entities.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	film, ok := s.films[id]
	if !ok {
		return nil, entities.NewNotFoundError(entities.EntityFilm, id)
	}
	return film.Clone(), nil
}

// Add проверяет фильм, присваивает ему следующий идентификатор и сохраняет.
// Множество лайков нового фильма всегда пустое.
func (s *FilmStorage) Add(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	if err := validation.ValidateFilm(film); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := film.Clone()
	stored.ID = s.seq.nextID()
	stored.Likes = make(entities.IDSet)

	s.films[stored.ID] = stored
	s.order = append(s.order, stored.ID)

	logger.Log(ctx).Info(ctx, msgFilmAdded, zap.Int64("film_id", stored.ID))
	return stored.Clone(), nil
}

// Update заменяет изменяемые поля сохраненного фильма, не трогая лайки.
func (s *FilmStorage) Update(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	if film.ID == 0 {
		return nil, entities.NewConditionsNotMetError(errFilmIDRequired)
	}
	if err := validation.ValidateFilm(film); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.films[film.ID]
	if !ok {
		return nil, entities.NewNotFoundError(entities.EntityFilm, film.ID)
	}

	stored.Name = film.Name
	stored.Description = film.Description
	stored.ReleaseDate = film.ReleaseDate
	stored.Duration = film.Duration

	logger.Log(ctx).Info(ctx, msgFilmUpdated, zap.Int64("film_id", stored.ID))
	return stored.Clone(), nil
}

// AddLike добавляет лайк пользователя фильму.
func (s *FilmStorage) AddLike(_ context.Context, filmID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	film, ok := s.films[filmID]
	if !ok {
		return entities.NewNotFoundError(entities.EntityFilm, filmID)
	}
	film.AddLike(userID)
	return nil
}

// RemoveLike убирает лайк пользователя. Отсутствующий лайк - no-op.
func (s *FilmStorage) RemoveLike(_ context.Context, filmID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	film, ok := s.films[filmID]
	if !ok {
		return entities.NewNotFoundError(entities.EntityFilm, filmID)
	}
	film.RemoveLike(userID)
	return nil
}

// Clear опустошает хранилище и сбрасывает счетчик идентификаторов.
func (s *FilmStorage) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.films = make(map[int64]*entities.Film)
	s.order = nil
	s.seq.reset()

	logger.Log(ctx).Info(ctx, msgFilmsCleared)
}
