package adminusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/adapters/memory"
	"filmorate/internal/filmorate/app"
	"filmorate/internal/filmorate/domain/entities"
)

type mockPopularFilmsCache struct {
	mock.Mock
}

func (m *mockPopularFilmsCache) Get(ctx context.Context, count int) (string, error) {
	args := m.Called(ctx, count)
	return args.String(0), args.Error(1)
}

func (m *mockPopularFilmsCache) Set(ctx context.Context, count int, payload string) error {
	args := m.Called(ctx, count, payload)
	return args.Error(0)
}

func (m *mockPopularFilmsCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockPopularFilmsCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	films := memory.NewFilmStorage()
	users := memory.NewUserStorage()

	_, err := films.Add(ctx, &entities.Film{
		Name:        "doomed",
		Description: "to be cleared",
		ReleaseDate: entities.NewDate(2000, time.January, 1),
		Duration:    90,
	})
	require.NoError(t, err)

	_, err = users.Add(ctx, &entities.User{Email: "doomed@example.com", Login: "doomed"})
	require.NoError(t, err)

	popularCache := new(mockPopularFilmsCache)
	popularCache.On("Invalidate", mock.Anything).Return(nil).Once()

	useCase := app.NewAdminUseCase(films, users, popularCache)

	require.NoError(t, useCase.Reset(ctx))

	assert.Empty(t, films.FindAll(ctx))
	assert.Empty(t, users.FindAll(ctx))
	popularCache.AssertExpectations(t)

	// После сброса выдача идентификаторов начинается с 1.
	recreated, err := films.Add(ctx, &entities.Film{
		Name:        "reborn",
		Description: "fresh start",
		ReleaseDate: entities.NewDate(2000, time.January, 1),
		Duration:    90,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), recreated.ID)
}
