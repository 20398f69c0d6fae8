package socialusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
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
