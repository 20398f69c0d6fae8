// Package cache определяет интерфейс кэша производных запросов.
package cache

import "context"

// PopularFilmsCache кэширует сериализованные выборки популярных фильмов
// по запрошенному количеству. Кэш - необязательный помощник: его отказ
// не влияет на корректность запросов.
type PopularFilmsCache interface {
	// Get возвращает закэшированную выборку или пустую строку при промахе.
	Get(ctx context.Context, count int) (string, error)

	// Set сохраняет выборку для заданного количества.
	Set(ctx context.Context, count int, payload string) error

	// Invalidate сбрасывает все закэшированные выборки.
	Invalidate(ctx context.Context) error

	// Close закрывает соединение с кэшем.
	Close() error
}
