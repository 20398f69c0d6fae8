package api

import "context"

// AdminUseCase - административные операции для сброса состояния между
// независимыми тестовыми сценариями.
type AdminUseCase interface {
	// Reset опустошает оба хранилища и сбрасывает счетчики идентификаторов.
	Reset(ctx context.Context) error
}
