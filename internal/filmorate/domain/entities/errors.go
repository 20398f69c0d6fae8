package entities

import (
	"fmt"
	"strings"
)

// Виды сущностей для сообщений об ошибках.
const (
	EntityFilm = "film"
	EntityUser = "user"
)

// ValidationError - нарушение одного или нескольких доменных правил при
// создании или обновлении сущности. Содержит полный список нарушений:
// правила проверяются без досрочного выхода.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NotFoundError - запрошенная сущность отсутствует в хранилище.
type NotFoundError struct {
	Entity string
	ID     int64
}

func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id = %d not found", e.Entity, e.ID)
}

// ConditionsNotMetError - нарушено структурное предусловие операции,
// не связанное с проверкой полей (например, обновление без идентификатора).
type ConditionsNotMetError struct {
	Message string
}

func NewConditionsNotMetError(message string) *ConditionsNotMetError {
	return &ConditionsNotMetError{Message: message}
}

func (e *ConditionsNotMetError) Error() string {
	return e.Message
}
