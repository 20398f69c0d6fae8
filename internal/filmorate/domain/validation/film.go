// Package validation содержит чистые доменные правила для фильмов и
// пользователей. Правила проверяются без досрочного выхода: вызывающая
// сторона получает полный список нарушений за один проход.
package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"filmorate/internal/filmorate/domain/entities"
)

// MaxDescriptionLength - предельная длина описания фильма в символах.
const MaxDescriptionLength = 200

// CinemaBirthday - дата первого публичного кинопоказа. Фильмы с более
// ранней датой релиза не принимаются.
var CinemaBirthday = entities.NewDate(1895, time.December, 28)

// Сообщения о нарушениях правил фильма.
const (
	MsgFilmNameBlank        = "film name must not be blank"
	MsgFilmDescriptionBlank = "film description must not be blank"
	MsgFilmDescriptionLong  = "film description exceeds 200 characters"
	MsgFilmReleaseDateEmpty = "release date is required"
	MsgFilmReleaseDateEarly = "release date must not be before 28 December 1895"
	MsgFilmDurationInvalid  = "film duration must be positive"
)

// ValidateFilm проверяет все правила фильма и возвращает ValidationError
// с полным списком нарушений либо nil.
func ValidateFilm(film *entities.Film) error {
	var violations []string

	if strings.TrimSpace(film.Name) == "" {
		violations = append(violations, MsgFilmNameBlank)
	}

	if strings.TrimSpace(film.Description) == "" {
		violations = append(violations, MsgFilmDescriptionBlank)
	} else if utf8.RuneCountInString(film.Description) > MaxDescriptionLength {
		violations = append(violations, MsgFilmDescriptionLong)
	}

	switch {
	case film.ReleaseDate.IsZero():
		violations = append(violations, MsgFilmReleaseDateEmpty)
	case film.ReleaseDate.BeforeDate(CinemaBirthday):
		violations = append(violations, MsgFilmReleaseDateEarly)
	}

	if film.Duration <= 0 {
		violations = append(violations, MsgFilmDurationInvalid)
	}

	if len(violations) > 0 {
		return entities.NewValidationError(violations...)
	}
	return nil
}
