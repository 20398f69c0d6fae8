package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"filmorate/internal/filmorate/domain/entities"
)

// MaxUserNameLength - предельная длина отображаемого имени в символах.
const MaxUserNameLength = 50

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Сообщения о нарушениях правил пользователя.
const (
	MsgUserEmailBlank      = "email must not be blank"
	MsgUserEmailInvalid    = "invalid email format"
	MsgUserLoginBlank      = "login must not be blank"
	MsgUserLoginWhitespace = "login must not contain whitespace"
	MsgUserNameTooLong     = "name must not exceed 50 characters"
	MsgUserBirthdayFuture  = "birthday must not be in the future"
)

// ValidateUser проверяет все правила пользователя и возвращает
// ValidationError с полным списком нарушений либо nil.
// Дата рождения необязательна; сегодняшняя дата допустима.
func ValidateUser(user *entities.User) error {
	var violations []string

	if strings.TrimSpace(user.Email) == "" {
		violations = append(violations, MsgUserEmailBlank)
	} else if !emailRegex.MatchString(user.Email) {
		violations = append(violations, MsgUserEmailInvalid)
	}

	switch {
	case user.Login == "":
		violations = append(violations, MsgUserLoginBlank)
	case strings.ContainsFunc(user.Login, unicode.IsSpace):
		violations = append(violations, MsgUserLoginWhitespace)
	}

	if user.Name != "" && utf8.RuneCountInString(user.Name) > MaxUserNameLength {
		violations = append(violations, MsgUserNameTooLong)
	}

	if !user.Birthday.IsZero() && user.Birthday.AfterDate(entities.DateOf(time.Now())) {
		violations = append(violations, MsgUserBirthdayFuture)
	}

	if len(violations) > 0 {
		return entities.NewValidationError(violations...)
	}
	return nil
}
