package entities

import (
	"encoding/json"
	"strings"
)

// User - основная сущность домена пользователя.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday Date   `json:"birthday"`
	Friends  IDSet  `json:"friends"`
}

// EffectiveName возвращает отображаемое имя пользователя: при пустом имени
// используется логин. Вычисляется при чтении, а не фиксируется при записи.
func (u *User) EffectiveName() string {
	if strings.TrimSpace(u.Name) == "" {
		return u.Login
	}
	return u.Name
}

// AddFriend добавляет пользователя в множество друзей. Повторное добавление - no-op.
func (u *User) AddFriend(friendID int64) {
	if u.Friends == nil {
		u.Friends = make(IDSet)
	}
	u.Friends.Add(friendID)
}

// RemoveFriend убирает пользователя из множества друзей. Отсутствующий - no-op.
func (u *User) RemoveFriend(friendID int64) {
	u.Friends.Remove(friendID)
}

// Clone возвращает независимую копию пользователя.
func (u *User) Clone() *User {
	clone := *u
	clone.Friends = u.Friends.Clone()
	return &clone
}

// MarshalJSON сериализует пользователя, подставляя отображаемое имя.
func (u User) MarshalJSON() ([]byte, error) {
	type alias User
	out := alias(u)
	out.Name = u.EffectiveName()
	return json.Marshal(out)
}
