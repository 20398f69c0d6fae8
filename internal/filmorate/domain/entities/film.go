package entities

// Film - основная сущность каталога фильмов. Идентификатор присваивается
// хранилищем один раз при создании и далее не изменяется.
type Film struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ReleaseDate Date   `json:"releaseDate"`
	Duration    int    `json:"duration"`
	Likes       IDSet  `json:"likes"`
}

// AddLike добавляет лайк пользователя. Повторный лайк - no-op.
func (f *Film) AddLike(userID int64) {
	if f.Likes == nil {
		f.Likes = make(IDSet)
	}
	f.Likes.Add(userID)
}

// RemoveLike убирает лайк пользователя. Отсутствующий лайк - no-op.
func (f *Film) RemoveLike(userID int64) {
	f.Likes.Remove(userID)
}

// LikeCount возвращает число лайков фильма.
func (f *Film) LikeCount() int {
	return f.Likes.Len()
}

// Clone возвращает независимую копию фильма.
func (f *Film) Clone() *Film {
	clone := *f
	clone.Likes = f.Likes.Clone()
	return &clone
}
