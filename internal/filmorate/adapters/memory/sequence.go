// Package memory содержит потокобезопасные хранилища сущностей в памяти.
// Каждое хранилище владеет своей картой сущностей; наружу выдаются только
// копии, поэтому вызывающая сторона не может испортить внутреннее состояние.
package memory

// sequence выдает монотонно возрастающие идентификаторы начиная с 1.
// Синхронизация - обязанность владеющего хранилища.
type sequence struct {
	last int64
}

func (s *sequence) nextID() int64 {
	s.last++
	return s.last
}

func (s *sequence) reset() {
	s.last = 0
}
