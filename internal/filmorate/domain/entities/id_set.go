package entities

import (
	"encoding/json"
	"sort"
)

// IDSet - множество идентификаторов сущностей. Проверка принадлежности
// выполняется за O(1); в JSON множество представляется отсортированным
// массивом для детерминированного вывода.
type IDSet map[int64]struct{}

// NewIDSet создает множество из перечисленных идентификаторов.
func NewIDSet(ids ...int64) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Add добавляет идентификатор. Повторное добавление не изменяет множество.
func (s IDSet) Add(id int64) {
	s[id] = struct{}{}
}

// Remove удаляет идентификатор. Удаление отсутствующего - no-op.
func (s IDSet) Remove(id int64) {
	delete(s, id)
}

// Contains сообщает, принадлежит ли идентификатор множеству.
func (s IDSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Len возвращает размер множества.
func (s IDSet) Len() int {
	return len(s)
}

// IDs возвращает идентификаторы в порядке возрастания.
func (s IDSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clone возвращает независимую копию множества.
func (s IDSet) Clone() IDSet {
	clone := make(IDSet, len(s))
	for id := range s {
		clone[id] = struct{}{}
	}
	return clone
}

// MarshalJSON сериализует множество в отсортированный массив.
func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// UnmarshalJSON десериализует множество из массива идентификаторов.
func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}
