package entities

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout - формат календарной даты на проводе.
const dateLayout = "2006-01-02"

// Date - календарная дата без времени суток. Нулевое значение означает
// отсутствие даты. В JSON представляется строкой вида "2006-01-02".
type Date struct {
	time.Time
}

// NewDate создает дату из года, месяца и дня.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf усекает момент времени до календарной даты.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// BeforeDate сообщает, предшествует ли дата другой дате.
func (d Date) BeforeDate(other Date) bool {
	return d.Time.Before(other.Time)
}

// AfterDate сообщает, следует ли дата за другой датой.
func (d Date) AfterDate(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// MarshalJSON сериализует дату в строку "2006-01-02" или null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON десериализует дату из строки "2006-01-02", пустой строки или null.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", raw, err)
	}
	d.Time = parsed
	return nil
}
