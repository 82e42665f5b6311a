package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток без даты в формате HH:MM
// Нулевое значение означает "время не задано"
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeString берет часы и минуты из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// NewTimeStringFromString парсит строку вида "10:00" (допускается "10:00:00" и "9:30")
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if len(parts[1]) != 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return TimeString{minutes: hour*60 + minute, valid: true}, nil
}

// MustTimeString паникует при ошибке парсинга, удобно для констант и тестов
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func (t TimeString) IsZero() bool {
	return !t.valid
}

// Validate проверяет, что время задано и лежит в пределах суток
func (t TimeString) Validate() error {
	if !t.valid {
		return ErrInvalidTimeString
	}
	if t.minutes < 0 || t.minutes >= minutesPerDay {
		return ErrTimeOverflow
	}
	return nil
}

func (t TimeString) Hour() int {
	return t.minutes / 60
}

func (t TimeString) Minute() int {
	return t.minutes % 60
}

func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

func (t TimeString) Equal(other TimeString) bool {
	return t.valid == other.valid && t.minutes == other.minutes
}

// Value реализует driver.Valuer (колонка TIME)
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}

// Scan реализует sql.Scanner. lib/pq отдает TIME как time.Time, но поддерживаем и строки
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = TimeString{}
		return nil
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
