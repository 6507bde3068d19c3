package utils

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CustomDate stores a calendar date only (no time of day).
type CustomDate struct {
	time.Time
}

func NewCustomDate(year int, month time.Month, day int) CustomDate {
	return CustomDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseCustomDate parses "YYYY-MM-DD".
func ParseCustomDate(s string) (CustomDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CustomDate{}, fmt.Errorf("invalid date format: %s", s)
	}
	return CustomDate{t}, nil
}

// Today returns the current date truncated to midnight UTC.
func Today() CustomDate {
	now := time.Now()
	return NewCustomDate(now.Year(), now.Month(), now.Day())
}

// EndOfYear returns December 31 of the date's year.
func (d CustomDate) EndOfYear() CustomDate {
	return NewCustomDate(d.Year(), time.December, 31)
}

// Nights counts whole days between d and until.
func (d CustomDate) Nights(until CustomDate) int {
	return int(until.Time.Sub(d.Time).Hours() / 24)
}

func MaxDate(a, b CustomDate) CustomDate {
	if b.After(a.Time) {
		return b
	}
	return a
}

// === JSON: accepts and emits "YYYY-MM-DD" ===
func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	parsed, err := ParseCustomDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// === DB: read/write as a DATE column ===
func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil // NULL
	}
	return d.Time.Format("2006-01-02"), nil
}

func (d *CustomDate) Scan(value interface{}) error {
	if value == nil {
		*d = CustomDate{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = CustomDate{time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)}
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fmt.Errorf("cannot parse date string: %v", err)
		}
		*d = CustomDate{t}
		return nil
	case []byte:
		t, err := time.Parse("2006-01-02", string(v))
		if err != nil {
			return fmt.Errorf("cannot parse date bytes: %v", err)
		}
		*d = CustomDate{t}
		return nil
	default:
		return fmt.Errorf("unsupported scan type for CustomDate: %T", value)
	}
}

func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}
