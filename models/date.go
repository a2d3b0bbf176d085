package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical storage form of a session date.
	DateLayout = "2006-01-02"
	// DisplayDateLayout is the day/month/year form clients use in lookups.
	DisplayDateLayout = "02/01/2006"
	// TimeOfDayLayout is the storage and wire form of a session duration.
	TimeOfDayLayout = "15:04:05"
)

// Date is a calendar day without time or zone, stored as TEXT 'YYYY-MM-DD'.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its calendar parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts either the canonical YYYY-MM-DD form or the DD/MM/YYYY
// form and returns the same Date for both.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	layout := DateLayout
	if strings.Contains(s, "/") {
		layout = DisplayDateLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or DD/MM/YYYY", s)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// GormDataType makes AutoMigrate declare the column as DATE.
func (Date) GormDataType() string {
	return "date"
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner. The sqlite3 driver hands DATE columns back
// as time.Time, so that is accepted alongside the raw text forms.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		// the driver parses DATE text as midnight UTC
		*d = DateOf(v.UTC())
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanText(s string) error {
	// tolerate values written with a time component
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Date: %w", s, err)
	}
	*d = DateOf(parsed)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay is a clock reading (HH:MM:SS) used for session durations.
type TimeOfDay struct {
	seconds int
}

// NewTimeOfDay returns an error when any part is out of range.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %02d:%02d:%02d", hour, minute, second)
	}
	return TimeOfDay{seconds: hour*3600 + minute*60 + second}, nil
}

// ParseTimeOfDay accepts HH:MM:SS or HH:MM.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layout := TimeOfDayLayout
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: expected HH:MM:SS", s)
	}
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Hour() int   { return t.seconds / 3600 }
func (t TimeOfDay) Minute() int { return t.seconds % 3600 / 60 }
func (t TimeOfDay) Second() int { return t.seconds % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// GormDataType makes AutoMigrate declare the column as TIME.
func (TimeOfDay) GormDataType() string {
	return "time"
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner.
func (t *TimeOfDay) Scan(src interface{}) error {
	var (
		parsed TimeOfDay
		err    error
	)
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		parsed, err = NewTimeOfDay(v.Hour(), v.Minute(), v.Second())
	case string:
		parsed, err = ParseTimeOfDay(v)
	case []byte:
		parsed, err = ParseTimeOfDay(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
