package models

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the calendar-date form used throughout the stored files.
const dateLayout = "2006-01-02"

// Date is a calendar date persisted as a YYYY-MM-DD string.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time value, truncated to the day in UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON parses a "YYYY-MM-DD" string. Anything else fails, which
// the store surfaces as malformed content.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}
