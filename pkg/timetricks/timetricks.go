package timetricks

import (
	"encoding/json"
	"time"
)

const (
	dayFormat = "20060102"
)

// SameDay reports whether t and t2 fall on the same calendar day, each in its
// own location.
func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

// TrimClock drops the wall clock component of t, leaving midnight of the same
// calendar day in t's location.
func TrimClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// UTCDay returns midnight UTC of the UTC calendar day containing t.
func UTCDay(t time.Time) time.Time {
	return TrimClock(t.UTC())
}

func SetClock(t time.Time, hour, minute time.Duration) time.Time {
	return TrimClock(t).Add(hour*time.Hour + minute*time.Minute)
}

// AddHours offsets t by a fractional number of hours.
func AddHours(t time.Time, hours float64) time.Time {
	return t.Add(time.Duration(hours * float64(time.Hour)))
}

// NullTime is an instant that may be absent, for events that do not happen on
// a given day.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// Some wraps a present instant.
func Some(t time.Time) NullTime {
	return NullTime{Time: t, Valid: true}
}

func (n NullTime) String() string {
	if !n.Valid {
		return "-"
	}
	return n.Time.Format(time.RFC3339)
}

// Before orders absent instants after every present one.
func (n NullTime) Before(o NullTime) bool {
	switch {
	case !n.Valid:
		return false
	case !o.Valid:
		return true
	}
	return n.Time.Before(o.Time)
}

func (n NullTime) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Time)
}

func (n *NullTime) UnmarshalJSON(buf []byte) error {
	if string(buf) == "null" {
		*n = NullTime{}
		return nil
	}
	if err := json.Unmarshal(buf, &n.Time); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
