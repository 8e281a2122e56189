// Package julian converts between instants and the Julian day numbers used by
// the solar and lunar formulas.
package julian

import (
	"math"
	"time"

	"github.com/spencer-p/suncalc/pkg/timetricks"
)

const (
	// DayMs is the length of a day in milliseconds.
	DayMs = 1000 * 60 * 60 * 24
	// J1970 is the Julian day of 1970-01-01T12:00:00Z.
	J1970 = 2440588.0
	// J2000 is the Julian day of the J2000.0 epoch, 2000-01-01T12:00:00Z.
	J2000 = 2451545.0
)

// ToJulian returns the fractional Julian day of t.
func ToJulian(t time.Time) float64 {
	return float64(t.UnixMilli())/DayMs - 0.5 + J1970
}

// FromJulian is the inverse of ToJulian, rounded to the millisecond. The
// result is in UTC.
func FromJulian(j float64) time.Time {
	ms := math.Round((j + 0.5 - J1970) * DayMs)
	return time.UnixMilli(int64(ms)).UTC()
}

// ToDays returns the days elapsed since J2000.
func ToDays(t time.Time) float64 {
	return ToJulian(t) - J2000
}

// Time converts j like FromJulian, but reports an absent instant when j is
// not a finite number. This happens when a sun altitude is never reached.
func Time(j float64) timetricks.NullTime {
	if math.IsNaN(j) || math.IsInf(j, 0) {
		return timetricks.NullTime{}
	}
	return timetricks.Some(FromJulian(j))
}
