// Package darksky finds the parts of a night when the sky is dark enough for
// observing faint objects: the sun is past astronomical dusk and the moon is
// either below the horizon or nearly new.
package darksky

import (
	"fmt"
	"time"

	"github.com/spencer-p/suncalc/pkg/moon"
	"github.com/spencer-p/suncalc/pkg/position"
	"github.com/spencer-p/suncalc/pkg/sun"
	"github.com/spencer-p/suncalc/pkg/timetricks"
)

const (
	// Moonlight below this lit fraction does not spoil the sky.
	dimMoon = 0.1
	// Windows shorter than this are dropped.
	minWindow = 30 * time.Minute
	step      = 10 * time.Minute
)

// Conditions is the set of data the windows are found in.
type Conditions struct {
	// Days are consecutive sun times. A night runs from one day's Night to
	// the next day's NightEnd. Entries that are not a day apart bound no
	// night.
	Days  []sun.Times
	Place sun.Place
}

// Windows finds the dark windows of every night covered by c.
func Windows(c Conditions) []Window {
	result := []Window{}
	for i := 0; i+1 < len(c.Days); i++ {
		if !adjacent(c.Days[i], c.Days[i+1]) {
			continue
		}
		dusk, dawn := c.Days[i].Night, c.Days[i+1].NightEnd
		// No astronomical night, or the sun never rises.
		if !dusk.Valid || !dawn.Valid || !dusk.Time.Before(dawn.Time) {
			continue
		}
		result = append(result, c.night(dusk.Time, dawn.Time)...)
	}
	return result
}

// adjacent reports whether next is the day after prev.
func adjacent(prev, next sun.Times) bool {
	if !prev.SolarNoon.Valid || !next.SolarNoon.Valid {
		return false
	}
	return timetricks.SameDay(prev.SolarNoon.Time.AddDate(0, 0, 1), next.SolarNoon.Time)
}

// night walks [dusk, dawn] and merges dark samples into windows.
func (c Conditions) night(dusk, dawn time.Time) []Window {
	var result []Window
	var open *Window

	closeAt := func(t time.Time) {
		if open == nil {
			return
		}
		if t.After(dawn) {
			t = dawn
		}
		open.Duration = t.Sub(open.Time)
		if open.Duration >= minWindow {
			result = append(result, *open)
		}
		open = nil
	}

	for t := dusk; !t.After(dawn); t = t.Add(step) {
		reason, dark := c.moonlight(t)
		switch {
		case dark && open == nil:
			open = &Window{
				Time:    t,
				Reasons: []string{"the sun is 18° below the horizon", reason},
			}
		case !dark:
			closeAt(t)
		}
	}
	closeAt(dawn)
	return result
}

// moonlight reports whether the moon leaves the sky dark at t, and why.
func (c Conditions) moonlight(t time.Time) (string, bool) {
	pos := moon.GetPosition(t, c.Place.Lat, c.Place.Long)
	if pos.Altitude < 0 {
		return "the moon is down", true
	}
	il := moon.GetIllumination(t)
	if il.Fraction < dimMoon {
		return fmt.Sprintf("the moon is only %.0f%% lit", il.Fraction*100), true
	}
	return fmt.Sprintf("the moon is %.0f° up and %.0f%% lit", pos.Altitude/position.Rad, il.Fraction*100), false
}

// Find computes the sun times for each day from start and returns the dark
// windows of the nights between them.
func Find(start time.Time, days int, place sun.Place) []Window {
	c := Conditions{Place: place}
	for d := 0; d <= days; d++ {
		c.Days = append(c.Days, sun.GetTimes(start.AddDate(0, 0, d), place.Lat, place.Long, place.Height))
	}
	return Windows(c)
}
