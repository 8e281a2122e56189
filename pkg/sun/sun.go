// Package sun computes the position of the sun and the times of the named
// phases of daylight and twilight.
package sun

import (
	"math"
	"sort"
	"time"

	"github.com/spencer-p/suncalc/pkg/julian"
	"github.com/spencer-p/suncalc/pkg/position"
	"github.com/spencer-p/suncalc/pkg/timetricks"
)

// crossings pairs each altitude in degrees with the phases of its morning
// and evening crossing.
var crossings = []struct {
	angle     float64
	rise, set Phase
}{
	{-0.833, Sunrise, Sunset},
	{-0.3, SunriseEnd, SunsetStart},
	{-6, Dawn, Dusk},
	{-12, NauticalDawn, NauticalDusk},
	{-18, NightEnd, Night},
	{6, GoldenHourEnd, GoldenHour},
}

// GetPosition returns the sun's position at t seen from lat, lng in degrees.
// No refraction correction is applied.
func GetPosition(t time.Time, lat, lng float64) Position {
	d := julian.ToDays(t)
	_, az, alt := position.NewObserver(lat, lng).Horizontal(d, Coordinates(d))
	return Position{Azimuth: az, Altitude: alt}
}

// GetTimes returns the sun phases of the UTC calendar day containing date, for
// an observer at lat, lng in degrees and height meters above the horizon. The
// clock of date is ignored.
func GetTimes(date time.Time, lat, lng, height float64) Times {
	obs := position.NewObserver(lat, lng)
	dh := ObserverAngle(height)

	// Anchor on noon so the transit picked is the one nearest the middle of
	// the day.
	d := julian.ToDays(timetricks.SetClock(date.UTC(), 12, 0))
	n := JulianCycle(d, obs.Lw)
	ds := ApproxTransit(0, obs.Lw, n)

	m := MeanAnomaly(ds)
	l := EclipticLongitude(m)
	dec := position.Declination(l, 0)

	jnoon := SolarTransitJ(ds, m, l)

	var ts Times
	ts.SolarNoon = julian.Time(jnoon)
	ts.Nadir = julian.Time(jnoon - 0.5)

	for _, c := range crossings {
		h0 := c.angle*position.Rad + dh
		jset := SetJ(h0, obs.Lw, obs.Phi, dec, n, m, l)
		jrise := jnoon - (jset - jnoon)

		ts.set(c.rise, julian.Time(jrise))
		ts.set(c.set, julian.Time(jset))
	}
	return ts
}

// GetSunEvents returns the sunrises and sunsets of the UTC days from start to
// start+duration, ordered in time. Days where the sun does not rise or set
// contribute no events.
func GetSunEvents(start time.Time, duration time.Duration, place Place) []Event {
	numDays := int(math.Ceil(duration.Hours() / 24))
	if numDays < 0 {
		numDays = 0
	}
	day := timetricks.UTCDay(start)

	ret := make([]Event, 0, numDays*2)
	for i := 0; i < numDays; i++ {
		ts := GetTimes(day, place.Lat, place.Long, place.Height)
		if ts.Sunrise.Valid {
			ret = append(ret, Event{ts.Sunrise.Time, Sunrise})
		}
		if ts.Sunset.Valid {
			ret = append(ret, Event{ts.Sunset.Time, Sunset})
		}
		day = day.AddDate(0, 0, 1)
	}
	sortEvents(ret)
	return ret
}

// Altitudes samples the sun's altitude every step across the UTC day of date.
func Altitudes(date time.Time, lat, lng float64, step time.Duration) []position.Sample {
	if step <= 0 {
		step = time.Hour
	}
	start := timetricks.UTCDay(date)
	end := start.AddDate(0, 0, 1)

	var samples []position.Sample
	for t := start; !t.After(end); t = t.Add(step) {
		samples = append(samples, position.Sample{
			Time:     t,
			Altitude: GetPosition(t, lat, lng).Altitude,
		})
	}
	return samples
}

func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
}
