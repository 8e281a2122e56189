package sun

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/keep94/sunrise"
)

var (
	refDate = time.Date(2013, time.March, 5, 0, 0, 0, 0, time.UTC)
	refLat  = 50.5
	refLng  = 30.5
)

func ExampleGetPosition() {
	p := GetPosition(refDate, refLat, refLng)
	fmt.Printf("azimuth %.9f\n", p.Azimuth)
	fmt.Printf("altitude %.9f\n", p.Altitude)
	// Output:
	// azimuth -2.500317591
	// altitude -0.700040684
}

func ExampleGetTimes() {
	ts := GetTimes(refDate, refLat, refLng, 0)
	for _, e := range ts.Events() {
		fmt.Printf("%s %s\n", e.Time.Format(time.RFC3339), e.Phase)
	}
	// Output:
	// 2013-03-04T22:10:57Z nadir
	// 2013-03-05T02:46:17Z nightEnd
	// 2013-03-05T03:24:31Z nauticalDawn
	// 2013-03-05T04:02:17Z dawn
	// 2013-03-05T04:34:56Z sunrise
	// 2013-03-05T04:38:19Z sunriseEnd
	// 2013-03-05T05:19:01Z goldenHourEnd
	// 2013-03-05T10:10:57Z solarNoon
	// 2013-03-05T15:02:52Z goldenHour
	// 2013-03-05T15:43:34Z sunsetStart
	// 2013-03-05T15:46:57Z sunset
	// 2013-03-05T16:19:36Z dusk
	// 2013-03-05T16:57:22Z nauticalDusk
	// 2013-03-05T17:35:36Z night
}

func TestGetPosition(t *testing.T) {
	p := GetPosition(refDate, refLat, refLng)
	if math.Abs(p.Azimuth - -2.5003175907168385) > 1e-12 {
		t.Errorf("azimuth = %.16f", p.Azimuth)
	}
	if math.Abs(p.Altitude - -0.7000406838781611) > 1e-12 {
		t.Errorf("altitude = %.16f", p.Altitude)
	}
}

func TestGetTimesObserverHeight(t *testing.T) {
	ts := GetTimes(refDate, refLat, refLng, 2000)

	want := map[Phase]string{
		SolarNoon: "2013-03-05T10:10:57Z",
		Nadir:     "2013-03-04T22:10:57Z",
		Sunrise:   "2013-03-05T04:25:07Z",
		Sunset:    "2013-03-05T15:56:46Z",
	}
	got := map[Phase]string{}
	for p := range want {
		got[p] = ts.Get(p).Time.Format(time.RFC3339)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("times at 2000m (-want,+got):\n%s", diff)
	}
}

func TestGetTimesIgnoresClock(t *testing.T) {
	want := GetTimes(refDate, refLat, refLng, 0)
	for _, hour := range []int{1, 6, 12, 18, 23} {
		got := GetTimes(refDate.Add(time.Duration(hour)*time.Hour), refLat, refLng, 0)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("hour %d changed the times (-want,+got):\n%s", hour, diff)
		}
	}
}

func TestNadirIsHalfDayBeforeNoon(t *testing.T) {
	for i := 0; i < 365; i += 30 {
		ts := GetTimes(refDate.AddDate(0, 0, i), -33.9, 18.4, 0)
		if got := ts.SolarNoon.Time.Sub(ts.Nadir.Time); got != 12*time.Hour {
			t.Errorf("day %d: noon - nadir = %s, want 12h", i, got)
		}
	}
}

func TestGetTimesPolar(t *testing.T) {
	table := []struct {
		name    string
		lat     float64
		date    time.Time
		valid   []Phase
		invalid []Phase
	}{{
		name:    "polar night",
		lat:     80,
		date:    time.Date(2013, time.December, 21, 0, 0, 0, 0, time.UTC),
		valid:   []Phase{SolarNoon, Nadir, NightEnd, Night},
		invalid: []Phase{Sunrise, Sunset, SunriseEnd, SunsetStart, GoldenHourEnd, GoldenHour},
	}, {
		name:    "midnight sun",
		lat:     70,
		date:    time.Date(2013, time.June, 21, 0, 0, 0, 0, time.UTC),
		valid:   []Phase{SolarNoon, Nadir, GoldenHourEnd, GoldenHour},
		invalid: []Phase{Sunrise, Sunset, Dawn, Dusk, NauticalDawn, NauticalDusk, NightEnd, Night},
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			ts := GetTimes(tc.date, tc.lat, 15, 0)
			for _, p := range tc.valid {
				if !ts.Get(p).Valid {
					t.Errorf("%s should occur", p)
				}
			}
			for _, p := range tc.invalid {
				if got := ts.Get(p); got.Valid {
					t.Errorf("%s should not occur, got %s", p, got)
				}
			}
		})
	}
}

func TestGetTimesMatchesSunrisePackage(t *testing.T) {
	places := []Place{
		{Lat: refLat, Long: refLng},
		{Lat: 51.5, Long: -0.13},
		{Lat: -33.9, Long: 18.4},
	}
	for _, place := range places {
		for i := 0; i < 365; i += 45 {
			// Daylight at these places falls inside the UTC day, which is
			// the day the sunrise package picks for a UTC time.
			day := refDate.AddDate(0, 0, i).Add(12 * time.Hour)
			var s sunrise.Sunrise
			s.Around(place.Lat, place.Long, day)

			ts := GetTimes(day, place.Lat, place.Long, 0)
			if d := ts.Sunrise.Time.Sub(s.Sunrise()); d.Abs() > 3*time.Minute {
				t.Errorf("%v day %d: sunrise %s, sunrise package says %s", place, i, ts.Sunrise, s.Sunrise())
			}
			if d := ts.Sunset.Time.Sub(s.Sunset()); d.Abs() > 3*time.Minute {
				t.Errorf("%v day %d: sunset %s, sunrise package says %s", place, i, ts.Sunset, s.Sunset())
			}
		}
	}
}

func TestGetTimesIdempotent(t *testing.T) {
	a := GetTimes(refDate, refLat, refLng, 10)
	b := GetTimes(refDate, refLat, refLng, 10)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated call differs (-first,+second):\n%s", diff)
	}
}

func TestParsePhase(t *testing.T) {
	for p := Phase(0); p < numPhases; p++ {
		got, err := ParsePhase(p.String())
		if err != nil {
			t.Errorf("unexpected: %v", err)
		}
		if got != p {
			t.Errorf("ParsePhase(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if _, err := ParsePhase("teatime"); err == nil {
		t.Errorf("expected error for unknown phase")
	}
}

func TestGetSunEvents(t *testing.T) {
	events := GetSunEvents(refDate.Add(15*time.Hour), 72*time.Hour, Place{Lat: refLat, Long: refLng})
	if len(events) != 6 {
		t.Fatalf("got %d events, want 6", len(events))
	}
	for i, e := range events {
		want := Sunrise
		if i%2 == 1 {
			want = Sunset
		}
		if e.Phase != want {
			t.Errorf("event %d is %s, want %s", i, e.Phase, want)
		}
	}
	if got := events[0].Time.Format(time.RFC3339); got != "2013-03-05T04:34:56Z" {
		t.Errorf("first sunrise %s", got)
	}
}

func TestGetSunEventsEmptySpan(t *testing.T) {
	place := Place{Lat: refLat, Long: refLng}
	for _, d := range []time.Duration{0, -time.Hour, -72 * time.Hour} {
		if got := GetSunEvents(refDate, d, place); len(got) != 0 {
			t.Errorf("GetSunEvents over %s got %d events, want none", d, len(got))
		}
	}
}

func TestAltitudes(t *testing.T) {
	samples := Altitudes(refDate.Add(7*time.Hour), refLat, refLng, time.Hour)
	if len(samples) != 25 {
		t.Fatalf("got %d samples, want 25", len(samples))
	}
	if !samples[0].Time.Equal(refDate) {
		t.Errorf("first sample at %s, want %s", samples[0].Time, refDate)
	}
	// The sun is highest near solar noon, 10:10 UTC.
	highest := 0
	for i, s := range samples {
		if s.Altitude > samples[highest].Altitude {
			highest = i
		}
	}
	if highest != 10 {
		t.Errorf("highest sample at hour %d, want 10", highest)
	}
}
