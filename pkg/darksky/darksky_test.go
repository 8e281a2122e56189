package darksky

import (
	"testing"
	"time"

	"github.com/spencer-p/suncalc/pkg/sun"
)

var kyiv = sun.Place{Lat: 50.5, Long: 30.5}

func days(start time.Time, n int, p sun.Place) []sun.Times {
	var result []sun.Times
	for d := 0; d < n; d++ {
		result = append(result, sun.GetTimes(start.AddDate(0, 0, d), p.Lat, p.Long, p.Height))
	}
	return result
}

func TestNewMoonNightIsDark(t *testing.T) {
	c := Conditions{
		Days:  days(time.Date(2013, time.March, 11, 0, 0, 0, 0, time.UTC), 2, kyiv),
		Place: kyiv,
	}
	got := Windows(c)
	if len(got) != 1 {
		t.Fatalf("got %d windows, want 1: %v", len(got), got)
	}
	if want := c.Days[0].Night.Time; !got[0].Time.Equal(want) {
		t.Errorf("window opens at %s, want dusk at %s", got[0].Time, want)
	}
	if want := c.Days[1].NightEnd.Time; !got[0].End().Equal(want) {
		t.Errorf("window closes at %s, want dawn at %s", got[0].End(), want)
	}
}

func TestDaysMustBeAdjacent(t *testing.T) {
	newMoon := time.Date(2013, time.March, 11, 0, 0, 0, 0, time.UTC)
	c := Conditions{
		Days: []sun.Times{
			sun.GetTimes(newMoon, kyiv.Lat, kyiv.Long, 0),
			sun.GetTimes(newMoon.AddDate(0, 0, 2), kyiv.Lat, kyiv.Long, 0),
		},
		Place: kyiv,
	}
	if got := Windows(c); len(got) != 0 {
		t.Errorf("got windows spanning a skipped day: %v", got)
	}
}

func TestFullMoonNightIsBright(t *testing.T) {
	c := Conditions{
		Days:  days(time.Date(2013, time.March, 26, 0, 0, 0, 0, time.UTC), 2, kyiv),
		Place: kyiv,
	}
	if got := Windows(c); len(got) != 0 {
		t.Errorf("got windows under a full moon: %v", got)
	}
}

func TestNoAstronomicalNight(t *testing.T) {
	// Summer nights at 60N never get past nautical twilight.
	helsinki := sun.Place{Lat: 60.17, Long: 24.94}
	got := Find(time.Date(2013, time.June, 20, 0, 0, 0, 0, time.UTC), 2, helsinki)
	if len(got) != 0 {
		t.Errorf("got windows without astronomical night: %v", got)
	}
}

func TestWindowsAreInsideNights(t *testing.T) {
	start := time.Date(2013, time.March, 1, 0, 0, 0, 0, time.UTC)
	c := Conditions{Days: days(start, 31, kyiv), Place: kyiv}
	windows := Windows(c)
	if len(windows) == 0 {
		t.Fatalf("no dark windows in a month")
	}
	for _, w := range windows {
		if w.Duration < minWindow {
			t.Errorf("window %s is shorter than %s", w.String(), minWindow)
		}
		inside := false
		for i := 0; i+1 < len(c.Days); i++ {
			dusk, dawn := c.Days[i].Night.Time, c.Days[i+1].NightEnd.Time
			if !w.Time.Before(dusk) && !w.End().After(dawn) {
				inside = true
				break
			}
		}
		if !inside {
			t.Errorf("window %s is not inside a night", w.String())
		}
	}
}
