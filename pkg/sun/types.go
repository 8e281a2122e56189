package sun

import (
	"fmt"
	"time"

	"github.com/spencer-p/suncalc/pkg/timetricks"
)

// Place is a lat/long coordinate on the Earth with the observer's height in
// meters.
type Place struct {
	Lat, Long float64
	Height    float64
}

// Position is where the sun sits in the sky, in radians. Azimuth is measured
// from south towards west and altitude from the horizon.
type Position struct {
	Azimuth  float64 `json:"azimuth"`
	Altitude float64 `json:"altitude"`
}

// Phase names a moment of the solar day.
type Phase int

const (
	// SolarNoon is when the sun is highest.
	SolarNoon Phase = iota
	// Nadir is the darkest moment of the night, the sun at its lowest.
	Nadir
	// Sunrise is when the top edge of the sun appears on the horizon.
	Sunrise
	// Sunset is when the sun disappears below the horizon and evening civil
	// twilight starts.
	Sunset
	// SunriseEnd is when the bottom edge of the sun touches the horizon.
	SunriseEnd
	// SunsetStart is when the bottom edge of the sun touches the horizon.
	SunsetStart
	// Dawn ends morning nautical twilight and starts civil twilight.
	Dawn
	// Dusk starts evening nautical twilight.
	Dusk
	// NauticalDawn starts morning nautical twilight.
	NauticalDawn
	// NauticalDusk starts evening astronomical twilight.
	NauticalDusk
	// NightEnd starts morning astronomical twilight.
	NightEnd
	// Night is dark enough for astronomical observations.
	Night
	// GoldenHourEnd ends the soft morning light.
	GoldenHourEnd
	// GoldenHour starts the soft evening light.
	GoldenHour

	numPhases
)

var phaseNames = [numPhases]string{
	SolarNoon:     "solarNoon",
	Nadir:         "nadir",
	Sunrise:       "sunrise",
	Sunset:        "sunset",
	SunriseEnd:    "sunriseEnd",
	SunsetStart:   "sunsetStart",
	Dawn:          "dawn",
	Dusk:          "dusk",
	NauticalDawn:  "nauticalDawn",
	NauticalDusk:  "nauticalDusk",
	NightEnd:      "nightEnd",
	Night:         "night",
	GoldenHourEnd: "goldenHourEnd",
	GoldenHour:    "goldenHour",
}

func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return "invalid"
	}
	return phaseNames[p]
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, error) {
	for p, name := range phaseNames {
		if name == s {
			return Phase(p), nil
		}
	}
	return 0, fmt.Errorf("unknown sun phase %q", s)
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(buf []byte) error {
	parsed, err := ParsePhase(string(buf))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Times are the named phases of one solar day. A phase whose altitude the sun
// never crosses that day is not Valid.
type Times struct {
	SolarNoon     timetricks.NullTime `json:"solarNoon"`
	Nadir         timetricks.NullTime `json:"nadir"`
	Sunrise       timetricks.NullTime `json:"sunrise"`
	Sunset        timetricks.NullTime `json:"sunset"`
	SunriseEnd    timetricks.NullTime `json:"sunriseEnd"`
	SunsetStart   timetricks.NullTime `json:"sunsetStart"`
	Dawn          timetricks.NullTime `json:"dawn"`
	Dusk          timetricks.NullTime `json:"dusk"`
	NauticalDawn  timetricks.NullTime `json:"nauticalDawn"`
	NauticalDusk  timetricks.NullTime `json:"nauticalDusk"`
	NightEnd      timetricks.NullTime `json:"nightEnd"`
	Night         timetricks.NullTime `json:"night"`
	GoldenHourEnd timetricks.NullTime `json:"goldenHourEnd"`
	GoldenHour    timetricks.NullTime `json:"goldenHour"`
}

func (ts *Times) field(p Phase) *timetricks.NullTime {
	switch p {
	case SolarNoon:
		return &ts.SolarNoon
	case Nadir:
		return &ts.Nadir
	case Sunrise:
		return &ts.Sunrise
	case Sunset:
		return &ts.Sunset
	case SunriseEnd:
		return &ts.SunriseEnd
	case SunsetStart:
		return &ts.SunsetStart
	case Dawn:
		return &ts.Dawn
	case Dusk:
		return &ts.Dusk
	case NauticalDawn:
		return &ts.NauticalDawn
	case NauticalDusk:
		return &ts.NauticalDusk
	case NightEnd:
		return &ts.NightEnd
	case Night:
		return &ts.Night
	case GoldenHourEnd:
		return &ts.GoldenHourEnd
	case GoldenHour:
		return &ts.GoldenHour
	}
	return nil
}

// Get returns the instant of phase p.
func (ts *Times) Get(p Phase) timetricks.NullTime {
	if f := ts.field(p); f != nil {
		return *f
	}
	return timetricks.NullTime{}
}

func (ts *Times) set(p Phase, t timetricks.NullTime) {
	if f := ts.field(p); f != nil {
		*f = t
	}
}

// Events lists the phases that occur, in chronological order.
func (ts *Times) Events() []Event {
	var events []Event
	for p := Phase(0); p < numPhases; p++ {
		if t := ts.Get(p); t.Valid {
			events = append(events, Event{Time: t.Time, Phase: p})
		}
	}
	sortEvents(events)
	return events
}

// Event is a sun phase happening at a time.
type Event struct {
	Time  time.Time `json:"time"`
	Phase Phase     `json:"phase"`
}

func (e *Event) String() string {
	return fmt.Sprintf("%s %s", e.Time.Format(time.RFC822), e.Phase)
}
