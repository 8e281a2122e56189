package moon

import (
	"github.com/spencer-p/suncalc/pkg/timetricks"
)

// Position of the moon for an observer. Angles are radians and the distance
// is in kilometers.
type Position struct {
	Azimuth          float64 `json:"azimuth"`
	Altitude         float64 `json:"altitude"`
	Distance         float64 `json:"distance"`
	ParallacticAngle float64 `json:"parallacticAngle"`
}

// Illumination describes the lit part of the moon.
type Illumination struct {
	// Fraction of the disc lit, from 0 at new moon to 1 at full moon.
	Fraction float64 `json:"fraction"`
	// Phase is progress through the cycle: 0 new, 0.25 first quarter, 0.5
	// full, 0.75 last quarter.
	Phase float64 `json:"phase"`
	// Angle of the midpoint of the lit limb, eastward from the north point of
	// the disc. Negative while waxing, positive while waning.
	Angle float64 `json:"angle"`
}

// Name classifies the phase.
func (i Illumination) Name() Phase {
	return PhaseOf(i.Phase)
}

// Times of moonrise and moonset on one UTC day. When neither happens, the
// moon is either AlwaysUp or AlwaysDown.
type Times struct {
	Rise       timetricks.NullTime `json:"rise"`
	Set        timetricks.NullTime `json:"set"`
	AlwaysUp   bool                `json:"alwaysUp,omitempty"`
	AlwaysDown bool                `json:"alwaysDown,omitempty"`
}
