package moon

import (
	"math"

	"github.com/spencer-p/suncalc/pkg/position"
)

// Coords is the moon's equatorial direction and its distance from the Earth
// in kilometers.
type Coords struct {
	position.Equatorial
	Distance float64
}

// Coordinates of the moon d days after J2000. Formulas from
// http://aa.quae.nl/en/reken/hemelpositie.html.
func Coordinates(d float64) Coords {
	lm := position.Rad * (218.316 + 13.176396*d) // mean longitude
	m := position.Rad * (134.963 + 13.064993*d)  // mean anomaly
	f := position.Rad * (93.272 + 13.229350*d)   // mean distance

	l := lm + position.Rad*6.289*math.Sin(m)
	b := position.Rad * 5.128 * math.Sin(f)

	return Coords{
		Equatorial: position.FromEcliptic(l, b),
		Distance:   385001 - 20905*math.Cos(m),
	}
}
