package sun

import (
	"math"

	"github.com/spencer-p/suncalc/pkg/julian"
	"github.com/spencer-p/suncalc/pkg/position"
)

// Formulas from http://aa.quae.nl/en/reken/zonpositie.html. d is always days
// since J2000 and angles are radians.

const j0 = 0.0009

func MeanAnomaly(d float64) float64 {
	return position.Rad * (357.5291 + 0.98560028*d)
}

// EclipticLongitude adds the equation of center and the perihelion of the
// Earth to the mean anomaly m.
func EclipticLongitude(m float64) float64 {
	c := position.Rad * (1.9148*math.Sin(m) + 0.02*math.Sin(2*m) + 0.0003*math.Sin(3*m))
	p := position.Rad * 102.9372
	return m + c + p + math.Pi
}

// Coordinates of the sun. Its ecliptic latitude is taken as zero.
func Coordinates(d float64) position.Equatorial {
	return position.FromEcliptic(EclipticLongitude(MeanAnomaly(d)), 0)
}

// JulianCycle is the index of the solar noon nearest to d for an observer at
// longitude lw (positive west).
func JulianCycle(d, lw float64) float64 {
	return math.Round(d - j0 - lw/(2*math.Pi))
}

func ApproxTransit(ht, lw, n float64) float64 {
	return j0 + (ht+lw)/(2*math.Pi) + n
}

// SolarTransitJ returns the Julian day of the transit near ds.
func SolarTransitJ(ds, m, l float64) float64 {
	return julian.J2000 + ds + 0.0053*math.Sin(m) - 0.0069*math.Sin(2*l)
}

// HourAngle at which the sun reaches altitude h. It is NaN when the sun never
// reaches h that day.
func HourAngle(h, phi, dec float64) float64 {
	return math.Acos((math.Sin(h) - math.Sin(phi)*math.Sin(dec)) / (math.Cos(phi) * math.Cos(dec)))
}

// ObserverAngle is the dip of the horizon seen from height meters up.
func ObserverAngle(height float64) float64 {
	return position.Rad * -2.076 * math.Sqrt(height) / 60
}

// SetJ returns the Julian day at which the sun sets through altitude h. The
// matching rise is the reflection of it around solar noon.
func SetJ(h, lw, phi, dec, n, m, l float64) float64 {
	w := HourAngle(h, phi, dec)
	a := ApproxTransit(w, lw, n)
	return SolarTransitJ(a, m, l)
}
