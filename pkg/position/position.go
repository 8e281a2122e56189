// Package position holds the spherical astronomy shared by the sun and moon
// calculations. All angles are radians.
//
// Formulas follow http://aa.quae.nl/en/reken/hemelpositie.html.
package position

import (
	"math"
	"time"
)

const (
	// Rad converts degrees to radians.
	Rad = math.Pi / 180
	// Obliquity is the tilt of the Earth's axis.
	Obliquity = Rad * 23.4397
)

// Equatorial is the direction of a body relative to the Earth's equator.
type Equatorial struct {
	RightAscension float64 `json:"rightAscension"`
	Declination    float64 `json:"declination"`
}

// FromEcliptic converts ecliptic longitude l and latitude b.
func FromEcliptic(l, b float64) Equatorial {
	return Equatorial{
		RightAscension: RightAscension(l, b),
		Declination:    Declination(l, b),
	}
}

func RightAscension(l, b float64) float64 {
	return math.Atan2(math.Sin(l)*math.Cos(Obliquity)-math.Tan(b)*math.Sin(Obliquity), math.Cos(l))
}

func Declination(l, b float64) float64 {
	return math.Asin(math.Sin(b)*math.Cos(Obliquity) + math.Cos(b)*math.Sin(Obliquity)*math.Sin(l))
}

// Azimuth is measured from south towards west.
func Azimuth(h, phi, dec float64) float64 {
	return math.Atan2(math.Sin(h), math.Cos(h)*math.Sin(phi)-math.Tan(dec)*math.Cos(phi))
}

func Altitude(h, phi, dec float64) float64 {
	return math.Asin(math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(h))
}

// SiderealTime takes d days since J2000 and the observer longitude lw,
// positive west.
func SiderealTime(d, lw float64) float64 {
	return Rad*(280.16+360.9856235*d) - lw
}

// AstroRefraction returns the correction to add to a geometric altitude h.
// Formula 16.4 of Meeus, "Astronomical Algorithms" (2nd ed.), converted to
// radians. It only holds for h >= 0; lower altitudes are clamped to the
// horizon since the denominator vanishes at h = -0.08901179.
func AstroRefraction(h float64) float64 {
	if h < 0 {
		h = 0
	}
	return 0.0002967 / math.Tan(h+0.00312536/(h+0.08901179))
}

// Observer is a location on the Earth in the units the formulas use.
type Observer struct {
	// Lw is the longitude in radians, positive west.
	Lw float64
	// Phi is the latitude in radians.
	Phi float64
}

// NewObserver converts an ordinary latitude and longitude in degrees (east
// positive).
func NewObserver(lat, lng float64) Observer {
	return Observer{Lw: Rad * -lng, Phi: Rad * lat}
}

// Horizontal returns the hour angle, azimuth and altitude of a body at c, d
// days after J2000.
func (o Observer) Horizontal(d float64, c Equatorial) (hourAngle, azimuth, altitude float64) {
	hourAngle = SiderealTime(d, o.Lw) - c.RightAscension
	azimuth = Azimuth(hourAngle, o.Phi, c.Declination)
	altitude = Altitude(hourAngle, o.Phi, c.Declination)
	return hourAngle, azimuth, altitude
}

// Sample is the altitude of a body at one instant.
type Sample struct {
	Time     time.Time `json:"time"`
	Altitude float64   `json:"altitude"`
}
