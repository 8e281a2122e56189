// Package moon computes the position, illumination and rise and set times of
// the moon.
package moon

import (
	"math"
	"time"

	"github.com/spencer-p/suncalc/pkg/julian"
	"github.com/spencer-p/suncalc/pkg/position"
	"github.com/spencer-p/suncalc/pkg/sun"
	"github.com/spencer-p/suncalc/pkg/timetricks"
)

const (
	// sunDistance from the Earth in km.
	sunDistance = 149598000
	// horizonAngle is the altitude of the moon's center at rise and set,
	// 0.133 degrees.
	horizonAngle = 0.133 * position.Rad
)

// GetPosition returns the moon's position at t seen from lat, lng in degrees.
// The altitude is corrected for refraction.
func GetPosition(t time.Time, lat, lng float64) Position {
	d := julian.ToDays(t)
	obs := position.NewObserver(lat, lng)
	c := Coordinates(d)

	ha, az, h := obs.Horizontal(d, c.Equatorial)
	// Formula 14.1 of Meeus, "Astronomical Algorithms" (2nd ed.).
	pa := math.Atan2(math.Sin(ha), math.Tan(obs.Phi)*math.Cos(c.Declination)-math.Sin(c.Declination)*math.Cos(ha))

	return Position{
		Azimuth:          az,
		Altitude:         h + position.AstroRefraction(h),
		Distance:         c.Distance,
		ParallacticAngle: pa,
	}
}

// GetIllumination returns the lit fraction, phase and limb angle at t. Based
// on http://idlastro.gsfc.nasa.gov/ftp/pro/astro/mphase.pro and chapter 48 of
// Meeus.
func GetIllumination(t time.Time) Illumination {
	d := julian.ToDays(t)
	s := sun.Coordinates(d)
	m := Coordinates(d)

	dra := s.RightAscension - m.RightAscension
	phi := math.Acos(math.Sin(s.Declination)*math.Sin(m.Declination) + math.Cos(s.Declination)*math.Cos(m.Declination)*math.Cos(dra))
	inc := math.Atan2(sunDistance*math.Sin(phi), m.Distance-sunDistance*math.Cos(phi))
	angle := math.Atan2(math.Cos(s.Declination)*math.Sin(dra), math.Sin(s.Declination)*math.Cos(m.Declination)-math.Cos(s.Declination)*math.Sin(m.Declination)*math.Cos(dra))

	sign := 1.0
	if angle < 0 {
		sign = -1
	}
	return Illumination{
		Fraction: (1 + math.Cos(inc)) / 2,
		Phase:    0.5 + 0.5*inc*sign/math.Pi,
		Angle:    angle,
	}
}

// GetTimes finds moonrise and moonset on the UTC day of date. The day is
// scanned in two hour windows; each fits a parabola through three hourly
// altitudes and looks for its roots. See
// http://www.stargazing.net/kepler/moonrise.html.
func GetTimes(date time.Time, lat, lng float64) Times {
	t := timetricks.UTCDay(date)
	alt := func(hours int) float64 {
		return GetPosition(t.Add(time.Duration(hours)*time.Hour), lat, lng).Altitude - horizonAngle
	}

	var rise, set, ye float64
	h0 := alt(0)
	for i := 1; i <= 24; i += 2 {
		h1 := alt(i)
		h2 := alt(i + 1)

		a := (h0+h2)/2 - h1
		b := (h2 - h0) / 2
		xe := -b / (2 * a)
		ye = (a*xe+b)*xe + h1
		d := b*b - 4*a*h1

		roots := 0
		var x1, x2 float64
		if d >= 0 {
			dx := math.Sqrt(d) / (math.Abs(a) * 2)
			x1 = xe - dx
			x2 = xe + dx
			if math.Abs(x1) <= 1 {
				roots++
			}
			if math.Abs(x2) <= 1 {
				roots++
			}
			if x1 < -1 {
				x1 = x2
			}
		}

		switch roots {
		case 1:
			if h0 < 0 {
				rise = float64(i) + x1
			} else {
				set = float64(i) + x1
			}
		case 2:
			if ye < 0 {
				rise = float64(i) + x2
				set = float64(i) + x1
			} else {
				rise = float64(i) + x1
				set = float64(i) + x2
			}
		}

		if rise > 0 && set > 0 {
			break
		}
		h0 = h2
	}

	var ts Times
	if rise > 0 {
		ts.Rise = timetricks.Some(timetricks.AddHours(t, rise))
	}
	if set > 0 {
		ts.Set = timetricks.Some(timetricks.AddHours(t, set))
	}
	if rise <= 0 && set <= 0 {
		if ye > 0 {
			ts.AlwaysUp = true
		} else {
			ts.AlwaysDown = true
		}
	}
	return ts
}

// Altitudes samples the moon's altitude every step across the UTC day of date.
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
