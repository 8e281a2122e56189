package visualize

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spencer-p/suncalc/pkg/position"
	"github.com/spencer-p/suncalc/pkg/sun"
	"github.com/spencer-p/suncalc/pkg/timetricks"
)

const (
	width  = 1200
	height = 300
)

// Altitude draws the sun and moon altitude across one day, shading the night.
type Altitude struct {
	date  time.Time
	times sun.Times
	sun   []position.Sample
	moon  []position.Sample
}

func NewAltitude(date time.Time, times sun.Times, sunSamples, moonSamples []position.Sample) *Altitude {
	return &Altitude{
		date:  timetricks.UTCDay(date),
		times: times,
		sun:   sunSamples,
		moon:  moonSamples,
	}
}

func (img *Altitude) Encode(w io.Writer) (int, error) {
	var n int
	var err error
	io := func(nextn int, nexterr error) {
		n += nextn
		if nexterr != nil {
			err = nexterr
		}
	}

	io(fmt.Fprintf(w, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, width, height))

	// Daylight between sunrise and sunset. Without them the sun is either up
	// or down all day.
	risex, setx := 0, 0
	switch {
	case img.times.Sunrise.Valid && img.times.Sunset.Valid:
		risex = img.timeToX(img.times.Sunrise.Time)
		setx = img.timeToX(img.times.Sunset.Time)
	case img.times.SolarNoon.Valid && img.sunAltitude() > 0:
		setx = width
	}
	io(fmt.Fprintf(w, `<rect class="daytime" fill="lightyellow" x="%d" y="%d" width="%d" height="%d"/>`,
		risex, 0,
		clamp(setx-risex), height))

	// The horizon.
	io(fmt.Fprintf(w, `<line class="horizon" stroke="gray" x1="0" y1="%d" x2="%d" y2="%d"/>`,
		altitudeToY(0), width, altitudeToY(0)))

	io(img.polyline(w, "sun", "orange", img.sun))
	io(img.polyline(w, "moon", "slategray", img.moon))

	// Draw the night time shadows.
	io(fmt.Fprintf(w, `<rect class="night" fill="blue" fill-opacity="25%%" x="%d" y="%d" width="%d" height="%d"/>`,
		0, 0,
		clamp(risex), height))
	io(fmt.Fprintf(w, `<rect class="night" fill="blue" fill-opacity="25%%" x="%d" y="%d" width="%d" height="%d"/>`,
		setx, 0,
		clamp(width-setx), height))

	// Insert the phases as JSON for scripts.
	io(fmt.Fprintf(w, `<text class="phases" visibility="hidden">`))
	if blob, jerr := json.Marshal(img.times); jerr != nil {
		err = jerr
	} else {
		io(w.Write(blob))
	}
	io(fmt.Fprintf(w, `</text>`))

	// Insert date of this graph as unix.
	io(fmt.Fprintf(w, `<text class="unixtime" visibility="hidden">%d</text>`, img.date.Unix()))

	io(fmt.Fprintf(w, `</svg>`))

	return n, err
}

func (img *Altitude) polyline(w io.Writer, class, color string, samples []position.Sample) (int, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	n, err := fmt.Fprintf(w, `<polyline class="%s" fill="none" stroke="%s" points="`, class, color)
	if err != nil {
		return n, err
	}
	for _, s := range samples {
		m, err := fmt.Fprintf(w, "%d,%d ", img.timeToX(s.Time), altitudeToY(s.Altitude))
		n += m
		if err != nil {
			return n, err
		}
	}
	m, err := fmt.Fprintf(w, `"/>`)
	return n + m, err
}

// sunAltitude is the highest sampled sun altitude.
func (img *Altitude) sunAltitude() float64 {
	highest := math.Inf(-1)
	for _, s := range img.sun {
		highest = math.Max(highest, s.Altitude)
	}
	return highest
}

// altitudeToY maps -90..90 degrees onto the image, zenith at the top.
func altitudeToY(alt float64) int {
	return int(float64(height) * (0.5 - alt/math.Pi))
}

func (img *Altitude) timeToX(t time.Time) int {
	return clamp(int(t.Unix()-img.date.Unix()) * width / (60 * 60 * 24))
}

func clamp(x int) int {
	if x < 0 {
		return 0
	}
	if x > width {
		return width
	}
	return x
}
