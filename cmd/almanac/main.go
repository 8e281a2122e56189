package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spencer-p/suncalc/pkg/darksky"
	"github.com/spencer-p/suncalc/pkg/moon"
	"github.com/spencer-p/suncalc/pkg/position"
	"github.com/spencer-p/suncalc/pkg/sun"
	"github.com/spencer-p/suncalc/pkg/timetricks"
)

func main() {
	var (
		lat, lng, height float64
		dateStr          string
		step             time.Duration
	)
	flag.Float64Var(&lat, "lat", 36.9741, "observer latitude in degrees")
	flag.Float64Var(&lng, "lng", -122.0308, "observer longitude in degrees")
	flag.Float64Var(&height, "height", 0, "observer height in meters")
	flag.StringVar(&dateStr, "date", "", "UTC date to compute for (e.g. 2013-03-05), today by default")
	flag.DurationVar(&step, "step", time.Hour, "interval between altitude samples")
	flag.Parse()

	date := timetricks.UTCDay(time.Now())
	if dateStr != "" {
		var err error
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Almanac for %s at %.4f, %.4f\n", date.Format("2006-01-02"), lat, lng)

	fmt.Printf("\nSun\n")
	times := sun.GetTimes(date, lat, lng, height)
	for p := sun.SolarNoon; p <= sun.GoldenHour; p++ {
		fmt.Printf("  %-14s %s\n", p, times.Get(p))
	}

	fmt.Printf("\nMoon\n")
	mt := moon.GetTimes(date, lat, lng)
	fmt.Printf("  %-14s %s\n", "rise", mt.Rise)
	fmt.Printf("  %-14s %s\n", "set", mt.Set)
	switch {
	case mt.AlwaysUp:
		fmt.Printf("  always up\n")
	case mt.AlwaysDown:
		fmt.Printf("  always down\n")
	}
	il := moon.GetIllumination(date)
	fmt.Printf("  %-14s %.1f%%\n", "illuminated", il.Fraction*100)
	fmt.Printf("  %-14s %s (%.4f)\n", "phase", il.Name(), il.Phase)

	fmt.Printf("\nDark sky\n")
	for _, w := range darksky.Find(date, 1, sun.Place{Lat: lat, Long: lng, Height: height}) {
		fmt.Printf("  %s\n", w.String())
	}

	fmt.Printf("\n%-20s %10s %10s\n", "time", "sun", "moon")
	sunAlt := sun.Altitudes(date, lat, lng, step)
	moonAlt := moon.Altitudes(date, lat, lng, step)
	for i := range sunAlt {
		if i >= len(moonAlt) {
			break
		}
		fmt.Printf("%-20s %9.2f° %9.2f°\n",
			sunAlt[i].Time.Format(time.RFC3339),
			sunAlt[i].Altitude/position.Rad,
			moonAlt[i].Altitude/position.Rad)
	}
}
