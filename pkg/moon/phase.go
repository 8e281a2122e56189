package moon

import "fmt"

// Phase is one of the eight principal and intermediate phases of the moon.
type Phase int

const (
	// NewMoon is the start of the cycle, the disc unlit.
	NewMoon Phase = iota
	// WaxingCrescent is less than half lit and growing.
	WaxingCrescent
	// FirstQuarter is half lit, a quarter through the cycle.
	FirstQuarter
	// WaxingGibbous is more than half lit and growing.
	WaxingGibbous
	// FullMoon has the whole disc lit.
	FullMoon
	// WaningGibbous is more than half lit and shrinking.
	WaningGibbous
	// LastQuarter is half lit, three quarters through the cycle.
	LastQuarter
	// WaningCrescent is less than half lit and shrinking.
	WaningCrescent
)

// PhaseOf classifies progress through the lunar cycle, 0 at new moon and 0.5
// at full moon. The quarters are exact points and the spans between them are
// open.
func PhaseOf(progress float64) Phase {
	switch {
	case progress == 0:
		return NewMoon
	case progress < 0.25:
		return WaxingCrescent
	case progress == 0.25:
		return FirstQuarter
	case progress < 0.5:
		return WaxingGibbous
	case progress == 0.5:
		return FullMoon
	case progress < 0.75:
		return WaningGibbous
	case progress == 0.75:
		return LastQuarter
	}
	return WaningCrescent
}

func (p Phase) String() string {
	switch p {
	case NewMoon:
		return "New Moon"
	case WaxingCrescent:
		return "Waxing Crescent"
	case FirstQuarter:
		return "First Quarter"
	case WaxingGibbous:
		return "Waxing Gibbous"
	case FullMoon:
		return "Full Moon"
	case WaningGibbous:
		return "Waning Gibbous"
	case LastQuarter:
		return "Last Quarter"
	case WaningCrescent:
		return "Waning Crescent"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Description says how much of the disc is lit.
func (p Phase) Description() string {
	switch p {
	case NewMoon:
		return "completely in the sun's shadow"
	case WaxingCrescent:
		return "between 0.1% and 49.9% lit, and increasing"
	case FirstQuarter, LastQuarter:
		return "50% lit"
	case WaxingGibbous:
		return "between 50.1% and 99.9% lit, and increasing"
	case FullMoon:
		return "100% lit"
	case WaningGibbous:
		return "between 99.9% and 50.1% lit, and decreasing"
	case WaningCrescent:
		return "between 49.9% and 0.1% lit, and decreasing"
	}
	return ""
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
