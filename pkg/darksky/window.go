package darksky

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	dayFmt  = "Mon 01/02"
	timeFmt = "15:04 MST"
)

// Window is a stretch of night dark enough for observing.
type Window struct {
	Time     time.Time     `json:"time"`
	Reasons  []string      `json:"reasons"`
	Duration time.Duration `json:"duration,omitempty"`

	// PrettyTime is a human-readable version of the window. Optional.
	PrettyTime string `json:"prettyTime,omitempty"`
}

func (w *Window) String() string {
	return fmt.Sprintf("%s, %s",
		w.prettyTime(),
		strings.Join(w.Reasons, " and "))
}

func (w *Window) prettyTime() string {
	return fmt.Sprintf("%s at %s", w.Time.Format(dayFmt), w.TimeRange())
}

// UpdatePrettyTime makes sure that the window's pretty time is set.
func (w *Window) UpdatePrettyTime() {
	if w.PrettyTime == "" {
		w.PrettyTime = w.prettyTime()
	}
}

// TimeRange is like PrettyTime without the date.
func (w *Window) TimeRange() string {
	until := ""
	if w.Duration != 0 {
		until = fmt.Sprintf(" until %s", w.Time.Add(w.Duration).Format(timeFmt))
	}
	return fmt.Sprintf("%s%s", w.Time.Format(timeFmt), until)
}

// End is when the window closes.
func (w *Window) End() time.Time {
	return w.Time.Add(w.Duration)
}

func (w *Window) MarshalJSON() ([]byte, error) {
	w.UpdatePrettyTime()
	// The alias drops this method so Marshal does not recurse.
	type window Window
	return json.Marshal((*window)(w))
}
