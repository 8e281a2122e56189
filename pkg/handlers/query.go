package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/sessions"

	"github.com/spencer-p/suncalc/pkg/data"
	"github.com/spencer-p/suncalc/pkg/sun"
)

const (
	dateFormat  = "2006-01-02"
	defaultDays = 7
	maxDays     = 366
)

// errBadRequest marks errors caused by the client's parameters.
var errBadRequest = errors.New("bad request")

// query is what every calculation endpoint needs: an instant and a place.
type query struct {
	at    time.Time
	place sun.Place
}

func (h *handler) parseQuery(r *http.Request) (query, error) {
	var q query
	var err error

	if q.at, err = parseTime(r); err != nil {
		return q, err
	}
	if q.place, err = h.resolvePlace(r); err != nil {
		return q, err
	}
	if s := r.FormValue("height"); s != "" {
		if q.place.Height, err = parseFloat("height", s); err != nil {
			return q, err
		}
	}
	return q, nil
}

// parseTime reads t as RFC3339 or date as a calendar date. The current time is
// the default.
func parseTime(r *http.Request) (time.Time, error) {
	if s := r.FormValue("t"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("time %q not RFC3339: %v: %w", s, err, errBadRequest)
		}
		return t, nil
	}
	if s := r.FormValue("date"); s != "" {
		t, err := time.Parse(dateFormat, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("date %q not in fmt %q: %v: %w", s, dateFormat, err, errBadRequest)
		}
		return t, nil
	}
	return time.Now().UTC(), nil
}

// resolvePlace picks explicit coordinates, then a named place, then the home
// location saved in the session, then the default.
func (h *handler) resolvePlace(r *http.Request) (sun.Place, error) {
	latStr, lngStr := r.FormValue("lat"), r.FormValue("lng")
	if latStr != "" || lngStr != "" {
		lat, err := parseFloat("lat", latStr)
		if err != nil {
			return sun.Place{}, err
		}
		lng, err := parseFloat("lng", lngStr)
		if err != nil {
			return sun.Place{}, err
		}
		return sun.Place{Lat: lat, Long: lng}, nil
	}

	if name := r.FormValue("place"); name != "" {
		p, err := h.places.Get(r.Context(), name)
		if err != nil {
			return sun.Place{}, err
		}
		return placeFromData(p), nil
	}

	if session, err := h.sessions.Get(r, sessionName); err == nil {
		if p, ok := homeFromSession(session); ok {
			return p, nil
		}
	}
	return h.def, nil
}

func parseFloat(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q not a number: %w", name, s, errBadRequest)
	}
	return f, nil
}

func placeFromData(p data.Place) sun.Place {
	return sun.Place{Lat: p.Lat, Long: p.Lng, Height: p.Height}
}

func homeFromSession(s *sessions.Session) (sun.Place, bool) {
	lat, ok1 := s.Values[sessionLat].(float64)
	lng, ok2 := s.Values[sessionLng].(float64)
	if !ok1 || !ok2 {
		return sun.Place{}, false
	}
	height, _ := s.Values[sessionHeight].(float64)
	return sun.Place{Lat: lat, Long: lng, Height: height}, true
}

// parseDays reads how many days a multi-day query covers.
func parseDays(r *http.Request) (int, error) {
	s := r.FormValue("days")
	if s == "" {
		return defaultDays, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil || days < 1 || days > maxDays {
		return 0, fmt.Errorf("days %q not in 1..%d: %w", s, maxDays, errBadRequest)
	}
	return days, nil
}
