package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/spencer-p/suncalc/pkg/darksky"
	"github.com/spencer-p/suncalc/pkg/data"
	"github.com/spencer-p/suncalc/pkg/log"
	"github.com/spencer-p/suncalc/pkg/metrics"
	"github.com/spencer-p/suncalc/pkg/moon"
	"github.com/spencer-p/suncalc/pkg/sun"
	"github.com/spencer-p/suncalc/pkg/visualize"
)

const (
	day         = 24 * time.Hour
	sampleEvery = 10 * time.Minute
)

// Options configure the handlers.
type Options struct {
	// Default is the place used when a request names none.
	Default  sun.Place
	Places   data.Places
	Sessions sessions.Store
}

type handler struct {
	def      sun.Place
	places   data.Places
	sessions sessions.Store
}

func Register(r *mux.Router, opts Options) {
	h := &handler{
		def:      opts.Default,
		places:   opts.Places,
		sessions: opts.Sessions,
	}

	r.HandleFunc("/api/v1/sun/position", h.serveSunPosition).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/sun/times", h.serveSunTimes).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/sun/events", h.serveSunEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/moon/position", h.serveMoonPosition).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/moon/illumination", h.serveMoonIllumination).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/moon/times", h.serveMoonTimes).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/darksky", h.serveDarkSky).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/chart", h.serveChart).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/places", h.servePlaces).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/places", h.savePlace).Methods(http.MethodPost)
	r.HandleFunc("/config", h.serveConfig).Methods(http.MethodPost)
}

func (h *handler) serveSunPosition(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.ObserveCalculation("sun_position")
	pos := sun.GetPosition(q.at, q.place.Lat, q.place.Long)
	respond(w, r, pos, func(w io.Writer) {
		fmt.Fprintf(w, "azimuth %f\naltitude %f\n", pos.Azimuth, pos.Altitude)
	})
}

func (h *handler) serveSunTimes(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.ObserveCalculation("sun_times")
	ts := sun.GetTimes(q.at, q.place.Lat, q.place.Long, q.place.Height)
	respond(w, r, ts, func(w io.Writer) {
		for p := sun.SolarNoon; p <= sun.GoldenHour; p++ {
			fmt.Fprintf(w, "%s %s\n", p, ts.Get(p))
		}
	})
}

func (h *handler) serveSunEvents(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	days, err := parseDays(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.ObserveCalculation("sun_events")
	events := sun.GetSunEvents(q.at, time.Duration(days)*day, q.place)
	respond(w, r, events, func(w io.Writer) {
		for i := range events {
			fmt.Fprintf(w, "%s\n", events[i].String())
		}
	})
}

func (h *handler) serveDarkSky(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	days, err := parseDays(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.ObserveCalculation("dark_sky")
	windows := darksky.Find(q.at, days, q.place)
	respond(w, r, windows, func(w io.Writer) {
		for i := range windows {
			fmt.Fprintf(w, "%s\n", windows[i].String())
		}
	})
}

func (h *handler) serveMoonPosition(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.ObserveCalculation("moon_position")
	pos := moon.GetPosition(q.at, q.place.Lat, q.place.Long)
	respond(w, r, pos, func(w io.Writer) {
		fmt.Fprintf(w, "azimuth %f\naltitude %f\ndistance %f\nparallactic angle %f\n",
			pos.Azimuth, pos.Altitude, pos.Distance, pos.ParallacticAngle)
	})
}

// illumination adds the phase name to the JSON form.
type illumination struct {
	moon.Illumination
	Name moon.Phase `json:"name"`
}

func (h *handler) serveMoonIllumination(w http.ResponseWriter, r *http.Request) {
	at, err := parseTime(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.ObserveCalculation("moon_illumination")
	il := moon.GetIllumination(at)
	respond(w, r, illumination{il, il.Name()}, func(w io.Writer) {
		fmt.Fprintf(w, "fraction %f\nphase %f (%s)\nangle %f\n", il.Fraction, il.Phase, il.Name(), il.Angle)
	})
}

func (h *handler) serveMoonTimes(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.ObserveCalculation("moon_times")
	ts := moon.GetTimes(q.at, q.place.Lat, q.place.Long)
	respond(w, r, ts, func(w io.Writer) {
		fmt.Fprintf(w, "rise %s\nset %s\n", ts.Rise, ts.Set)
		switch {
		case ts.AlwaysUp:
			fmt.Fprintf(w, "always up\n")
		case ts.AlwaysDown:
			fmt.Fprintf(w, "always down\n")
		}
	})
}

func (h *handler) serveChart(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.ObserveCalculation("chart")
	img := visualize.NewAltitude(q.at,
		sun.GetTimes(q.at, q.place.Lat, q.place.Long, q.place.Height),
		sun.Altitudes(q.at, q.place.Lat, q.place.Long, sampleEvery),
		moon.Altitudes(q.at, q.place.Lat, q.place.Long, sampleEvery))

	w.Header().Add("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := img.Encode(w); err != nil {
		log.Errorw("failed to encode chart", "err", err)
	}
}

func (h *handler) servePlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.places.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, r, places, func(w io.Writer) {
		for _, p := range places {
			fmt.Fprintf(w, "%s %f %f %f\n", p.Name, p.Lat, p.Lng, p.Height)
		}
	})
}

func (h *handler) savePlace(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, fmt.Errorf("failed to parse form: %v: %w", err, errBadRequest))
		return
	}
	p := data.Place{Name: r.PostForm.Get("name")}
	if p.Name == "" {
		h.fail(w, r, fmt.Errorf("place needs a name: %w", errBadRequest))
		return
	}
	var err error
	if p.Lat, err = parseFloat("lat", r.PostForm.Get("lat")); err != nil {
		h.fail(w, r, err)
		return
	}
	if p.Lng, err = parseFloat("lng", r.PostForm.Get("lng")); err != nil {
		h.fail(w, r, err)
		return
	}
	if s := r.PostForm.Get("height"); s != "" {
		if p.Height, err = parseFloat("height", s); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	if err := h.places.Save(r.Context(), &p); err != nil {
		h.fail(w, r, fmt.Errorf("failed to save place: %w", err))
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// respond writes v as JSON when the client asks with o=json, and as text
// otherwise.
func respond(w http.ResponseWriter, r *http.Request, v interface{}, text func(io.Writer)) {
	if r.FormValue("o") == "json" {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Errorw("failed to encode JSON result", "err", err)
		}
		return
	}
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	text(w)
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadRequest):
		code = http.StatusBadRequest
	case errors.Is(err, data.ErrNotFound):
		code = http.StatusNotFound
	}
	log.Errorw("request failed", "method", r.Method, "url", r.URL.String(), "code", code, "err", err)
	w.WriteHeader(code)
	fmt.Fprintf(w, "%v\n", err)
}
