package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: "suncalc",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0},
		},
		[]string{"verb", "path", "code"},
	)

	calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "calculations_total",
			Subsystem: "suncalc",
			Help:      "Sun and moon calculations served, by kind.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(
		requestLatency,
		calculations,
	)
}

// Handler serves the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveRequestLatency(verb, path, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"code": code,
		"verb": verb,
		"path": path,
	}).Observe(latency)
}

// ObserveCalculation counts one calculation of the given kind, such as
// "sun_times".
func ObserveCalculation(kind string) {
	calculations.WithLabelValues(kind).Inc()
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()
		verb := r.Method
		path := ""
		if r.URL != nil {
			path = r.URL.Path
		}
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		// Defer metric observing. Any panics in next are reported as 500 errors
		// and then re-thrown.
		defer func() {
			if err := recover(); err != nil {
				ObserveRequestLatency(verb, path, "500", time.Since(t).Seconds())
				panic(err)
			}
			ObserveRequestLatency(verb, path, strconv.Itoa(rec.code), time.Since(t).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}
