package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLatencyHandlerRecordsStatus(t *testing.T) {
	h := LatencyHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.CollectAndCount(requestLatency)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/teapot", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("got code %d, want %d", rec.Code, http.StatusTeapot)
	}
	if after := testutil.CollectAndCount(requestLatency); after != before+1 {
		t.Errorf("got %d latency series, want %d", after, before+1)
	}
}

func TestObserveCalculation(t *testing.T) {
	before := testutil.ToFloat64(calculations.WithLabelValues("moon_times"))
	ObserveCalculation("moon_times")
	ObserveCalculation("moon_times")
	if got := testutil.ToFloat64(calculations.WithLabelValues("moon_times")); got != before+2 {
		t.Errorf("got %f calculations, want %f", got, before+2)
	}
}
