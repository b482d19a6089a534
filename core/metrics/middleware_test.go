package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newCollectors() (*prometheus.CounterVec, *prometheus.HistogramVec) {
	total := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_http_requests_total", Help: "test"},
		[]string{"method", "endpoint", "status_code"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "test_http_request_duration_seconds", Help: "test"},
		[]string{"method", "endpoint"},
	)
	return total, duration
}

func TestHTTPMetricsMiddleware_RecordsStatusAndRoute(t *testing.T) {
	total, duration := newCollectors()

	r := mux.NewRouter()
	r.Use(HTTPMetricsMiddleware(total, duration))
	r.HandleFunc("/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/"+id, nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(total.WithLabelValues("GET", "/jobs/{id}", "202")))
	assert.Equal(t, 1, testutil.CollectAndCount(duration))
}

func TestResponseWriter_Flushes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	var _ http.Flusher = rw
	rw.Flush()

	assert.True(t, rec.Flushed)
	assert.Equal(t, rec, rw.Unwrap())
}
