package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Relay metrics collectors
var (
	// Notes requests

	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_notes_requests_total",
			Help: "Total number of GetNotes requests by outcome code",
		},
		[]string{"code"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_notes_requests_in_flight",
			Help: "Number of GetNotes requests currently being processed",
		},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_stage_duration_seconds",
			Help:    "Duration of each processing stage in seconds",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 15, 30, 60, 120, 300},
		},
		[]string{"stage"},
	)

	BytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_bytes_total",
			Help: "Total number of payload bytes handled",
		},
		[]string{"kind", "direction"},
	)

	// Upstream generator

	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_upstream_calls_total",
			Help: "Total number of upstream generator calls",
		},
		[]string{"method", "status"},
	)

	UpstreamSegmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_upstream_segments_total",
			Help: "Total number of text segments received from the generator",
		},
		[]string{"method"},
	)

	// Rendering

	PagesRendered = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "relay_document_pages",
			Help:    "Number of pages per rendered document",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
		},
	)

	ImagesSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_images_skipped_total",
			Help: "Total number of images skipped because they could not be drawn",
		},
	)

	// HTTP

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 60, 300},
		},
		[]string{"method", "endpoint"},
	)
)

// RenderObserver feeds render results into the collectors above.
type RenderObserver struct{}

func (RenderObserver) ImageSkipped() {
	ImagesSkippedTotal.Inc()
}

func (RenderObserver) PagesRendered(pages int) {
	PagesRendered.Observe(float64(pages))
}
