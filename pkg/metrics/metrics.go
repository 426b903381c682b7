package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts records authentication attempts by result (success|failure).
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undanganku_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"result"},
	)

	// GuestSubmissions counts unauthenticated guest writes by kind (rsvp|message).
	GuestSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "undanganku_guest_submissions_total",
			Help: "Total number of guest RSVP and message submissions",
		},
		[]string{"kind"},
	)

	// MusicUploads counts accepted music file uploads.
	MusicUploads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "undanganku_music_uploads_total",
			Help: "Total number of accepted music uploads",
		},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "undanganku_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
