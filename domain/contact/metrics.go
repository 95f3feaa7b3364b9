package contact

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Contact form submit attempts by outcome",
	}, []string{"outcome"})

	SubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "contact_submit_duration_seconds",
		Help:    "Time spent in a contact form submit, including delivery",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 1.5, 2, 5, 10, 30},
	}, []string{"outcome"})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contact_rate_limited_total",
		Help: "Contact form posts rejected by the per-client rate limit",
	})
)
