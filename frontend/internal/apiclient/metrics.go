package apiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learnhouse_api_calls_total",
			Help: "Total number of calls to the LearnHouse backend",
		},
		[]string{"operation", "outcome"},
	)

	apiCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "learnhouse_api_call_duration_seconds",
			Help:    "LearnHouse backend call duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)
)

func observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	apiCallsTotal.WithLabelValues(op, outcome).Inc()
	apiCallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
