package usecase

import (
	"time"

	"github.com/fadilmartias/interview-evaluator/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "interview_eval",
		Subsystem: "provider",
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound LLM provider calls",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"provider", "outcome"})

	evaluationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interview_eval",
		Subsystem: "evaluation",
		Name:      "failures_total",
		Help:      "Number of failed evaluations by provider and failure kind",
	}, []string{"provider", "kind"})
)

func observeProviderCall(kind service.ProviderKind, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	providerDuration.WithLabelValues(string(kind), outcome).Observe(elapsed.Seconds())
}
