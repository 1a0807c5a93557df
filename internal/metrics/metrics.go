// Package metrics exposes Prometheus instruments for image generation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OutcomeSuccess labels a generation that returned an image URL. Failures are
// labelled with their imagegen.Kind.
const OutcomeSuccess = "success"

// Generation records the outcome and latency of every generation request.
type Generation struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewGeneration creates the generation instruments and registers them on reg.
func NewGeneration(reg prometheus.Registerer) (*Generation, error) {
	g := &Generation{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "product_image_generations_total",
			Help: "Image generation requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "product_image_provider_request_duration_seconds",
			Help:    "Time spent generating an image, including the provider call.",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}, []string{"outcome"}),
	}
	for _, c := range []prometheus.Collector{g.requests, g.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Record stores one completed request. A nil receiver is a no-op.
func (g *Generation) Record(outcome string, elapsed time.Duration) {
	if g == nil {
		return
	}
	g.requests.WithLabelValues(outcome).Inc()
	g.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
