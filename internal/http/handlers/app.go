package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"productimage/internal/imagegen"
	"productimage/internal/metrics"
)

type App struct {
	Generator imagegen.Generator
	Recorder  *metrics.Generation

	metricsHandler http.Handler
}

// NewApp wires the handlers. gatherer backs GET /metrics and may be nil when
// metrics are not exposed.
func NewApp(gen imagegen.Generator, recorder *metrics.Generation, gatherer prometheus.Gatherer) *App {
	app := &App{Generator: gen, Recorder: recorder}
	if gatherer != nil {
		app.metricsHandler = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}
	return app
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
