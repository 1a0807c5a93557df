package handlers

import "net/http"

func (a *App) Metrics(w http.ResponseWriter, r *http.Request) {
	if a.metricsHandler == nil {
		http.NotFound(w, r)
		return
	}
	a.metricsHandler.ServeHTTP(w, r)
}
