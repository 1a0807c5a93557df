package handlers

import (
	"net/http"
)

// Health answers the liveness probe. It does not contact the image provider.
func (a *App) Health(w http.ResponseWriter, _ *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
