package httpapi

import (
	"net/http"

	"productimage/internal/http/handlers"
	"productimage/internal/infra"
	appmw "productimage/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App, logger infra.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		appmw.RequestID,
		middleware.RealIP,
		appmw.Logger(logger),
		appmw.Recoverer,
		appmw.CORS(allowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/metrics", app.Metrics)
	r.Get("/openapi.json", app.OpenAPIJSON)
	r.Get("/docs", app.OpenAPIDocs)

	r.Route("/generate", func(r chi.Router) {
		r.Post("/image", app.GenerateImage)
	})

	return r
}
