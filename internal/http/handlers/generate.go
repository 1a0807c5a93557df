package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"productimage/internal/imagegen"
	"productimage/internal/metrics"
)

const maxGenerateBody = 1 << 20

type imageResponse struct {
	Image string `json:"image"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GenerateImage handles POST /generate/image. Every failure, whatever its kind,
// is answered with 500 and {"error": message}.
func (a *App) GenerateImage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, err := imagegen.ParseProductRequest(http.MaxBytesReader(w, r.Body, maxGenerateBody))
	if err != nil {
		a.fail(w, r, start, err)
		return
	}
	res, err := a.Generator.Generate(r.Context(), req)
	if err != nil {
		a.fail(w, r, start, err)
		return
	}
	a.Recorder.Record(metrics.OutcomeSuccess, time.Since(start))
	zerolog.Ctx(r.Context()).Debug().Str("product", req.Name).Msg("image generated")
	a.json(w, http.StatusOK, imageResponse{Image: res.ImageURL})
}

func (a *App) fail(w http.ResponseWriter, r *http.Request, start time.Time, err error) {
	kind := imagegen.KindOf(err)
	a.Recorder.Record(string(kind), time.Since(start))
	zerolog.Ctx(r.Context()).Warn().Err(err).Str("kind", string(kind)).Msg("image generation failed")
	a.json(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
