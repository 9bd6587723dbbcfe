package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"prodgen/internal/catalog"
	"prodgen/internal/domain"

	"github.com/rs/zerolog"
)

// Generator is the content backend the handlers call into. A nil Generator
// means the service started without an API key and runs catalog-only.
type Generator interface {
	GenerateContent(ctx context.Context, p domain.Product, types []domain.ContentType, style domain.StyleOptions, targets domain.SocialTargets) (domain.ContentBundle, error)
	CompleteProduct(ctx context.Context, p domain.Product) (domain.CompletedProduct, error)
	GenerateProductImage(ctx context.Context, p domain.Product, style domain.ImageStyle) (domain.ImageResult, error)
}

type App struct {
	Log     zerolog.Logger
	Catalog *catalog.Store
	Gen     Generator
}

func NewApp(log zerolog.Logger, store *catalog.Store, gen Generator) *App {
	return &App{Log: log, Catalog: store, Gen: gen}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Kind    domain.ErrorKind `json:"kind"`
	Message string           `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// error writes the uniform error envelope for err, mapping its kind to an
// HTTP status. Untyped errors are reported as internal without leaking the
// underlying message.
func (a *App) error(w http.ResponseWriter, r *http.Request, err error) {
	e, ok := domain.AsError(err)
	if !ok {
		a.Log.Error().Err(err).Str("path", r.URL.Path).Msg("unclassified handler error")
		a.json(w, http.StatusInternalServerError, errorEnvelope{Error: errorBody{
			Kind:    "internal_error",
			Message: "internal server error",
		}})
		return
	}
	status := http.StatusInternalServerError
	switch e.Kind {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindParse:
		status = http.StatusBadGateway
	case domain.KindUpstream:
		status = http.StatusBadGateway
	}
	if status >= http.StatusInternalServerError {
		a.Log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	a.json(w, status, errorEnvelope{Error: errorBody{Kind: e.Kind, Message: e.Message}})
}

// requireGenerator guards the generation endpoints when the service runs
// catalog-only. Returns false after writing the 503 response.
func (a *App) requireGenerator(w http.ResponseWriter) bool {
	if a.Gen != nil {
		return true
	}
	a.json(w, http.StatusServiceUnavailable, errorEnvelope{Error: errorBody{
		Kind:    domain.KindUpstream,
		Message: "content generation is unavailable: no API key configured",
	}})
	return false
}
