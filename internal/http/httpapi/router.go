package httpapi

import (
	"net/http"

	"prodgen/internal/http/handlers"
	appmw "prodgen/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(app *handlers.App, log zerolog.Logger, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		appmw.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		appmw.Logger(log),
		appmw.CORS(corsOrigins),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", app.ListProducts)
		r.Get("/{id}", app.GetProduct)
	})

	r.Post("/generate", app.GenerateContent)
	r.Post("/complete-product", app.CompleteProduct)
	r.Post("/generate-image", app.GenerateImage)

	return r
}
