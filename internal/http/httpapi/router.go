package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"studio/internal/http/handlers"
	"studio/internal/middleware"
)

// NewRouter assembles the API surface. The country lookup may be nil when no
// GeoIP database is configured; locale detection then falls back to headers.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(*app.Logger),
		middleware.CORS(app.Config.AllowedOrigins),
		middleware.I18N(app.Config.DefaultLocale, lookup),
	)

	r.Get("/v1/healthz", app.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute))

		r.Route("/v1/images", func(r chi.Router) {
			r.Post("/generate", app.ImagesGenerate)
			r.Post("/export", app.ImagesExport)
		})
		r.Post("/v1/videos/generate", app.VideosGenerate)
		r.Post("/v1/copy/generate", app.CopyGenerate)
	})

	r.Route("/v1/sessions/{id}", func(r chi.Router) {
		r.Get("/", app.SessionGet)
		r.Put("/", app.SessionPut)
		r.Delete("/", app.SessionDelete)
	})

	r.Route("/v1/integrations/gemini", func(r chi.Router) {
		r.Get("/status", app.GeminiStatus)
		r.Put("/", app.GeminiSetKey)
	})

	return r
}
