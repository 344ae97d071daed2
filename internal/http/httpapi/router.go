package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/http/handlers"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/middleware"
)

// Options tunes the shared middleware stack.
type Options struct {
	RateLimitPerMin int
	CORSOrigins     []string
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(opts.CORSOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	limit := opts.RateLimitPerMin
	if limit <= 0 {
		limit = 30
	}
	generationLimit := middleware.RateLimit(limit, time.Minute)

	// Page
	r.Get("/", app.Index)
	r.With(generationLimit).Post("/generate", app.FormGenerate)
	r.Post("/select/{kind}", app.FormSelect)
	r.Post("/donate/{action}", app.FormDonate)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/state", app.State)
		r.Get("/options", app.Options)

		r.With(generationLimit).Post("/generate", app.Generate)
		r.With(generationLimit).Post("/retry", app.Retry)
		r.Put("/aspect-ratio", app.SelectAspectRatio)
		r.Put("/style", app.SelectStyle)

		r.Get("/examples/random", app.RandomExample)
		r.Post("/examples/{index}/use", app.UseExample)

		r.Route("/images/{handle}", func(r chi.Router) {
			r.Get("/", app.ImageGet)
			r.Get("/download", app.ImageDownload)
			r.Get("/share", app.ImageShare)
		})

		r.Get("/donate", app.DonateView)
		r.Post("/donate/{action}", app.DonateApply)
	})

	return r
}
