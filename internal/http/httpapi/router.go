package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Yash-Yashwant/CosplayAI/internal/http/handlers"
	"github.com/Yash-Yashwant/CosplayAI/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(app.Log),
		middleware.CORS(app.Config.AllowedOrigins),
	)

	r.Get("/health", app.Health)

	r.Route("/characters", func(r chi.Router) {
		r.Get("/", app.ListCharacters)
		r.Get("/search", app.SearchCharacters)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute))
		r.Post("/generate-cosplay", app.GenerateCosplay)
	})

	r.Get("/generation/{id}", app.GetGeneration)

	return r
}
