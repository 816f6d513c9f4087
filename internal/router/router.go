package router

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lendbridge/intake-backend/internal/handlers"
	"github.com/lendbridge/intake-backend/internal/middleware"
)

// NewRouter wires the API routes and, when staticDir exists, serves the
// wizard frontend from it.
func NewRouter(deps *handlers.Deps, staticDir string) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)

	r.Use(
		chimiddleware.RequestID,
		lm.LoggerMiddleware,
		chimiddleware.Recoverer,
	)

	vh := handlers.NewVerificationHandlers(deps)

	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type", "Accept"},
		}))
		api.Mount("/", vh.VerificationRoutes())
	})

	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}
