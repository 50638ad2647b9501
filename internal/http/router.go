package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/mlb-matchup-service/internal/http/handlers"
	"github.com/preston-bernstein/mlb-matchup-service/internal/http/middleware"
	"github.com/preston-bernstein/mlb-matchup-service/internal/metrics"
)

// RouterConfig carries the pieces the router wires together. Admin is only
// mounted when set.
type RouterConfig struct {
	Handler     *handlers.Handler
	Admin       *handlers.AdminHandler
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	h := cfg.Handler
	if h == nil {
		h = handlers.NewHandler(nil, cfg.Logger, nil)
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/board", h.Board)
	r.Get("/board.md", h.BoardMarkdown)
	r.Route("/board/{date}", func(r chi.Router) {
		r.Get("/", h.BoardByDate)
		r.Get("/games/{gameID}", h.GameByID)
	})
	if cfg.Admin != nil {
		r.Post("/admin/refresh", cfg.Admin.RefreshBoard)
	}
	return r
}
