package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/rolfvandort/Rolfiessuperzoekert/internal/errors"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/http/handlers"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/http/middleware"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/service"
)

// Options - router settings.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// Metrics - nil disables HTTP metrics.
	Metrics  *middleware.HTTPMetrics
	BasePath string // e.g. "/api"; empty registers routes at the root.
}

// NewRouter builds the chi router with middlewares and routes.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// outer -> inner.
	root.Use(
		middleware.Recover(),
		middleware.RequestID(), // before Logging so the id lands in the log
		middleware.Logging(opts.Logger),
		middleware.Metrics(opts.Metrics),
		middleware.Timeout(opts.Timeout),
	)

	root.MethodNotAllowed(methodNotAllowed)
	root.NotFound(notFound)

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		sub.MethodNotAllowed(methodNotAllowed)
		sub.NotFound(notFound)
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes - the single place where REST endpoints are registered.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	r.Post("/search", h.Search)
	r.Get("/search", h.SearchQuery)
	r.Post("/search/legacy", h.SearchLegacy)
	r.Get("/search-content", h.Content)
	r.Get("/filters", h.Filters)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apierrors.WriteError(w, r, apierrors.ErrMethodNotAllowed)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	apierrors.WriteError(w, r, apierrors.ErrNotFound)
}
