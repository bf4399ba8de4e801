// service contains the use cases of the gateway: search, full-text
// retrieval and the filter value lists.
package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/config"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/filters"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/models"
)

//go:generate mockgen -source=service.go -destination=../../mocks/upstream.go -package=mocks

var (
	// ErrEmptySearch - neither a query nor a filter was given.
	// Transport: 400.
	ErrEmptySearch = errors.New("empty search")
	// ErrMissingID - content requested without an ECLI.
	// Transport: 400.
	ErrMissingID = errors.New("missing id")
	// ErrInvalidArgument - malformed input (page, size, type, sort, format).
	// Transport: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrFiltersUnavailable - the value lists failed to load at startup.
	// Transport: 503.
	ErrFiltersUnavailable = errors.New("filter lists unavailable")
)

// Upstream - the Rechtspraak.nl API as seen by the service.
type Upstream interface {
	Search(ctx context.Context, f models.SearchFilters) (*models.SearchResultPage, error)
	Content(ctx context.Context, ecli string) ([]byte, error)
}

// FilterLoader loads the filter value lists.
type FilterLoader interface {
	Load(ctx context.Context) (*filters.Lists, error)
}

// Service - stateless per request; the only shared state are the value
// lists, written once by LoadFilters.
type Service struct {
	upstream Upstream
	cfg      config.Config
	lists    atomic.Pointer[filters.Lists]
}

// New creates a new Service.
func New(upstream Upstream, cfg config.Config) *Service {
	return &Service{
		upstream: upstream,
		cfg:      cfg,
	}
}
