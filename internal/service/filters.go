package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/filters"
	"github.com/rolfvandort/Rolfiessuperzoekert/pkg/log"
)

// LoadFilters loads the value lists once, at startup.
// On failure the lists stay unavailable and Filters returns ErrFiltersUnavailable.
func (s *Service) LoadFilters(ctx context.Context, loader FilterLoader) error {
	const op = "service.LoadFilters"

	lists, err := loader.Load(ctx)
	if err != nil {
		log.From(ctx).Error("filters_unavailable",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.lists.Store(lists)

	return nil
}

// Filters returns the loaded value lists.
func (s *Service) Filters(ctx context.Context) (*filters.Lists, error) {
	const op = "service.Filters"

	lists := s.lists.Load()
	if lists == nil {
		log.From(ctx).Warn("filters_requested_unavailable", slog.String("op", op))
		return nil, fmt.Errorf("%s: %w", op, ErrFiltersUnavailable)
	}

	return lists, nil
}
