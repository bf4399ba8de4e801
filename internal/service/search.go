package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/models"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/pagination"
	"github.com/rolfvandort/Rolfiessuperzoekert/pkg/log"
)

// SearchRequest - JSON body of POST /api/search.
//
// Page is 1-based; 0 means the first page.
type SearchRequest struct {
	Query         string   `json:"query"`
	Type          string   `json:"type"`
	DateStart     string   `json:"dateStart"`
	DateEnd       string   `json:"dateEnd"`
	ModifiedStart string   `json:"modifiedStart"`
	ModifiedEnd   string   `json:"modifiedEnd"`
	Instances     []string `json:"instances"`
	LawAreas      []string `json:"lawAreas"`
	Procedures    []string `json:"procedures"`
	Page          int      `json:"page"`
	Max           int      `json:"max"`
	Sort          string   `json:"sort"`
}

// Pagination - pager block of a search response.
type Pagination struct {
	Page   int `json:"page"`
	Offset int `json:"offset"`
	Max    int `json:"max"`
	pagination.View
}

// SearchResult - one page of results plus its pager.
type SearchResult struct {
	Total      int                  `json:"total"`
	Results    []models.ResultEntry `json:"results"`
	Pagination Pagination           `json:"pagination"`
}

// Search validates a form request and runs it against upstream.
//
// Rules:
//   - at least one criterion, ErrEmptySearch otherwise;
//   - max <= 0 -> cfg.Search.DefaultMax;
//   - negative page, unknown type or sort -> ErrInvalidArgument.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	const op = "service.Search"

	lg := log.From(ctx)

	f, err := s.filtersFromRequest(req)
	if err != nil {
		lg.Warn("search_invalid_request",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("search_request",
		slog.String("op", op),
		slog.Bool("has_query", strings.TrimSpace(f.Query) != ""),
		slog.Bool("has_filters", f.HasStructured()),
		slog.Int("max", f.Max),
		slog.Int("from", f.From),
	)

	return s.run(ctx, op, f)
}

// SearchFilters runs a search given in upstream vocabulary.
// Nothing is validated; upstream decides what an empty search means.
func (s *Service) SearchFilters(ctx context.Context, f models.SearchFilters) (*SearchResult, error) {
	const op = "service.SearchFilters"

	if f.Max <= 0 {
		f.Max = s.defaultMax()
	}

	log.From(ctx).Info("search_passthrough_request",
		slog.String("op", op),
		slog.Int("max", f.Max),
		slog.Int("from", f.From),
	)

	return s.run(ctx, op, f)
}

// SearchPage returns only the normalized page, for the legacy bare-array route.
func (s *Service) SearchPage(ctx context.Context, req SearchRequest) (*models.SearchResultPage, error) {
	res, err := s.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	return &models.SearchResultPage{Total: res.Total, Results: res.Results}, nil
}

func (s *Service) run(ctx context.Context, op string, f models.SearchFilters) (*SearchResult, error) {
	lg := log.From(ctx)

	page, err := s.upstream.Search(ctx, f)
	if err != nil {
		lg.Error("search_upstream_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	state := &pagination.State{Offset: f.From, Max: f.Max}
	state.SetTotal(page.Total)

	lg.Info("search_ok",
		slog.String("op", op),
		slog.Int("total", page.Total),
		slog.Int("results", len(page.Results)),
	)

	return &SearchResult{
		Total:   page.Total,
		Results: page.Results,
		Pagination: Pagination{
			Page:   state.Page(),
			Offset: state.Offset,
			Max:    state.Max,
			View:   state.View(),
		},
	}, nil
}

func (s *Service) filtersFromRequest(req SearchRequest) (models.SearchFilters, error) {
	if req.Page < 0 {
		return models.SearchFilters{}, fmt.Errorf("%w: page %d", ErrInvalidArgument, req.Page)
	}

	if req.Max < 0 {
		return models.SearchFilters{}, fmt.Errorf("%w: max %d", ErrInvalidArgument, req.Max)
	}

	docType, err := parseType(req.Type)
	if err != nil {
		return models.SearchFilters{}, err
	}

	sort, err := parseSort(req.Sort)
	if err != nil {
		return models.SearchFilters{}, err
	}

	size := req.Max
	if size == 0 {
		size = s.defaultMax()
	}

	f := models.SearchFilters{
		Query:        strings.TrimSpace(req.Query),
		Type:         docType,
		DateFrom:     strings.TrimSpace(req.DateStart),
		DateTo:       strings.TrimSpace(req.DateEnd),
		ModifiedFrom: strings.TrimSpace(req.ModifiedStart),
		ModifiedTo:   strings.TrimSpace(req.ModifiedEnd),
		Subjects:     req.LawAreas,
		Creators:     req.Instances,
		Procedures:   req.Procedures,
		Max:          size,
		From:         pagination.AtPage(req.Page, size).Offset,
		Sort:         sort,
		Return:       models.ReturnAtom,
	}

	if f.IsEmpty() {
		return models.SearchFilters{}, ErrEmptySearch
	}

	return f, nil
}

func (s *Service) defaultMax() int {
	if s.cfg.Search.DefaultMax > 0 {
		return s.cfg.Search.DefaultMax
	}
	return pagination.DefaultMax
}

func parseType(v string) (models.DocumentType, error) {
	switch {
	case strings.TrimSpace(v) == "":
		return "", nil
	case strings.EqualFold(v, string(models.TypeUitspraak)):
		return models.TypeUitspraak, nil
	case strings.EqualFold(v, string(models.TypeConclusie)):
		return models.TypeConclusie, nil
	}

	return "", fmt.Errorf("%w: type %q", ErrInvalidArgument, v)
}

func parseSort(v string) (models.SortOrder, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "", string(models.SortAsc):
		return models.SortAsc, nil
	case string(models.SortDesc):
		return models.SortDesc, nil
	}

	return "", fmt.Errorf("%w: sort %q", ErrInvalidArgument, v)
}
