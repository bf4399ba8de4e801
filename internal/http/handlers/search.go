package handlers

import (
	"net/http"

	apierrors "github.com/rolfvandort/Rolfiessuperzoekert/internal/errors"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/rechtspraak"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/service"
)

type searchResponse struct {
	Success bool `json:"success"`
	*service.SearchResult
}

// Search handles POST /api/search with a form body.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	var req service.SearchRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.Service.Search(r.Context(), req)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Success: true, SearchResult: res})
}

// SearchQuery handles GET /api/search with upstream parameter names
// (q, type, date, modified, subject, creator, procedure, max, from, sort, return).
func (h *Handlers) SearchQuery(w http.ResponseWriter, r *http.Request) {
	f, err := rechtspraak.FiltersFromQuery(r.URL.Query())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.Service.SearchFilters(r.Context(), f)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Success: true, SearchResult: res})
}

// SearchLegacy handles POST /api/search/legacy: same body, bare array of results.
func (h *Handlers) SearchLegacy(w http.ResponseWriter, r *http.Request) {
	var req service.SearchRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.Service.SearchPage(r.Context(), req)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page.Results)
}
