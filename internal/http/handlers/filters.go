package handlers

import (
	"net/http"

	apierrors "github.com/rolfvandort/Rolfiessuperzoekert/internal/errors"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/filters"
)

type filtersResponse struct {
	Success bool `json:"success"`
	*filters.Lists
	LawAreasFlat []filters.FlatRechtsgebied `json:"lawAreasFlat"`
}

// Filters handles GET /api/filters.
func (h *Handlers) Filters(w http.ResponseWriter, r *http.Request) {
	lists, err := h.Service.Filters(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, filtersResponse{
		Success:      true,
		Lists:        lists,
		LawAreasFlat: lists.Flatten(),
	})
}
