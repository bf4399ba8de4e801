package handlers

import (
	"net/http"

	apierrors "github.com/rolfvandort/Rolfiessuperzoekert/internal/errors"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/models"
)

// Content handles GET /api/search-content?id=<ECLI>&format=xml|html|markdown.
func (h *Handlers) Content(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	c, err := h.Service.Content(r.Context(), q.Get("id"), models.ContentFormat(q.Get("format")))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", c.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(c.Body)
}
