// handlers - REST endpoints of the gateway.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	apierrors "github.com/rolfvandort/Rolfiessuperzoekert/internal/errors"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/service"
)

// maxBodyBytes bounds a JSON request body.
const maxBodyBytes = 1 << 20

// Handlers holds the dependencies of the endpoints.
type Handlers struct {
	Service *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{Service: svc}
}

// writeJSON writes a JSON response; errors go through apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict decodes a JSON body and rejects unknown fields.
// An empty or malformed body yields apierrors.ErrInvalidBody.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(value); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", apierrors.ErrInvalidBody)
		}
		return fmt.Errorf("%w: %v", apierrors.ErrInvalidBody, err)
	}

	return nil
}
