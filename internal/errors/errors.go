// errors standardizes the error responses of the HTTP layer.
// It takes an error from the service or the upstream client and yields:
//   - the HTTP status;
//   - a short Dutch message safe to show in the browser.
//
// Mapping:
//   - client input (empty search, missing id, invalid argument, bad body) -> 400;
//   - upstream answered >= 400 -> same status, upstream transport failure -> 502;
//   - unparseable upstream XML -> 500 with a generic message;
//   - filter lists not loaded -> 503;
//   - context canceled -> 499, deadline exceeded -> 504;
//   - anything else -> 500.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/rechtspraak"
	"github.com/rolfvandort/Rolfiessuperzoekert/internal/service"
)

// StatusClientClosedRequest - non-standard code for "client closed the connection".
const StatusClientClosedRequest = 499

const msgInternal = "Er is een interne fout opgetreden."

var (
	// ErrInvalidBody - the request body is empty or not valid JSON.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrMethodNotAllowed - known route, wrong method.
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrNotFound - unknown route.
	ErrNotFound = errors.New("not found")
)

// ErrorResponse - the single error envelope sent to the browser.
// Code is stable and machine readable; Error is for humans.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// ToHTTP converts err into an HTTP status and the error envelope.
//
// err == nil is a programming error of the caller and yields 500,
// so that a "200 OK" with an error body is never sent.
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := classify(err)

	return status, ErrorResponse{
		Success: false,
		Code:    code,
		Error:   msg,
	}
}

// WriteError writes status and body, adding request_id from X-Request-Id when present.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func classify(err error) (int, string, string) {
	if err == nil {
		return http.StatusInternalServerError, "internal", msgInternal
	}

	var (
		upErr    *rechtspraak.UpstreamError
		parseErr *rechtspraak.ParseError
	)

	switch {
	case errors.Is(err, service.ErrEmptySearch):
		return http.StatusBadRequest, "empty_search", "Zoekterm ontbreekt."
	case errors.Is(err, service.ErrMissingID):
		return http.StatusBadRequest, "missing_id", `Parameter "id" (ECLI) is verplicht.`
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "Ongeldige zoekparameters."
	case errors.Is(err, rechtspraak.ErrInvalidParameter):
		return http.StatusBadRequest, "invalid_argument", "Ongeldige zoekparameters."
	case errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, "invalid_body", "Ongeldige JSON in de request body."
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, "method_not_allowed", "Methode niet toegestaan."
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not_found", "Niet gevonden."
	case errors.Is(err, service.ErrFiltersUnavailable):
		return http.StatusServiceUnavailable, "unavailable", "Filterlijsten zijn niet beschikbaar."
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "Verzoek afgebroken."
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "Rechtspraak.nl reageerde niet op tijd."
	case errors.As(err, &parseErr):
		return http.StatusInternalServerError, "internal", msgInternal
	case errors.As(err, &upErr):
		if upErr.Status >= http.StatusBadRequest {
			return upErr.Status, "upstream_error", upErr.Error()
		}
		return http.StatusBadGateway, "upstream_unavailable", upErr.Error()
	default:
		return http.StatusInternalServerError, "internal", msgInternal
	}
}
