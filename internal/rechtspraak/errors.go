package rechtspraak

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter - a query-string value that cannot be mapped to filters.
var ErrInvalidParameter = errors.New("invalid parameter")

// UpstreamError - Rechtspraak.nl answered with a non-2xx status or was unreachable.
//
// Status == 0 means the request never got a response (dial, TLS, read failure).
type UpstreamError struct {
	Endpoint string
	URL      string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("Rechtspraak.nl API reageerde met status: %d", e.Status)
	}

	return fmt.Sprintf("Rechtspraak.nl API niet bereikbaar: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError - the upstream body is not the expected XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ongeldige XML van Rechtspraak.nl: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
