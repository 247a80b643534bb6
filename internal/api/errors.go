package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the backend. Detail carries the
// server-provided message verbatim (FastAPI's "detail" field) so pages can
// show it to the user unchanged.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusUnauthorized
}

// Detail extracts the server-provided error message, or falls back to the
// given generic one. Pages use it so transport failures still read sanely.
func Detail(err error, fallback string) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Detail != "" {
		return ae.Detail
	}
	return fallback
}
