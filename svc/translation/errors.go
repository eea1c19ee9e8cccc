package translation

import (
	"errors"
	"net/http"
)

// HTTPError is an error with a status code and a machine-readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest        = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound          = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed  = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrUnknownIdentifier = HTTPError{Code: http.StatusNotFound, Key: "unknown_identifier"}
	ErrUnknownLanguage   = HTTPError{Code: http.StatusBadRequest, Key: "unknown_language"}
	ErrTooManyItems      = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "too_many_items"}
	ErrRateLimited       = HTTPError{Code: http.StatusTooManyRequests, Key: "rate_limited"}
	ErrInternal          = HTTPError{Code: http.StatusInternalServerError, Key: "internal_error"}
)

// ErrNilResolver is returned by New when no resolver is given.
var ErrNilResolver = errors.New("translation service requires a resolver")
