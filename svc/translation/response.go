package translation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/polyglot/pkg/logger"
)

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Code  string         `json:"code,omitempty"`
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// Response renders itself to a ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON creates a 200 response.
func JSON(code string, data any, meta map[string]any) Response {
	return jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{Code: code, Data: data, Meta: meta},
	}
}

// JSONError creates an error response. HTTPError values keep their status
// and key; anything else becomes a 500 without internal details.
func JSONError(err error, message string) Response {
	httpErr := ErrInternal
	if !errors.As(err, &httpErr) {
		message = ""
	}
	if message == "" {
		message = http.StatusText(httpErr.Code)
	}
	return jsonResponse{
		status: httpErr.Code,
		body: JSONResponse{
			Code:  httpErr.Key,
			Error: &ErrorDetail{Code: httpErr.Key, Message: message},
		},
	}
}

// handle adapts a Response-returning function to http.HandlerFunc.
func handle(log *slog.Logger, fn func(r *http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r).Render(w, r); err != nil {
			log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
		}
	}
}
