package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jacwu/toy-store/internal/transport/middleware"
)

// successResponse is the envelope of every successful API response.
// Data is omitted only when nil, so empty lists are still rendered as [].
type successResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Count     *int   `json:"count,omitempty"`
	ToyTypeID *int64 `json:"toyTypeId,omitempty"`
}

// failureResponse is the envelope of every handled failure.
type failureResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", middleware.ContentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, successResponse{Success: true, Message: message, Data: data})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, failureResponse{Message: message})
}

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched so that field validation reports what is missing.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
