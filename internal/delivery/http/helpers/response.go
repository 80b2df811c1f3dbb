// Package helpers contains the JSON plumbing shared by all controllers.
package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error body. Errors carries per-field validation
// detail and is omitted otherwise.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the raw response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse with just a message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Message: message})
}

// WriteValidationError writes a 400 ErrorResponse carrying field detail.
func WriteValidationError(w http.ResponseWriter, message string, details []string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Message: message, Errors: details})
}
