package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// ValidationErrorResponse is returned with 400 when a request fails validation
type ValidationErrorResponse struct {
	Error  string      `json:"error"`
	Fields FieldErrors `json:"fields"`
}

// WriteValidationError writes a 400 response listing the offending fields
func WriteValidationError(w http.ResponseWriter, fields FieldErrors, logger *slog.Logger) {
	WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  "Validation failed",
		Fields: fields,
	}, logger)
}
