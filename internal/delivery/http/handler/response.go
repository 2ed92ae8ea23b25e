package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body returned on every failed request. Error
// carries the underlying detail on internal errors only.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SendJSON sends a JSON response
func SendJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// SendError sends an error JSON response
func SendError(w http.ResponseWriter, message string, statusCode int) {
	SendJSON(w, statusCode, ErrorResponse{Message: message})
}

// SendInternalError sends a 500 with the underlying error detail
func SendInternalError(w http.ResponseWriter, message string, err error) {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	SendJSON(w, http.StatusInternalServerError, resp)
}
