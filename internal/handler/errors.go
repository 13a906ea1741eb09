package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// validationBody returns an ErrorResponse for input rejected before it
// reaches the service layer (e.g. a non-numeric operand).
func validationBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}}
}

// overflowBody returns an ErrorResponse for a division whose quotient does
// not fit in an int64. No handler recovers from it.
func overflowBody() ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "overflow", Message: "quotient does not fit in a 64-bit integer"}}
}

// internalBody hides the cause of an unexpected failure from the client.
// The cause is logged server-side by the handler that produced it.
func internalBody() ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
