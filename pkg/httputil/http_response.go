package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
)

const MsgInternalError = "Internal server error"

// Envelope is the body of every API response.
type Envelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message,omitempty"`
	Data    any                      `json:"data,omitempty"`
	Errors  []errorvalues.FieldError `json:"errors,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeEnvelope(w, statusCode, Envelope{
		Success: false,
		Message: message,
	})
}

// WriteValidationErrorResponse writes a 400 with one entry per violated rule.
func WriteValidationErrorResponse(w http.ResponseWriter, verr *errorvalues.ValidationError) {
	writeEnvelope(w, http.StatusBadRequest, Envelope{
		Success: false,
		Message: verr.Message,
		Errors:  verr.Errors,
	})
}

func WriteInternalErrorResponse(w http.ResponseWriter) {
	WriteErrorResponse(w, http.StatusInternalServerError, MsgInternalError)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, message string, data any) {
	writeEnvelope(w, statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigDefault.NewEncoder(w).Encode(body)
}
