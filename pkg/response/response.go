package response

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every mutation endpoint answers with.
type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Response{
		Status:  StatusSuccess,
		Message: message,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Response{
		Status:  StatusError,
		Message: message,
	})
}

// ValidationError answers 400 with a message enumerating every failing field.
func ValidationError(w http.ResponseWriter, errors map[string]string) {
	JSON(w, http.StatusBadRequest, Response{
		Status:  StatusError,
		Message: ValidationMessage(errors),
		Errors:  errors,
	})
}

// ValidationMessage joins field errors in field-name order.
func ValidationMessage(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+errors[field])
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}
