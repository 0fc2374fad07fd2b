package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shoplite/shoplite-go/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// messageResponse is the standard error body shape.
func messageResponse(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// serverErrorResponse is the body shape the auth routes use for unexpected
// failures, with an "error" key instead of "message".
func serverErrorResponse() map[string]string {
	return map[string]string{"error": "Server error"}
}

// decodeBody decodes a JSON request body into dst with a size cap. It
// writes the error response itself and reports whether decoding succeeded.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, messageResponse("Request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, messageResponse("Invalid request body"))
		return false
	}
	return true
}

func isValidationError(err error) bool {
	var validationErr *model.ValidationError
	return errors.As(err, &validationErr)
}
