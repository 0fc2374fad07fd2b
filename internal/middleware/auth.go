package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shoplite/shoplite-go/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenAuth returns middleware that verifies the bearer token carried in
// the Authorization header. The header value is passed to verification
// as-is; clients send the raw token without a "Bearer " prefix.
func TokenAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				writeJSONMessage(w, http.StatusUnauthorized, "No token provided, authorization denied")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONMessage(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user id from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func writeJSONMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
