package middleware

import (
	"context"
	"net/http"
	"strings"

	"kickabout_server/auth"
	"kickabout_server/utils"
)

type contextKey string

// UserIDKey is the request-context key holding the authenticated user id.
const UserIDKey contextKey = "userId"

// RequireAuth rejects requests that do not carry a valid bearer token and
// stores the token's user id in the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.WriteError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := auth.AuthenticateJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticatedUser returns the user id stored by RequireAuth, if any.
func AuthenticatedUser(r *http.Request) string {
	if v, ok := r.Context().Value(UserIDKey).(string); ok {
		return v
	}
	return ""
}
