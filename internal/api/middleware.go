package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/nichefeed/nichefeed-server/internal/http/response"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const contextKeyUserID contextKey = "user_id"

// requireAuth is middleware that reads the caller's identity from the
// Authorization header. The bearer token IS the raw user ID: this is a
// placeholder identity scheme, not a verified credential, and must be
// replaced before any real deployment.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Unauthorized", s.logger)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(w, "Unauthorized", s.logger)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, parts[1])
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getUserID extracts the caller's user ID from request context.
// Returns empty string outside requireAuth routes.
func getUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(contextKeyUserID).(string); ok {
		return userID
	}
	return ""
}
