package http

import (
	"context"
	"net/http"
	"strings"

	"clubhub-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "user_claims"

// CallerID returns the authenticated user id stored by the auth
// middleware, or "" when the request was not authenticated.
func CallerID(r *http.Request) string {
	claims, ok := r.Context().Value(claimsKey).(*security.UserClaims)
	if !ok {
		return ""
	}
	return claims.UserID
}

// AuthMiddleware validates the bearer token and stores the caller's
// claims on the request context. A missing or invalid token is a 400
// with a descriptive message, matching the decision endpoint's contract.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusBadRequest, "Missing Authorization header")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				writeError(w, http.StatusBadRequest, "Invalid Authorization header")
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
