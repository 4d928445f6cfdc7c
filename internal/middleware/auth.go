package middleware

import (
	"context"
	"net/http"

	"github.com/campuskit/campus-auth/internal/auth"
	"github.com/campuskit/campus-auth/internal/http/respond"
)

type contextKey int

const claimsKey contextKey = iota

// Auth rejects requests without a valid bearer token and stores the
// verified claims on the request context for downstream handlers.
func Auth(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := auth.ExtractFromHeader(r.Header.Get("Authorization"))
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "Access token is required")
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFrom returns the claims placed on the context by Auth.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
