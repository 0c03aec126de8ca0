package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/novamint/rewards-be/internal/auth"
	"github.com/novamint/rewards-be/internal/http/respond"
	"github.com/novamint/rewards-be/internal/models"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// Authenticate requires a "Bearer <token>" Authorization header. A missing
// header is 401; a malformed, invalid, or expired token is 403. The two
// outcomes are distinct on purpose. Verified claims go into the request
// context for downstream handlers.
func Authenticate(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" {
			respond.Error(w, http.StatusUnauthorized, "missing token")
			return
		}
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			respond.Error(w, http.StatusForbidden, "invalid token")
			return
		}
		claims, err := tokens.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			respond.Error(w, http.StatusForbidden, "invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects callers whose verified claims do not carry the admin
// role. It must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		if !ok || claims.Role != models.RoleAdmin {
			respond.Error(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFrom extracts verified token claims attached by Authenticate.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
