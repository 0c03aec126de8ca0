package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/novamint/rewards-be/internal/auth"
	"github.com/novamint/rewards-be/internal/models"
)

func newGatedHandler(t *testing.T, tokens *auth.TokenManager, adminOnly bool) (http.Handler, *int) {
	t.Helper()
	calls := 0
	var next http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		claims, ok := ClaimsFrom(r.Context())
		require.True(t, ok, "claims must be present downstream")
		require.NotNil(t, claims)
		w.WriteHeader(http.StatusOK)
	})
	if adminOnly {
		next = RequireAdmin(next)
	}
	return Authenticate(tokens, next), &calls
}

func TestAuthenticateMissingHeader(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "iss", time.Hour)
	handler, calls := newGatedHandler(t, tokens, false)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, *calls)
	require.JSONEq(t, `{"error":"missing token"}`, rec.Body.String())
}

func TestAuthenticateInvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "iss", time.Hour)
	expired := auth.NewTokenManager("secret", "iss", -time.Minute)
	forged := auth.NewTokenManager("other-secret", "iss", time.Hour)

	expiredToken, err := expired.Generate(1, models.RoleUser)
	require.NoError(t, err)
	forgedToken, err := forged.Generate(1, models.RoleAdmin)
	require.NoError(t, err)

	cases := map[string]string{
		"not bearer":  "Basic abc123",
		"garbage":     "Bearer not.a.token",
		"expired":     "Bearer " + expiredToken,
		"wrong key":   "Bearer " + forgedToken,
		"bare bearer": "Bearer ",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			handler, calls := newGatedHandler(t, tokens, false)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusForbidden, rec.Code)
			require.Zero(t, *calls)
		})
	}
}

func TestAuthenticatePassesClaims(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "iss", time.Hour)
	handler, calls := newGatedHandler(t, tokens, false)

	token, err := tokens.Generate(42, models.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, *calls)
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "iss", time.Hour)

	userToken, err := tokens.Generate(1, models.RoleUser)
	require.NoError(t, err)
	adminToken, err := tokens.Generate(2, models.RoleAdmin)
	require.NoError(t, err)

	t.Run("user role rejected", func(t *testing.T) {
		handler, calls := newGatedHandler(t, tokens, true)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Zero(t, *calls)
		require.JSONEq(t, `{"error":"admin role required"}`, rec.Body.String())
	})

	t.Run("admin role allowed", func(t *testing.T) {
		handler, calls := newGatedHandler(t, tokens, true)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 1, *calls)
	})

	t.Run("no claims rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("downstream must not run")
		})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
