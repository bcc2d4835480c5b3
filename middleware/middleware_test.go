package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signed(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protected() http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := GetRoleFromContext(r.Context())
		w.Write([]byte(role))
	})
	return Authenticate(testSecret)(Authorize(RoleAdmin)(ok))
}

func TestAuthenticateAndAuthorize(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer not-a-token", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signed(t, jwt.MapClaims{"role": "admin", "exp": future}, "other"), http.StatusUnauthorized},
		{"expired", "Bearer " + signed(t, jwt.MapClaims{"role": "admin", "exp": past}, testSecret), http.StatusUnauthorized},
		{"no expiry", "Bearer " + signed(t, jwt.MapClaims{"role": "admin"}, testSecret), http.StatusUnauthorized},
		{"wrong role", "Bearer " + signed(t, jwt.MapClaims{"role": "team", "exp": future}, testSecret), http.StatusForbidden},
		{"admin", "Bearer " + signed(t, jwt.MapClaims{"role": "admin", "exp": future}, testSecret), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			protected().ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, "admin", rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(2)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"), "buckets are per IP")

	now = now.Add(30 * time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"))

	now = now.Add(time.Hour)
	limiter.Allow("10.0.0.3")
	limiter.mu.Lock()
	_, stale := limiter.visitors["10.0.0.2"]
	limiter.mu.Unlock()
	assert.False(t, stale)
}

func TestIPRateLimiterMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(1)
	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "192.168.1.5:40000"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req.RemoteAddr = "192.168.1.5:40001"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}
