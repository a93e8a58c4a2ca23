package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret, subject, issuer string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(io.Discard, nil))))
	r.GET("/me", AuthMiddleware(testSecret, "backoffice-auth"), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + signToken(t, testSecret, "user-1", "backoffice-auth", time.Hour), http.StatusOK, "user-1"},
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Bearer {token}"},
		{"wrong secret", "Bearer " + signToken(t, "other", "user-1", "backoffice-auth", time.Hour), http.StatusUnauthorized, "Invalid token"},
		{"expired", "Bearer " + signToken(t, testSecret, "user-1", "backoffice-auth", -time.Minute), http.StatusUnauthorized, "Token has expired"},
		{"wrong issuer", "Bearer " + signToken(t, testSecret, "user-1", "someone-else", time.Hour), http.StatusUnauthorized, "Invalid token"},
		{"missing subject", "Bearer " + signToken(t, testSecret, "", "backoffice-auth", time.Hour), http.StatusUnauthorized, "Invalid token claims"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestStructuredLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(io.Discard, nil))))
	r.GET("/ping", func(c *gin.Context) {
		assert.NotSame(t, slog.Default(), GetLoggerFromCtx(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	lim, err := NewLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/x", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewLimiter("lots")
	assert.Error(t, err)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := gin.New()
	r.Use(m.Handler())
	r.GET("/clients/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/clients/42", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("/clients/:id", "GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))
}
