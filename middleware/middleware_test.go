package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevocations) Revoke(context.Context, string, time.Duration) error { return nil }

func (s *stubRevocations) IsRevoked(_ context.Context, hash string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[hash], nil
}

func newAuthRouter(tokens *utils.TokenManager, revocations utils.RevocationStore) (*gin.Engine, *bool) {
	reached := false
	r := gin.New()
	r.GET("/private", JWTAuthMiddleware(tokens, revocations), func(c *gin.Context) {
		reached = true
		c.String(http.StatusOK, c.GetString(utils.ContextUserID))
	})
	return r, &reached
}

func doGet(r http.Handler, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddlewareAcceptsValidToken(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	token, err := tokens.GenerateToken("user-1", "a@b.c")
	require.NoError(t, err)

	r, reached := newAuthRouter(tokens, &stubRevocations{})
	w := doGet(r, "/private", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
	assert.True(t, *reached)
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	other, err := utils.NewTokenManager("other", time.Hour).GenerateToken("user-1", "")
	require.NoError(t, err)
	expired, err := utils.NewTokenManager("secret", -time.Minute).GenerateToken("user-1", "")
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing":      "",
		"wrong scheme": "Basic abc",
		"empty bearer": "Bearer ",
		"garbage":      "Bearer not-a-jwt",
		"wrong secret": "Bearer " + other,
		"expired":      "Bearer " + expired,
	} {
		r, reached := newAuthRouter(tokens, nil)
		w := doGet(r, "/private", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.Contains(t, w.Body.String(), `"success":false`, name)
		assert.False(t, *reached, name)
	}
}

func TestJWTAuthMiddlewareRevokedToken(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	token, err := tokens.GenerateToken("user-1", "")
	require.NoError(t, err)

	revocations := &stubRevocations{revoked: map[string]bool{utils.HashToken(token): true}}
	r, reached := newAuthRouter(tokens, revocations)
	w := doGet(r, "/private", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestJWTAuthMiddlewareRevocationStoreDown(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	token, err := tokens.GenerateToken("user-1", "")
	require.NoError(t, err)

	r, _ := newAuthRouter(tokens, &stubRevocations{err: errors.New("redis down")})
	w := doGet(r, "/private", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func newLimitedRouter(t *testing.T, perMin int, trusted []string) *gin.Engine {
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(trusted))
	r.Use(RateLimitMiddleware(perMin))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func sendFrom(r *gin.Engine, remoteAddr, xff string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	if xff != "" {
		req.Header.Set("X-Forwarded-For", xff)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newLimitedRouter(t, 2, nil)

	assert.Equal(t, http.StatusOK, sendFrom(r, "1.1.1.1:1000", ""))
	assert.Equal(t, http.StatusOK, sendFrom(r, "1.1.1.1:1001", ""))
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(r, "1.1.1.1:1002", ""))
	assert.Equal(t, http.StatusOK, sendFrom(r, "2.2.2.2:1000", ""))
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	r := newLimitedRouter(t, 1, nil)

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		codes = append(codes, sendFrom(r, "203.0.113.9:4000", fmt.Sprintf("10.1.1.%d", i)))
	}
	assert.Equal(t, []int{
		http.StatusOK,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, codes)
}

func TestRateLimitUsesForwardedForFromTrustedProxy(t *testing.T) {
	r := newLimitedRouter(t, 1, []string{"10.0.0.0/8"})

	assert.Equal(t, http.StatusOK, sendFrom(r, "10.0.0.1:80", "198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(r, "10.0.0.1:80", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, sendFrom(r, "10.0.0.1:80", "198.51.100.2"))
}

func TestRateLimiterStoreEvictsIdleClients(t *testing.T) {
	store := newRateLimiterStore(10)
	now := time.Now()
	store.now = func() time.Time { return now }
	store.lastSweep = now

	store.getLimiter("1.1.1.1")
	now = now.Add(limiterIdleTTL / 2)
	store.getLimiter("2.2.2.2")
	require.Len(t, store.limiters, 2)

	now = now.Add(limiterIdleTTL/2 + limiterSweepInterval)
	store.getLimiter("3.3.3.3")

	assert.NotContains(t, store.limiters, "1.1.1.1")
	assert.Contains(t, store.limiters, "2.2.2.2")
	assert.Contains(t, store.limiters, "3.3.3.3")
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		assert.NotNil(t, RequestLoggerFrom(c))
		c.String(http.StatusOK, c.GetString(utils.ContextRequestID))
	})

	w := doGet(r, "/", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}
