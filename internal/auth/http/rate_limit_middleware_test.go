package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	authDomain "github.com/allisson/sharelink/internal/auth/domain"
)

func serve(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestIPRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(IPRateLimitMiddleware(0.001, 2, newTestLogger()))
	router.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(router, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, serve(router, "10.0.0.1:1234").Code)

	w := serve(router, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")

	// Other addresses have their own bucket.
	assert.Equal(t, http.StatusOK, serve(router, "10.0.0.2:1234").Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	first := &authDomain.Operator{ID: uuid.New()}
	second := &authDomain.Operator{ID: uuid.New()}
	current := first

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(WithOperator(c.Request.Context(), current))
		c.Next()
	})
	router.Use(RateLimitMiddleware(0.001, 1, newTestLogger()))
	router.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(router, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, "10.0.0.1:1").Code)

	current = second
	assert.Equal(t, http.StatusOK, serve(router, "10.0.0.1:1").Code)
}

func TestRateLimitMiddleware_WithoutOperator(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(10, 10, newTestLogger()))
	router.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, serve(router, "10.0.0.1:1").Code)
}

func TestLimiterStore_EvictIdle(t *testing.T) {
	store := &limiterStore{rps: 1, burst: 1}
	store.getLimiter("stale")
	store.getLimiter("fresh")

	val, _ := store.limiters.Load("stale")
	entry := val.(*limiterEntry)
	entry.mu.Lock()
	entry.lastAccess = time.Now().Add(-2 * time.Hour)
	entry.mu.Unlock()

	store.evictIdle(time.Now().Add(-time.Hour))

	_, ok := store.limiters.Load("stale")
	assert.False(t, ok)
	_, ok = store.limiters.Load("fresh")
	assert.True(t, ok)
}
