package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimiter_Allow(t *testing.T) {
	t.Parallel()

	l := NewLimiter(3, time.Minute)

	assert.True(t, l.Allow(), "1st call should be allowed")
	assert.True(t, l.Allow(), "2nd call should be allowed")
	assert.True(t, l.Allow(), "3rd call should be allowed")
	assert.False(t, l.Allow(), "4th call should be rejected")
}

func TestLimiter_Allow_ResetsAfterInterval(t *testing.T) {
	t.Parallel()

	l := NewLimiter(1, 50*time.Millisecond)

	assert.True(t, l.Allow())
	assert.False(t, l.Allow())

	time.Sleep(60 * time.Millisecond)

	assert.True(t, l.Allow(), "window should reset after the interval")
}

func TestClientPool_EvictsStaleEntries(t *testing.T) {
	t.Parallel()

	pool := newClientPool(3, time.Minute)
	t0 := time.Now()

	pool.get("10.0.0.1", t0)
	pool.get("10.0.0.2", t0)
	pool.get("10.0.0.3", t0)
	assert.Len(t, pool.limiters, 3)

	// 2ウィンドウ後のアクセスで失効済みエントリが掃除される
	pool.get("10.0.0.4", t0.Add(2*time.Minute))
	assert.Len(t, pool.limiters, 1, "stale per-client entries should be evicted")

	_, ok := pool.limiters["10.0.0.4"]
	assert.True(t, ok, "the active client should survive the sweep")
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/login", Middleware(2, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	doRequest := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, doRequest())
	assert.Equal(t, http.StatusOK, doRequest())
	assert.Equal(t, http.StatusTooManyRequests, doRequest(), "requests over the limit should get 429")
}
