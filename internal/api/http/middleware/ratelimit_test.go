package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BurstThenDeny(t *testing.T) {
	rl := NewRateLimiter(0.0001, 2)
	defer rl.Stop()
	r := newLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, get(r))
	assert.Equal(t, http.StatusOK, get(r))
	assert.Equal(t, http.StatusTooManyRequests, get(r))
}

func TestRateLimiter_SeparateClients(t *testing.T) {
	rl := NewRateLimiter(0.0001, 1)
	defer rl.Stop()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Key by a header instead of the client IP so the test can fake two clients.
	r.GET("/ping", func(c *gin.Context) {
		c.Set("firebase_uid", c.GetHeader("X-Test-Uid"))
	}, rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func(uid string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Test-Uid", uid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("alice"))
	assert.Equal(t, http.StatusTooManyRequests, call("alice"))
	assert.Equal(t, http.StatusOK, call("bob"), "a second client has its own bucket")
	assert.Equal(t, 2, rl.Size())
}
