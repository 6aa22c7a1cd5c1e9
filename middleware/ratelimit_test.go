package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWriteRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// short window of 200ms, at most 2 requests
	router := gin.New()
	router.Use(WriteRateLimit(2, 200*time.Millisecond))
	router.POST("/menu", func(c *gin.Context) {
		c.String(200, "ok")
	})

	doReq := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/menu", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// third request from the same IP gets 429
	w1 := doReq("192.168.1.1")
	w2 := doReq("192.168.1.1")
	w3 := doReq("192.168.1.1")

	assert.Equal(t, 200, w1.Code)
	assert.Equal(t, 200, w2.Code)
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	assert.Contains(t, w3.Body.String(), "Too many requests")

	// other IPs are unaffected
	w4 := doReq("192.168.1.2")
	w5 := doReq("192.168.1.2")
	assert.Equal(t, 200, w4.Code)
	assert.Equal(t, 200, w5.Code)

	// window expiry frees the original IP again
	time.Sleep(250 * time.Millisecond)
	w6 := doReq("192.168.1.1")
	assert.Equal(t, 200, w6.Code)
}
