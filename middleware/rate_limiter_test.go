package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRequestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func TestClientIPFromRemoteAddr(t *testing.T) {
	c := newRequestContext(t)
	c.Request.RemoteAddr = "203.0.113.7:54321"
	assert.Equal(t, "203.0.113.7", clientIP(c))
}

func TestClientIPPrefersRealIPHeader(t *testing.T) {
	c := newRequestContext(t)
	c.Request.RemoteAddr = "10.0.0.1:80"
	c.Request.Header.Set("X-Real-IP", " 198.51.100.4 ")
	assert.Equal(t, "198.51.100.4", clientIP(c))
}

func TestClientIPPrefersForwardedForChain(t *testing.T) {
	c := newRequestContext(t)
	c.Request.RemoteAddr = "10.0.0.1:80"
	c.Request.Header.Set("X-Real-IP", "198.51.100.4")
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.9, 198.51.100.4, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(c))
}

func TestClientIPUnparseableRemoteAddr(t *testing.T) {
	c := newRequestContext(t)
	c.Request.RemoteAddr = "unix-socket"
	assert.Equal(t, "unix-socket", clientIP(c))
}
