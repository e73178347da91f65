package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ipForRequest(t *testing.T, remoteAddr string, headers map[string]string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return getClientIP(c)
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	ip := ipForRequest(t, "10.0.0.1:443", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
		"X-Real-IP":       "198.51.100.2",
	})
	assert.Equal(t, "203.0.113.7", ip)
}

func TestGetClientIPFallsBackToRealIP(t *testing.T) {
	ip := ipForRequest(t, "10.0.0.1:443", map[string]string{
		"X-Real-IP": "198.51.100.2",
	})
	assert.Equal(t, "198.51.100.2", ip)
}

func TestGetClientIPStripsPortFromRemoteAddr(t *testing.T) {
	assert.Equal(t, "192.0.2.9", ipForRequest(t, "192.0.2.9:51234", nil))
}
