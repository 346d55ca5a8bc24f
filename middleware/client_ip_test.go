package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestContext(t *testing.T, headers map[string]string, remoteAddr string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	c.Request = req
	return c
}

func TestClientIPPrefersForwardedForChain(t *testing.T) {
	c := requestContext(t, map[string]string{
		"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1",
		"X-Real-IP":       "198.51.100.2",
	}, "10.0.0.1:4444")

	if got := clientIP(c); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded address, got %q", got)
	}
}

func TestClientIPFallsBackToRealIP(t *testing.T) {
	c := requestContext(t, map[string]string{
		"X-Real-IP": "198.51.100.2",
	}, "10.0.0.1:4444")

	if got := clientIP(c); got != "198.51.100.2" {
		t.Fatalf("expected X-Real-IP address, got %q", got)
	}
}

func TestClientIPStripsPortFromRemoteAddr(t *testing.T) {
	c := requestContext(t, nil, "192.0.2.9:5555")

	if got := clientIP(c); got != "192.0.2.9" {
		t.Fatalf("expected bare host, got %q", got)
	}
}
