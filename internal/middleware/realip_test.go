package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendFrom(h http.Handler, remoteAddr string, headers map[string]string) int {
	req := httptest.NewRequest(http.MethodPost, "/admin/auth/login", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	h := RealIP(nil)(RateLimit(&memoryCounter{}, "admin_login", 10, 15*time.Minute)(okHandler()))

	limited := 0
	for i := 0; i < 50; i++ {
		code := sendFrom(h, "203.0.113.7:5555", map[string]string{
			"X-Forwarded-For": fmt.Sprintf("198.51.100.%d", i),
			"X-Real-IP":       fmt.Sprintf("192.0.2.%d", i),
		})
		if code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 40, limited)
}

func TestRateLimitBehindTrustedProxyUsesRightmostUntrustedHop(t *testing.T) {
	trusted, err := ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)
	h := RealIP(trusted)(RateLimit(&memoryCounter{}, "book", 2, time.Minute)(okHandler()))

	for i := 0; i < 2; i++ {
		xff := fmt.Sprintf("192.0.2.%d, 198.51.100.9, 10.1.2.3", i)
		assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:443", map[string]string{"X-Forwarded-For": xff}))
	}
	xff := "192.0.2.99, 198.51.100.9, 10.1.2.3"
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(h, "10.0.0.1:443", map[string]string{"X-Forwarded-For": xff}))

	assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:443", map[string]string{"X-Forwarded-For": "198.51.100.10"}))
}

func TestRealIPRewritesRemoteAddr(t *testing.T) {
	trusted, err := ParseTrustedProxies([]string{"10.0.0.1", "2001:db8::/32"})
	require.NoError(t, err)

	var seen string
	h := RealIP(trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ClientIP(r)
	}))

	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"untrusted peer keeps socket address", "203.0.113.7:5555", map[string]string{"X-Forwarded-For": "1.1.1.1"}, "203.0.113.7"},
		{"trusted peer forwarded for", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.4"}, "198.51.100.4"},
		{"trusted peer real ip", "10.0.0.1:80", map[string]string{"X-Real-IP": "198.51.100.5"}, "198.51.100.5"},
		{"trusted peer without headers", "10.0.0.1:80", nil, "10.0.0.1"},
		{"garbage hop stops the walk", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.4, not-an-ip"}, "10.0.0.1"},
		{"ipv6 trusted peer", "[2001:db8::1]:80", map[string]string{"X-Forwarded-For": "198.51.100.6"}, "198.51.100.6"},
		{"other host is untrusted", "10.0.0.2:80", map[string]string{"X-Forwarded-For": "198.51.100.4"}, "10.0.0.2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sendFrom(h, tc.remoteAddr, tc.headers)
			assert.Equal(t, tc.want, seen)
		})
	}
}

func TestParseTrustedProxiesRejectsGarbage(t *testing.T) {
	_, err := ParseTrustedProxies([]string{"10.0.0.0/8", "proxy.local"})
	assert.Error(t, err)

	_, err = ParseTrustedProxies([]string{"10.0.0.0/99"})
	assert.Error(t, err)

	nets, err := ParseTrustedProxies([]string{" ", ""})
	require.NoError(t, err)
	assert.Empty(t, nets)
}
