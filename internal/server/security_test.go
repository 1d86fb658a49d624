package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyAuth(t *testing.T) {
	handler := apiKeyAuth("secret-key", nil, newAbuseMonitor())(okHandler())

	tests := []struct {
		name       string
		key        string
		path       string
		wantStatus int
	}{
		{"valid key", "secret-key", "/api/v1/character", http.StatusOK},
		{"wrong key", "wrong-key", "/api/v1/character", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/character", http.StatusUnauthorized},
		{"healthz is public", "", "/healthz", http.StatusOK},
		{"metrics is public", "", "/metrics", http.StatusOK},
		{"version is public", "", "/version", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRateLimitBlocksFloodingIP(t *testing.T) {
	monitor := newAbuseMonitor()
	handler := rateLimit(nil, monitor)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/character", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < maxRequestsPerIP; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different IP is unaffected
	other := httptest.NewRequest(http.MethodGet, "/api/v1/character", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	handler := securityHeaders()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestClientIPTrustsOnlyConfiguredProxies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:443"
	req.Header.Set(HeaderForwardedFor, "203.0.113.7, 10.0.0.5")

	// Untrusted peer: header ignored
	assert.Equal(t, "10.0.0.5", clientIP(req, nil))

	// Trusted proxy: rightmost forwarded hop wins
	assert.Equal(t, "10.0.0.5", clientIP(req, []string{"10.0.0.5"}))

	req.Header.Set(HeaderForwardedFor, "203.0.113.7")
	assert.Equal(t, "203.0.113.7", clientIP(req, []string{"10.0.0.5"}))
}

func TestLoggingMiddlewareRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/character", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
}
