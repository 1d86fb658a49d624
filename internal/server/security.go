package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/logger"
)

// Abuse detection window and thresholds.
const (
	abuseWindow        = 5 * time.Minute
	maxRequestsPerIP   = 1000
	authFailureAlertAt = 5
)

// abuseMonitor tracks per-IP auth failures and request volume over a fixed
// rolling window. All counters reset together when the window rolls over.
type abuseMonitor struct {
	mu          sync.Mutex
	authFails   map[string]int
	requests    map[string]int
	windowStart time.Time
}

func newAbuseMonitor() *abuseMonitor {
	return &abuseMonitor{
		authFails:   make(map[string]int),
		requests:    make(map[string]int),
		windowStart: time.Now(),
	}
}

// noteAuthFailure counts a failed API-key check and alerts once the IP
// crosses the threshold.
func (m *abuseMonitor) noteAuthFailure(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.authFails[ip]++
	if m.authFails[ip] >= authFailureAlertAt {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", m.authFails[ip])
	}
}

// allow counts a request and reports whether the IP is still under the
// per-window limit. Blocked traffic is logged every hundredth request so a
// flood cannot flood the log too.
func (m *abuseMonitor) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.requests[ip]++
	if m.requests[ip] <= maxRequestsPerIP {
		return true
	}
	if m.requests[ip]%100 == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", m.requests[ip])
	}
	return false
}

// rollWindow resets all counters once the window has elapsed. Caller holds
// the mutex.
func (m *abuseMonitor) rollWindow() {
	if time.Since(m.windowStart) > abuseWindow {
		m.authFails = make(map[string]int)
		m.requests = make(map[string]int)
		m.windowStart = time.Now()
	}
}

// apiKeyAuth rejects requests without the configured API key. Public paths
// (health, metrics, version) pass through. Key comparison is constant time.
func apiKeyAuth(apiKey string, trustedProxies []string, monitor *abuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				monitor.noteAuthFailure(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", ip)
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimit returns 429 once an IP exceeds the per-window request budget.
func rateLimit(trustedProxies []string, monitor *abuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// limitBody caps the request body size.
func limitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// securityHeaders sets the standard browser hardening headers.
func securityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the caller's address. X-Forwarded-For is honored only
// when the direct peer is a trusted proxy, and then the rightmost entry wins
// since that is the hop the proxy vouches for.
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	trusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			trusted = true
			break
		}
	}
	if !trusted {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}
