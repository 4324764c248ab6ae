package server

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DropsMiner_Go/internal/metrics"
)

// rateWindow counts requests from one client in the current window
type rateWindow struct {
	start time.Time
	count int
}

// RateLimiter enforces a fixed per-minute request budget per client address.
// Idle clients age out of the LRU after one window.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients *expirable.LRU[string, *rateWindow]
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per minute per client
func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  rateLimitWindow,
		clients: expirable.NewLRU[string, *rateWindow](rateLimitMaxClients, nil, rateLimitWindow),
		now:     time.Now,
	}
}

// Allow records a request from ip and reports whether it is within budget.
// The second value is the time left until the client's window resets.
func (l *RateLimiter) Allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.clients.Get(ip)
	if !ok || now.Sub(w.start) >= l.window {
		w = &rateWindow{start: now}
		l.clients.Add(ip, w)
	}
	w.count++

	if w.count <= l.limit {
		return true, 0
	}

	if (w.count-l.limit)%highRateLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.count)
	}
	return false, l.window - now.Sub(w.start)
}

// RateLimitMiddleware rejects clients that exceed the limiter's budget with 429
func RateLimitMiddleware(limiter *RateLimiter, trustedProxies []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			allowed, retryAfter := limiter.Allow(ip)
			if !allowed {
				metrics.HTTPRateLimited.Inc()
				seconds := int(retryAfter.Round(time.Second) / time.Second)
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(seconds))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop that connected to the trusted proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME sniffing
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			// Prevent clickjacking
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
