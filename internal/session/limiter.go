package session

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Limiter is a token bucket per source with automatic cleanup of idle sources.
type Limiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewLimiter allows requestsPerMin per source. A non-positive value disables limiting.
func NewLimiter(requestsPerMin int) *Limiter {
	l := &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			limiterMaxSources,
			nil,
			limiterTTL,
		),
		rate:  rate.Inf,
		burst: 1,
	}
	if requestsPerMin > 0 {
		l.rate = rate.Limit(float64(requestsPerMin) / 60.0) // per second
		l.burst = max(1, requestsPerMin/10)
	}
	return l
}

// Allow consumes one token for key.
func (l *Limiter) Allow(key string) error {
	if !l.bucket(key).Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}

// bucket returns the limiter for key, creating it at most once per key.
func (l *Limiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	return limiter
}

// ExtractIP returns the client IP, preferring proxy headers.
func ExtractIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fallback to RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
