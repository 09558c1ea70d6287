package server

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// visitorLimiter holds one token bucket per client address for the whole
// process lifetime.
type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newVisitorLimiter(rps float64, burst int) *visitorLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &visitorLimiter{
		visitors: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *visitorLimiter) allow(key string) bool {
	l.mu.Lock()
	limiter, ok := l.visitors[key]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.visitors[key] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}

// middleware rejects over-limit clients with 429. A nil limiter passes
// everything through.
func (l *visitorLimiter) middleware(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !l.allow(host) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
