package chi

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// rateLimiter keeps one token bucket per client key.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMinute int) *rateLimiter {
	burst := requestsPerMinute / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}
	rl.mu.Unlock()
	return limiter.Allow()
}

// RateLimitMiddleware caps requests per client. The client key is the API
// key when present, the remote address otherwise. requestsPerMinute <= 0
// disables limiting.
func RateLimitMiddleware(requestsPerMinute int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if requestsPerMinute <= 0 {
			return next
		}
		rl := newRateLimiter(requestsPerMinute)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			if !rl.allow(clientKey(r)) {
				writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return auth
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
