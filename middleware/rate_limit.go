package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Contak-cpu/inmob-sub001/pkg/logger"
)

// RateLimiter counts requests per client over a fixed window. Generation
// endpoints render and archive documents on every call, so each client gets a
// per-window budget instead of trusting callers to throttle themselves.
type RateLimiter struct {
	mu       sync.Mutex
	counts   map[string]int
	windowAt time.Time
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counts:   make(map[string]int),
		windowAt: time.Now(),
		limit:    limit,
		window:   window,
	}
}

// Allow records one request for the client and reports whether it still fits
// within the current window's budget.
func (l *RateLimiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.windowAt) > l.window {
		l.counts = make(map[string]int)
		l.windowAt = time.Now()
	}

	if l.counts[client] >= l.limit {
		return false
	}
	l.counts[client]++
	return true
}

// RateLimit limits requests per client IP. The limit comes from server
// configuration alongside the port.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(limit, window)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !limiter.Allow(clientIP) {
			attrs := []any{"client_ip", clientIP}
			if office := GetOffice(c); office != "" {
				attrs = append(attrs, "office", office)
			}
			logger.Warn(c.Request.Context(), "rate limit exceeded", attrs...)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
