package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/error/code"
	"realtrust-http-service/internal/error/response"
)

// TokenBucket is a simple token-bucket limiter.
type TokenBucket struct {
	rate       float64 // tokens added per second
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a bucket that starts full.
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow consumes one token if available.
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

var (
	ipLimiters   = make(map[string]*TokenBucket)
	ipLimitersMu sync.RWMutex
)

// IPRateLimiter limits each client IP to rate requests per second with the
// given burst capacity.
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		ipLimitersMu.RLock()
		bucket, ok := ipLimiters[ip]
		ipLimitersMu.RUnlock()

		if !ok {
			ipLimitersMu.Lock()
			bucket, ok = ipLimiters[ip]
			if !ok {
				bucket = NewTokenBucket(rate, burst)
				ipLimiters[ip] = bucket
			}
			ipLimitersMu.Unlock()
		}

		if !bucket.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
