package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter is a fixed-window, per-client-IP rate limiter for the public
// booking endpoints. State is in-process only.
type Limiter struct {
	limit    int
	window   time.Duration
	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	count     int
	resetTime time.Time
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		window:   window,
		visitors: map[string]*visitor{},
	}
}

// Middleware rejects requests above the configured rate with 429.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

func (l *Limiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v := l.visitors[key]
	if v == nil || now.After(v.resetTime) {
		l.visitors[key] = &visitor{
			count:     1,
			resetTime: now.Add(l.window),
		}
		return true
	}

	if v.count >= l.limit {
		return false
	}
	v.count++
	return true
}
