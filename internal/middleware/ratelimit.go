package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/table-reservation/internal/httperr"
)

const (
	limiterIdleTTL = 10 * time.Minute
	sweepInterval  = time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	perSec float64
	burst  int

	mu        sync.Mutex
	ips       map[string]*ipLimiter
	lastSweep time.Time
}

func NewRateLimiter(perSec float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		perSec: perSec,
		burst:  burst,
		ips:    make(map[string]*ipLimiter),
	}
}

func (rl *RateLimiter) get(ip string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= sweepInterval {
		for k, v := range rl.ips {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(rl.ips, k)
			}
		}
		rl.lastSweep = now
	}

	entry, ok := rl.ips[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(rl.perSec), rl.burst)}
		rl.ips[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.perSec <= 0 {
			c.Next()
			return
		}

		if !rl.get(c.ClientIP(), time.Now()).Allow() {
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
