package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// keyFunc maps a request to the identity its token bucket is keyed by.
type keyFunc func(*gin.Context) string

// KeyByUserOrIP keys buckets by the resolved caller identity when present
// ("userID" in the Gin context) and falls back to the client IP. Prefixes
// keep the two namespaces from colliding.
func KeyByUserOrIP() keyFunc {
	return func(c *gin.Context) string {
		if v, ok := c.Get("userID"); ok {
			if s, ok := v.(string); ok && s != "" {
				return "user:" + s
			}
		}
		return "ip:" + c.ClientIP()
	}
}

// bucket pairs a limiter with its last activity for idle eviction.
type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a process-local token-bucket limiter with one bucket per
// identity. Idle buckets are swept opportunistically during lookups so the
// map stays bounded. Safe for concurrent use. A horizontally scaled
// deployment needs a shared limiter instead; this one guards a single
// process.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn keyFunc

	mu      sync.Mutex
	buckets map[string]*bucket
	idleTTL time.Duration
	lookups uint64
}

// sweepEvery is the lookup count between idle-bucket sweeps.
const sweepEvery = 5000

// NewRateLimiter builds a limiter replenishing rps tokens per second with the
// given burst size (coerced to at least 1). Install it with Handler.
func NewRateLimiter(rps float64, burst int, keyFn keyFunc) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		keyFn:   keyFn,
		buckets: make(map[string]*bucket),
		idleTTL: 10 * time.Minute,
	}
}

// bucketFor returns the limiter for key, creating it on first sight. Every
// sweepEvery lookups it evicts buckets idle for idleTTL or longer; the sweep
// runs before the requested key is touched so a stale bucket for that same
// key can still age out.
func (rl *RateLimiter) bucketFor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= sweepEvery {
		for k, b := range rl.buckets {
			if now.Sub(b.lastSeen) >= rl.idleTTL {
				delete(rl.buckets, k)
			}
		}
		rl.lookups = 0
	}

	if b, ok := rl.buckets[key]; ok {
		b.lastSeen = now
		return b.lim
	}

	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.buckets[key] = &bucket{lim: lim, lastSeen: now}
	return lim
}

// ctxKeyRateBypass marks a request as exempt from rate limiting. Upstream
// middleware sets it for traffic that must never be throttled.
const ctxKeyRateBypass = "rateBypass"

// IsRateBypass reports whether upstream middleware exempted this request
// from rate limiting (e.g., internal health probes).
func IsRateBypass(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyRateBypass)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Handler enforces the per-identity limit. Denied requests get a 429 with
// the standard error envelope and a Retry-After hint; exempt requests pass
// through without consuming tokens.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsRateBypass(c) {
			c.Next()
			return
		}

		if rl.bucketFor(rl.keyFn(c)).Allow() {
			c.Next()
			return
		}

		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get(headerRequestID),
			"code":       "rate_limited",
			"message":    "rate limit exceeded",
		})
	}
}
