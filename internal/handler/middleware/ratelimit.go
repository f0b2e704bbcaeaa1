package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"stay-booking/internal/handler/httperr"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

var errRateLimited = errs.New("rate limit exceeded")

type ThrottleRecorder interface {
	RecordThrottle(reason string)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than limiterIdleTTL are dropped on the next sweep.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	recorder  ThrottleRecorder
	now       func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig, recorder ThrottleRecorder) *RateLimiter {
	return &RateLimiter{
		clients:  make(map[string]*clientLimiter),
		limit:    rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
		recorder: recorder,
		now:      time.Now,
	}
}

func (r *RateLimiter) allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) > limiterIdleTTL {
		for k, cl := range r.clients {
			if now.Sub(cl.lastSeen) > limiterIdleTTL {
				delete(r.clients, k)
			}
		}
		r.lastSweep = now
	}

	cl, ok := r.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.limit <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !r.allow(ip) {
			slog.Warn("rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			if r.recorder != nil {
				r.recorder.RecordThrottle("client_ip")
			}
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Rate limit exceeded, try again later", nil)
			return
		}
		c.Next()
	}
}
