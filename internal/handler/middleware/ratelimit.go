package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"groomer-crm/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

// Limiter decides whether one more request under key fits in the window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// retryHinter is implemented by limiters that know when a rejected caller may
// try again.
type retryHinter interface {
	RetryAfter() time.Duration
}

// RateLimitRecorder counts rejected requests per policy.
type RateLimitRecorder interface {
	IncRateLimited(policy string)
}

var redisFixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter is a fixed-window limiter shared by every API instance.
type RedisLimiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	prefix string
}

func NewRedisLimiter(rdb redis.Scripter, limit int, window time.Duration, prefix string) *RedisLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if prefix == "" {
		prefix = "rl"
	}
	return &RedisLimiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	res, err := redisFixedWindowScript.Run(ctx, l.rdb, []string{l.prefix + ":" + key}, l.window.Milliseconds()).Result()
	if err != nil {
		return false, err
	}

	var count int64
	switch v := res.(type) {
	case int64:
		count = v
	case string:
		if count, err = strconv.ParseInt(v, 10, 64); err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unexpected redis script result type %T", res)
	}
	return count <= int64(l.limit), nil
}

// RetryAfter is the worst case: a full window.
func (l *RedisLimiter) RetryAfter() time.Duration {
	return l.window
}

// LocalLimiter is the in-process fallback when Redis is not configured.
// Each key gets a token bucket refilled at limit per window. A bucket idle for
// a full window is full again, so it is dropped on the next sweep.
type LocalLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	window    time.Duration
	visitors  map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &LocalLimiter{
		limit:     rate.Limit(float64(limit) / window.Seconds()),
		burst:     limit,
		window:    window,
		visitors:  map[string]*visitor{},
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(now)
	}
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1), nil
}

func (l *LocalLimiter) sweep(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.window {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

// RetryAfter is the time to refill one token.
func (l *LocalLimiter) RetryAfter() time.Duration {
	if l.burst <= 0 {
		return l.window
	}
	return l.window / time.Duration(l.burst)
}

// RateLimit rejects requests over the limit with 429. Authenticated routes are
// keyed by owner, everything else by client IP. Limiter errors fail open.
func RateLimit(policy string, limiter Limiter, recorder RateLimitRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := policy + ":" + c.ClientIP()
		if ownerID, ok := GetUserID(c); ok {
			key = policy + ":" + ownerID.String()
		}

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "policy", policy, "error", err)
			c.Next()
			return
		}
		if !allowed {
			if recorder != nil {
				recorder.IncRateLimited(policy)
			}
			if h, ok := limiter.(retryHinter); ok {
				secs := int(math.Ceil(h.RetryAfter().Seconds()))
				c.Header("Retry-After", strconv.Itoa(max(secs, 1)))
			}
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

// RateLimiters holds one limiter per policy. A nil limiter disables the policy.
type RateLimiters struct {
	Auth Limiter
	API  Limiter
}
