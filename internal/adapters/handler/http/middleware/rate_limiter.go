package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateLimitKeyPrefix = "kanso_finance:ratelimit:"

// Paths the limiter never counts. Probes hit /health far more often than any client.
var rateLimitExempt = map[string]struct{}{
	"/health": {},
}

type windowState struct {
	count int64
	ttl   time.Duration
}

// RateLimiterMiddleware allows limit requests per client IP in each fixed window.
// The counter and its expiry are written in one MULTI so a crash between the two can
// never leave an immortal key. Any Redis failure lets the request through.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("rate_limiter")

	return func(c *gin.Context) {
		if _, skip := rateLimitExempt[c.FullPath()]; skip {
			c.Next()
			return
		}

		state, err := hit(c, rdb, rateLimitKeyPrefix+c.ClientIP(), window)
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}

		remaining := int64(limit) - state.count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(state.ttl).Unix(), 10))

		if state.count > int64(limit) {
			logger.Debug("client throttled", zap.String("ip", c.ClientIP()), zap.Int64("count", state.count))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many requests",
				"retry_in_s": int(state.ttl.Seconds()),
			})
			return
		}

		c.Next()
	}
}

func hit(c *gin.Context, rdb *redis.Client, key string, window time.Duration) (windowState, error) {
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)

	_, err := rdb.TxPipelined(c.Request.Context(), func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(c.Request.Context(), key)
		pipe.ExpireNX(c.Request.Context(), key, window)
		ttl = pipe.TTL(c.Request.Context(), key)
		return nil
	})
	if err != nil {
		return windowState{}, err
	}

	state := windowState{count: incr.Val(), ttl: ttl.Val()}
	if state.ttl < 0 {
		state.ttl = window
	}
	return state, nil
}
