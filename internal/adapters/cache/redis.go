package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	clientName    = "kanso-finance"
	pingAttempts  = 3
	pingBackoff   = 500 * time.Millisecond
	pingTimeout   = 2 * time.Second
	defaultPoolSz = 10
)

// Options describes one Redis endpoint. DB selects the logical database so tests and the
// service never share keys.
type Options struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (o Options) addr() string {
	return fmt.Sprintf("%s:%s", o.Host, o.Port)
}

// NewRedisClient connects and pings up to three times before giving up. Snapshots,
// currency preferences, pub/sub and rate limiting all share the returned client.
func NewRedisClient(ctx context.Context, opts Options, logger *zap.Logger) (*redis.Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.addr(),
		Password:     opts.Password,
		DB:           opts.DB,
		ClientName:   clientName,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     defaultPoolSz,
		MinIdleConns: 2,
	})

	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err = rdb.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			return rdb, nil
		}

		logger.Warn("redis ping failed",
			zap.String("addr", opts.addr()),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if attempt < pingAttempts {
			select {
			case <-time.After(pingBackoff * time.Duration(attempt)):
			case <-ctx.Done():
				rdb.Close()
				return nil, ctx.Err()
			}
		}
	}

	rdb.Close()
	return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.addr(), err)
}
