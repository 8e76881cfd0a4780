package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

var _ domain.TransactionRepository = (*CachedTransactionRepository)(nil)

const defaultTransactionCacheTTL = 30 * time.Minute

// CachedTransactionRepository keeps each user's full transaction list in Redis.
// Writes go straight to the wrapped repository and drop the cached list.
type CachedTransactionRepository struct {
	next   domain.TransactionRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedTransactionRepository(next domain.TransactionRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedTransactionRepository {
	if ttl <= 0 {
		ttl = defaultTransactionCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedTransactionRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("transaction_cache"),
	}
}

func (r *CachedTransactionRepository) cacheKey(userID string) string {
	return fmt.Sprintf("transactions:%s", userID)
}

func (r *CachedTransactionRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		r.logger.Warn("failed to invalidate", zap.String("user_id", userID), zap.Error(err))
	}
}

func (r *CachedTransactionRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var txs []domain.Transaction
		if err := json.Unmarshal([]byte(val), &txs); err == nil {
			return txs, nil
		}

		r.logger.Warn("corrupted cache entry, cleaning up", zap.String("user_id", userID))
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("redis read error", zap.Error(err))
	}

	txs, err := r.next.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(txs); err == nil {
		if setErr := r.cache.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			r.logger.Warn("redis set error", zap.Error(setErr))
		}
	}

	return txs, nil
}

func (r *CachedTransactionRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	return r.next.ListByUserIDAndDateRange(ctx, userID, from, to)
}

func (r *CachedTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	if err := r.next.Create(ctx, tx); err != nil {
		return err
	}
	r.invalidate(ctx, tx.UserID)
	return nil
}

func (r *CachedTransactionRepository) Delete(ctx context.Context, id string, userID string) error {
	if err := r.next.Delete(ctx, id, userID); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}
