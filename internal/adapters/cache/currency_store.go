package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-finance/internal/core/currency"
	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

// CurrencyChangeChannel is the pub/sub channel carrying currency.Change payloads.
const CurrencyChangeChannel = "currencyChange"

func preferenceKey(userID string) string {
	return fmt.Sprintf("%s:%s", currency.StorageKey, userID)
}

// RedisPreferenceStore persists currency preferences without expiry.
type RedisPreferenceStore struct {
	rdb *redis.Client
}

func NewRedisPreferenceStore(rdb *redis.Client) *RedisPreferenceStore {
	return &RedisPreferenceStore{rdb: rdb}
}

func (s *RedisPreferenceStore) Get(ctx context.Context, userID string) (string, error) {
	code, err := s.rdb.Get(ctx, preferenceKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrPreferenceNotFound
		}
		return "", fmt.Errorf("redis: get preference failed: %w", err)
	}
	return code, nil
}

func (s *RedisPreferenceStore) Save(ctx context.Context, userID, code string) error {
	if err := s.rdb.Set(ctx, preferenceKey(userID), code, 0).Err(); err != nil {
		return fmt.Errorf("redis: save preference failed: %w", err)
	}
	return nil
}

// RedisChangeNotifier publishes currency changes so every API instance hears them.
type RedisChangeNotifier struct {
	rdb *redis.Client
}

func NewRedisChangeNotifier(rdb *redis.Client) *RedisChangeNotifier {
	return &RedisChangeNotifier{rdb: rdb}
}

func (n *RedisChangeNotifier) Notify(ctx context.Context, change currency.Change) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, CurrencyChangeChannel, payload).Err()
}

// RelayCurrencyChanges forwards published changes into the local broadcaster until
// ctx ends. It returns once the subscription is confirmed.
func RelayCurrencyChanges(ctx context.Context, rdb *redis.Client, b *currency.Broadcaster, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	sub := rdb.Subscribe(ctx, CurrencyChangeChannel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return fmt.Errorf("redis: subscribe to %s failed: %w", CurrencyChangeChannel, err)
	}

	go func() {
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var change currency.Change
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					logger.Warn("dropping malformed currency change", zap.Error(err))
					continue
				}
				b.Publish(change)
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// InMemoryPreferenceStore is used when Redis is not configured.
type InMemoryPreferenceStore struct {
	mu    sync.RWMutex
	codes map[string]string
}

func NewInMemoryPreferenceStore() *InMemoryPreferenceStore {
	return &InMemoryPreferenceStore{codes: make(map[string]string)}
}

func (s *InMemoryPreferenceStore) Get(ctx context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	code, ok := s.codes[userID]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}
	return code, nil
}

func (s *InMemoryPreferenceStore) Save(ctx context.Context, userID, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[userID] = code
	return nil
}
