package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

// The in-memory repositories back local runs without Postgres and the HTTP tests.
// They hand out copies so callers cannot mutate stored state.

type InMemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

type InMemoryProfileRepository struct {
	mu    sync.RWMutex
	store map[string]domain.Profile
}

func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{store: make(map[string]domain.Profile)}
}

func (r *InMemoryProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (r *InMemoryProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.store[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	}
	r.store[profile.UserID] = *profile
	return nil
}

type InMemoryTransactionRepository struct {
	mu         sync.RWMutex
	store      map[string]domain.Transaction
	categories map[string]map[string]string // user -> name -> color
}

func NewInMemoryTransactionRepository() *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{
		store:      make(map[string]domain.Transaction),
		categories: make(map[string]map[string]string),
	}
}

func (r *InMemoryTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *tx
	if tx.Category != nil {
		byName, ok := r.categories[tx.UserID]
		if !ok {
			byName = make(map[string]string)
			r.categories[tx.UserID] = byName
		}
		color, known := byName[tx.Category.Name]
		if !known {
			color = tx.Category.Color
			byName[tx.Category.Name] = color
		}
		tx.Category.Color = color
		stored.Category = &domain.Category{Name: tx.Category.Name, Color: color}
	}

	r.store[tx.ID] = stored
	return nil
}

func (r *InMemoryTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.store[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	out := copyTransaction(tx)
	return &out, nil
}

func (r *InMemoryTransactionRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return r.filter(func(tx domain.Transaction) bool { return tx.UserID == userID }), nil
}

func (r *InMemoryTransactionRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	return r.filter(func(tx domain.Transaction) bool {
		return tx.UserID == userID && !tx.Date.Before(from) && !tx.Date.After(to)
	}), nil
}

func (r *InMemoryTransactionRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, ok := r.store[id]
	if !ok || tx.UserID != userID {
		return domain.ErrTransactionNotFound
	}
	delete(r.store, id)
	return nil
}

func (r *InMemoryTransactionRepository) filter(keep func(domain.Transaction) bool) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txs := []domain.Transaction{}
	for _, tx := range r.store {
		if keep(tx) {
			txs = append(txs, copyTransaction(tx))
		}
	}

	sort.Slice(txs, func(i, j int) bool {
		if txs[i].Date.Equal(txs[j].Date) {
			return txs[i].CreatedAt.Before(txs[j].CreatedAt)
		}
		return txs[i].Date.Before(txs[j].Date)
	})
	return txs
}

func copyTransaction(tx domain.Transaction) domain.Transaction {
	if tx.Category != nil {
		c := *tx.Category
		tx.Category = &c
	}
	return tx
}

type InMemoryChallengeRepository struct {
	mu    sync.RWMutex
	store []domain.Challenge
}

func NewInMemoryChallengeRepository() *InMemoryChallengeRepository {
	return &InMemoryChallengeRepository{}
}

func (r *InMemoryChallengeRepository) Create(ctx context.Context, c *domain.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = append(r.store, *c)
	return nil
}

func (r *InMemoryChallengeRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Challenge{}
	for _, c := range r.store {
		if c.UserID == userID {
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
