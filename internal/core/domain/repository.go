package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUserIDRequired      = errors.New("user_id is required")
	ErrUnauthorized        = errors.New("resource does not belong to user")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPreferenceNotFound  = errors.New("currency preference not set")
	ErrCacheMiss           = errors.New("cache miss")
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type ProfileRepository interface {
	// GetByUserID returns ErrProfileNotFound when the user never completed onboarding.
	GetByUserID(ctx context.Context, userID string) (*Profile, error)

	// Upsert creates or replaces the profile of profile.UserID.
	Upsert(ctx context.Context, profile *Profile) error
}

type TransactionRepository interface {
	// Create persists a transaction. A named category is created on first use and
	// reused afterwards (matched by exact name per user).
	Create(ctx context.Context, tx *Transaction) error

	GetByID(ctx context.Context, id string) (*Transaction, error)

	// ListByUserID returns the user's transactions ordered by date ascending.
	ListByUserID(ctx context.Context, userID string) ([]Transaction, error)

	// ListByUserIDAndDateRange is ListByUserID limited to [from, to].
	ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]Transaction, error)

	// Delete requires userID so a user can only remove their own records.
	Delete(ctx context.Context, id string, userID string) error
}

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *Challenge) error

	// ListByUserID returns the user's challenges ordered by date ascending.
	ListByUserID(ctx context.Context, userID string) ([]Challenge, error)
}

type CurrencyPreferenceStore interface {
	// Get returns ErrPreferenceNotFound when the user never picked a currency.
	Get(ctx context.Context, userID string) (string, error)
	Save(ctx context.Context, userID, code string) error
}

type InsightsCache interface {
	// Get returns ErrCacheMiss when no snapshot is stored.
	Get(ctx context.Context, userID string) (*InsightsReport, error)
	Set(ctx context.Context, userID string, report *InsightsReport, ttl time.Duration) error
	Invalidate(ctx context.Context, userID string) error
}
