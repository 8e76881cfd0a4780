package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-finance/internal/core/currency"
	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

// CurrencyNotifier announces a saved preference to whoever renders money for that user.
type CurrencyNotifier interface {
	Notify(ctx context.Context, change currency.Change) error
}

type CurrencyService struct {
	store       domain.CurrencyPreferenceStore
	notifier    CurrencyNotifier
	defaultCode string
	logger      *zap.Logger
}

func NewCurrencyService(store domain.CurrencyPreferenceStore, notifier CurrencyNotifier, defaultCode string, logger *zap.Logger) *CurrencyService {
	defaultCode = currency.Normalize(defaultCode)
	if !currency.IsSupported(defaultCode) {
		defaultCode = currency.DefaultCode
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CurrencyService{
		store:       store,
		notifier:    notifier,
		defaultCode: defaultCode,
		logger:      logger,
	}
}

// Get returns the user's saved currency code, or the configured default when none
// was saved.
func (s *CurrencyService) Get(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", domain.ErrUserIDRequired
	}

	code, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferenceNotFound) {
			return s.defaultCode, nil
		}
		return "", fmt.Errorf("currency service: failed to read preference: %w", err)
	}
	return currency.Normalize(code), nil
}

func (s *CurrencyService) Formatter(ctx context.Context, userID string) (currency.Formatter, error) {
	code, err := s.Get(ctx, userID)
	if err != nil {
		return currency.Formatter{}, err
	}
	return currency.NewFormatter(code), nil
}

// Set persists the preference and then notifies listeners. A failed notification is
// logged; the preference stays saved.
func (s *CurrencyService) Set(ctx context.Context, userID, code string) (currency.Change, error) {
	if userID == "" {
		return currency.Change{}, domain.ErrUserIDRequired
	}

	code = currency.Normalize(code)
	if !currency.IsSupported(code) {
		return currency.Change{}, domain.ErrUnsupportedCurrency
	}

	if err := s.store.Save(ctx, userID, code); err != nil {
		return currency.Change{}, fmt.Errorf("currency service: failed to save preference: %w", err)
	}

	change := currency.Change{UserID: userID, Code: code, At: time.Now().UTC()}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, change); err != nil {
			s.logger.Warn("currency change notification failed",
				zap.String("user_id", userID),
				zap.String("code", code),
				zap.Error(err),
			)
		}
	}

	return change, nil
}
