package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/comitanigiacomo/kanso-finance/internal/core/currency"
	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
	"github.com/comitanigiacomo/kanso-finance/internal/core/insights"
)

const invalidateTimeout = 2 * time.Second

type InsightsService struct {
	profiles     domain.ProfileRepository
	transactions domain.TransactionRepository
	challenges   domain.ChallengeRepository
	currencies   *CurrencyService
	cache        domain.InsightsCache
	cacheTTL     time.Duration
	logger       *zap.Logger
	now          func() time.Time

	// generations counts invalidations per user. A report computed under an older
	// generation is returned to its caller but never cached.
	mu          sync.Mutex
	generations map[string]uint64
}

// NewInsightsService wires the dashboard pipeline. cache may be nil, in which case
// every Get recomputes.
func NewInsightsService(
	profiles domain.ProfileRepository,
	transactions domain.TransactionRepository,
	challenges domain.ChallengeRepository,
	currencies *CurrencyService,
	cache domain.InsightsCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *InsightsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightsService{
		profiles:     profiles,
		transactions: transactions,
		challenges:   challenges,
		currencies:   currencies,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
		now:          time.Now,
		generations:  make(map[string]uint64),
	}
}

// Get serves the cached report when present and current, computing and caching it
// otherwise.
func (s *InsightsService) Get(ctx context.Context, userID string) (*domain.InsightsReport, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}

	if s.cache != nil {
		report, err := s.cache.Get(ctx, userID)
		if err == nil && s.isCurrent(ctx, userID, report) {
			return report, nil
		}
		if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("insights cache read failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	return s.Recompute(ctx, userID)
}

// Refresh recomputes the report and replaces the cached copy.
func (s *InsightsService) Refresh(ctx context.Context, userID string) error {
	_, err := s.Recompute(ctx, userID)
	return err
}

// Invalidate drops the cached report so the next Get recomputes. Computations already
// in flight for userID will not store their result.
func (s *InsightsService) Invalidate(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}

	s.mu.Lock()
	s.generations[userID]++
	s.mu.Unlock()

	return s.cache.Invalidate(ctx, userID)
}

func (s *InsightsService) generation(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[userID]
}

// Compute loads the user's profile, transactions, challenges and currency in parallel
// and derives a fresh report. It returns ErrProfileNotFound before onboarding.
func (s *InsightsService) Compute(ctx context.Context, userID string) (*domain.InsightsReport, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}

	var (
		profile    *domain.Profile
		txs        []domain.Transaction
		challenges []domain.Challenge
		formatter  currency.Formatter
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.profiles.GetByUserID(gctx, userID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		list, err := s.transactions.ListByUserID(gctx, userID)
		if err != nil {
			return fmt.Errorf("insights service: failed to list transactions: %w", err)
		}
		txs = list
		return nil
	})
	g.Go(func() error {
		list, err := s.challenges.ListByUserID(gctx, userID)
		if err != nil {
			return fmt.Errorf("insights service: failed to list challenges: %w", err)
		}
		challenges = list
		return nil
	})
	g.Go(func() error {
		f, err := s.currencies.Formatter(gctx, userID)
		if err != nil {
			return err
		}
		formatter = f
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	metrics := insights.Compute(profile, txs, challenges)
	return insights.BuildReport(userID, profile, metrics, formatter, s.now()), nil
}

// Recompute bypasses the cache on read and stores the fresh report.
// A write that invalidates the user while the report is being computed wins: the
// report is still returned, but the cache is left empty for the next reader.
func (s *InsightsService) Recompute(ctx context.Context, userID string) (*domain.InsightsReport, error) {
	started := s.generation(userID)

	report, err := s.Compute(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.store(ctx, userID, report, started)
	}
	return report, nil
}

// store holds mu across the write so an Invalidate either lands after it (and deletes
// the report) or before it (and the generation check skips the write).
func (s *InsightsService) store(ctx context.Context, userID string, report *domain.InsightsReport, started uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generations[userID] != started {
		s.logger.Debug("discarding report computed before a write", zap.String("user_id", userID))
		return
	}
	if err := s.cache.Set(ctx, userID, report, s.cacheTTL); err != nil {
		s.logger.Warn("insights cache write failed", zap.String("user_id", userID), zap.Error(err))
	}
}

// isCurrent rejects cached reports rendered in a currency the user has since left.
func (s *InsightsService) isCurrent(ctx context.Context, userID string, report *domain.InsightsReport) bool {
	code, err := s.currencies.Get(ctx, userID)
	if err != nil {
		return false
	}
	return report.Currency == code
}

// InvalidatingQueue drops a user's cached report before handing the refresh to next,
// so reads after a write never see the old report. next may be nil.
type InvalidatingQueue struct {
	insights *InsightsService
	next     RefreshQueue
}

func NewInvalidatingQueue(insights *InsightsService, next RefreshQueue) *InvalidatingQueue {
	return &InvalidatingQueue{insights: insights, next: next}
}

func (q *InvalidatingQueue) Enqueue(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
	defer cancel()

	if err := q.insights.Invalidate(ctx, userID); err != nil {
		q.insights.logger.Warn("insights cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
	enqueue(q.next, userID)
}
