package workers

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-finance/internal/core/currency"
	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

const DefaultQueueSize = 100

type Refresher interface {
	Refresh(ctx context.Context, userID string) error
}

type RefreshJob struct {
	UserID string
}

// InsightsWorker recomputes cached dashboards off the request path. Jobs for a user
// that is already queued are coalesced; when the queue is full new jobs are dropped
// and the next read recomputes on demand.
type InsightsWorker struct {
	refresher Refresher
	jobs      chan RefreshJob
	logger    *zap.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

func NewInsightsWorker(refresher Refresher, queueSize int, logger *zap.Logger) *InsightsWorker {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightsWorker{
		refresher: refresher,
		jobs:      make(chan RefreshJob, queueSize),
		logger:    logger.Named("insights_worker"),
		pending:   make(map[string]struct{}),
	}
}

func (w *InsightsWorker) Start(ctx context.Context) {
	go func() {
		w.logger.Info("insights worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.logger.Info("insights worker shutting down")
				return
			}
		}
	}()
}

func (w *InsightsWorker) Enqueue(userID string) {
	if userID == "" {
		return
	}

	w.mu.Lock()
	if _, queued := w.pending[userID]; queued {
		w.mu.Unlock()
		return
	}
	w.pending[userID] = struct{}{}
	w.mu.Unlock()

	select {
	case w.jobs <- RefreshJob{UserID: userID}:
	default:
		w.done(userID)
		w.logger.Warn("insights worker queue full, dropping job", zap.String("user_id", userID))
	}
}

// WatchCurrency refreshes a user's report whenever their currency changes, until
// ctx ends or changes is closed.
func (w *InsightsWorker) WatchCurrency(ctx context.Context, changes <-chan currency.Change) {
	go func() {
		for {
			select {
			case c, ok := <-changes:
				if !ok {
					return
				}
				w.logger.Debug("currency changed", zap.String("user_id", c.UserID), zap.String("code", c.Code))
				w.Enqueue(c.UserID)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (w *InsightsWorker) processJob(ctx context.Context, job RefreshJob) {
	w.done(job.UserID)

	if err := w.refresher.Refresh(ctx, job.UserID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			w.logger.Debug("skipping refresh before onboarding", zap.String("user_id", job.UserID))
			return
		}
		w.logger.Error("insights refresh failed", zap.String("user_id", job.UserID), zap.Error(err))
		return
	}
	w.logger.Debug("insights refreshed", zap.String("user_id", job.UserID))
}

func (w *InsightsWorker) done(userID string) {
	w.mu.Lock()
	delete(w.pending, userID)
	w.mu.Unlock()
}
