package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

type TransactionService struct {
	repo  domain.TransactionRepository
	queue RefreshQueue
}

func NewTransactionService(repo domain.TransactionRepository, queue RefreshQueue) *TransactionService {
	return &TransactionService{
		repo:  repo,
		queue: queue,
	}
}

type CreateTransactionInput struct {
	UserID        string
	Description   string
	Amount        float64
	Type          string
	Date          time.Time
	CategoryName  string
	CategoryColor string
}

// ListTransactionsInput filters by date when both From and To are set.
type ListTransactionsInput struct {
	UserID string
	From   time.Time
	To     time.Time
}

func (s *TransactionService) Create(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	var category *domain.Category
	if input.CategoryName != "" {
		category = &domain.Category{Name: input.CategoryName, Color: input.CategoryColor}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx, err := domain.NewTransaction(input.UserID, input.Description, input.Amount, input.Type, date, category)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("transaction service: failed to create: %w", err)
	}

	enqueue(s.queue, tx.UserID)
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context, input ListTransactionsInput) ([]domain.Transaction, error) {
	if input.UserID == "" {
		return nil, domain.ErrUserIDRequired
	}

	if !input.From.IsZero() && !input.To.IsZero() {
		if input.To.Before(input.From) {
			return nil, fmt.Errorf("%w: 'to' is before 'from'", domain.ErrInvalidTransaction)
		}
		return s.repo.ListByUserIDAndDateRange(ctx, input.UserID, input.From.UTC(), input.To.UTC())
	}

	return s.repo.ListByUserID(ctx, input.UserID)
}

func (s *TransactionService) Delete(ctx context.Context, id string, userID string) error {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if tx.UserID != userID {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return err
		}
		return fmt.Errorf("transaction service: failed to delete: %w", err)
	}

	enqueue(s.queue, userID)
	return nil
}
