package services

import (
	"context"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

type ChallengeService struct {
	repo  domain.ChallengeRepository
	queue RefreshQueue
}

func NewChallengeService(repo domain.ChallengeRepository, queue RefreshQueue) *ChallengeService {
	return &ChallengeService{
		repo:  repo,
		queue: queue,
	}
}

type RecordChallengeInput struct {
	UserID       string
	Prompt       string
	IsGoodChoice bool
	Date         time.Time
}

// Record stores the user's answer to a daily challenge.
func (s *ChallengeService) Record(ctx context.Context, input RecordChallengeInput) (*domain.Challenge, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	challenge, err := domain.NewChallenge(input.UserID, input.Prompt, input.IsGoodChoice, date)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, challenge); err != nil {
		return nil, fmt.Errorf("challenge service: failed to record: %w", err)
	}

	enqueue(s.queue, challenge.UserID)
	return challenge, nil
}

func (s *ChallengeService) List(ctx context.Context, userID string) ([]domain.Challenge, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}
	return s.repo.ListByUserID(ctx, userID)
}
