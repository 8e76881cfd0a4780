package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

type ProfileService struct {
	repo  domain.ProfileRepository
	queue RefreshQueue
}

func NewProfileService(repo domain.ProfileRepository, queue RefreshQueue) *ProfileService {
	return &ProfileService{
		repo:  repo,
		queue: queue,
	}
}

type UpsertProfileInput struct {
	UserID         string
	MonthlyIncome  float64
	SavingsGoal    float64
	CurrentBalance float64
	TotalSavings   float64
	Personality    string
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}
	return s.repo.GetByUserID(ctx, userID)
}

// Upsert saves the onboarding answers. CreatedAt survives later edits.
func (s *ProfileService) Upsert(ctx context.Context, input UpsertProfileInput) (*domain.Profile, error) {
	profile, err := domain.NewProfile(input.UserID, input.MonthlyIncome, input.SavingsGoal, input.CurrentBalance, input.TotalSavings, input.Personality)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUserID(ctx, input.UserID)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
	case !errors.Is(err, domain.ErrProfileNotFound):
		return nil, fmt.Errorf("profile service: failed to load profile: %w", err)
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("profile service: failed to save profile: %w", err)
	}

	enqueue(s.queue, profile.UserID)
	return profile, nil
}
