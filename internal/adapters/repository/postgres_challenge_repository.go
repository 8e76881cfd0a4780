package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

type PostgresChallengeRepository struct {
	db *sqlx.DB
}

func NewPostgresChallengeRepository(db *sqlx.DB) *PostgresChallengeRepository {
	return &PostgresChallengeRepository{db: db}
}

func (r *PostgresChallengeRepository) Create(ctx context.Context, c *domain.Challenge) error {
	query := `
		INSERT INTO daily_challenges (id, user_id, prompt, is_good_choice, date, created_at)
		VALUES (:id, :user_id, :prompt, :is_good_choice, :date, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert challenge: %w", err)
	}
	return nil
}

func (r *PostgresChallengeRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Challenge, error) {
	query := `
		SELECT id, user_id, prompt, is_good_choice, date, created_at
		FROM daily_challenges
		WHERE user_id = $1
		ORDER BY date ASC, created_at ASC`

	challenges := []domain.Challenge{}
	if err := r.db.SelectContext(ctx, &challenges, query, userID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return challenges, nil
}
