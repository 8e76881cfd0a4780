package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

type PostgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT user_id, monthly_income, savings_goal, current_balance, total_savings,
		       financial_personality, created_at, updated_at
		FROM profiles
		WHERE user_id = $1`

	var p domain.Profile
	if err := r.db.GetContext(ctx, &p, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("repository: get profile failed: %w", err)
	}
	return &p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO profiles (
			user_id, monthly_income, savings_goal, current_balance, total_savings,
			financial_personality, created_at, updated_at
		) VALUES (
			:user_id, :monthly_income, :savings_goal, :current_balance, :total_savings,
			:financial_personality, :created_at, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			monthly_income        = EXCLUDED.monthly_income,
			savings_goal          = EXCLUDED.savings_goal,
			current_balance       = EXCLUDED.current_balance,
			total_savings         = EXCLUDED.total_savings,
			financial_personality = EXCLUDED.financial_personality,
			updated_at            = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("repository: upsert profile failed: %w", err)
	}
	return nil
}
