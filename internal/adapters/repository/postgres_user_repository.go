package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

const queryTimeout = 3 * time.Second

const (
	userColumns = `id, email, password_hash, created_at, updated_at`

	// Default name Postgres gives the UNIQUE (email) constraint in the init migration.
	usersEmailConstraint = "users_email_key"
)

var errUserIDTaken = errors.New("repository: user id already taken")

// PostgresUserRepository stores account owners. Every ledger, profile and challenge
// row hangs off users.id with ON DELETE CASCADE.
type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts the account and copies the database-assigned timestamps back onto user.
func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.NamedQueryContext(ctx, `
		INSERT INTO users (id, email, password_hash)
		VALUES (:id, :email, :password_hash)
		RETURNING created_at, updated_at`, user)
	if err != nil {
		return mapUserInsertError(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return mapUserInsertError(err)
		}
		return fmt.Errorf("repository: create user returned no row")
	}
	if err := rows.Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		return fmt.Errorf("repository: create user scan failed: %w", err)
	}
	return rows.Err()
}

func mapUserInsertError(err error) error {
	if isUniqueViolation(err) {
		if pgConstraint(err) == usersEmailConstraint {
			return domain.ErrEmailAlreadyExists
		}
		return errUserIDTaken
	}
	return fmt.Errorf("repository: create user failed: %w", err)
}

// GetByEmail looks the address up in its canonical form, so " Saver@Kanso.app" finds
// the account registered as "saver@kanso.app".
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, domain.ErrUserNotFound
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByID also backs session validation, so a deleted account stops authenticating.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrUserNotFound
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user failed: %w", err)
	}

	return &user, nil
}
