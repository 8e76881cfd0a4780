package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

type PostgresTransactionRepository struct {
	db *sqlx.DB
}

func NewPostgresTransactionRepository(db *sqlx.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

// transactionRow is a transaction joined with its optional category.
type transactionRow struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	Description   string         `db:"description"`
	Amount        float64        `db:"amount"`
	Type          string         `db:"type"`
	Date          time.Time      `db:"date"`
	CreatedAt     time.Time      `db:"created_at"`
	CategoryName  sql.NullString `db:"category_name"`
	CategoryColor sql.NullString `db:"category_color"`
}

func (row transactionRow) toDomain() domain.Transaction {
	tx := domain.Transaction{
		ID:          row.ID,
		UserID:      row.UserID,
		Description: row.Description,
		Amount:      row.Amount,
		Type:        row.Type,
		Date:        row.Date.UTC(),
		CreatedAt:   row.CreatedAt,
	}
	if row.CategoryName.Valid {
		tx.Category = &domain.Category{Name: row.CategoryName.String, Color: row.CategoryColor.String}
	}
	return tx
}

const selectTransactions = `
	SELECT t.id, t.user_id, t.description, t.amount, t.type, t.date, t.created_at,
	       c.name AS category_name, c.color AS category_color
	FROM transactions t
	LEFT JOIN categories c ON c.id = t.category_id`

// Create inserts the transaction and, when named, its category in one database
// transaction. An existing category keeps its original color.
func (r *PostgresTransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	var categoryID sql.NullString
	if t.Category != nil {
		var stored struct {
			ID    string `db:"id"`
			Color string `db:"color"`
		}
		upsert := `
			INSERT INTO categories (id, user_id, name, color)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id, color`

		if err := dbTx.GetContext(ctx, &stored, upsert, uuid.NewString(), t.UserID, t.Category.Name, t.Category.Color); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to upsert category: %w", err)
		}
		categoryID = sql.NullString{String: stored.ID, Valid: true}
		t.Category.Color = stored.Color
	}

	insert := `
		INSERT INTO transactions (id, user_id, category_id, description, amount, type, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := dbTx.ExecContext(ctx, insert,
		t.ID, t.UserID, categoryID, t.Description, t.Amount, t.Type, t.Date, t.CreatedAt,
	); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return dbTx.Commit()
}

func (r *PostgresTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var row transactionRow
	if err := r.db.GetContext(ctx, &row, selectTransactions+` WHERE t.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	tx := row.toDomain()
	return &tx, nil
}

func (r *PostgresTransactionRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return r.list(ctx, selectTransactions+`
		WHERE t.user_id = $1
		ORDER BY t.date ASC, t.created_at ASC`, userID)
}

func (r *PostgresTransactionRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	return r.list(ctx, selectTransactions+`
		WHERE t.user_id = $1 AND t.date >= $2 AND t.date <= $3
		ORDER BY t.date ASC, t.created_at ASC`, userID, from, to)
}

func (r *PostgresTransactionRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	var rows []transactionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, row.toDomain())
	}
	return txs, nil
}

func (r *PostgresTransactionRepository) Delete(ctx context.Context, id string, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
