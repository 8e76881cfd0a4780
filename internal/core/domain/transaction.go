package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransaction     = errors.New("invalid transaction data")
	ErrInvalidTransactionType = errors.New("invalid transaction type (must be income or expense)")
	ErrNegativeAmount         = errors.New("amount cannot be negative")
	ErrInvalidColor           = errors.New("invalid color format (must be #RRGGBB)")
	ErrDescriptionTooLong     = errors.New("description is too long (max 255 chars)")
)

var colorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	DefaultCategoryColor = "#6b7280"
	MaxDescriptionLen    = 255
	MaxCategoryNameLen   = 50
)

type Category struct {
	Name  string `json:"name" db:"name"`
	Color string `json:"color" db:"color"`
}

type Transaction struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Description string    `json:"description" db:"description"`
	Amount      float64   `json:"amount" db:"amount"`
	Type        string    `json:"type" db:"type"`
	Date        time.Time `json:"date" db:"date"`
	Category    *Category `json:"category,omitempty" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func NewTransaction(userID, description string, amount float64, txType string, date time.Time, category *Category) (*Transaction, error) {
	t := &Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Type:        strings.ToLower(strings.TrimSpace(txType)),
		Date:        date.UTC(),
		Category:    normalizeCategory(category),
		CreatedAt:   time.Now().UTC(),
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func normalizeCategory(c *Category) *Category {
	if c == nil {
		return nil
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return nil
	}
	return &Category{Name: name, Color: strings.TrimSpace(c.Color)}
}

func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.UserID) == "" {
		return ErrUserIDRequired
	}
	switch t.Type {
	case TransactionTypeIncome, TransactionTypeExpense:
	default:
		return ErrInvalidTransactionType
	}
	if t.Amount < 0 {
		return ErrNegativeAmount
	}
	if len(t.Description) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if t.Date.IsZero() {
		return ErrInvalidTransaction
	}
	if t.Category != nil {
		if len(t.Category.Name) > MaxCategoryNameLen {
			return ErrInvalidTransaction
		}
		if t.Category.Color != "" && !colorRegex.MatchString(t.Category.Color) {
			return ErrInvalidColor
		}
	}
	return nil
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}
