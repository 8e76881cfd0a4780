package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidChallenge = errors.New("invalid daily challenge data")
)

// Challenge is one answered daily money-habit prompt.
type Challenge struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Prompt       string    `json:"prompt,omitempty" db:"prompt"`
	IsGoodChoice bool      `json:"is_good_choice" db:"is_good_choice"`
	Date         time.Time `json:"date" db:"date"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func NewChallenge(userID, prompt string, isGoodChoice bool, date time.Time) (*Challenge, error) {
	c := &Challenge{
		ID:           uuid.NewString(),
		UserID:       userID,
		Prompt:       strings.TrimSpace(prompt),
		IsGoodChoice: isGoodChoice,
		Date:         date.UTC(),
		CreatedAt:    time.Now().UTC(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Challenge) Validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return ErrUserIDRequired
	}
	if c.Date.IsZero() {
		return ErrInvalidChallenge
	}
	if len(c.Prompt) > MaxDescriptionLen {
		return ErrInvalidChallenge
	}
	return nil
}
