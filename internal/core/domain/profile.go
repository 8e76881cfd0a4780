package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidProfile = errors.New("invalid profile data")
)

const (
	PersonalityBalanced = "balanced"
	MaxPersonalityLen   = 50
)

type Profile struct {
	UserID         string    `json:"user_id" db:"user_id"`
	MonthlyIncome  float64   `json:"monthly_income" db:"monthly_income"`
	SavingsGoal    float64   `json:"savings_goal" db:"savings_goal"`
	CurrentBalance float64   `json:"current_balance" db:"current_balance"`
	TotalSavings   float64   `json:"total_savings" db:"total_savings"`
	Personality    string    `json:"financial_personality" db:"financial_personality"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

func NewProfile(userID string, monthlyIncome, savingsGoal, currentBalance, totalSavings float64, personality string) (*Profile, error) {
	now := time.Now().UTC()

	p := &Profile{
		UserID:         userID,
		MonthlyIncome:  monthlyIncome,
		SavingsGoal:    savingsGoal,
		CurrentBalance: currentBalance,
		TotalSavings:   totalSavings,
		Personality:    strings.TrimSpace(personality),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if p.Personality == "" {
		p.Personality = PersonalityBalanced
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate rejects negative income, goal and savings figures. CurrentBalance may be
// negative (overdraft).
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.UserID) == "" {
		return ErrUserIDRequired
	}
	if p.MonthlyIncome < 0 || p.SavingsGoal < 0 || p.TotalSavings < 0 {
		return ErrInvalidProfile
	}
	if len(p.Personality) > MaxPersonalityLen {
		return ErrInvalidProfile
	}
	return nil
}

// HasGoal reports whether a savings target is set.
func (p *Profile) HasGoal() bool {
	return p != nil && p.SavingsGoal > 0
}
