package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	t.Run("Should default personality", func(t *testing.T) {
		p, err := NewProfile("user-1", 3000, 500, -20, 100, "  ")

		require.NoError(t, err)
		assert.Equal(t, PersonalityBalanced, p.Personality)
		assert.Equal(t, -20.0, p.CurrentBalance, "Negative balance is an overdraft, not an error")
		assert.True(t, p.HasGoal())
	})

	t.Run("Should reject negative income or goal", func(t *testing.T) {
		_, err := NewProfile("user-1", -1, 0, 0, 0, "saver")
		assert.ErrorIs(t, err, ErrInvalidProfile)

		_, err = NewProfile("user-1", 0, -5, 0, 0, "saver")
		assert.ErrorIs(t, err, ErrInvalidProfile)
	})

	t.Run("Should reject long personality", func(t *testing.T) {
		_, err := NewProfile("user-1", 0, 0, 0, 0, strings.Repeat("x", MaxPersonalityLen+1))
		assert.ErrorIs(t, err, ErrInvalidProfile)
	})

	t.Run("HasGoal is false for nil and zero goal", func(t *testing.T) {
		var nilProfile *Profile
		assert.False(t, nilProfile.HasGoal())
		assert.False(t, (&Profile{SavingsGoal: 0}).HasGoal())
	})
}

func TestHealthTier(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{100, TierThriving},
		{70, TierThriving},
		{69, TierGrowing},
		{40, TierGrowing},
		{39, TierNeedsCare},
		{0, TierNeedsCare},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HealthTier(tt.value), "value %d", tt.value)
	}
}
