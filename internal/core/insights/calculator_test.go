package insights

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

var day = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

func income(amount float64) domain.Transaction {
	return domain.Transaction{ID: "in", Type: domain.TransactionTypeIncome, Amount: amount, Date: day}
}

func expense(amount float64, category ...string) domain.Transaction {
	t := domain.Transaction{ID: "out", Type: domain.TransactionTypeExpense, Amount: amount, Date: day}
	if len(category) > 0 {
		t.Category = &domain.Category{Name: category[0]}
		if len(category) > 1 {
			t.Category.Color = category[1]
		}
	}
	return t
}

func choices(good, bad int) []domain.Challenge {
	list := make([]domain.Challenge, 0, good+bad)
	for i := 0; i < good; i++ {
		list = append(list, domain.Challenge{IsGoodChoice: true, Date: day})
	}
	for i := 0; i < bad; i++ {
		list = append(list, domain.Challenge{IsGoodChoice: false, Date: day})
	}
	return list
}

func tipKinds(tips []domain.GardenTip) []string {
	kinds := make([]string, 0, len(tips))
	for _, t := range tips {
		kinds = append(kinds, t.Kind)
	}
	return kinds
}

func TestCompute_ReferenceCases(t *testing.T) {
	t.Run("Income only saves everything", func(t *testing.T) {
		m := Compute(nil, []domain.Transaction{income(1000)}, nil)

		assert.Equal(t, 1000.0, m.TotalIncome)
		assert.Equal(t, 0.0, m.TotalExpenses)
		assert.Equal(t, 1000.0, m.NetSavings)
		assert.Equal(t, 100.0, m.SavingsRate)
		assert.Equal(t, 80.0, m.TrunkHealth)
		assert.Equal(t, 100.0, m.GrowthLevel)
	})

	t.Run("Empty inputs use neutral defaults", func(t *testing.T) {
		m := Compute(nil, nil, nil)

		assert.Equal(t, 50.0, m.ChallengeScore)
		assert.Equal(t, 50.0, m.RootsHealth)
		assert.Equal(t, 80.0, m.TrunkHealth)
		assert.Equal(t, 0.0, m.SavingsRate)
		assert.Equal(t, 30.0, m.GrowthLevel)
		assert.Equal(t, 0.0, m.GoalProgress)
		assert.Equal(t, 0, m.FruitsCount)
		assert.Equal(t, 0, m.PestsCount)
		assert.Equal(t, 53, m.OverallHealth)
		assert.NotNil(t, m.CategoryBreakdown)
		assert.Empty(t, m.CategoryBreakdown)
		assert.Equal(t, []string{domain.TipKindRoots, domain.TipKindGrowth}, tipKinds(m.GardenTips))
	})

	t.Run("Three of four good choices", func(t *testing.T) {
		m := Compute(nil, nil, choices(3, 1))

		assert.Equal(t, 75.0, m.ChallengeScore)
		assert.Equal(t, 75.0, m.RootsHealth)
		assert.Equal(t, domain.TierThriving, domain.HealthTier(int(m.RootsHealth)))
		assert.NotContains(t, tipKinds(m.GardenTips), domain.TipKindRoots)
	})

	t.Run("Savings beyond the goal clamp at 100", func(t *testing.T) {
		profile := &domain.Profile{SavingsGoal: 500, TotalSavings: 1000}

		m := Compute(profile, nil, nil)

		assert.Equal(t, 100.0, m.GoalProgress)
		assert.Equal(t, 5, m.FruitsCount)
	})

	t.Run("Pest tip needs more than two pests", func(t *testing.T) {
		five := Compute(nil, nil, choices(0, 5))
		assert.Equal(t, 2, five.PestsCount)
		assert.NotContains(t, tipKinds(five.GardenTips), domain.TipKindPests)

		six := Compute(nil, nil, choices(0, 6))
		assert.Equal(t, 3, six.PestsCount)
		assert.Contains(t, tipKinds(six.GardenTips), domain.TipKindPests)
	})
}

func TestCompute_Totals(t *testing.T) {
	txs := []domain.Transaction{
		income(1200),
		income(300),
		expense(100, "Food"),
		expense(50),
		{Type: "transfer", Amount: 999},
	}

	m := Compute(nil, txs, nil)

	assert.Equal(t, 1500.0, m.TotalIncome)
	assert.Equal(t, 150.0, m.TotalExpenses)
	assert.Equal(t, 1350.0, m.NetSavings)
	assert.InDelta(t, 90.0, m.SavingsRate, 1e-9)
}

func TestCompute_SavingsRateZeroWithoutIncome(t *testing.T) {
	m := Compute(nil, []domain.Transaction{expense(500)}, nil)

	assert.Equal(t, 0.0, m.SavingsRate)
	assert.Equal(t, -500.0, m.NetSavings)
	assert.Equal(t, 30.0, m.GrowthLevel)
}

func TestCompute_ChallengeScore(t *testing.T) {
	assert.Equal(t, 100.0, Compute(nil, nil, choices(4, 0)).ChallengeScore)
	assert.Equal(t, 0.0, Compute(nil, nil, choices(0, 4)).ChallengeScore)

	m := Compute(nil, nil, choices(1, 2))
	assert.Equal(t, 3, m.TotalChallenges)
	assert.Equal(t, 1, m.GoodChoices)
	assert.Equal(t, 2, m.BadChoices)
}

func TestCompute_TrunkHealth(t *testing.T) {
	tests := []struct {
		name string
		txs  []domain.Transaction
		want float64
	}{
		{"No expenses", []domain.Transaction{income(100)}, 80},
		{"Half of income spent", []domain.Transaction{income(1000), expense(500)}, 60},
		{"Spending above income floors at 20", []domain.Transaction{income(100), expense(1000)}, 20},
		{"Zero income uses a denominator of one", []domain.Transaction{expense(0.1)}, 92},
		{"Zero income and big spend floors at 20", []domain.Transaction{expense(1e12)}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Compute(nil, tt.txs, nil).TrunkHealth, 1e-9)
		})
	}
}

func TestCompute_GoalProgress(t *testing.T) {
	t.Run("No profile means no progress", func(t *testing.T) {
		assert.Equal(t, 0.0, Compute(nil, []domain.Transaction{income(100)}, nil).GoalProgress)
	})

	t.Run("Zero goal means no progress", func(t *testing.T) {
		p := &domain.Profile{SavingsGoal: 0, TotalSavings: 300}
		assert.Equal(t, 0.0, Compute(p, nil, nil).GoalProgress)
	})

	t.Run("Falls back to net savings when total savings is zero", func(t *testing.T) {
		p := &domain.Profile{SavingsGoal: 1000}
		m := Compute(p, []domain.Transaction{income(500), expense(100)}, nil)

		assert.Equal(t, 40.0, m.GoalProgress)
		assert.Equal(t, 2, m.FruitsCount)
	})

	t.Run("Negative net savings clamps to zero", func(t *testing.T) {
		p := &domain.Profile{SavingsGoal: 1000}
		m := Compute(p, []domain.Transaction{expense(100)}, nil)

		assert.Equal(t, 0.0, m.GoalProgress)
		assert.Equal(t, 0, m.FruitsCount)
	})

	t.Run("Fruits step every twenty percent", func(t *testing.T) {
		p := &domain.Profile{SavingsGoal: 100, TotalSavings: 59.9}
		assert.Equal(t, 2, Compute(p, nil, nil).FruitsCount)
	})
}

func TestCompute_PestsCap(t *testing.T) {
	assert.Equal(t, 0, Compute(nil, nil, choices(10, 1)).PestsCount)
	assert.Equal(t, 4, Compute(nil, nil, choices(0, 8)).PestsCount)
	assert.Equal(t, 4, Compute(nil, nil, choices(0, 100)).PestsCount)
}

func TestCompute_CategoryBreakdown(t *testing.T) {
	txs := []domain.Transaction{
		expense(20, "Fun", "#00ff00"),
		expense(50, "Food", "#ff0000"),
		expense(30, "Food", "#0000ff"),
		expense(20, "Travel"),
		expense(40),
		expense(5, "food", "#123456"),
		income(1000),
	}
	txs[len(txs)-1].Category = &domain.Category{Name: "Salary", Color: "#ffffff"}

	m := Compute(nil, txs, nil)

	require.Len(t, m.CategoryBreakdown, 4)

	food := m.CategoryBreakdown[0]
	assert.Equal(t, "Food", food.Name)
	assert.Equal(t, 80.0, food.TotalAmount)
	assert.Equal(t, "#ff0000", food.Color, "First seen color wins")
	assert.InDelta(t, 80.0/165.0*100, food.Share, 1e-9)

	assert.Equal(t, "Fun", m.CategoryBreakdown[1].Name, "Ties keep first-seen order")
	assert.Equal(t, "Travel", m.CategoryBreakdown[2].Name)
	assert.Equal(t, domain.DefaultCategoryColor, m.CategoryBreakdown[2].Color)
	assert.Equal(t, "food", m.CategoryBreakdown[3].Name, "Names match case-sensitively")

	sum := 0.0
	for i, c := range m.CategoryBreakdown {
		sum += c.TotalAmount
		if i > 0 {
			assert.GreaterOrEqual(t, m.CategoryBreakdown[i-1].TotalAmount, c.TotalAmount)
		}
	}
	assert.Equal(t, 125.0, sum)
	assert.LessOrEqual(t, sum, m.TotalExpenses, "Uncategorized expenses are left out")
}

func TestCompute_GardenTips(t *testing.T) {
	t.Run("All tips fire in fixed order", func(t *testing.T) {
		txs := []domain.Transaction{income(100), expense(1000)}

		m := Compute(nil, txs, choices(0, 6))

		assert.Equal(t, []string{
			domain.TipKindRoots,
			domain.TipKindTrunk,
			domain.TipKindGrowth,
			domain.TipKindPests,
		}, tipKinds(m.GardenTips))
		assert.Equal(t, "#8b5cf6", m.GardenTips[0].Color)
		assert.Equal(t, "#f97316", m.GardenTips[3].Color)
	})

	t.Run("Flourishing only when nothing else fires", func(t *testing.T) {
		m := Compute(nil, []domain.Transaction{income(1000), expense(100)}, choices(5, 0))

		require.Len(t, m.GardenTips, 1)
		assert.Equal(t, domain.TipKindFlourishing, m.GardenTips[0].Kind)
		assert.Contains(t, m.GardenTips[0].Message, "flourishing")
	})
}

func TestCompute_OverallHealth(t *testing.T) {
	// roots 75, trunk 80, growth 100 -> 85
	m := Compute(nil, []domain.Transaction{income(1000)}, choices(3, 1))
	assert.Equal(t, 85, m.OverallHealth)
}

func TestCompute_BoundsUnderExtremes(t *testing.T) {
	inputs := [][]domain.Transaction{
		nil,
		{income(0), expense(0)},
		{expense(math.MaxFloat64)},
		{income(math.MaxFloat64)},
		{income(1e-9), expense(1e9)},
		{income(1e9), expense(1e-9)},
	}
	profiles := []*domain.Profile{
		nil,
		{SavingsGoal: 0},
		{SavingsGoal: 1e-9, TotalSavings: 1e9},
		{SavingsGoal: 1e9},
	}

	for _, txs := range inputs {
		for _, p := range profiles {
			m := Compute(p, txs, choices(1, 9))

			for _, v := range []float64{m.RootsHealth, m.TrunkHealth, m.GrowthLevel, m.GoalProgress} {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 100.0)
			}
			assert.GreaterOrEqual(t, m.FruitsCount, 0)
			assert.LessOrEqual(t, m.FruitsCount, 5)
			assert.GreaterOrEqual(t, m.PestsCount, 0)
			assert.LessOrEqual(t, m.PestsCount, 4)
			assert.GreaterOrEqual(t, m.TotalIncome, 0.0)
			assert.GreaterOrEqual(t, m.TotalExpenses, 0.0)
		}
	}
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	txs := []domain.Transaction{expense(10, "Food", ""), expense(5, "Food", "#ff0000")}
	profile := &domain.Profile{SavingsGoal: 100, TotalSavings: 0}

	_ = Compute(profile, txs, choices(1, 1))

	assert.Equal(t, "", txs[0].Category.Color)
	assert.Equal(t, 0.0, profile.TotalSavings)
}
