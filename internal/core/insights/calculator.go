// Package insights turns a user's raw profile, transactions and daily challenges into
// bounded "money tree" health scores and the advice shown alongside them.
package insights

import (
	"math"
	"sort"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

const (
	neutralChallengeScore = 50.0
	idleTrunkHealth       = 80.0
	minTrunkHealth        = 20.0
	trunkSpendWeight      = 80.0
	growthBase            = 30.0
	fruitStep             = 20.0
	maxPests              = 4

	rootsTipThreshold  = 60.0
	trunkTipThreshold  = 60.0
	growthTipThreshold = 50.0
	pestsTipThreshold  = 2
)

var (
	rootsTip = domain.GardenTip{
		Kind:    domain.TipKindRoots,
		Message: "Water your roots! Make more mindful financial choices in daily challenges.",
		Color:   "#8b5cf6",
	}
	trunkTip = domain.GardenTip{
		Kind:    domain.TipKindTrunk,
		Message: "Your trunk needs attention. Try to reduce unnecessary spending to strengthen it.",
		Color:   "#22c55e",
	}
	growthTip = domain.GardenTip{
		Kind:    domain.TipKindGrowth,
		Message: "Give your tree more sunlight! Increase your savings to help it grow taller.",
		Color:   "#eab308",
	}
	pestsTip = domain.GardenTip{
		Kind:    domain.TipKindPests,
		Message: "Blow away the pests! Avoid impulsive spending decisions.",
		Color:   "#f97316",
	}
	flourishingTip = domain.GardenTip{
		Kind:    domain.TipKindFlourishing,
		Message: "Your money tree is flourishing! Keep nurturing it with good habits.",
		Color:   "#22c55e",
	}
)

// Compute derives the health metrics for one snapshot of a user's data. profile may be
// nil. The inputs are only read, never modified, so concurrent calls are safe.
func Compute(profile *domain.Profile, transactions []domain.Transaction, challenges []domain.Challenge) domain.DerivedMetrics {
	var m domain.DerivedMetrics

	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionTypeIncome:
			m.TotalIncome += t.Amount
		case domain.TransactionTypeExpense:
			m.TotalExpenses += t.Amount
		}
	}

	m.NetSavings = m.TotalIncome - m.TotalExpenses
	if m.TotalIncome > 0 {
		m.SavingsRate = m.NetSavings / m.TotalIncome * 100
	}

	m.TotalChallenges = len(challenges)
	for _, c := range challenges {
		if c.IsGoodChoice {
			m.GoodChoices++
		} else {
			m.BadChoices++
		}
	}

	m.ChallengeScore = neutralChallengeScore
	if m.TotalChallenges > 0 {
		m.ChallengeScore = float64(m.GoodChoices) / float64(m.TotalChallenges) * 100
	}

	m.RootsHealth = clamp(m.ChallengeScore)
	m.TrunkHealth = clamp(trunkHealth(m.TotalIncome, m.TotalExpenses))
	m.GrowthLevel = clamp(m.SavingsRate*2 + growthBase)
	m.GoalProgress = goalProgress(profile, m.NetSavings)
	m.FruitsCount = int(math.Floor(m.GoalProgress / fruitStep))
	m.PestsCount = min(maxPests, m.BadChoices/2)
	m.OverallHealth = int(math.Round((m.RootsHealth + m.TrunkHealth + m.GrowthLevel) / 3))

	m.CategoryBreakdown = categoryBreakdown(transactions, m.TotalExpenses)
	m.GardenTips = gardenTips(m)

	return m
}

func trunkHealth(income, expenses float64) float64 {
	if expenses <= 0 {
		return idleTrunkHealth
	}
	if income == 0 {
		income = 1
	}
	return math.Max(minTrunkHealth, 100-(expenses/income)*trunkSpendWeight)
}

// goalProgress uses the profile's recorded savings, falling back to net savings when
// none are recorded.
func goalProgress(profile *domain.Profile, netSavings float64) float64 {
	if !profile.HasGoal() {
		return 0
	}

	saved := profile.TotalSavings
	if saved == 0 {
		saved = netSavings
	}
	return clamp(saved / profile.SavingsGoal * 100)
}

// categoryBreakdown sums categorized expenses per exact category name. The first color
// seen for a name wins. Expenses without a category are left out.
func categoryBreakdown(transactions []domain.Transaction, totalExpenses float64) []domain.CategoryTotal {
	index := make(map[string]int)
	breakdown := make([]domain.CategoryTotal, 0)

	for _, t := range transactions {
		if t.Type != domain.TransactionTypeExpense || t.Category == nil {
			continue
		}

		i, seen := index[t.Category.Name]
		if !seen {
			color := t.Category.Color
			if color == "" {
				color = domain.DefaultCategoryColor
			}
			index[t.Category.Name] = len(breakdown)
			breakdown = append(breakdown, domain.CategoryTotal{Name: t.Category.Name, Color: color})
			i = len(breakdown) - 1
		}
		breakdown[i].TotalAmount += t.Amount
	}

	for i := range breakdown {
		if totalExpenses > 0 {
			breakdown[i].Share = breakdown[i].TotalAmount / totalExpenses * 100
		}
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalAmount > breakdown[j].TotalAmount
	})

	return breakdown
}

func gardenTips(m domain.DerivedMetrics) []domain.GardenTip {
	tips := make([]domain.GardenTip, 0, 4)

	if m.RootsHealth < rootsTipThreshold {
		tips = append(tips, rootsTip)
	}
	if m.TrunkHealth < trunkTipThreshold {
		tips = append(tips, trunkTip)
	}
	if m.GrowthLevel < growthTipThreshold {
		tips = append(tips, growthTip)
	}
	if m.PestsCount > pestsTipThreshold {
		tips = append(tips, pestsTip)
	}

	if len(tips) == 0 {
		tips = append(tips, flourishingTip)
	}
	return tips
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(100, math.Max(0, v))
}
