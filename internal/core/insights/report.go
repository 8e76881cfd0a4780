package insights

import (
	"fmt"
	"math"
	"time"

	"github.com/comitanigiacomo/kanso-finance/internal/core/currency"
	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

const TopCategoryLimit = 5

// BuildReport wraps metrics with the display values the dashboard renders: rounded
// percentages, tier labels, money strings and the leading spending categories.
func BuildReport(userID string, profile *domain.Profile, m domain.DerivedMetrics, f currency.Formatter, now time.Time) *domain.InsightsReport {
	report := &domain.InsightsReport{
		UserID:         userID,
		Currency:       f.Code(),
		CurrencySymbol: f.Symbol(),
		Metrics:        m,
		GeneratedAt:    now.UTC(),
		HealthCards: []domain.HealthCard{
			card("Roots (Habits)", m.RootsHealth, "Based on your daily challenge choices", "#8b5cf6"),
			card("Trunk (Spending)", m.TrunkHealth, "How well you manage your expenses", "#22c55e"),
			card("Growth (Savings)", m.GrowthLevel, "Your savings rate and progress", "#84cc16"),
			card("Fruits (Goals)", m.GoalProgress, fruitsDescription(m.FruitsCount), "#f472b6"),
		},
		Money: domain.MoneySummary{
			TotalIncome:   f.FormatMoney(m.TotalIncome),
			TotalExpenses: f.FormatMoney(m.TotalExpenses),
			NetSavings:    f.FormatMoney(m.NetSavings, currency.Options{ShowSign: true}),
		},
	}

	if profile != nil {
		report.Personality = profile.Personality
		report.Money.SavingsGoal = f.FormatMoney(profile.SavingsGoal)
		report.Money.TotalSavings = f.FormatMoney(profile.TotalSavings)
	}

	top := m.CategoryBreakdown
	if len(top) > TopCategoryLimit {
		top = top[:TopCategoryLimit]
	}
	report.TopCategories = make([]domain.CategorySummary, 0, len(top))
	for _, c := range top {
		report.TopCategories = append(report.TopCategories, domain.CategorySummary{
			Name:   c.Name,
			Amount: f.FormatMoney(c.TotalAmount),
			Share:  int(math.Round(c.Share)),
			Color:  c.Color,
		})
	}

	return report
}

func card(label string, value float64, description, color string) domain.HealthCard {
	rounded := int(math.Round(value))
	return domain.HealthCard{
		Label:       label,
		Value:       rounded,
		Tier:        domain.HealthTier(rounded),
		Description: description,
		Color:       color,
	}
}

func fruitsDescription(fruits int) string {
	if fruits == 1 {
		return "1 goal milestone reached!"
	}
	return fmt.Sprintf("%d goal milestones reached!", fruits)
}
