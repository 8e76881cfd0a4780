package domain

import "time"

const (
	TipKindRoots       = "roots"
	TipKindTrunk       = "trunk"
	TipKindGrowth      = "growth"
	TipKindPests       = "pests"
	TipKindFlourishing = "flourishing"

	TierThriving  = "Thriving"
	TierGrowing   = "Growing"
	TierNeedsCare = "Needs Care"
)

// DerivedMetrics is the financial health snapshot computed from a user's profile,
// transactions and daily challenges. Health, level and progress values lie in [0,100].
type DerivedMetrics struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetSavings    float64 `json:"net_savings"`
	SavingsRate   float64 `json:"savings_rate"`

	TotalChallenges int     `json:"total_challenges"`
	GoodChoices     int     `json:"good_choices"`
	BadChoices      int     `json:"bad_choices"`
	ChallengeScore  float64 `json:"challenge_score"`

	RootsHealth   float64 `json:"roots_health"`
	TrunkHealth   float64 `json:"trunk_health"`
	GrowthLevel   float64 `json:"growth_level"`
	GoalProgress  float64 `json:"goal_progress"`
	FruitsCount   int     `json:"fruits_count"`
	PestsCount    int     `json:"pests_count"`
	OverallHealth int     `json:"overall_health"`

	CategoryBreakdown []CategoryTotal `json:"category_breakdown"`
	GardenTips        []GardenTip     `json:"garden_tips"`
}

type CategoryTotal struct {
	Name        string  `json:"name"`
	TotalAmount float64 `json:"total_amount"`
	Color       string  `json:"color"`
	Share       float64 `json:"share"`
}

type GardenTip struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

// HealthCard is the display form of one health dimension.
type HealthCard struct {
	Label       string `json:"label"`
	Value       int    `json:"value"`
	Tier        string `json:"tier"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type CategorySummary struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Share  int    `json:"share"`
	Color  string `json:"color"`
}

type MoneySummary struct {
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
	NetSavings    string `json:"net_savings"`
	SavingsGoal   string `json:"savings_goal"`
	TotalSavings  string `json:"total_savings"`
}

type InsightsReport struct {
	UserID         string            `json:"user_id"`
	Currency       string            `json:"currency"`
	CurrencySymbol string            `json:"currency_symbol"`
	Personality    string            `json:"financial_personality"`
	Metrics        DerivedMetrics    `json:"metrics"`
	HealthCards    []HealthCard      `json:"health_cards"`
	Money          MoneySummary      `json:"money"`
	TopCategories  []CategorySummary `json:"top_categories"`
	GeneratedAt    time.Time         `json:"generated_at"`
}

// HealthTier labels a rounded health value.
func HealthTier(value int) string {
	switch {
	case value >= 70:
		return TierThriving
	case value >= 40:
		return TierGrowing
	default:
		return TierNeedsCare
	}
}
