package tco

import (
	"vehicle-tco/pkg/api"
	"vehicle-tco/pkg/money"
)

const (
	// Fractions of gross monthly income.
	affordExcellentMax = 10.0
	affordGoodMax      = 15.0
	affordFairMax      = 20.0

	recommendedBudgetPct = 0.15
)

// computeAffordability rates the recurring annual cost against gross
// income. Thresholds are inclusive: exactly 15% is still Good and
// within budget, and every rated tier through Fair counts as
// affordable.
func computeAffordability(annualCost, grossIncome float64) api.AffordabilityAssessment {
	monthlyCost := annualCost / 12
	monthlyIncome := grossIncome / 12

	var pct float64
	if monthlyIncome > 0 {
		pct = monthlyCost / monthlyIncome * 100
	}

	var rating string
	switch {
	case pct <= affordExcellentMax:
		rating = api.RatingExcellent
	case pct <= affordGoodMax:
		rating = api.RatingGood
	case pct <= affordFairMax:
		rating = api.RatingFair
	default:
		rating = api.RatingStretched
	}

	return api.AffordabilityAssessment{
		MonthlyCost:           money.Round2(monthlyCost),
		MonthlyIncome:         money.Round2(monthlyIncome),
		PercentageOfIncome:    money.Round2(pct),
		Rating:                rating,
		IsAffordable:          pct <= affordFairMax,
		RecommendedMaxMonthly: money.Round2(monthlyIncome * recommendedBudgetPct),
		OverBudget:            pct > affordGoodMax,
	}
}
