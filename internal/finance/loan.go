// Package finance computes loan amortization schedules.
package finance

import (
	"vehicle-tco/pkg/api"
	"vehicle-tco/pkg/money"
)

// Amortize produces a year-indexed amortization schedule using the
// standard monthly annuity formula. The schedule covers
// min(termYears, analysisYears) years; rate is an annual percentage
// (5.0 means 5%). A zero rate degenerates to straight-line principal.
func Amortize(loanAmount, annualRatePct float64, termYears, analysisYears int) []api.FinancingYear {
	if loanAmount <= 0 || termYears < 1 || analysisYears < 1 {
		return nil
	}

	years := termYears
	if analysisYears < years {
		years = analysisYears
	}

	months := termYears * 12
	monthlyRate := annualRatePct / 100.0 / 12.0

	var monthlyPayment float64
	if monthlyRate == 0 {
		monthlyPayment = loanAmount / float64(months)
	} else {
		factor := pow1p(monthlyRate, months)
		monthlyPayment = loanAmount * monthlyRate * factor / (factor - 1)
	}

	schedule := make([]api.FinancingYear, 0, years)
	balance := loanAmount
	for year := 1; year <= years; year++ {
		var paid, interest, principal float64
		for m := 0; m < 12 && balance > 0; m++ {
			i := balance * monthlyRate
			p := monthlyPayment - i
			if p > balance {
				// Final payment clears the remaining balance.
				p = balance
			}
			paid += i + p
			interest += i
			principal += p
			balance -= p
		}
		schedule = append(schedule, api.FinancingYear{
			Year:             year,
			AnnualPayment:    money.Round2(paid),
			InterestPaid:     money.Round2(interest),
			PrincipalPaid:    money.Round2(principal),
			RemainingBalance: money.Round2(balance),
		})
	}
	return schedule
}

// pow1p computes (1+r)^n by binary exponentiation.
func pow1p(r float64, n int) float64 {
	result := 1.0
	base := 1 + r
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
		n >>= 1
	}
	return result
}
