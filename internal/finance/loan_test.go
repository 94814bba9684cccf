package finance

import (
	"math"
	"testing"
)

func TestAmortizeZeroRate(t *testing.T) {
	schedule := Amortize(12000, 0, 5, 5)
	if len(schedule) != 5 {
		t.Fatalf("got %d years, want 5", len(schedule))
	}
	for _, yr := range schedule {
		if yr.AnnualPayment != 2400 {
			t.Errorf("year %d: payment %v, want 2400", yr.Year, yr.AnnualPayment)
		}
		if yr.InterestPaid != 0 {
			t.Errorf("year %d: interest %v, want 0", yr.Year, yr.InterestPaid)
		}
	}
	if last := schedule[4]; last.RemainingBalance != 0 {
		t.Errorf("final balance = %v, want 0", last.RemainingBalance)
	}
}

func TestAmortizePrincipalSumsToLoan(t *testing.T) {
	schedule := Amortize(24000, 5.0, 5, 5)
	if len(schedule) != 5 {
		t.Fatalf("got %d years, want 5", len(schedule))
	}

	var principal, interest float64
	for _, yr := range schedule {
		principal += yr.PrincipalPaid
		interest += yr.InterestPaid
		if math.Abs(yr.AnnualPayment-(yr.InterestPaid+yr.PrincipalPaid)) > 0.02 {
			t.Errorf("year %d: payment %v != interest %v + principal %v",
				yr.Year, yr.AnnualPayment, yr.InterestPaid, yr.PrincipalPaid)
		}
	}

	if math.Abs(principal-24000) > 0.05 {
		t.Errorf("total principal = %v, want 24000", principal)
	}
	if interest <= 0 {
		t.Errorf("total interest = %v, want positive", interest)
	}
	if last := schedule[4]; math.Abs(last.RemainingBalance) > 0.01 {
		t.Errorf("final balance = %v, want 0", last.RemainingBalance)
	}
}

func TestAmortizeDecreasingInterest(t *testing.T) {
	schedule := Amortize(24000, 6.0, 5, 5)
	for i := 1; i < len(schedule); i++ {
		if schedule[i].InterestPaid >= schedule[i-1].InterestPaid {
			t.Errorf("year %d interest %v should be below year %d interest %v",
				schedule[i].Year, schedule[i].InterestPaid,
				schedule[i-1].Year, schedule[i-1].InterestPaid)
		}
	}
}

func TestAmortizeTruncatedByAnalysisYears(t *testing.T) {
	schedule := Amortize(24000, 5.0, 5, 3)
	if len(schedule) != 3 {
		t.Fatalf("got %d years, want 3", len(schedule))
	}
	if schedule[2].RemainingBalance <= 0 {
		t.Errorf("balance after year 3 of a 5-year loan = %v, want positive", schedule[2].RemainingBalance)
	}
}

func TestAmortizeInvalidInputs(t *testing.T) {
	if s := Amortize(0, 5.0, 5, 5); s != nil {
		t.Error("zero loan should produce nil schedule")
	}
	if s := Amortize(24000, 5.0, 0, 5); s != nil {
		t.Error("zero term should produce nil schedule")
	}
	if s := Amortize(24000, 5.0, 5, 0); s != nil {
		t.Error("zero analysis years should produce nil schedule")
	}
}
