package tco

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"vehicle-tco/pkg/api"
)

func testEngine() *Engine {
	return NewEngine(zerolog.Nop()).WithClock(func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	})
}

func TestPurchaseReport(t *testing.T) {
	engine := testEngine()
	report, err := engine.ComputeTCO(api.AnalysisRequest{
		Make:             "Toyota",
		Model:            "Camry",
		Year:             2025,
		Price:            32000,
		AnalysisYears:    5,
		AnnualMileage:    12000,
		State:            "GA",
		GrossIncome:      90000,
		FinancingEnabled: true,
	})
	if err != nil {
		t.Fatalf("ComputeTCO: %v", err)
	}

	if report.TransactionType != api.TransactionPurchase {
		t.Errorf("transaction type = %q", report.TransactionType)
	}
	if report.AnalysisID == "" {
		t.Error("missing analysis ID")
	}
	if !report.ComputedAt.Equal(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("computed at = %v", report.ComputedAt)
	}
	if len(report.AnnualBreakdown) != 5 {
		t.Fatalf("breakdown has %d years, want 5", len(report.AnnualBreakdown))
	}

	s := report.Summary
	if s.TotalTCO != s.OutOfPocketTotal+s.TotalDepreciation {
		t.Errorf("TCO identity violated: %v != %v + %v",
			s.TotalTCO, s.OutOfPocketTotal, s.TotalDepreciation)
	}
	if s.FinalVehicleValue <= 0 || s.FinalVehicleValue >= 32000 {
		t.Errorf("final value = %v", s.FinalVehicleValue)
	}
	ratio := s.FinalVehicleValue / 32000
	if ratio < 0.15 || ratio > 0.50 {
		t.Errorf("5-year residual ratio = %v, want within [0.15, 0.50]", ratio)
	}

	// Every category must contribute for a financed combustion purchase.
	ct := report.CategoryTotals
	for name, v := range map[string]float64{
		"depreciation": ct.Depreciation,
		"maintenance":  ct.Maintenance,
		"insurance":    ct.Insurance,
		"fuel":         ct.FuelEnergy,
		"financing":    ct.Financing,
	} {
		if v <= 0 {
			t.Errorf("category %s total = %v, want positive", name, v)
		}
	}

	// Category totals must agree with the per-year records.
	var dep, maint, ins, fuel, fin float64
	for i, yr := range report.AnnualBreakdown {
		if yr.Year != i+1 {
			t.Errorf("record %d: Year = %d", i, yr.Year)
		}
		if yr.OwnershipYear != 2025+i {
			t.Errorf("record %d: OwnershipYear = %d", i, yr.OwnershipYear)
		}
		if yr.CumulativeMileage != 12000*(i+1) {
			t.Errorf("record %d: CumulativeMileage = %d", i, yr.CumulativeMileage)
		}
		dep += yr.Depreciation
		maint += yr.Maintenance
		ins += yr.Insurance
		fuel += yr.FuelEnergy
		fin += yr.Financing
	}
	if math.Abs(dep-ct.Depreciation) > 1e-6 || math.Abs(maint-ct.Maintenance) > 1e-6 ||
		math.Abs(ins-ct.Insurance) > 1e-6 || math.Abs(fuel-ct.FuelEnergy) > 1e-6 ||
		math.Abs(fin-ct.Financing) > 1e-6 {
		t.Error("category totals disagree with annual breakdown")
	}

	if len(report.FinancingSchedule) == 0 {
		t.Error("financed purchase missing financing schedule")
	}
	if report.RegionalContext.CostMultiplier < 0.8 || report.RegionalContext.CostMultiplier > 1.3 {
		t.Errorf("regional multiplier %v outside clamp", report.RegionalContext.CostMultiplier)
	}
}

func TestPurchaseUnfinanced(t *testing.T) {
	engine := testEngine()
	report, err := engine.ComputeTCO(api.AnalysisRequest{
		Make:          "Honda",
		Model:         "Civic",
		Year:          2025,
		Price:         28000,
		AnalysisYears: 5,
		AnnualMileage: 12000,
		State:         "GA",
	})
	if err != nil {
		t.Fatalf("ComputeTCO: %v", err)
	}
	if report.CategoryTotals.Financing != 0 {
		t.Errorf("unfinanced purchase has financing total %v", report.CategoryTotals.Financing)
	}
	if len(report.FinancingSchedule) != 0 {
		t.Error("unfinanced purchase has a financing schedule")
	}
}

func TestPurchaseDefaults(t *testing.T) {
	engine := testEngine()
	report, err := engine.ComputeTCO(api.AnalysisRequest{
		Make:  "Toyota",
		Model: "Camry",
		Year:  2025,
	})
	if err != nil {
		t.Fatalf("ComputeTCO: %v", err)
	}
	if report.AnalysisParameters.AnalysisYears != 5 {
		t.Errorf("analysis years = %d, want default 5", report.AnalysisParameters.AnalysisYears)
	}
	if report.AnalysisParameters.PurchasePrice != 30000 {
		t.Errorf("price = %v, want default 30000", report.AnalysisParameters.PurchasePrice)
	}
	if report.Affordability.MonthlyIncome != 5000 {
		t.Errorf("monthly income = %v, want 5000 from default gross income", report.Affordability.MonthlyIncome)
	}
}

func TestZeroMileageIsLegal(t *testing.T) {
	engine := testEngine()
	report, err := engine.ComputeTCO(api.AnalysisRequest{
		Make:          "Toyota",
		Model:         "Camry",
		Year:          2025,
		Price:         32000,
		AnalysisYears: 5,
	})
	if err != nil {
		t.Fatalf("ComputeTCO: %v", err)
	}
	if report.Summary.CostPerMile != 0 {
		t.Errorf("cost per mile = %v, want 0 for a stored vehicle", report.Summary.CostPerMile)
	}
	if report.CategoryTotals.FuelEnergy != 0 {
		t.Errorf("fuel total = %v, want 0", report.CategoryTotals.FuelEnergy)
	}
}

func TestValidationErrors(t *testing.T) {
	engine := testEngine()

	_, err := engine.ComputeTCO(api.AnalysisRequest{AnalysisYears: -1})
	if !errors.Is(err, ErrInvalidAnalysisYears) {
		t.Errorf("negative years error = %v", err)
	}

	_, err = engine.ComputeTCO(api.AnalysisRequest{AnnualMileage: -5})
	if !errors.Is(err, ErrNegativeMileage) {
		t.Errorf("negative mileage error = %v", err)
	}

	_, err = engine.ComputeTCO(api.AnalysisRequest{AnnualMileageLimit: -1})
	if !errors.Is(err, ErrNegativeMileage) {
		t.Errorf("negative mileage limit error = %v", err)
	}

	_, err = engine.ComputeTCO(api.AnalysisRequest{
		TransactionType: "lease",
		LeaseTermYears:  -2,
	})
	if !errors.Is(err, ErrInvalidLeaseTerm) {
		t.Errorf("negative lease term error = %v", err)
	}
}

func TestLeaseReport(t *testing.T) {
	engine := testEngine()
	report, err := engine.ComputeTCO(api.AnalysisRequest{
		Make:               "Honda",
		Model:              "Civic",
		Year:               2025,
		TransactionType:    "lease",
		LeaseTermYears:     3,
		MonthlyPayment:     450,
		DownPayment:        2000,
		AnnualMileageLimit: 12000,
		AnnualMileage:      15000,
		State:              "GA",
		GrossIncome:        96000,
	})
	if err != nil {
		t.Fatalf("ComputeTCO: %v", err)
	}

	if report.TransactionType != api.TransactionLease {
		t.Errorf("transaction type = %q", report.TransactionType)
	}
	if len(report.AnnualBreakdown) != 3 {
		t.Fatalf("breakdown has %d years, want lease term 3", len(report.AnnualBreakdown))
	}

	for _, yr := range report.AnnualBreakdown {
		if yr.LeasePayment != 450*12 {
			t.Errorf("year %d: lease payment %v, want 5400", yr.Year, yr.LeasePayment)
		}
		// 3,000 miles over allowance at $0.25/mile.
		if yr.FeesPenalties != 750 {
			t.Errorf("year %d: fees %v, want 750", yr.Year, yr.FeesPenalties)
		}
		if yr.Depreciation != 0 || yr.Financing != 0 {
			t.Errorf("year %d: lease record carries ownership costs", yr.Year)
		}
	}

	s := report.Summary
	if s.DownPayment != 2000 {
		t.Errorf("down payment = %v", s.DownPayment)
	}
	ct := report.CategoryTotals
	wantTotal := ct.LeasePayments + ct.Maintenance + ct.Insurance + ct.FuelEnergy + ct.FeesPenalties + 2000
	if math.Abs(s.TotalLeaseCost-wantTotal) > 0.01 {
		t.Errorf("total lease cost = %v, want %v", s.TotalLeaseCost, wantTotal)
	}
	if math.Abs(s.AverageMonthlyCost-s.TotalLeaseCost/36) > 1e-6 {
		t.Errorf("average monthly = %v", s.AverageMonthlyCost)
	}
	if len(report.DepreciationSchedule) != 0 || len(report.FinancingSchedule) != 0 {
		t.Error("lease report carries ownership schedules")
	}
}

func TestLeaseNoOverage(t *testing.T) {
	engine := testEngine()
	report, err := engine.ComputeTCO(api.AnalysisRequest{
		Make:               "Honda",
		Model:              "Civic",
		Year:               2025,
		TransactionType:    "lease",
		AnnualMileageLimit: 12000,
		AnnualMileage:      9000,
	})
	if err != nil {
		t.Fatalf("ComputeTCO: %v", err)
	}
	// Unused allowance earns no credit; the fee is simply zero.
	if report.CategoryTotals.FeesPenalties != 0 {
		t.Errorf("fees = %v, want 0 under the allowance", report.CategoryTotals.FeesPenalties)
	}
}

func TestLeaseTermFallsBackToAnalysisYears(t *testing.T) {
	engine := testEngine()
	report, err := engine.ComputeTCO(api.AnalysisRequest{
		Make:            "Honda",
		Model:           "Civic",
		Year:            2025,
		TransactionType: "lease",
		AnalysisYears:   4,
	})
	if err != nil {
		t.Fatalf("ComputeTCO: %v", err)
	}
	if len(report.AnnualBreakdown) != 4 {
		t.Errorf("breakdown has %d years, want 4 from analysis horizon", len(report.AnnualBreakdown))
	}
}

func TestLeaseElectricDrivingStyle(t *testing.T) {
	lease := func(style string) *api.Report {
		report, err := testEngine().ComputeTCO(api.AnalysisRequest{
			Make:            "Tesla",
			Model:           "Model 3",
			Year:            2024,
			TransactionType: "lease",
			DrivingStyle:    style,
			State:           "CA",
		})
		if err != nil {
			t.Fatalf("ComputeTCO(%s): %v", style, err)
		}
		return report
	}

	gentle := lease(api.DrivingGentle).CategoryTotals.FuelEnergy
	aggressive := lease(api.DrivingAggressive).CategoryTotals.FuelEnergy
	if gentle <= 0 {
		t.Fatalf("electric lease energy cost = %v, want positive", gentle)
	}
	if gentle >= aggressive {
		t.Errorf("gentle EV energy %v should be below aggressive %v", gentle, aggressive)
	}
}

func TestCashPurchaseEndToEnd(t *testing.T) {
	engine := testEngine()
	report, err := engine.ComputeTCO(api.AnalysisRequest{
		Make:          "Toyota",
		Model:         "Camry",
		Year:          2025,
		Price:         30000,
		AnalysisYears: 5,
		AnnualMileage: 12000,
	})
	if err != nil {
		t.Fatalf("ComputeTCO: %v", err)
	}
	if report.CategoryTotals.Depreciation <= 0 {
		t.Errorf("depreciation total = %v, want positive", report.CategoryTotals.Depreciation)
	}
	if report.CategoryTotals.Financing != 0 {
		t.Errorf("financing total = %v, want 0 for cash purchase", report.CategoryTotals.Financing)
	}
	if len(report.AnnualBreakdown) != 5 {
		t.Errorf("breakdown has %d years, want 5", len(report.AnnualBreakdown))
	}
	ratio := report.Summary.FinalVehicleValue / 30000
	if ratio < 0.15 || ratio > 0.50 {
		t.Errorf("residual ratio = %v, want within [0.15, 0.50]", ratio)
	}
}

func TestLeaseOverageTotal(t *testing.T) {
	engine := testEngine()
	report, err := engine.ComputeTCO(api.AnalysisRequest{
		Make:               "Honda",
		Model:              "Civic",
		Year:               2025,
		TransactionType:    "lease",
		LeaseTermYears:     3,
		MonthlyPayment:     400,
		AnnualMileageLimit: 12000,
		AnnualMileage:      15000,
	})
	if err != nil {
		t.Fatalf("ComputeTCO: %v", err)
	}
	// 3 years x 3,000 overage miles x $0.25.
	if report.CategoryTotals.FeesPenalties != 2250 {
		t.Errorf("fees total = %v, want 2250", report.CategoryTotals.FeesPenalties)
	}
}

func TestElectricPurchaseDrivingStyle(t *testing.T) {
	purchase := func(style string) *api.Report {
		report, err := testEngine().ComputeTCO(api.AnalysisRequest{
			Make:            "Chevrolet",
			Model:           "Bolt EV",
			Year:            2024,
			Price:           28000,
			AnalysisYears:   5,
			AnnualMileage:   12000,
			IsElectric:      true,
			ElectricityRate: 0.12,
			DrivingStyle:    style,
		})
		if err != nil {
			t.Fatalf("ComputeTCO(%s): %v", style, err)
		}
		return report
	}

	gentle := purchase(api.DrivingGentle).CategoryTotals.FuelEnergy
	aggressive := purchase(api.DrivingAggressive).CategoryTotals.FuelEnergy
	if gentle <= 0 {
		t.Fatalf("electric energy cost = %v, want positive", gentle)
	}
	if aggressive <= gentle {
		t.Errorf("aggressive EV energy %v should exceed gentle %v", aggressive, gentle)
	}
}

func TestTransactionTypeCaseInsensitive(t *testing.T) {
	engine := testEngine()
	report, err := engine.ComputeTCO(api.AnalysisRequest{
		Make:            "Honda",
		Model:           "Civic",
		Year:            2025,
		TransactionType: "LEASE",
	})
	if err != nil {
		t.Fatalf("ComputeTCO: %v", err)
	}
	if report.TransactionType != api.TransactionLease {
		t.Errorf("transaction type = %q, want lease", report.TransactionType)
	}
}
