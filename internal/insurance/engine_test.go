package insurance

import (
	"math"
	"testing"
)

func baseInput() PremiumInput {
	return PremiumInput{
		VehicleValue:       30000,
		VehicleMake:        "Ford",
		VehicleModel:       "Escape",
		VehicleYear:        2023,
		DriverAge:          35,
		State:              "CA",
		CoverageType:       "comprehensive",
		AnnualMileage:      12000,
		NumVehicles:        1,
		RegionalMultiplier: 1.0,
		CurrentYear:        2025,
	}
}

func wantClose(t *testing.T, got, want float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func TestAnnualPremiumBase(t *testing.T) {
	// 30000 * 0.025 + 650 with every factor neutral.
	wantClose(t, AnnualPremium(baseInput()), 1400, "base premium")
}

func TestAnnualPremiumDriverAge(t *testing.T) {
	in := baseInput()
	in.DriverAge = 22
	wantClose(t, AnnualPremium(in), 1400*1.60, "young driver")

	in.DriverAge = 27
	wantClose(t, AnnualPremium(in), 1400*1.25, "under-30 driver")

	in.DriverAge = 70
	wantClose(t, AnnualPremium(in), 1400*1.15, "senior driver")
}

func TestAnnualPremiumMileage(t *testing.T) {
	in := baseInput()
	in.AnnualMileage = 20000
	wantClose(t, AnnualPremium(in), 1400*1.10, "high mileage")

	in.AnnualMileage = 5000
	wantClose(t, AnnualPremium(in), 1400*0.95, "low mileage")
}

func TestAnnualPremiumDiscountsAndSurcharges(t *testing.T) {
	in := baseInput()
	in.NumVehicles = 2
	wantClose(t, AnnualPremium(in), 1400*0.90, "multi-vehicle discount")

	in = baseInput()
	in.VehicleMake = "BMW"
	wantClose(t, AnnualPremium(in), 1400*1.25, "luxury surcharge")

	in = baseInput()
	in.VehicleYear = 2010
	wantClose(t, AnnualPremium(in), 1400*0.85, "old vehicle discount")

	in = baseInput()
	in.RegionalMultiplier = 1.2
	wantClose(t, AnnualPremium(in), 1400*1.2, "regional multiplier")
}

func TestAnnualPremiumUnknownCoverage(t *testing.T) {
	in := baseInput()
	in.CoverageType = "platinum"
	wantClose(t, AnnualPremium(in), 1400, "unknown coverage falls back to comprehensive")
}

func TestAnnualPremiumUnknownState(t *testing.T) {
	in := baseInput()
	in.State = "ZZ"
	wantClose(t, AnnualPremium(in), 30000*0.025+500, "unknown state uses national base")
}

func TestAnnualPremiumFloor(t *testing.T) {
	in := baseInput()
	in.VehicleValue = 0
	in.CoverageType = "liability"
	in.State = "ME" // base 400
	in.AnnualMileage = 5000
	// 400 * 0.95 = 380, floored back to the minimum.
	wantClose(t, AnnualPremium(in), MinAnnualPremium, "premium floor")
}
