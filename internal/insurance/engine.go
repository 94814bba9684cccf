// Package insurance computes annual premiums from vehicle value and
// the driver/vehicle profile.
package insurance

import "time"

// MinAnnualPremium is the floor below which no premium falls,
// regardless of vehicle value.
const MinAnnualPremium = 400.0

// coverageRates express the value-proportional part of the premium.
var coverageRates = map[string]float64{
	"comprehensive": 0.025,
	"collision":     0.020,
	"liability":     0.012,
}

// stateBasePremiums are fixed per-state premium components. States
// absent from the table use the national base.
var stateBasePremiums = map[string]float64{
	"MI": 900, "FL": 780, "NY": 720, "LA": 760, "NV": 680,
	"CA": 650, "NJ": 660, "TX": 620, "GA": 610, "CO": 600,
	"IL": 540, "PA": 530, "AZ": 560, "WA": 520, "OR": 510,
	"OH": 470, "NC": 440, "VA": 460, "WI": 450, "ID": 420,
	"VT": 410, "ME": 400, "IA": 430, "IN": 450, "MA": 590,
}

const nationalBasePremium = 500.0

// luxuryMakes carry a repair-cost premium factor.
var luxuryMakes = map[string]bool{
	"BMW": true, "Mercedes-Benz": true, "Audi": true,
	"Lexus": true, "Tesla": true, "Porsche": true,
}

// PremiumInput carries the rating factors for one policy year.
// RegionalMultiplier must already be clamped by the caller.
type PremiumInput struct {
	VehicleValue       float64
	VehicleMake        string
	VehicleModel       string
	VehicleYear        int
	DriverAge          int
	State              string
	CoverageType       string
	AnnualMileage      int
	NumVehicles        int
	RegionalMultiplier float64

	// CurrentYear anchors vehicle-age rating; zero means the wall
	// clock.
	CurrentYear int
}

// AnnualPremium computes the premium for one year. The vehicle value
// should be the depreciated value for that year, so premiums fall as
// the vehicle ages.
func AnnualPremium(in PremiumInput) float64 {
	rate, ok := coverageRates[in.CoverageType]
	if !ok {
		rate = coverageRates["comprehensive"]
	}

	base, ok := stateBasePremiums[in.State]
	if !ok {
		base = nationalBasePremium
	}

	premium := in.VehicleValue*rate + base

	premium *= ageFactor(in.DriverAge)
	premium *= mileageFactor(in.AnnualMileage)

	if in.NumVehicles >= 2 {
		premium *= 0.90 // multi-vehicle discount
	}
	if luxuryMakes[in.VehicleMake] {
		premium *= 1.25
	}

	currentYear := in.CurrentYear
	if currentYear == 0 {
		currentYear = time.Now().Year()
	}
	if currentYear-in.VehicleYear >= 10 {
		premium *= 0.85
	}

	if in.RegionalMultiplier > 0 {
		premium *= in.RegionalMultiplier
	}

	if premium < MinAnnualPremium {
		premium = MinAnnualPremium
	}
	return premium
}

func ageFactor(age int) float64 {
	switch {
	case age > 0 && age < 25:
		return 1.60
	case age >= 25 && age < 30:
		return 1.25
	case age > 65:
		return 1.15
	default:
		return 1.0
	}
}

func mileageFactor(annualMileage int) float64 {
	switch {
	case annualMileage > 15000:
		return 1.10
	case annualMileage > 0 && annualMileage < 8000:
		return 0.95
	default:
		return 1.0
	}
}
