package energy

import (
	"strings"

	"vehicle-tco/pkg/api"
)

// DefaultKWhPer100Mi is the efficiency assumed for electric vehicles
// missing from the table.
const DefaultKWhPer100Mi = 30.0

// chargingFactors scale the base electricity rate by charging mix.
// Public fast charging costs well above residential rates.
var chargingFactors = map[string]float64{
	api.ChargingHome:   1.0,
	api.ChargingMixed:  1.15,
	api.ChargingPublic: 1.40,
}

// evEfficiencies holds kWh per 100 miles by make|model (lowercase).
var evEfficiencies = map[string]float64{
	"tesla|model 3":       25,
	"tesla|model y":       27,
	"tesla|model s":       29,
	"chevrolet|bolt ev":   28,
	"nissan|leaf":         30,
	"ford|mustang mach-e": 33,
	"hyundai|ioniq 5":     30,
	"kia|ev6":             29,
	"volkswagen|id.4":     31,
	"rivian|r1t":          48,
}

// EstimateEfficiency returns kWh per 100 miles for an electric
// vehicle. Newer model years trend slightly more efficient.
func EstimateEfficiency(make, model string, year int) float64 {
	key := strings.ToLower(strings.TrimSpace(make)) + "|" + strings.ToLower(strings.TrimSpace(model))
	eff, ok := evEfficiencies[key]
	if !ok {
		eff = DefaultKWhPer100Mi
	}
	if year > 2020 {
		eff -= 0.3 * float64(year-2020)
	}
	if eff < 18 {
		eff = 18
	}
	return eff
}

// AnnualElectricityCost computes the yearly charging spend. The caller
// supplies the driving-adjusted efficiency: for EVs worse driving
// means more kWh per mile, so the combined multiplier is applied by
// division before this call, not here.
func AnnualElectricityCost(annualMileage int, kwhPer100Miles, electricityRate float64, chargingPreference string) float64 {
	if annualMileage <= 0 || kwhPer100Miles <= 0 || electricityRate <= 0 {
		return 0
	}
	factor, ok := chargingFactors[chargingPreference]
	if !ok {
		factor = chargingFactors[api.ChargingMixed]
	}
	energyKWh := float64(annualMileage) / 100.0 * kwhPer100Miles
	return energyKWh * electricityRate * factor
}
