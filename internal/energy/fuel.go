// Package energy computes annual fuel and electricity costs with
// driving-style and terrain adjustments.
package energy

import "vehicle-tco/pkg/api"

// Efficiency multipliers: values above 1 mean better effective
// efficiency (cheaper), below 1 worse (more expensive).
var (
	drivingStyleMultipliers = map[string]float64{
		api.DrivingGentle:     1.15,
		api.DrivingNormal:     1.0,
		api.DrivingAggressive: 0.85,
	}
	terrainMultipliers = map[string]float64{
		api.TerrainFlat:  1.05,
		api.TerrainHilly: 0.95,
	}
)

// CombinedMultiplier is the product of the driving-style and terrain
// efficiency multipliers. Unknown values count as neutral.
func CombinedMultiplier(drivingStyle, terrain string) float64 {
	style, ok := drivingStyleMultipliers[drivingStyle]
	if !ok {
		style = 1.0
	}
	t, ok := terrainMultipliers[terrain]
	if !ok {
		t = 1.0
	}
	return style * t
}

// AnnualFuelCost computes the yearly fuel spend for a combustion
// vehicle. MPG already expresses miles per unit, so the multiplier
// applies directly: aggressive driving lowers effective MPG and raises
// cost.
func AnnualFuelCost(annualMileage int, mpg, fuelPrice float64, drivingStyle, terrain string) float64 {
	if annualMileage <= 0 || mpg <= 0 || fuelPrice <= 0 {
		return 0
	}
	effectiveMPG := mpg * CombinedMultiplier(drivingStyle, terrain)
	return float64(annualMileage) / effectiveMPG * fuelPrice
}
