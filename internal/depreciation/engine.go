// Package depreciation produces year-indexed vehicle-value schedules.
// New vehicles follow a steep early curve; used vehicles follow a
// flatter, age-bucketed rate table seeded from the actual purchase
// price.
package depreciation

import (
	"time"

	"vehicle-tco/pkg/api"
)

// MinValueRatio is the resale floor: value never drops below this
// fraction of the initial value the buyer actually paid.
const MinValueRatio = 0.15

// newVehicleRates are the annual rates for a vehicle bought in its
// model year. Years beyond the table use the last rate minus the
// tail step.
var newVehicleRates = []float64{0.22, 0.16, 0.13, 0.11, 0.10}

const newVehicleTailRate = 0.08

// usedVehicleRates bucket by vehicle age at purchase. Rates decrease
// year over year within each bucket.
var (
	usedRatesRecent = []float64{0.08, 0.07, 0.06, 0.05, 0.04} // age <= 3
	usedRatesMid    = []float64{0.05, 0.04, 0.04, 0.03, 0.03} // age 4-7
	usedRatesOld    = []float64{0.03, 0.02, 0.02, 0.02, 0.02} // age >= 8
)

// brandRetention scales depreciation rates per make. Below 1 retains
// value better.
var brandRetention = map[string]float64{
	"Toyota":        0.8,
	"Honda":         0.8,
	"Lexus":         0.7,
	"BMW":           1.2,
	"Mercedes-Benz": 1.2,
	"Audi":          1.1,
	"Chevrolet":     1.0,
	"Ford":          1.0,
	"Hyundai":       0.9,
}

// Engine computes depreciation schedules relative to a fixed current
// year.
type Engine struct {
	currentYear int
}

// NewEngine creates an engine anchored to the wall clock.
func NewEngine() *Engine {
	return NewEngineForYear(time.Now().Year())
}

// NewEngineForYear creates an engine anchored to a specific calendar
// year.
func NewEngineForYear(year int) *Engine {
	return &Engine{currentYear: year}
}

// Schedule produces the vehicle-value schedule for years 1..years,
// seeded from initialValue (the price actually paid, not original
// MSRP). A model year before the current year selects the used-vehicle
// curve.
func (e *Engine) Schedule(initialValue float64, vehicleMake, model string, modelYear, annualMileage, years int) []api.DepreciationYear {
	if years < 1 || initialValue <= 0 {
		return nil
	}

	vehicleAge := e.currentYear - modelYear
	used := vehicleAge > 0

	retention := brandRetention[vehicleMake]
	if retention == 0 {
		retention = 1.0
	}

	schedule := make([]api.DepreciationYear, 0, years)
	currentValue := initialValue
	floor := initialValue * MinValueRatio

	for year := 1; year <= years; year++ {
		rate := e.annualRate(year, vehicleAge, annualMileage, retention, used)

		newValue := currentValue * (1 - rate)
		if newValue < floor {
			newValue = floor
		}
		annualDep := currentValue - newValue

		ownershipYear := e.currentYear + year - 1
		schedule = append(schedule, api.DepreciationYear{
			Year:               year,
			OwnershipYear:      ownershipYear,
			VehicleAge:         ownershipYear - modelYear,
			VehicleValue:       newValue,
			AnnualDepreciation: annualDep,
			Rate:               rate,
		})
		currentValue = newValue
	}
	return schedule
}

func (e *Engine) annualRate(year, vehicleAge, annualMileage int, retention float64, used bool) float64 {
	if used {
		rates := usedRatesRecent
		switch {
		case vehicleAge > 7:
			rates = usedRatesOld
		case vehicleAge > 3:
			rates = usedRatesMid
		}
		idx := year - 1
		if idx >= len(rates) {
			idx = len(rates) - 1
		}
		return rates[idx] * retention
	}

	base := newVehicleTailRate
	if year-1 < len(newVehicleRates) {
		base = newVehicleRates[year-1]
	}

	// Brand effect on a new vehicle is half the used-market retention
	// spread; the first-owner drop dominates.
	rate := base * (1 + (retention-1)*0.5)

	// Heavy mileage accelerates loss of value.
	if annualMileage > 12000 {
		excess := float64(annualMileage-12000) / 5000.0
		factor := 1 + 0.015*excess
		if factor > 1.15 {
			factor = 1.15
		}
		rate *= factor
	}

	if rate > 0.35 {
		rate = 0.35
	}
	return rate
}
