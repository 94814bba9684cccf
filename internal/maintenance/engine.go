// Package maintenance produces year-indexed schedules of scheduled
// services driven by mileage intervals.
package maintenance

import (
	"strings"

	"vehicle-tco/pkg/api"
)

// serviceInterval defines one scheduled service item.
type serviceInterval struct {
	name          string
	intervalMiles int
	cost          float64
	engineOnly    bool // skipped for electric drivetrains
}

// serviceIntervals is the base manufacturer-style schedule, ordered by
// interval. Costs are independent-shop baseline; shop-type and brand
// adjustments happen downstream.
var serviceIntervals = []serviceInterval{
	{"Oil Change", 5000, 75, true},
	{"Tire Rotation", 7500, 50, false},
	{"Engine Air Filter", 15000, 45, true},
	{"Cabin Air Filter", 15000, 40, false},
	{"Brake Fluid Service", 30000, 120, false},
	{"Brake Pads", 30000, 350, false},
	{"Coolant Flush", 50000, 150, true},
	{"Tires", 50000, 800, false},
	{"Transmission Service", 60000, 250, true},
	{"Spark Plugs", 60000, 180, true},
	{"Major Service", 90000, 600, false},
}

// brandMultipliers adjust service costs per make. Luxury makes carry a
// parts-and-labor premium; the adjustment layer caps the premium at
// 1.4 for extreme cases.
var brandMultipliers = map[string]float64{
	"Toyota":        0.85,
	"Honda":         0.85,
	"Hyundai":       0.90,
	"Kia":           0.90,
	"Nissan":        0.95,
	"Subaru":        0.95,
	"Ford":          1.0,
	"Chevrolet":     1.0,
	"Tesla":         1.05,
	"Lexus":         1.10,
	"Audi":          1.30,
	"BMW":           1.35,
	"Mercedes-Benz": 1.40,
	"Land Rover":    1.50,
}

// BrandMultiplier returns the maintenance cost factor for a make,
// 1.0 when unknown.
func BrandMultiplier(make string) float64 {
	if m, ok := brandMultipliers[make]; ok {
		return m
	}
	return 1.0
}

// Engine generates maintenance schedules.
type Engine struct{}

// NewEngine creates a maintenance engine.
func NewEngine() *Engine { return &Engine{} }

// Schedule returns per-year scheduled services for years 1..years.
// Frequency of each service is the count of interval crossings inside
// that year's mileage window. Aggressive driving shortens effective
// intervals; gentle driving stretches them.
func (e *Engine) Schedule(annualMileage, years, startingMileage int, vehicleMake, model, drivingStyle string) []api.MaintenanceYear {
	if years < 1 {
		return nil
	}

	intervalFactor := 1.0
	switch drivingStyle {
	case api.DrivingAggressive:
		intervalFactor = 0.85
	case api.DrivingGentle:
		intervalFactor = 1.10
	}

	electric := isElectricModel(vehicleMake, model)

	schedule := make([]api.MaintenanceYear, 0, years)
	for year := 1; year <= years; year++ {
		start := startingMileage + annualMileage*(year-1)
		end := start + annualMileage

		var services []api.ServiceCost
		var total float64
		for _, svc := range serviceIntervals {
			if electric && svc.engineOnly {
				continue
			}
			interval := int(float64(svc.intervalMiles) * intervalFactor)
			if interval <= 0 {
				interval = svc.intervalMiles
			}
			freq := crossings(start, end, interval)
			if freq == 0 {
				continue
			}
			services = append(services, api.ServiceCost{
				Service:        svc.name,
				Frequency:      freq,
				CostPerService: svc.cost,
				TotalCost:      svc.cost * float64(freq),
				IntervalBased:  true,
			})
			total += svc.cost * float64(freq)
		}

		schedule = append(schedule, api.MaintenanceYear{
			Year:            year,
			StartingMileage: start,
			EndingMileage:   end,
			Services:        services,
			TotalYearCost:   total,
		})
	}
	return schedule
}

// crossings counts interval multiples in the half-open window
// (start, end].
func crossings(start, end, interval int) int {
	if interval <= 0 || end <= start {
		return 0
	}
	return end/interval - start/interval
}

func isElectricModel(make, model string) bool {
	if strings.EqualFold(make, "Tesla") {
		return true
	}
	m := strings.ToLower(model)
	for _, marker := range []string{"electric", "e-tron", "ioniq", "leaf", "bolt", "mach-e", "lightning"} {
		if strings.Contains(m, marker) {
			return true
		}
	}
	return false
}
