package tco

import (
	"vehicle-tco/internal/maintenance"
	"vehicle-tco/pkg/api"
)

// Adjustment factors are bounded and capped so stacked multipliers
// cannot compound into implausible totals.
const (
	regionalMultiplierMin = 0.8
	regionalMultiplierMax = 1.3

	luxuryBrandCap = 1.4

	// Wear add-ons below this are assumed already covered by the
	// itemized service schedule.
	wearMaterialityThreshold = 100.0

	// Residual service cost under warranty below this is dropped.
	leaseServiceMateriality = 5.0

	leaseShopMultiplier = 1.2 // leases service at the dealership
)

var shopMultipliers = map[string]float64{
	api.ShopDealership:  1.15,
	api.ShopIndependent: 1.0,
	api.ShopChain:       1.05,
	api.ShopSpecialty:   1.1,
	api.ShopDIY:         0.5, // parts only
}

// wearBaseCosts are the additional wear-and-tear baselines by vehicle
// year, escalating through year 10+.
var wearBaseCosts = map[int]float64{
	4:  100,
	5:  150,
	6:  200,
	7:  300,
	8:  400,
	9:  500,
	10: 600,
}

func clampRegional(m float64) float64 {
	if m < regionalMultiplierMin {
		return regionalMultiplierMin
	}
	if m > regionalMultiplierMax {
		return regionalMultiplierMax
	}
	return m
}

func shopMultiplier(shopType string) float64 {
	if m, ok := shopMultipliers[shopType]; ok {
		return m
	}
	return 1.0
}

// brandAdjustedCost applies the per-make maintenance factor, capping
// luxury premiums at luxuryBrandCap.
func brandAdjustedCost(base, brandMult float64) float64 {
	if brandMult > luxuryBrandCap {
		brandMult = luxuryBrandCap
	}
	return base * brandMult
}

// adjustMaintenanceSchedule applies brand, shop-type, and regional
// adjustments to a raw schedule, adding wear items for older years
// only when they clear the materiality threshold.
func adjustMaintenanceSchedule(base []api.MaintenanceYear, vehicleMake, shopType string, regionalMult float64) []api.MaintenanceYear {
	brand := maintenance.BrandMultiplier(vehicleMake)
	shop := shopMultiplier(shopType)

	adjusted := make([]api.MaintenanceYear, 0, len(base))
	for _, yearData := range base {
		var services []api.ServiceCost
		var total float64

		for _, svc := range yearData.Services {
			perService := brandAdjustedCost(svc.CostPerService, brand) * shop * regionalMult
			lineTotal := perService * float64(svc.Frequency)
			services = append(services, api.ServiceCost{
				Service:        svc.Service,
				Frequency:      svc.Frequency,
				CostPerService: perService,
				TotalCost:      lineTotal,
				ShopType:       shopType,
				IntervalBased:  true,
			})
			total += lineTotal
		}

		if yearData.Year > 3 {
			wear := wearCost(yearData.Year, brand, shopType, regionalMult)
			if wear > wearMaterialityThreshold {
				services = append(services, api.ServiceCost{
					Service:        "Additional Wear & Tear",
					Frequency:      1,
					CostPerService: wear,
					TotalCost:      wear,
					ShopType:       shopType,
					IntervalBased:  false,
				})
				total += wear
			}
		}

		adjusted = append(adjusted, api.MaintenanceYear{
			Year:            yearData.Year,
			StartingMileage: yearData.StartingMileage,
			EndingMileage:   yearData.EndingMileage,
			Services:        services,
			TotalYearCost:   total,
		})
	}
	return adjusted
}

// wearCost estimates year-specific additional wear maintenance. DIY
// gets no shop premium here; the wear baseline is labor-neutral.
func wearCost(year int, brandMult float64, shopType string, regionalMult float64) float64 {
	idx := year
	if idx > 10 {
		idx = 10
	}
	base, ok := wearBaseCosts[idx]
	if !ok {
		base = 600
	}
	shop := 1.0
	if m, ok := shopMultipliers[shopType]; ok && shopType != api.ShopDIY {
		shop = m
	}
	return base * brandMult * shop * regionalMult
}

// warrantyDiscount is the fraction of a lease-year's service cost
// covered by warranty: factory coverage through year 2, partial in
// year 3, extended warranty after.
func warrantyDiscount(leaseYear int) float64 {
	switch {
	case leaseYear <= 2:
		return 0.6
	case leaseYear == 3:
		return 0.4
	default:
		return 0.2
	}
}

// adjustLeaseMaintenanceSchedule applies dealership pricing and
// warranty-phase coverage to a raw schedule. Residual costs under the
// materiality cut are dropped; a minor-wear item appears after year 3.
func adjustLeaseMaintenanceSchedule(base []api.MaintenanceYear, vehicleMake string, regionalMult float64) []api.MaintenanceYear {
	brand := maintenance.BrandMultiplier(vehicleMake)

	adjusted := make([]api.MaintenanceYear, 0, len(base))
	for _, yearData := range base {
		discount := warrantyDiscount(yearData.Year)
		var services []api.ServiceCost
		var total float64

		for _, svc := range yearData.Services {
			full := brandAdjustedCost(svc.CostPerService, brand) * leaseShopMultiplier * regionalMult
			outOfPocket := full * (1 - discount)
			if outOfPocket <= leaseServiceMateriality {
				continue
			}
			services = append(services, api.ServiceCost{
				Service:         svc.Service,
				Frequency:       svc.Frequency,
				CostPerService:  outOfPocket,
				TotalCost:       outOfPocket * float64(svc.Frequency),
				ShopType:        api.ShopDealership,
				IntervalBased:   true,
				WarrantyCovered: full * discount * float64(svc.Frequency),
			})
			total += outOfPocket * float64(svc.Frequency)
		}

		if yearData.Year > 3 {
			wear := 100 * brand * regionalMult
			services = append(services, api.ServiceCost{
				Service:        "Minor Wear Items",
				Frequency:      1,
				CostPerService: wear,
				TotalCost:      wear,
				ShopType:       api.ShopDealership,
				IntervalBased:  false,
			})
			total += wear
		}

		adjusted = append(adjusted, api.MaintenanceYear{
			Year:            yearData.Year,
			StartingMileage: yearData.StartingMileage,
			EndingMileage:   yearData.EndingMileage,
			Services:        services,
			TotalYearCost:   total,
		})
	}
	return adjusted
}
