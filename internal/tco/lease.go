package tco

import (
	"vehicle-tco/internal/energy"
	"vehicle-tco/internal/insurance"
	"vehicle-tco/pkg/api"
	"vehicle-tco/pkg/money"
)

const overageFeePerMile = 0.25

// computeLease runs the lease pipeline over the lease term. The lessee
// never owns the asset, so depreciation and financing are absent; the
// lease payment, warranty-phase maintenance, and the mileage overage
// fee take their place.
func (e *Engine) computeLease(req api.AnalysisRequest, chars api.VehicleCharacteristics, region api.RegionalContext) *api.Report {
	term := req.LeaseTermYears
	nowYear := e.now().Year()
	allowance := req.AnnualMileageLimit

	// Maintenance intervals follow the mileage allowance, not actual
	// driving: overages are billed per mile, not serviced.
	rawMaint := e.maint.Schedule(allowance, term, 0, req.Make, req.Model, req.DrivingStyle)
	maintSchedule := adjustLeaseMaintenanceSchedule(rawMaint, req.Make, region.CostMultiplier)

	// Insurance tracks the leased asset's value, approximated from MSRP.
	insuredValue := req.TrimMSRP
	if insuredValue == 0 {
		insuredValue = req.Price
	}
	if insuredValue == 0 {
		insuredValue = defaultLeaseVehicleValue
	}

	isElectric := req.IsElectric || chars.IsElectric
	combined := energy.CombinedMultiplier(req.DrivingStyle, req.Terrain)

	annualLeasePayment := req.MonthlyPayment * 12
	fee := overageFee(req.AnnualMileage, allowance)

	var totals api.CategoryTotals
	breakdown := make([]api.YearRecord, 0, term)

	for year := 1; year <= term; year++ {
		ownershipYear := nowYear + year - 1

		var annualMaint float64
		var services []api.ServiceCost
		if year <= len(maintSchedule) {
			annualMaint = maintSchedule[year-1].TotalYearCost
			services = maintSchedule[year-1].Services
		}

		annualIns := insurance.AnnualPremium(insurance.PremiumInput{
			VehicleValue:       insuredValue,
			VehicleMake:        req.Make,
			VehicleModel:       req.Model,
			VehicleYear:        req.Year,
			DriverAge:          req.DriverAge,
			State:              region.State,
			CoverageType:       req.CoverageType,
			AnnualMileage:      allowance,
			NumVehicles:        req.NumHouseholdVehicles,
			RegionalMultiplier: region.CostMultiplier,
			CurrentYear:        nowYear,
		})

		var annualEnergy float64
		if isElectric {
			efficiency := energy.EstimateEfficiency(req.Make, req.Model, req.Year)
			adjusted := efficiency / combined
			annualEnergy = energy.AnnualElectricityCost(allowance, adjusted, req.ElectricityRate, req.ChargingPreference)
		} else {
			annualEnergy = energy.AnnualFuelCost(allowance, chars.MPG, req.FuelPrice, req.DrivingStyle, req.Terrain)
		}

		totalAnnual := annualLeasePayment + annualMaint + annualIns + annualEnergy + fee

		breakdown = append(breakdown, api.YearRecord{
			Year:              year,
			OwnershipYear:     ownershipYear,
			VehicleAge:        ownershipYear - req.Year,
			VehicleModelYear:  req.Year,
			CumulativeMileage: allowance * year,
			LeasePayment:      annualLeasePayment,
			Maintenance:       annualMaint,
			Services:          services,
			Insurance:         annualIns,
			FuelEnergy:        annualEnergy,
			FeesPenalties:     fee,
			TotalAnnualCost:   totalAnnual,
		})

		totals.LeasePayments += annualLeasePayment
		totals.Maintenance += annualMaint
		totals.Insurance += annualIns
		totals.FuelEnergy += annualEnergy
		totals.FeesPenalties += fee
	}

	totalLease := money.Round2(totals.LeasePayments+totals.Maintenance+totals.Insurance+totals.FuelEnergy+totals.FeesPenalties) + req.DownPayment

	averageAnnual := totalLease / float64(term)
	averageMonthly := totalLease / float64(term*12)

	var costPerMile float64
	totalMiles := allowance * term
	if totalMiles > 0 {
		costPerMile = totalLease / float64(totalMiles)
	}

	return &api.Report{
		TransactionType: api.TransactionLease,
		Summary: api.CostSummary{
			TotalLeaseCost:     totalLease,
			DownPayment:        req.DownPayment,
			AverageAnnualCost:  averageAnnual,
			AverageMonthlyCost: averageMonthly,
			CostPerMile:        costPerMile,
		},
		AnnualBreakdown:     breakdown,
		CategoryTotals:      totals,
		MaintenanceSchedule: maintSchedule,
		Affordability:       computeAffordability(averageAnnual, req.GrossIncome),
		AnalysisParameters: api.AnalysisParameters{
			LeaseTermYears:     term,
			MonthlyPayment:     req.MonthlyPayment,
			AnnualMileageLimit: allowance,
			AnnualMileage:      req.AnnualMileage,
			DrivingStyle:       req.DrivingStyle,
			Terrain:            req.Terrain,
		},
	}
}

// overageFee charges actual miles driven above the allowance. The fee
// is charged on actual mileage; unused allowance earns no credit.
func overageFee(actualMileage, allowance int) float64 {
	over := actualMileage - allowance
	if over <= 0 {
		return 0
	}
	return float64(over) * overageFeePerMile
}
