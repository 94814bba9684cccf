package tco

import (
	"vehicle-tco/internal/depreciation"
	"vehicle-tco/internal/energy"
	"vehicle-tco/internal/finance"
	"vehicle-tco/internal/insurance"
	"vehicle-tco/pkg/api"
	"vehicle-tco/pkg/money"
)

// computePurchase runs the purchase pipeline: full depreciation,
// maintenance, and financing schedules first, then the year loop that
// carries vehicle value and cumulative mileage forward.
func (e *Engine) computePurchase(req api.AnalysisRequest, chars api.VehicleCharacteristics, region api.RegionalContext) *api.Report {
	price := req.Price
	if price == 0 {
		price = req.TrimMSRP
	}
	if price == 0 {
		price = defaultPurchasePrice
	}

	years := req.AnalysisYears
	nowYear := e.now().Year()

	depSchedule := depreciation.NewEngineForYear(nowYear).
		Schedule(price, req.Make, req.Model, req.Year, req.AnnualMileage, years)

	rawMaint := e.maint.Schedule(req.AnnualMileage, years, req.CurrentMileage, req.Make, req.Model, req.DrivingStyle)
	maintSchedule := adjustMaintenanceSchedule(rawMaint, req.Make, req.ShopType, region.CostMultiplier)

	var finSchedule []api.FinancingYear
	if isFinanced(req) {
		loanAmount := req.LoanAmount
		if loanAmount == 0 {
			loanAmount = price * 0.8
		}
		finSchedule = finance.Amortize(loanAmount, req.InterestRate, req.LoanTermYears, years)
	}

	// Single decision point for the energy branch.
	isElectric := req.IsElectric || chars.IsElectric
	combined := energy.CombinedMultiplier(req.DrivingStyle, req.Terrain)

	var totals api.CategoryTotals
	breakdown := make([]api.YearRecord, 0, years)
	priorValue := price

	for year := 1; year <= years; year++ {
		ownershipYear := nowYear + year - 1

		yearValue := price * 0.5
		if year <= len(depSchedule) {
			yearValue = depSchedule[year-1].VehicleValue
		}
		annualDep := priorValue - yearValue
		priorValue = yearValue

		var annualMaint float64
		var services []api.ServiceCost
		if year <= len(maintSchedule) {
			annualMaint = maintSchedule[year-1].TotalYearCost
			services = maintSchedule[year-1].Services
		}

		annualIns := insurance.AnnualPremium(insurance.PremiumInput{
			VehicleValue:       yearValue,
			VehicleMake:        req.Make,
			VehicleModel:       req.Model,
			VehicleYear:        req.Year,
			DriverAge:          req.DriverAge,
			State:              region.State,
			CoverageType:       req.CoverageType,
			AnnualMileage:      req.AnnualMileage,
			NumVehicles:        req.NumHouseholdVehicles,
			RegionalMultiplier: region.CostMultiplier,
			CurrentYear:        nowYear,
		})

		var annualEnergy float64
		if isElectric {
			// Worse driving raises kWh per mile, so the combined
			// multiplier divides the efficiency here.
			efficiency := energy.EstimateEfficiency(req.Make, req.Model, req.Year)
			adjusted := efficiency / combined
			annualEnergy = energy.AnnualElectricityCost(req.AnnualMileage, adjusted, req.ElectricityRate, req.ChargingPreference)
		} else {
			annualEnergy = energy.AnnualFuelCost(req.AnnualMileage, chars.MPG, req.FuelPrice, req.DrivingStyle, req.Terrain)
		}

		var annualFin float64
		if year <= len(finSchedule) {
			annualFin = finSchedule[year-1].AnnualPayment
		}

		totalAnnual := annualDep + annualMaint + annualIns + annualEnergy + annualFin

		breakdown = append(breakdown, api.YearRecord{
			Year:              year,
			OwnershipYear:     ownershipYear,
			VehicleAge:        ownershipYear - req.Year,
			VehicleModelYear:  req.Year,
			CumulativeMileage: req.CurrentMileage + req.AnnualMileage*year,
			VehicleValue:      yearValue,
			Depreciation:      annualDep,
			Maintenance:       annualMaint,
			Services:          services,
			Insurance:         annualIns,
			FuelEnergy:        annualEnergy,
			Financing:         annualFin,
			TotalAnnualCost:   totalAnnual,
		})

		totals.Depreciation += annualDep
		totals.Maintenance += annualMaint
		totals.Insurance += annualIns
		totals.FuelEnergy += annualEnergy
		totals.Financing += annualFin
	}

	// Out-of-pocket excludes depreciation, the economic non-cash cost;
	// rounding the two parts keeps the TCO identity exact.
	depTotal := money.Round2(totals.Depreciation)
	outOfPocket := money.Round2(totals.Maintenance + totals.Insurance + totals.FuelEnergy + totals.Financing)
	totalTCO := depTotal + outOfPocket

	averageAnnual := outOfPocket / float64(years)

	var costPerMile float64
	totalMiles := req.AnnualMileage * years
	if totalMiles > 0 {
		costPerMile = outOfPocket / float64(totalMiles)
	}

	finalValue := price * 0.5
	if len(depSchedule) > 0 {
		finalValue = depSchedule[len(depSchedule)-1].VehicleValue
	}

	return &api.Report{
		TransactionType: api.TransactionPurchase,
		Summary: api.CostSummary{
			TotalTCO:          totalTCO,
			OutOfPocketTotal:  outOfPocket,
			TotalDepreciation: depTotal,
			FinalVehicleValue: finalValue,
			AverageAnnualCost: averageAnnual,
			CostPerMile:       costPerMile,
		},
		AnnualBreakdown:      breakdown,
		CategoryTotals:       totals,
		DepreciationSchedule: depSchedule,
		MaintenanceSchedule:  maintSchedule,
		FinancingSchedule:    finSchedule,
		Affordability:        computeAffordability(averageAnnual, req.GrossIncome),
		AnalysisParameters: api.AnalysisParameters{
			AnalysisYears:   years,
			AnnualMileage:   req.AnnualMileage,
			StartingMileage: req.CurrentMileage,
			PurchasePrice:   price,
			DrivingStyle:    req.DrivingStyle,
			Terrain:         req.Terrain,
		},
	}
}

// isFinanced applies OR semantics across every way a request can ask
// for financing.
func isFinanced(req api.AnalysisRequest) bool {
	return req.FinancingEnabled ||
		req.FinancingOption == "finance" ||
		req.PaymentMethod == "loan" ||
		req.LoanAmount > 0
}
