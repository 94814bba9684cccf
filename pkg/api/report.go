package api

import "time"

// Affordability ratings, ordered from best to worst. Thresholds are
// inclusive: exactly 10% of income is still Excellent.
const (
	RatingExcellent = "Excellent" // <= 10% of monthly income
	RatingGood      = "Good"      // <= 15%
	RatingFair      = "Fair"      // <= 20%
	RatingStretched = "Stretched" // > 20%
)

// YearRecord is the per-year cost breakdown. Purchase years carry
// depreciation and financing; lease years carry lease payments and
// fees. Records are final once appended.
type YearRecord struct {
	Year              int     `json:"year"`
	OwnershipYear     int     `json:"ownership_year"`
	VehicleAge        int     `json:"vehicle_age"`
	VehicleModelYear  int     `json:"vehicle_model_year"`
	CumulativeMileage int     `json:"cumulative_mileage"`
	VehicleValue      float64 `json:"vehicle_value,omitempty"`

	Depreciation  float64       `json:"depreciation,omitempty"`
	LeasePayment  float64       `json:"lease_payment,omitempty"`
	Maintenance   float64       `json:"maintenance"`
	Services      []ServiceCost `json:"maintenance_activities,omitempty"`
	Insurance     float64       `json:"insurance"`
	FuelEnergy    float64       `json:"fuel_energy"`
	Financing     float64       `json:"financing,omitempty"`
	FeesPenalties float64       `json:"fees_penalties,omitempty"`

	TotalAnnualCost float64 `json:"total_annual_cost"`
}

// CategoryTotals accumulates each cost category across the horizon.
type CategoryTotals struct {
	Depreciation  float64 `json:"depreciation,omitempty"`
	LeasePayments float64 `json:"lease_payments,omitempty"`
	Maintenance   float64 `json:"maintenance"`
	Insurance     float64 `json:"insurance"`
	FuelEnergy    float64 `json:"fuel_energy"`
	Financing     float64 `json:"financing,omitempty"`
	FeesPenalties float64 `json:"fees_penalties,omitempty"`
}

// CostSummary is the aggregate view. For purchases TotalTCO includes
// depreciation as an economic cost and always equals
// OutOfPocketTotal + TotalDepreciation; AverageAnnualCost and
// CostPerMile are out-of-pocket based. For leases TotalLeaseCost is
// all categories plus the down payment.
type CostSummary struct {
	TotalTCO          float64 `json:"total_tco,omitempty"`
	OutOfPocketTotal  float64 `json:"out_of_pocket_total,omitempty"`
	TotalDepreciation float64 `json:"total_depreciation,omitempty"`
	FinalVehicleValue float64 `json:"final_vehicle_value,omitempty"`

	TotalLeaseCost     float64 `json:"total_lease_cost,omitempty"`
	DownPayment        float64 `json:"down_payment,omitempty"`
	AverageMonthlyCost float64 `json:"average_monthly_cost,omitempty"`

	AverageAnnualCost float64 `json:"average_annual_cost"`
	CostPerMile       float64 `json:"cost_per_mile"`
}

// AffordabilityAssessment relates the recurring cost to gross income.
type AffordabilityAssessment struct {
	MonthlyCost           float64 `json:"monthly_cost"`
	MonthlyIncome         float64 `json:"monthly_income"`
	PercentageOfIncome    float64 `json:"percentage_of_income"`
	Rating                string  `json:"affordability_rating"`
	IsAffordable          bool    `json:"is_affordable"`
	RecommendedMaxMonthly float64 `json:"recommended_max_monthly"`
	OverBudget            bool    `json:"over_budget"`
}

// Assumptions documents the models and data behind a report.
type Assumptions struct {
	DepreciationMethod string  `json:"depreciation_method"`
	MaintenanceSource  string  `json:"maintenance_source"`
	InsuranceBasis     string  `json:"insurance_basis"`
	RegionalContext    string  `json:"regional_adjustments"`
	ReliabilityScore   float64 `json:"reliability_score"`
	MarketSegment      string  `json:"market_segment"`
}

// AnalysisParameters echoes the normalized inputs the report was
// computed from.
type AnalysisParameters struct {
	AnalysisYears   int     `json:"analysis_years,omitempty"`
	AnnualMileage   int     `json:"annual_mileage,omitempty"`
	StartingMileage int     `json:"starting_mileage,omitempty"`
	PurchasePrice   float64 `json:"purchase_price,omitempty"`

	LeaseTermYears     int     `json:"lease_term,omitempty"`
	MonthlyPayment     float64 `json:"monthly_payment,omitempty"`
	AnnualMileageLimit int     `json:"annual_mileage_limit,omitempty"`

	DrivingStyle string `json:"driving_style"`
	Terrain      string `json:"terrain"`
}

// Report is the complete output of one TCO computation.
type Report struct {
	AnalysisID      string    `json:"analysis_id"`
	ComputedAt      time.Time `json:"computed_at"`
	TransactionType string    `json:"transaction_type"`

	Summary         CostSummary    `json:"summary"`
	AnnualBreakdown []YearRecord   `json:"annual_breakdown"`
	CategoryTotals  CategoryTotals `json:"category_totals"`

	DepreciationSchedule []DepreciationYear `json:"depreciation_schedule,omitempty"`
	MaintenanceSchedule  []MaintenanceYear  `json:"maintenance_schedule,omitempty"`
	FinancingSchedule    []FinancingYear    `json:"financing_schedule,omitempty"`

	VehicleCharacteristics VehicleCharacteristics  `json:"vehicle_characteristics"`
	RegionalContext        RegionalContext         `json:"regional_context"`
	Affordability          AffordabilityAssessment `json:"affordability"`
	Assumptions            Assumptions             `json:"assumptions"`
	AnalysisParameters     AnalysisParameters      `json:"analysis_parameters"`
}
