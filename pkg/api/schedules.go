package api

// VehicleCharacteristics holds the static attributes resolved once per
// request from the vehicle identity. Unknown vehicles get conservative
// defaults (MPG 25, reliability 3.5, not electric).
type VehicleCharacteristics struct {
	MPG              float64 `json:"mpg"`
	KWhPer100Miles   float64 `json:"kwh_per_100_miles,omitempty"`
	IsElectric       bool    `json:"is_electric"`
	ReliabilityScore float64 `json:"reliability_score"`
	MarketSegment    string  `json:"market_segment"`
}

// RegionalContext is the resolved geography, derived once per request
// and read-only thereafter. CostMultiplier is already clamped into
// [0.8, 1.3].
type RegionalContext struct {
	State           string  `json:"state,omitempty"`
	MetroArea       string  `json:"metro_area,omitempty"`
	GeographyType   string  `json:"geography_type"`
	CostMultiplier  float64 `json:"cost_multiplier"`
	FuelPrice       float64 `json:"fuel_price"`
	ElectricityRate float64 `json:"electricity_rate"`
	Notice          string  `json:"notice,omitempty"`
}

// DepreciationYear is one row of the vehicle-value schedule.
type DepreciationYear struct {
	Year               int     `json:"year"`
	OwnershipYear      int     `json:"ownership_year"`
	VehicleAge         int     `json:"vehicle_age"`
	VehicleValue       float64 `json:"vehicle_value"`
	AnnualDepreciation float64 `json:"annual_depreciation"`
	Rate               float64 `json:"depreciation_rate"`
}

// ServiceCost is a single maintenance line item within a year.
type ServiceCost struct {
	Service         string  `json:"service"`
	Frequency       int     `json:"frequency"`
	CostPerService  float64 `json:"cost_per_service"`
	TotalCost       float64 `json:"total_cost"`
	ShopType        string  `json:"shop_type,omitempty"`
	IntervalBased   bool    `json:"interval_based"`
	WarrantyCovered float64 `json:"warranty_covered,omitempty"`
}

// MaintenanceYear is one row of the maintenance schedule.
type MaintenanceYear struct {
	Year            int           `json:"year"`
	StartingMileage int           `json:"starting_year_mileage"`
	EndingMileage   int           `json:"ending_year_mileage"`
	Services        []ServiceCost `json:"services"`
	TotalYearCost   float64       `json:"total_year_cost"`
}

// FinancingYear is one row of the loan amortization schedule.
type FinancingYear struct {
	Year             int     `json:"year"`
	AnnualPayment    float64 `json:"annual_payment"`
	InterestPaid     float64 `json:"interest_paid"`
	PrincipalPaid    float64 `json:"principal_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}
