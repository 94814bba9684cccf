// Package api defines the shared request/response contracts for the
// TCO engine and its HTTP/CLI front ends.
package api

// Transaction types accepted by the engine. Anything other than
// TransactionLease is treated as a purchase.
const (
	TransactionPurchase = "purchase"
	TransactionLease    = "lease"
)

// Driving styles. Unknown values fall back to DrivingNormal.
const (
	DrivingGentle     = "gentle"
	DrivingNormal     = "normal"
	DrivingAggressive = "aggressive"
)

// Terrain classifications. Unknown values fall back to TerrainFlat.
const (
	TerrainFlat  = "flat"
	TerrainHilly = "hilly"
)

// Charging preferences for electric vehicles.
const (
	ChargingHome   = "home"
	ChargingMixed  = "mixed"
	ChargingPublic = "public"
)

// Shop types for maintenance cost adjustment.
const (
	ShopDealership  = "dealership"
	ShopIndependent = "independent"
	ShopChain       = "chain"
	ShopSpecialty   = "specialty"
	ShopDIY         = "diy"
)

// AnalysisRequest is the single input to the TCO engine. Every optional
// field carries a documented default; defaults are applied once at the
// orchestrator entry point, never inside the pipelines.
type AnalysisRequest struct {
	// Vehicle identity.
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Trim  string `json:"trim,omitempty"`

	// TransactionType selects the pipeline: "lease" or "purchase"
	// (default).
	TransactionType string `json:"transaction_type,omitempty"`

	// Price is the negotiated purchase price. Falls back to TrimMSRP,
	// then $30,000. Never an error when absent.
	Price    float64 `json:"price,omitempty"`
	TrimMSRP float64 `json:"trim_msrp,omitempty"`

	// AnalysisYears is the ownership horizon (default 5). Negative
	// values are rejected before any engine runs.
	AnalysisYears int `json:"analysis_years,omitempty"`

	// AnnualMileage is the driver's projected yearly driving. Zero is
	// legal (a stored vehicle); negative values are rejected.
	AnnualMileage int `json:"annual_mileage,omitempty"`

	// CurrentMileage is the odometer reading at purchase.
	CurrentMileage int `json:"current_mileage,omitempty"`

	// Driver profile. DriverAge defaults to 35 for purchases and 25
	// for leases; GrossIncome defaults to $60,000.
	DriverAge            int     `json:"driver_age,omitempty"`
	State                string  `json:"state,omitempty"`
	ZIPCode              string  `json:"zip_code,omitempty"`
	GrossIncome          float64 `json:"gross_income,omitempty"`
	CoverageType         string  `json:"coverage_type,omitempty"` // default "comprehensive"
	NumHouseholdVehicles int     `json:"num_household_vehicles,omitempty"`

	// Financing. A purchase is financed when FinancingEnabled is set,
	// FinancingOption is "finance", PaymentMethod is "loan", or
	// LoanAmount is positive. LoanAmount defaults to 80% of the
	// purchase price, InterestRate to 5.0%, LoanTermYears to 5.
	FinancingEnabled bool    `json:"financing_enabled,omitempty"`
	FinancingOption  string  `json:"financing_option,omitempty"`
	PaymentMethod    string  `json:"payment_method,omitempty"`
	LoanAmount       float64 `json:"loan_amount,omitempty"`
	InterestRate     float64 `json:"interest_rate,omitempty"`
	LoanTermYears    int     `json:"loan_term,omitempty"`

	// Lease terms. LeaseTermYears falls back to AnalysisYears, then 3.
	// MonthlyPayment defaults to $400, AnnualMileageLimit to 12,000.
	LeaseTermYears     int     `json:"lease_term,omitempty"`
	MonthlyPayment     float64 `json:"monthly_payment,omitempty"`
	DownPayment        float64 `json:"down_payment,omitempty"`
	AnnualMileageLimit int     `json:"annual_mileage_limit,omitempty"`

	// Driving and energy. FuelPrice and ElectricityRate fall back to
	// the resolved regional values, then the national averages
	// ($3.50/gal, $0.15/kWh).
	DrivingStyle       string  `json:"driving_style,omitempty"`
	Terrain            string  `json:"terrain,omitempty"`
	IsElectric         bool    `json:"is_electric,omitempty"`
	FuelPrice          float64 `json:"fuel_price,omitempty"`
	ElectricityRate    float64 `json:"electricity_rate,omitempty"`
	ChargingPreference string  `json:"charging_preference,omitempty"` // default "mixed"
	ShopType           string  `json:"shop_type,omitempty"`           // default "independent"
}

// LocationRequest asks the geographic resolver about a ZIP code.
type LocationRequest struct {
	ZIPCode string `json:"zip_code"`
	State   string `json:"state,omitempty"`
}
