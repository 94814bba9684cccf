// Package tco orchestrates the cost engines into total-cost-of-
// ownership reports. It is the sole entry point: it validates and
// defaults the request once, resolves vehicle characteristics and the
// regional context, then dispatches to the purchase or lease pipeline.
package tco

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"vehicle-tco/internal/geo"
	"vehicle-tco/internal/maintenance"
	"vehicle-tco/internal/vehicle"
	"vehicle-tco/pkg/api"
)

// Fatal validation errors. Everything else degrades to documented
// defaults.
var (
	ErrInvalidAnalysisYears = errors.New("analysis_years must be at least 1")
	ErrNegativeMileage      = errors.New("annual_mileage must not be negative")
	ErrInvalidLeaseTerm     = errors.New("lease_term must not be negative")
)

// Request-level fallbacks.
const (
	defaultAnalysisYears     = 5
	defaultPurchasePrice     = 30000.0
	defaultLeaseVehicleValue = 40000.0
	defaultLeaseTermYears    = 3
	defaultMonthlyPayment    = 400.0
	defaultMileageAllowance  = 12000
	defaultGrossIncome       = 60000.0
	defaultInterestRate      = 5.0
	defaultLoanTermYears     = 5
	defaultPurchaseDriverAge = 35
	defaultLeaseDriverAge    = 25
)

// Engine computes TCO reports. One call owns all of its intermediate
// state; engines are stateless, so a single Engine is safe for
// concurrent use.
type Engine struct {
	log      zerolog.Logger
	now      func() time.Time
	vehicles *vehicle.Provider
	maint    *maintenance.Engine
}

// NewEngine creates a TCO engine.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{
		log:      logger,
		now:      time.Now,
		vehicles: vehicle.NewProvider(),
		maint:    maintenance.NewEngine(),
	}
}

// WithClock overrides the engine's clock.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// ComputeTCO validates the request and produces a complete report for
// either the purchase or lease pipeline.
func (e *Engine) ComputeTCO(req api.AnalysisRequest) (*api.Report, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	req = applyDefaults(req)

	chars := e.vehicles.Resolve(req.Make, req.Model, req.Year, req.Trim)
	region := e.resolveRegion(req)

	if req.FuelPrice == 0 {
		req.FuelPrice = region.FuelPrice
	}
	if req.ElectricityRate == 0 {
		req.ElectricityRate = region.ElectricityRate
	}

	var report *api.Report
	if strings.EqualFold(req.TransactionType, api.TransactionLease) {
		report = e.computeLease(req, chars, region)
	} else {
		report = e.computePurchase(req, chars, region)
	}

	report.AnalysisID = uuid.NewString()
	report.ComputedAt = e.now()
	report.VehicleCharacteristics = chars
	report.RegionalContext = region
	report.Assumptions = buildAssumptions(chars, region)

	e.log.Info().
		Str("analysis_id", report.AnalysisID).
		Str("transaction_type", report.TransactionType).
		Int("years", len(report.AnnualBreakdown)).
		Float64("average_annual_cost", report.Summary.AverageAnnualCost).
		Msg("computed ownership cost report")

	return report, nil
}

func validate(req api.AnalysisRequest) error {
	// AnalysisYears 0 means unset; anything else below 1 cannot drive
	// the year loop.
	if req.AnalysisYears != 0 && req.AnalysisYears < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidAnalysisYears, req.AnalysisYears)
	}
	if req.AnnualMileage < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeMileage, req.AnnualMileage)
	}
	if req.AnnualMileageLimit < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeMileage, req.AnnualMileageLimit)
	}
	// A negative term would drive the lease loop and its averages off a
	// nonsense divisor; zero still means unset.
	if req.LeaseTermYears < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLeaseTerm, req.LeaseTermYears)
	}
	return nil
}

// applyDefaults normalizes every optional field exactly once. Pipeline
// code never re-derives defaults.
func applyDefaults(req api.AnalysisRequest) api.AnalysisRequest {
	lease := strings.EqualFold(req.TransactionType, api.TransactionLease)
	if req.TransactionType == "" {
		req.TransactionType = api.TransactionPurchase
	}

	// Lease term falls back to the raw analysis horizon before the
	// horizon itself is defaulted.
	if req.LeaseTermYears == 0 {
		if req.AnalysisYears > 0 {
			req.LeaseTermYears = req.AnalysisYears
		} else {
			req.LeaseTermYears = defaultLeaseTermYears
		}
	}
	if req.AnalysisYears == 0 {
		req.AnalysisYears = defaultAnalysisYears
	}

	if req.DrivingStyle == "" {
		req.DrivingStyle = api.DrivingNormal
	}
	if req.Terrain == "" {
		req.Terrain = api.TerrainFlat
	}
	if req.ChargingPreference == "" {
		req.ChargingPreference = api.ChargingMixed
	}
	if req.CoverageType == "" {
		req.CoverageType = "comprehensive"
	}
	if req.ShopType == "" {
		req.ShopType = api.ShopIndependent
	}
	if req.GrossIncome == 0 {
		req.GrossIncome = defaultGrossIncome
	}
	if req.InterestRate == 0 {
		req.InterestRate = defaultInterestRate
	}
	if req.LoanTermYears == 0 {
		req.LoanTermYears = defaultLoanTermYears
	}
	if req.MonthlyPayment == 0 {
		req.MonthlyPayment = defaultMonthlyPayment
	}
	if req.AnnualMileageLimit == 0 {
		req.AnnualMileageLimit = defaultMileageAllowance
	}

	if req.DriverAge == 0 {
		if lease {
			req.DriverAge = defaultLeaseDriverAge
		} else {
			req.DriverAge = defaultPurchaseDriverAge
		}
	}
	if req.NumHouseholdVehicles == 0 {
		if lease {
			req.NumHouseholdVehicles = 1
		} else {
			req.NumHouseholdVehicles = 2
		}
	}
	return req
}

// resolveRegion derives the read-only regional context. Lookup
// failures degrade to state averages, then national averages; the
// multiplier is clamped here so no pipeline sees a raw extreme.
func (e *Engine) resolveRegion(req api.AnalysisRequest) api.RegionalContext {
	ctx := api.RegionalContext{
		State:         req.State,
		GeographyType: geo.GeoSuburban,
	}

	if req.ZIPCode != "" {
		loc := geo.LookupLocation(req.ZIPCode)
		if ctx.State == "" {
			ctx.State = loc.State
		}
		ctx.MetroArea = loc.MetroArea
		if loc.GeographyType != "" {
			ctx.GeographyType = loc.GeographyType
		}
		ctx.Notice = loc.Message
	}

	ctx.CostMultiplier = clampRegional(geo.ResolveMultiplier(req.ZIPCode, ctx.State))
	ctx.FuelPrice = geo.FuelPrice(req.ZIPCode, ctx.State)
	ctx.ElectricityRate = geo.ElectricityRate(req.ZIPCode, ctx.State)
	return ctx
}

func buildAssumptions(chars api.VehicleCharacteristics, region api.RegionalContext) api.Assumptions {
	state := region.State
	if state == "" {
		state = "US"
	}
	return api.Assumptions{
		DepreciationMethod: "Market-based curve with brand retention",
		MaintenanceSource:  "Manufacturer interval schedules",
		InsuranceBasis:     "State base rates with driver profile",
		RegionalContext:    fmt.Sprintf("%s geography in %s", region.GeographyType, state),
		ReliabilityScore:   chars.ReliabilityScore,
		MarketSegment:      chars.MarketSegment,
	}
}
