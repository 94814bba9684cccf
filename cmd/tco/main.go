// Vehicle TCO CLI - total cost of ownership analysis
//
// Usage:
//   tco estimate --make Toyota --model Camry --year 2022 [options]
//   tco location 94102
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"vehicle-tco/internal/geo"
	"vehicle-tco/internal/tco"
	"vehicle-tco/pkg/api"
	"vehicle-tco/pkg/money"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "tco",
		Usage:   "Vehicle Total Cost of Ownership analysis",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"TCO_LOG_LEVEL"},
			},
		},

		Commands: []*cli.Command{
			estimateCommand(),
			locationCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// ESTIMATE COMMAND
// =============================================================================

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Estimate ownership or lease costs for a vehicle",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "make", Usage: "Vehicle make", Required: true},
			&cli.StringFlag{Name: "model", Usage: "Vehicle model", Required: true},
			&cli.IntFlag{Name: "year", Usage: "Model year", Required: true},
			&cli.StringFlag{Name: "trim", Usage: "Trim level"},
			&cli.StringFlag{
				Name:  "transaction",
				Value: "purchase",
				Usage: "Transaction type (purchase, lease)",
			},
			&cli.Float64Flag{Name: "price", Usage: "Purchase price (default $30,000)"},
			&cli.IntFlag{Name: "analysis-years", Usage: "Ownership horizon (default 5)"},
			&cli.IntFlag{Name: "annual-mileage", Value: 12000, Usage: "Projected yearly mileage"},
			&cli.IntFlag{Name: "current-mileage", Usage: "Odometer reading at purchase"},
			&cli.IntFlag{Name: "driver-age", Usage: "Driver age (default 35 purchase, 25 lease)"},
			&cli.StringFlag{Name: "state", Usage: "Two-letter state code"},
			&cli.StringFlag{Name: "zip", Usage: "5-digit ZIP code"},
			&cli.Float64Flag{Name: "income", Usage: "Gross annual income (default $60,000)"},
			&cli.StringFlag{Name: "driving-style", Value: "normal", Usage: "Driving style (gentle, normal, aggressive)"},
			&cli.StringFlag{Name: "terrain", Value: "flat", Usage: "Terrain (flat, hilly)"},
			&cli.StringFlag{Name: "shop-type", Value: "independent", Usage: "Maintenance shop (dealership, independent, chain, specialty, diy)"},
			&cli.BoolFlag{Name: "electric", Usage: "Treat the vehicle as electric"},
			&cli.StringFlag{Name: "charging", Value: "mixed", Usage: "Charging preference (home, mixed, public)"},
			&cli.BoolFlag{Name: "finance", Usage: "Finance the purchase"},
			&cli.Float64Flag{Name: "loan-amount", Usage: "Loan amount (default 80% of price)"},
			&cli.Float64Flag{Name: "interest-rate", Usage: "Annual interest rate percent (default 5.0)"},
			&cli.IntFlag{Name: "loan-term", Usage: "Loan term in years (default 5)"},
			&cli.IntFlag{Name: "lease-term", Usage: "Lease term in years (default 3)"},
			&cli.Float64Flag{Name: "monthly-payment", Usage: "Lease monthly payment (default $400)"},
			&cli.Float64Flag{Name: "down-payment", Usage: "Lease down payment"},
			&cli.IntFlag{Name: "mileage-limit", Usage: "Lease annual mileage allowance (default 12,000)"},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		},
		Action: runEstimate,
	}
}

func runEstimate(c *cli.Context) error {
	logger := zerolog.New(os.Stderr).Level(parseLevel(c.String("log-level")))
	engine := tco.NewEngine(logger)

	req := api.AnalysisRequest{
		Make:               c.String("make"),
		Model:              c.String("model"),
		Year:               c.Int("year"),
		Trim:               c.String("trim"),
		TransactionType:    c.String("transaction"),
		Price:              c.Float64("price"),
		AnalysisYears:      c.Int("analysis-years"),
		AnnualMileage:      c.Int("annual-mileage"),
		CurrentMileage:     c.Int("current-mileage"),
		DriverAge:          c.Int("driver-age"),
		State:              c.String("state"),
		ZIPCode:            c.String("zip"),
		GrossIncome:        c.Float64("income"),
		DrivingStyle:       c.String("driving-style"),
		Terrain:            c.String("terrain"),
		ShopType:           c.String("shop-type"),
		IsElectric:         c.Bool("electric"),
		ChargingPreference: c.String("charging"),
		FinancingEnabled:   c.Bool("finance"),
		LoanAmount:         c.Float64("loan-amount"),
		InterestRate:       c.Float64("interest-rate"),
		LoanTermYears:      c.Int("loan-term"),
		LeaseTermYears:     c.Int("lease-term"),
		MonthlyPayment:     c.Float64("monthly-payment"),
		DownPayment:        c.Float64("down-payment"),
		AnnualMileageLimit: c.Int("mileage-limit"),
	}

	report, err := engine.ComputeTCO(req)
	if err != nil {
		return err
	}

	switch c.String("format") {
	case "json":
		return outputJSON(report)
	default:
		return outputTable(report)
	}
}

// =============================================================================
// LOCATION COMMAND
// =============================================================================

func locationCommand() *cli.Command {
	return &cli.Command{
		Name:      "location",
		Usage:     "Look up regional cost data for a ZIP code",
		ArgsUsage: "<zip>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one ZIP code argument")
			}
			loc := geo.LookupLocation(c.Args().First())
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(loc)
		},
	}
}

// =============================================================================
// OUTPUT FORMATTERS
// =============================================================================

func outputJSON(report *api.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func outputTable(report *api.Report) error {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	if report.TransactionType == api.TransactionLease {
		fmt.Println("║                    🚗 LEASE COST ANALYSIS                     ║")
	} else {
		fmt.Println("║                  🚗 OWNERSHIP COST ANALYSIS                   ║")
	}
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")

	s := report.Summary
	if report.TransactionType == api.TransactionLease {
		fmt.Printf("║  Total Lease Cost:      %-37s ║\n", money.Format(s.TotalLeaseCost))
		fmt.Printf("║  Average Monthly:       %-37s ║\n", money.Format(s.AverageMonthlyCost))
	} else {
		fmt.Printf("║  Total TCO:             %-37s ║\n", money.Format(s.TotalTCO))
		fmt.Printf("║  Out of Pocket:         %-37s ║\n", money.Format(s.OutOfPocketTotal))
		fmt.Printf("║  Depreciation:          %-37s ║\n", money.Format(s.TotalDepreciation))
		fmt.Printf("║  Final Vehicle Value:   %-37s ║\n", money.Format(s.FinalVehicleValue))
	}
	fmt.Printf("║  Average Annual:        %-37s ║\n", money.Format(s.AverageAnnualCost))
	fmt.Printf("║  Cost Per Mile:         $%-36.3f ║\n", s.CostPerMile)
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")

	fmt.Println("║  ANNUAL BREAKDOWN                                             ║")
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	for _, yr := range report.AnnualBreakdown {
		fmt.Printf("║  Year %-2d  %-37s  %11s ║\n",
			yr.Year,
			fmt.Sprintf("(%d, %d mi)", yr.OwnershipYear, yr.CumulativeMileage),
			money.Format(yr.TotalAnnualCost))
	}
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")

	a := report.Affordability
	fmt.Printf("║  Affordability:         %-37s ║\n",
		fmt.Sprintf("%s (%.1f%% of income)", a.Rating, a.PercentageOfIncome))
	fmt.Printf("║  Monthly Cost:          %-37s ║\n", money.Format(a.MonthlyCost))
	fmt.Printf("║  Recommended Max:       %-37s ║\n", money.Format(a.RecommendedMaxMonthly))
	if report.RegionalContext.Notice != "" {
		fmt.Printf("║  ⚠️  %-56s ║\n", truncate(report.RegionalContext.Notice, 56))
	}
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
