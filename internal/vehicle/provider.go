// Package vehicle resolves make/model/year identities to static
// vehicle characteristics.
package vehicle

import (
	"strings"

	"vehicle-tco/pkg/api"
)

// Conservative defaults for unresolvable identities. A lookup miss is
// never an error.
const (
	DefaultMPG         = 25.0
	DefaultReliability = 3.5
	DefaultSegment     = "standard"
	DefaultKWhPer100Mi = 30.0
)

type entry struct {
	mpg         float64
	kwhPer100mi float64
	electric    bool
	reliability float64
	segment     string
}

// Provider looks up vehicle characteristics from an in-memory table.
type Provider struct {
	vehicles map[string]entry
}

// NewProvider creates a provider seeded with the built-in vehicle
// table. The table is read-only after construction.
func NewProvider() *Provider {
	return &Provider{
		vehicles: map[string]entry{
			"toyota|camry":            {mpg: 32, reliability: 4.5, segment: "midsize"},
			"toyota|corolla":          {mpg: 35, reliability: 4.5, segment: "compact"},
			"toyota|rav4":             {mpg: 30, reliability: 4.3, segment: "suv"},
			"toyota|prius":            {mpg: 52, reliability: 4.4, segment: "hybrid"},
			"toyota|highlander":       {mpg: 24, reliability: 4.2, segment: "suv"},
			"honda|civic":             {mpg: 34, reliability: 4.4, segment: "compact"},
			"honda|accord":            {mpg: 32, reliability: 4.4, segment: "midsize"},
			"honda|cr-v":              {mpg: 30, reliability: 4.3, segment: "suv"},
			"tesla|model 3":           {kwhPer100mi: 25, electric: true, reliability: 3.9, segment: "electric"},
			"tesla|model y":           {kwhPer100mi: 27, electric: true, reliability: 3.8, segment: "electric"},
			"tesla|model s":           {kwhPer100mi: 29, electric: true, reliability: 3.6, segment: "luxury-electric"},
			"ford|f-150":              {mpg: 22, reliability: 3.8, segment: "truck"},
			"ford|escape":             {mpg: 28, reliability: 3.7, segment: "suv"},
			"ford|mustang mach-e":     {kwhPer100mi: 33, electric: true, reliability: 3.6, segment: "electric"},
			"chevrolet|silverado":     {mpg: 21, reliability: 3.7, segment: "truck"},
			"chevrolet|equinox":       {mpg: 28, reliability: 3.6, segment: "suv"},
			"chevrolet|bolt ev":       {kwhPer100mi: 28, electric: true, reliability: 3.8, segment: "electric"},
			"nissan|altima":           {mpg: 31, reliability: 3.8, segment: "midsize"},
			"nissan|leaf":             {kwhPer100mi: 30, electric: true, reliability: 3.9, segment: "electric"},
			"hyundai|elantra":         {mpg: 33, reliability: 4.0, segment: "compact"},
			"hyundai|ioniq 5":         {kwhPer100mi: 30, electric: true, reliability: 4.0, segment: "electric"},
			"bmw|3 series":            {mpg: 28, reliability: 3.4, segment: "luxury"},
			"bmw|x3":                  {mpg: 25, reliability: 3.3, segment: "luxury-suv"},
			"mercedes-benz|c-class":   {mpg: 27, reliability: 3.3, segment: "luxury"},
			"mercedes-benz|gle":       {mpg: 22, reliability: 3.2, segment: "luxury-suv"},
			"audi|a4":                 {mpg: 28, reliability: 3.4, segment: "luxury"},
			"lexus|rx":                {mpg: 25, reliability: 4.4, segment: "luxury-suv"},
			"lexus|es":                {mpg: 29, reliability: 4.5, segment: "luxury"},
			"subaru|outback":          {mpg: 28, reliability: 4.1, segment: "wagon"},
			"kia|telluride":           {mpg: 23, reliability: 4.0, segment: "suv"},
		},
	}
}

// Resolve returns characteristics for a vehicle identity. Unknown
// vehicles get conservative defaults; trim-level differences are below
// the resolution of the table and do not change the result.
func (p *Provider) Resolve(make, model string, year int, trim string) api.VehicleCharacteristics {
	key := strings.ToLower(strings.TrimSpace(make)) + "|" + strings.ToLower(strings.TrimSpace(model))

	if e, ok := p.vehicles[key]; ok {
		c := api.VehicleCharacteristics{
			MPG:              e.mpg,
			KWhPer100Miles:   e.kwhPer100mi,
			IsElectric:       e.electric,
			ReliabilityScore: e.reliability,
			MarketSegment:    e.segment,
		}
		if c.IsElectric && c.KWhPer100Miles == 0 {
			c.KWhPer100Miles = DefaultKWhPer100Mi
		}
		return c
	}

	c := api.VehicleCharacteristics{
		MPG:              DefaultMPG,
		ReliabilityScore: DefaultReliability,
		MarketSegment:    DefaultSegment,
	}
	if looksElectric(make, model) {
		c.IsElectric = true
		c.MPG = 0
		c.KWhPer100Miles = DefaultKWhPer100Mi
		c.MarketSegment = "electric"
	}
	return c
}

// looksElectric is a naming heuristic for vehicles missing from the
// table.
func looksElectric(make, model string) bool {
	m := strings.ToLower(model)
	if strings.ToLower(make) == "tesla" {
		return true
	}
	for _, marker := range []string{"electric", " ev", "ev ", "e-tron", "ioniq", "leaf", "bolt", "lightning"} {
		if strings.Contains(m, marker) {
			return true
		}
	}
	return m == "ev"
}
