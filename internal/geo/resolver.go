// Package geo resolves ZIP codes and states to geography
// classifications, regional cost multipliers, and default fuel and
// electricity prices. All tables are process-wide read-only constants.
package geo

import (
	"fmt"
	"sort"
)

// Geography classifications. Mixed metros are reported as Suburban.
const (
	GeoUrban    = "Urban"
	GeoSuburban = "Suburban"
	GeoRural    = "Rural"
	GeoMixed    = "Mixed"
)

// National-average fallbacks when a location cannot be resolved.
const (
	NationalFuelPrice      = 3.50
	NationalElectricityRate = 0.15
)

// Location is the result of a ZIP lookup. Valid is false only for
// malformed or entirely unknown ZIPs; Message explains degraded or
// failed lookups.
type Location struct {
	Valid           bool    `json:"is_valid"`
	ZIPCode         string  `json:"zip_code"`
	State           string  `json:"state,omitempty"`
	MetroArea       string  `json:"metro_area,omitempty"`
	GeographyType   string  `json:"geography_type,omitempty"`
	FuelPrice       float64 `json:"fuel_price"`
	ElectricityRate float64 `json:"electricity_rate"`
	Message         string  `json:"message,omitempty"`
}

// ValidateZIP reports whether zip is a well-formed 5-digit ZIP code.
func ValidateZIP(zip string) bool {
	if len(zip) != 5 {
		return false
	}
	for _, c := range zip {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func zipToInt(zip string) int {
	n := 0
	for _, c := range zip {
		n = n*10 + int(c-'0')
	}
	return n
}

func metroFor(zipInt int) (metroArea, bool) {
	for _, m := range metroAreaRates {
		if m.zipStart <= zipInt && zipInt <= m.zipEnd {
			return m, true
		}
	}
	return metroArea{}, false
}

// StateFromZIP determines the state for a ZIP code.
func StateFromZIP(zip string) (string, bool) {
	if !ValidateZIP(zip) {
		return "", false
	}
	zipInt := zipToInt(zip)
	for state, ranges := range stateZIPRanges {
		for _, r := range ranges {
			if r.start <= zipInt && zipInt <= r.end {
				return state, true
			}
		}
	}
	return "", false
}

// GeographyType classifies a ZIP code as Urban, Suburban, or Rural.
// Unclassifiable ZIPs default to Suburban.
func GeographyType(zip string) string {
	if !ValidateZIP(zip) {
		return GeoSuburban
	}
	zipInt := zipToInt(zip)
	if m, ok := metroFor(zipInt); ok {
		if m.geo == GeoMixed {
			return GeoSuburban
		}
		return m.geo
	}
	for _, r := range urbanZIPRanges {
		if r.start <= zipInt && zipInt <= r.end {
			return GeoUrban
		}
	}
	for _, r := range ruralZIPRanges {
		if r.start <= zipInt && zipInt <= r.end {
			return GeoRural
		}
	}
	return GeoSuburban
}

// FuelPrice estimates $/gal for a location, preferring the metro
// table, then the state average, then the national average.
func FuelPrice(zip, state string) float64 {
	if ValidateZIP(zip) {
		if m, ok := metroFor(zipToInt(zip)); ok {
			return m.fuel
		}
	}
	if p, ok := stateFuelPrices[state]; ok {
		return p
	}
	return NationalFuelPrice
}

// ElectricityRate estimates $/kWh for a location with the same
// fallback chain as FuelPrice.
func ElectricityRate(zip, state string) float64 {
	if ValidateZIP(zip) {
		if m, ok := metroFor(zipToInt(zip)); ok {
			return m.electric
		}
	}
	if r, ok := stateElectricityRates[state]; ok {
		return r
	}
	return NationalElectricityRate
}

// LookupLocation validates a ZIP code and resolves it to location
// data. Degradation is graceful: a ZIP outside the metro table falls
// back to state averages with an explanatory message, and an unknown
// ZIP returns national averages with Valid=false.
func LookupLocation(zip string) Location {
	loc := Location{
		ZIPCode:         zip,
		FuelPrice:       NationalFuelPrice,
		ElectricityRate: NationalElectricityRate,
	}

	if !ValidateZIP(zip) {
		loc.Message = "Invalid ZIP code format. Please enter 5 digits."
		return loc
	}

	zipInt := zipToInt(zip)
	if m, ok := metroFor(zipInt); ok {
		loc.Valid = true
		loc.State = m.state
		loc.MetroArea = m.name
		loc.GeographyType = m.geo
		if m.geo == GeoMixed {
			loc.GeographyType = GeoSuburban
		}
		loc.FuelPrice = m.fuel
		loc.ElectricityRate = m.electric
		return loc
	}

	if state, ok := StateFromZIP(zip); ok {
		loc.Valid = true
		loc.State = state
		loc.GeographyType = GeographyType(zip)
		if p, ok := stateFuelPrices[state]; ok {
			loc.FuelPrice = p
		}
		if r, ok := stateElectricityRates[state]; ok {
			loc.ElectricityRate = r
		}
		loc.Message = "ZIP code recognized but detailed data unavailable. Using state averages."
		return loc
	}

	loc.Message = fmt.Sprintf("ZIP code %s not found in database.", zip)
	return loc
}

// ResolveMultiplier computes the raw regional cost multiplier for a
// ZIP/state pair: a geography-type base (Urban 1.15, Suburban 1.0,
// Rural 0.85) adjusted for high- and low-cost states. Callers clamp
// the result before applying it.
func ResolveMultiplier(zip, state string) float64 {
	if state == "" {
		if s, ok := StateFromZIP(zip); ok {
			state = s
		}
	}

	multiplier := 1.0
	switch GeographyType(zip) {
	case GeoUrban:
		multiplier = 1.15
	case GeoRural:
		multiplier = 0.85
	}

	if highCostStates[state] {
		multiplier *= 1.10
	} else if lowCostStates[state] {
		multiplier *= 0.90
	}
	return multiplier
}

// NearbyMetros scans ZIP codes within radius of zip and returns up to
// five distinct metro areas, closest first.
func NearbyMetros(zip string, radius int) []Location {
	if !ValidateZIP(zip) || radius <= 0 {
		return nil
	}
	zipInt := zipToInt(zip)

	type hit struct {
		loc      Location
		distance int
	}
	var hits []hit
	lo := max(10000, zipInt-radius)
	hi := min(99999, zipInt+radius)
	for z := lo; z <= hi; z++ {
		candidate := fmt.Sprintf("%05d", z)
		loc := LookupLocation(candidate)
		if loc.MetroArea == "" {
			continue
		}
		hits = append(hits, hit{loc: loc, distance: abs(z - zipInt)})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].distance < hits[j].distance })

	seen := make(map[string]bool)
	var out []Location
	for _, h := range hits {
		key := h.loc.State + "|" + h.loc.MetroArea
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h.loc)
		if len(out) == 5 {
			break
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
