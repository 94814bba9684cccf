package geo

// metroArea is a ZIP-range row of the metropolitan rate table.
type metroArea struct {
	zipStart int
	zipEnd   int
	state    string
	name     string
	geo      string
	fuel     float64
	electric float64
}

// metroAreaRates maps ZIP ranges to 2025 metropolitan fuel and
// electricity rates. Read-only after init; concurrent readers need no
// locking.
var metroAreaRates = []metroArea{
	// Northeast
	{2101, 2299, "MA", "Boston Metro", GeoUrban, 3.80, 0.27},
	{1701, 1899, "MA", "Worcester/Suburbs", GeoSuburban, 3.75, 0.26},
	{6001, 6199, "CT", "Connecticut", GeoMixed, 3.75, 0.30},
	{2801, 2999, "RI", "Providence Metro", GeoUrban, 3.75, 0.28},
	{3801, 3999, "NH", "New Hampshire", GeoMixed, 3.65, 0.23},
	{4001, 4999, "ME", "Maine", GeoMixed, 3.70, 0.16},
	{5001, 5999, "VT", "Vermont", GeoRural, 3.70, 0.17},

	// New York
	{10001, 10499, "NY", "Manhattan", GeoUrban, 3.95, 0.26},
	{10500, 10999, "NY", "Bronx/Westchester", GeoUrban, 3.90, 0.25},
	{11001, 11999, "NY", "Brooklyn/Queens", GeoUrban, 3.90, 0.25},
	{12001, 12999, "NY", "Albany/Capital Region", GeoSuburban, 3.75, 0.19},
	{13001, 13999, "NY", "Syracuse/Central NY", GeoSuburban, 3.70, 0.18},
	{14001, 14999, "NY", "Buffalo/Western NY", GeoSuburban, 3.70, 0.17},

	// New Jersey
	{7001, 7999, "NJ", "Northern NJ Metro", GeoUrban, 3.70, 0.20},
	{8001, 8999, "NJ", "Central/Southern NJ", GeoSuburban, 3.65, 0.19},

	// Pennsylvania
	{15001, 15999, "PA", "Pittsburgh Metro", GeoUrban, 3.65, 0.15},
	{16001, 17999, "PA", "Central PA", GeoSuburban, 3.60, 0.14},
	{18001, 18999, "PA", "Northeast PA", GeoSuburban, 3.60, 0.15},
	{19001, 19699, "PA", "Philadelphia Metro", GeoUrban, 3.65, 0.17},

	// Delaware, DC, Maryland
	{19700, 19999, "DE", "Delaware", GeoSuburban, 3.45, 0.14},
	{20001, 20599, "DC", "Washington DC", GeoUrban, 3.60, 0.16},
	{20600, 21999, "MD", "Maryland Metro", GeoSuburban, 3.55, 0.18},

	// Virginia, West Virginia
	{22001, 22999, "VA", "Northern Virginia", GeoSuburban, 3.50, 0.14},
	{23001, 24699, "VA", "Central/Coastal VA", GeoSuburban, 3.45, 0.13},
	{24700, 26999, "WV", "West Virginia", GeoRural, 3.40, 0.12},

	// Midwest
	{43001, 43999, "OH", "Columbus Metro", GeoUrban, 3.40, 0.15},
	{44001, 44999, "OH", "Cleveland Metro", GeoUrban, 3.45, 0.16},
	{45001, 45999, "OH", "Cincinnati/Dayton", GeoUrban, 3.40, 0.15},
	{48001, 48999, "MI", "Detroit Metro", GeoUrban, 3.50, 0.17},
	{49001, 49999, "MI", "West/North Michigan", GeoSuburban, 3.45, 0.16},
	{60001, 60699, "IL", "Chicago Metro", GeoUrban, 3.60, 0.16},
	{61001, 62999, "IL", "Central/Southern IL", GeoSuburban, 3.50, 0.14},
	{46001, 46999, "IN", "Indianapolis Metro", GeoUrban, 3.35, 0.14},
	{47001, 47999, "IN", "Southern Indiana", GeoSuburban, 3.30, 0.13},
	{53001, 53999, "WI", "Milwaukee/Madison", GeoUrban, 3.45, 0.15},
	{54001, 54999, "WI", "Northern Wisconsin", GeoRural, 3.40, 0.14},
	{55001, 55999, "MN", "Minneapolis-St Paul", GeoUrban, 3.45, 0.14},
	{56001, 56799, "MN", "Southern Minnesota", GeoRural, 3.40, 0.13},
	{50001, 52999, "IA", "Iowa", GeoMixed, 3.25, 0.12},
	{63001, 63999, "MO", "St Louis Metro", GeoUrban, 3.25, 0.13},
	{64001, 64999, "MO", "Kansas City Metro", GeoUrban, 3.20, 0.13},
	{65001, 65899, "MO", "Central Missouri", GeoSuburban, 3.15, 0.12},
	{66001, 67999, "KS", "Kansas", GeoMixed, 3.15, 0.14},
	{68001, 69999, "NE", "Nebraska", GeoMixed, 3.30, 0.11},
	{57001, 57999, "SD", "South Dakota", GeoRural, 3.35, 0.12},
	{58001, 58999, "ND", "North Dakota", GeoRural, 3.25, 0.11},

	// South
	{40001, 42799, "KY", "Kentucky", GeoMixed, 3.30, 0.11},
	{37001, 38599, "TN", "Tennessee", GeoMixed, 3.20, 0.12},
	{27001, 28999, "NC", "North Carolina", GeoMixed, 3.35, 0.13},
	{29001, 29999, "SC", "South Carolina", GeoMixed, 3.25, 0.14},
	{30001, 31999, "GA", "Atlanta Metro", GeoUrban, 3.30, 0.14},
	{32001, 32999, "FL", "Central/North Florida", GeoMixed, 3.40, 0.14},
	{33001, 33999, "FL", "South Florida/Miami", GeoUrban, 3.45, 0.15},
	{34001, 34999, "FL", "Southwest Florida", GeoSuburban, 3.35, 0.14},
	{35001, 36999, "AL", "Alabama", GeoMixed, 3.20, 0.13},
	{38601, 39999, "MS", "Mississippi", GeoMixed, 3.10, 0.12},
	{70001, 71499, "LA", "Louisiana", GeoMixed, 3.05, 0.11},
	{71600, 72999, "AR", "Arkansas", GeoMixed, 3.10, 0.11},
	{73001, 74999, "OK", "Oklahoma", GeoMixed, 3.15, 0.12},

	// Texas
	{75001, 75499, "TX", "Dallas-Fort Worth", GeoUrban, 3.25, 0.14},
	{76001, 76999, "TX", "Fort Worth/West", GeoUrban, 3.20, 0.13},
	{77001, 77599, "TX", "Houston Metro", GeoUrban, 3.20, 0.13},
	{78001, 78999, "TX", "Austin/San Antonio", GeoUrban, 3.30, 0.13},
	{79001, 79999, "TX", "West Texas", GeoRural, 3.15, 0.12},

	// Mountain West
	{59001, 59999, "MT", "Montana", GeoRural, 3.60, 0.12},
	{82001, 83199, "WY", "Wyoming", GeoRural, 3.50, 0.12},
	{83200, 83999, "ID", "Idaho", GeoRural, 3.65, 0.10},
	{80001, 81699, "CO", "Colorado", GeoMixed, 3.50, 0.14},
	{87001, 88499, "NM", "New Mexico", GeoMixed, 3.40, 0.14},
	{84001, 84799, "UT", "Utah", GeoMixed, 3.75, 0.11},
	{85001, 86599, "AZ", "Arizona", GeoMixed, 3.85, 0.14},
	{88901, 89999, "NV", "Nevada", GeoMixed, 4.05, 0.13},

	// Pacific Northwest
	{98001, 99399, "WA", "Western Washington", GeoMixed, 4.20, 0.10},
	{99401, 99499, "WA", "Eastern Washington", GeoRural, 4.10, 0.09},
	{97001, 97999, "OR", "Oregon", GeoMixed, 4.10, 0.11},

	// Alaska
	{99500, 99999, "AK", "Alaska", GeoRural, 4.15, 0.24},

	// California
	{90001, 90899, "CA", "Los Angeles Metro", GeoUrban, 4.70, 0.28},
	{91001, 91899, "CA", "LA Suburbs/Valleys", GeoSuburban, 4.65, 0.27},
	{92001, 92199, "CA", "San Diego Metro", GeoUrban, 4.55, 0.38},
	{92600, 92899, "CA", "Orange County", GeoSuburban, 4.65, 0.27},
	{92200, 92599, "CA", "Inland Empire", GeoSuburban, 4.60, 0.26},
	{93500, 93599, "CA", "Inland Empire East", GeoSuburban, 4.55, 0.25},
	{93001, 93499, "CA", "Central Valley", GeoSuburban, 4.50, 0.24},
	{94001, 94999, "CA", "San Francisco/Peninsula", GeoUrban, 4.85, 0.32},
	{95001, 95199, "CA", "San Jose/Silicon Valley", GeoUrban, 4.75, 0.30},
	{94500, 94799, "CA", "East Bay", GeoSuburban, 4.70, 0.30},
	{95200, 95999, "CA", "Sacramento/North CA", GeoSuburban, 4.60, 0.28},
	{96001, 96199, "CA", "Northern CA", GeoRural, 4.55, 0.27},

	// Hawaii
	{96701, 96899, "HI", "Hawaii", GeoMixed, 4.95, 0.42},
}

// stateFuelPrices holds state-average $/gal, the fallback when a ZIP
// is outside the metro table.
var stateFuelPrices = map[string]float64{
	"AL": 3.20, "AK": 4.15, "AZ": 3.85, "AR": 3.10, "CA": 4.65, "CO": 3.50, "CT": 3.75,
	"DE": 3.45, "FL": 3.40, "GA": 3.30, "HI": 4.95, "ID": 3.65, "IL": 3.60, "IN": 3.35,
	"IA": 3.25, "KS": 3.15, "KY": 3.30, "LA": 3.05, "ME": 3.70, "MD": 3.55, "MA": 3.80,
	"MI": 3.50, "MN": 3.45, "MS": 3.10, "MO": 3.20, "MT": 3.60, "NE": 3.30, "NV": 4.05,
	"NH": 3.65, "NJ": 3.70, "NM": 3.40, "NY": 3.90, "NC": 3.35, "ND": 3.25, "OH": 3.40,
	"OK": 3.15, "OR": 4.10, "PA": 3.65, "RI": 3.75, "SC": 3.25, "SD": 3.35, "TN": 3.20,
	"TX": 3.25, "UT": 3.75, "VT": 3.70, "VA": 3.45, "WA": 4.20, "WV": 3.40, "WI": 3.45,
	"WY": 3.50, "DC": 3.60,
}

// stateElectricityRates holds state-average $/kWh.
var stateElectricityRates = map[string]float64{
	"AL": 0.13, "AK": 0.24, "AZ": 0.14, "AR": 0.11, "CA": 0.33, "CO": 0.14, "CT": 0.30,
	"DE": 0.14, "FL": 0.14, "GA": 0.14, "HI": 0.42, "ID": 0.10, "IL": 0.16, "IN": 0.14,
	"IA": 0.12, "KS": 0.14, "KY": 0.11, "LA": 0.11, "ME": 0.16, "MD": 0.18, "MA": 0.27,
	"MI": 0.17, "MN": 0.14, "MS": 0.12, "MO": 0.13, "MT": 0.12, "NE": 0.11, "NV": 0.13,
	"NH": 0.23, "NJ": 0.20, "NM": 0.14, "NY": 0.20, "NC": 0.13, "ND": 0.11, "OH": 0.15,
	"OK": 0.12, "OR": 0.11, "PA": 0.17, "RI": 0.28, "SC": 0.14, "SD": 0.12, "TN": 0.12,
	"TX": 0.13, "UT": 0.11, "VT": 0.17, "VA": 0.13, "WA": 0.10, "WV": 0.12, "WI": 0.15,
	"WY": 0.12, "DC": 0.16,
}

type zipRange struct{ start, end int }

// stateZIPRanges determines the state when the metro table misses.
var stateZIPRanges = map[string][]zipRange{
	"AL": {{35000, 36999}},
	"AK": {{99500, 99999}},
	"AZ": {{85000, 86599}},
	"AR": {{71600, 72999}, {75502, 75502}},
	"CA": {{90000, 96199}},
	"CO": {{80000, 81699}},
	"CT": {{6000, 6999}},
	"DE": {{19700, 19999}},
	"DC": {{20000, 20599}},
	"FL": {{32000, 34999}},
	"GA": {{30000, 31999}, {39800, 39999}},
	"HI": {{96700, 96899}},
	"ID": {{83200, 83999}},
	"IL": {{60000, 62999}},
	"IN": {{46000, 47999}},
	"IA": {{50000, 52999}},
	"KS": {{66000, 67999}},
	"KY": {{40000, 42799}},
	"LA": {{70000, 71499}},
	"ME": {{3900, 4999}},
	"MD": {{20600, 21999}},
	"MA": {{1000, 2799}, {5501, 5599}},
	"MI": {{48000, 49999}},
	"MN": {{55000, 56799}},
	"MS": {{38600, 39999}},
	"MO": {{63000, 65899}},
	"MT": {{59000, 59999}},
	"NE": {{68000, 69999}},
	"NV": {{88900, 89999}},
	"NH": {{3000, 3899}},
	"NJ": {{7000, 8999}},
	"NM": {{87000, 88499}},
	"NY": {{10000, 14999}, {6390, 6390}},
	"NC": {{27000, 28999}},
	"ND": {{58000, 58999}},
	"OH": {{43000, 45999}},
	"OK": {{73000, 74999}},
	"OR": {{97000, 97999}},
	"PA": {{15000, 19699}},
	"RI": {{2800, 2999}},
	"SC": {{29000, 29999}},
	"SD": {{57000, 57999}},
	"TN": {{37000, 38599}},
	"TX": {{73301, 73301}, {75000, 79999}, {88500, 88599}},
	"UT": {{84000, 84799}},
	"VT": {{5000, 5999}},
	"VA": {{20100, 20199}, {22000, 24699}},
	"WA": {{98000, 99499}},
	"WV": {{24700, 26999}},
	"WI": {{53000, 54999}},
	"WY": {{82000, 83199}},
}

// urbanZIPRanges classifies major city cores when the metro table has
// no geography for a ZIP.
var urbanZIPRanges = []zipRange{
	{10001, 10299}, {11201, 11299}, {11101, 11199}, // NYC
	{90001, 90099}, {90201, 90299}, {91401, 91499}, // LA
	{60601, 60661}, {60007, 60199}, // Chicago
	{77001, 77099}, {77201, 77299}, // Houston
	{85001, 85099}, {85201, 85299}, // Phoenix
	{19101, 19199}, {19201, 19299}, // Philadelphia
	{78201, 78299}, // San Antonio
	{92101, 92199}, // San Diego
	{75201, 75299}, // Dallas
	{95101, 95199}, {94301, 94399}, // San Jose/Silicon Valley
	{78701, 78799}, // Austin
	{32201, 32299}, // Jacksonville
	{94102, 94199}, // San Francisco
	{43201, 43299}, // Columbus
	{28201, 28299}, // Charlotte
	{76101, 76199}, // Fort Worth
	{46201, 46299}, // Indianapolis
	{98101, 98199}, // Seattle
	{80201, 80299}, // Denver
	{20001, 20099}, // Washington DC
	{2101, 2199}, {2201, 2299}, // Boston
	{79901, 79999}, // El Paso
	{48201, 48299}, // Detroit
	{37201, 37299}, // Nashville
	{97201, 97299}, // Portland
	{38101, 38199}, // Memphis
	{73101, 73199}, // Oklahoma City
	{89101, 89199}, // Las Vegas
	{40201, 40299}, // Louisville
	{21201, 21299}, // Baltimore
	{53201, 53299}, // Milwaukee
	{87101, 87199}, // Albuquerque
	{85701, 85799}, // Tucson
	{93701, 93799}, // Fresno
	{95801, 95899}, // Sacramento
	{64101, 64199}, // Kansas City
	{30301, 30399}, // Atlanta
	{80901, 80999}, // Colorado Springs
	{68101, 68199}, // Omaha
	{27601, 27699}, // Raleigh
	{33101, 33199}, // Miami
	{44101, 44199}, // Cleveland
	{74101, 74199}, // Tulsa
	{55401, 55499}, // Minneapolis
	{67201, 67299}, // Wichita
	{70112, 70199}, // New Orleans
}

// ruralZIPRanges marks very low-density areas.
var ruralZIPRanges = []zipRange{
	{99501, 99999}, // Alaska
	{59001, 59099}, // Montana
	{82001, 82999}, // Wyoming
	{58001, 58099}, // North Dakota
	{57001, 57099}, // South Dakota
	{89001, 89099}, // Nevada
	{83001, 83199}, // Idaho
	{5001, 5099},   // Vermont
	{4001, 4199},   // Maine
	{24701, 25999}, // West Virginia
}

// highCostStates and lowCostStates carry an extra regional adjustment
// on top of the geography-type base multiplier.
var (
	highCostStates = map[string]bool{
		"CA": true, "NY": true, "MA": true, "CT": true, "HI": true, "AK": true, "NJ": true,
	}
	lowCostStates = map[string]bool{
		"MS": true, "AL": true, "AR": true, "WV": true, "OK": true, "KS": true, "ND": true, "SD": true,
	}
)
