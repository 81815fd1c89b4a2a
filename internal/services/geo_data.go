package services

import "strings"

// Region labels used by the scope classifier. Scope only cares about
// same-region versus cross-region, so the granularity here is coarse.
const (
	regionSouthAsia     = "south-asia"
	regionSoutheastAsia = "southeast-asia"
	regionEastAsia      = "east-asia"
	regionEurope        = "europe"
	regionNorthAmerica  = "north-america"
	regionMiddleEast    = "middle-east"
	regionOceania       = "oceania"
	regionAfrica        = "africa"
)

// cityRegions maps known cities to their region. Lookup is by normalized
// name; cities absent from the table have unknown region.
var cityRegions = map[string]string{
	// South Asia
	"delhi":     regionSouthAsia,
	"new delhi": regionSouthAsia,
	"mumbai":    regionSouthAsia,
	"bangalore": regionSouthAsia,
	"chennai":   regionSouthAsia,
	"hyderabad": regionSouthAsia,
	"kolkata":   regionSouthAsia,
	"pune":      regionSouthAsia,
	"jaipur":    regionSouthAsia,
	"goa":       regionSouthAsia,
	"kochi":     regionSouthAsia,
	"mysore":    regionSouthAsia,
	"agra":      regionSouthAsia,
	"colombo":   regionSouthAsia,
	"kathmandu": regionSouthAsia,

	// Southeast Asia
	"hanoi":            regionSoutheastAsia,
	"ho chi minh city": regionSoutheastAsia,
	"da nang":          regionSoutheastAsia,
	"hoi an":           regionSoutheastAsia,
	"hue":              regionSoutheastAsia,
	"nha trang":        regionSoutheastAsia,
	"da lat":           regionSoutheastAsia,
	"phu quoc":         regionSoutheastAsia,
	"bangkok":          regionSoutheastAsia,
	"chiang mai":       regionSoutheastAsia,
	"phuket":           regionSoutheastAsia,
	"singapore":        regionSoutheastAsia,
	"kuala lumpur":     regionSoutheastAsia,
	"jakarta":          regionSoutheastAsia,
	"bali":             regionSoutheastAsia,
	"denpasar":         regionSoutheastAsia,
	"manila":           regionSoutheastAsia,
	"siem reap":        regionSoutheastAsia,
	"phnom penh":       regionSoutheastAsia,
	"luang prabang":    regionSoutheastAsia,

	// East Asia
	"tokyo":     regionEastAsia,
	"osaka":     regionEastAsia,
	"kyoto":     regionEastAsia,
	"nara":      regionEastAsia,
	"sapporo":   regionEastAsia,
	"seoul":     regionEastAsia,
	"busan":     regionEastAsia,
	"beijing":   regionEastAsia,
	"shanghai":  regionEastAsia,
	"hong kong": regionEastAsia,
	"taipei":    regionEastAsia,

	// Europe
	"london":        regionEurope,
	"paris":         regionEurope,
	"nice":          regionEurope,
	"lyon":          regionEurope,
	"rome":          regionEurope,
	"milan":         regionEurope,
	"venice":        regionEurope,
	"florence":      regionEurope,
	"naples":        regionEurope,
	"madrid":        regionEurope,
	"barcelona":     regionEurope,
	"seville":       regionEurope,
	"lisbon":        regionEurope,
	"porto":         regionEurope,
	"berlin":        regionEurope,
	"munich":        regionEurope,
	"frankfurt":     regionEurope,
	"hamburg":       regionEurope,
	"vienna":        regionEurope,
	"salzburg":      regionEurope,
	"innsbruck":     regionEurope,
	"hallstatt":     regionEurope,
	"zurich":        regionEurope,
	"geneva":        regionEurope,
	"lucerne":       regionEurope,
	"interlaken":    regionEurope,
	"zermatt":       regionEurope,
	"amsterdam":     regionEurope,
	"rotterdam":     regionEurope,
	"brussels":      regionEurope,
	"bruges":        regionEurope,
	"prague":        regionEurope,
	"cesky krumlov": regionEurope,
	"budapest":      regionEurope,
	"warsaw":        regionEurope,
	"krakow":        regionEurope,
	"copenhagen":    regionEurope,
	"stockholm":     regionEurope,
	"oslo":          regionEurope,
	"helsinki":      regionEurope,
	"dublin":        regionEurope,
	"edinburgh":     regionEurope,
	"athens":        regionEurope,
	"santorini":     regionEurope,
	"istanbul":      regionEurope,

	// North America
	"new york":      regionNorthAmerica,
	"boston":        regionNorthAmerica,
	"washington":    regionNorthAmerica,
	"chicago":       regionNorthAmerica,
	"san francisco": regionNorthAmerica,
	"los angeles":   regionNorthAmerica,
	"seattle":       regionNorthAmerica,
	"las vegas":     regionNorthAmerica,
	"miami":         regionNorthAmerica,
	"toronto":       regionNorthAmerica,
	"vancouver":     regionNorthAmerica,
	"montreal":      regionNorthAmerica,
	"mexico city":   regionNorthAmerica,
	"cancun":        regionNorthAmerica,

	// Middle East
	"dubai":     regionMiddleEast,
	"abu dhabi": regionMiddleEast,
	"doha":      regionMiddleEast,
	"riyadh":    regionMiddleEast,
	"tel aviv":  regionMiddleEast,
	"amman":     regionMiddleEast,

	// Oceania
	"sydney":       regionOceania,
	"melbourne":    regionOceania,
	"brisbane":     regionOceania,
	"perth":        regionOceania,
	"auckland":     regionOceania,
	"queenstown":   regionOceania,
	"christchurch": regionOceania,

	// Africa
	"cairo":        regionAfrica,
	"marrakech":    regionAfrica,
	"casablanca":   regionAfrica,
	"cape town":    regionAfrica,
	"johannesburg": regionAfrica,
	"nairobi":      regionAfrica,
}

// capitalCities are national capitals, always flight-eligible on long-haul.
var capitalCities = map[string]bool{
	"new delhi":    true,
	"delhi":        true,
	"colombo":      true,
	"kathmandu":    true,
	"hanoi":        true,
	"bangkok":      true,
	"singapore":    true,
	"kuala lumpur": true,
	"jakarta":      true,
	"manila":       true,
	"phnom penh":   true,
	"tokyo":        true,
	"seoul":        true,
	"beijing":      true,
	"taipei":       true,
	"london":       true,
	"paris":        true,
	"rome":         true,
	"madrid":       true,
	"lisbon":       true,
	"berlin":       true,
	"vienna":       true,
	"amsterdam":    true,
	"brussels":     true,
	"prague":       true,
	"budapest":     true,
	"warsaw":       true,
	"copenhagen":   true,
	"stockholm":    true,
	"oslo":         true,
	"helsinki":     true,
	"dublin":       true,
	"athens":       true,
	"washington":   true,
	"mexico city":  true,
	"abu dhabi":    true,
	"doha":         true,
	"riyadh":       true,
	"amman":        true,
	"cairo":        true,
	"nairobi":      true,
	"wellington":   true,
	"canberra":     true,
}

// tier1Hubs are non-capital cities with major international airports.
var tier1Hubs = map[string]bool{
	"mumbai":           true,
	"bangalore":        true,
	"chennai":          true,
	"hyderabad":        true,
	"kolkata":          true,
	"goa":              true,
	"kochi":            true,
	"ho chi minh city": true,
	"da nang":          true,
	"phuket":           true,
	"denpasar":         true,
	"osaka":            true,
	"sapporo":          true,
	"busan":            true,
	"shanghai":         true,
	"hong kong":        true,
	"milan":            true,
	"venice":           true,
	"barcelona":        true,
	"porto":            true,
	"munich":           true,
	"frankfurt":        true,
	"hamburg":          true,
	"zurich":           true,
	"geneva":           true,
	"krakow":           true,
	"edinburgh":        true,
	"istanbul":         true,
	"nice":             true,
	"naples":           true,
	"santorini":        true,
	"new york":         true,
	"boston":           true,
	"chicago":          true,
	"san francisco":    true,
	"los angeles":      true,
	"seattle":          true,
	"las vegas":        true,
	"miami":            true,
	"toronto":          true,
	"vancouver":        true,
	"montreal":         true,
	"cancun":           true,
	"dubai":            true,
	"tel aviv":         true,
	"sydney":           true,
	"melbourne":        true,
	"brisbane":         true,
	"perth":            true,
	"auckland":         true,
	"queenstown":       true,
	"christchurch":     true,
	"marrakech":        true,
	"casablanca":       true,
	"cape town":        true,
	"johannesburg":     true,
}

// longHaulWhitelist covers cities that are neither capitals nor tier-1 hubs
// but still take direct long-haul traffic.
var longHaulWhitelist = map[string]bool{
	"nha trang": true,
	"kyoto":     true, // sold as Kyoto by several carriers, served via Osaka
	"florence":  true,
	"seville":   true,
}

// nearestEligibleHub maps an ineligible long-haul destination to the eligible
// hub travelers actually fly into for it.
var nearestEligibleHub = map[string]string{
	"salzburg":      "vienna",
	"hallstatt":     "vienna",
	"innsbruck":     "munich",
	"lucerne":       "zurich",
	"interlaken":    "zurich",
	"zermatt":       "geneva",
	"bruges":        "brussels",
	"rotterdam":     "amsterdam",
	"cesky krumlov": "prague",
	"nara":          "osaka",
	"hue":           "da nang",
	"hoi an":        "da nang",
	"da lat":        "ho chi minh city",
	"mysore":        "bangalore",
	"agra":          "delhi",
	"jaipur":        "delhi",
	"chiang mai":    "bangkok",
	"siem reap":     "bangkok",
	"luang prabang": "hanoi",
	"bali":          "denpasar",
}

// secondaryOriginGateways maps secondary home cities to the major gateway
// their long-haul departures route through.
var secondaryOriginGateways = map[string]string{
	"pune":    "mumbai",
	"mysore":  "bangalore",
	"agra":    "delhi",
	"jaipur":  "delhi",
	"hue":     "da nang",
	"da lat":  "ho chi minh city",
	"bruges":  "brussels",
	"lucerne": "zurich",
	"nara":    "osaka",
}

// normalizeCity canonicalizes a city name for table lookup.
func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// cityRegion returns the region of a city, or "" when unknown.
func cityRegion(city string) string {
	return cityRegions[normalizeCity(city)]
}

// displayCity restores a presentable casing for a normalized city name.
func displayCity(city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		return city
	}
	parts := strings.Fields(strings.ToLower(city))
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
