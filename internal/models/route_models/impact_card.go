package route_models

// ImpactCardType names the category of difference a card describes.
type ImpactCardType string

const (
	CardDatePresenceShift    ImpactCardType = "DATE_PRESENCE_SHIFT"
	CardRouteStructureChange ImpactCardType = "ROUTE_STRUCTURE_CHANGE"
	CardTimeStress           ImpactCardType = "TIME_STRESS"
	CardIncompatibleBooking  ImpactCardType = "INCOMPATIBLE_BOOKING"
)

// ImpactSeverity orders cards for presentation: BLOCKING outranks 3 > 2 > 1.
type ImpactSeverity int

const (
	SeverityLow      ImpactSeverity = 1
	SeverityMedium   ImpactSeverity = 2
	SeverityHigh     ImpactSeverity = 3
	SeverityBlocking ImpactSeverity = 4
)

func (s ImpactSeverity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityBlocking:
		return "blocking"
	default:
		return "unknown"
	}
}

// ImpactCard is a single user-facing statement about one category of
// difference between two routes. The summary previews at most two items;
// completeness lives in AffectedCities and AffectedDates.
type ImpactCard struct {
	Type           ImpactCardType `json:"type"`
	Severity       ImpactSeverity `json:"severity"`
	Summary        string         `json:"summary"`
	AffectedCities []string       `json:"affected_cities,omitempty"`
	AffectedDates  []string       `json:"affected_dates,omitempty"`
}
