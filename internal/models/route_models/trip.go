package route_models

import "time"

// TripScope classifies a planning session as intercontinental or regional.
// It is frozen once per generation call from the raw, uncorrected input and
// must never be recomputed from corrected cities.
type TripScope string

const (
	ScopeLongHaul  TripScope = "long-haul"
	ScopeShortHaul TripScope = "short-haul"
)

// Stop is one user-declared waypoint, immutable once passed into generation.
type Stop struct {
	City   string `json:"city"`
	Nights int    `json:"nights"`
}

// RouteIntent is the traveler's original request: origin, ordered stops and
// the date range, plus optional explicit flight anchors. Generation treats it
// as read-only.
type RouteIntent struct {
	Origin    string    `json:"origin"`
	Stops     []Stop    `json:"stops"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	OutboundAnchor *FlightAnchor `json:"outbound_anchor,omitempty"`
	InboundAnchor  *FlightAnchor `json:"inbound_anchor,omitempty"`
}

// FirstStopCity returns the first declared stop, or "" when there are none.
func (in RouteIntent) FirstStopCity() string {
	if len(in.Stops) == 0 {
		return ""
	}
	return in.Stops[0].City
}

// LastStopCity returns the last declared stop, or "" when there are none.
func (in RouteIntent) LastStopCity() string {
	if len(in.Stops) == 0 {
		return ""
	}
	return in.Stops[len(in.Stops)-1].City
}
