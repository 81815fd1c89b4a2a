package route_models

import (
	"strings"
	"time"
)

// FlightAnchor is one directional long-distance flight bounding the ground
// itinerary. A structural route carries exactly one outbound and one inbound
// anchor.
type FlightAnchor struct {
	FromCity string    `json:"from_city"`
	ToCity   string    `json:"to_city"`
	Date     time.Time `json:"date"`
}

func (a FlightAnchor) IsComplete() bool {
	return a.FromCity != "" && a.ToCity != ""
}

// LegRole discriminates base-itinerary legs from legs injected to reconcile
// an anchor substitution with the traveler's stated stops. Sequence
// extraction must filter on this field, never infer the role from position.
type LegRole string

const (
	LegRoleBase       LegRole = "BASE"
	LegRoleCorrection LegRole = "CORRECTION"
)

type ModeHint string

const (
	ModeHintIntercity       ModeHint = "intercity"
	ModeHintAirportTransfer ModeHint = "airport-transfer"
)

// GroundLeg is a non-flight transition between two cities.
// DepartureDayOffset counts days since trip start; legs are non-decreasing
// in offset within a route.
type GroundLeg struct {
	FromCity           string   `json:"from_city"`
	ToCity             string   `json:"to_city"`
	DepartureDayOffset int      `json:"departure_day_offset"`
	ModeHint           ModeHint `json:"mode_hint"`
	Role               LegRole  `json:"role"`
}

// StructuralRoute is one complete candidate itinerary prior to any pricing
// or duration evaluation. Every anchor city either passes the eligibility
// check for the route's trip scope or the route carries a hard invalidation
// record in its impact; a route is never silently wrong.
type StructuralRoute struct {
	ID              string           `json:"id"`
	Summary         string           `json:"summary"`
	OutboundFlight  FlightAnchor     `json:"outbound_flight"`
	InboundFlight   FlightAnchor     `json:"inbound_flight"`
	GroundRoute     []GroundLeg      `json:"ground_route"`
	ItineraryImpact *ItineraryImpact `json:"itinerary_impact,omitempty"`
}

// BaseCitySequence extracts the chronological city order of the base
// itinerary, skipping CORRECTION legs entirely.
func (r StructuralRoute) BaseCitySequence() []string {
	var seq []string
	for _, leg := range r.GroundRoute {
		if leg.Role != LegRoleBase {
			continue
		}
		if len(seq) == 0 {
			seq = append(seq, leg.FromCity)
		}
		seq = append(seq, leg.ToCity)
	}
	if len(seq) == 0 {
		// A single-stop route has no base legs; fall back to the outbound
		// correction target or the anchor arrival city.
		for _, leg := range r.GroundRoute {
			if leg.Role == LegRoleCorrection && leg.DepartureDayOffset == 0 && leg.FromCity == r.OutboundFlight.ToCity {
				return []string{leg.ToCity}
			}
		}
		if r.OutboundFlight.ToCity != "" {
			return []string{r.OutboundFlight.ToCity}
		}
	}
	return seq
}

// HasHardInvalidation reports whether generation marked this route as
// structurally unusable.
func (r StructuralRoute) HasHardInvalidation() bool {
	return r.ItineraryImpact != nil && len(r.ItineraryImpact.HardInvalidations) > 0
}

// CitySignature is a stable key for structural distinctness checks between
// candidate variants.
func (r StructuralRoute) CitySignature() string {
	return strings.Join(r.BaseCitySequence(), "|")
}
