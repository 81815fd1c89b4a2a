package services

import (
	"voyago/internal/models/route_models"
)

type ItineraryImpactServiceInterface interface {
	Compute(intent route_models.RouteIntent, route route_models.StructuralRoute) *route_models.ItineraryImpact
}

type ItineraryImpactService struct {
	sink TraceSink
}

func NewItineraryImpactService(sink TraceSink) ItineraryImpactServiceInterface {
	return &ItineraryImpactService{sink: sink}
}

// Compute derives the impact record for one generated route: every anchor
// endpoint that differs from what the traveler proposed, and every ground
// leg injected to reconcile a substitution. The baseline is the traveler's
// own proposal: explicit anchor cities when given, otherwise the origin and
// the route variant's own first and last stops.
func (s *ItineraryImpactService) Compute(intent route_models.RouteIntent, route route_models.StructuralRoute) *route_models.ItineraryImpact {
	impact := &route_models.ItineraryImpact{}

	seq := route.BaseCitySequence()
	baseOutFrom := intent.Origin
	baseOutTo := ""
	baseInFrom := ""
	baseInTo := intent.Origin
	if len(seq) > 0 {
		baseOutTo = seq[0]
		baseInFrom = seq[len(seq)-1]
	}
	if intent.OutboundAnchor != nil {
		if intent.OutboundAnchor.FromCity != "" {
			baseOutFrom = intent.OutboundAnchor.FromCity
		}
		if intent.OutboundAnchor.ToCity != "" {
			baseOutTo = intent.OutboundAnchor.ToCity
		}
	}
	if intent.InboundAnchor != nil {
		if intent.InboundAnchor.FromCity != "" {
			baseInFrom = intent.InboundAnchor.FromCity
		}
		if intent.InboundAnchor.ToCity != "" {
			baseInTo = intent.InboundAnchor.ToCity
		}
	}

	s.recordReplacement(impact, route_models.AnchorSlotOutboundFrom, baseOutFrom, route.OutboundFlight.FromCity, route_models.CauseSecondaryOriginNormalization)
	s.recordReplacement(impact, route_models.AnchorSlotOutboundTo, baseOutTo, route.OutboundFlight.ToCity, route_models.CauseIneligibleFlightAnchor)
	s.recordReplacement(impact, route_models.AnchorSlotInboundFrom, baseInFrom, route.InboundFlight.FromCity, route_models.CauseIneligibleFlightAnchor)
	s.recordReplacement(impact, route_models.AnchorSlotInboundTo, baseInTo, route.InboundFlight.ToCity, route_models.CauseSecondaryOriginNormalization)

	for _, leg := range route.GroundRoute {
		if leg.Role != route_models.LegRoleCorrection {
			continue
		}
		impact.AppendAddedLeg(route_models.AddedGroundLeg{
			FromCity: leg.FromCity,
			ToCity:   leg.ToCity,
			Role:     leg.Role,
		})
	}

	if !impact.IsEmpty() {
		s.sink.Emit("itinerary_impact.computed",
			"route_id", route.ID,
			"replacements", len(impact.FlightAnchorReplacements),
			"added_legs", len(impact.AddedGroundLegs),
		)
	}
	return impact
}

func (s *ItineraryImpactService) recordReplacement(impact *route_models.ItineraryImpact, slot, original, actual, cause string) {
	if original == "" || actual == "" {
		return
	}
	if normalizeCity(original) == normalizeCity(actual) {
		return
	}
	impact.AppendReplacement(route_models.FlightAnchorReplacement{
		Slot:         slot,
		OriginalCity: displayCity(original),
		ReplacedWith: displayCity(actual),
		Cause:        cause,
	})
}
