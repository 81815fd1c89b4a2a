package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyago/internal/models/route_models"
)

func TestImpactComputeRecordsDeltas(t *testing.T) {
	svc := NewItineraryImpactService(NopTraceSink{})
	intent := route_models.RouteIntent{
		Origin:    "Pune",
		Stops:     []route_models.Stop{{City: "Salzburg", Nights: 3}},
		StartDate: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
	route := route_models.StructuralRoute{
		ID:             "route-base",
		OutboundFlight: route_models.FlightAnchor{FromCity: "Mumbai", ToCity: "Vienna"},
		InboundFlight:  route_models.FlightAnchor{FromCity: "Vienna", ToCity: "Mumbai"},
		GroundRoute: []route_models.GroundLeg{
			{FromCity: "Pune", ToCity: "Mumbai", DepartureDayOffset: 0, ModeHint: route_models.ModeHintAirportTransfer, Role: route_models.LegRoleCorrection},
			{FromCity: "Vienna", ToCity: "Salzburg", DepartureDayOffset: 0, ModeHint: route_models.ModeHintAirportTransfer, Role: route_models.LegRoleCorrection},
			{FromCity: "Salzburg", ToCity: "Vienna", DepartureDayOffset: 3, ModeHint: route_models.ModeHintAirportTransfer, Role: route_models.LegRoleCorrection},
		},
	}

	impact := svc.Compute(intent, route)
	require.NotNil(t, impact)

	require.Len(t, impact.FlightAnchorReplacements, 4)
	causes := map[string]string{}
	for _, rep := range impact.FlightAnchorReplacements {
		causes[rep.Slot] = rep.Cause
	}
	assert.Equal(t, route_models.CauseSecondaryOriginNormalization, causes[route_models.AnchorSlotOutboundFrom])
	assert.Equal(t, route_models.CauseIneligibleFlightAnchor, causes[route_models.AnchorSlotOutboundTo])
	assert.Equal(t, route_models.CauseIneligibleFlightAnchor, causes[route_models.AnchorSlotInboundFrom])
	assert.Equal(t, route_models.CauseSecondaryOriginNormalization, causes[route_models.AnchorSlotInboundTo])

	assert.Len(t, impact.AddedGroundLegs, 3)
}

func TestImpactComputeEmptyWhenNothingChanged(t *testing.T) {
	svc := NewItineraryImpactService(NopTraceSink{})
	intent := route_models.RouteIntent{
		Origin: "Hanoi",
		Stops:  []route_models.Stop{{City: "Hue", Nights: 2}, {City: "Hoi An", Nights: 2}},
	}
	route := route_models.StructuralRoute{
		OutboundFlight: route_models.FlightAnchor{FromCity: "Hanoi", ToCity: "Hue"},
		InboundFlight:  route_models.FlightAnchor{FromCity: "Hoi An", ToCity: "Hanoi"},
		GroundRoute: []route_models.GroundLeg{
			{FromCity: "Hue", ToCity: "Hoi An", DepartureDayOffset: 2, ModeHint: route_models.ModeHintIntercity, Role: route_models.LegRoleBase},
		},
	}

	assert.True(t, svc.Compute(intent, route).IsEmpty())
}

func TestImpactAppendsDeduplicateByContent(t *testing.T) {
	imp := &route_models.ItineraryImpact{}
	rep := route_models.FlightAnchorReplacement{
		Slot:         route_models.AnchorSlotOutboundTo,
		OriginalCity: "Salzburg",
		ReplacedWith: "Vienna",
		Cause:        route_models.CauseIneligibleFlightAnchor,
	}
	imp.AppendReplacement(rep)
	imp.AppendReplacement(rep)
	assert.Len(t, imp.FlightAnchorReplacements, 1)

	leg := route_models.AddedGroundLeg{FromCity: "Vienna", ToCity: "Salzburg", Role: route_models.LegRoleCorrection}
	imp.AppendAddedLeg(leg)
	imp.AppendAddedLeg(leg)
	assert.Len(t, imp.AddedGroundLegs, 1)

	inv := route_models.HardInvalidation{Code: "unresolvable-inbound-anchor", Detail: "x"}
	imp.AppendHardInvalidation(inv)
	imp.AppendHardInvalidation(inv)
	assert.Len(t, imp.HardInvalidations, 1)
	assert.False(t, imp.IsEmpty())
}
