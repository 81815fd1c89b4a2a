package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyago/internal/models/route_models"
)

func newTestGenerator() RouteGeneratorServiceInterface {
	sink := NopTraceSink{}
	return NewRouteGeneratorService(
		NewTripScopeService(sink),
		NewFlightAnchorService(sink),
		NewItineraryImpactService(sink),
		sink,
	)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateRoutesLongHaulHubCorrection(t *testing.T) {
	gen := newTestGenerator()
	intent := route_models.RouteIntent{
		Origin:    "Bangalore",
		Stops:     []route_models.Stop{{City: "Salzburg", Nights: 4}},
		StartDate: day(2026, time.September, 10),
		EndDate:   day(2026, time.September, 15),
	}

	routes := gen.GenerateRoutes(context.Background(), intent)
	require.Len(t, routes, 3)

	base := routes[0]
	assert.Equal(t, "route-base", base.ID)
	assert.Equal(t, "Bangalore", base.OutboundFlight.FromCity)
	assert.Equal(t, "Vienna", base.OutboundFlight.ToCity)
	assert.Equal(t, "Vienna", base.InboundFlight.FromCity)
	assert.Equal(t, "Bangalore", base.InboundFlight.ToCity)
	assert.Equal(t, []string{"Salzburg"}, base.BaseCitySequence())
	assert.False(t, base.HasHardInvalidation())

	require.Len(t, base.GroundRoute, 2)
	assert.Equal(t, route_models.GroundLeg{
		FromCity:           "Vienna",
		ToCity:             "Salzburg",
		DepartureDayOffset: 0,
		ModeHint:           route_models.ModeHintAirportTransfer,
		Role:               route_models.LegRoleCorrection,
	}, base.GroundRoute[0])
	assert.Equal(t, route_models.GroundLeg{
		FromCity:           "Salzburg",
		ToCity:             "Vienna",
		DepartureDayOffset: 4,
		ModeHint:           route_models.ModeHintAirportTransfer,
		Role:               route_models.LegRoleCorrection,
	}, base.GroundRoute[1])

	require.NotNil(t, base.ItineraryImpact)
	reps := base.ItineraryImpact.FlightAnchorReplacements
	require.Len(t, reps, 2)
	assert.Equal(t, route_models.AnchorSlotOutboundTo, reps[0].Slot)
	assert.Equal(t, "Salzburg", reps[0].OriginalCity)
	assert.Equal(t, "Vienna", reps[0].ReplacedWith)
	assert.Equal(t, route_models.CauseIneligibleFlightAnchor, reps[0].Cause)
	assert.Equal(t, route_models.AnchorSlotInboundFrom, reps[1].Slot)
	assert.Len(t, base.ItineraryImpact.AddedGroundLegs, 2)

	// Padded emphasis variants share the structure but not the identity.
	assert.Equal(t, "route-alt-timing", routes[1].ID)
	assert.Equal(t, "route-flex-transfer", routes[2].ID)
	assert.Equal(t, base.CitySignature(), routes[1].CitySignature())
}

func TestGenerateRoutesIsDeterministic(t *testing.T) {
	gen := newTestGenerator()
	intent := route_models.RouteIntent{
		Origin: "Delhi",
		Stops: []route_models.Stop{
			{City: "Vienna", Nights: 3},
			{City: "Salzburg", Nights: 2},
			{City: "Prague", Nights: 2},
		},
		StartDate: day(2026, time.May, 1),
		EndDate:   day(2026, time.May, 9),
	}

	first := gen.GenerateRoutes(context.Background(), intent)
	second := gen.GenerateRoutes(context.Background(), intent)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestGenerateRoutesFailFast(t *testing.T) {
	gen := newTestGenerator()
	tests := []struct {
		name   string
		intent route_models.RouteIntent
	}{
		{
			name:   "no origin",
			intent: route_models.RouteIntent{Stops: []route_models.Stop{{City: "Paris", Nights: 2}}},
		},
		{
			name:   "no stops",
			intent: route_models.RouteIntent{Origin: "Delhi"},
		},
		{
			name: "first stop has no eligible airport anywhere near",
			intent: route_models.RouteIntent{
				Origin: "Delhi",
				Stops:  []route_models.Stop{{City: "Atlantis", Nights: 2}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, gen.GenerateRoutes(context.Background(), tt.intent))
		})
	}
}

func TestGenerateRoutesShortHaulSkipsEligibility(t *testing.T) {
	gen := newTestGenerator()
	intent := route_models.RouteIntent{
		Origin: "Hanoi",
		Stops: []route_models.Stop{
			{City: "Hue", Nights: 2},
			{City: "Hoi An", Nights: 2},
		},
		StartDate: day(2026, time.March, 3),
		EndDate:   day(2026, time.March, 7),
	}

	routes := gen.GenerateRoutes(context.Background(), intent)
	require.Len(t, routes, 3)
	for _, r := range routes {
		assert.Nil(t, r.ItineraryImpact, "short-haul routes need no corrections: %s", r.ID)
		for _, leg := range r.GroundRoute {
			assert.Equal(t, route_models.LegRoleBase, leg.Role)
		}
	}
	assert.Equal(t, []string{"Hue", "Hoi An"}, routes[0].BaseCitySequence())
	assert.Equal(t, []string{"Hoi An", "Hue"}, routes[1].BaseCitySequence())
}

func TestGenerateRoutesScopeFrozenBeforeNormalization(t *testing.T) {
	gen := newTestGenerator()
	// Pune is only a secondary gateway on long-haul trips; within its own
	// region it anchors flights directly.
	intent := route_models.RouteIntent{
		Origin:    "Pune",
		Stops:     []route_models.Stop{{City: "Goa", Nights: 3}},
		StartDate: day(2026, time.January, 10),
		EndDate:   day(2026, time.January, 13),
	}

	routes := gen.GenerateRoutes(context.Background(), intent)
	require.NotEmpty(t, routes)
	assert.Equal(t, "Pune", routes[0].OutboundFlight.FromCity)
	assert.Nil(t, routes[0].ItineraryImpact)
}

func TestGenerateRoutesSecondaryOriginNormalization(t *testing.T) {
	gen := newTestGenerator()
	intent := route_models.RouteIntent{
		Origin: "Pune",
		Stops: []route_models.Stop{
			{City: "Paris", Nights: 3},
			{City: "Rome", Nights: 2},
		},
		StartDate: day(2026, time.June, 1),
		EndDate:   day(2026, time.June, 7),
	}

	routes := gen.GenerateRoutes(context.Background(), intent)
	require.NotEmpty(t, routes)
	base := routes[0]

	assert.Equal(t, "Mumbai", base.OutboundFlight.FromCity)
	assert.Equal(t, "Mumbai", base.InboundFlight.ToCity)
	require.NotEmpty(t, base.GroundRoute)
	assert.Equal(t, route_models.GroundLeg{
		FromCity:           "Pune",
		ToCity:             "Mumbai",
		DepartureDayOffset: 0,
		ModeHint:           route_models.ModeHintAirportTransfer,
		Role:               route_models.LegRoleCorrection,
	}, base.GroundRoute[0])

	require.NotNil(t, base.ItineraryImpact)
	require.Len(t, base.ItineraryImpact.FlightAnchorReplacements, 2)
	for _, rep := range base.ItineraryImpact.FlightAnchorReplacements {
		assert.Equal(t, "Pune", rep.OriginalCity)
		assert.Equal(t, "Mumbai", rep.ReplacedWith)
		assert.Equal(t, route_models.CauseSecondaryOriginNormalization, rep.Cause)
	}
	assert.Len(t, base.ItineraryImpact.AddedGroundLegs, 1)
}

func TestGenerateRoutesVariantsAndOffsets(t *testing.T) {
	gen := newTestGenerator()
	intent := route_models.RouteIntent{
		Origin: "London",
		Stops: []route_models.Stop{
			{City: "Paris", Nights: 2},
			{City: "Lyon", Nights: 1},
			{City: "Nice", Nights: 3},
		},
		StartDate: day(2026, time.July, 4),
		EndDate:   day(2026, time.July, 10),
	}

	routes := gen.GenerateRoutes(context.Background(), intent)
	require.GreaterOrEqual(t, len(routes), 3)
	require.LessOrEqual(t, len(routes), 5)

	ids := make(map[string]bool)
	sigs := make(map[string]bool)
	for _, r := range routes {
		assert.False(t, ids[r.ID], "duplicate id %s", r.ID)
		ids[r.ID] = true
		assert.False(t, sigs[r.CitySignature()], "duplicate structure %s", r.CitySignature())
		sigs[r.CitySignature()] = true

		prev := 0
		for _, leg := range r.GroundRoute {
			assert.GreaterOrEqual(t, leg.DepartureDayOffset, prev)
			prev = leg.DepartureDayOffset
		}
	}

	base := routes[0]
	require.Len(t, base.GroundRoute, 2)
	assert.Equal(t, 2, base.GroundRoute[0].DepartureDayOffset)
	assert.Equal(t, 3, base.GroundRoute[1].DepartureDayOffset)
	assert.Equal(t, []string{"Paris", "Lyon", "Nice"}, base.BaseCitySequence())
	assert.Equal(t, []string{"Nice", "Lyon", "Paris"}, routes[1].BaseCitySequence())
	assert.Equal(t, []string{"Paris", "Nice", "Lyon"}, routes[2].BaseCitySequence())
}

func TestGenerateRoutesExplicitAnchorsAreBaseline(t *testing.T) {
	gen := newTestGenerator()
	outDate := day(2026, time.September, 12)
	inDate := day(2026, time.September, 16)
	intent := route_models.RouteIntent{
		Origin:         "Delhi",
		Stops:          []route_models.Stop{{City: "Salzburg", Nights: 3}},
		StartDate:      day(2026, time.September, 11),
		EndDate:        day(2026, time.September, 17),
		OutboundAnchor: &route_models.FlightAnchor{ToCity: "Vienna", Date: outDate},
		InboundAnchor:  &route_models.FlightAnchor{FromCity: "Vienna", Date: inDate},
	}

	routes := gen.GenerateRoutes(context.Background(), intent)
	require.NotEmpty(t, routes)
	base := routes[0]

	assert.Equal(t, "Vienna", base.OutboundFlight.ToCity)
	assert.True(t, base.OutboundFlight.Date.Equal(outDate))
	assert.True(t, base.InboundFlight.Date.Equal(inDate))

	// The traveler proposed Vienna, so landing in Vienna is not a
	// replacement. The transfer legs still count as structural impact.
	require.NotNil(t, base.ItineraryImpact)
	assert.Empty(t, base.ItineraryImpact.FlightAnchorReplacements)
	assert.Len(t, base.ItineraryImpact.AddedGroundLegs, 2)
}

func TestGenerateRoutesHardInvalidatedVariantsAreKept(t *testing.T) {
	gen := newTestGenerator()
	intent := route_models.RouteIntent{
		Origin: "Delhi",
		Stops: []route_models.Stop{
			{City: "Paris", Nights: 2},
			{City: "Atlantis", Nights: 2},
		},
		StartDate: day(2026, time.April, 1),
		EndDate:   day(2026, time.April, 5),
	}

	routes := gen.GenerateRoutes(context.Background(), intent)
	require.Len(t, routes, 2)

	require.True(t, routes[0].HasHardInvalidation())
	assert.Equal(t, invalidInboundAnchor, routes[0].ItineraryImpact.HardInvalidations[0].Code)

	require.True(t, routes[1].HasHardInvalidation())
	assert.Equal(t, invalidOutboundAnchor, routes[1].ItineraryImpact.HardInvalidations[0].Code)
}
