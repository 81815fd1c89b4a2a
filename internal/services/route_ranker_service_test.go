package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyago/internal/models/route_models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func plainRoute(id string, cities ...string) route_models.StructuralRoute {
	r := route_models.StructuralRoute{
		ID:             id,
		OutboundFlight: route_models.FlightAnchor{FromCity: "Delhi", ToCity: cities[0]},
		InboundFlight:  route_models.FlightAnchor{FromCity: cities[len(cities)-1], ToCity: "Delhi"},
	}
	offset := 0
	for i := 0; i+1 < len(cities); i++ {
		offset += 2
		r.GroundRoute = append(r.GroundRoute, route_models.GroundLeg{
			FromCity:           cities[i],
			ToCity:             cities[i+1],
			DepartureDayOffset: offset,
			ModeHint:           route_models.ModeHintIntercity,
			Role:               route_models.LegRoleBase,
		})
	}
	return r
}

func evaluated(id string, price *float64, minutes, transfers *int, cities ...string) route_models.EvaluatedRoute {
	return route_models.EvaluatedRoute{
		Route: plainRoute(id, cities...),
		Metrics: route_models.RouteMetrics{
			TotalPrice:         price,
			TotalTravelMinutes: minutes,
			TotalTransfers:     transfers,
		},
	}
}

func TestRankRoutesOrderingLabelsAndBounds(t *testing.T) {
	ranker := NewRouteRankerService(NopTraceSink{})
	input := []route_models.EvaluatedRoute{
		evaluated("cheap-slow", floatPtr(500), intPtr(900), intPtr(3), "Vienna", "Prague"),
		evaluated("dear-fast", floatPtr(900), intPtr(400), intPtr(1), "Vienna", "Prague"),
		evaluated("middle", floatPtr(700), intPtr(650), intPtr(2), "Vienna", "Prague"),
	}

	options := ranker.RankRoutes(context.Background(), input)
	require.Len(t, options, 3)

	for i := 1; i < len(options); i++ {
		assert.GreaterOrEqual(t, options[i-1].Score, options[i].Score)
	}
	for _, opt := range options {
		assert.GreaterOrEqual(t, opt.Score, 0.0)
		assert.LessOrEqual(t, opt.Score, 1.0)
		assert.GreaterOrEqual(t, len(opt.Explanations), 2)
		assert.LessOrEqual(t, len(opt.Explanations), 4)
	}

	byID := make(map[string]route_models.OptimizedRouteOption)
	for _, opt := range options {
		byID[opt.Route.ID] = opt
	}
	assert.Contains(t, byID["cheap-slow"].Labels, route_models.LabelCheapest)
	assert.Contains(t, byID["dear-fast"].Labels, route_models.LabelFastest)
	assert.Contains(t, byID["dear-fast"].Labels, route_models.LabelFewestTransfers)
}

func TestRankRoutesPriceSensitiveConfidence(t *testing.T) {
	ranker := NewRouteRankerService(NopTraceSink{})
	input := []route_models.EvaluatedRoute{
		evaluated("a", floatPtr(1000), intPtr(600), intPtr(1), "Rome", "Florence"),
		evaluated("b", floatPtr(1050), intPtr(480), intPtr(2), "Rome", "Florence"),
	}

	options := ranker.RankRoutes(context.Background(), input)
	require.Len(t, options, 2)
	for _, opt := range options {
		assert.Equal(t, route_models.ConfidencePriceSensitive, opt.Confidence,
			"prices 1000 and 1050 are within the sensitivity band")
	}
}

func TestRankRoutesMissingMetricsSinkNotWin(t *testing.T) {
	ranker := NewRouteRankerService(NopTraceSink{})
	input := []route_models.EvaluatedRoute{
		evaluated("unknown", nil, nil, nil, "Paris", "Lyon"),
		evaluated("known", floatPtr(800), intPtr(700), intPtr(2), "Paris", "Lyon"),
	}

	options := ranker.RankRoutes(context.Background(), input)
	require.Len(t, options, 2)
	assert.Equal(t, "known", options[0].Route.ID)
	assert.Equal(t, route_models.ConfidenceMedium, options[1].Confidence)
	assert.NotContains(t, options[1].Labels, route_models.LabelCheapest)
	assert.NotContains(t, options[1].Labels, route_models.LabelFastest)
	assert.Contains(t, options[0].Labels, route_models.LabelBestBalance)
}

func TestRankRoutesImpactPenalty(t *testing.T) {
	ranker := NewRouteRankerService(NopTraceSink{})
	clean := evaluated("clean", floatPtr(700), intPtr(600), intPtr(2), "Vienna", "Prague")
	adjusted := evaluated("adjusted", floatPtr(700), intPtr(600), intPtr(2), "Vienna", "Prague")
	adjusted.Route.ItineraryImpact = &route_models.ItineraryImpact{
		FlightAnchorReplacements: []route_models.FlightAnchorReplacement{{
			Slot:         route_models.AnchorSlotOutboundTo,
			OriginalCity: "Salzburg",
			ReplacedWith: "Vienna",
			Cause:        route_models.CauseIneligibleFlightAnchor,
		}},
		AddedGroundLegs: []route_models.AddedGroundLeg{{
			FromCity: "Vienna",
			ToCity:   "Salzburg",
			Role:     route_models.LegRoleCorrection,
		}},
	}

	options := ranker.RankRoutes(context.Background(), []route_models.EvaluatedRoute{adjusted, clean})
	require.Len(t, options, 2)
	assert.Equal(t, "clean", options[0].Route.ID)
	assert.InDelta(t, 0.25, options[0].Score-options[1].Score, 1e-9)
}

func TestRankRoutesExcludesHardInvalidated(t *testing.T) {
	ranker := NewRouteRankerService(NopTraceSink{})
	broken := evaluated("broken", floatPtr(100), intPtr(100), intPtr(0), "Paris", "Atlantis")
	broken.Route.ItineraryImpact = &route_models.ItineraryImpact{
		HardInvalidations: []route_models.HardInvalidation{{
			Code:   invalidInboundAnchor,
			Detail: "no eligible airport serves Atlantis for the return flight",
		}},
	}
	fine := evaluated("fine", floatPtr(900), intPtr(800), intPtr(3), "Paris", "Lyon")

	options := ranker.RankRoutes(context.Background(), []route_models.EvaluatedRoute{broken, fine})
	require.Len(t, options, 1)
	assert.Equal(t, "fine", options[0].Route.ID)

	assert.Empty(t, ranker.RankRoutes(context.Background(), []route_models.EvaluatedRoute{broken}))
}

func TestRankRoutesCapsAtFive(t *testing.T) {
	ranker := NewRouteRankerService(NopTraceSink{})
	var input []route_models.EvaluatedRoute
	for i := 0; i < 7; i++ {
		input = append(input, evaluated(
			string(rune('a'+i)),
			floatPtr(float64(400+100*i)),
			intPtr(500+40*i),
			intPtr(i%3),
			"Vienna", "Prague",
		))
	}

	options := ranker.RankRoutes(context.Background(), input)
	assert.Len(t, options, 5)
}
