package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voyago/internal/models/request_models"
	"voyago/internal/models/route_models"
	"voyago/pkg/utils"
)

func twoCityRoute() route_models.StructuralRoute {
	return route_models.StructuralRoute{
		ID:             "route-base",
		OutboundFlight: route_models.FlightAnchor{FromCity: "Delhi", ToCity: "Vienna"},
		InboundFlight:  route_models.FlightAnchor{FromCity: "Prague", ToCity: "Delhi"},
		GroundRoute: []route_models.GroundLeg{
			{FromCity: "Vienna", ToCity: "Prague", DepartureDayOffset: 3, ModeHint: route_models.ModeHintIntercity, Role: route_models.LegRoleBase},
		},
	}
}

func TestSummarizeRouteRequiresCities(t *testing.T) {
	svc := NewNarrativeService(&narrativeClientMock{}, "openai", zap.NewNop())

	_, err := svc.SummarizeRoute(context.Background(), request_models.SummarizeRouteRequest{
		Origin: "Delhi",
		Route:  route_models.StructuralRoute{ID: "route-base"},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSummarizeRouteBuildsProviderRequest(t *testing.T) {
	var got utils.NarrativeRequest
	client := &narrativeClientMock{
		summarizeFn: func(ctx context.Context, req utils.NarrativeRequest) (string, error) {
			got = req
			return "Seven nights across Vienna and Prague.", nil
		},
	}
	svc := NewNarrativeService(client, "openai", zap.NewNop())

	resp, err := svc.SummarizeRoute(context.Background(), request_models.SummarizeRouteRequest{
		Origin:    "Delhi",
		StartDate: "2026-05-01",
		EndDate:   "2026-05-08",
		Route:     twoCityRoute(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Delhi", got.Origin)
	assert.Equal(t, []string{"Vienna", "Prague"}, got.Cities)
	// Vienna is left on day 3; Prague keeps the remaining four nights.
	assert.Equal(t, []int{3, 4}, got.Nights)
	assert.Empty(t, got.Highlights)

	assert.Equal(t, "route-base", resp.RouteID)
	assert.Equal(t, "Seven nights across Vienna and Prague.", resp.Narrative)
	assert.Equal(t, "openai", resp.Provider)
}

func TestSummarizeRouteHighlightsCorrections(t *testing.T) {
	var got utils.NarrativeRequest
	client := &narrativeClientMock{
		summarizeFn: func(ctx context.Context, req utils.NarrativeRequest) (string, error) {
			got = req
			return "ok", nil
		},
	}
	svc := NewNarrativeService(client, "gemini", zap.NewNop())

	route := twoCityRoute()
	route.ItineraryImpact = &route_models.ItineraryImpact{
		FlightAnchorReplacements: []route_models.FlightAnchorReplacement{
			{Slot: route_models.AnchorSlotOutboundTo, OriginalCity: "Salzburg", ReplacedWith: "Vienna", Cause: route_models.CauseIneligibleFlightAnchor},
			{Slot: route_models.AnchorSlotInboundFrom, OriginalCity: "Salzburg", ReplacedWith: "Vienna", Cause: route_models.CauseIneligibleFlightAnchor},
		},
	}

	_, err := svc.SummarizeRoute(context.Background(), request_models.SummarizeRouteRequest{
		Origin: "Delhi",
		Route:  route,
	})
	require.NoError(t, err)

	// Both replacements collapse into one highlight.
	require.Len(t, got.Highlights, 1)
	assert.Equal(t, "flights go through Vienna instead of Salzburg", got.Highlights[0])
}

func TestSummarizeRouteProviderFailure(t *testing.T) {
	client := &narrativeClientMock{
		summarizeFn: func(ctx context.Context, req utils.NarrativeRequest) (string, error) {
			return "", errors.New("model overloaded")
		},
	}
	svc := NewNarrativeService(client, "openai", zap.NewNop())

	_, err := svc.SummarizeRoute(context.Background(), request_models.SummarizeRouteRequest{
		Origin: "Delhi",
		Route:  twoCityRoute(),
	})
	assert.ErrorIs(t, err, utils.ErrUnexpectedBehaviorOfAI)
}

func TestCityNightsReadsCorrectionOffsets(t *testing.T) {
	// Hub correction legs bracket a single declared stop: arrive via Vienna,
	// spend four nights in Salzburg, return through Vienna.
	route := route_models.StructuralRoute{
		ID: "route-base",
		GroundRoute: []route_models.GroundLeg{
			{FromCity: "Vienna", ToCity: "Salzburg", DepartureDayOffset: 0, Role: route_models.LegRoleCorrection},
			{FromCity: "Salzburg", ToCity: "Vienna", DepartureDayOffset: 4, Role: route_models.LegRoleCorrection},
		},
	}

	nights := cityNights(route, []string{"Salzburg"}, 5)
	assert.Equal(t, []int{4}, nights)
}
