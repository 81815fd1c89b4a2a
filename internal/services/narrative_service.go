package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/models/route_models"
	"voyago/pkg/utils"
)

type NarrativeServiceInterface interface {
	SummarizeRoute(ctx context.Context, request request_models.SummarizeRouteRequest) (response_models.NarrativeResponse, error)
}

// NarrativeService renders prose for a generated route. It is a collaborator
// around the structural planner; nothing in route generation depends on it.
type NarrativeService struct {
	client   utils.NarrativeClientInterface
	provider string
	logger   *zap.Logger
}

func NewNarrativeService(client utils.NarrativeClientInterface, provider string, logger *zap.Logger) NarrativeServiceInterface {
	return &NarrativeService{
		client:   client,
		provider: provider,
		logger:   logger,
	}
}

func (n *NarrativeService) SummarizeRoute(ctx context.Context, request request_models.SummarizeRouteRequest) (response_models.NarrativeResponse, error) {
	route := request.Route
	cities := route.BaseCitySequence()
	if len(cities) == 0 {
		return response_models.NarrativeResponse{}, utils.ErrInvalidInput
	}

	totalNights := 0
	if start, err := utils.ParseTripDate(request.StartDate); err == nil {
		if end, err := utils.ParseTripDate(request.EndDate); err == nil {
			totalNights = utils.NightsBetween(start, end)
		}
	}

	narrative, err := n.client.SummarizeRoute(ctx, utils.NarrativeRequest{
		Origin:     request.Origin,
		Cities:     cities,
		Nights:     cityNights(route, cities, totalNights),
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		Highlights: impactHighlights(route.ItineraryImpact),
	})
	if err != nil {
		n.logger.Warn("narrative generation failed",
			zap.String("route_id", route.ID),
			zap.Error(err))
		return response_models.NarrativeResponse{}, utils.ErrUnexpectedBehaviorOfAI
	}

	return response_models.NarrativeResponse{
		RouteID:   route.ID,
		Narrative: narrative,
		Provider:  n.provider,
	}, nil
}

// cityNights reads stay lengths back out of the leg offsets. The last city
// has no outgoing base leg; its stay falls out of the trip length when known.
func cityNights(route route_models.StructuralRoute, cities []string, totalNights int) []int {
	arrivals := make(map[string]int, len(cities))
	departures := make(map[string]int, len(cities))
	if len(cities) > 0 {
		arrivals[cities[0]] = 0
	}

	for _, leg := range route.GroundRoute {
		switch leg.Role {
		case route_models.LegRoleBase:
			departures[leg.FromCity] = leg.DepartureDayOffset
			arrivals[leg.ToCity] = leg.DepartureDayOffset
		case route_models.LegRoleCorrection:
			if leg.DepartureDayOffset > 0 {
				departures[leg.FromCity] = leg.DepartureDayOffset
			}
		}
	}

	nights := make([]int, len(cities))
	for i, city := range cities {
		arrival := arrivals[city]
		departure, ok := departures[city]
		if !ok {
			departure = totalNights
		}
		stay := departure - arrival
		if stay < 1 {
			stay = 1
		}
		nights[i] = stay
	}
	return nights
}

func impactHighlights(impact *route_models.ItineraryImpact) []string {
	if impact == nil {
		return nil
	}

	var highlights []string
	seen := make(map[string]bool)
	for _, replacement := range impact.FlightAnchorReplacements {
		key := replacement.OriginalCity + ">" + replacement.ReplacedWith
		if seen[key] {
			continue
		}
		seen[key] = true
		highlights = append(highlights, fmt.Sprintf("flights go through %s instead of %s", replacement.ReplacedWith, replacement.OriginalCity))
		if len(highlights) == 2 {
			break
		}
	}
	return highlights
}
