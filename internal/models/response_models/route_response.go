package response_models

import (
	"voyago/internal/models/route_models"
)

type GenerateRoutesResponse struct {
	TripID string                         `json:"trip_id"`
	Scope  string                         `json:"scope"`
	Routes []route_models.StructuralRoute `json:"routes"`
}

type RouteMetricsResponse struct {
	TotalPrice         *float64 `json:"total_price"`
	TotalTravelMinutes *int     `json:"total_travel_minutes"`
	TotalTransfers     *int     `json:"total_transfers"`
}

type RouteOptionResponse struct {
	Route        route_models.StructuralRoute `json:"route"`
	Labels       []string                     `json:"labels,omitempty"`
	Confidence   string                       `json:"confidence"`
	Score        float64                      `json:"score"`
	Explanations []string                     `json:"explanations"`
	Metrics      RouteMetricsResponse         `json:"metrics"`
}

func NewRouteOptionResponse(option route_models.OptimizedRouteOption) RouteOptionResponse {
	return RouteOptionResponse{
		Route:        option.Route,
		Labels:       option.Labels,
		Confidence:   string(option.Confidence),
		Score:        option.Score,
		Explanations: option.Explanations,
		Metrics: RouteMetricsResponse{
			TotalPrice:         option.Metrics.TotalPrice,
			TotalTravelMinutes: option.Metrics.TotalTravelMinutes,
			TotalTransfers:     option.Metrics.TotalTransfers,
		},
	}
}

type ImpactCardResponse struct {
	Type           string   `json:"type"`
	Severity       int      `json:"severity"`
	SeverityLabel  string   `json:"severity_label"`
	Summary        string   `json:"summary"`
	AffectedCities []string `json:"affected_cities,omitempty"`
	AffectedDates  []string `json:"affected_dates,omitempty"`
}

func NewImpactCardResponse(card route_models.ImpactCard) ImpactCardResponse {
	return ImpactCardResponse{
		Type:           string(card.Type),
		Severity:       int(card.Severity),
		SeverityLabel:  card.Severity.String(),
		Summary:        card.Summary,
		AffectedCities: card.AffectedCities,
		AffectedDates:  card.AffectedDates,
	}
}

type DiffRoutesResponse struct {
	Cards []ImpactCardResponse `json:"cards"`
}

func NewDiffRoutesResponse(cards []route_models.ImpactCard) DiffRoutesResponse {
	out := make([]ImpactCardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, NewImpactCardResponse(card))
	}
	return DiffRoutesResponse{Cards: out}
}
