package request_models

import (
	"voyago/internal/models/route_models"
)

// FlightAnchorRequest pins one end of the trip to an already chosen flight.
// Date uses "2006-01-02"; empty means unset.
type FlightAnchorRequest struct {
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
	Date     string `json:"date"`
}

type GenerateRoutesRequest struct {
	OutboundAnchor *FlightAnchorRequest `json:"outbound_anchor"`
	InboundAnchor  *FlightAnchorRequest `json:"inbound_anchor"`
}

// RouteMetricsRequest carries externally resolved metrics for one generated
// route. Missing fields stay nil and rank as unknown.
type RouteMetricsRequest struct {
	RouteID            string   `json:"route_id" binding:"required"`
	TotalPrice         *float64 `json:"total_price"`
	TotalTravelMinutes *int     `json:"total_travel_minutes"`
	TotalTransfers     *int     `json:"total_transfers"`
}

// RankRoutesRequest repeats the anchors given at generate time so the same
// deterministic option set is reproduced before ranking.
type RankRoutesRequest struct {
	GenerateRoutesRequest
	Metrics []RouteMetricsRequest `json:"metrics" binding:"dive"`
}

type AcceptRouteRequest struct {
	GenerateRoutesRequest
	RouteID string `json:"route_id" binding:"required"`
}

type DiffRoutesRequest struct {
	Booked    route_models.StructuralRoute  `json:"booked" binding:"required"`
	Candidate *route_models.StructuralRoute `json:"candidate"`
}
