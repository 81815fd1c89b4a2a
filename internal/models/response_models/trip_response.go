package response_models

import (
	"gorm.io/datatypes"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

type TripStopResponse struct {
	City   string `json:"city"`
	Nights int    `json:"nights"`
}

type TripResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	OriginCity      string             `json:"origin_city"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	Status          string             `json:"status"`
	Stops           []TripStopResponse `json:"stops"`
	AcceptedRouteID string             `json:"accepted_route_id,omitempty"`
	AcceptedRoute   datatypes.JSON     `json:"accepted_route,omitempty"`
}

func NewTripResponse(trip *db_models.Trip) TripResponse {
	stops := make([]TripStopResponse, 0, len(trip.Stops))
	for _, stop := range trip.Stops {
		stops = append(stops, TripStopResponse{City: stop.City, Nights: stop.Nights})
	}

	return TripResponse{
		ID:              trip.ID.String(),
		Title:           trip.Title,
		OriginCity:      trip.OriginCity,
		StartDate:       utils.FormatTripDate(trip.StartDate),
		EndDate:         utils.FormatTripDate(trip.EndDate),
		Status:          trip.Status,
		Stops:           stops,
		AcceptedRouteID: trip.AcceptedRouteID,
		AcceptedRoute:   trip.AcceptedRoute,
	}
}
