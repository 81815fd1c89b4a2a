package request_models

import (
	"voyago/internal/models/route_models"
)

// SummarizeRouteRequest asks for narrative prose describing one generated
// route. Dates use "2006-01-02".
type SummarizeRouteRequest struct {
	Origin    string                       `json:"origin" binding:"required"`
	StartDate string                       `json:"start_date"`
	EndDate   string                       `json:"end_date"`
	Route     route_models.StructuralRoute `json:"route" binding:"required"`
}
