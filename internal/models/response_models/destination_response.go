package response_models

import (
	"voyago/internal/models/db_models"
)

type DestinationSuggestionResponse struct {
	DestinationID string   `json:"destination_id"`
	Name          string   `json:"name"`
	Country       string   `json:"country,omitempty"`
	Region        string   `json:"region,omitempty"`
	Aliases       []string `json:"aliases,omitempty"`
	Summary       string   `json:"summary,omitempty"`
}

func NewDestinationSuggestionResponse(destination db_models.DestinationEmbedding) DestinationSuggestionResponse {
	return DestinationSuggestionResponse{
		DestinationID: destination.DestinationID,
		Name:          destination.Name,
		Country:       destination.Country,
		Region:        destination.Region,
		Aliases:       destination.Aliases,
		Summary:       destination.Summary,
	}
}
