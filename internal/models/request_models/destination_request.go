package request_models

type UpsertDestinationRequest struct {
	DestinationID string   `json:"destination_id" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Country       string   `json:"country"`
	Region        string   `json:"region"`
	Aliases       []string `json:"aliases"`
	Summary       string   `json:"summary"`
}
