package response_models

type NarrativeResponse struct {
	RouteID   string `json:"route_id,omitempty"`
	Narrative string `json:"narrative"`
	Provider  string `json:"provider"`
}
