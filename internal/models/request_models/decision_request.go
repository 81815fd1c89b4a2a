package request_models

type ActivityCandidateRequest struct {
	ID             string  `json:"id" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	BestTime       string  `json:"best_time"`
	PhysicalEffort string  `json:"physical_effort"`
	DurationHours  float64 `json:"duration_hours"`
}

// EvaluateActivityRequest asks whether the candidate fits on the given day.
// The existing schedule is loaded from the trip, not from the request.
type EvaluateActivityRequest struct {
	Candidate ActivityCandidateRequest `json:"candidate" binding:"required"`
	Day       int                      `json:"day" binding:"required,min=1"`
	Slot      string                   `json:"slot"`
}

type HotelOptionRequest struct {
	ID              string   `json:"id" binding:"required"`
	Name            string   `json:"name"`
	City            string   `json:"city"`
	AvailableNights int      `json:"available_nights"`
	Status          string   `json:"status"`
	Confidence      string   `json:"confidence"`
	NightlyRate     *float64 `json:"nightly_rate"`
}

// EvaluateHotelRequest carries the stay window plus the caller's current
// inventory snapshot. Dates use "2006-01-02".
type EvaluateHotelRequest struct {
	City         string               `json:"city" binding:"required"`
	CheckIn      string               `json:"check_in" binding:"required"`
	CheckOut     string               `json:"check_out" binding:"required"`
	Selected     *HotelOptionRequest  `json:"selected"`
	Alternatives []HotelOptionRequest `json:"alternatives"`
}
