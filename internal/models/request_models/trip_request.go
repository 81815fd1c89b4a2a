package request_models

type TripStopRequest struct {
	City   string `json:"city" binding:"required"`
	Nights int    `json:"nights" binding:"required,min=1"`
}

// CreateTripRequest carries dates as "2006-01-02" strings.
type CreateTripRequest struct {
	Title      string            `json:"title" binding:"required,min=3,max=100"`
	OriginCity string            `json:"origin_city" binding:"required"`
	StartDate  string            `json:"start_date" binding:"required"`
	EndDate    string            `json:"end_date" binding:"required"`
	Stops      []TripStopRequest `json:"stops" binding:"required,min=1,dive"`
}

type TripActivityRequest struct {
	Day            int     `json:"day" binding:"required,min=1"`
	Slot           string  `json:"slot" binding:"required,oneof=day night"`
	Name           string  `json:"name" binding:"required"`
	PhysicalEffort string  `json:"physical_effort"`
	DurationHours  float64 `json:"duration_hours"`
}

// SaveScheduleRequest replaces the trip's scheduled activities wholesale.
type SaveScheduleRequest struct {
	Activities []TripActivityRequest `json:"activities" binding:"dive"`
}

type HotelStayRequest struct {
	City      string `json:"city" binding:"required"`
	HotelID   string `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
	Status    string `json:"status"`
}

type SaveHotelStaysRequest struct {
	Stays []HotelStayRequest `json:"stays" binding:"dive"`
}
