package db_models

import (
	"time"

	"github.com/google/uuid"
)

// TripActivity is one scheduled activity slot on a trip day. Day is 1-based
// within the trip; Slot is "day" or "night".
type TripActivity struct {
	BaseModel
	TripID         uuid.UUID `gorm:"index"`
	Day            int
	Slot           string
	Name           string
	PhysicalEffort string
	DurationHours  float64
}

type HotelStay struct {
	BaseModel
	TripID    uuid.UUID `gorm:"index"`
	City      string
	HotelID   string
	HotelName string
	CheckIn   time.Time
	CheckOut  time.Time
	Status    string
}
