package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TripStatusDraft  = "draft"
	TripStatusRouted = "routed"
	TripStatusBooked = "booked"
)

type Trip struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index"`
	Title      string
	OriginCity string
	StartDate  time.Time
	EndDate    time.Time
	Status     string `gorm:"default:draft"`

	// Snapshot of the accepted structural route, written on accept.
	AcceptedRouteID string
	AcceptedRoute   datatypes.JSON `gorm:"type:jsonb"`

	Stops      []TripStop     `gorm:"constraint:OnDelete:CASCADE"`
	Activities []TripActivity `gorm:"constraint:OnDelete:CASCADE"`
	HotelStays []HotelStay    `gorm:"constraint:OnDelete:CASCADE"`
}

type TripStop struct {
	BaseModel
	TripID   uuid.UUID `gorm:"index"`
	Position int
	City     string
	Nights   int
}
