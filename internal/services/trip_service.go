package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (response_models.TripResponse, error)
	GetTrip(ctx context.Context, accountID, tripID string) (response_models.TripResponse, error)
	ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripResponse, error)
	SaveSchedule(ctx context.Context, accountID, tripID string, request request_models.SaveScheduleRequest) error
	SaveHotelStays(ctx context.Context, accountID, tripID string, request request_models.SaveHotelStaysRequest) error

	// GetOwnedTrip loads the full trip for other services after checking
	// ownership. Returns ErrTripNotFound / ErrTripNotOwned accordingly.
	GetOwnedTrip(ctx context.Context, accountID, tripID string) (*db_models.Trip, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) CreateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (response_models.TripResponse, error) {
	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return response_models.TripResponse{}, utils.ErrInvalidInput
	}

	startDate, err := utils.ParseTripDate(request.StartDate)
	if err != nil {
		return response_models.TripResponse{}, utils.ErrInvalidInput
	}
	endDate, err := utils.ParseTripDate(request.EndDate)
	if err != nil {
		return response_models.TripResponse{}, utils.ErrInvalidInput
	}
	if !endDate.After(startDate) {
		return response_models.TripResponse{}, utils.ErrInvalidInput
	}

	if strings.TrimSpace(request.OriginCity) == "" {
		return response_models.TripResponse{}, utils.ErrInvalidInput
	}
	for _, stop := range request.Stops {
		if strings.TrimSpace(stop.City) == "" || stop.Nights < 1 {
			return response_models.TripResponse{}, utils.ErrInvalidInput
		}
	}

	trip := &db_models.Trip{
		AccountID:  accountUUID,
		Title:      strings.TrimSpace(request.Title),
		OriginCity: strings.TrimSpace(request.OriginCity),
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     db_models.TripStatusDraft,
	}
	for i, stop := range request.Stops {
		trip.Stops = append(trip.Stops, db_models.TripStop{
			Position: i,
			City:     strings.TrimSpace(stop.City),
			Nights:   stop.Nights,
		})
	}

	if err := t.tripRepo.Create(ctx, trip); err != nil {
		return response_models.TripResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewTripResponse(trip), nil
}

func (t *TripService) GetTrip(ctx context.Context, accountID, tripID string) (response_models.TripResponse, error) {
	trip, err := t.GetOwnedTrip(ctx, accountID, tripID)
	if err != nil {
		return response_models.TripResponse{}, err
	}
	return response_models.NewTripResponse(trip), nil
}

func (t *TripService) ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := t.tripRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, response_models.NewTripResponse(&trips[i]))
	}
	return responses, nil
}

func (t *TripService) SaveSchedule(ctx context.Context, accountID, tripID string, request request_models.SaveScheduleRequest) error {
	trip, err := t.GetOwnedTrip(ctx, accountID, tripID)
	if err != nil {
		return err
	}

	dayCount := utils.NightsBetween(trip.StartDate, trip.EndDate) + 1
	activities := make([]db_models.TripActivity, 0, len(request.Activities))
	for _, activity := range request.Activities {
		if activity.Day > dayCount {
			return utils.ErrInvalidInput
		}
		activities = append(activities, db_models.TripActivity{
			TripID:         trip.ID,
			Day:            activity.Day,
			Slot:           activity.Slot,
			Name:           strings.TrimSpace(activity.Name),
			PhysicalEffort: strings.ToLower(strings.TrimSpace(activity.PhysicalEffort)),
			DurationHours:  activity.DurationHours,
		})
	}

	if err := t.tripRepo.ReplaceActivities(ctx, tripID, activities); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) SaveHotelStays(ctx context.Context, accountID, tripID string, request request_models.SaveHotelStaysRequest) error {
	trip, err := t.GetOwnedTrip(ctx, accountID, tripID)
	if err != nil {
		return err
	}

	stays := make([]db_models.HotelStay, 0, len(request.Stays))
	for _, stay := range request.Stays {
		checkIn, err := utils.ParseTripDate(stay.CheckIn)
		if err != nil {
			return utils.ErrInvalidInput
		}
		checkOut, err := utils.ParseTripDate(stay.CheckOut)
		if err != nil {
			return utils.ErrInvalidInput
		}
		if !checkOut.After(checkIn) {
			return utils.ErrInvalidInput
		}
		stays = append(stays, db_models.HotelStay{
			TripID:    trip.ID,
			City:      strings.TrimSpace(stay.City),
			HotelID:   stay.HotelID,
			HotelName: stay.HotelName,
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			Status:    strings.ToLower(strings.TrimSpace(stay.Status)),
		})
	}

	if err := t.tripRepo.ReplaceHotelStays(ctx, tripID, stays); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) GetOwnedTrip(ctx context.Context, accountID, tripID string) (*db_models.Trip, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.AccountID.String() != accountID {
		return nil, utils.ErrTripNotOwned
	}
	return trip, nil
}
