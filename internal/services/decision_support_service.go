package services

import (
	"context"
	"strings"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/models/route_models"
	"voyago/pkg/utils"
)

type DecisionSupportServiceInterface interface {
	EvaluateActivity(ctx context.Context, accountID, tripID string, request request_models.EvaluateActivityRequest) (response_models.DecisionResultResponse, error)
	EvaluateHotel(ctx context.Context, accountID, tripID string, request request_models.EvaluateHotelRequest) (response_models.DecisionResultResponse, error)
}

// DecisionSupportService adapts persisted trip state into the inputs the
// pure decision engines expect and returns their verdicts untouched.
type DecisionSupportService struct {
	trips      TripServiceInterface
	activities ActivityDecisionServiceInterface
	hotels     HotelDecisionServiceInterface
}

func NewDecisionSupportService(
	trips TripServiceInterface,
	activities ActivityDecisionServiceInterface,
	hotels HotelDecisionServiceInterface,
) DecisionSupportServiceInterface {
	return &DecisionSupportService{
		trips:      trips,
		activities: activities,
		hotels:     hotels,
	}
}

func (d *DecisionSupportService) EvaluateActivity(ctx context.Context, accountID, tripID string, request request_models.EvaluateActivityRequest) (response_models.DecisionResultResponse, error) {
	trip, err := d.trips.GetOwnedTrip(ctx, accountID, tripID)
	if err != nil {
		return response_models.DecisionResultResponse{}, err
	}

	dayCount := utils.NightsBetween(trip.StartDate, trip.EndDate) + 1
	if request.Day < 1 || request.Day > dayCount {
		return response_models.DecisionResultResponse{}, utils.ErrInvalidInput
	}

	day, otherDays := buildDaySchedules(trip.Activities, dayCount, request.Day)

	input := route_models.ActivityDecisionInput{
		Candidate: route_models.ActivityCandidate{
			ID:             request.Candidate.ID,
			Name:           request.Candidate.Name,
			BestTime:       route_models.TimeSlot(normalizeLabel(request.Candidate.BestTime)),
			PhysicalEffort: normalizeLabel(request.Candidate.PhysicalEffort),
			DurationHours:  request.Candidate.DurationHours,
		},
		Day:           request.Day,
		RequestedSlot: route_models.TimeSlot(normalizeLabel(request.Slot)),
		DaySchedule:   day,
		OtherDays:     otherDays,
	}

	result := d.activities.EvaluateActivity(ctx, input)
	return response_models.NewDecisionResultResponse(result), nil
}

func (d *DecisionSupportService) EvaluateHotel(ctx context.Context, accountID, tripID string, request request_models.EvaluateHotelRequest) (response_models.DecisionResultResponse, error) {
	if _, err := d.trips.GetOwnedTrip(ctx, accountID, tripID); err != nil {
		return response_models.DecisionResultResponse{}, err
	}

	checkIn, err := utils.ParseTripDate(request.CheckIn)
	if err != nil {
		return response_models.DecisionResultResponse{}, utils.ErrInvalidInput
	}
	checkOut, err := utils.ParseTripDate(request.CheckOut)
	if err != nil {
		return response_models.DecisionResultResponse{}, utils.ErrInvalidInput
	}
	if !checkOut.After(checkIn) {
		return response_models.DecisionResultResponse{}, utils.ErrInvalidInput
	}

	input := route_models.HotelDecisionInput{
		Stay: route_models.StayWindow{
			City:     strings.TrimSpace(request.City),
			CheckIn:  checkIn,
			CheckOut: checkOut,
		},
		Selected:     hotelOptionFromRequest(request.Selected),
		Alternatives: hotelOptionsFromRequest(request.Alternatives),
	}

	result := d.hotels.EvaluateHotel(ctx, input)
	return response_models.NewDecisionResultResponse(result), nil
}

// buildDaySchedules groups persisted activities by day, including empty days
// so the engine can offer moves onto them.
func buildDaySchedules(activities []db_models.TripActivity, dayCount, targetDay int) (route_models.DaySchedule, []route_models.DaySchedule) {
	byDay := make(map[int][]route_models.ScheduledActivity)
	for _, activity := range activities {
		if activity.Day < 1 || activity.Day > dayCount {
			continue
		}
		byDay[activity.Day] = append(byDay[activity.Day], route_models.ScheduledActivity{
			ID:             activity.ID.String(),
			Name:           activity.Name,
			Slot:           route_models.TimeSlot(activity.Slot),
			PhysicalEffort: activity.PhysicalEffort,
			DurationHours:  activity.DurationHours,
		})
	}

	var target route_models.DaySchedule
	others := make([]route_models.DaySchedule, 0, dayCount-1)
	for day := 1; day <= dayCount; day++ {
		schedule := route_models.DaySchedule{Day: day, Activities: byDay[day]}
		if day == targetDay {
			target = schedule
			continue
		}
		others = append(others, schedule)
	}
	return target, others
}

func hotelOptionFromRequest(request *request_models.HotelOptionRequest) *route_models.HotelOption {
	if request == nil {
		return nil
	}
	option := route_models.HotelOption{
		ID:              request.ID,
		Name:            request.Name,
		City:            strings.TrimSpace(request.City),
		AvailableNights: request.AvailableNights,
		Status:          normalizeLabel(request.Status),
		Confidence:      normalizeLabel(request.Confidence),
		NightlyRate:     request.NightlyRate,
	}
	return &option
}

func hotelOptionsFromRequest(requests []request_models.HotelOptionRequest) []route_models.HotelOption {
	options := make([]route_models.HotelOption, 0, len(requests))
	for i := range requests {
		options = append(options, *hotelOptionFromRequest(&requests[i]))
	}
	return options
}
