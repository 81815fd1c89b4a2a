package response_models

import (
	"voyago/internal/models/route_models"
)

// DecisionActionResponse is the wire form of a decision action. Kind is
// always set; the remaining fields are populated per kind and omitted
// otherwise.
type DecisionActionResponse struct {
	Kind             string `json:"kind"`
	ActivityID       string `json:"activity_id,omitempty"`
	Day              int    `json:"day,omitempty"`
	Slot             string `json:"slot,omitempty"`
	RemoveActivityID string `json:"remove_activity_id,omitempty"`
	MoveActivityID   string `json:"move_activity_id,omitempty"`
	ToDay            int    `json:"to_day,omitempty"`
	ToSlot           string `json:"to_slot,omitempty"`
	WithActivityID   string `json:"with_activity_id,omitempty"`
	WithDay          int    `json:"with_day,omitempty"`
	WithSlot         string `json:"with_slot,omitempty"`
	HotelID          string `json:"hotel_id,omitempty"`
	City             string `json:"city,omitempty"`
	NightsCovered    int    `json:"nights_covered,omitempty"`
	RemainderHotel   string `json:"remainder_hotel,omitempty"`
	RemainderFrom    int    `json:"remainder_from,omitempty"`
	ShiftDays        int    `json:"shift_days,omitempty"`
}

func NewDecisionActionResponse(action route_models.DecisionAction) DecisionActionResponse {
	out := DecisionActionResponse{Kind: action.Kind()}

	switch a := action.(type) {
	case route_models.ScheduleActivity:
		out.ActivityID = a.ActivityID
		out.Day = a.Day
		out.Slot = string(a.Slot)
	case route_models.ReplaceActivity:
		out.RemoveActivityID = a.RemoveActivityID
		out.ActivityID = a.ActivityID
		out.Day = a.Day
		out.Slot = string(a.Slot)
	case route_models.MoveExisting:
		out.MoveActivityID = a.MoveActivityID
		out.ToDay = a.ToDay
		out.ToSlot = string(a.ToSlot)
		out.ActivityID = a.ActivityID
		out.Day = a.Day
		out.Slot = string(a.Slot)
	case route_models.MoveAndAdd:
		out.ActivityID = a.ActivityID
		out.Day = a.Day
		out.Slot = string(a.Slot)
	case route_models.SwapActivities:
		out.ActivityID = a.ActivityID
		out.Day = a.Day
		out.Slot = string(a.Slot)
		out.WithActivityID = a.WithActivityID
		out.WithDay = a.WithDay
		out.WithSlot = string(a.WithSlot)
	case route_models.ChooseDifferent:
		out.ActivityID = a.ActivityID
	case route_models.ProceedWithHotel:
		out.HotelID = a.HotelID
		out.City = a.City
	case route_models.KeepPartialWithSplit:
		out.HotelID = a.HotelID
		out.NightsCovered = a.NightsCovered
		out.RemainderHotel = a.RemainderHotel
		out.RemainderFrom = a.RemainderFrom
	case route_models.TryDifferentRoom:
		out.HotelID = a.HotelID
	case route_models.PickAlternateHotel:
		out.HotelID = a.HotelID
		out.City = a.City
	case route_models.FlexDates:
		out.City = a.City
		out.ShiftDays = a.ShiftDays
	case route_models.CancelSelection:
		out.HotelID = a.HotelID
	}

	return out
}

type DecisionOptionResponse struct {
	ID          string                 `json:"id"`
	Label       string                 `json:"label"`
	Description string                 `json:"description,omitempty"`
	Tradeoffs   []string               `json:"tradeoffs,omitempty"`
	Action      DecisionActionResponse `json:"action"`
}

type DecisionResultResponse struct {
	Domain         string                   `json:"domain"`
	Status         string                   `json:"status"`
	Facts          []string                 `json:"facts,omitempty"`
	Risks          []string                 `json:"risks,omitempty"`
	Recommendation string                   `json:"recommendation,omitempty"`
	Options        []DecisionOptionResponse `json:"options"`
}

func NewDecisionResultResponse(result route_models.DecisionResult) DecisionResultResponse {
	options := make([]DecisionOptionResponse, 0, len(result.Options))
	for _, option := range result.Options {
		options = append(options, DecisionOptionResponse{
			ID:          option.ID,
			Label:       option.Label,
			Description: option.Description,
			Tradeoffs:   option.Tradeoffs,
			Action:      NewDecisionActionResponse(option.Action),
		})
	}

	return DecisionResultResponse{
		Domain:         string(result.Domain),
		Status:         string(result.Status),
		Facts:          result.Facts,
		Risks:          result.Risks,
		Recommendation: result.Recommendation,
		Options:        options,
	}
}
