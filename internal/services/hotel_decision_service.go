package services

import (
	"context"
	"fmt"

	"voyago/internal/models/route_models"
)

type HotelDecisionServiceInterface interface {
	EvaluateHotel(ctx context.Context, input route_models.HotelDecisionInput) route_models.DecisionResult
}

type HotelDecisionService struct {
	sink TraceSink
}

func NewHotelDecisionService(sink TraceSink) HotelDecisionServiceInterface {
	return &HotelDecisionService{sink: sink}
}

// EvaluateHotel classifies a hotel selection against the stay window. Like
// the activity engine it never books anything; partial availability in
// particular is surfaced as a warning with a split option, never silently
// shortened.
func (s *HotelDecisionService) EvaluateHotel(ctx context.Context, input route_models.HotelDecisionInput) route_models.DecisionResult {
	nights := input.Stay.Nights()
	if nights < 1 {
		nights = 1
	}

	var result route_models.DecisionResult
	switch {
	case input.Selected == nil:
		result = s.noSelection(input, nights)
	case input.Selected.Status == route_models.HotelStatusUnavailable || input.Selected.AvailableNights == 0:
		result = s.unavailable(input, nights)
	case input.Selected.AvailableNights < nights:
		result = s.partialAvailability(input, nights)
	case input.Selected.Status == route_models.HotelStatusLimited || normalizeLabel(input.Selected.Confidence) == route_models.AvailabilityConfidenceLow:
		result = s.shakyAvailability(input, nights)
	default:
		result = s.fullyAvailable(input, nights)
	}

	result.Domain = route_models.DomainHotel
	s.sink.Emit("hotel_decision.evaluated",
		"city", input.Stay.City,
		"nights", nights,
		"status", string(result.Status),
		"options", len(result.Options),
	)
	return result
}

func (s *HotelDecisionService) noSelection(input route_models.HotelDecisionInput, nights int) route_models.DecisionResult {
	facts := []string{fmt.Sprintf("No hotel is selected for the %d-night stay in %s.", nights, displayCity(input.Stay.City))}
	var options []route_models.DecisionOption
	for _, alt := range input.Alternatives {
		if !alt.CoversStay(nights) {
			continue
		}
		options = append(options, pickAlternateOption(alt))
		if len(options) == 3 {
			break
		}
	}
	if len(options) == 0 {
		facts = append(facts, "Nothing in the current inventory covers the whole stay.")
		options = append(options, flexDatesOption(input.Stay))
	}
	return route_models.DecisionResult{
		Status:         route_models.DecisionOK,
		Facts:          facts,
		Recommendation: options[0].ID,
		Options:        options,
	}
}

func (s *HotelDecisionService) unavailable(input route_models.HotelDecisionInput, nights int) route_models.DecisionResult {
	selected := *input.Selected
	facts := []string{fmt.Sprintf("%s has no availability for the %d-night stay in %s.", selected.Name, nights, displayCity(input.Stay.City))}

	var options []route_models.DecisionOption
	for _, alt := range input.Alternatives {
		if !alt.CoversStay(nights) {
			continue
		}
		options = append(options, pickAlternateOption(alt))
		if len(options) == 2 {
			break
		}
	}
	options = append(options, flexDatesOption(input.Stay), cancelOption(selected))
	return route_models.DecisionResult{
		Status:         route_models.DecisionBlocked,
		Facts:          facts,
		Risks:          []string{"The stay has no roof until a different hotel or different dates are chosen."},
		Recommendation: options[0].ID,
		Options:        options,
	}
}

func (s *HotelDecisionService) partialAvailability(input route_models.HotelDecisionInput, nights int) route_models.DecisionResult {
	selected := *input.Selected
	covered := selected.AvailableNights
	remaining := nights - covered
	facts := []string{
		fmt.Sprintf("%s covers %d of the %d nights in %s.", selected.Name, covered, nights, displayCity(input.Stay.City)),
		fmt.Sprintf("The remaining %d night(s) need a different arrangement.", remaining),
	}

	remainderHotel := ""
	remainderName := "a second hotel"
	for _, alt := range input.Alternatives {
		if alt.ID != selected.ID && alt.CoversStay(remaining) {
			remainderHotel = alt.ID
			remainderName = alt.Name
			break
		}
	}
	split := route_models.DecisionOption{
		ID:          "keep-partial-split",
		Label:       fmt.Sprintf("Keep %s for %d night(s), split the rest", selected.Name, covered),
		Description: fmt.Sprintf("Book the first %d night(s) at %s and the remaining %d at %s.", covered, selected.Name, remaining, remainderName),
		Tradeoffs:   []string{"One mid-stay hotel change, with packing and a transfer."},
		Action: route_models.KeepPartialWithSplit{
			HotelID:        selected.ID,
			NightsCovered:  covered,
			RemainderHotel: remainderHotel,
			RemainderFrom:  covered,
		},
	}
	differentRoom := tryDifferentRoomOption(selected)

	options := []route_models.DecisionOption{split, differentRoom}
	for _, alt := range input.Alternatives {
		if alt.ID == selected.ID || !alt.CoversStay(nights) {
			continue
		}
		options = append(options, pickAlternateOption(alt))
		if len(options) == 4 {
			break
		}
	}
	options = append(options, cancelOption(selected))

	return route_models.DecisionResult{
		Status:         route_models.DecisionWarning,
		Facts:          facts,
		Risks:          []string{fmt.Sprintf("Confirming as-is leaves %d night(s) unbooked.", remaining)},
		Recommendation: split.ID,
		Options:        options,
	}
}

func (s *HotelDecisionService) shakyAvailability(input route_models.HotelDecisionInput, nights int) route_models.DecisionResult {
	selected := *input.Selected
	reason := "inventory reports limited availability"
	if normalizeLabel(selected.Confidence) == route_models.AvailabilityConfidenceLow {
		reason = "the availability data is low-confidence"
	}
	facts := []string{
		fmt.Sprintf("%s shows room for all %d nights, but %s.", selected.Name, nights, reason),
	}

	proceed := route_models.DecisionOption{
		ID:          "proceed",
		Label:       fmt.Sprintf("Proceed with %s", selected.Name),
		Description: fmt.Sprintf("Confirm %s for the full stay in %s.", selected.Name, displayCity(input.Stay.City)),
		Tradeoffs:   []string{"The booking may bounce if the reported availability is stale."},
		Action: route_models.ProceedWithHotel{
			HotelID: selected.ID,
			City:    selected.City,
		},
	}
	options := []route_models.DecisionOption{proceed, tryDifferentRoomOption(selected)}
	for _, alt := range input.Alternatives {
		if alt.ID == selected.ID || !alt.CoversStay(nights) {
			continue
		}
		if alt.Status != route_models.HotelStatusAvailable || normalizeLabel(alt.Confidence) == route_models.AvailabilityConfidenceLow {
			continue
		}
		options = append(options, pickAlternateOption(alt))
		if len(options) == 4 {
			break
		}
	}

	return route_models.DecisionResult{
		Status:         route_models.DecisionWarning,
		Facts:          facts,
		Risks:          []string{"A failed confirmation this close to the stay limits the fallbacks."},
		Recommendation: proceed.ID,
		Options:        options,
	}
}

func (s *HotelDecisionService) fullyAvailable(input route_models.HotelDecisionInput, nights int) route_models.DecisionResult {
	selected := *input.Selected
	facts := []string{fmt.Sprintf("%s is available for all %d nights in %s.", selected.Name, nights, displayCity(input.Stay.City))}
	proceed := route_models.DecisionOption{
		ID:          "proceed",
		Label:       fmt.Sprintf("Proceed with %s", selected.Name),
		Description: fmt.Sprintf("Confirm %s for the full stay.", selected.Name),
		Action: route_models.ProceedWithHotel{
			HotelID: selected.ID,
			City:    selected.City,
		},
	}
	return route_models.DecisionResult{
		Status:         route_models.DecisionOK,
		Facts:          facts,
		Recommendation: proceed.ID,
		Options:        []route_models.DecisionOption{proceed},
	}
}

func pickAlternateOption(alt route_models.HotelOption) route_models.DecisionOption {
	return route_models.DecisionOption{
		ID:          "pick-" + alt.ID,
		Label:       fmt.Sprintf("Switch to %s", alt.Name),
		Description: fmt.Sprintf("Book %s for the whole stay instead.", alt.Name),
		Action: route_models.PickAlternateHotel{
			HotelID: alt.ID,
			City:    alt.City,
		},
	}
}

func tryDifferentRoomOption(selected route_models.HotelOption) route_models.DecisionOption {
	return route_models.DecisionOption{
		ID:          "different-room",
		Label:       "Try a different room type",
		Description: fmt.Sprintf("Check other room categories at %s for the full stay.", selected.Name),
		Action: route_models.TryDifferentRoom{
			HotelID: selected.ID,
		},
	}
}

func flexDatesOption(stay route_models.StayWindow) route_models.DecisionOption {
	return route_models.DecisionOption{
		ID:          "flex-dates",
		Label:       "Flex the stay dates",
		Description: fmt.Sprintf("Shift the %s stay by a day to open up more availability.", displayCity(stay.City)),
		Tradeoffs:   []string{"Adjacent stays and transport shift with it."},
		Action: route_models.FlexDates{
			City:      stay.City,
			ShiftDays: 1,
		},
	}
}

func cancelOption(selected route_models.HotelOption) route_models.DecisionOption {
	return route_models.DecisionOption{
		ID:          "cancel-selection",
		Label:       "Drop this selection",
		Description: fmt.Sprintf("Remove %s and decide later.", selected.Name),
		Action: route_models.CancelSelection{
			HotelID: selected.ID,
		},
	}
}
