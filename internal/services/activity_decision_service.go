package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"voyago/internal/models/route_models"
)

type ActivityDecisionServiceInterface interface {
	EvaluateActivity(ctx context.Context, input route_models.ActivityDecisionInput) route_models.DecisionResult
}

type ActivityDecisionService struct {
	sink TraceSink
}

func NewActivityDecisionService(sink TraceSink) ActivityDecisionServiceInterface {
	return &ActivityDecisionService{sink: sink}
}

// normalizeLabel lowercases free-form enum-ish input such as slot names,
// effort levels, and confidence grades.
func normalizeLabel(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// normalizeTimeSlot folds free-form slot wording onto the two plan slots.
// Unrecognized input counts as a day slot; an empty value stays empty so
// "no preference" survives normalization.
func normalizeTimeSlot(v string) route_models.TimeSlot {
	switch normalizeLabel(v) {
	case "":
		return ""
	case "night", "evening", "sunset", "late", "late night", "nightlife":
		return route_models.SlotNight
	default:
		return route_models.SlotDay
	}
}

func oppositeSlot(slot route_models.TimeSlot) route_models.TimeSlot {
	if slot == route_models.SlotNight {
		return route_models.SlotDay
	}
	return route_models.SlotNight
}

func isHeavyActivity(effort string, durationHours float64) bool {
	return normalizeLabel(effort) == route_models.EffortHigh || durationHours >= 4
}

func isHeavyDay(d route_models.DaySchedule) bool {
	for _, a := range d.Activities {
		if isHeavyActivity(a.PhysicalEffort, a.DurationHours) {
			return true
		}
	}
	return false
}

// EvaluateActivity classifies one "add this activity here" request and
// returns a status with selectable options. It never mutates the schedule
// and always returns at least one option, whatever the input looks like.
func (s *ActivityDecisionService) EvaluateActivity(ctx context.Context, input route_models.ActivityDecisionInput) route_models.DecisionResult {
	slot := normalizeTimeSlot(string(input.RequestedSlot))
	if slot == "" {
		slot = route_models.SlotDay
	}
	best := normalizeTimeSlot(string(input.Candidate.BestTime))

	occupant := input.DaySchedule.InSlot(slot)
	otherOccupant := input.DaySchedule.InSlot(oppositeSlot(slot))

	var result route_models.DecisionResult
	switch {
	case occupant != nil && otherOccupant != nil:
		result = s.dayFull(input, slot)
	case occupant != nil:
		result = s.slotTaken(input, slot, best, *occupant)
	default:
		result = s.slotFree(input, slot, best)
	}

	result.Domain = route_models.DomainActivity
	s.sink.Emit("activity_decision.evaluated",
		"activity", input.Candidate.ID,
		"day", input.Day,
		"status", string(result.Status),
		"options", len(result.Options),
	)
	return result
}

func (s *ActivityDecisionService) dayFull(input route_models.ActivityDecisionInput, slot route_models.TimeSlot) route_models.DecisionResult {
	facts := []string{fmt.Sprintf("Day %d already has both its slots filled.", input.Day)}
	var options []route_models.DecisionOption
	for _, existing := range input.DaySchedule.Activities {
		options = append(options, route_models.DecisionOption{
			ID:          "replace-" + existing.ID,
			Label:       fmt.Sprintf("Replace %s", existing.Name),
			Description: fmt.Sprintf("Drop %s and put %s in its %s slot.", existing.Name, input.Candidate.Name, existing.Slot),
			Tradeoffs:   []string{fmt.Sprintf("%s comes off the plan.", existing.Name)},
			Action: route_models.ReplaceActivity{
				RemoveActivityID: existing.ID,
				ActivityID:       input.Candidate.ID,
				Day:              input.Day,
				Slot:             existing.Slot,
			},
		})
	}
	options = append(options, chooseDifferentOption(input.Candidate))
	return route_models.DecisionResult{
		Status:         route_models.DecisionBlocked,
		Facts:          facts,
		Risks:          []string{"Anything added to this day displaces something already planned."},
		Recommendation: options[len(options)-1].ID,
		Options:        options,
	}
}

func (s *ActivityDecisionService) slotTaken(input route_models.ActivityDecisionInput, slot, best route_models.TimeSlot, occupant route_models.ScheduledActivity) route_models.DecisionResult {
	free := oppositeSlot(slot)
	facts := []string{
		fmt.Sprintf("The %s slot on day %d is taken by %s.", slot, input.Day, occupant.Name),
		fmt.Sprintf("The %s slot on day %d is open.", free, input.Day),
	}
	if best == slot {
		facts = append(facts, fmt.Sprintf("%s works best in the %s.", input.Candidate.Name, best))
	}

	moveExisting := route_models.DecisionOption{
		ID:          "shift-existing",
		Label:       fmt.Sprintf("Shift %s to the %s", occupant.Name, free),
		Description: fmt.Sprintf("Move %s into the %s slot and give %s the %s slot it asked for.", occupant.Name, free, input.Candidate.Name, slot),
		Action: route_models.MoveExisting{
			MoveActivityID: occupant.ID,
			ToDay:          input.Day,
			ToSlot:         free,
			ActivityID:     input.Candidate.ID,
			Day:            input.Day,
			Slot:           slot,
		},
	}
	takeOther := route_models.DecisionOption{
		ID:          "use-open-slot",
		Label:       fmt.Sprintf("Use the %s slot instead", free),
		Description: fmt.Sprintf("Keep %s where it is and schedule %s in the %s.", occupant.Name, input.Candidate.Name, free),
		Action: route_models.MoveAndAdd{
			ActivityID: input.Candidate.ID,
			Day:        input.Day,
			Slot:       free,
		},
	}
	if best == slot {
		takeOther.Tradeoffs = []string{fmt.Sprintf("%s would run outside its best time.", input.Candidate.Name)}
	}
	replace := route_models.DecisionOption{
		ID:          "replace-" + occupant.ID,
		Label:       fmt.Sprintf("Replace %s", occupant.Name),
		Description: fmt.Sprintf("Drop %s and schedule %s in the %s slot.", occupant.Name, input.Candidate.Name, slot),
		Tradeoffs:   []string{fmt.Sprintf("%s comes off the plan.", occupant.Name)},
		Action: route_models.ReplaceActivity{
			RemoveActivityID: occupant.ID,
			ActivityID:       input.Candidate.ID,
			Day:              input.Day,
			Slot:             slot,
		},
	}

	return route_models.DecisionResult{
		Status:         route_models.DecisionWarning,
		Facts:          facts,
		Risks:          []string{fmt.Sprintf("Scheduling over %s double-books the %s slot.", occupant.Name, slot)},
		Recommendation: moveExisting.ID,
		Options:        []route_models.DecisionOption{moveExisting, takeOther, replace},
	}
}

func (s *ActivityDecisionService) slotFree(input route_models.ActivityDecisionInput, slot, best route_models.TimeSlot) route_models.DecisionResult {
	mismatch := best != "" && best != slot
	heavyClash := isHeavyActivity(input.Candidate.PhysicalEffort, input.Candidate.DurationHours) && isHeavyDay(input.DaySchedule)

	switch {
	case mismatch && heavyClash:
		return s.mismatchAndHeavy(input, slot, best)
	case mismatch:
		return s.mismatchOnly(input, slot, best)
	case heavyClash:
		return s.heavyOnly(input, slot)
	}

	facts := []string{fmt.Sprintf("The %s slot on day %d is open.", slot, input.Day)}
	if best == slot {
		facts = append(facts, fmt.Sprintf("That matches the best time for %s.", input.Candidate.Name))
	}
	schedule := route_models.DecisionOption{
		ID:          "schedule",
		Label:       "Schedule it",
		Description: fmt.Sprintf("Put %s in the %s slot on day %d.", input.Candidate.Name, slot, input.Day),
		Action: route_models.ScheduleActivity{
			ActivityID: input.Candidate.ID,
			Day:        input.Day,
			Slot:       slot,
		},
	}
	return route_models.DecisionResult{
		Status:         route_models.DecisionOK,
		Facts:          facts,
		Recommendation: schedule.ID,
		Options:        []route_models.DecisionOption{schedule},
	}
}

func (s *ActivityDecisionService) mismatchOnly(input route_models.ActivityDecisionInput, slot, best route_models.TimeSlot) route_models.DecisionResult {
	facts := []string{fmt.Sprintf("%s works best in the %s, not the %s.", input.Candidate.Name, best, slot)}
	addAnyway := addAnywayOption(input, slot, fmt.Sprintf("%s would run outside its best time.", input.Candidate.Name))

	if input.DaySchedule.InSlot(best) == nil {
		move := moveToOption(input, input.Day, best, fmt.Sprintf("The %s slot on day %d is still open.", best, input.Day))
		return route_models.DecisionResult{
			Status:         route_models.DecisionMove,
			Facts:          facts,
			Recommendation: move.ID,
			Options:        []route_models.DecisionOption{move},
		}
	}

	if day, ok := nearestDayWithFreeSlot(input, best, false); ok {
		move := moveToOption(input, day, best, fmt.Sprintf("Day %d has its %s slot open.", day, best))
		return route_models.DecisionResult{
			Status:         route_models.DecisionMove,
			Facts:          append(facts, fmt.Sprintf("The %s slot on day %d is taken.", best, input.Day)),
			Recommendation: move.ID,
			Options:        []route_models.DecisionOption{move, addAnyway},
		}
	}

	options := []route_models.DecisionOption{addAnyway}
	if occupant := input.DaySchedule.InSlot(best); occupant != nil {
		options = append([]route_models.DecisionOption{{
			ID:          "swap-" + occupant.ID,
			Label:       fmt.Sprintf("Swap with %s", occupant.Name),
			Description: fmt.Sprintf("Give %s the %s slot and move %s to the %s.", input.Candidate.Name, best, occupant.Name, slot),
			Tradeoffs:   []string{fmt.Sprintf("%s moves out of its current slot.", occupant.Name)},
			Action: route_models.SwapActivities{
				ActivityID:     input.Candidate.ID,
				Day:            input.Day,
				Slot:           best,
				WithActivityID: occupant.ID,
				WithDay:        input.Day,
				WithSlot:       slot,
			},
		}}, options...)
	}
	options = append(options, chooseDifferentOption(input.Candidate))
	return route_models.DecisionResult{
		Status:         route_models.DecisionBlocked,
		Facts:          append(facts, fmt.Sprintf("No %s slot is open on nearby days.", best)),
		Risks:          []string{fmt.Sprintf("Keeping the %s slot means %s runs at an awkward time.", slot, input.Candidate.Name)},
		Recommendation: options[0].ID,
		Options:        options,
	}
}

func (s *ActivityDecisionService) heavyOnly(input route_models.ActivityDecisionInput, slot route_models.TimeSlot) route_models.DecisionResult {
	facts := []string{
		fmt.Sprintf("Day %d already carries a physically demanding activity.", input.Day),
		fmt.Sprintf("%s is demanding too.", input.Candidate.Name),
	}
	addAnyway := addAnywayOption(input, slot, "Two demanding activities land on the same day.")

	if day, ok := nearestDayWithFreeSlot(input, slot, true); ok {
		move := moveToOption(input, day, slot, fmt.Sprintf("Day %d is lighter and has the %s slot open.", day, slot))
		return route_models.DecisionResult{
			Status:         route_models.DecisionMove,
			Facts:          facts,
			Recommendation: move.ID,
			Options:        []route_models.DecisionOption{move, addAnyway},
		}
	}

	options := []route_models.DecisionOption{addAnyway}
	if swap := swapWithLighterDay(input, slot); swap != nil {
		options = append([]route_models.DecisionOption{*swap}, options...)
	}
	options = append(options, chooseDifferentOption(input.Candidate))
	return route_models.DecisionResult{
		Status:         route_models.DecisionWarning,
		Facts:          append(facts, "No lighter day has room for it."),
		Risks:          []string{"Back-to-back demanding activities leave no recovery time."},
		Recommendation: options[0].ID,
		Options:        options,
	}
}

func (s *ActivityDecisionService) mismatchAndHeavy(input route_models.ActivityDecisionInput, slot, best route_models.TimeSlot) route_models.DecisionResult {
	facts := []string{
		fmt.Sprintf("%s works best in the %s, not the %s.", input.Candidate.Name, best, slot),
		fmt.Sprintf("Day %d already carries a physically demanding activity.", input.Day),
	}

	if day, ok := nearestDayWithFreeSlot(input, best, true); ok {
		move := moveToOption(input, day, best, fmt.Sprintf("Day %d is lighter and has the %s slot open.", day, best))
		return route_models.DecisionResult{
			Status:         route_models.DecisionMove,
			Facts:          facts,
			Recommendation: move.ID,
			Options:        []route_models.DecisionOption{move, addAnywayOption(input, slot, "It would run at an awkward time on an already demanding day.")},
		}
	}

	if swap := swapWithLighterDay(input, best); swap != nil {
		return route_models.DecisionResult{
			Status:         route_models.DecisionSwap,
			Facts:          facts,
			Risks:          []string{"The trade touches a day that is already planned."},
			Recommendation: swap.ID,
			Options:        []route_models.DecisionOption{*swap, chooseDifferentOption(input.Candidate)},
		}
	}

	addAnyway := addAnywayOption(input, slot, "It would run at an awkward time on an already demanding day.")
	choose := chooseDifferentOption(input.Candidate)
	return route_models.DecisionResult{
		Status:         route_models.DecisionBlocked,
		Facts:          append(facts, "No day fits both the timing and the effort level."),
		Risks:          []string{"Forcing it degrades both this day and the activity itself."},
		Recommendation: choose.ID,
		Options:        []route_models.DecisionOption{choose, addAnyway},
	}
}

// nearestDayWithFreeSlot scans the other days by distance from the target
// day, preferring earlier days on ties. requireLight additionally demands
// the day carry no demanding activity.
func nearestDayWithFreeSlot(input route_models.ActivityDecisionInput, slot route_models.TimeSlot, requireLight bool) (int, bool) {
	days := append([]route_models.DaySchedule(nil), input.OtherDays...)
	sort.SliceStable(days, func(a, b int) bool {
		da, db := absInt(days[a].Day-input.Day), absInt(days[b].Day-input.Day)
		if da != db {
			return da < db
		}
		return days[a].Day < days[b].Day
	})
	for _, d := range days {
		if d.Day == input.Day {
			continue
		}
		if d.InSlot(slot) != nil {
			continue
		}
		if requireLight && isHeavyDay(d) {
			continue
		}
		return d.Day, true
	}
	return 0, false
}

// swapWithLighterDay proposes trading the candidate's placement with a
// low-effort activity sitting in the wanted slot on another day.
func swapWithLighterDay(input route_models.ActivityDecisionInput, slot route_models.TimeSlot) *route_models.DecisionOption {
	days := append([]route_models.DaySchedule(nil), input.OtherDays...)
	sort.SliceStable(days, func(a, b int) bool {
		da, db := absInt(days[a].Day-input.Day), absInt(days[b].Day-input.Day)
		if da != db {
			return da < db
		}
		return days[a].Day < days[b].Day
	})
	for _, d := range days {
		if d.Day == input.Day {
			continue
		}
		occupant := d.InSlot(slot)
		if occupant == nil || isHeavyActivity(occupant.PhysicalEffort, occupant.DurationHours) {
			continue
		}
		return &route_models.DecisionOption{
			ID:          "swap-" + occupant.ID,
			Label:       fmt.Sprintf("Trade places with %s", occupant.Name),
			Description: fmt.Sprintf("Put %s in the %s slot on day %d and move %s here.", input.Candidate.Name, slot, d.Day, occupant.Name),
			Tradeoffs:   []string{fmt.Sprintf("%s shifts to day %d.", occupant.Name, input.Day)},
			Action: route_models.SwapActivities{
				ActivityID:     input.Candidate.ID,
				Day:            d.Day,
				Slot:           slot,
				WithActivityID: occupant.ID,
				WithDay:        input.Day,
				WithSlot:       slot,
			},
		}
	}
	return nil
}

func moveToOption(input route_models.ActivityDecisionInput, day int, slot route_models.TimeSlot, description string) route_models.DecisionOption {
	return route_models.DecisionOption{
		ID:          fmt.Sprintf("move-day-%d-%s", day, slot),
		Label:       fmt.Sprintf("Move to day %d's %s slot", day, slot),
		Description: description,
		Action: route_models.MoveAndAdd{
			ActivityID: input.Candidate.ID,
			Day:        day,
			Slot:       slot,
		},
	}
}

func addAnywayOption(input route_models.ActivityDecisionInput, slot route_models.TimeSlot, tradeoff string) route_models.DecisionOption {
	return route_models.DecisionOption{
		ID:          "add-anyway",
		Label:       "Add it anyway",
		Description: fmt.Sprintf("Schedule %s in the %s slot on day %d as requested.", input.Candidate.Name, slot, input.Day),
		Tradeoffs:   []string{tradeoff},
		Action: route_models.AddAnyway{
			ActivityID: input.Candidate.ID,
			Day:        input.Day,
			Slot:       slot,
		},
	}
}

func chooseDifferentOption(candidate route_models.ActivityCandidate) route_models.DecisionOption {
	return route_models.DecisionOption{
		ID:          "choose-different",
		Label:       "Pick something else",
		Description: fmt.Sprintf("Leave the plan as it is and look for an alternative to %s.", candidate.Name),
		Action: route_models.ChooseDifferent{
			ActivityID: candidate.ID,
		},
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
