package route_models

// DecisionAction is the payload of a DecisionOption. The set of variants is
// closed: new action kinds require a new type here, never a repurposed field.
// Each variant carries exactly the data needed to apply it.
type DecisionAction interface {
	decisionAction()
	Kind() string
}

// ScheduleActivity places the candidate in the requested slot as asked.
type ScheduleActivity struct {
	ActivityID string
	Day        int
	Slot       TimeSlot
}

// ReplaceActivity removes an already scheduled activity and places the
// candidate in its slot.
type ReplaceActivity struct {
	RemoveActivityID string
	ActivityID       string
	Day              int
	Slot             TimeSlot
}

// MoveExisting relocates an already scheduled activity into a free slot,
// freeing its current slot for the candidate.
type MoveExisting struct {
	MoveActivityID string
	ToDay          int
	ToSlot         TimeSlot
	ActivityID     string
	Day            int
	Slot           TimeSlot
}

// MoveAndAdd places the candidate somewhere other than the requested slot.
type MoveAndAdd struct {
	ActivityID string
	Day        int
	Slot       TimeSlot
}

// SwapActivities places the candidate into an occupied slot and relocates
// the displaced activity. Day and Slot are the candidate's final placement;
// WithDay and WithSlot are where the displaced activity lands.
type SwapActivities struct {
	ActivityID     string
	Day            int
	Slot           TimeSlot
	WithActivityID string
	WithDay        int
	WithSlot       TimeSlot
}

// AddAnyway schedules the candidate despite a named mismatch.
type AddAnyway struct {
	ActivityID string
	Day        int
	Slot       TimeSlot
}

// ChooseDifferent abandons the candidate without touching the schedule.
type ChooseDifferent struct {
	ActivityID string
}

// ProceedWithHotel confirms the selected hotel for the whole stay.
type ProceedWithHotel struct {
	HotelID string
	City    string
}

// KeepPartialWithSplit books the selected hotel for the nights it has and a
// second hotel for the remainder.
type KeepPartialWithSplit struct {
	HotelID        string
	NightsCovered  int
	RemainderHotel string
	RemainderFrom  int
}

// TryDifferentRoom retries the same property with a different room category.
type TryDifferentRoom struct {
	HotelID string
}

// PickAlternateHotel switches the stay to a different property.
type PickAlternateHotel struct {
	HotelID string
	City    string
}

// FlexDates shifts the stay window to dates with better availability.
type FlexDates struct {
	City      string
	ShiftDays int
}

// CancelSelection abandons the hotel selection without booking anything.
type CancelSelection struct {
	HotelID string
}

func (ScheduleActivity) decisionAction()     {}
func (ReplaceActivity) decisionAction()      {}
func (MoveExisting) decisionAction()         {}
func (MoveAndAdd) decisionAction()           {}
func (SwapActivities) decisionAction()       {}
func (AddAnyway) decisionAction()            {}
func (ChooseDifferent) decisionAction()      {}
func (ProceedWithHotel) decisionAction()     {}
func (KeepPartialWithSplit) decisionAction() {}
func (TryDifferentRoom) decisionAction()     {}
func (PickAlternateHotel) decisionAction()   {}
func (FlexDates) decisionAction()            {}
func (CancelSelection) decisionAction()      {}

func (ScheduleActivity) Kind() string     { return "SCHEDULE_ACTIVITY" }
func (ReplaceActivity) Kind() string      { return "REPLACE_ACTIVITY" }
func (MoveExisting) Kind() string         { return "MOVE_EXISTING" }
func (MoveAndAdd) Kind() string           { return "MOVE_AND_ADD" }
func (SwapActivities) Kind() string       { return "SWAP_ACTIVITIES" }
func (AddAnyway) Kind() string            { return "ADD_ANYWAY" }
func (ChooseDifferent) Kind() string      { return "CHOOSE_DIFFERENT" }
func (ProceedWithHotel) Kind() string     { return "PROCEED_WITH_HOTEL" }
func (KeepPartialWithSplit) Kind() string { return "KEEP_PARTIAL_WITH_SPLIT" }
func (TryDifferentRoom) Kind() string     { return "TRY_DIFFERENT_ROOM" }
func (PickAlternateHotel) Kind() string   { return "PICK_ALTERNATE_HOTEL" }
func (FlexDates) Kind() string            { return "FLEX_DATES" }
func (CancelSelection) Kind() string      { return "CANCEL_SELECTION" }
