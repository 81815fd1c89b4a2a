package route_models

import "time"

// TimeSlot is a coarse scheduling slot. Each day has one day slot and one
// night slot; finer-grained times collapse into these two.
type TimeSlot string

const (
	SlotDay   TimeSlot = "day"
	SlotNight TimeSlot = "night"
)

// Effort levels for activities. Free-form values are tolerated on input;
// anything not recognized is treated as moderate.
const (
	EffortLow      = "low"
	EffortModerate = "moderate"
	EffortHigh     = "high"
)

// ActivityCandidate is an activity the traveler wants to add.
type ActivityCandidate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	BestTime       TimeSlot `json:"best_time,omitempty"`
	PhysicalEffort string   `json:"physical_effort,omitempty"`
	DurationHours  float64  `json:"duration_hours,omitempty"`
}

// ScheduledActivity is an activity already placed in the plan.
type ScheduledActivity struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Slot           TimeSlot `json:"slot"`
	PhysicalEffort string   `json:"physical_effort,omitempty"`
	DurationHours  float64  `json:"duration_hours,omitempty"`
}

// DaySchedule is the occupancy of a single plan day.
type DaySchedule struct {
	Day        int                 `json:"day"`
	Activities []ScheduledActivity `json:"activities"`
}

// InSlot returns the activity occupying the given slot, or nil.
func (d DaySchedule) InSlot(slot TimeSlot) *ScheduledActivity {
	for i := range d.Activities {
		if d.Activities[i].Slot == slot {
			return &d.Activities[i]
		}
	}
	return nil
}

// IsFull reports whether both slots of the day are taken.
func (d DaySchedule) IsFull() bool {
	return d.InSlot(SlotDay) != nil && d.InSlot(SlotNight) != nil
}

// ActivityDecisionInput is everything the activity engine needs: the
// candidate, where the traveler wants it, and the surrounding schedule.
type ActivityDecisionInput struct {
	Candidate     ActivityCandidate `json:"candidate"`
	Day           int               `json:"day"`
	RequestedSlot TimeSlot          `json:"requested_slot"`
	DaySchedule   DaySchedule       `json:"day_schedule"`
	OtherDays     []DaySchedule     `json:"other_days,omitempty"`
}

// Hotel availability statuses as reported by inventory.
const (
	HotelStatusAvailable   = "available"
	HotelStatusLimited     = "limited"
	HotelStatusUnavailable = "unavailable"
)

// Availability confidence as reported by inventory.
const (
	AvailabilityConfidenceHigh = "high"
	AvailabilityConfidenceLow  = "low"
)

// StayWindow is the city stay a hotel is being selected for.
type StayWindow struct {
	City     string    `json:"city"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Nights is the number of nights between check-in and check-out.
func (s StayWindow) Nights() int {
	n := int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// HotelOption is one property with its availability snapshot for the stay.
type HotelOption struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	City            string   `json:"city"`
	AvailableNights int      `json:"available_nights"`
	Status          string   `json:"status"`
	Confidence      string   `json:"confidence,omitempty"`
	NightlyRate     *float64 `json:"nightly_rate,omitempty"`
}

// CoversStay reports whether the option can host the full stay.
func (h HotelOption) CoversStay(nights int) bool {
	return h.Status != HotelStatusUnavailable && h.AvailableNights >= nights
}

// HotelDecisionInput is the hotel engine's input: the stay, the traveler's
// current pick if any, and the alternatives inventory knows about.
type HotelDecisionInput struct {
	Stay         StayWindow    `json:"stay"`
	Selected     *HotelOption  `json:"selected,omitempty"`
	Alternatives []HotelOption `json:"alternatives,omitempty"`
}
