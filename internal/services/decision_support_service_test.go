package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

func newDecisionFixture(trip *db_models.Trip) DecisionSupportServiceInterface {
	repo := &tripRepoMock{
		findByIDFn: func(ctx context.Context, id string) (*db_models.Trip, error) { return trip, nil },
	}
	sink := NopTraceSink{}
	return NewDecisionSupportService(
		NewTripService(repo),
		NewActivityDecisionService(sink),
		NewHotelDecisionService(sink),
	)
}

func scheduledTrip(owner uuid.UUID) *db_models.Trip {
	// Three nights, so four plan days.
	trip := storedTrip(owner,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC))

	museum := db_models.TripActivity{TripID: trip.ID, Day: 2, Slot: "day", Name: "City museum", PhysicalEffort: "low", DurationHours: 3}
	museum.ID = uuid.New()
	trip.Activities = []db_models.TripActivity{museum}
	return trip
}

func activityRequest(day int, slot string) request_models.EvaluateActivityRequest {
	return request_models.EvaluateActivityRequest{
		Candidate: request_models.ActivityCandidateRequest{
			ID:            "act-ruins",
			Name:          "Old town ruins",
			BestTime:      "day",
			DurationHours: 2,
		},
		Day:  day,
		Slot: slot,
	}
}

func TestEvaluateActivityRejectsDayOutOfRange(t *testing.T) {
	owner := uuid.New()
	svc := newDecisionFixture(scheduledTrip(owner))

	for _, day := range []int{0, 5} {
		_, err := svc.EvaluateActivity(context.Background(), owner.String(), uuid.NewString(), activityRequest(day, "day"))
		assert.ErrorIs(t, err, utils.ErrInvalidInput, "day %d", day)
	}
}

func TestEvaluateActivityChecksOwnership(t *testing.T) {
	svc := newDecisionFixture(scheduledTrip(uuid.New()))

	_, err := svc.EvaluateActivity(context.Background(), uuid.NewString(), uuid.NewString(), activityRequest(1, "day"))
	assert.ErrorIs(t, err, utils.ErrTripNotOwned)
}

func TestEvaluateActivityFreeDayIsOK(t *testing.T) {
	owner := uuid.New()
	svc := newDecisionFixture(scheduledTrip(owner))

	result, err := svc.EvaluateActivity(context.Background(), owner.String(), uuid.NewString(), activityRequest(1, "day"))
	require.NoError(t, err)

	assert.Equal(t, "activity", result.Domain)
	assert.Equal(t, "OK", result.Status)
	require.NotEmpty(t, result.Options)
	assert.Equal(t, "SCHEDULE_ACTIVITY", result.Options[0].Action.Kind)
	assert.Equal(t, 1, result.Options[0].Action.Day)
}

func TestEvaluateActivityLoadsStoredScheduleConflicts(t *testing.T) {
	owner := uuid.New()
	trip := scheduledTrip(owner)
	svc := newDecisionFixture(trip)

	// Day 2's day slot is taken by the persisted museum visit.
	result, err := svc.EvaluateActivity(context.Background(), owner.String(), uuid.NewString(), activityRequest(2, "day"))
	require.NoError(t, err)

	assert.NotEqual(t, "OK", result.Status)
	require.NotEmpty(t, result.Options)

	// The stored activity's id must surface in at least one proposed action.
	storedID := trip.Activities[0].ID.String()
	var mentionsStored bool
	for _, option := range result.Options {
		a := option.Action
		if a.RemoveActivityID == storedID || a.MoveActivityID == storedID || a.WithActivityID == storedID {
			mentionsStored = true
		}
	}
	assert.True(t, mentionsStored, "conflict options should reference the persisted activity")
}

func TestEvaluateActivityNormalizesSlotCase(t *testing.T) {
	owner := uuid.New()
	svc := newDecisionFixture(scheduledTrip(owner))

	req := activityRequest(1, " DAY ")
	req.Candidate.BestTime = "Day"
	result, err := svc.EvaluateActivity(context.Background(), owner.String(), uuid.NewString(), req)
	require.NoError(t, err)
	assert.Equal(t, "OK", result.Status)
}

func hotelRequest() request_models.EvaluateHotelRequest {
	rate := 120.0
	return request_models.EvaluateHotelRequest{
		City:     "Vienna",
		CheckIn:  "2026-04-01",
		CheckOut: "2026-04-04",
		Selected: &request_models.HotelOptionRequest{
			ID:              "h-wien",
			Name:            "Hotel Wien",
			City:            "Vienna",
			AvailableNights: 3,
			Status:          "AVAILABLE",
			Confidence:      "HIGH",
			NightlyRate:     &rate,
		},
	}
}

func TestEvaluateHotelDateValidation(t *testing.T) {
	owner := uuid.New()
	svc := newDecisionFixture(scheduledTrip(owner))

	req := hotelRequest()
	req.CheckIn = "April 1st"
	_, err := svc.EvaluateHotel(context.Background(), owner.String(), uuid.NewString(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req = hotelRequest()
	req.CheckOut = req.CheckIn
	_, err = svc.EvaluateHotel(context.Background(), owner.String(), uuid.NewString(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestEvaluateHotelNormalizesInventoryFields(t *testing.T) {
	owner := uuid.New()
	svc := newDecisionFixture(scheduledTrip(owner))

	result, err := svc.EvaluateHotel(context.Background(), owner.String(), uuid.NewString(), hotelRequest())
	require.NoError(t, err)

	assert.Equal(t, "hotel", result.Domain)
	assert.Equal(t, "OK", result.Status)
	require.NotEmpty(t, result.Options)
	assert.Equal(t, "PROCEED_WITH_HOTEL", result.Options[0].Action.Kind)
	assert.Equal(t, "h-wien", result.Options[0].Action.HotelID)
}
