package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

// tripRepoMock implements repositories.TripRepository with overridable
// functions. Methods without an override return zero values.
type tripRepoMock struct {
	createFn            func(ctx context.Context, trip *db_models.Trip) error
	findByIDFn          func(ctx context.Context, id string) (*db_models.Trip, error)
	listByAccountFn     func(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, error)
	saveAcceptedRouteFn func(ctx context.Context, tripID, routeID string, snapshot datatypes.JSON) error
	replaceActivitiesFn func(ctx context.Context, tripID string, activities []db_models.TripActivity) error
	replaceHotelStaysFn func(ctx context.Context, tripID string, stays []db_models.HotelStay) error
}

func (m *tripRepoMock) Create(ctx context.Context, trip *db_models.Trip) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, trip)
}

func (m *tripRepoMock) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *tripRepoMock) ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, error) {
	if m.listByAccountFn == nil {
		return nil, nil
	}
	return m.listByAccountFn(ctx, accountID, page, pageSize)
}

func (m *tripRepoMock) SaveAcceptedRoute(ctx context.Context, tripID, routeID string, snapshot datatypes.JSON) error {
	if m.saveAcceptedRouteFn == nil {
		return nil
	}
	return m.saveAcceptedRouteFn(ctx, tripID, routeID, snapshot)
}

func (m *tripRepoMock) ReplaceActivities(ctx context.Context, tripID string, activities []db_models.TripActivity) error {
	if m.replaceActivitiesFn == nil {
		return nil
	}
	return m.replaceActivitiesFn(ctx, tripID, activities)
}

func (m *tripRepoMock) ReplaceHotelStays(ctx context.Context, tripID string, stays []db_models.HotelStay) error {
	if m.replaceHotelStaysFn == nil {
		return nil
	}
	return m.replaceHotelStaysFn(ctx, tripID, stays)
}

func storedTrip(accountID uuid.UUID, start, end time.Time) *db_models.Trip {
	trip := &db_models.Trip{
		AccountID:  accountID,
		Title:      "Test trip",
		OriginCity: "Bangalore",
		StartDate:  start,
		EndDate:    end,
		Status:     db_models.TripStatusDraft,
	}
	trip.ID = uuid.New()
	return trip
}

func validCreateTripRequest() request_models.CreateTripRequest {
	return request_models.CreateTripRequest{
		Title:      "Europe in May",
		OriginCity: "Bangalore",
		StartDate:  "2026-05-01",
		EndDate:    "2026-05-10",
		Stops: []request_models.TripStopRequest{
			{City: "Vienna", Nights: 3},
			{City: "Prague", Nights: 3},
			{City: "Berlin", Nights: 3},
		},
	}
}

func TestCreateTripValidation(t *testing.T) {
	svc := NewTripService(&tripRepoMock{})
	accountID := uuid.New().String()

	tests := []struct {
		name   string
		mutate func(r *request_models.CreateTripRequest)
	}{
		{name: "bad start date", mutate: func(r *request_models.CreateTripRequest) { r.StartDate = "01-05-2026" }},
		{name: "bad end date", mutate: func(r *request_models.CreateTripRequest) { r.EndDate = "soon" }},
		{name: "end before start", mutate: func(r *request_models.CreateTripRequest) { r.EndDate = "2026-04-30" }},
		{name: "end equals start", mutate: func(r *request_models.CreateTripRequest) { r.EndDate = "2026-05-01" }},
		{name: "blank origin", mutate: func(r *request_models.CreateTripRequest) { r.OriginCity = "  " }},
		{name: "blank stop city", mutate: func(r *request_models.CreateTripRequest) { r.Stops[1].City = "" }},
		{name: "zero nights", mutate: func(r *request_models.CreateTripRequest) { r.Stops[0].Nights = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateTripRequest()
			tt.mutate(&req)
			_, err := svc.CreateTrip(context.Background(), accountID, req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}

	t.Run("bad account id", func(t *testing.T) {
		_, err := svc.CreateTrip(context.Background(), "not-a-uuid", validCreateTripRequest())
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})
}

func TestCreateTripPersistsOrderedStops(t *testing.T) {
	var saved *db_models.Trip
	repo := &tripRepoMock{
		createFn: func(ctx context.Context, trip *db_models.Trip) error {
			saved = trip
			return nil
		},
	}
	svc := NewTripService(repo)

	req := validCreateTripRequest()
	req.Stops[0].City = "  Vienna "
	resp, err := svc.CreateTrip(context.Background(), uuid.New().String(), req)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, db_models.TripStatusDraft, saved.Status)
	require.Len(t, saved.Stops, 3)
	for i, city := range []string{"Vienna", "Prague", "Berlin"} {
		assert.Equal(t, i, saved.Stops[i].Position)
		assert.Equal(t, city, saved.Stops[i].City)
	}
	assert.Equal(t, "2026-05-01", resp.StartDate)
	assert.Equal(t, "2026-05-10", resp.EndDate)
}

func TestCreateTripDatabaseError(t *testing.T) {
	repo := &tripRepoMock{
		createFn: func(ctx context.Context, trip *db_models.Trip) error {
			return errors.New("connection reset")
		},
	}
	svc := NewTripService(repo)

	_, err := svc.CreateTrip(context.Background(), uuid.New().String(), validCreateTripRequest())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetOwnedTrip(t *testing.T) {
	owner := uuid.New()
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	trip := storedTrip(owner, start, end)

	tests := []struct {
		name      string
		accountID string
		findErr   error
		found     *db_models.Trip
		wantErr   error
	}{
		{name: "repo failure", accountID: owner.String(), findErr: errors.New("boom"), wantErr: utils.ErrDatabaseError},
		{name: "missing trip", accountID: owner.String(), found: nil, wantErr: utils.ErrTripNotFound},
		{name: "foreign trip", accountID: uuid.New().String(), found: trip, wantErr: utils.ErrTripNotOwned},
		{name: "owned trip", accountID: owner.String(), found: trip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &tripRepoMock{
				findByIDFn: func(ctx context.Context, id string) (*db_models.Trip, error) {
					return tt.found, tt.findErr
				},
			}
			svc := NewTripService(repo)

			got, err := svc.GetOwnedTrip(context.Background(), tt.accountID, trip.ID.String())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, trip.ID, got.ID)
		})
	}
}

func TestListTripsPageValidation(t *testing.T) {
	svc := NewTripService(&tripRepoMock{})
	accountID := uuid.New().String()

	_, err := svc.ListTrips(context.Background(), accountID, 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.ListTrips(context.Background(), accountID, 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.ListTrips(context.Background(), accountID, 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestSaveScheduleRejectsDayBeyondTrip(t *testing.T) {
	owner := uuid.New()
	// 2026-03-01 to 2026-03-04 is three nights, so four trip days.
	trip := storedTrip(owner,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))

	var replaced []db_models.TripActivity
	repo := &tripRepoMock{
		findByIDFn: func(ctx context.Context, id string) (*db_models.Trip, error) { return trip, nil },
		replaceActivitiesFn: func(ctx context.Context, tripID string, activities []db_models.TripActivity) error {
			replaced = activities
			return nil
		},
	}
	svc := NewTripService(repo)

	err := svc.SaveSchedule(context.Background(), owner.String(), trip.ID.String(), request_models.SaveScheduleRequest{
		Activities: []request_models.TripActivityRequest{
			{Day: 5, Slot: "day", Name: "Louvre", PhysicalEffort: "low", DurationHours: 3},
		},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	err = svc.SaveSchedule(context.Background(), owner.String(), trip.ID.String(), request_models.SaveScheduleRequest{
		Activities: []request_models.TripActivityRequest{
			{Day: 4, Slot: "night", Name: " Night market ", PhysicalEffort: "LOW", DurationHours: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, replaced, 1)
	assert.Equal(t, "Night market", replaced[0].Name)
	assert.Equal(t, "low", replaced[0].PhysicalEffort)
	assert.Equal(t, trip.ID, replaced[0].TripID)
}

func TestSaveHotelStaysValidatesDates(t *testing.T) {
	owner := uuid.New()
	trip := storedTrip(owner,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))

	var replaced []db_models.HotelStay
	repo := &tripRepoMock{
		findByIDFn: func(ctx context.Context, id string) (*db_models.Trip, error) { return trip, nil },
		replaceHotelStaysFn: func(ctx context.Context, tripID string, stays []db_models.HotelStay) error {
			replaced = stays
			return nil
		},
	}
	svc := NewTripService(repo)

	err := svc.SaveHotelStays(context.Background(), owner.String(), trip.ID.String(), request_models.SaveHotelStaysRequest{
		Stays: []request_models.HotelStayRequest{
			{City: "Vienna", HotelID: "h1", HotelName: "Hotel Wien", CheckIn: "2026-03-03", CheckOut: "2026-03-03"},
		},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	err = svc.SaveHotelStays(context.Background(), owner.String(), trip.ID.String(), request_models.SaveHotelStaysRequest{
		Stays: []request_models.HotelStayRequest{
			{City: "Vienna", HotelID: "h1", HotelName: "Hotel Wien", CheckIn: "2026-03-01", CheckOut: "2026-03-04", Status: "CONFIRMED"},
		},
	})
	require.NoError(t, err)
	require.Len(t, replaced, 1)
	assert.Equal(t, "confirmed", replaced[0].Status)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), replaced[0].CheckOut)
}
