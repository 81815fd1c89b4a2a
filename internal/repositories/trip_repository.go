package repositories

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type TripRepository interface {
	Create(ctx context.Context, trip *db_models.Trip) error
	FindByID(ctx context.Context, id string) (*db_models.Trip, error)
	ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, error)
	SaveAcceptedRoute(ctx context.Context, tripID, routeID string, snapshot datatypes.JSON) error
	ReplaceActivities(ctx context.Context, tripID string, activities []db_models.TripActivity) error
	ReplaceHotelStays(ctx context.Context, tripID string, stays []db_models.HotelStay) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (t *tripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(trip).Error
	})
}

func (t *tripRepository) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Activities", func(db *gorm.DB) *gorm.DB { return db.Order("day ASC") }).
		Preload("HotelStays", func(db *gorm.DB) *gorm.DB { return db.Order("check_in ASC") }).
		First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (t *tripRepository) ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := t.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("start_date ASC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (t *tripRepository) SaveAcceptedRoute(ctx context.Context, tripID, routeID string, snapshot datatypes.JSON) error {
	return t.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ?", tripID).
		Updates(map[string]interface{}{
			"accepted_route_id": routeID,
			"accepted_route":    snapshot,
			"status":            db_models.TripStatusRouted,
		}).Error
}

func (t *tripRepository) ReplaceActivities(ctx context.Context, tripID string, activities []db_models.TripActivity) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).Delete(&db_models.TripActivity{}).Error; err != nil {
			return err
		}
		if len(activities) == 0 {
			return nil
		}
		return tx.Create(&activities).Error
	})
}

func (t *tripRepository) ReplaceHotelStays(ctx context.Context, tripID string, stays []db_models.HotelStay) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).Delete(&db_models.HotelStay{}).Error; err != nil {
			return err
		}
		if len(stays) == 0 {
			return nil
		}
		return tx.Create(&stays).Error
	})
}
