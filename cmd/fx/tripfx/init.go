package tripfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideTripService, provideTripRepo)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}
