package decisionfx

import (
	"go.uber.org/fx"
	"voyago/internal/services"
)

var Module = fx.Provide(provideDecisionSupportService)

func provideDecisionSupportService(
	trips services.TripServiceInterface,
	activities services.ActivityDecisionServiceInterface,
	hotels services.HotelDecisionServiceInterface,
) services.DecisionSupportServiceInterface {
	return services.NewDecisionSupportService(trips, activities, hotels)
}
