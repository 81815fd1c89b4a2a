package plannerfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"voyago/internal/repositories"
	"voyago/internal/services"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(providePlannerService)

func providePlannerService(
	trips services.TripServiceInterface,
	tripRepo repositories.TripRepository,
	scopes services.TripScopeServiceInterface,
	generator services.RouteGeneratorServiceInterface,
	ranker services.RouteRankerServiceInterface,
	differ services.RouteDiffServiceInterface,
	metrics mem.RouteMetricsStore,
	logger *zap.Logger,
) services.PlannerServiceInterface {
	return services.NewPlannerService(trips, tripRepo, scopes, generator, ranker, differ, metrics, logger)
}
