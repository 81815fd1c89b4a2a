package corefx

import (
	"log"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideLogger,
	provideTraceSink,
	provideTripScopeService,
	provideFlightAnchorService,
	provideItineraryImpactService,
	provideRouteGeneratorService,
	provideRouteRankerService,
	provideRouteDiffService,
	provideActivityDecisionService,
	provideHotelDecisionService)

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialise logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func provideTraceSink(logger *zap.Logger) services.TraceSink {
	return services.NewZapTraceSink(logger)
}

func provideTripScopeService(sink services.TraceSink) services.TripScopeServiceInterface {
	return services.NewTripScopeService(sink)
}

func provideFlightAnchorService(sink services.TraceSink) services.FlightAnchorServiceInterface {
	return services.NewFlightAnchorService(sink)
}

func provideItineraryImpactService(sink services.TraceSink) services.ItineraryImpactServiceInterface {
	return services.NewItineraryImpactService(sink)
}

func provideRouteGeneratorService(
	scopes services.TripScopeServiceInterface,
	anchors services.FlightAnchorServiceInterface,
	impacts services.ItineraryImpactServiceInterface,
	sink services.TraceSink,
) services.RouteGeneratorServiceInterface {
	return services.NewRouteGeneratorService(scopes, anchors, impacts, sink)
}

func provideRouteRankerService(sink services.TraceSink) services.RouteRankerServiceInterface {
	return services.NewRouteRankerService(sink)
}

func provideRouteDiffService(sink services.TraceSink) services.RouteDiffServiceInterface {
	return services.NewRouteDiffService(sink)
}

func provideActivityDecisionService(sink services.TraceSink) services.ActivityDecisionServiceInterface {
	return services.NewActivityDecisionService(sink)
}

func provideHotelDecisionService(sink services.TraceSink) services.HotelDecisionServiceInterface {
	return services.NewHotelDecisionService(sink)
}
