package services

import (
	"voyago/internal/models/route_models"
)

type TripScopeServiceInterface interface {
	ClassifyScope(intent route_models.RouteIntent) route_models.TripScope
}

type TripScopeService struct {
	sink TraceSink
}

func NewTripScopeService(sink TraceSink) TripScopeServiceInterface {
	return &TripScopeService{sink: sink}
}

// ClassifyScope decides once, from the raw intent, whether the trip is
// long-haul or short-haul. Callers must classify before any origin or
// destination normalization; the scope never changes afterwards.
func (s *TripScopeService) ClassifyScope(intent route_models.RouteIntent) route_models.TripScope {
	originRegion := cityRegion(intent.Origin)

	anyKnownStop := false
	crossRegion := false
	for _, stop := range intent.Stops {
		stopRegion := cityRegion(stop.City)
		if stopRegion != "" {
			anyKnownStop = true
		}
		// An unknown region on either side is treated as a different
		// region, so unrecognized cities classify conservatively.
		if stopRegion != originRegion || stopRegion == "" || originRegion == "" {
			crossRegion = true
		}
	}

	scope := route_models.ScopeShortHaul
	if crossRegion && (originRegion != "" || anyKnownStop) {
		scope = route_models.ScopeLongHaul
	}

	s.sink.Emit("trip_scope.classified",
		"origin", intent.Origin,
		"origin_region", originRegion,
		"scope", string(scope),
	)
	return scope
}
