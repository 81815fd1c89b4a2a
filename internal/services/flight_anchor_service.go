package services

import (
	"voyago/internal/models/route_models"
)

type FlightAnchorServiceInterface interface {
	IsEligible(city string, scope route_models.TripScope) bool
	ResolveArrivalCity(city string, scope route_models.TripScope) (string, bool, bool)
	ResolveOriginGateway(city string, scope route_models.TripScope) (string, bool, bool)
}

type FlightAnchorService struct {
	sink TraceSink
}

func NewFlightAnchorService(sink TraceSink) FlightAnchorServiceInterface {
	return &FlightAnchorService{sink: sink}
}

// IsEligible reports whether a city can anchor a flight for the given scope.
// Short-haul trips accept any city; long-haul trips require a capital, a
// tier-1 hub, or a whitelisted airport city.
func (s *FlightAnchorService) IsEligible(city string, scope route_models.TripScope) bool {
	if scope != route_models.ScopeLongHaul {
		return true
	}
	key := normalizeCity(city)
	return capitalCities[key] || tier1Hubs[key] || longHaulWhitelist[key]
}

// ResolveArrivalCity resolves a proposed flight endpoint on the destination
// side. It returns the resolved city, whether a substitution happened, and
// whether resolution succeeded at all.
func (s *FlightAnchorService) ResolveArrivalCity(city string, scope route_models.TripScope) (string, bool, bool) {
	if s.IsEligible(city, scope) {
		return displayCity(city), false, true
	}
	if hub, ok := nearestEligibleHub[normalizeCity(city)]; ok {
		s.sink.Emit("flight_anchor.substituted",
			"proposed", city,
			"resolved", hub,
		)
		return displayCity(hub), true, true
	}
	s.sink.Emit("flight_anchor.unresolvable", "proposed", city)
	return "", false, false
}

// ResolveOriginGateway resolves the traveler's home city to the gateway its
// long-haul departures route through. Secondary cities map to their major
// gateway; cities with no mapping fail resolution.
func (s *FlightAnchorService) ResolveOriginGateway(city string, scope route_models.TripScope) (string, bool, bool) {
	if s.IsEligible(city, scope) {
		return displayCity(city), false, true
	}
	if gateway, ok := secondaryOriginGateways[normalizeCity(city)]; ok {
		s.sink.Emit("flight_anchor.origin_normalized",
			"origin", city,
			"gateway", gateway,
		)
		return displayCity(gateway), true, true
	}
	s.sink.Emit("flight_anchor.unresolvable_origin", "origin", city)
	return "", false, false
}
