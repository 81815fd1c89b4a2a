package services

import (
	"context"
	"fmt"
	"strings"

	"voyago/internal/models/route_models"
)

const (
	minRouteOptions = 3
	maxRouteOptions = 5
)

// Hard invalidation codes attached by the generator.
const (
	invalidOriginGateway  = "ineligible-origin-gateway"
	invalidOutboundAnchor = "unresolvable-outbound-anchor"
	invalidInboundAnchor  = "unresolvable-inbound-anchor"
)

type RouteGeneratorServiceInterface interface {
	GenerateRoutes(ctx context.Context, intent route_models.RouteIntent) []route_models.StructuralRoute
}

type RouteGeneratorService struct {
	scopes  TripScopeServiceInterface
	anchors FlightAnchorServiceInterface
	impacts ItineraryImpactServiceInterface
	sink    TraceSink
}

func NewRouteGeneratorService(
	scopes TripScopeServiceInterface,
	anchors FlightAnchorServiceInterface,
	impacts ItineraryImpactServiceInterface,
	sink TraceSink,
) RouteGeneratorServiceInterface {
	return &RouteGeneratorService{
		scopes:  scopes,
		anchors: anchors,
		impacts: impacts,
		sink:    sink,
	}
}

type routeVariant struct {
	id    string
	label string
	stops []route_models.Stop
}

// GenerateRoutes turns a route intent into three to five structural route
// candidates. The result is a pure function of the intent: same input, same
// routes, same order. An intent whose first stop cannot be anchored at all
// fails fast with an empty result.
func (s *RouteGeneratorService) GenerateRoutes(ctx context.Context, intent route_models.RouteIntent) []route_models.StructuralRoute {
	if strings.TrimSpace(intent.Origin) == "" || len(intent.Stops) == 0 {
		s.sink.Emit("route_generator.rejected", "reason", "missing origin or stops")
		return nil
	}

	// Scope is frozen from the raw intent before any normalization below.
	scope := s.scopes.ClassifyScope(intent)

	gatewayOrigin, originCorrected, originOK := s.anchors.ResolveOriginGateway(intent.Origin, scope)
	if !originOK {
		gatewayOrigin = displayCity(intent.Origin)
	}

	var routes []route_models.StructuralRoute
	seen := make(map[string]bool)
	for i, v := range buildVariants(intent.Stops) {
		route, ok := s.buildRoute(intent, scope, v, gatewayOrigin, originCorrected, originOK, i == 0)
		if !ok {
			s.sink.Emit("route_generator.fail_fast",
				"origin", intent.Origin,
				"first_stop", intent.FirstStopCity(),
			)
			return nil
		}
		sig := route.CitySignature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		routes = append(routes, *route)
	}

	routes = s.padWithLabeledVariants(routes)
	if len(routes) > maxRouteOptions {
		routes = routes[:maxRouteOptions]
	}

	s.sink.Emit("route_generator.generated",
		"scope", string(scope),
		"routes", len(routes),
	)
	return routes
}

// buildVariants proposes stop orderings: the traveler's own order, the full
// reversal, and a middle swap for longer trips. Order here fixes the output
// order of GenerateRoutes.
func buildVariants(stops []route_models.Stop) []routeVariant {
	variants := []routeVariant{{id: "route-base", label: "Classic order", stops: stops}}
	if len(stops) >= 2 {
		variants = append(variants, routeVariant{id: "route-reversed", label: "Reversed order", stops: reversedStops(stops)})
	}
	if len(stops) >= 3 {
		variants = append(variants, routeVariant{id: "route-middle-swap", label: "Middle swap", stops: middleSwappedStops(stops)})
	}
	return variants
}

func reversedStops(stops []route_models.Stop) []route_models.Stop {
	out := make([]route_models.Stop, len(stops))
	for i, st := range stops {
		out[len(stops)-1-i] = st
	}
	return out
}

func middleSwappedStops(stops []route_models.Stop) []route_models.Stop {
	out := append([]route_models.Stop(nil), stops...)
	i := (len(out) - 1) / 2
	out[i], out[i+1] = out[i+1], out[i]
	return out
}

// buildRoute assembles one variant: resolve both anchors, inject correction
// legs where a resolved city differs from the traveler's stop, and lay the
// base legs down with non-decreasing day offsets. failFast applies only to
// the primary variant; alternates keep an unresolvable anchor as a hard
// invalidation so the caller sees why the ordering is unusable.
func (s *RouteGeneratorService) buildRoute(
	intent route_models.RouteIntent,
	scope route_models.TripScope,
	v routeVariant,
	gatewayOrigin string,
	originCorrected bool,
	originOK bool,
	failFast bool,
) (*route_models.StructuralRoute, bool) {
	stops := v.stops
	first := stops[0].City
	last := stops[len(stops)-1].City

	outboundTarget := first
	if intent.OutboundAnchor != nil && intent.OutboundAnchor.ToCity != "" {
		outboundTarget = intent.OutboundAnchor.ToCity
	}
	var invalidations []route_models.HardInvalidation
	arrival, _, arrivalOK := s.anchors.ResolveArrivalCity(outboundTarget, scope)
	if !arrivalOK {
		if failFast {
			return nil, false
		}
		arrival = displayCity(outboundTarget)
		invalidations = append(invalidations, route_models.HardInvalidation{
			Code:   invalidOutboundAnchor,
			Detail: fmt.Sprintf("no eligible airport serves %s for this trip", arrival),
		})
	}

	var legs []route_models.GroundLeg
	if originCorrected {
		legs = append(legs, route_models.GroundLeg{
			FromCity:           displayCity(intent.Origin),
			ToCity:             gatewayOrigin,
			DepartureDayOffset: 0,
			ModeHint:           route_models.ModeHintAirportTransfer,
			Role:               route_models.LegRoleCorrection,
		})
	}
	if normalizeCity(arrival) != normalizeCity(first) {
		legs = append(legs, route_models.GroundLeg{
			FromCity:           arrival,
			ToCity:             displayCity(first),
			DepartureDayOffset: 0,
			ModeHint:           route_models.ModeHintAirportTransfer,
			Role:               route_models.LegRoleCorrection,
		})
	}

	cursor := 0
	for i := 0; i+1 < len(stops); i++ {
		nights := stops[i].Nights
		if nights < 1 {
			nights = 1
		}
		cursor += nights
		legs = append(legs, route_models.GroundLeg{
			FromCity:           displayCity(stops[i].City),
			ToCity:             displayCity(stops[i+1].City),
			DepartureDayOffset: cursor,
			ModeHint:           route_models.ModeHintIntercity,
			Role:               route_models.LegRoleBase,
		})
	}
	lastNights := stops[len(stops)-1].Nights
	if lastNights < 1 {
		lastNights = 1
	}
	finalOffset := cursor + lastNights

	inboundTarget := last
	if intent.InboundAnchor != nil && intent.InboundAnchor.FromCity != "" {
		inboundTarget = intent.InboundAnchor.FromCity
	}
	departure, _, departureOK := s.anchors.ResolveArrivalCity(inboundTarget, scope)
	if !departureOK {
		departure = displayCity(inboundTarget)
		invalidations = append(invalidations, route_models.HardInvalidation{
			Code:   invalidInboundAnchor,
			Detail: fmt.Sprintf("no eligible airport serves %s for the return flight", departure),
		})
	} else if normalizeCity(departure) != normalizeCity(last) {
		legs = append(legs, route_models.GroundLeg{
			FromCity:           displayCity(last),
			ToCity:             departure,
			DepartureDayOffset: finalOffset,
			ModeHint:           route_models.ModeHintAirportTransfer,
			Role:               route_models.LegRoleCorrection,
		})
	}

	outDate := intent.StartDate
	if intent.OutboundAnchor != nil && !intent.OutboundAnchor.Date.IsZero() {
		outDate = intent.OutboundAnchor.Date
	}
	inDate := intent.EndDate
	if intent.InboundAnchor != nil && !intent.InboundAnchor.Date.IsZero() {
		inDate = intent.InboundAnchor.Date
	}

	route := route_models.StructuralRoute{
		ID:             v.id,
		OutboundFlight: route_models.FlightAnchor{FromCity: gatewayOrigin, ToCity: arrival, Date: outDate},
		InboundFlight:  route_models.FlightAnchor{FromCity: departure, ToCity: gatewayOrigin, Date: inDate},
		GroundRoute:    legs,
	}
	route.Summary = v.label + " · " + strings.Join(route.BaseCitySequence(), " → ")

	impact := s.impacts.Compute(intent, route)
	for _, inv := range invalidations {
		impact.AppendHardInvalidation(inv)
	}
	if !originOK {
		impact.AppendHardInvalidation(route_models.HardInvalidation{
			Code:   invalidOriginGateway,
			Detail: fmt.Sprintf("%s has no eligible departure gateway", displayCity(intent.Origin)),
		})
	}
	if !impact.IsEmpty() {
		route.ItineraryImpact = impact
	}
	return &route, true
}

// padWithLabeledVariants tops the result up to the minimum option count by
// cloning the first valid route under emphasis labels. A set with no valid
// route is returned as-is.
func (s *RouteGeneratorService) padWithLabeledVariants(routes []route_models.StructuralRoute) []route_models.StructuralRoute {
	if len(routes) == 0 || len(routes) >= minRouteOptions {
		return routes
	}
	src := -1
	for i := range routes {
		if !routes[i].HasHardInvalidation() {
			src = i
			break
		}
	}
	if src < 0 {
		return routes
	}
	alts := []struct{ id, label string }{
		{"route-alt-timing", "Alternate timings"},
		{"route-flex-transfer", "Flexible transfers"},
	}
	for _, alt := range alts {
		if len(routes) >= minRouteOptions {
			break
		}
		routes = append(routes, cloneRouteAs(routes[src], alt.id, alt.label))
	}
	return routes
}

func cloneRouteAs(src route_models.StructuralRoute, id, label string) route_models.StructuralRoute {
	clone := src
	clone.ID = id
	clone.GroundRoute = append([]route_models.GroundLeg(nil), src.GroundRoute...)
	if src.ItineraryImpact != nil {
		impact := &route_models.ItineraryImpact{
			FlightAnchorReplacements: append([]route_models.FlightAnchorReplacement(nil), src.ItineraryImpact.FlightAnchorReplacements...),
			AddedGroundLegs:          append([]route_models.AddedGroundLeg(nil), src.ItineraryImpact.AddedGroundLegs...),
			HardInvalidations:        append([]route_models.HardInvalidation(nil), src.ItineraryImpact.HardInvalidations...),
		}
		clone.ItineraryImpact = impact
	}
	clone.Summary = label + " · " + strings.Join(clone.BaseCitySequence(), " → ")
	return clone
}
