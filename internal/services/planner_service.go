package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/models/route_models"
	"voyago/internal/repositories"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const metricsTTL = 30 * time.Minute

type PlannerServiceInterface interface {
	GenerateForTrip(ctx context.Context, accountID, tripID string, request request_models.GenerateRoutesRequest) (response_models.GenerateRoutesResponse, error)
	RankForTrip(ctx context.Context, accountID, tripID string, request request_models.RankRoutesRequest) ([]response_models.RouteOptionResponse, error)
	AcceptRoute(ctx context.Context, accountID, tripID string, request request_models.AcceptRouteRequest) (response_models.TripResponse, error)
	DiffRoutes(ctx context.Context, request request_models.DiffRoutesRequest) (response_models.DiffRoutesResponse, error)
}

// PlannerService drives one planning session: generate structural options,
// rank them once metrics arrive, and materialize the accepted one. Route
// generation is deterministic, so concurrent identical calls are collapsed
// with singleflight and nothing is persisted before accept.
type PlannerService struct {
	trips     TripServiceInterface
	tripRepo  repositories.TripRepository
	scopes    TripScopeServiceInterface
	generator RouteGeneratorServiceInterface
	ranker    RouteRankerServiceInterface
	differ    RouteDiffServiceInterface
	metrics   mem.RouteMetricsStore
	logger    *zap.Logger

	inflight singleflight.Group
}

func NewPlannerService(
	trips TripServiceInterface,
	tripRepo repositories.TripRepository,
	scopes TripScopeServiceInterface,
	generator RouteGeneratorServiceInterface,
	ranker RouteRankerServiceInterface,
	differ RouteDiffServiceInterface,
	metrics mem.RouteMetricsStore,
	logger *zap.Logger,
) PlannerServiceInterface {
	return &PlannerService{
		trips:     trips,
		tripRepo:  tripRepo,
		scopes:    scopes,
		generator: generator,
		ranker:    ranker,
		differ:    differ,
		metrics:   metrics,
		logger:    logger,
	}
}

func (p *PlannerService) GenerateForTrip(ctx context.Context, accountID, tripID string, request request_models.GenerateRoutesRequest) (response_models.GenerateRoutesResponse, error) {
	trip, err := p.trips.GetOwnedTrip(ctx, accountID, tripID)
	if err != nil {
		return response_models.GenerateRoutesResponse{}, err
	}

	intent, err := buildRouteIntent(trip, request)
	if err != nil {
		return response_models.GenerateRoutesResponse{}, err
	}

	routes, err := p.generateShared(ctx, tripID, intent)
	if err != nil {
		return response_models.GenerateRoutesResponse{}, err
	}
	if len(routes) == 0 {
		return response_models.GenerateRoutesResponse{}, utils.ErrUnroutableTrip
	}

	scope := p.scopes.ClassifyScope(intent)
	p.logger.Info("routes generated",
		zap.String("trip_id", tripID),
		zap.String("scope", string(scope)),
		zap.Int("options", len(routes)))

	return response_models.GenerateRoutesResponse{
		TripID: tripID,
		Scope:  string(scope),
		Routes: routes,
	}, nil
}

func (p *PlannerService) RankForTrip(ctx context.Context, accountID, tripID string, request request_models.RankRoutesRequest) ([]response_models.RouteOptionResponse, error) {
	trip, err := p.trips.GetOwnedTrip(ctx, accountID, tripID)
	if err != nil {
		return nil, err
	}

	intent, err := buildRouteIntent(trip, request.GenerateRoutesRequest)
	if err != nil {
		return nil, err
	}

	routes, err := p.generateShared(ctx, tripID, intent)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, utils.ErrUnroutableTrip
	}

	for _, m := range request.Metrics {
		p.metrics.Put(tripID, m.RouteID, metricsFromRequest(m), metricsTTL)
	}

	evaluated := make([]route_models.EvaluatedRoute, 0, len(routes))
	for _, route := range routes {
		er := route_models.EvaluatedRoute{Route: route}
		if metrics, ok := p.metrics.Get(tripID, route.ID); ok {
			er.Metrics = metrics
		}
		evaluated = append(evaluated, er)
	}

	options := p.ranker.RankRoutes(ctx, evaluated)
	p.logger.Info("routes ranked",
		zap.String("trip_id", tripID),
		zap.Int("ranked", len(options)))

	responses := make([]response_models.RouteOptionResponse, 0, len(options))
	for _, option := range options {
		responses = append(responses, response_models.NewRouteOptionResponse(option))
	}
	return responses, nil
}

func (p *PlannerService) AcceptRoute(ctx context.Context, accountID, tripID string, request request_models.AcceptRouteRequest) (response_models.TripResponse, error) {
	trip, err := p.trips.GetOwnedTrip(ctx, accountID, tripID)
	if err != nil {
		return response_models.TripResponse{}, err
	}

	intent, err := buildRouteIntent(trip, request.GenerateRoutesRequest)
	if err != nil {
		return response_models.TripResponse{}, err
	}

	routes, err := p.generateShared(ctx, tripID, intent)
	if err != nil {
		return response_models.TripResponse{}, err
	}

	var accepted *route_models.StructuralRoute
	for i := range routes {
		if routes[i].ID == request.RouteID {
			accepted = &routes[i]
			break
		}
	}
	if accepted == nil {
		return response_models.TripResponse{}, utils.ErrRouteNotFound
	}
	if accepted.HasHardInvalidation() {
		return response_models.TripResponse{}, utils.ErrUnroutableTrip
	}

	snapshot, err := json.Marshal(accepted)
	if err != nil {
		return response_models.TripResponse{}, utils.ErrDatabaseError
	}

	if err := p.tripRepo.SaveAcceptedRoute(ctx, tripID, accepted.ID, datatypes.JSON(snapshot)); err != nil {
		return response_models.TripResponse{}, utils.ErrDatabaseError
	}
	p.metrics.Drop(tripID)

	p.logger.Info("route accepted",
		zap.String("trip_id", tripID),
		zap.String("route_id", accepted.ID))

	updated, err := p.trips.GetOwnedTrip(ctx, accountID, tripID)
	if err != nil {
		return response_models.TripResponse{}, err
	}
	return response_models.NewTripResponse(updated), nil
}

func (p *PlannerService) DiffRoutes(ctx context.Context, request request_models.DiffRoutesRequest) (response_models.DiffRoutesResponse, error) {
	if request.Booked.ID == "" || len(request.Booked.GroundRoute) == 0 {
		return response_models.DiffRoutesResponse{}, utils.ErrInvalidInput
	}

	cards := p.differ.DiffAgainstBooking(ctx, request.Booked, request.Candidate)
	return response_models.NewDiffRoutesResponse(cards), nil
}

// generateShared collapses concurrent generation for the same trip and
// anchor set into a single run.
func (p *PlannerService) generateShared(ctx context.Context, tripID string, intent route_models.RouteIntent) ([]route_models.StructuralRoute, error) {
	key := generateKey(tripID, intent)
	result, err, _ := p.inflight.Do(key, func() (interface{}, error) {
		return p.generator.GenerateRoutes(ctx, intent), nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]route_models.StructuralRoute), nil
}

func generateKey(tripID string, intent route_models.RouteIntent) string {
	var b strings.Builder
	b.WriteString(tripID)
	if intent.OutboundAnchor != nil {
		fmt.Fprintf(&b, "|out:%s>%s@%s", intent.OutboundAnchor.FromCity, intent.OutboundAnchor.ToCity, intent.OutboundAnchor.Date.Format("2006-01-02"))
	}
	if intent.InboundAnchor != nil {
		fmt.Fprintf(&b, "|in:%s>%s@%s", intent.InboundAnchor.FromCity, intent.InboundAnchor.ToCity, intent.InboundAnchor.Date.Format("2006-01-02"))
	}
	return b.String()
}

func buildRouteIntent(trip *db_models.Trip, request request_models.GenerateRoutesRequest) (route_models.RouteIntent, error) {
	intent := route_models.RouteIntent{
		Origin:    trip.OriginCity,
		StartDate: trip.StartDate,
		EndDate:   trip.EndDate,
	}
	for _, stop := range trip.Stops {
		intent.Stops = append(intent.Stops, route_models.Stop{
			City:   stop.City,
			Nights: stop.Nights,
		})
	}

	outbound, err := anchorFromRequest(request.OutboundAnchor)
	if err != nil {
		return route_models.RouteIntent{}, err
	}
	inbound, err := anchorFromRequest(request.InboundAnchor)
	if err != nil {
		return route_models.RouteIntent{}, err
	}
	intent.OutboundAnchor = outbound
	intent.InboundAnchor = inbound

	return intent, nil
}

func anchorFromRequest(request *request_models.FlightAnchorRequest) (*route_models.FlightAnchor, error) {
	if request == nil {
		return nil, nil
	}

	anchor := &route_models.FlightAnchor{
		FromCity: strings.TrimSpace(request.FromCity),
		ToCity:   strings.TrimSpace(request.ToCity),
	}
	if request.Date != "" {
		date, err := utils.ParseTripDate(request.Date)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		anchor.Date = date
	}
	return anchor, nil
}

func metricsFromRequest(request request_models.RouteMetricsRequest) route_models.RouteMetrics {
	return route_models.RouteMetrics{
		TotalPrice:         request.TotalPrice,
		TotalTravelMinutes: request.TotalTravelMinutes,
		TotalTransfers:     request.TotalTransfers,
	}
}
