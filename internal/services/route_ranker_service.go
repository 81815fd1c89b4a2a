package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"voyago/internal/models/route_models"
)

// Fixed ranking weights. The weighting is deliberate product policy, not a
// tunable: price dominates, then duration, then transfer count.
const (
	weightPrice     = 0.5
	weightDuration  = 0.3
	weightTransfers = 0.2

	replacementPenalty = 0.15
	addedLegPenalty    = 0.10

	// Two prices within this fraction of the lower one are considered
	// too close to rank on price alone.
	priceSensitivityBand = 0.05
)

type RouteRankerServiceInterface interface {
	RankRoutes(ctx context.Context, evaluated []route_models.EvaluatedRoute) []route_models.OptimizedRouteOption
}

type RouteRankerService struct {
	sink TraceSink
}

func NewRouteRankerService(sink TraceSink) RouteRankerServiceInterface {
	return &RouteRankerService{sink: sink}
}

type metricRange struct {
	min, max float64
	seen     bool
}

func (r *metricRange) observe(v float64) {
	if !r.seen {
		r.min, r.max, r.seen = v, v, true
		return
	}
	if v < r.min {
		r.min = v
	}
	if v > r.max {
		r.max = v
	}
}

// normalizedCost maps a metric into [0,1] across the candidate set. A
// missing value is the worst possible cost, so incomplete routes sink
// instead of accidentally winning.
func (r metricRange) normalizedCost(v *float64) float64 {
	if v == nil || !r.seen {
		return 1
	}
	if r.max == r.min {
		return 0
	}
	return (*v - r.min) / (r.max - r.min)
}

// RankRoutes scores, labels and orders evaluated routes, descending by
// score, capped at five options. Routes carrying a hard invalidation are
// excluded up front: they must never be offered as bookable options.
func (s *RouteRankerService) RankRoutes(ctx context.Context, evaluated []route_models.EvaluatedRoute) []route_models.OptimizedRouteOption {
	candidates := make([]route_models.EvaluatedRoute, 0, len(evaluated))
	for _, er := range evaluated {
		if er.Route.HasHardInvalidation() {
			s.sink.Emit("route_ranker.excluded", "route_id", er.Route.ID)
			continue
		}
		candidates = append(candidates, er)
	}
	if len(candidates) == 0 {
		return nil
	}

	var prices, minutes, transfers metricRange
	for _, er := range candidates {
		if v := er.Metrics.TotalPrice; v != nil {
			prices.observe(*v)
		}
		if v := er.Metrics.TotalTravelMinutes; v != nil {
			minutes.observe(float64(*v))
		}
		if v := er.Metrics.TotalTransfers; v != nil {
			transfers.observe(float64(*v))
		}
	}

	costs := make([]float64, len(candidates))
	for i, er := range candidates {
		costs[i] = weightPrice*prices.normalizedCost(er.Metrics.TotalPrice) +
			weightDuration*minutes.normalizedCost(intAsFloat(er.Metrics.TotalTravelMinutes)) +
			weightTransfers*transfers.normalizedCost(intAsFloat(er.Metrics.TotalTransfers))
	}

	labels := s.assignLabels(candidates, costs)

	options := make([]route_models.OptimizedRouteOption, len(candidates))
	for i, er := range candidates {
		score := 1 - costs[i]
		if imp := er.Route.ItineraryImpact; imp != nil {
			score -= replacementPenalty * float64(len(imp.FlightAnchorReplacements))
			score -= addedLegPenalty * float64(len(imp.AddedGroundLegs))
		}
		if score < 0 {
			score = 0
		}
		opt := route_models.OptimizedRouteOption{
			EvaluatedRoute: er,
			Labels:         labels[i],
			Confidence:     s.confidenceFor(i, candidates),
			Score:          math.Round(score*1000) / 1000,
		}
		opt.Explanations = buildExplanations(opt)
		options[i] = opt
	}

	sort.SliceStable(options, func(a, b int) bool {
		return options[a].Score > options[b].Score
	})
	if len(options) > maxRouteOptions {
		options = options[:maxRouteOptions]
	}

	s.sink.Emit("route_ranker.ranked",
		"candidates", len(candidates),
		"options", len(options),
	)
	return options
}

func intAsFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// assignLabels picks at most one holder per label. Cheapest and Fastest are
// only ever claimed by routes with complete metrics; Fewest Transfers only
// needs the transfer count; Best Balance prefers complete routes when any
// exist. Ties keep the earliest candidate.
func (s *RouteRankerService) assignLabels(candidates []route_models.EvaluatedRoute, costs []float64) [][]string {
	labels := make([][]string, len(candidates))

	cheapest, fastest, fewest, balanced := -1, -1, -1, -1
	anyComplete := false
	for i, er := range candidates {
		m := er.Metrics
		if m.IsComplete() {
			anyComplete = true
			if cheapest < 0 || *m.TotalPrice < *candidates[cheapest].Metrics.TotalPrice {
				cheapest = i
			}
			if fastest < 0 || *m.TotalTravelMinutes < *candidates[fastest].Metrics.TotalTravelMinutes {
				fastest = i
			}
		}
		if m.TotalTransfers != nil {
			if fewest < 0 || *m.TotalTransfers < *candidates[fewest].Metrics.TotalTransfers {
				fewest = i
			}
		}
	}
	for i := range candidates {
		if anyComplete && !candidates[i].Metrics.IsComplete() {
			continue
		}
		if balanced < 0 || costs[i] < costs[balanced] {
			balanced = i
		}
	}

	add := func(idx int, label string) {
		if idx >= 0 {
			labels[idx] = append(labels[idx], label)
		}
	}
	add(cheapest, route_models.LabelCheapest)
	add(fastest, route_models.LabelFastest)
	add(fewest, route_models.LabelFewestTransfers)
	add(balanced, route_models.LabelBestBalance)
	return labels
}

func (s *RouteRankerService) confidenceFor(i int, candidates []route_models.EvaluatedRoute) route_models.ConfidenceLevel {
	m := candidates[i].Metrics
	if m.TotalPrice != nil {
		for j := range candidates {
			if j == i || candidates[j].Metrics.TotalPrice == nil {
				continue
			}
			a, b := *m.TotalPrice, *candidates[j].Metrics.TotalPrice
			lo := math.Min(a, b)
			if math.Abs(a-b) <= priceSensitivityBand*lo {
				return route_models.ConfidencePriceSensitive
			}
		}
	}
	if m.IsComplete() {
		return route_models.ConfidenceHigh
	}
	return route_models.ConfidenceMedium
}

// buildExplanations produces two to four plain-language bullets per option.
func buildExplanations(opt route_models.OptimizedRouteOption) []string {
	var out []string
	if seq := opt.Route.BaseCitySequence(); len(seq) > 0 {
		out = append(out, fmt.Sprintf("Covers %s.", strings.Join(seq, " → ")))
	}
	for _, label := range opt.Labels {
		switch label {
		case route_models.LabelCheapest:
			out = append(out, "Lowest estimated price of the set.")
		case route_models.LabelFastest:
			out = append(out, "Shortest total travel time.")
		case route_models.LabelFewestTransfers:
			out = append(out, "Fewest transfers of the set.")
		case route_models.LabelBestBalance:
			out = append(out, "Best balance of price, time and transfers.")
		}
	}
	if v := opt.Metrics.TotalPrice; v != nil {
		out = append(out, fmt.Sprintf("Estimated total around %.0f.", *v))
	}
	if v := opt.Metrics.TotalTravelMinutes; v != nil {
		out = append(out, fmt.Sprintf("About %dh %02dm in transit.", *v/60, *v%60))
	}
	if imp := opt.Route.ItineraryImpact; imp != nil && len(imp.FlightAnchorReplacements) > 0 {
		out = append(out, fmt.Sprintf("%d flight endpoint(s) adjusted for airport eligibility.", len(imp.FlightAnchorReplacements)))
	}
	if len(out) > 4 {
		out = out[:4]
	}
	if len(out) < 2 {
		out = append(out, "Price and timing estimates pending.")
	}
	if len(out) < 2 {
		out = append(out, "Details firm up once fares are checked.")
	}
	return out
}
