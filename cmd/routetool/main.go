// routetool runs the structural route generator and ranker offline, without
// the HTTP server or a database. Used for support and debugging.
//
// Usage:
//   routetool generate --trip trip.json
//   routetool rank --trip trip.json --metrics metrics.json --format table
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"voyago/internal/models/route_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

func main() {
	app := &cli.App{
		Name:  "routetool",
		Usage: "Offline structural route generation and ranking",
		Commands: []*cli.Command{
			generateCommand(),
			rankCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type tripSpec struct {
	Origin    string `json:"origin"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Stops     []struct {
		City   string `json:"city"`
		Nights int    `json:"nights"`
	} `json:"stops"`
	OutboundAnchor *anchorSpec `json:"outbound_anchor,omitempty"`
	InboundAnchor  *anchorSpec `json:"inbound_anchor,omitempty"`
}

type anchorSpec struct {
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
	Date     string `json:"date"`
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate structural route candidates for a trip spec",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "trip",
				Aliases:  []string{"t"},
				Usage:    "Path to the trip spec JSON",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		},
		Action: runGenerate,
	}
}

func rankCommand() *cli.Command {
	return &cli.Command{
		Name:  "rank",
		Usage: "Generate and rank route candidates with caller-supplied metrics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "trip",
				Aliases:  []string{"t"},
				Usage:    "Path to the trip spec JSON",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "metrics",
				Aliases: []string{"m"},
				Usage:   "Path to a JSON object mapping route id to metrics",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		},
		Action: runRank,
	}
}

func runGenerate(c *cli.Context) error {
	intent, err := loadIntent(c.String("trip"))
	if err != nil {
		return err
	}

	scopes, generator, _ := buildCore()
	routes := generator.GenerateRoutes(context.Background(), intent)
	if len(routes) == 0 {
		return fmt.Errorf("trip is not routable: no anchor city passed the eligibility check")
	}

	if c.String("format") == "json" {
		return printJSON(map[string]interface{}{
			"scope":  scopes.ClassifyScope(intent),
			"routes": routes,
		})
	}

	fmt.Printf("Scope: %s\n", scopes.ClassifyScope(intent))
	for _, route := range routes {
		printRoute(route)
	}
	return nil
}

func runRank(c *cli.Context) error {
	intent, err := loadIntent(c.String("trip"))
	if err != nil {
		return err
	}

	metricsByRoute := map[string]route_models.RouteMetrics{}
	if path := c.String("metrics"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read metrics file: %w", err)
		}
		if err := json.Unmarshal(raw, &metricsByRoute); err != nil {
			return fmt.Errorf("failed to parse metrics file: %w", err)
		}
	}

	_, generator, ranker := buildCore()
	routes := generator.GenerateRoutes(context.Background(), intent)
	if len(routes) == 0 {
		return fmt.Errorf("trip is not routable: no anchor city passed the eligibility check")
	}

	evaluated := make([]route_models.EvaluatedRoute, 0, len(routes))
	for _, route := range routes {
		evaluated = append(evaluated, route_models.EvaluatedRoute{
			Route:   route,
			Metrics: metricsByRoute[route.ID],
		})
	}

	options := ranker.RankRoutes(context.Background(), evaluated)

	if c.String("format") == "json" {
		return printJSON(options)
	}

	for i, option := range options {
		fmt.Printf("#%d  %s  score=%.3f  confidence=%s\n", i+1, option.Route.ID, option.Score, option.Confidence)
		if len(option.Labels) > 0 {
			fmt.Printf("    labels: %s\n", strings.Join(option.Labels, ", "))
		}
		fmt.Printf("    cities: %s\n", strings.Join(option.Route.BaseCitySequence(), " > "))
		for _, explanation := range option.Explanations {
			fmt.Printf("    - %s\n", explanation)
		}
	}
	return nil
}

func buildCore() (services.TripScopeServiceInterface, services.RouteGeneratorServiceInterface, services.RouteRankerServiceInterface) {
	sink := services.NopTraceSink{}
	scopes := services.NewTripScopeService(sink)
	anchors := services.NewFlightAnchorService(sink)
	impacts := services.NewItineraryImpactService(sink)
	generator := services.NewRouteGeneratorService(scopes, anchors, impacts, sink)
	ranker := services.NewRouteRankerService(sink)
	return scopes, generator, ranker
}

func loadIntent(path string) (route_models.RouteIntent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return route_models.RouteIntent{}, fmt.Errorf("failed to read trip spec: %w", err)
	}

	var spec tripSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return route_models.RouteIntent{}, fmt.Errorf("failed to parse trip spec: %w", err)
	}

	startDate, err := utils.ParseTripDate(spec.StartDate)
	if err != nil {
		return route_models.RouteIntent{}, fmt.Errorf("invalid start_date: %w", err)
	}
	endDate, err := utils.ParseTripDate(spec.EndDate)
	if err != nil {
		return route_models.RouteIntent{}, fmt.Errorf("invalid end_date: %w", err)
	}

	intent := route_models.RouteIntent{
		Origin:    spec.Origin,
		StartDate: startDate,
		EndDate:   endDate,
	}
	for _, stop := range spec.Stops {
		intent.Stops = append(intent.Stops, route_models.Stop{City: stop.City, Nights: stop.Nights})
	}

	if intent.OutboundAnchor, err = parseAnchor(spec.OutboundAnchor); err != nil {
		return route_models.RouteIntent{}, fmt.Errorf("invalid outbound_anchor: %w", err)
	}
	if intent.InboundAnchor, err = parseAnchor(spec.InboundAnchor); err != nil {
		return route_models.RouteIntent{}, fmt.Errorf("invalid inbound_anchor: %w", err)
	}
	return intent, nil
}

func parseAnchor(spec *anchorSpec) (*route_models.FlightAnchor, error) {
	if spec == nil {
		return nil, nil
	}

	anchor := &route_models.FlightAnchor{FromCity: spec.FromCity, ToCity: spec.ToCity}
	if spec.Date != "" {
		date, err := utils.ParseTripDate(spec.Date)
		if err != nil {
			return nil, err
		}
		anchor.Date = date
	}
	return anchor, nil
}

func printRoute(route route_models.StructuralRoute) {
	fmt.Printf("\n%s  %s\n", route.ID, route.Summary)
	fmt.Printf("  outbound: %s > %s\n", route.OutboundFlight.FromCity, route.OutboundFlight.ToCity)
	for _, leg := range route.GroundRoute {
		fmt.Printf("  day %2d  %-10s %s > %s (%s)\n",
			leg.DepartureDayOffset, leg.Role, leg.FromCity, leg.ToCity, leg.ModeHint)
	}
	fmt.Printf("  inbound:  %s > %s\n", route.InboundFlight.FromCity, route.InboundFlight.ToCity)

	if route.ItineraryImpact != nil {
		for _, r := range route.ItineraryImpact.FlightAnchorReplacements {
			fmt.Printf("  note: flights go through %s instead of %s\n", r.ReplacedWith, r.OriginalCity)
		}
		for _, inv := range route.ItineraryImpact.HardInvalidations {
			fmt.Printf("  invalid: %s (%s)\n", inv.Code, inv.Detail)
		}
	}
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
