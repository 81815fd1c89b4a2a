package route_models

// RouteMetrics carries externally acquired per-route figures. Absence of a
// field is first-class information, never zero: the ranker penalizes missing
// values structurally instead of defaulting them.
type RouteMetrics struct {
	TotalPrice         *float64 `json:"total_price,omitempty"`
	TotalTravelMinutes *int     `json:"total_travel_minutes,omitempty"`
	TotalTransfers     *int     `json:"total_transfers,omitempty"`
}

// IsComplete reports whether both price and duration are present. Labels
// such as Cheapest and Fastest are only ever assigned to complete routes.
func (m RouteMetrics) IsComplete() bool {
	return m.TotalPrice != nil && m.TotalTravelMinutes != nil
}

// EvaluatedRoute pairs a structural route with whatever metrics the caller
// has acquired for it.
type EvaluatedRoute struct {
	Route        StructuralRoute `json:"route"`
	Metrics      RouteMetrics    `json:"metrics"`
	Explanations []string        `json:"explanations,omitempty"`
}

// ConfidenceLevel qualifies how much the ranking of an option should be
// trusted. It is derived from the metric situation, never asserted.
type ConfidenceLevel string

const (
	ConfidenceHigh           ConfidenceLevel = "high"
	ConfidenceMedium         ConfidenceLevel = "medium"
	ConfidencePriceSensitive ConfidenceLevel = "price-sensitive"
)

// Ranker labels.
const (
	LabelCheapest        = "Cheapest"
	LabelFastest         = "Fastest"
	LabelFewestTransfers = "Fewest Transfers"
	LabelBestBalance     = "Best Balance"
)

// OptimizedRouteOption is one ranked, labeled, explained route returned to
// the caller. Options are ordered descending by score and capped at five.
type OptimizedRouteOption struct {
	EvaluatedRoute
	Labels     []string        `json:"labels"`
	Confidence ConfidenceLevel `json:"confidence"`
	Score      float64         `json:"score"`
}
