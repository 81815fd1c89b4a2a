package route_models

// DecisionDomain identifies which engine produced a result.
type DecisionDomain string

const (
	DomainActivity DecisionDomain = "activity"
	DomainHotel    DecisionDomain = "hotel"
)

// DecisionStatus is the engine's verdict. There is no error status:
// BLOCKED is the terminal state for decisions that cannot proceed.
type DecisionStatus string

const (
	DecisionOK      DecisionStatus = "OK"
	DecisionWarning DecisionStatus = "WARNING"
	DecisionMove    DecisionStatus = "MOVE"
	DecisionSwap    DecisionStatus = "SWAP"
	DecisionBlocked DecisionStatus = "BLOCKED"
)

// DecisionOption is one concrete resolution the caller may pick. The action
// payload is the only place a mutation is described; the engines themselves
// never mutate anything.
type DecisionOption struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Tradeoffs   []string       `json:"tradeoffs,omitempty"`
	Action      DecisionAction `json:"-"`
}

// DecisionResult is the uniform output of both decision engines: status,
// supporting facts, named risks, and selectable options. The caller always
// makes the final choice.
type DecisionResult struct {
	Domain         DecisionDomain   `json:"domain"`
	Status         DecisionStatus   `json:"status"`
	Facts          []string         `json:"facts"`
	Risks          []string         `json:"risks,omitempty"`
	Recommendation string           `json:"recommendation,omitempty"`
	Options        []DecisionOption `json:"options"`
}
