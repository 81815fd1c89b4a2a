package route_models

import "fmt"

// Replacement causes recorded by the impact tracker. The origin-side anchor
// endpoints change through origin normalization; the destination-side
// endpoints change through gateway eligibility correction.
const (
	CauseIneligibleFlightAnchor       = "ineligible-flight-anchor"
	CauseSecondaryOriginNormalization = "secondary-origin-normalization"
)

// Anchor endpoint slots, in the fixed order the tracker inspects them.
const (
	AnchorSlotOutboundFrom = "outbound-from"
	AnchorSlotOutboundTo   = "outbound-to"
	AnchorSlotInboundFrom  = "inbound-from"
	AnchorSlotInboundTo    = "inbound-to"
)

// FlightAnchorReplacement records one anchor endpoint that differs from the
// traveler's original, uncorrected intent.
type FlightAnchorReplacement struct {
	Slot         string `json:"slot"`
	OriginalCity string `json:"original_city"`
	ReplacedWith string `json:"replaced_with"`
	Cause        string `json:"cause"`
}

func (r FlightAnchorReplacement) contentKey() string {
	return fmt.Sprintf("%s|%s|%s|%s", r.Slot, r.OriginalCity, r.ReplacedWith, r.Cause)
}

// AddedGroundLeg records a leg present in the final route with no
// counterpart in the legs implied by the original stop order.
type AddedGroundLeg struct {
	FromCity string  `json:"from_city"`
	ToCity   string  `json:"to_city"`
	Role     LegRole `json:"role"`
}

func (a AddedGroundLeg) contentKey() string {
	return fmt.Sprintf("%s|%s|%s", a.FromCity, a.ToCity, a.Role)
}

// HardInvalidation marks a route variant whose anchor correction failed.
// The route is still returned so the caller sees why it is unusable.
type HardInvalidation struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func (h HardInvalidation) contentKey() string {
	return fmt.Sprintf("%s|%s", h.Code, h.Detail)
}

// ItineraryImpact is the append-only, observational record of everything
// that separates a final route from the traveler's original intent. Entries
// are deduplicated by content key, never by reference identity.
type ItineraryImpact struct {
	FlightAnchorReplacements []FlightAnchorReplacement `json:"flight_anchor_replacements"`
	AddedGroundLegs          []AddedGroundLeg          `json:"added_ground_legs"`
	HardInvalidations        []HardInvalidation        `json:"hard_invalidations"`
}

// AppendReplacement adds a replacement unless an identical entry exists.
func (imp *ItineraryImpact) AppendReplacement(r FlightAnchorReplacement) {
	for _, existing := range imp.FlightAnchorReplacements {
		if existing.contentKey() == r.contentKey() {
			return
		}
	}
	imp.FlightAnchorReplacements = append(imp.FlightAnchorReplacements, r)
}

// AppendAddedLeg adds an added-leg record unless an identical entry exists.
func (imp *ItineraryImpact) AppendAddedLeg(a AddedGroundLeg) {
	for _, existing := range imp.AddedGroundLegs {
		if existing.contentKey() == a.contentKey() {
			return
		}
	}
	imp.AddedGroundLegs = append(imp.AddedGroundLegs, a)
}

// AppendHardInvalidation adds an invalidation unless an identical entry exists.
func (imp *ItineraryImpact) AppendHardInvalidation(h HardInvalidation) {
	for _, existing := range imp.HardInvalidations {
		if existing.contentKey() == h.contentKey() {
			return
		}
	}
	imp.HardInvalidations = append(imp.HardInvalidations, h)
}

// IsEmpty reports whether the impact records no difference at all.
func (imp ItineraryImpact) IsEmpty() bool {
	return len(imp.FlightAnchorReplacements) == 0 &&
		len(imp.AddedGroundLegs) == 0 &&
		len(imp.HardInvalidations) == 0
}
