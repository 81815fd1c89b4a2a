package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"voyago/internal/models/route_models"
)

type RouteDiffServiceInterface interface {
	DiffAgainstBooking(ctx context.Context, booked route_models.StructuralRoute, candidate *route_models.StructuralRoute) []route_models.ImpactCard
}

type RouteDiffService struct {
	sink TraceSink
}

func NewRouteDiffService(sink TraceSink) RouteDiffServiceInterface {
	return &RouteDiffService{sink: sink}
}

// cityStay is one city's window within a route, in day offsets from the
// route's own outbound date. departure is -1 when the route never shows the
// city being left.
type cityStay struct {
	arrival   int
	departure int
}

// DiffAgainstBooking compares a candidate route against the route the
// traveler's bookings assume and reports the differences as impact cards,
// one per category, ordered by severity. Identical routes produce no cards.
func (s *RouteDiffService) DiffAgainstBooking(ctx context.Context, booked route_models.StructuralRoute, candidate *route_models.StructuralRoute) []route_models.ImpactCard {
	if candidate == nil || !candidate.OutboundFlight.IsComplete() || !candidate.InboundFlight.IsComplete() || candidate.HasHardInvalidation() {
		return []route_models.ImpactCard{{
			Type:     route_models.CardIncompatibleBooking,
			Severity: route_models.SeverityBlocking,
			Summary:  "The proposed route cannot support the existing bookings.",
		}}
	}

	var cards []route_models.ImpactCard
	if c := s.structureCard(booked, *candidate); c != nil {
		cards = append(cards, *c)
	}
	if c := s.datePresenceCard(booked, *candidate); c != nil {
		cards = append(cards, *c)
	}
	if c := s.timeStressCard(booked, *candidate); c != nil {
		cards = append(cards, *c)
	}

	sort.SliceStable(cards, func(a, b int) bool {
		return cards[a].Severity > cards[b].Severity
	})
	s.sink.Emit("route_diff.compared",
		"booked_id", booked.ID,
		"candidate_id", candidate.ID,
		"cards", len(cards),
	)
	return cards
}

// stayPlan extracts each base city's arrival and departure offsets. For a
// city visited twice, the first arrival and first departure win; split
// stays are surfaced by the structure card instead.
func stayPlan(r route_models.StructuralRoute) ([]string, map[string]cityStay) {
	seq := r.BaseCitySequence()
	stays := make(map[string]cityStay, len(seq))
	if len(seq) == 0 {
		return seq, stays
	}
	stays[normalizeCity(seq[0])] = cityStay{arrival: 0, departure: -1}
	for _, leg := range r.GroundRoute {
		if leg.Role != route_models.LegRoleBase {
			continue
		}
		from, to := normalizeCity(leg.FromCity), normalizeCity(leg.ToCity)
		st := stays[from]
		if st.departure < 0 {
			st.departure = leg.DepartureDayOffset
			stays[from] = st
		}
		if _, ok := stays[to]; !ok {
			stays[to] = cityStay{arrival: leg.DepartureDayOffset, departure: -1}
		}
	}
	lastCity := normalizeCity(seq[len(seq)-1])
	if st, ok := stays[lastCity]; ok && st.departure < 0 {
		for _, leg := range r.GroundRoute {
			if leg.Role == route_models.LegRoleCorrection && normalizeCity(leg.FromCity) == lastCity && leg.DepartureDayOffset > 0 {
				st.departure = leg.DepartureDayOffset
				stays[lastCity] = st
				break
			}
		}
	}
	return seq, stays
}

func (s *RouteDiffService) structureCard(booked, candidate route_models.StructuralRoute) *route_models.ImpactCard {
	oldSeq := booked.BaseCitySequence()
	newSeq := candidate.BaseCitySequence()
	if sameSequence(oldSeq, newSeq) {
		return nil
	}

	var affected []string
	seen := make(map[string]bool)
	for i := 0; i < len(oldSeq) || i < len(newSeq); i++ {
		if i < len(oldSeq) && i < len(newSeq) && normalizeCity(oldSeq[i]) == normalizeCity(newSeq[i]) {
			continue
		}
		if i < len(oldSeq) && !seen[normalizeCity(oldSeq[i])] {
			seen[normalizeCity(oldSeq[i])] = true
			affected = append(affected, displayCity(oldSeq[i]))
		}
		if i < len(newSeq) && !seen[normalizeCity(newSeq[i])] {
			seen[normalizeCity(newSeq[i])] = true
			affected = append(affected, displayCity(newSeq[i]))
		}
	}

	severity := route_models.SeverityMedium
	summary := fmt.Sprintf("The city order changes (%s).", previewList(affected))
	if repeated := nonAdjacentRepeats(newSeq); len(repeated) > 0 {
		severity = route_models.SeverityHigh
		summary = fmt.Sprintf("The new order splits a stay into separate visits (%s).", previewList(repeated))
	}
	return &route_models.ImpactCard{
		Type:           route_models.CardRouteStructureChange,
		Severity:       severity,
		Summary:        summary,
		AffectedCities: affected,
	}
}

func (s *RouteDiffService) datePresenceCard(booked, candidate route_models.StructuralRoute) *route_models.ImpactCard {
	_, oldStays := stayPlan(booked)
	newSeq, newStays := stayPlan(candidate)

	var cities, dates []string
	addDate := func(d time.Time) {
		if !d.IsZero() {
			dates = append(dates, d.Format("2006-01-02"))
		}
	}

	for _, city := range newSeq {
		key := normalizeCity(city)
		newStay := newStays[key]
		oldStay, existed := oldStays[key]
		if !existed || arrivalDelta(booked.OutboundFlight.Date, candidate.OutboundFlight.Date, oldStay.arrival, newStay.arrival) != 0 {
			cities = append(cities, displayCity(city))
			addDate(offsetDate(candidate.OutboundFlight.Date, newStay.arrival))
		}
	}
	for key := range oldStays {
		if _, ok := newStays[key]; !ok {
			cities = append(cities, displayCity(key))
		}
	}
	sort.Strings(cities)
	cities = dedupeStrings(cities)

	items := append([]string(nil), cities...)
	if shifted(booked.OutboundFlight.Date, candidate.OutboundFlight.Date) {
		items = append([]string{"outbound flight"}, items...)
		addDate(candidate.OutboundFlight.Date)
	}
	if shifted(booked.InboundFlight.Date, candidate.InboundFlight.Date) {
		items = append(items, "return flight")
		addDate(candidate.InboundFlight.Date)
	}

	if len(items) == 0 {
		return nil
	}
	return &route_models.ImpactCard{
		Type:           route_models.CardDatePresenceShift,
		Severity:       route_models.SeverityMedium,
		Summary:        fmt.Sprintf("You would be in a different place on some dates (%s).", previewList(items)),
		AffectedCities: cities,
		AffectedDates:  dedupeStrings(dates),
	}
}

func (s *RouteDiffService) timeStressCard(booked, candidate route_models.StructuralRoute) *route_models.ImpactCard {
	_, oldStays := stayPlan(booked)
	_, newStays := stayPlan(candidate)

	var cities, dates []string
	for key, newStay := range newStays {
		oldStay, ok := oldStays[key]
		if !ok {
			continue
		}
		early := arrivalDelta(booked.OutboundFlight.Date, candidate.OutboundFlight.Date, oldStay.arrival, newStay.arrival) <= -1
		compressed := oldStay.departure >= 0 && newStay.departure >= 0 &&
			oldStay.departure-oldStay.arrival >= 2 && newStay.departure-newStay.arrival <= 1
		if early || compressed {
			cities = append(cities, displayCity(key))
			if d := offsetDate(candidate.OutboundFlight.Date, newStay.arrival); !d.IsZero() {
				dates = append(dates, d.Format("2006-01-02"))
			}
		}
	}
	sort.Strings(cities)
	sort.Strings(dates)

	if !booked.InboundFlight.Date.IsZero() && !candidate.InboundFlight.Date.IsZero() {
		if daysBetween(booked.InboundFlight.Date, candidate.InboundFlight.Date) >= 1 {
			cities = append(cities, displayCity(candidate.InboundFlight.FromCity))
			dates = append(dates, candidate.InboundFlight.Date.Format("2006-01-02"))
		}
	}

	if len(cities) == 0 {
		return nil
	}
	return &route_models.ImpactCard{
		Type:           route_models.CardTimeStress,
		Severity:       route_models.SeverityLow,
		Summary:        fmt.Sprintf("Timing gets tighter in %s.", previewList(cities)),
		AffectedCities: dedupeStrings(cities),
		AffectedDates:  dedupeStrings(dates),
	}
}

func sameSequence(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if normalizeCity(a[i]) != normalizeCity(b[i]) {
			return false
		}
	}
	return true
}

// nonAdjacentRepeats finds cities that appear again later with a different
// city in between, the signature of a split stay or a backtrack.
func nonAdjacentRepeats(seq []string) []string {
	lastIndex := make(map[string]int)
	var out []string
	for i, city := range seq {
		key := normalizeCity(city)
		if prev, ok := lastIndex[key]; ok && i-prev > 1 {
			out = append(out, displayCity(city))
		}
		lastIndex[key] = i
	}
	return dedupeStrings(out)
}

// previewList renders at most two items, with a count for the rest.
func previewList(items []string) string {
	if len(items) <= 2 {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:2], ", "), len(items)-2)
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func shifted(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return daysBetween(a, b) != 0
}

func offsetDate(start time.Time, offset int) time.Time {
	if start.IsZero() {
		return time.Time{}
	}
	return start.AddDate(0, 0, offset)
}

// arrivalDelta compares the same city's arrival between two routes, in days,
// positive when the candidate arrives later. Offsets are compared directly
// when either route lacks an outbound date.
func arrivalDelta(bookedStart, candStart time.Time, bookedOff, candOff int) int {
	if !bookedStart.IsZero() && !candStart.IsZero() {
		return daysBetween(bookedStart.AddDate(0, 0, bookedOff), candStart.AddDate(0, 0, candOff))
	}
	return candOff - bookedOff
}

func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
