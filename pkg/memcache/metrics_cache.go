package mem

import (
	"strings"
	"sync"
	"time"

	"voyago/internal/models/route_models"
)

// RouteMetricsStore holds caller-supplied route metrics between the generate
// and rank calls of one planning session. Entries are keyed per trip and
// route id and expire on their own; Drop clears a whole trip after accept.
type RouteMetricsStore interface {
	Put(tripID, routeID string, metrics route_models.RouteMetrics, ttl time.Duration)
	Get(tripID, routeID string) (route_models.RouteMetrics, bool)
	Drop(tripID string)
}

type metricsEntry struct {
	metrics   route_models.RouteMetrics
	expiresAt time.Time
}

type RouteMetricsCache struct {
	mu   sync.RWMutex
	data map[string]metricsEntry
}

func NewRouteMetricsCache() *RouteMetricsCache {
	return &RouteMetricsCache{
		data: make(map[string]metricsEntry),
	}
}

func metricsKey(tripID, routeID string) string {
	return tripID + "|" + routeID
}

func (s *RouteMetricsCache) Put(tripID, routeID string, metrics route_models.RouteMetrics, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[metricsKey(tripID, routeID)] = metricsEntry{
		metrics:   metrics,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *RouteMetricsCache) Get(tripID, routeID string) (route_models.RouteMetrics, bool) {
	s.mu.RLock()
	e, ok := s.data[metricsKey(tripID, routeID)]
	s.mu.RUnlock()

	if !ok {
		return route_models.RouteMetrics{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, metricsKey(tripID, routeID))
		s.mu.Unlock()
		return route_models.RouteMetrics{}, false
	}
	return e.metrics, true
}

func (s *RouteMetricsCache) Drop(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := tripID + "|"
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			delete(s.data, key)
		}
	}
}
