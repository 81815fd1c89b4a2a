package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/route_models"
)

func TestRouteMetricsCachePutGet(t *testing.T) {
	cache := NewRouteMetricsCache()

	price := 820.0
	cache.Put("trip-1", "route-base", route_models.RouteMetrics{TotalPrice: &price}, time.Minute)

	got, ok := cache.Get("trip-1", "route-base")
	require.True(t, ok)
	require.NotNil(t, got.TotalPrice)
	assert.Equal(t, 820.0, *got.TotalPrice)

	_, ok = cache.Get("trip-1", "route-reversed")
	assert.False(t, ok)
	_, ok = cache.Get("trip-2", "route-base")
	assert.False(t, ok)
}

func TestRouteMetricsCacheExpiry(t *testing.T) {
	cache := NewRouteMetricsCache()

	cache.Put("trip-1", "route-base", route_models.RouteMetrics{}, -time.Second)

	_, ok := cache.Get("trip-1", "route-base")
	assert.False(t, ok)
}

func TestRouteMetricsCacheDropClearsOneTrip(t *testing.T) {
	cache := NewRouteMetricsCache()

	cache.Put("trip-1", "route-base", route_models.RouteMetrics{}, time.Minute)
	cache.Put("trip-1", "route-reversed", route_models.RouteMetrics{}, time.Minute)
	cache.Put("trip-2", "route-base", route_models.RouteMetrics{}, time.Minute)

	cache.Drop("trip-1")

	_, ok := cache.Get("trip-1", "route-base")
	assert.False(t, ok)
	_, ok = cache.Get("trip-1", "route-reversed")
	assert.False(t, ok)
	_, ok = cache.Get("trip-2", "route-base")
	assert.True(t, ok)
}
