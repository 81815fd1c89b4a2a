package cachefx

import (
	"go.uber.org/fx"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(provideRouteMetricsStore)

func provideRouteMetricsStore() mem.RouteMetricsStore {
	return mem.NewRouteMetricsCache()
}
