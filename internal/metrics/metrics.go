package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Planner Metrics
var (
	PlansComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlansComputed,
			Help: HelpTextPlansComputed,
		},
		[]string{LabelResult},
	)

	PlanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePlanDuration,
			Help:    HelpTextPlanDuration,
			Buckets: PlanLatencyBuckets,
		},
	)

	PlanCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlanCacheHits,
			Help: HelpTextPlanCacheHits,
		},
	)

	PlanCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlanCacheMisses,
			Help: HelpTextPlanCacheMisses,
		},
	)

	PlanGraphNodes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePlanGraphNodes,
			Help:    HelpTextPlanGraphNodes,
			Buckets: GraphNodeBuckets,
		},
	)

	PlanTargets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlanTargetsTotal,
			Help: HelpTextPlanTargetsTotal,
		},
	)
)

// Catalog Metrics
var (
	CatalogLoads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLoads,
			Help: HelpTextCatalogLoads,
		},
	)

	CatalogLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLoadErrors,
			Help: HelpTextCatalogLoadErrors,
		},
	)

	CatalogEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogEntities,
			Help: HelpTextCatalogEntities,
		},
		[]string{LabelEntity},
	)
)

// RecordCatalogLoad records a successful snapshot load and the entity
// counts of the new snapshot.
func RecordCatalogLoad(entityCounts map[string]int) {
	CatalogLoads.Inc()
	for entity, count := range entityCounts {
		CatalogEntities.WithLabelValues(entity).Set(float64(count))
	}
}
