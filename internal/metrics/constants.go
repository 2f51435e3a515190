package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Planner metric names
const (
	MetricNamePlansComputed    = "plans_computed_total"
	MetricNamePlanDuration     = "plan_duration_seconds"
	MetricNamePlanCacheHits    = "plan_cache_hits_total"
	MetricNamePlanCacheMisses  = "plan_cache_misses_total"
	MetricNamePlanGraphNodes   = "plan_graph_nodes"
	MetricNamePlanTargetsTotal = "plan_targets_total"
)

// Catalog metric names
const (
	MetricNameCatalogLoads      = "catalog_loads_total"
	MetricNameCatalogLoadErrors = "catalog_load_errors_total"
	MetricNameCatalogEntities   = "catalog_entities"
)

// Metric label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
	LabelEntity = "entity"
)

// Plan result label values
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Planner metric help text
const (
	HelpTextPlansComputed    = "Total number of production plans computed"
	HelpTextPlanDuration     = "Production plan computation latency in seconds"
	HelpTextPlanCacheHits    = "Total number of plan cache hits"
	HelpTextPlanCacheMisses  = "Total number of plan cache misses"
	HelpTextPlanGraphNodes   = "Number of graph nodes per computed plan"
	HelpTextPlanTargetsTotal = "Total number of production targets requested"
)

// Catalog metric help text
const (
	HelpTextCatalogLoads      = "Total number of game data snapshot loads"
	HelpTextCatalogLoadErrors = "Total number of failed game data snapshot loads"
	HelpTextCatalogEntities   = "Number of entities in the active game data snapshot"
)

// Histogram buckets
var (
	HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	PlanLatencyBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}
	GraphNodeBuckets   = []float64{1, 5, 10, 25, 50, 100, 250, 500}
)
