// Package planner is the application service tying the pipeline together:
// validate request, resolve chain, build graph, aggregate report.
package planner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/skarn-dev/rupture-planner/internal/catalog"
	"github.com/skarn-dev/rupture-planner/internal/domain"
	"github.com/skarn-dev/rupture-planner/internal/graph"
	"github.com/skarn-dev/rupture-planner/internal/logger"
	"github.com/skarn-dev/rupture-planner/internal/metrics"
	"github.com/skarn-dev/rupture-planner/internal/report"
	"github.com/skarn-dev/rupture-planner/internal/solver"
)

// DefaultCacheSize bounds the plan cache. Plans are small; the cache
// mainly absorbs repeated identical requests from UI re-renders.
const DefaultCacheSize = 256

// Result is one computed production plan: the tabular report, the graph
// projection for visualization, and the raw edge map in wire format.
type Result struct {
	CatalogVersion string             `json:"catalogVersion,omitempty"`
	Report         *report.Report     `json:"report"`
	Graph          graph.View         `json:"graph"`
	Edges          map[string]float64 `json:"edges"`
}

// Service computes production plans against the active catalog snapshot.
type Service interface {
	Plan(ctx context.Context, request *domain.PlanRequest) (*Result, error)
}

type service struct {
	provider *catalog.Provider
	validate *validator.Validate
	cache    *lru.Cache[string, *Result]
}

// NewService creates a planner service with a bounded result cache.
func NewService(provider *catalog.Provider, cacheSize int) (Service, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *Result](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan cache: %w", err)
	}
	return &service{
		provider: provider,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cache:    cache,
	}, nil
}

// Plan validates the request and runs the resolve/build/aggregate pipeline.
// Identical requests against the same catalog version are served from cache.
func (s *service) Plan(ctx context.Context, request *domain.PlanRequest) (*Result, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	if err := s.validate.Struct(request); err != nil {
		metrics.PlansComputed.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	cat, err := s.provider.Current()
	if err != nil {
		metrics.PlansComputed.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	key, err := cacheKey(cat.Version(), request)
	if err == nil {
		if cached, ok := s.cache.Get(key); ok {
			metrics.PlanCacheHits.Inc()
			return cached, nil
		}
		metrics.PlanCacheMisses.Inc()
	}

	edges, err := solver.New(cat).Resolve(ctx, request)
	if err != nil {
		metrics.PlansComputed.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("failed to resolve production chain: %w", err)
	}

	g := graph.Build(ctx, cat, edges)
	result := &Result{
		CatalogVersion: cat.Version(),
		Report:         report.Aggregate(cat, request, g),
		Graph:          g.View(),
		Edges:          wireEdges(edges),
	}

	if key != "" {
		s.cache.Add(key, result)
	}

	metrics.PlansComputed.WithLabelValues(metrics.ResultOK).Inc()
	metrics.PlanDuration.Observe(time.Since(start).Seconds())
	metrics.PlanGraphNodes.Observe(float64(len(g.Nodes)))
	metrics.PlanTargets.Add(float64(len(request.Production)))

	log.Debug("Computed production plan",
		"targets", len(request.Production),
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"duration", time.Since(start))
	return result, nil
}

// cacheKey hashes the request together with the catalog version, so a
// snapshot swap naturally invalidates every cached plan. json.Marshal
// emits map keys sorted, which keeps the hash deterministic.
func cacheKey(version string, request *domain.PlanRequest) (string, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(append([]byte(version+"\x00"), payload...))
	return hex.EncodeToString(sum[:]), nil
}

func wireEdges(edges solver.EdgeMap) map[string]float64 {
	wire := make(map[string]float64, len(edges))
	for key, value := range edges {
		wire[key.String()] = value
	}
	return wire
}
