// Package solver computes the production chain for a plan request: which
// recipes to run, at what multiplier, and which raw resources to extract.
package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/skarn-dev/rupture-planner/internal/catalog"
	"github.com/skarn-dev/rupture-planner/internal/domain"
	"github.com/skarn-dev/rupture-planner/internal/formula"
	"github.com/skarn-dev/rupture-planner/internal/logger"
)

// maxDepth bounds the recursion for snapshots whose recipe graph is
// deeper than any sane game data. The visited-path guard catches true
// cycles before this trips.
const maxDepth = 256

// Resolver walks the recipe graph backwards from requested outputs. It is
// stateless between calls; all state lives in the per-request walk.
type Resolver struct {
	catalog *catalog.Catalog
}

// New creates a Resolver over the given catalog snapshot.
func New(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve computes the flat edge map for a plan request. Targets with an
// empty item id, a non-positive rate, or an item unknown to the catalog
// contribute nothing. A cyclic recipe graph is the one fatal condition and
// is reported as domain.ErrRecipeCycle.
func (r *Resolver) Resolve(ctx context.Context, request *domain.PlanRequest) (EdgeMap, error) {
	log := logger.FromContext(ctx)
	result := make(EdgeMap)

	for _, target := range request.Production {
		if target.Item == "" || target.Amount <= 0 {
			continue
		}
		if r.catalog.ItemByClass(target.Item) == nil {
			log.Warn("Skipping unknown target item", "item", target.Item)
			continue
		}

		walk := &chainWalk{resolver: r, path: make(map[string]int)}
		branch, err := walk.resolve(target.Item, target.Amount, 0)
		if err != nil {
			return nil, err
		}
		result.Merge(branch)

		// Declared outputs overwrite rather than accumulate: one product
		// edge per distinct requested item.
		result[ProductKey(target.Item)] = target.Amount
	}

	log.Debug("Resolved production chain", "targets", len(request.Production), "edges", len(result))
	return result, nil
}

// chainWalk carries the visited path of one top-level target's recursion.
type chainWalk struct {
	resolver *Resolver
	path     map[string]int // item class -> depth, for cycle reporting
}

func (w *chainWalk) resolve(itemClass string, targetRate float64, depth int) (EdgeMap, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: recursion depth exceeded at %s", domain.ErrRecipeCycle, itemClass)
	}
	if _, onPath := w.path[itemClass]; onPath {
		return nil, fmt.Errorf("%w: %s requires its own output", domain.ErrRecipeCycle, itemClass)
	}

	result := make(EdgeMap)

	recipe := w.resolver.pickRecipe(itemClass)
	if recipe == nil {
		// No recipe produces this item: it is a raw material, whether or
		// not the snapshot formally declares it extractable.
		result.Add(MineKey(itemClass), targetRate)
		return result, nil
	}

	building := w.resolver.buildingForRecipe(recipe)

	outputAmount := recipe.ProductAmount(itemClass)
	singleBuildingOutput := formula.ProductRatePerMinute(recipe, outputAmount, formula.DefaultClock)
	if singleBuildingOutput <= 0 {
		// pickRecipe filters unusable producers; this only trips on
		// inconsistent catalog data.
		result.Add(MineKey(itemClass), targetRate)
		return result, nil
	}

	// Always resolve at nominal clock; fractional multipliers become
	// underclocked partial machines downstream, not a different clock here.
	multiplier := targetRate / singleBuildingOutput
	result.Add(RecipeKey(recipe.ClassName, building.ClassName, formula.DefaultClock), multiplier)

	w.path[itemClass] = depth
	defer delete(w.path, itemClass)

	for _, ingredient := range recipe.Ingredients {
		if ingredient.Amount <= 0 {
			continue
		}
		ingredientRate := (targetRate / outputAmount) * ingredient.Amount
		branch, err := w.resolve(ingredient.Item, ingredientRate, depth+1)
		if err != nil {
			return nil, err
		}
		result.Merge(branch)
	}

	return result, nil
}

// pickRecipe selects the producing recipe for an item: the first usable
// one in catalog iteration order. Deliberately no cost optimization or
// alternate-recipe selection; plans stay reproducible.
func (r *Resolver) pickRecipe(itemClass string) *domain.Recipe {
	for _, recipe := range r.catalog.RecipesProducingOrdered(itemClass) {
		if recipe.Time > 0 && recipe.ProductAmount(itemClass) > 0 {
			return recipe
		}
	}
	return nil
}

// buildingForRecipe resolves a producer. A declared producer list is
// taken at its word: the first entry, or the synthetic Unknown building
// when that entry is absent from the catalog. Only recipes with no
// declared producer at all fall back to a reverse scan of building
// recipe lists.
func (r *Resolver) buildingForRecipe(recipe *domain.Recipe) *domain.Building {
	if len(recipe.ProducedIn) > 0 {
		if building := r.catalog.BuildingByClass(recipe.ProducedIn[0]); building != nil {
			return building
		}
		return domain.NewUnknownBuilding()
	}

	classes := make([]string, 0, len(r.catalog.Data().Buildings))
	for class := range r.catalog.Data().Buildings {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	for _, class := range classes {
		building := r.catalog.Data().Buildings[class]
		if building.CanProduce(recipe.ClassName) {
			return building
		}
	}

	return domain.NewUnknownBuilding()
}
