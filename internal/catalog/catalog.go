// Package catalog holds the immutable game-data snapshot and answers all
// lookup, classification and reverse-lookup queries over it.
package catalog

import (
	"sort"

	"github.com/skarn-dev/rupture-planner/internal/domain"
)

// Catalog is a read-only view over one loaded game-data snapshot, with
// derived indexes built once at construction. Lookups never fail hard:
// a missing entity is returned as nil and callers branch on absence.
type Catalog struct {
	data *domain.GameData

	itemsBySlug        map[string]*domain.Item
	buildingsBySlug    map[string]*domain.Building
	recipesBySlug      map[string]*domain.Recipe
	schematicsBySlug   map[string]*domain.Schematic
	corporationsBySlug map[string]*domain.Corporation

	// recipeOrder fixes catalog iteration order so that "pick the first
	// matching recipe" is deterministic across runs: non-alternate recipes
	// first, then alternates, each group sorted by class id.
	recipeOrder []string
}

// New builds a Catalog over the given snapshot. The snapshot must not be
// mutated afterwards; version switches go through Provider.Swap instead.
func New(data *domain.GameData) *Catalog {
	c := &Catalog{
		data:               data,
		itemsBySlug:        make(map[string]*domain.Item, len(data.Items)),
		buildingsBySlug:    make(map[string]*domain.Building, len(data.Buildings)),
		recipesBySlug:      make(map[string]*domain.Recipe, len(data.Recipes)),
		schematicsBySlug:   make(map[string]*domain.Schematic, len(data.Schematics)),
		corporationsBySlug: make(map[string]*domain.Corporation, len(data.Corporations)),
	}

	for _, item := range data.Items {
		c.itemsBySlug[item.Slug] = item
	}
	for _, building := range data.Buildings {
		c.buildingsBySlug[building.Slug] = building
	}
	for _, recipe := range data.Recipes {
		c.recipesBySlug[recipe.Slug] = recipe
	}
	for _, schematic := range data.Schematics {
		c.schematicsBySlug[schematic.Slug] = schematic
	}
	for _, corporation := range data.Corporations {
		c.corporationsBySlug[corporation.Slug] = corporation
	}

	var base, alternate []string
	for class, recipe := range data.Recipes {
		if recipe.Alternate {
			alternate = append(alternate, class)
		} else {
			base = append(base, class)
		}
	}
	sort.Strings(base)
	sort.Strings(alternate)
	c.recipeOrder = append(base, alternate...)

	return c
}

// Data exposes the raw snapshot for callers that need bulk access, such as
// the browse endpoints. The returned value must be treated as read-only.
func (c *Catalog) Data() *domain.GameData {
	return c.data
}

// Version returns the snapshot version string.
func (c *Catalog) Version() string {
	return c.data.Version
}

// ItemByClass returns the item with the given class id, or nil.
func (c *Catalog) ItemByClass(class string) *domain.Item {
	return c.data.Items[class]
}

// ItemBySlug returns the item with the given slug, or nil.
func (c *Catalog) ItemBySlug(slug string) *domain.Item {
	return c.itemsBySlug[slug]
}

// BuildingByClass returns the building with the given class id, or nil.
func (c *Catalog) BuildingByClass(class string) *domain.Building {
	return c.data.Buildings[class]
}

// BuildingBySlug returns the building with the given slug, or nil.
func (c *Catalog) BuildingBySlug(slug string) *domain.Building {
	return c.buildingsBySlug[slug]
}

// RecipeByClass returns the recipe with the given class id, or nil.
func (c *Catalog) RecipeByClass(class string) *domain.Recipe {
	return c.data.Recipes[class]
}

// RecipeBySlug returns the recipe with the given slug, or nil.
func (c *Catalog) RecipeBySlug(slug string) *domain.Recipe {
	return c.recipesBySlug[slug]
}

// SchematicByClass returns the schematic with the given class id, or nil.
func (c *Catalog) SchematicByClass(class string) *domain.Schematic {
	return c.data.Schematics[class]
}

// SchematicBySlug returns the schematic with the given slug, or nil.
func (c *Catalog) SchematicBySlug(slug string) *domain.Schematic {
	return c.schematicsBySlug[slug]
}

// CorporationByClass returns the corporation with the given class id, or nil.
func (c *Catalog) CorporationByClass(class string) *domain.Corporation {
	return c.data.Corporations[class]
}

// CorporationBySlug returns the corporation with the given slug, or nil.
func (c *Catalog) CorporationBySlug(slug string) *domain.Corporation {
	return c.corporationsBySlug[slug]
}

// MinerByClass returns the miner data for a building class id, or nil.
func (c *Catalog) MinerByClass(class string) *domain.Miner {
	return c.data.Miners[class]
}

// GeneratorByClass returns the generator data for a building class id, or nil.
func (c *Catalog) GeneratorByClass(class string) *domain.Generator {
	return c.data.Generators[class]
}

// ResourceCap returns the default world extraction cap for a resource
// class id, 0 when unknown.
func (c *Catalog) ResourceCap(class string) float64 {
	if r, ok := c.data.Resources[class]; ok && r.Max > 0 {
		return r.Max
	}
	return c.data.ResourceCaps[class]
}

// IsResource reports whether the item class is a declared raw resource.
func (c *Catalog) IsResource(itemClass string) bool {
	_, ok := c.data.Resources[itemClass]
	return ok
}
