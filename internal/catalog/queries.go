package catalog

import (
	"sort"

	"github.com/skarn-dev/rupture-planner/internal/domain"
)

// RecipesProducing returns every recipe whose product list contains the
// item, keyed by recipe class id.
func (c *Catalog) RecipesProducing(item *domain.Item) map[string]*domain.Recipe {
	recipes := make(map[string]*domain.Recipe)
	if item == nil {
		return recipes
	}
	for class, recipe := range c.data.Recipes {
		if recipe.Produces(item.ClassName) {
			recipes[class] = recipe
		}
	}
	return recipes
}

// RecipesProducingOrdered returns the recipes producing the item class in
// catalog iteration order (non-alternate first, then alternates, sorted by
// class id within each group). The resolver's first-recipe policy depends
// on this order being stable.
func (c *Catalog) RecipesProducingOrdered(itemClass string) []*domain.Recipe {
	var recipes []*domain.Recipe
	for _, class := range c.recipeOrder {
		recipe := c.data.Recipes[class]
		if recipe.Produces(itemClass) {
			recipes = append(recipes, recipe)
		}
	}
	return recipes
}

// RecipesConsumingAsIngredient returns every non-building recipe that
// consumes the item as an ingredient, keyed by recipe class id.
func (c *Catalog) RecipesConsumingAsIngredient(item *domain.Item) map[string]*domain.Recipe {
	recipes := make(map[string]*domain.Recipe)
	if item == nil {
		return recipes
	}
	for class, recipe := range c.data.Recipes {
		if recipe.ForBuilding {
			continue
		}
		for _, ingredient := range recipe.Ingredients {
			if ingredient.Item == item.ClassName {
				recipes[class] = recipe
				break
			}
		}
	}
	return recipes
}

// RecipesConsumingForBuildingCost returns the recipes that consume the
// item to construct buildings. Buildings whose construction cost is not
// modeled as a recipe get a synthetic one keyed "building_<class>" so the
// UI can render them uniformly.
func (c *Catalog) RecipesConsumingForBuildingCost(item *domain.Item) map[string]*domain.Recipe {
	recipes := make(map[string]*domain.Recipe)
	if item == nil {
		return recipes
	}
	for class, recipe := range c.data.Recipes {
		if !recipe.ForBuilding {
			continue
		}
		for _, ingredient := range recipe.Ingredients {
			if ingredient.Item == item.ClassName {
				recipes[class] = recipe
				break
			}
		}
	}
	for _, building := range c.data.Buildings {
		for _, req := range building.ResourceRequirements {
			if req.Item != item.ClassName {
				continue
			}
			key := "building_" + building.ClassName
			if _, ok := recipes[key]; ok {
				break
			}
			recipes[key] = &domain.Recipe{
				ClassName:   key,
				Slug:        building.Slug,
				Name:        building.Name,
				ForBuilding: true,
				Products:    []domain.ItemAmount{{Item: building.ClassName, Amount: 1}},
				Ingredients: append([]domain.ItemAmount(nil), building.ResourceRequirements...),
			}
			break
		}
	}
	return recipes
}

// BuildingCostRecipe returns the construction recipe whose sole product is
// the building class, falling back to a synthetic recipe built from the
// building's resource requirements. Nil when no construction cost is known.
func (c *Catalog) BuildingCostRecipe(buildingClass string) *domain.Recipe {
	for _, class := range c.recipeOrder {
		recipe := c.data.Recipes[class]
		if recipe.ForBuilding && len(recipe.Products) == 1 && recipe.Products[0].Item == buildingClass {
			return recipe
		}
	}
	building := c.data.Buildings[buildingClass]
	if building == nil || len(building.ResourceRequirements) == 0 {
		return nil
	}
	return &domain.Recipe{
		ClassName:   "building_" + building.ClassName,
		Slug:        building.Slug,
		Name:        building.Name,
		ForBuilding: true,
		Products:    []domain.ItemAmount{{Item: building.ClassName, Amount: 1}},
		Ingredients: append([]domain.ItemAmount(nil), building.ResourceRequirements...),
	}
}

// SchematicUnlockingRecipe returns the first schematic (by class id) whose
// unlock set grants the recipe, or nil when nothing gates it.
func (c *Catalog) SchematicUnlockingRecipe(recipeClass string) *domain.Schematic {
	for _, class := range c.schematicOrder() {
		if schematic := c.data.Schematics[class]; schematic.UnlocksRecipe(recipeClass) {
			return schematic
		}
	}
	return nil
}

// SchematicsReferencing returns every schematic whose research cost or
// unlock requirements mention the item, keyed by schematic class id.
func (c *Catalog) SchematicsReferencing(item *domain.Item) map[string]*domain.Schematic {
	schematics := make(map[string]*domain.Schematic)
	if item == nil {
		return schematics
	}
	for class, schematic := range c.data.Schematics {
		refs := make([]domain.ItemAmount, 0, len(schematic.Cost)+len(schematic.UnlockRequirements))
		refs = append(refs, schematic.Cost...)
		refs = append(refs, schematic.UnlockRequirements...)
		for _, ref := range refs {
			if ref.Item == item.ClassName {
				schematics[class] = schematic
				break
			}
		}
	}
	return schematics
}

// RelevantSchematics returns the schematic itself plus the transitive
// closure of its ancestors and descendants over "requires" edges. The
// traversal tracks visited class ids so malformed cyclic data terminates.
func (c *Catalog) RelevantSchematics(schematic *domain.Schematic) []*domain.Schematic {
	if schematic == nil {
		return nil
	}

	visited := map[string]bool{schematic.ClassName: true}
	result := []*domain.Schematic{schematic}

	var addParents func(s *domain.Schematic)
	addParents = func(s *domain.Schematic) {
		for _, dependencyClass := range s.RequiredSchematics {
			dependency := c.data.Schematics[dependencyClass]
			if dependency == nil || visited[dependency.ClassName] {
				continue
			}
			visited[dependency.ClassName] = true
			result = append(result, dependency)
			addParents(dependency)
		}
	}

	var addChildren func(s *domain.Schematic)
	addChildren = func(s *domain.Schematic) {
		for _, class := range c.schematicOrder() {
			child := c.data.Schematics[class]
			if visited[child.ClassName] {
				continue
			}
			for _, required := range child.RequiredSchematics {
				if required == s.ClassName {
					visited[child.ClassName] = true
					result = append(result, child)
					addChildren(child)
					break
				}
			}
		}
	}

	addParents(schematic)
	addChildren(schematic)

	return result
}

func (c *Catalog) schematicOrder() []string {
	classes := make([]string, 0, len(c.data.Schematics))
	for class := range c.data.Schematics {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// CorporationUnlocksForBuilding returns the corporation levels that reward
// the building, directly or through a building collection. Nil when no
// corporation gates it.
func (c *Catalog) CorporationUnlocksForBuilding(buildingClass string) []domain.CorporationUnlock {
	var unlocks []domain.CorporationUnlock
	for _, class := range c.corporationOrder() {
		corporation := c.data.Corporations[class]
		for i := range corporation.Levels {
			level := &corporation.Levels[i]
			for _, reward := range level.BuildingRewards {
				if reward.Building == buildingClass {
					unlocks = append(unlocks, domain.CorporationUnlock{Corporation: corporation, Level: level.Level})
				}
			}
			for _, reward := range level.BuildingCollectionRewards {
				if reward.BuildingCollection == buildingClass {
					unlocks = append(unlocks, domain.CorporationUnlock{Corporation: corporation, Level: level.Level})
				}
			}
		}
	}
	return unlocks
}

// CorporationUnlocksForRecipe returns the corporation levels whose item
// rewards grant the recipe's primary product. Recipes are gated through
// their output item, not listed directly in corporation data.
func (c *Catalog) CorporationUnlocksForRecipe(recipeClass string) []domain.CorporationUnlock {
	recipe := c.RecipeByClass(recipeClass)
	if recipe == nil || len(recipe.Products) == 0 {
		return nil
	}
	itemClass := recipe.PrimaryProduct().Item

	var unlocks []domain.CorporationUnlock
	for _, class := range c.corporationOrder() {
		corporation := c.data.Corporations[class]
		for i := range corporation.Levels {
			level := &corporation.Levels[i]
			for _, reward := range level.ItemRewards {
				if reward.Item == itemClass {
					unlocks = append(unlocks, domain.CorporationUnlock{Corporation: corporation, Level: level.Level})
				}
			}
		}
	}
	return unlocks
}

func (c *Catalog) corporationOrder() []string {
	classes := make([]string, 0, len(c.data.Corporations))
	for class := range c.data.Corporations {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// Resources returns all declared raw resources sorted by item display name.
func (c *Catalog) Resources() []*domain.Resource {
	resources := make([]*domain.Resource, 0, len(c.data.Resources))
	for _, resource := range c.data.Resources {
		resources = append(resources, resource)
	}
	sort.Slice(resources, func(i, j int) bool {
		return c.resourceName(resources[i]) < c.resourceName(resources[j])
	})
	return resources
}

func (c *Catalog) resourceName(resource *domain.Resource) string {
	if item := c.ItemByClass(resource.Item); item != nil {
		return item.Name
	}
	return resource.Item
}

// Manufacturers returns all automated crafting buildings sorted by name.
func (c *Catalog) Manufacturers() []*domain.Building {
	var buildings []*domain.Building
	for _, building := range c.data.Buildings {
		if c.IsManufacturer(building) && !c.IsManualManufacturer(building) {
			buildings = append(buildings, building)
		}
	}
	sort.Slice(buildings, func(i, j int) bool {
		return buildings[i].Name < buildings[j].Name
	})
	return buildings
}

// BaseRecipes returns all non-alternate machine recipes.
func (c *Catalog) BaseRecipes() []*domain.Recipe {
	var recipes []*domain.Recipe
	for _, class := range c.recipeOrder {
		recipe := c.data.Recipes[class]
		if !recipe.Alternate && recipe.InMachine {
			recipes = append(recipes, recipe)
		}
	}
	return recipes
}

// AlternateRecipes returns all alternate recipes.
func (c *Catalog) AlternateRecipes() []*domain.Recipe {
	var recipes []*domain.Recipe
	for _, class := range c.recipeOrder {
		recipe := c.data.Recipes[class]
		if recipe.Alternate {
			recipes = append(recipes, recipe)
		}
	}
	return recipes
}

// SinkableItems returns all items with a positive sink value, sorted by name.
func (c *Catalog) SinkableItems() []*domain.Item {
	var items []*domain.Item
	for _, item := range c.data.Items {
		if item.SinkPoints > 0 {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items
}
