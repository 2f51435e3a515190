package handler

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/skarn-dev/rupture-planner/internal/catalog"
	"github.com/skarn-dev/rupture-planner/internal/domain"
)

// Browse endpoints back the item/building/recipe/corporation browser
// views. They are read-only projections of the active catalog snapshot.

// EntitySummary is the list-view projection of any catalog entity.
type EntitySummary struct {
	ClassName string `json:"className"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
}

// ItemDetail is the item browser page: the item plus every way it is
// produced, consumed and researched.
type ItemDetail struct {
	Item              *domain.Item        `json:"item"`
	ProducedBy        []*domain.Recipe    `json:"producedBy"`
	ConsumedBy        []*domain.Recipe    `json:"consumedBy"`
	UsedForBuildings  []*domain.Recipe    `json:"usedForBuildings"`
	NeededForResearch []*domain.Schematic `json:"neededForResearch"`
	ResourceCap       float64             `json:"resourceCap,omitempty"`
}

// BuildingDetail is the building browser page.
type BuildingDetail struct {
	Building   *domain.Building           `json:"building"`
	Kind       string                     `json:"kind"`
	Miner      *domain.Miner              `json:"miner,omitempty"`
	Generator  *domain.Generator          `json:"generator,omitempty"`
	CostRecipe *domain.Recipe             `json:"costRecipe,omitempty"`
	UnlockedBy []domain.CorporationUnlock `json:"unlockedBy,omitempty"`
}

// RecipeDetail is the recipe browser page.
type RecipeDetail struct {
	Recipe     *domain.Recipe             `json:"recipe"`
	Schematic  *domain.Schematic          `json:"schematic,omitempty"`
	UnlockedBy []domain.CorporationUnlock `json:"unlockedBy,omitempty"`
}

// SchematicDetail is the schematic browser page, with the dependency
// neighborhood for the tree view.
type SchematicDetail struct {
	Schematic *domain.Schematic   `json:"schematic"`
	Related   []*domain.Schematic `json:"related,omitempty"`
}

func currentCatalog(w http.ResponseWriter, provider *catalog.Provider) (*catalog.Catalog, bool) {
	c, err := provider.Current()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, ErrMsgCatalogNotReadyError)
		return nil, false
	}
	return c, true
}

// HandleListItems lists all items sorted by display name.
func HandleListItems(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		summaries := make([]EntitySummary, 0, len(c.Data().Items))
		for _, item := range c.Data().Items {
			summaries = append(summaries, EntitySummary{
				ClassName: item.ClassName,
				Slug:      item.Slug,
				Name:      item.Name,
				Icon:      item.Icon,
			})
		}
		sortSummaries(summaries)
		respondJSON(w, http.StatusOK, DataResponse{Data: summaries})
	}
}

// HandleListSinkableItems lists the items worth sink points.
func HandleListSinkableItems(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: c.SinkableItems()})
	}
}

// HandleGetItem returns the item browser detail for a slug.
func HandleGetItem(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		item := c.ItemBySlug(chi.URLParam(r, "slug"))
		if item == nil {
			respondError(w, http.StatusNotFound, ErrMsgNotFoundError)
			return
		}

		detail := ItemDetail{
			Item:              item,
			ProducedBy:        sortedRecipes(c.RecipesProducing(item)),
			ConsumedBy:        sortedRecipes(c.RecipesConsumingAsIngredient(item)),
			UsedForBuildings:  sortedRecipes(c.RecipesConsumingForBuildingCost(item)),
			NeededForResearch: sortedSchematics(c.SchematicsReferencing(item)),
		}
		if c.IsResource(item.ClassName) {
			detail.ResourceCap = c.ResourceCap(item.ClassName)
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: detail})
	}
}

// HandleGetItemRecipes returns the recipes producing an item.
func HandleGetItemRecipes(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		item := c.ItemBySlug(chi.URLParam(r, "slug"))
		if item == nil {
			respondError(w, http.StatusNotFound, ErrMsgNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: sortedRecipes(c.RecipesProducing(item))})
	}
}

// ItemUsages lists the recipes an item feeds, split by role.
type ItemUsages struct {
	AsIngredient    []*domain.Recipe `json:"asIngredient"`
	ForBuildingCost []*domain.Recipe `json:"forBuildingCost"`
}

// HandleGetItemUsages returns the recipes consuming an item.
func HandleGetItemUsages(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		item := c.ItemBySlug(chi.URLParam(r, "slug"))
		if item == nil {
			respondError(w, http.StatusNotFound, ErrMsgNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: ItemUsages{
			AsIngredient:    sortedRecipes(c.RecipesConsumingAsIngredient(item)),
			ForBuildingCost: sortedRecipes(c.RecipesConsumingForBuildingCost(item)),
		}})
	}
}

// HandleGetItemSchematics returns the schematics that reference an item.
func HandleGetItemSchematics(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		item := c.ItemBySlug(chi.URLParam(r, "slug"))
		if item == nil {
			respondError(w, http.StatusNotFound, ErrMsgNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: sortedSchematics(c.SchematicsReferencing(item))})
	}
}

// HandleListRecipes lists recipes, base first, then alternates.
func HandleListRecipes(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		recipes := append(c.BaseRecipes(), c.AlternateRecipes()...)
		respondJSON(w, http.StatusOK, DataResponse{Data: recipes})
	}
}

// HandleGetRecipe returns the recipe browser detail for a slug.
func HandleGetRecipe(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		recipe := c.RecipeBySlug(chi.URLParam(r, "slug"))
		if recipe == nil {
			respondError(w, http.StatusNotFound, ErrMsgNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: RecipeDetail{
			Recipe:     recipe,
			Schematic:  c.SchematicUnlockingRecipe(recipe.ClassName),
			UnlockedBy: c.CorporationUnlocksForRecipe(recipe.ClassName),
		}})
	}
}

// HandleListBuildings lists all buildings sorted by display name.
func HandleListBuildings(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		summaries := make([]EntitySummary, 0, len(c.Data().Buildings))
		for _, building := range c.Data().Buildings {
			summaries = append(summaries, EntitySummary{
				ClassName: building.ClassName,
				Slug:      building.Slug,
				Name:      building.Name,
				Icon:      building.Icon,
			})
		}
		sortSummaries(summaries)
		respondJSON(w, http.StatusOK, DataResponse{Data: summaries})
	}
}

// HandleListManufacturers lists the buildings that run recipes.
func HandleListManufacturers(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: c.Manufacturers()})
	}
}

// HandleGetBuilding returns the building browser detail for a slug.
func HandleGetBuilding(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		building := c.BuildingBySlug(chi.URLParam(r, "slug"))
		if building == nil {
			respondError(w, http.StatusNotFound, ErrMsgNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: BuildingDetail{
			Building:   building,
			Kind:       buildingKind(c, building),
			Miner:      c.MinerByClass(building.ClassName),
			Generator:  c.GeneratorByClass(building.ClassName),
			CostRecipe: c.BuildingCostRecipe(building.ClassName),
			UnlockedBy: c.CorporationUnlocksForBuilding(building.ClassName),
		}})
	}
}

// HandleGetSchematic returns a schematic plus its dependency neighborhood.
func HandleGetSchematic(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		schematic := c.SchematicBySlug(chi.URLParam(r, "slug"))
		if schematic == nil {
			respondError(w, http.StatusNotFound, ErrMsgNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: SchematicDetail{
			Schematic: schematic,
			Related:   c.RelevantSchematics(schematic),
		}})
	}
}

// HandleGetRelatedSchematics returns a schematic's dependency
// neighborhood on its own.
func HandleGetRelatedSchematics(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		schematic := c.SchematicBySlug(chi.URLParam(r, "slug"))
		if schematic == nil {
			respondError(w, http.StatusNotFound, ErrMsgNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: c.RelevantSchematics(schematic)})
	}
}

// HandleListCorporations lists all corporations sorted by display name.
func HandleListCorporations(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		summaries := make([]EntitySummary, 0, len(c.Data().Corporations))
		for _, corporation := range c.Data().Corporations {
			if corporation.Hidden {
				continue
			}
			summaries = append(summaries, EntitySummary{
				ClassName: corporation.ClassName,
				Slug:      corporation.Slug,
				Name:      corporation.Name,
				Icon:      corporation.Icon,
			})
		}
		sortSummaries(summaries)
		respondJSON(w, http.StatusOK, DataResponse{Data: summaries})
	}
}

// HandleGetCorporation returns a corporation with its full level table.
func HandleGetCorporation(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		corporation := c.CorporationBySlug(chi.URLParam(r, "slug"))
		if corporation == nil {
			respondError(w, http.StatusNotFound, ErrMsgNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: corporation})
	}
}

// HandleListResources lists declared raw resources with their world caps.
func HandleListResources(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := currentCatalog(w, provider)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: c.Resources()})
	}
}

func buildingKind(c *catalog.Catalog, building *domain.Building) string {
	switch {
	case c.IsMiner(building):
		return "miner"
	case c.IsGenerator(building):
		return "generator"
	case c.IsManufacturer(building):
		return "manufacturer"
	default:
		return "other"
	}
}

func sortSummaries(summaries []EntitySummary) {
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Name != summaries[j].Name {
			return summaries[i].Name < summaries[j].Name
		}
		return summaries[i].ClassName < summaries[j].ClassName
	})
}

func sortedRecipes(recipes map[string]*domain.Recipe) []*domain.Recipe {
	sorted := make([]*domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		sorted = append(sorted, recipe)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ClassName < sorted[j].ClassName
	})
	return sorted
}

func sortedSchematics(schematics map[string]*domain.Schematic) []*domain.Schematic {
	sorted := make([]*domain.Schematic, 0, len(schematics))
	for _, schematic := range schematics {
		sorted = append(sorted, schematic)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ClassName < sorted[j].ClassName
	})
	return sorted
}
