package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarn-dev/rupture-planner/internal/domain"
)

func newTestData() *domain.GameData {
	return &domain.GameData{
		Version: "test",
		Items: map[string]*domain.Item{
			"IT_IronOre":   {ClassName: "IT_IronOre", Slug: "iron-ore", Name: "Iron Ore"},
			"IT_IronIngot": {ClassName: "IT_IronIngot", Slug: "iron-ingot", Name: "Iron Ingot"},
			"IT_Concrete":  {ClassName: "IT_Concrete", Slug: "concrete", Name: "Concrete"},
		},
		Recipes: map[string]*domain.Recipe{
			"RC_IronIngot": {
				ClassName:   "RC_IronIngot",
				Slug:        "iron-ingot",
				Name:        "Iron Ingot",
				Time:        2,
				InMachine:   true,
				Ingredients: []domain.ItemAmount{{Item: "IT_IronOre", Amount: 1}},
				Products:    []domain.ItemAmount{{Item: "IT_IronIngot", Amount: 1}},
				ProducedIn:  []string{"BD_Smelter"},
			},
			"RC_IronIngot_Alt": {
				ClassName:   "RC_IronIngot_Alt",
				Slug:        "iron-ingot-alt",
				Name:        "Alternate: Iron Ingot",
				Alternate:   true,
				Time:        1,
				InMachine:   true,
				Ingredients: []domain.ItemAmount{{Item: "IT_IronOre", Amount: 2}},
				Products:    []domain.ItemAmount{{Item: "IT_IronIngot", Amount: 1}},
				ProducedIn:  []string{"BD_Smelter"},
			},
			"RC_Building_Smelter": {
				ClassName:   "RC_Building_Smelter",
				Slug:        "smelter",
				Name:        "Smelter",
				ForBuilding: true,
				Ingredients: []domain.ItemAmount{{Item: "IT_Concrete", Amount: 10}},
				Products:    []domain.ItemAmount{{Item: "BD_Smelter", Amount: 1}},
			},
		},
		Buildings: map[string]*domain.Building{
			"BD_Smelter": {
				ClassName: "BD_Smelter",
				Slug:      "smelter",
				Name:      "Smelter",
				Metadata:  domain.BuildingMetadata{PowerConsumption: 4, ManufacturingSpeed: 1},
			},
			"BD_Miner": {
				ClassName: "BD_Miner",
				Slug:      "miner",
				Name:      "Miner",
				Metadata:  domain.BuildingMetadata{PowerConsumption: 5},
			},
			"BD_Generator": {
				ClassName: "BD_Generator",
				Slug:      "generator",
				Name:      "Generator",
			},
			domain.BuildingWorkbench: {
				ClassName: domain.BuildingWorkbench,
				Slug:      "workbench",
				Name:      "Workbench",
			},
			"BD_Storage": {
				ClassName: "BD_Storage",
				Slug:      "storage",
				Name:      "Storage",
				Metadata:  domain.BuildingMetadata{StorageSize: 24},
			},
		},
		Miners: map[string]*domain.Miner{
			"BD_Miner": {ClassName: "BD_Miner", ItemsPerCycle: 1, ExtractCycleTime: 1},
		},
		Generators: map[string]*domain.Generator{
			"BD_Generator": {ClassName: "BD_Generator", PowerProduction: 75},
		},
		Resources: map[string]*domain.Resource{
			"IT_IronOre": {Item: "IT_IronOre", Max: 70000},
		},
		Schematics:   map[string]*domain.Schematic{},
		ResourceCaps: map[string]float64{"IT_Limestone": 50000},
	}
}

func TestLookups(t *testing.T) {
	c := New(newTestData())

	t.Run("by class and slug", func(t *testing.T) {
		require.NotNil(t, c.ItemByClass("IT_IronOre"))
		assert.Equal(t, "Iron Ore", c.ItemByClass("IT_IronOre").Name)
		assert.Equal(t, c.ItemByClass("IT_IronOre"), c.ItemBySlug("iron-ore"))

		require.NotNil(t, c.RecipeBySlug("iron-ingot"))
		require.NotNil(t, c.BuildingBySlug("smelter"))
		require.NotNil(t, c.MinerByClass("BD_Miner"))
		require.NotNil(t, c.GeneratorByClass("BD_Generator"))
	})

	t.Run("missing lookups return nil, never panic", func(t *testing.T) {
		assert.Nil(t, c.ItemByClass("IT_Nope"))
		assert.Nil(t, c.ItemBySlug("nope"))
		assert.Nil(t, c.RecipeByClass("RC_Nope"))
		assert.Nil(t, c.BuildingByClass("BD_Nope"))
		assert.Nil(t, c.SchematicByClass("SC_Nope"))
		assert.Nil(t, c.CorporationByClass("CO_Nope"))
	})

	t.Run("resource caps", func(t *testing.T) {
		assert.InEpsilon(t, 70000.0, c.ResourceCap("IT_IronOre"), 1e-9)
		assert.InEpsilon(t, 50000.0, c.ResourceCap("IT_Limestone"), 1e-9)
		assert.Zero(t, c.ResourceCap("IT_Nope"))
		assert.True(t, c.IsResource("IT_IronOre"))
		assert.False(t, c.IsResource("IT_IronIngot"))
	})
}

func TestClassification(t *testing.T) {
	c := New(newTestData())

	t.Run("miners and generators come from the sub-collections", func(t *testing.T) {
		assert.True(t, c.IsMiner(c.BuildingByClass("BD_Miner")))
		assert.True(t, c.IsGenerator(c.BuildingByClass("BD_Generator")))
		assert.True(t, c.IsManufacturer(c.BuildingByClass("BD_Smelter")))
		assert.False(t, c.IsManufacturer(c.BuildingByClass("BD_Storage")))
	})

	t.Run("manual stations are always manufacturers", func(t *testing.T) {
		workbench := c.BuildingByClass(domain.BuildingWorkbench)
		assert.True(t, c.IsManualManufacturer(workbench))
		assert.True(t, c.IsManufacturer(workbench))
	})

	t.Run("predicates are mutually exclusive", func(t *testing.T) {
		for _, building := range c.Data().Buildings {
			count := 0
			if c.IsMiner(building) {
				count++
			}
			if c.IsGenerator(building) {
				count++
			}
			if c.IsManufacturer(building) {
				count++
			}
			assert.LessOrEqual(t, count, 1, building.ClassName)
		}
	})

	t.Run("nil building is nothing", func(t *testing.T) {
		assert.False(t, c.IsMiner(nil))
		assert.False(t, c.IsGenerator(nil))
		assert.False(t, c.IsManufacturer(nil))
	})
}

func TestRecipeOrder(t *testing.T) {
	c := New(newTestData())

	recipes := c.RecipesProducingOrdered("IT_IronIngot")
	require.Len(t, recipes, 2)
	// Non-alternate recipes come first regardless of class id ordering.
	assert.Equal(t, "RC_IronIngot", recipes[0].ClassName)
	assert.Equal(t, "RC_IronIngot_Alt", recipes[1].ClassName)

	assert.Len(t, c.BaseRecipes(), 1)
	assert.Len(t, c.AlternateRecipes(), 1)
}
