package domain

// BuildingMetadata holds the balance numbers extracted from the game data
// for a building. Extracted carries game-specific extras that the planner
// does not interpret but preserves for the UI.
type BuildingMetadata struct {
	PowerConsumption         float64        `json:"powerConsumption,omitempty"`
	PowerConsumptionExponent float64        `json:"powerConsumptionExponent,omitempty"`
	ManufacturingSpeed       float64        `json:"manufacturingSpeed,omitempty"`
	InventorySize            int            `json:"inventorySize,omitempty"`
	InputInventorySize       int            `json:"inputInventorySize,omitempty"`
	StorageSize              int            `json:"storageSize,omitempty"`
	IsVariablePower          bool           `json:"isVariablePower,omitempty"`
	MinPowerConsumption      float64        `json:"minPowerConsumption,omitempty"`
	MaxPowerConsumption      float64        `json:"maxPowerConsumption,omitempty"`
	Extracted                map[string]any `json:"extracted,omitempty"`
}

// Building represents a constructible building from the data snapshot.
type Building struct {
	ClassName            string           `json:"className"`
	Slug                 string           `json:"slug"`
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	Icon                 string           `json:"icon,omitempty"`
	Categories           []string         `json:"categories"`
	BuildMenuPriority    int              `json:"buildMenuPriority"`
	BuildingType         string           `json:"buildingType,omitempty"`
	Metadata             BuildingMetadata `json:"metadata"`
	AvailableRecipes     []string         `json:"availableRecipes,omitempty"`
	ResourceRequirements []ItemAmount     `json:"resourceRequirements,omitempty"`
}

// CanProduce reports whether the building lists the recipe as available.
func (b *Building) CanProduce(recipeClass string) bool {
	for _, r := range b.AvailableRecipes {
		if r == recipeClass {
			return true
		}
	}
	return false
}

// Miner describes the extraction characteristics of a miner/extractor
// building, keyed by the building class id in the snapshot.
type Miner struct {
	ClassName        string   `json:"className"`
	ItemsPerCycle    float64  `json:"itemsPerCycle"`
	ExtractCycleTime float64  `json:"extractCycleTime"` // seconds
	AllowedResources []string `json:"allowedResources,omitempty"`
}

// Generator describes the power-production curve of a generator building.
type Generator struct {
	ClassName               string   `json:"className"`
	Fuel                    []string `json:"fuel,omitempty"`
	PowerProduction         float64  `json:"powerProduction"`
	PowerProductionExponent float64  `json:"powerProductionExponent,omitempty"`
	WaterToPowerRatio       float64  `json:"waterToPowerRatio,omitempty"`
}
