package domain

// Well-known class id constants from the game data.
const (
	// BuildingUnknown is the synthetic placeholder used when a recipe has
	// no resolvable producer. Zero power, speed 1.0, manufacturer category.
	BuildingUnknown = "BD_Unknown"

	// Manual production stations. Always classified as manufacturers
	// regardless of their metadata.
	BuildingWorkbench = "BD_WorkBench"
	BuildingWorkshop  = "BD_Workshop"

	// CategoryManufacturers is the build-menu category carried by crafting
	// buildings, including the synthetic Unknown building.
	CategoryManufacturers = "SC_Manufacturers_C"
)

// NewUnknownBuilding returns the placeholder building synthesized for
// recipes whose producer cannot be resolved. Downstream power and speed
// math must never divide by zero because of it.
func NewUnknownBuilding() *Building {
	return &Building{
		ClassName:   BuildingUnknown,
		Slug:        "unknown",
		Name:        "Unknown",
		Description: "Placeholder for recipes with no known producer",
		Categories:  []string{CategoryManufacturers},
		Metadata: BuildingMetadata{
			PowerConsumption:         0,
			PowerConsumptionExponent: 1.6,
			ManufacturingSpeed:       1.0,
		},
	}
}
