package catalog

import "github.com/skarn-dev/rupture-planner/internal/domain"

// Building classification. Miners and generators are explicit
// sub-collections in the snapshot, not inferred from a type field. The
// three predicates are mutually exclusive for any building: miner wins
// over generator, and manufacturer excludes both.

// IsMiner reports whether the building is an extractor.
func (c *Catalog) IsMiner(building *domain.Building) bool {
	if building == nil {
		return false
	}
	_, ok := c.data.Miners[building.ClassName]
	return ok
}

// IsGenerator reports whether the building produces power.
func (c *Catalog) IsGenerator(building *domain.Building) bool {
	if building == nil || c.IsMiner(building) {
		return false
	}
	_, ok := c.data.Generators[building.ClassName]
	return ok
}

// IsManualManufacturer reports whether the building is one of the two
// hand-crafting stations that are always treated as manufacturers
// regardless of metadata.
func (c *Catalog) IsManualManufacturer(building *domain.Building) bool {
	if building == nil {
		return false
	}
	return building.ClassName == domain.BuildingWorkbench ||
		building.ClassName == domain.BuildingWorkshop
}

// IsManufacturer reports whether the building runs recipes.
func (c *Catalog) IsManufacturer(building *domain.Building) bool {
	if building == nil {
		return false
	}
	if c.IsMiner(building) || c.IsGenerator(building) {
		return false
	}
	if c.IsManualManufacturer(building) {
		return true
	}
	return building.Metadata.ManufacturingSpeed != 0
}
