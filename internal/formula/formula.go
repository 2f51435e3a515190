// Package formula holds the pure balance math of the game: production
// time, power draw, extraction and fuel rates. No state, no I/O.
package formula

import (
	"math"

	"github.com/skarn-dev/rupture-planner/internal/domain"
)

// Purity is the quality tier of a raw resource node.
type Purity string

// Resource purity tiers.
const (
	PurityImpure Purity = "impure"
	PurityNormal Purity = "normal"
	PurityPure   Purity = "pure"
)

// Balance constants.
const (
	DefaultClock         = 100.0
	DefaultPowerExponent = 1.6

	MultiplierImpure = 0.5
	MultiplierNormal = 1.0
	MultiplierPure   = 2.0
)

// PurityMultiplier returns the fixed extraction multiplier for a tier.
// Unknown tiers fall back to normal.
func PurityMultiplier(purity Purity) float64 {
	switch purity {
	case PurityImpure:
		return MultiplierImpure
	case PurityPure:
		return MultiplierPure
	default:
		return MultiplierNormal
	}
}

// ProductionTime returns the realized seconds per cycle at the given clock
// speed percent. Recipe time is already the realized time at 100%; building
// manufacturing speed deliberately does not factor in.
func ProductionTime(recipe *domain.Recipe, clockSpeed float64) float64 {
	if clockSpeed <= 0 {
		return 0
	}
	return (DefaultClock / clockSpeed) * recipe.Time
}

// PowerConsumption returns the MW draw of one building instance at the
// given clock speed percent.
func PowerConsumption(building *domain.Building, clockSpeed float64) float64 {
	exponent := building.Metadata.PowerConsumptionExponent
	if exponent == 0 {
		exponent = DefaultPowerExponent
	}
	return math.Pow(clockSpeed/DefaultClock, exponent) * building.Metadata.PowerConsumption
}

// ExtractionRatePerMinute returns items/min extracted by one miner on a
// node of the given purity.
func ExtractionRatePerMinute(miner *domain.Miner, purity Purity) float64 {
	if miner.ExtractCycleTime <= 0 {
		return 0
	}
	itemsPerMinute := (miner.ItemsPerCycle / miner.ExtractCycleTime) * 60
	return itemsPerMinute * PurityMultiplier(purity)
}

// ProductRatePerMinute returns items/min of one product of a recipe run in
// a single building at the given clock speed percent. Building speed is not
// a factor; recipe time already encodes the realized cycle.
func ProductRatePerMinute(recipe *domain.Recipe, outputAmount, clockSpeed float64) float64 {
	if recipe.Time <= 0 {
		return 0
	}
	return (60 / recipe.Time) * outputAmount * (clockSpeed / DefaultClock)
}

// FuelConsumptionPerMinute returns fuel items/min burned by one generator
// at the given clock speed percent.
func FuelConsumptionPerMinute(generator *domain.Generator, fuel *domain.Item, clockSpeed float64) float64 {
	if fuel == nil || fuel.EnergyValue <= 0 {
		return 0
	}
	return ((generator.PowerProduction / fuel.EnergyValue) * 60) * clockSpeed / DefaultClock
}

// GeneratorPowerCapacity returns the MW produced by one generator at the
// given clock speed percent.
func GeneratorPowerCapacity(generator *domain.Generator, clockSpeed float64) float64 {
	exponent := generator.PowerProductionExponent
	if exponent == 0 {
		exponent = DefaultPowerExponent
	}
	return generator.PowerProduction * math.Pow(clockSpeed/DefaultClock, 1/exponent)
}

// GeneratorWaterConsumptionPerMinute returns m3/min of water consumed by
// one water-cooled generator at the given clock speed percent.
func GeneratorWaterConsumptionPerMinute(generator *domain.Generator, clockSpeed float64) float64 {
	return (60 * (GeneratorPowerCapacity(generator, clockSpeed) * generator.WaterToPowerRatio)) / 1000
}
