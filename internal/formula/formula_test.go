package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skarn-dev/rupture-planner/internal/domain"
)

const epsilon = 1e-9

func TestProductionTime(t *testing.T) {
	recipe := &domain.Recipe{Time: 4}

	t.Run("nominal clock leaves recipe time unchanged", func(t *testing.T) {
		assert.InDelta(t, 4.0, ProductionTime(recipe, 100), epsilon)
	})

	t.Run("halved clock doubles production time", func(t *testing.T) {
		assert.InDelta(t, 8.0, ProductionTime(recipe, 50), epsilon)
	})

	t.Run("overclock shortens production time", func(t *testing.T) {
		assert.InDelta(t, 2.0, ProductionTime(recipe, 200), epsilon)
	})

	t.Run("zero clock returns zero instead of Inf", func(t *testing.T) {
		assert.Equal(t, 0.0, ProductionTime(recipe, 0))
	})
}

func TestPowerConsumption(t *testing.T) {
	t.Run("exponent curve at half clock", func(t *testing.T) {
		// base 100 MW, exponent 1.6, 50% clock => 100 * 0.5^1.6
		building := &domain.Building{Metadata: domain.BuildingMetadata{
			PowerConsumption:         100,
			PowerConsumptionExponent: 1.6,
		}}
		expected := 100 * math.Pow(0.5, 1.6)
		got := PowerConsumption(building, 50)
		assert.InDelta(t, expected, got, epsilon)
		assert.InDelta(t, 32.99, got, 0.01)
	})

	t.Run("missing exponent defaults to 1.6", func(t *testing.T) {
		building := &domain.Building{Metadata: domain.BuildingMetadata{PowerConsumption: 100}}
		assert.InDelta(t, 100*math.Pow(0.5, 1.6), PowerConsumption(building, 50), epsilon)
	})

	t.Run("nominal clock draws base power", func(t *testing.T) {
		building := &domain.Building{Metadata: domain.BuildingMetadata{PowerConsumption: 30}}
		assert.InDelta(t, 30.0, PowerConsumption(building, 100), epsilon)
	})

	t.Run("zero-power placeholder building draws nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, PowerConsumption(domain.NewUnknownBuilding(), 150))
	})
}

func TestExtractionRatePerMinute(t *testing.T) {
	miner := &domain.Miner{ItemsPerCycle: 1, ExtractCycleTime: 1}

	tests := []struct {
		name   string
		purity Purity
		want   float64
	}{
		{"impure halves the rate", PurityImpure, 30},
		{"normal keeps the rate", PurityNormal, 60},
		{"pure doubles the rate", PurityPure, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExtractionRatePerMinute(miner, tt.purity), epsilon)
		})
	}

	t.Run("zero cycle time returns zero instead of Inf", func(t *testing.T) {
		broken := &domain.Miner{ItemsPerCycle: 1, ExtractCycleTime: 0}
		assert.Equal(t, 0.0, ExtractionRatePerMinute(broken, PurityNormal))
	})
}

func TestProductRatePerMinute(t *testing.T) {
	t.Run("scenario from the wiki: 2 units every 4 seconds", func(t *testing.T) {
		recipe := &domain.Recipe{Time: 4}
		// (60/4) * 2 * 1.0 = 30/min
		assert.InDelta(t, 30.0, ProductRatePerMinute(recipe, 2, 100), epsilon)
	})

	t.Run("clock speed scales linearly", func(t *testing.T) {
		recipe := &domain.Recipe{Time: 4}
		assert.InDelta(t, 15.0, ProductRatePerMinute(recipe, 2, 50), epsilon)
		assert.InDelta(t, 60.0, ProductRatePerMinute(recipe, 2, 200), epsilon)
	})

	t.Run("zero recipe time returns zero instead of Inf", func(t *testing.T) {
		recipe := &domain.Recipe{Time: 0}
		assert.Equal(t, 0.0, ProductRatePerMinute(recipe, 2, 100))
	})
}

func TestFuelConsumptionPerMinute(t *testing.T) {
	generator := &domain.Generator{PowerProduction: 75}

	t.Run("burn rate from energy value", func(t *testing.T) {
		fuel := &domain.Item{EnergyValue: 300}
		// (75/300)*60 = 15/min at 100%
		assert.InDelta(t, 15.0, FuelConsumptionPerMinute(generator, fuel, 100), epsilon)
		assert.InDelta(t, 7.5, FuelConsumptionPerMinute(generator, fuel, 50), epsilon)
	})

	t.Run("non-fuel item burns nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, FuelConsumptionPerMinute(generator, &domain.Item{}, 100))
		assert.Equal(t, 0.0, FuelConsumptionPerMinute(generator, nil, 100))
	})
}

func TestGeneratorPowerCapacity(t *testing.T) {
	generator := &domain.Generator{PowerProduction: 150, PowerProductionExponent: 1.3}

	t.Run("nominal clock produces base power", func(t *testing.T) {
		assert.InDelta(t, 150.0, GeneratorPowerCapacity(generator, 100), epsilon)
	})

	t.Run("overclock follows inverse exponent", func(t *testing.T) {
		expected := 150 * math.Pow(2.5, 1/1.3)
		assert.InDelta(t, expected, GeneratorPowerCapacity(generator, 250), epsilon)
	})
}

func TestGeneratorWaterConsumptionPerMinute(t *testing.T) {
	generator := &domain.Generator{
		PowerProduction:         150,
		PowerProductionExponent: 1.3,
		WaterToPowerRatio:       300,
	}
	// 60 * 150 * 300 / 1000 = 2700 at 100%
	assert.InDelta(t, 2700.0, GeneratorWaterConsumptionPerMinute(generator, 100), epsilon)
}

func TestFormulasAreDeterministic(t *testing.T) {
	building := &domain.Building{Metadata: domain.BuildingMetadata{PowerConsumption: 42.5, PowerConsumptionExponent: 1.6}}
	recipe := &domain.Recipe{Time: 3.5}

	for i := 0; i < 3; i++ {
		assert.Equal(t, PowerConsumption(building, 133), PowerConsumption(building, 133))
		assert.Equal(t, ProductRatePerMinute(recipe, 1.5, 77), ProductRatePerMinute(recipe, 1.5, 77))
	}
}
