package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarn-dev/rupture-planner/internal/domain"
)

func testBuilding(power float64) *domain.Building {
	return &domain.Building{
		ClassName: "BD_Smelter",
		Name:      "Smelter",
		Metadata:  domain.BuildingMetadata{PowerConsumption: power, ManufacturingSpeed: 1},
	}
}

func TestNewMachineGroup(t *testing.T) {
	t.Run("fractional multiplier under one yields single partial machine", func(t *testing.T) {
		group := NewMachineGroup(testBuilding(4), 0.33, 100)
		require.Len(t, group.Machines, 1)
		assert.InEpsilon(t, 33.0, group.Machines[0].ClockSpeed, 1e-9)
		assert.Equal(t, 1, group.CountMachines())
	})

	t.Run("multiplier 2.5 splits into two full and one half machine", func(t *testing.T) {
		group := NewMachineGroup(testBuilding(4), 2.5, 100)
		require.Len(t, group.Machines, 3)
		assert.InEpsilon(t, 100.0, group.Machines[0].ClockSpeed, 1e-9)
		assert.InEpsilon(t, 100.0, group.Machines[1].ClockSpeed, 1e-9)
		assert.InEpsilon(t, 50.0, group.Machines[2].ClockSpeed, 1e-9)

		// Summed clock speeds conserve throughput: 2.5 machine-equivalents.
		var total float64
		for _, m := range group.Machines {
			total += m.ClockSpeed
		}
		assert.InEpsilon(t, 250.0, total, 1e-9)
	})

	t.Run("whole multiplier has no partial machine", func(t *testing.T) {
		group := NewMachineGroup(testBuilding(4), 3, 100)
		assert.Equal(t, 3, group.CountMachines())
	})

	t.Run("underclocked power follows the exponent curve", func(t *testing.T) {
		group := NewMachineGroup(testBuilding(100), 0.5, 100)
		want := 100 * math.Pow(0.5, 1.6)
		assert.InDelta(t, want, group.Power.Average, 1e-9)
		assert.InDelta(t, want, group.Power.Max, 1e-9)
		assert.False(t, group.Power.IsVariable)
	})

	t.Run("variable power building reports average and max", func(t *testing.T) {
		building := &domain.Building{
			ClassName: "BD_Refinery",
			Metadata: domain.BuildingMetadata{
				IsVariablePower:     true,
				MinPowerConsumption: 20,
				MaxPowerConsumption: 100,
			},
		}
		group := NewMachineGroup(building, 1, 100)
		assert.InEpsilon(t, 60.0, group.Power.Average, 1e-9)
		assert.InEpsilon(t, 100.0, group.Power.Max, 1e-9)
		assert.True(t, group.Power.IsVariable)
	})

	t.Run("unknown building draws no power", func(t *testing.T) {
		group := NewMachineGroup(domain.NewUnknownBuilding(), 2.5, 100)
		assert.Zero(t, group.Power.Average)
		assert.Zero(t, group.Power.Max)
		assert.False(t, group.Power.IsVariable)
	})
}
