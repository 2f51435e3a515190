package graph

import (
	"math"

	"github.com/skarn-dev/rupture-planner/internal/domain"
	"github.com/skarn-dev/rupture-planner/internal/formula"
)

// powerEpsilon separates genuinely variable power draw from floating-point
// noise between average and max.
const powerEpsilon = 1e-8

// Machine is one physical building instance running at a clock speed
// percent.
type Machine struct {
	ClockSpeed float64 `json:"clockSpeed"`
}

// Power summarizes the draw of a machine group.
type Power struct {
	Average    float64 `json:"average"`
	Max        float64 `json:"max"`
	IsVariable bool    `json:"isVariable"`
}

// MachineGroup converts a fractional production multiplier into whole
// building instances: full machines at the node's clock speed plus, when
// a fraction remains, one underclocked machine covering the rest. The
// split conserves throughput: the summed output of the instances at their
// clock speeds equals multiplier times nominal output.
type MachineGroup struct {
	Building   *domain.Building `json:"-"`
	Machines   []Machine        `json:"machines"`
	Power      Power            `json:"power"`
	ClockSpeed float64          `json:"clockSpeed"`
}

// NewMachineGroup splits the multiplier into machines and computes their
// combined power draw.
func NewMachineGroup(building *domain.Building, multiplier, clockSpeed float64) *MachineGroup {
	group := &MachineGroup{Building: building, ClockSpeed: clockSpeed}

	full := int(math.Floor(multiplier))
	rest := multiplier - float64(full)

	for i := 0; i < full; i++ {
		group.Machines = append(group.Machines, Machine{ClockSpeed: clockSpeed})
	}
	if rest > powerEpsilon {
		group.Machines = append(group.Machines, Machine{ClockSpeed: rest * clockSpeed})
	}

	for _, machine := range group.Machines {
		average, max := machinePower(building, machine.ClockSpeed)
		group.Power.Average += average
		group.Power.Max += max
	}
	if math.Abs(group.Power.Max-group.Power.Average) > powerEpsilon {
		group.Power.IsVariable = true
	}

	return group
}

// CountMachines returns the number of physical building instances.
func (g *MachineGroup) CountMachines() int {
	return len(g.Machines)
}

// machinePower returns (average, max) MW for one instance at a clock
// percent. Variable-power buildings draw between their min and max bounds;
// fixed-power buildings draw the base consumption curve on both.
func machinePower(building *domain.Building, clockSpeed float64) (float64, float64) {
	md := building.Metadata
	if md.IsVariablePower && md.MaxPowerConsumption > 0 {
		exponent := md.PowerConsumptionExponent
		if exponent == 0 {
			exponent = formula.DefaultPowerExponent
		}
		scale := math.Pow(clockSpeed/formula.DefaultClock, exponent)
		average := (md.MinPowerConsumption + md.MaxPowerConsumption) / 2 * scale
		return average, md.MaxPowerConsumption * scale
	}
	draw := formula.PowerConsumption(building, clockSpeed)
	return draw, draw
}
