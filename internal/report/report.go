// Package report derives the final production report from a finished
// graph: building counts and cost, item balances, raw-resource usage,
// power totals and unlock requirements.
package report

import "github.com/skarn-dev/rupture-planner/internal/graph"

// ItemRate is a display-ready (item, rate-per-minute) pair.
type ItemRate struct {
	Item   string  `json:"item"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Contribution is one producer's or consumer's share of an item flow.
// Percentage is computed against the item's own produced or consumed
// total, not any global figure.
type Contribution struct {
	NodeID     int     `json:"nodeId"`
	Source     string  `json:"source"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// ItemBalance is the per-item production/consumption ledger. Diff is
// produced minus consumed; positive means surplus leaving the chain.
type ItemBalance struct {
	Item      string         `json:"item"`
	Name      string         `json:"name"`
	Produced  float64        `json:"produced"`
	Consumed  float64        `json:"consumed"`
	Diff      float64        `json:"diff"`
	Producers []Contribution `json:"producers,omitempty"`
	Consumers []Contribution `json:"consumers,omitempty"`
}

// BuildingRecipeUsage is one recipe's independent claim on a building
// type. Recipes sharing a building type never pool machine instances.
type BuildingRecipeUsage struct {
	Recipe     string      `json:"recipe"`
	Name       string      `json:"name"`
	Amount     int         `json:"amount"`
	Multiplier float64     `json:"multiplier"`
	ClockSpeed float64     `json:"clockSpeed"`
	Power      graph.Power `json:"power"`
}

// BuildingUsage aggregates all machines of one building class, the
// per-recipe breakdown, and the construction cost of that many machines.
type BuildingUsage struct {
	Building string                `json:"building"`
	Name     string                `json:"name"`
	Amount   int                   `json:"amount"`
	Recipes  []BuildingRecipeUsage `json:"recipes"`
	Cost     []ItemRate            `json:"cost,omitempty"`
	Power    graph.Power           `json:"power"`
}

// InputUsage reports consumption of an externally supplied input item
// against its declared cap. ProducedExtra is the rate the chain itself
// produces on top of the external supply.
type InputUsage struct {
	Item           string  `json:"item"`
	Name           string  `json:"name"`
	Used           float64 `json:"used"`
	Max            float64 `json:"max"`
	UsedPercentage float64 `json:"usedPercentage"`
	ProducedExtra  float64 `json:"producedExtra,omitempty"`
}

// RawResourceUsage reports extraction of one raw resource against the
// world cap. UsedPercentage may exceed 100; caps are a reporting overlay,
// not a solver constraint.
type RawResourceUsage struct {
	Item           string  `json:"item"`
	Name           string  `json:"name"`
	Enabled        bool    `json:"enabled"`
	Cap            float64 `json:"cap"`
	Used           float64 `json:"used"`
	UsedPercentage float64 `json:"usedPercentage"`
}

// PowerEntry is the power draw attributed to one recipe or building class.
type PowerEntry struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Power graph.Power `json:"power"`
}

// PowerReport breaks total power down by recipe and by building class.
type PowerReport struct {
	ByRecipe   []PowerEntry `json:"byRecipe"`
	ByBuilding []PowerEntry `json:"byBuilding"`
	Total      graph.Power  `json:"total"`
}

// Unlock requirement kinds. Recipes are gated by schematics, buildings by
// corporation levels.
const (
	UnlockTypeRecipe   = "recipe"
	UnlockTypeBuilding = "building"
)

// UnlockRequirement is one progression gate standing before the plan.
type UnlockRequirement struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level,omitempty"`
}

// Report is the full production report, shaped for direct template
// binding: the renderer only formats numbers and resolves icons.
type Report struct {
	Buildings          []BuildingUsage     `json:"buildings"`
	Items              []ItemBalance       `json:"items"`
	Input              []InputUsage        `json:"input,omitempty"`
	RawResources       []RawResourceUsage  `json:"rawResources"`
	Output             []ItemRate          `json:"output"`
	Byproducts         []ItemRate          `json:"byproducts,omitempty"`
	Power              PowerReport         `json:"power"`
	UnlockRequirements []UnlockRequirement `json:"unlockRequirements,omitempty"`
}
