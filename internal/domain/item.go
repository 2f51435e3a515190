package domain

// ItemAmount pairs an item class id with a quantity. Used for recipe
// ingredients/products, schematic costs and building construction costs.
type ItemAmount struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// Item represents a single game item from the data snapshot.
// Items are immutable once loaded; the catalog owns them exclusively.
type Item struct {
	ClassName        string  `json:"className"`
	Slug             string  `json:"slug"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Icon             string  `json:"icon,omitempty"`
	StackSize        int     `json:"stackSize"`
	EnergyValue      float64 `json:"energyValue"`
	SinkPoints       float64 `json:"sinkPoints"`
	RadioactiveDecay float64 `json:"radioactiveDecay,omitempty"`
	Liquid           bool    `json:"liquid"`
}

// Resource marks an item as a raw extractable resource, with an optional
// world-wide extraction cap (0 means "no cap known").
type Resource struct {
	Item string  `json:"item"`
	Max  float64 `json:"max,omitempty"`
}
