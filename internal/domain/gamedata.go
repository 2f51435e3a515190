package domain

// GameData is the normalized game-data snapshot as loaded from disk.
// All maps are keyed by stable class ids. A snapshot is immutable after
// loading; version switches replace the whole value atomically.
type GameData struct {
	Version      string                  `json:"version,omitempty"`
	Items        map[string]*Item        `json:"items"`
	Recipes      map[string]*Recipe      `json:"recipes"`
	Buildings    map[string]*Building    `json:"buildings"`
	Miners       map[string]*Miner       `json:"miners"`
	Generators   map[string]*Generator   `json:"generators"`
	Resources    map[string]*Resource    `json:"resources"`
	Schematics   map[string]*Schematic   `json:"schematics"`
	Corporations map[string]*Corporation `json:"corporations,omitempty"`
	ResourceCaps map[string]float64      `json:"resourceCaps,omitempty"`
}
