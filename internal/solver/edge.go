package solver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EdgeKind discriminates the entries of an edge map.
type EdgeKind int

// Edge kinds. KindRecipe values are production multipliers; all other
// kinds carry rates in items per minute.
const (
	KindRecipe EdgeKind = iota
	KindMine
	KindProduct
	KindByproduct
	KindInput
	KindSink
)

// EdgeKey identifies one entry of a resolver result. It replaces the
// legacy "<recipe>@<clock>#<building>" string keys with a comparable
// struct while keeping the exact aggregation-by-key semantics: each
// distinct (recipe, building) pair owns its own key, and building
// instances are never shared across recipes.
type EdgeKey struct {
	Kind       EdgeKind
	Item       string  // Mine/Product/Byproduct/Input/Sink kinds
	Recipe     string  // KindRecipe only
	Building   string  // KindRecipe only
	ClockSpeed float64 // KindRecipe only, percent
}

// RecipeKey builds the key for a (recipe, building, clock) production edge.
func RecipeKey(recipeClass, buildingClass string, clockSpeed float64) EdgeKey {
	return EdgeKey{Kind: KindRecipe, Recipe: recipeClass, Building: buildingClass, ClockSpeed: clockSpeed}
}

// MineKey builds the key for a raw-extraction edge.
func MineKey(itemClass string) EdgeKey {
	return EdgeKey{Kind: KindMine, Item: itemClass}
}

// ProductKey builds the key for a declared-output edge.
func ProductKey(itemClass string) EdgeKey {
	return EdgeKey{Kind: KindProduct, Item: itemClass}
}

// String renders the key in the legacy wire format, which tests and logs
// still use.
func (k EdgeKey) String() string {
	switch k.Kind {
	case KindRecipe:
		return fmt.Sprintf("%s@%s#%s", k.Recipe, strconv.FormatFloat(k.ClockSpeed, 'f', -1, 64), k.Building)
	case KindMine:
		return k.Item + "#Mine"
	case KindProduct:
		return k.Item + "#Product"
	case KindByproduct:
		return k.Item + "#Byproduct"
	case KindInput:
		return k.Item + "#Input"
	case KindSink:
		return k.Item + "#Sink"
	default:
		return k.Item + "#?"
	}
}

// ParseKey parses the legacy wire format back into an EdgeKey. Recipe keys
// look like "<recipe>@<clock>#<building>"; every other kind is
// "<item>#<Suffix>".
func ParseKey(s string) (EdgeKey, error) {
	head, tail, ok := strings.Cut(s, "#")
	if !ok {
		return EdgeKey{}, fmt.Errorf("edge key %q has no node-type suffix", s)
	}

	switch tail {
	case "Mine":
		return MineKey(head), nil
	case "Product":
		return ProductKey(head), nil
	case "Byproduct":
		return EdgeKey{Kind: KindByproduct, Item: head}, nil
	case "Input":
		return EdgeKey{Kind: KindInput, Item: head}, nil
	case "Sink":
		return EdgeKey{Kind: KindSink, Item: head}, nil
	}

	recipeClass, clock, ok := strings.Cut(head, "@")
	if !ok {
		return EdgeKey{}, fmt.Errorf("edge key %q is neither typed nor a recipe key", s)
	}
	clockSpeed, err := strconv.ParseFloat(clock, 64)
	if err != nil {
		return EdgeKey{}, fmt.Errorf("edge key %q has invalid clock speed: %w", s, err)
	}
	return RecipeKey(recipeClass, tail, clockSpeed), nil
}

// EdgeMap is the flat resolver result: edge key to production multiplier
// (recipe edges) or rate per minute (all other edges).
type EdgeMap map[EdgeKey]float64

// Add accumulates a value onto a key.
func (m EdgeMap) Add(key EdgeKey, value float64) {
	m[key] += value
}

// Merge sums every entry of other into m.
func (m EdgeMap) Merge(other EdgeMap) {
	for key, value := range other {
		m[key] += value
	}
}

// SortedKeys returns the keys in a stable order (by wire representation),
// for deterministic hashing and test output.
func (m EdgeMap) SortedKeys() []EdgeKey {
	keys := make([]EdgeKey, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
