package domain

// SchematicUnlock lists everything a schematic grants once researched.
type SchematicUnlock struct {
	Recipes          []string     `json:"recipes"`
	Buildings        []string     `json:"buildings,omitempty"`
	ScannerResources []string     `json:"scannerResources,omitempty"`
	InventorySlots   int          `json:"inventorySlots,omitempty"`
	GiveItems        []ItemAmount `json:"giveItems,omitempty"`
}

// Schematic represents a blueprint/research unlock from the data snapshot.
type Schematic struct {
	ClassName          string          `json:"className"`
	Slug               string          `json:"slug"`
	Name               string          `json:"name"`
	Type               string          `json:"type"`
	Description        string          `json:"description,omitempty"`
	Cost               []ItemAmount    `json:"cost"`
	UnlockRequirements []ItemAmount    `json:"unlockRequirements,omitempty"`
	Unlock             SchematicUnlock `json:"unlock"`
	RequiredSchematics []string        `json:"requiredSchematics"`
	Tier               int             `json:"tier"`
	Level              int             `json:"level,omitempty"`
	Time               float64         `json:"time,omitempty"`
	Alternate          bool            `json:"alternate"`
	Corporation        string          `json:"corporation,omitempty"`
	OutputItem         *ItemAmount     `json:"outputItem,omitempty"`
}

// UnlocksRecipe reports whether the schematic grants the given recipe.
func (s *Schematic) UnlocksRecipe(recipeClass string) bool {
	for _, r := range s.Unlock.Recipes {
		if r == recipeClass {
			return true
		}
	}
	return false
}
