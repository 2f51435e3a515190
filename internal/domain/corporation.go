package domain

// CorporationReward is a single reward entry in a corporation level.
// Exactly one of Item/Building/BuildingCollection is set.
type CorporationReward struct {
	Item               string `json:"item,omitempty"`
	Building           string `json:"building,omitempty"`
	BuildingCollection string `json:"buildingCollection,omitempty"`
	Amount             int    `json:"amount,omitempty"`
}

// CorporationLevel is one reputation tier of a corporation and the rewards
// it grants on reaching it.
type CorporationLevel struct {
	Level                     int                 `json:"level"`
	ReputationRequired        float64             `json:"reputationRequired"`
	ItemRewards               []CorporationReward `json:"itemRewards,omitempty"`
	BuildingRewards           []CorporationReward `json:"buildingRewards,omitempty"`
	BuildingCollectionRewards []CorporationReward `json:"buildingCollectionRewards,omitempty"`
	FeatureRewards            []string            `json:"featureRewards,omitempty"`
	InventorySlotRewards      int                 `json:"inventorySlotRewards,omitempty"`
}

// Corporation represents a progression-gating corporation with ordered
// reputation levels.
type Corporation struct {
	ClassName   string             `json:"className"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	DisplayText string             `json:"displayText,omitempty"`
	Icon        string             `json:"icon,omitempty"`
	Index       int                `json:"corporationIndex,omitempty"`
	Hidden      bool               `json:"hidden,omitempty"`
	Levels      []CorporationLevel `json:"levels,omitempty"`
}

// CorporationUnlock points at the corporation level that rewards a given
// building or item.
type CorporationUnlock struct {
	Corporation *Corporation `json:"corporation"`
	Level       int          `json:"level"`
}
