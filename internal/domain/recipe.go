package domain

// Recipe represents a production recipe. The first product is the primary
// one for building-count purposes. ProducedIn may be empty; the resolver
// tolerates recipes with no known producer.
type Recipe struct {
	ClassName            string       `json:"className"`
	Slug                 string       `json:"slug"`
	Name                 string       `json:"name"`
	Alternate            bool         `json:"alternate"`
	Time                 float64      `json:"time"` // seconds at 100% clock
	InHand               bool         `json:"inHand"`
	InWorkshop           bool         `json:"inWorkshop"`
	InMachine            bool         `json:"inMachine"`
	ForBuilding          bool         `json:"forBuilding"`
	ManualTimeMultiplier float64      `json:"manualTimeMultiplier,omitempty"`
	Ingredients          []ItemAmount `json:"ingredients"`
	Products             []ItemAmount `json:"products"`
	ProducedIn           []string     `json:"producedIn"`
}

// ProductAmount returns the per-cycle output amount of the given item
// class, or 0 if the recipe does not produce it.
func (r *Recipe) ProductAmount(itemClass string) float64 {
	for _, p := range r.Products {
		if p.Item == itemClass {
			return p.Amount
		}
	}
	return 0
}

// Produces reports whether the recipe has the item class in its product list.
func (r *Recipe) Produces(itemClass string) bool {
	return r.ProductAmount(itemClass) > 0
}

// PrimaryProduct returns the first product, or a zero ItemAmount for a
// malformed recipe with no products.
func (r *Recipe) PrimaryProduct() ItemAmount {
	if len(r.Products) == 0 {
		return ItemAmount{}
	}
	return r.Products[0]
}
