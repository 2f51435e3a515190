package domain

// ProductionTarget is a single (item, rate-per-minute) pair in a plan
// request. Targets with an empty item or non-positive amount are skipped
// by the resolver, not rejected, so the struct carries no field-level
// validation.
type ProductionTarget struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// PlanRequest is the input to the production planner: desired outputs,
// externally supplied inputs with capped rates, per-resource extraction
// caps and the set of resources the player has blocked.
type PlanRequest struct {
	Production       []ProductionTarget `json:"production" validate:"required,min=1"`
	Input            []ProductionTarget `json:"input,omitempty"`
	ResourceMax      map[string]float64 `json:"resourceMax,omitempty"`
	BlockedResources []string           `json:"blockedResources,omitempty"`
}

// ResourceCap returns the requested cap for a resource class, falling back
// to the snapshot default when the request does not specify one.
func (r *PlanRequest) ResourceCap(resourceClass string, defaults map[string]float64) float64 {
	if v, ok := r.ResourceMax[resourceClass]; ok {
		return v
	}
	return defaults[resourceClass]
}

// IsBlocked reports whether the resource class is in the blocked set.
func (r *PlanRequest) IsBlocked(resourceClass string) bool {
	for _, b := range r.BlockedResources {
		if b == resourceClass {
			return true
		}
	}
	return false
}
