package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgItemNotFound        = "item not found"
	ErrMsgRecipeNotFound      = "recipe not found"
	ErrMsgBuildingNotFound    = "building not found"
	ErrMsgSchematicNotFound   = "schematic not found"
	ErrMsgCorporationNotFound = "corporation not found"

	ErrMsgRecipeCycle     = "recipe graph contains a cycle"
	ErrMsgCatalogNotReady = "catalog is not ready"
	ErrMsgInvalidRequest  = "invalid request"
	ErrMsgInvalidSnapshot = "invalid game-data snapshot"
)

// Common domain errors.
// Lookup misses are expected outcomes and are modeled as nil/absent results;
// these sentinels exist for the HTTP boundary and the few genuinely fatal
// states (cycle detection, half-loaded catalog).
// Wrap with fmt.Errorf("%w: detail", domain.ErrXxx) for additional context.
var (
	ErrItemNotFound        = errors.New(ErrMsgItemNotFound)
	ErrRecipeNotFound      = errors.New(ErrMsgRecipeNotFound)
	ErrBuildingNotFound    = errors.New(ErrMsgBuildingNotFound)
	ErrSchematicNotFound   = errors.New(ErrMsgSchematicNotFound)
	ErrCorporationNotFound = errors.New(ErrMsgCorporationNotFound)

	ErrRecipeCycle     = errors.New(ErrMsgRecipeCycle)
	ErrCatalogNotReady = errors.New(ErrMsgCatalogNotReady)
	ErrInvalidRequest  = errors.New(ErrMsgInvalidRequest)
	ErrInvalidSnapshot = errors.New(ErrMsgInvalidSnapshot)
)
