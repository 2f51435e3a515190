// Package handler exposes the HTTP API: production planning, catalog
// browsing and operational endpoints.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/skarn-dev/rupture-planner/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgNotFoundError       = "Resource not found."

	ErrMsgCatalogNotReadyError = "Game data is still loading. Please try again shortly."
	ErrMsgRecipeCycleError     = "Could not compute a plan: the recipe data contains a cycle."
	ErrMsgInvalidSnapshotError = "Game data snapshot is invalid."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Lookup misses never reach this path; they are nil results,
// not errors.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrCatalogNotReady):
		return http.StatusServiceUnavailable, ErrMsgCatalogNotReadyError
	case errors.Is(err, domain.ErrRecipeCycle):
		return http.StatusUnprocessableEntity, ErrMsgRecipeCycleError
	case errors.Is(err, domain.ErrInvalidSnapshot):
		return http.StatusBadRequest, ErrMsgInvalidSnapshotError
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrBuildingNotFound),
		errors.Is(err, domain.ErrSchematicNotFound),
		errors.Is(err, domain.ErrCorporationNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
