package handler

import (
	"encoding/json"
	"net/http"

	"github.com/skarn-dev/rupture-planner/internal/domain"
	"github.com/skarn-dev/rupture-planner/internal/logger"
	"github.com/skarn-dev/rupture-planner/internal/planner"
)

// HandlePlan computes a production plan for the posted request.
func HandlePlan(service planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var request domain.PlanRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		result, err := service.Plan(r.Context(), &request)
		if err != nil {
			status, message := mapServiceErrorToUserMessage(err)
			if status >= http.StatusInternalServerError {
				log.Error("Plan computation failed", "error", err)
			} else {
				log.Warn("Plan request rejected", "error", err)
			}
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
