package http

import (
	"encoding/json"
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// DecisionHandler exposes the application decision orchestrator.
type DecisionHandler struct {
	decisionSvc service.DecisionService
}

func NewDecisionHandler(decisionSvc service.DecisionService) *DecisionHandler {
	return &DecisionHandler{decisionSvc: decisionSvc}
}

type decideRequest struct {
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
}

type decideResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleDecide accepts or rejects an application. Any error before or
// during the status commit is a 400; once the commit succeeds the caller
// sees success even if downstream provisioning partially failed.
func (h *DecisionHandler) HandleDecide(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ApplicationID == "" {
		writeError(w, http.StatusBadRequest, "application_id is required")
		return
	}

	status := domain.ApplicationStatus(req.Status)
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		writeError(w, http.StatusBadRequest, "status must be \"accepted\" or \"rejected\"")
		return
	}

	message, err := h.decisionSvc.Decide(r.Context(), CallerID(r), req.ApplicationID, status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, decideResponse{Success: true, Message: message})
}
