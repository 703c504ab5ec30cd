package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"

	"github.com/gorilla/mux"
)

type ApplicationHandler struct {
	appSvc service.ApplicationService
}

func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

type submitApplicationRequest struct {
	ApplicationType string  `json:"application_type"`
	ProjectID       *string `json:"project_id,omitempty"`
	ClassID         *string `json:"class_id,omitempty"`
	BoardPosition   string  `json:"board_position,omitempty"`
	ProjectRole     string  `json:"project_role,omitempty"`
	ClassRole       string  `json:"class_role,omitempty"`
	Note            string  `json:"note,omitempty"`
}

func (h *ApplicationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app := &domain.Application{
		UserID:          CallerID(r),
		ApplicationType: domain.ApplicationType(req.ApplicationType),
		ProjectID:       req.ProjectID,
		ClassID:         req.ClassID,
		BoardPosition:   req.BoardPosition,
		ProjectRole:     req.ProjectRole,
		ClassRole:       req.ClassRole,
		Note:            req.Note,
	}

	created, err := h.appSvc.Submit(r.Context(), app)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	app, err := h.appSvc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load application")
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := domain.ApplicationStatus(r.URL.Query().Get("status"))
	apps, err := h.appSvc.List(r.Context(), status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	writeJSON(w, http.StatusOK, apps)
}
