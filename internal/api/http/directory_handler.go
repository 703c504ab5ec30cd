package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"

	"github.com/gorilla/mux"
)

// DirectoryHandler serves the dashboard CRUD surface for projects,
// classes, events and semesters.
type DirectoryHandler struct {
	dirSvc    service.DirectoryService
	memberSvc service.MemberService
}

func NewDirectoryHandler(dirSvc service.DirectoryService, memberSvc service.MemberService) *DirectoryHandler {
	return &DirectoryHandler{dirSvc: dirSvc, memberSvc: memberSvc}
}

// requireBoard gates mutating directory routes. The role is resolved at
// request time, not captured at construction.
func (h *DirectoryHandler) requireBoard(w http.ResponseWriter, r *http.Request) bool {
	role, err := h.memberSvc.GetRole(r.Context(), CallerID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to resolve caller role")
		return false
	}
	if !role.CanReview() {
		writeError(w, http.StatusForbidden, "Board access required")
		return false
	}
	return true
}

func (h *DirectoryHandler) serviceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// --- Projects ---

func (h *DirectoryHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	var p domain.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.dirSvc.CreateProject(r.Context(), &p); err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

type projectResponse struct {
	Project *domain.Project        `json:"project"`
	Members []domain.ProjectMember `json:"members"`
}

func (h *DirectoryHandler) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	project, members, err := h.dirSvc.GetProject(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectResponse{Project: project, Members: members})
}

func (h *DirectoryHandler) HandleUpdateProject(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	var p domain.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	p.ID = mux.Vars(r)["id"]
	if err := h.dirSvc.UpdateProject(r.Context(), &p); err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *DirectoryHandler) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	if err := h.dirSvc.DeleteProject(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DirectoryHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.dirSvc.ListProjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// --- Classes ---

func (h *DirectoryHandler) HandleCreateClass(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	var c domain.Class
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.dirSvc.CreateClass(r.Context(), &c); err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

type classResponse struct {
	Class       *domain.Class            `json:"class"`
	Enrollments []domain.ClassEnrollment `json:"enrollments"`
}

func (h *DirectoryHandler) HandleGetClass(w http.ResponseWriter, r *http.Request) {
	class, enrollments, err := h.dirSvc.GetClass(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, classResponse{Class: class, Enrollments: enrollments})
}

func (h *DirectoryHandler) HandleUpdateClass(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	var c domain.Class
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	c.ID = mux.Vars(r)["id"]
	if err := h.dirSvc.UpdateClass(r.Context(), &c); err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *DirectoryHandler) HandleDeleteClass(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	if err := h.dirSvc.DeleteClass(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DirectoryHandler) HandleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.dirSvc.ListClasses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list classes")
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

// --- Events ---

func (h *DirectoryHandler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	var e domain.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.dirSvc.CreateEvent(r.Context(), &e); err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *DirectoryHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.dirSvc.GetEvent(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *DirectoryHandler) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	var e domain.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	e.ID = mux.Vars(r)["id"]
	if err := h.dirSvc.UpdateEvent(r.Context(), &e); err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *DirectoryHandler) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	if err := h.dirSvc.DeleteEvent(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRecordAttendance checks the caller in to an event. Any member
// can record their own attendance.
func (h *DirectoryHandler) HandleRecordAttendance(w http.ResponseWriter, r *http.Request) {
	if err := h.dirSvc.RecordAttendance(r.Context(), mux.Vars(r)["id"], CallerID(r)); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DirectoryHandler) HandleListAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.dirSvc.ListAttendance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list attendance")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *DirectoryHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.dirSvc.ListEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// --- Semesters ---

func (h *DirectoryHandler) HandleCreateSemester(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	var s domain.Semester
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.dirSvc.CreateSemester(r.Context(), &s); err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *DirectoryHandler) HandleGetSemester(w http.ResponseWriter, r *http.Request) {
	sem, err := h.dirSvc.GetSemester(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sem)
}

func (h *DirectoryHandler) HandleUpdateSemester(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	var s domain.Semester
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.ID = mux.Vars(r)["id"]
	if err := h.dirSvc.UpdateSemester(r.Context(), &s); err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *DirectoryHandler) HandleDeleteSemester(w http.ResponseWriter, r *http.Request) {
	if !h.requireBoard(w, r) {
		return
	}
	if err := h.dirSvc.DeleteSemester(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DirectoryHandler) HandleListSemesters(w http.ResponseWriter, r *http.Request) {
	semesters, err := h.dirSvc.ListSemesters(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list semesters")
		return
	}
	writeJSON(w, http.StatusOK, semesters)
}
