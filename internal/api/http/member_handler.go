package http

import (
	"errors"
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"

	"github.com/gorilla/mux"
)

type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

func (h *MemberHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberSvc.ListMembers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list members")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

type memberProfileResponse struct {
	Profile *domain.Profile `json:"profile"`
	Role    domain.Role     `json:"role"`
}

func (h *MemberHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	profile, role, err := h.memberSvc.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, memberProfileResponse{Profile: profile, Role: role})
}
