package http

import (
	"net/http"

	"clubhub-backend/internal/security"
	"clubhub-backend/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter wires the full HTTP API. Every /api route requires a bearer
// token; CORS preflight OPTIONS requests are answered before auth runs.
func NewRouter(
	tokens security.TokenManager,
	decisionSvc service.DecisionService,
	appSvc service.ApplicationService,
	memberSvc service.MemberService,
	dirSvc service.DirectoryService,
	allowedOrigins []string,
) http.Handler {
	decisionHandler := NewDecisionHandler(decisionSvc)
	appHandler := NewApplicationHandler(appSvc)
	memberHandler := NewMemberHandler(memberSvc)
	dirHandler := NewDirectoryHandler(dirSvc, memberSvc)

	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.Use(mux.MiddlewareFunc(AuthMiddleware(tokens)))

	api.HandleFunc("/applications/decide", decisionHandler.HandleDecide).Methods(http.MethodPost)

	api.HandleFunc("/applications", appHandler.HandleSubmit).Methods(http.MethodPost)
	api.HandleFunc("/applications", appHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/applications/{id}", appHandler.HandleGet).Methods(http.MethodGet)

	api.HandleFunc("/members", memberHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/members/{id}", memberHandler.HandleGetProfile).Methods(http.MethodGet)

	api.HandleFunc("/projects", dirHandler.HandleCreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects", dirHandler.HandleListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", dirHandler.HandleGetProject).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", dirHandler.HandleUpdateProject).Methods(http.MethodPut)
	api.HandleFunc("/projects/{id}", dirHandler.HandleDeleteProject).Methods(http.MethodDelete)

	api.HandleFunc("/classes", dirHandler.HandleCreateClass).Methods(http.MethodPost)
	api.HandleFunc("/classes", dirHandler.HandleListClasses).Methods(http.MethodGet)
	api.HandleFunc("/classes/{id}", dirHandler.HandleGetClass).Methods(http.MethodGet)
	api.HandleFunc("/classes/{id}", dirHandler.HandleUpdateClass).Methods(http.MethodPut)
	api.HandleFunc("/classes/{id}", dirHandler.HandleDeleteClass).Methods(http.MethodDelete)

	api.HandleFunc("/events", dirHandler.HandleCreateEvent).Methods(http.MethodPost)
	api.HandleFunc("/events", dirHandler.HandleListEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", dirHandler.HandleGetEvent).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", dirHandler.HandleUpdateEvent).Methods(http.MethodPut)
	api.HandleFunc("/events/{id}", dirHandler.HandleDeleteEvent).Methods(http.MethodDelete)
	api.HandleFunc("/events/{id}/attendance", dirHandler.HandleRecordAttendance).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}/attendance", dirHandler.HandleListAttendance).Methods(http.MethodGet)

	api.HandleFunc("/semesters", dirHandler.HandleCreateSemester).Methods(http.MethodPost)
	api.HandleFunc("/semesters", dirHandler.HandleListSemesters).Methods(http.MethodGet)
	api.HandleFunc("/semesters/{id}", dirHandler.HandleGetSemester).Methods(http.MethodGet)
	api.HandleFunc("/semesters/{id}", dirHandler.HandleUpdateSemester).Methods(http.MethodPut)
	api.HandleFunc("/semesters/{id}", dirHandler.HandleDeleteSemester).Methods(http.MethodDelete)

	return handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(router)
}
