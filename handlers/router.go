package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vidhi3000/project-harmony-main/store"
)

// NewRouter wires every handler onto one router. Everything except the
// health check sits behind the session guard.
func NewRouter(s *store.Store) *mux.Router {
	taskHandler := NewTaskHandler(s)
	boardHandler := NewBoardHandler(s)
	projectHandler := NewProjectHandler(s)
	userHandler := NewUserHandler(s)
	notificationHandler := NewNotificationHandler(s)
	dashboardHandler := NewDashboardHandler(s)
	settingsHandler := NewSettingsHandler(s)

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(RequireAuth(s))

	api.HandleFunc("/tasks", taskHandler.GetAllTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{id}", taskHandler.GetTask).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", taskHandler.UpdateTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}", taskHandler.DeleteTask).Methods(http.MethodDelete)
	api.HandleFunc("/tasks/{id}/move", taskHandler.MoveTask).Methods(http.MethodPatch)

	api.HandleFunc("/board", boardHandler.GetBoard).Methods(http.MethodGet)
	api.HandleFunc("/board/drop", boardHandler.CommitDrop).Methods(http.MethodPost)
	api.HandleFunc("/board/settings", boardHandler.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/board/settings", boardHandler.UpdateSettings).Methods(http.MethodPut)

	api.HandleFunc("/projects", projectHandler.GetAllProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects", projectHandler.CreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}", projectHandler.GetProject).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", projectHandler.UpdateProject).Methods(http.MethodPut)
	api.HandleFunc("/projects/{id}", projectHandler.DeleteProject).Methods(http.MethodDelete)

	api.HandleFunc("/users", userHandler.GetAllUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", userHandler.InviteUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", userHandler.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", userHandler.RemoveUser).Methods(http.MethodDelete)
	api.HandleFunc("/me", userHandler.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/me", userHandler.UpdateProfile).Methods(http.MethodPut)

	api.HandleFunc("/notifications", notificationHandler.GetNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", notificationHandler.MarkRead).Methods(http.MethodPatch)
	api.HandleFunc("/notifications/read-all", notificationHandler.MarkAllRead).Methods(http.MethodPost)

	api.HandleFunc("/dashboard/activity", dashboardHandler.GetActivity).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/stats", dashboardHandler.GetStats).Methods(http.MethodGet)

	api.HandleFunc("/preferences", settingsHandler.GetPreferences).Methods(http.MethodGet)
	api.HandleFunc("/preferences", settingsHandler.UpdatePreferences).Methods(http.MethodPut)
	api.HandleFunc("/preferences/sidebar/toggle", settingsHandler.ToggleSidebar).Methods(http.MethodPost)

	return r
}
