package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vidhi3000/project-harmony-main/logging"
	"github.com/vidhi3000/project-harmony-main/models"
	"github.com/vidhi3000/project-harmony-main/store"
)

type ProjectHandler struct {
	store *store.Store
}

func NewProjectHandler(s *store.Store) *ProjectHandler {
	return &ProjectHandler{store: s}
}

type projectRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Color          string   `json:"color"`
	Icon           string   `json:"icon"`
	Status         string   `json:"status"`
	Progress       int      `json:"progress"`
	TasksCount     int      `json:"tasksCount"`
	CompletedTasks int      `json:"completedTasks"`
	MemberIDs      []string `json:"memberIds"`
	DueDate        string   `json:"dueDate"`
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "Project name is required", http.StatusBadRequest)
		return
	}

	status := models.ProjectStatus(req.Status)
	if req.Status == "" {
		status = models.ProjectActive
	}
	switch status {
	case models.ProjectActive, models.ProjectCompleted, models.ProjectArchived:
	default:
		http.Error(w, fmt.Sprintf("Unknown project status: %s", req.Status), http.StatusBadRequest)
		return
	}

	project := h.store.AddProject(store.ProjectFields{
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Color:          req.Color,
		Icon:           req.Icon,
		Status:         status,
		Progress:       req.Progress,
		TasksCount:     req.TasksCount,
		CompletedTasks: req.CompletedTasks,
		MemberIDs:      req.MemberIDs,
		DueDate:        req.DueDate,
	})
	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: Created project %s", project.ID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(project)
}

func (h *ProjectHandler) GetAllProjects(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.store.Projects())
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	project := h.store.Project(id)
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(project)
}

type projectPatchRequest struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	Color          *string   `json:"color"`
	Icon           *string   `json:"icon"`
	Status         *string   `json:"status"`
	Progress       *int      `json:"progress"`
	TasksCount     *int      `json:"tasksCount"`
	CompletedTasks *int      `json:"completedTasks"`
	MemberIDs      *[]string `json:"memberIds"`
	DueDate        *string   `json:"dueDate"`
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req projectPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch := store.ProjectPatch{
		Description:    req.Description,
		Color:          req.Color,
		Icon:           req.Icon,
		Progress:       req.Progress,
		TasksCount:     req.TasksCount,
		CompletedTasks: req.CompletedTasks,
		MemberIDs:      req.MemberIDs,
		DueDate:        req.DueDate,
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			http.Error(w, "Project name cannot be empty", http.StatusBadRequest)
			return
		}
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		switch status {
		case models.ProjectActive, models.ProjectCompleted, models.ProjectArchived:
		default:
			http.Error(w, fmt.Sprintf("Unknown project status: %s", *req.Status), http.StatusBadRequest)
			return
		}
		patch.Status = &status
	}

	h.store.UpdateProject(id, patch)

	project := h.store.Project(id)
	if project == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(project)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.store.DeleteProject(id)
	logging.Logger.Infof("Event ID: PROJECT_DELETED, Description: Deleted project %s", id)
	w.WriteHeader(http.StatusNoContent)
}
