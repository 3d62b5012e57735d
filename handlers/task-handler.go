package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/vidhi3000/project-harmony-main/logging"
	"github.com/vidhi3000/project-harmony-main/models"
	"github.com/vidhi3000/project-harmony-main/store"
)

// TaskHandler is the boundary in front of the store's task operations.
// All input validation lives here: the store trusts its callers, so
// empty titles and unparseable dates must be rejected before a store
// call is made.
type TaskHandler struct {
	store *store.Store
}

func NewTaskHandler(s *store.Store) *TaskHandler {
	return &TaskHandler{store: s}
}

type taskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	ProjectID   string   `json:"projectId"`
	AssigneeID  string   `json:"assigneeId"`
	DueDate     string   `json:"dueDate"`
	Tags        []string `json:"tags"`
}

// parseDueDate accepts a plain date or a full RFC 3339 timestamp.
func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q", raw)
	}
	return &t, nil
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		logging.Logger.Warnf("Event ID: TASK_CREATE_REJECTED, Description: Task creation rejected, title is empty")
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	status := models.TaskStatus(req.Status)
	if req.Status == "" {
		status = models.StatusTodo
	}
	if !status.Valid() {
		http.Error(w, fmt.Sprintf("Unknown status: %s", req.Status), http.StatusBadRequest)
		return
	}

	priority := models.TaskPriority(req.Priority)
	if req.Priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		http.Error(w, fmt.Sprintf("Unknown priority: %s", req.Priority), http.StatusBadRequest)
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	task := h.store.AddTask(store.TaskFields{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
		DueDate:     dueDate,
		Tags:        req.Tags,
	})
	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Created task %s", task.ID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(task)
}

func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	tasks := h.store.Tasks()
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tasks)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	task := h.store.Task(id)
	if task == nil {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(task)
}

type taskPatchRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Priority    *string   `json:"priority"`
	ProjectID   *string   `json:"projectId"`
	AssigneeID  *string   `json:"assigneeId"`
	DueDate     *string   `json:"dueDate"`
	Tags        *[]string `json:"tags"`
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req taskPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch := store.TaskPatch{
		Description: req.Description,
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
		Tags:        req.Tags,
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			http.Error(w, "Title cannot be empty", http.StatusBadRequest)
			return
		}
		title := strings.TrimSpace(*req.Title)
		patch.Title = &title
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.Valid() {
			http.Error(w, fmt.Sprintf("Unknown status: %s", *req.Status), http.StatusBadRequest)
			return
		}
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		if !priority.Valid() {
			http.Error(w, fmt.Sprintf("Unknown priority: %s", *req.Priority), http.StatusBadRequest)
			return
		}
		patch.Priority = &priority
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		patch.DueDate = dueDate
	}

	h.store.UpdateTask(id, patch)

	task := h.store.Task(id)
	if task == nil {
		// Unknown id is a silent no-op at the store level; report the
		// miss to the caller without treating it as a failure.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.store.DeleteTask(id)
	logging.Logger.Infof("Event ID: TASK_DELETED, Description: Deleted task %s", id)
	w.WriteHeader(http.StatusNoContent)
}

type moveRequest struct {
	Status string `json:"status"`
}

// MoveTask changes a task's board column. Every known status is a legal
// destination; there is no transition graph.
func (h *TaskHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	status := models.TaskStatus(req.Status)
	if !status.Valid() {
		http.Error(w, fmt.Sprintf("Unknown status: %s", req.Status), http.StatusBadRequest)
		return
	}

	h.store.MoveTask(id, status)

	task := h.store.Task(id)
	if task == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(task)
}
