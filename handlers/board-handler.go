package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vidhi3000/project-harmony-main/models"
	"github.com/vidhi3000/project-harmony-main/store"
	"github.com/vidhi3000/project-harmony-main/views"
)

// BoardHandler serves the kanban view: the filtered, grouped columns
// the board renders, the drag-end commit, and the column settings.
type BoardHandler struct {
	store *store.Store
}

func NewBoardHandler(s *store.Store) *BoardHandler {
	return &BoardHandler{store: s}
}

// GetBoard returns the visible columns after applying the toolbar
// filters. Filters arrive as query parameters: search, project,
// priority (repeatable), assignee (repeatable).
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := views.BoardFilter{
		Query:       query.Get("search"),
		ProjectID:   query.Get("project"),
		AssigneeIDs: query["assignee"],
	}
	for _, raw := range query["priority"] {
		priority := models.TaskPriority(raw)
		if !priority.Valid() {
			http.Error(w, fmt.Sprintf("Unknown priority: %s", raw), http.StatusBadRequest)
			return
		}
		filter.Priorities = append(filter.Priorities, priority)
	}

	filtered := views.FilterTasks(h.store.Tasks(), filter)
	columns := views.Columns(filtered, h.store.BoardSettings())

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(columns)
}

type dropRequest struct {
	TaskID      string `json:"taskId"`
	Source      string `json:"source"`
	SourceIndex int    `json:"sourceIndex"`
	Destination string `json:"destination"`
	DestIndex   int    `json:"destinationIndex"`
}

type dropResponse struct {
	Moved bool `json:"moved"`
}

// CommitDrop receives a raw drag-end event. An empty destination means
// the card was dropped outside the board and nothing happens.
func (h *BoardHandler) CommitDrop(w http.ResponseWriter, r *http.Request) {
	var req dropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Destination != "" && !models.TaskStatus(req.Destination).Valid() {
		http.Error(w, fmt.Sprintf("Unknown status: %s", req.Destination), http.StatusBadRequest)
		return
	}

	moved := views.CommitDrop(h.store, views.DropResult{
		TaskID:      req.TaskID,
		Source:      models.TaskStatus(req.Source),
		SourceIndex: req.SourceIndex,
		Dest:        models.TaskStatus(req.Destination),
		DestIndex:   req.DestIndex,
	})

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(dropResponse{Moved: moved})
}

type boardSettingsRequest struct {
	VisibleColumns *[]string `json:"visibleColumns"`
}

// UpdateSettings toggles which columns the board renders.
func (h *BoardHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req boardSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch := store.BoardSettingsPatch{}
	if req.VisibleColumns != nil {
		columns := make([]models.TaskStatus, 0, len(*req.VisibleColumns))
		for _, raw := range *req.VisibleColumns {
			status := models.TaskStatus(raw)
			if !status.Valid() {
				http.Error(w, fmt.Sprintf("Unknown status: %s", raw), http.StatusBadRequest)
				return
			}
			columns = append(columns, status)
		}
		patch.VisibleColumns = &columns
	}

	h.store.UpdateBoardSettings(patch)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.store.BoardSettings())
}

func (h *BoardHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.store.BoardSettings())
}
