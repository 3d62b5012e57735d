package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vidhi3000/project-harmony-main/models"
	"github.com/vidhi3000/project-harmony-main/store"
	"github.com/vidhi3000/project-harmony-main/views"
)

// recentActivityLimit is how many entries the dashboard feed shows.
const recentActivityLimit = 5

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

type activityEntry struct {
	Task         models.Task  `json:"task"`
	Assignee     *models.User `json:"assignee,omitempty"`
	Initials     string       `json:"initials,omitempty"`
	RelativeTime string       `json:"relativeTime"`
	StatusLabel  string       `json:"statusLabel"`
	Priority     string       `json:"priorityLabel"`
}

// GetActivity returns the five most recently updated tasks, newest
// first, with display-ready assignee and time fields.
func (h *DashboardHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	users := h.store.Users()

	recent := views.RecentTasks(h.store.Tasks(), recentActivityLimit)
	entries := make([]activityEntry, 0, len(recent))
	for _, task := range recent {
		entry := activityEntry{
			Task:         task,
			RelativeTime: views.FormatRelativeTime(task.UpdatedAt, now),
			StatusLabel:  models.StatusRegistry[task.Status].Label,
			Priority:     models.PriorityRegistry[task.Priority].Label,
		}
		if assignee := views.ResolveAssignee(users, task); assignee != nil {
			entry.Assignee = assignee
			entry.Initials = views.Initials(assignee.Name)
		}
		entries = append(entries, entry)
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(entries)
}

type statsResponse struct {
	TaskCounts  map[models.TaskStatus]int `json:"taskCounts"`
	TotalTasks  int                       `json:"totalTasks"`
	Projects    []projectStats            `json:"projects"`
	UnreadCount int                       `json:"unreadCount"`
}

type projectStats struct {
	Project    models.Project `json:"project"`
	Completion int            `json:"completion"`
}

// GetStats returns the dashboard's stat card data. Completion is the
// derived completed/total ratio; Project.Progress rides along unchanged
// and the two may disagree.
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	tasks := h.store.Tasks()

	projects := h.store.Projects()
	stats := make([]projectStats, 0, len(projects))
	for _, project := range projects {
		stats = append(stats, projectStats{
			Project:    project,
			Completion: views.ProjectCompletion(project),
		})
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(statsResponse{
		TaskCounts:  views.TaskCounts(tasks),
		TotalTasks:  len(tasks),
		Projects:    stats,
		UnreadCount: h.store.UnreadCount(),
	})
}
