// Package views derives the data the board and dashboard render from
// store snapshots. Everything here is a pure function over its inputs:
// no state is kept and nothing is mutated, so every view can be rebuilt
// from the store at any time.
package views

import (
	"strings"

	"github.com/vidhi3000/project-harmony-main/models"
)

// AllProjects is the project selector sentinel matching every task.
const AllProjects = "all"

// BoardFilter is the toolbar state of the board. All four predicates
// must hold for a task to pass; an empty predicate always passes.
type BoardFilter struct {
	Query       string
	ProjectID   string
	Priorities  []models.TaskPriority
	AssigneeIDs []string
}

// Matches reports whether the task passes every active predicate.
func (f BoardFilter) Matches(task models.Task) bool {
	return f.matchesQuery(task) && f.matchesProject(task) && f.matchesPriority(task) && f.matchesAssignee(task)
}

func (f BoardFilter) matchesQuery(task models.Task) bool {
	// A whitespace-only query behaves like no query at all.
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(task.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(task.Description), query) {
		return true
	}
	for _, tag := range task.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func (f BoardFilter) matchesProject(task models.Task) bool {
	if f.ProjectID == "" || f.ProjectID == AllProjects {
		return true
	}
	return task.ProjectID == f.ProjectID
}

func (f BoardFilter) matchesPriority(task models.Task) bool {
	if len(f.Priorities) == 0 {
		return true
	}
	for _, p := range f.Priorities {
		if task.Priority == p {
			return true
		}
	}
	return false
}

func (f BoardFilter) matchesAssignee(task models.Task) bool {
	if len(f.AssigneeIDs) == 0 {
		return true
	}
	if task.AssigneeID == "" {
		// An unassigned task never matches an active assignee filter.
		return false
	}
	for _, id := range f.AssigneeIDs {
		if task.AssigneeID == id {
			return true
		}
	}
	return false
}

// FilterTasks returns the tasks passing the filter, preserving their
// relative order.
func FilterTasks(tasks []models.Task, filter BoardFilter) []models.Task {
	var out []models.Task
	for _, task := range tasks {
		if filter.Matches(task) {
			out = append(out, task)
		}
	}
	return out
}
