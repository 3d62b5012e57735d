package views

import (
	"sort"

	"github.com/vidhi3000/project-harmony-main/models"
)

// RecentTasks returns up to limit tasks ordered by UpdatedAt, newest
// first. The sort is stable so tasks updated at the same instant keep
// their collection order. The input slice is not touched.
func RecentTasks(tasks []models.Task, limit int) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// TaskCounts tallies tasks per status for the dashboard stat cards.
func TaskCounts(tasks []models.Task) map[models.TaskStatus]int {
	counts := make(map[models.TaskStatus]int, len(models.AllStatuses))
	for _, task := range tasks {
		counts[task.Status]++
	}
	return counts
}

// ProjectCompletion returns the completed/total task ratio of a project
// as a 0-100 percentage. This is derived on demand and is allowed to
// disagree with Project.Progress, which is maintained by hand.
func ProjectCompletion(p models.Project) int {
	if p.TasksCount <= 0 {
		return 0
	}
	return p.CompletedTasks * 100 / p.TasksCount
}

// ResolveAssignee looks up a task's assignee in the roster. Returns nil
// for unassigned tasks and for assignees that have since been removed;
// callers render both as "unassigned" rather than failing.
func ResolveAssignee(users []models.User, task models.Task) *models.User {
	if task.AssigneeID == "" {
		return nil
	}
	for i := range users {
		if users[i].ID == task.AssigneeID {
			u := users[i]
			return &u
		}
	}
	return nil
}
