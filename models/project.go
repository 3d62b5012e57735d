package models

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

// Project groups tasks and members. Progress is a manually maintained
// percentage; it is not recomputed from CompletedTasks/TasksCount.
type Project struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Color          string        `json:"color"`
	Icon           string        `json:"icon"`
	Status         ProjectStatus `json:"status"`
	Progress       int           `json:"progress"`
	TasksCount     int           `json:"tasksCount"`
	CompletedTasks int           `json:"completedTasks"`
	MemberIDs      []string      `json:"memberIds,omitempty"`
	DueDate        string        `json:"dueDate,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func (p Project) Clone() Project {
	out := p
	if p.MemberIDs != nil {
		out.MemberIDs = append([]string(nil), p.MemberIDs...)
	}
	return out
}
