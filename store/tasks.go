package store

import (
	"time"

	"github.com/vidhi3000/project-harmony-main/models"
)

// TaskFields carries the caller-supplied fields of a new task. ID and
// the timestamps are always generated by the store. The store accepts
// the fields as given; validation (non-empty title, parseable dates)
// belongs to the boundary that collected the input.
type TaskFields struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	ProjectID   string
	AssigneeID  string
	DueDate     *time.Time
	Tags        []string
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	ProjectID   *string
	AssigneeID  *string
	DueDate     *time.Time
	Tags        *[]string
}

// AddTask appends a new task with a generated unique id and
// CreatedAt = UpdatedAt = now, and returns a copy of it.
func (s *Store) AddTask(fields TaskFields) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	task := models.Task{
		ID:          newID(),
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
		Priority:    fields.Priority,
		ProjectID:   fields.ProjectID,
		AssigneeID:  fields.AssigneeID,
		DueDate:     fields.DueDate,
		Tags:        append([]string(nil), fields.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if len(task.Tags) == 0 {
		task.Tags = nil
	}
	s.tasks = append(s.tasks, task)
	return task.Clone()
}

// MoveTask sets the task's status and refreshes UpdatedAt. Any status
// may move to any other status; the board allows dropping a card into
// every visible column. Unknown ids are silently ignored.
func (s *Store) MoveTask(taskID string, newStatus models.TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks[i].Status = newStatus
			s.tasks[i].UpdatedAt = s.now()
			return
		}
	}
}

// UpdateTask shallow-merges the patch into the task and refreshes
// UpdatedAt. An empty patch still bumps UpdatedAt. Unknown ids are
// silently ignored.
func (s *Store) UpdateTask(id string, patch TaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.ProjectID != nil {
			t.ProjectID = *patch.ProjectID
		}
		if patch.AssigneeID != nil {
			t.AssigneeID = *patch.AssigneeID
		}
		if patch.DueDate != nil {
			due := *patch.DueDate
			t.DueDate = &due
		}
		if patch.Tags != nil {
			t.Tags = append([]string(nil), (*patch.Tags)...)
		}
		t.UpdatedAt = s.now()
		return
	}
}

// DeleteTask removes the task with the given id. Unknown ids are
// silently ignored. Notifications referring to the task are left alone.
func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Task returns a copy of the task with the given id, or nil.
func (s *Store) Task(id string) *models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i].Clone()
			return &t
		}
	}
	return nil
}

// Tasks returns a snapshot of the task collection in insertion order.
// The returned slice and its tasks are copies; mutating them does not
// touch the store.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	for i := range s.tasks {
		out[i] = s.tasks[i].Clone()
	}
	return out
}
