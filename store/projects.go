package store

import "github.com/vidhi3000/project-harmony-main/models"

// ProjectFields carries the caller-supplied fields of a new project.
type ProjectFields struct {
	Name           string
	Description    string
	Color          string
	Icon           string
	Status         models.ProjectStatus
	Progress       int
	TasksCount     int
	CompletedTasks int
	MemberIDs      []string
	DueDate        string
}

// ProjectPatch is a partial update. Nil fields are left untouched.
// Progress is patched independently of CompletedTasks/TasksCount; the
// store never reconciles the two.
type ProjectPatch struct {
	Name           *string
	Description    *string
	Color          *string
	Icon           *string
	Status         *models.ProjectStatus
	Progress       *int
	TasksCount     *int
	CompletedTasks *int
	MemberIDs      *[]string
	DueDate        *string
}

// AddProject appends a new project with a generated unique id and
// returns a copy of it.
func (s *Store) AddProject(fields ProjectFields) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	project := models.Project{
		ID:             newID(),
		Name:           fields.Name,
		Description:    fields.Description,
		Color:          fields.Color,
		Icon:           fields.Icon,
		Status:         fields.Status,
		Progress:       fields.Progress,
		TasksCount:     fields.TasksCount,
		CompletedTasks: fields.CompletedTasks,
		MemberIDs:      append([]string(nil), fields.MemberIDs...),
		DueDate:        fields.DueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if len(project.MemberIDs) == 0 {
		project.MemberIDs = nil
	}
	s.projects = append(s.projects, project)
	return project.Clone()
}

// UpdateProject shallow-merges the patch into the project and refreshes
// UpdatedAt. Unknown ids are silently ignored.
func (s *Store) UpdateProject(id string, patch ProjectPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Color != nil {
			p.Color = *patch.Color
		}
		if patch.Icon != nil {
			p.Icon = *patch.Icon
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Progress != nil {
			p.Progress = *patch.Progress
		}
		if patch.TasksCount != nil {
			p.TasksCount = *patch.TasksCount
		}
		if patch.CompletedTasks != nil {
			p.CompletedTasks = *patch.CompletedTasks
		}
		if patch.MemberIDs != nil {
			p.MemberIDs = append([]string(nil), (*patch.MemberIDs)...)
		}
		if patch.DueDate != nil {
			p.DueDate = *patch.DueDate
		}
		p.UpdatedAt = s.now()
		return
	}
}

// DeleteProject removes the project with the given id. Tasks pointing
// at it keep their ProjectID; consumers treat the dangling reference as
// "no project".
func (s *Store) DeleteProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return
		}
	}
}

// Project returns a copy of the project with the given id, or nil.
func (s *Store) Project(id string) *models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i].Clone()
			return &p
		}
	}
	return nil
}

// Projects returns a snapshot of the project collection in insertion
// order.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.projects))
	for i := range s.projects {
		out[i] = s.projects[i].Clone()
	}
	return out
}
