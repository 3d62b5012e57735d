package store

import "github.com/vidhi3000/project-harmony-main/models"

// UserFields carries the caller-supplied fields of a new roster member.
type UserFields struct {
	Name     string
	Email    string
	Avatar   string
	Role     models.Role
	Timezone string
}

// UserPatch is a partial update. Nil fields are left untouched. The id
// is immutable and cannot be patched.
type UserPatch struct {
	Name     *string
	Email    *string
	Avatar   *string
	Role     *models.Role
	Timezone *string
}

func applyUserPatch(u *models.User, patch UserPatch) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Timezone != nil {
		u.Timezone = *patch.Timezone
	}
}

// AddUser appends a new user with a generated unique id and returns a
// copy of it.
func (s *Store) AddUser(fields UserFields) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       newID(),
		Name:     fields.Name,
		Email:    fields.Email,
		Avatar:   fields.Avatar,
		Role:     fields.Role,
		Timezone: fields.Timezone,
	}
	s.users = append(s.users, user)
	return user
}

// UpdateUser shallow-merges the patch into the user record. Unknown
// ids are silently ignored.
func (s *Store) UpdateUser(id string, patch UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			applyUserPatch(&s.users[i], patch)
			return
		}
	}
}

// RemoveUser removes the user from the roster. Tasks assigned to the
// removed user keep their AssigneeID; consumers resolve the stale
// reference to "unassigned".
func (s *Store) RemoveUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return
		}
	}
}

// User returns a copy of the user with the given id, or nil.
func (s *Store) User(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// Users returns a snapshot of the roster in insertion order.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}
