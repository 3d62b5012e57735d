// Package store holds all mutable application state: the task, project,
// user and notification collections plus board settings and the session
// identity. It is the single source of truth; UI code reads snapshots
// and applies changes only through the mutation methods here.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vidhi3000/project-harmony-main/models"
)

// Store is constructed once at process start and injected into every
// consumer. All methods are safe for concurrent use; each mutation is a
// single atomic state transition.
type Store struct {
	mu sync.RWMutex

	users         []models.User
	projects      []models.Project
	tasks         []models.Task
	notifications []models.Notification

	currentUser     *models.User
	isAuthenticated bool
	theme           models.Theme
	sidebarOpen     bool
	boardSettings   models.BoardSettings

	now func() time.Time
}

// New returns an empty store with default board settings.
func New() *Store {
	return &Store{
		theme:         models.ThemeDark,
		sidebarOpen:   true,
		boardSettings: models.DefaultBoardSettings(),
		now:           time.Now,
	}
}

func newID() string {
	return uuid.New().String()
}

// SetCurrentUser installs or clears the signed-in identity. It is
// called by the session collaborator whenever the external session
// changes; the latest call always wins.
func (s *Store) SetCurrentUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.currentUser = nil
		return
	}
	u := *user
	s.currentUser = &u
}

// SetAuthenticated records whether there is an active session.
func (s *Store) SetAuthenticated(authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isAuthenticated = authenticated
}

// UpdateCurrentUser merges the patch into the signed-in user's record.
// No-op when nobody is signed in.
func (s *Store) UpdateCurrentUser(patch UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return
	}
	applyUserPatch(s.currentUser, patch)
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

func (s *Store) SetTheme(theme models.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

func (s *Store) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Store) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
}

func (s *Store) SetSidebarOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = open
}

func (s *Store) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarOpen
}

// BoardSettingsPatch carries the fields of an UpdateBoardSettings call.
// Nil fields are left untouched.
type BoardSettingsPatch struct {
	VisibleColumns *[]models.TaskStatus
}

// UpdateBoardSettings shallow-merges the patch into the board settings.
func (s *Store) UpdateBoardSettings(patch BoardSettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.VisibleColumns != nil {
		s.boardSettings.VisibleColumns = append([]models.TaskStatus(nil), (*patch.VisibleColumns)...)
	}
}

// BoardSettings returns a copy of the current board settings.
func (s *Store) BoardSettings() models.BoardSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boardSettings.Clone()
}
