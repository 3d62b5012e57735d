package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vidhi3000/project-harmony-main/models"
	"github.com/vidhi3000/project-harmony-main/store"
	"github.com/vidhi3000/project-harmony-main/views"
)

func newTestRouter(t *testing.T, seed bool) (*store.Store, http.Handler) {
	t.Helper()
	s := store.New()
	if seed {
		s.Seed()
	}
	s.SetCurrentUser(&models.User{ID: "1", Name: "John Doe", Email: "john@example.com", Role: models.RoleAdmin})
	s.SetAuthenticated(true)
	return s, NewRouter(s)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
}

func TestRouter_RequiresAuth(t *testing.T) {
	s := store.New()
	router := NewRouter(s)

	recorder := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for an unauthenticated request, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodGet, "/health", nil)
	if recorder.Code != http.StatusOK {
		t.Errorf("expected the health check to stay open, got %d", recorder.Code)
	}
}

func TestTaskHandler_CreateTask_Validation(t *testing.T) {
	_, router := newTestRouter(t, false)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"empty title", map[string]interface{}{"title": ""}},
		{"blank title", map[string]interface{}{"title": "   "}},
		{"unknown status", map[string]interface{}{"title": "x", "status": "shipped"}},
		{"unknown priority", map[string]interface{}{"title": "x", "priority": "critical"}},
		{"bad due date", map[string]interface{}{"title": "x", "dueDate": "next tuesday"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := doJSON(t, router, http.MethodPost, "/api/tasks", tc.body)
			if recorder.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", recorder.Code)
			}
		})
	}
}

func TestTaskHandler_CreateTask(t *testing.T) {
	s, router := newTestRouter(t, false)

	recorder := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":   "  Ship the release  ",
		"dueDate": "2024-04-01",
		"tags":    []string{"release"},
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var created models.Task
	decode(t, recorder, &created)
	if created.Title != "Ship the release" {
		t.Errorf("expected a trimmed title, got %q", created.Title)
	}
	if created.Status != models.StatusTodo {
		t.Errorf("expected the default todo status, got %q", created.Status)
	}
	if created.Priority != models.PriorityMedium {
		t.Errorf("expected the default medium priority, got %q", created.Priority)
	}
	if s.Task(created.ID) == nil {
		t.Error("created task not found in the store")
	}
}

func TestTaskHandler_MoveTask(t *testing.T) {
	s, router := newTestRouter(t, false)
	task := s.AddTask(store.TaskFields{Title: "movable", Status: models.StatusTodo, Priority: models.PriorityLow})

	recorder := doJSON(t, router, http.MethodPatch, "/api/tasks/"+task.ID+"/move", map[string]string{"status": "shipped"})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown status, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodPatch, "/api/tasks/"+task.ID+"/move", map[string]string{"status": "done"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if got := s.Task(task.ID).Status; got != models.StatusDone {
		t.Errorf("expected the store to reflect the move, got %q", got)
	}

	// Moving an unknown id is not an error.
	recorder = doJSON(t, router, http.MethodPatch, "/api/tasks/nonexistent/move", map[string]string{"status": "done"})
	if recorder.Code != http.StatusNoContent {
		t.Errorf("expected 204 for an unknown id, got %d", recorder.Code)
	}
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	s, router := newTestRouter(t, false)
	task := s.AddTask(store.TaskFields{Title: "original", Description: "keep me", Status: models.StatusTodo, Priority: models.PriorityLow})

	recorder := doJSON(t, router, http.MethodPut, "/api/tasks/"+task.ID, map[string]interface{}{"title": "  "})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a blank title patch, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodPut, "/api/tasks/"+task.ID, map[string]interface{}{"title": "patched"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	got := s.Task(task.ID)
	if got.Title != "patched" {
		t.Errorf("expected the patched title, got %q", got.Title)
	}
	if got.Description != "keep me" {
		t.Errorf("expected untouched description, got %q", got.Description)
	}
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	s, router := newTestRouter(t, false)
	task := s.AddTask(store.TaskFields{Title: "doomed"})

	recorder := doJSON(t, router, http.MethodDelete, "/api/tasks/"+task.ID, nil)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", recorder.Code)
	}
	if s.Task(task.ID) != nil {
		t.Error("expected the task to be deleted")
	}
}

func TestBoardHandler_GetBoard_Filters(t *testing.T) {
	_, router := newTestRouter(t, true)

	recorder := doJSON(t, router, http.MethodGet, "/api/board?project=p1&priority=high", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var columns []views.Column
	decode(t, recorder, &columns)
	if len(columns) != len(models.AllStatuses) {
		t.Fatalf("expected all five columns, got %d", len(columns))
	}

	// The seeded high-priority tasks of p1 are t1 (done), t2
	// (in_progress) and t10 (review).
	byStatus := make(map[models.TaskStatus][]models.Task)
	for _, column := range columns {
		byStatus[column.Status] = column.Tasks
	}
	if got := byStatus[models.StatusDone]; len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("expected [t1] in done, got %+v", got)
	}
	if got := byStatus[models.StatusInProgress]; len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("expected [t2] in in_progress, got %+v", got)
	}
	if got := byStatus[models.StatusReview]; len(got) != 1 || got[0].ID != "t10" {
		t.Errorf("expected [t10] in review, got %+v", got)
	}
	if got := byStatus[models.StatusTodo]; len(got) != 0 {
		t.Errorf("expected an empty todo column, got %+v", got)
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/board?priority=critical", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown priority, got %d", recorder.Code)
	}
}

func TestBoardHandler_CommitDrop(t *testing.T) {
	s, router := newTestRouter(t, false)
	task := s.AddTask(store.TaskFields{Title: "dragged", Status: models.StatusTodo})

	// Dropped outside the board: nothing happens.
	recorder := doJSON(t, router, http.MethodPost, "/api/board/drop", map[string]interface{}{
		"taskId": task.ID, "source": "todo", "sourceIndex": 0, "destination": "",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var result struct {
		Moved bool `json:"moved"`
	}
	decode(t, recorder, &result)
	if result.Moved {
		t.Error("expected no move for a drop outside the board")
	}

	recorder = doJSON(t, router, http.MethodPost, "/api/board/drop", map[string]interface{}{
		"taskId": task.ID, "source": "todo", "sourceIndex": 0, "destination": "review", "destinationIndex": 1,
	})
	decode(t, recorder, &result)
	if !result.Moved {
		t.Fatal("expected the drop to commit a move")
	}
	if got := s.Task(task.ID).Status; got != models.StatusReview {
		t.Errorf("expected status review, got %q", got)
	}
}

func TestBoardHandler_UpdateSettings(t *testing.T) {
	_, router := newTestRouter(t, true)

	recorder := doJSON(t, router, http.MethodPut, "/api/board/settings", map[string]interface{}{
		"visibleColumns": []string{"todo", "shipped"},
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown column, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodPut, "/api/board/settings", map[string]interface{}{
		"visibleColumns": []string{"todo", "done"},
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/board", nil)
	var columns []views.Column
	decode(t, recorder, &columns)
	if len(columns) != 2 {
		t.Fatalf("expected 2 visible columns, got %d", len(columns))
	}
	if columns[0].Status != models.StatusTodo || columns[1].Status != models.StatusDone {
		t.Errorf("expected [todo done], got [%s %s]", columns[0].Status, columns[1].Status)
	}
}

func TestUserHandler_InviteAndRemove(t *testing.T) {
	s, router := newTestRouter(t, false)

	recorder := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"name": "", "email": "x@example.com"})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a nameless invite, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"name": "Jane Smith", "email": "jane@example.com"})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", recorder.Code)
	}
	var invited models.User
	decode(t, recorder, &invited)
	if invited.Role != models.RoleMember {
		t.Errorf("expected the default member role, got %q", invited.Role)
	}

	recorder = doJSON(t, router, http.MethodDelete, "/api/users/"+invited.ID, nil)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", recorder.Code)
	}
	if s.User(invited.ID) != nil {
		t.Error("expected the user to be removed")
	}
}

func TestUserHandler_Profile(t *testing.T) {
	s, router := newTestRouter(t, false)

	recorder := doJSON(t, router, http.MethodPut, "/api/me", map[string]string{"timezone": "utc+2"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if got := s.CurrentUser().Timezone; got != "utc+2" {
		t.Errorf("expected the profile patch to land, got %q", got)
	}
	if got := s.CurrentUser().Name; got != "John Doe" {
		t.Errorf("expected untouched name, got %q", got)
	}
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	s, router := newTestRouter(t, true)

	recorder := doJSON(t, router, http.MethodPost, "/api/notifications/read-all", nil)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", recorder.Code)
	}
	if got := s.UnreadCount(); got != 0 {
		t.Errorf("expected 0 unread, got %d", got)
	}
}

func TestDashboardHandler_Activity(t *testing.T) {
	_, router := newTestRouter(t, true)

	recorder := doJSON(t, router, http.MethodGet, "/api/dashboard/activity", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var entries []struct {
		Task         models.Task `json:"task"`
		RelativeTime string      `json:"relativeTime"`
	}
	decode(t, recorder, &entries)
	if len(entries) != 5 {
		t.Fatalf("expected 5 activity entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Task.UpdatedAt.After(entries[i-1].Task.UpdatedAt) {
			t.Errorf("activity entries out of order at %d", i)
		}
	}
	if entries[0].RelativeTime == "" {
		t.Error("expected a rendered relative time")
	}
}

func TestSettingsHandler_Preferences(t *testing.T) {
	s, router := newTestRouter(t, false)

	recorder := doJSON(t, router, http.MethodPut, "/api/preferences", map[string]interface{}{"theme": "neon"})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown theme, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodPut, "/api/preferences", map[string]interface{}{"theme": "light", "sidebarOpen": false})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if s.Theme() != models.ThemeLight {
		t.Errorf("expected the light theme, got %q", s.Theme())
	}
	if s.SidebarOpen() {
		t.Error("expected the sidebar closed")
	}

	recorder = doJSON(t, router, http.MethodPost, "/api/preferences/sidebar/toggle", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if !s.SidebarOpen() {
		t.Error("expected the sidebar open after toggle")
	}
}
