package views

import (
	"testing"

	"github.com/vidhi3000/project-harmony-main/models"
	"github.com/vidhi3000/project-harmony-main/store"
)

func TestColumns_PartitionIsCompleteAndExclusive(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Status: models.StatusTodo},
		{ID: "t2", Status: models.StatusDone},
		{ID: "t3", Status: models.StatusTodo},
		{ID: "t4", Status: models.StatusBacklog},
	}
	columns := Columns(tasks, models.DefaultBoardSettings())

	if len(columns) != len(models.AllStatuses) {
		t.Fatalf("expected %d columns, got %d", len(models.AllStatuses), len(columns))
	}

	seen := make(map[string]int)
	total := 0
	for _, column := range columns {
		for _, task := range column.Tasks {
			if task.Status != column.Status {
				t.Errorf("task %s with status %q landed in column %q", task.ID, task.Status, column.Status)
			}
			seen[task.ID]++
			total++
		}
	}
	if total != len(tasks) {
		t.Errorf("expected every task in exactly one column, placed %d of %d", total, len(tasks))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("task %s appears in %d columns", id, count)
		}
	}
}

func TestColumns_PreservesOrders(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Status: models.StatusTodo},
		{ID: "t2", Status: models.StatusTodo},
		{ID: "t3", Status: models.StatusTodo},
	}
	settings := models.BoardSettings{VisibleColumns: []models.TaskStatus{models.StatusDone, models.StatusTodo}}

	columns := Columns(tasks, settings)

	// Columns come out in settings order, not workflow order.
	if columns[0].Status != models.StatusDone || columns[1].Status != models.StatusTodo {
		t.Fatalf("expected [done todo], got [%s %s]", columns[0].Status, columns[1].Status)
	}
	// Tasks keep collection order inside their column.
	assertIDs(t, columns[1].Tasks, "t1", "t2", "t3")
}

func TestColumns_HiddenStatusesAreOmitted(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Status: models.StatusBacklog},
		{ID: "t2", Status: models.StatusDone},
	}
	settings := models.BoardSettings{VisibleColumns: []models.TaskStatus{models.StatusDone}}

	columns := Columns(tasks, settings)

	if len(columns) != 1 {
		t.Fatalf("expected only the visible column, got %d columns", len(columns))
	}
	assertIDs(t, columns[0].Tasks, "t2")
}

func TestColumns_EmptyVisibleColumns(t *testing.T) {
	tasks := []models.Task{{ID: "t1", Status: models.StatusTodo}}

	columns := Columns(tasks, models.BoardSettings{})

	if len(columns) != 0 {
		t.Errorf("expected zero columns regardless of task count, got %d", len(columns))
	}
}

func TestColumns_CarriesRegistryMetadata(t *testing.T) {
	columns := Columns(nil, models.DefaultBoardSettings())
	for _, column := range columns {
		meta, ok := models.StatusRegistry[column.Status]
		if !ok {
			t.Fatalf("column %q has no registry entry", column.Status)
		}
		if column.Label != meta.Label || column.Color != meta.Color {
			t.Errorf("column %q metadata mismatch: %q/%q", column.Status, column.Label, column.Color)
		}
	}
}

func TestCommitDrop_NoDestination(t *testing.T) {
	s := store.New()
	task := s.AddTask(store.TaskFields{Title: "dragged", Status: models.StatusTodo})

	moved := CommitDrop(s, DropResult{TaskID: task.ID, Source: models.StatusTodo, SourceIndex: 0})

	if moved {
		t.Error("a drop outside the board must not commit a move")
	}
	got := s.Task(task.ID)
	if got.Status != models.StatusTodo || !got.UpdatedAt.Equal(task.UpdatedAt) {
		t.Error("a drop outside the board must not touch the task")
	}
}

func TestCommitDrop_SamePosition(t *testing.T) {
	s := store.New()
	task := s.AddTask(store.TaskFields{Title: "dragged", Status: models.StatusTodo})

	moved := CommitDrop(s, DropResult{
		TaskID: task.ID,
		Source: models.StatusTodo, SourceIndex: 2,
		Dest: models.StatusTodo, DestIndex: 2,
	})

	if moved {
		t.Error("a drop back onto the same position must not commit a move")
	}
	if got := s.Task(task.ID); !got.UpdatedAt.Equal(task.UpdatedAt) {
		t.Error("a same-position drop must not bump UpdatedAt")
	}
}

func TestCommitDrop_SameColumnDifferentIndex(t *testing.T) {
	// Reordering inside a column goes through MoveTask (so UpdatedAt is
	// refreshed) but the order itself is not persisted anywhere.
	s := store.New()
	task := s.AddTask(store.TaskFields{Title: "dragged", Status: models.StatusTodo})

	moved := CommitDrop(s, DropResult{
		TaskID: task.ID,
		Source: models.StatusTodo, SourceIndex: 0,
		Dest: models.StatusTodo, DestIndex: 2,
	})

	if !moved {
		t.Error("a same-column reorder still commits a move call")
	}
	got := s.Task(task.ID)
	if got.Status != models.StatusTodo {
		t.Errorf("status must stay %q, got %q", models.StatusTodo, got.Status)
	}
}

func TestCommitDrop_CrossColumn(t *testing.T) {
	s := store.New()
	task := s.AddTask(store.TaskFields{Title: "dragged", Status: models.StatusTodo})

	moved := CommitDrop(s, DropResult{
		TaskID: task.ID,
		Source: models.StatusTodo, SourceIndex: 0,
		Dest: models.StatusReview, DestIndex: 1,
	})

	if !moved {
		t.Fatal("expected the drop to commit a move")
	}
	if got := s.Task(task.ID); got.Status != models.StatusReview {
		t.Errorf("expected status review, got %q", got.Status)
	}
}
