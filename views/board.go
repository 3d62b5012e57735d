package views

import (
	"github.com/vidhi3000/project-harmony-main/models"
	"github.com/vidhi3000/project-harmony-main/store"
)

// Column is one rendered status bucket on the board.
type Column struct {
	Status models.TaskStatus `json:"status"`
	Label  string            `json:"label"`
	Color  string            `json:"color"`
	Tasks  []models.Task     `json:"tasks"`
}

// Columns partitions tasks by status into the columns named by the
// board settings, in settings order. Tasks keep the relative order they
// had in the input; insertion order is the only ordering the store
// knows. Statuses missing from VisibleColumns are omitted entirely, so
// an empty VisibleColumns yields no columns no matter how many tasks
// there are.
func Columns(tasks []models.Task, settings models.BoardSettings) []Column {
	columns := make([]Column, 0, len(settings.VisibleColumns))
	for _, status := range settings.VisibleColumns {
		meta := models.StatusRegistry[status]
		column := Column{Status: status, Label: meta.Label, Color: meta.Color}
		for _, task := range tasks {
			if task.Status == status {
				column.Tasks = append(column.Tasks, task)
			}
		}
		columns = append(columns, column)
	}
	return columns
}

// DropResult is a raw drag-end event from the board. Dest is empty when
// the card was dropped outside any column.
type DropResult struct {
	TaskID      string
	Source      models.TaskStatus
	SourceIndex int
	Dest        models.TaskStatus
	DestIndex   int
}

// CommitDrop turns a drag-end event into at most one store mutation and
// reports whether a move was committed. Drops outside a column and
// drops back onto the exact same position are no-ops, so UpdatedAt is
// never bumped spuriously. A drop at a different index within the same
// column does go through MoveTask, but the store keeps no intra-column
// order, so the reorder itself is not persisted.
func CommitDrop(s *store.Store, result DropResult) bool {
	if result.Dest == "" {
		return false
	}
	if result.Dest == result.Source && result.DestIndex == result.SourceIndex {
		return false
	}
	s.MoveTask(result.TaskID, result.Dest)
	return true
}
