package models

// BoardSettings controls which status columns the board renders and in
// what order. Statuses missing from VisibleColumns are omitted from the
// board entirely, not shown empty.
type BoardSettings struct {
	VisibleColumns []TaskStatus `json:"visibleColumns"`
}

func (b BoardSettings) Clone() BoardSettings {
	out := b
	if b.VisibleColumns != nil {
		out.VisibleColumns = append([]TaskStatus(nil), b.VisibleColumns...)
	}
	return out
}

// DefaultBoardSettings shows all five columns in workflow order.
func DefaultBoardSettings() BoardSettings {
	return BoardSettings{VisibleColumns: append([]TaskStatus(nil), AllStatuses...)}
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
