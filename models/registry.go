package models

// StatusMeta is the display metadata for one board column.
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// PriorityMeta is the display metadata for one task priority.
type PriorityMeta struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	BgColor string `json:"bgColor"`
}

// StatusRegistry maps every task status to its display metadata. Every
// value of TaskStatus must have an entry here or the board and the
// activity feed break.
var StatusRegistry = map[TaskStatus]StatusMeta{
	StatusBacklog:    {Label: "Backlog", Color: "bg-muted-foreground"},
	StatusTodo:       {Label: "To Do", Color: "bg-info"},
	StatusInProgress: {Label: "In Progress", Color: "bg-warning"},
	StatusReview:     {Label: "Review", Color: "bg-primary"},
	StatusDone:       {Label: "Done", Color: "bg-success"},
}

// PriorityRegistry maps every task priority to its display metadata.
// Must stay exhaustive over TaskPriority.
var PriorityRegistry = map[TaskPriority]PriorityMeta{
	PriorityLow:    {Label: "Low", Color: "text-muted-foreground", BgColor: "bg-muted"},
	PriorityMedium: {Label: "Medium", Color: "text-info", BgColor: "bg-info/10"},
	PriorityHigh:   {Label: "High", Color: "text-warning", BgColor: "bg-warning/10"},
	PriorityUrgent: {Label: "Urgent", Color: "text-destructive", BgColor: "bg-destructive/10"},
}
