package models

import "time"

type NotificationType string

const (
	NotificationTaskAssigned  NotificationType = "task_assigned"
	NotificationComment       NotificationType = "comment"
	NotificationDeadline      NotificationType = "deadline"
	NotificationProjectUpdate NotificationType = "project_update"
	NotificationMention       NotificationType = "mention"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
	Link      string           `json:"link,omitempty"`
}
