package store

import "github.com/vidhi3000/project-harmony-main/models"

// NotificationFields carries the caller-supplied fields of a new
// notification. New notifications start unread.
type NotificationFields struct {
	Type    models.NotificationType
	Title   string
	Message string
	Link    string
}

// AddNotification appends a new notification with a generated unique id
// and returns a copy of it.
func (s *Store) AddNotification(fields NotificationFields) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification := models.Notification{
		ID:        newID(),
		Type:      fields.Type,
		Title:     fields.Title,
		Message:   fields.Message,
		Read:      false,
		CreatedAt: s.now(),
		Link:      fields.Link,
	}
	s.notifications = append(s.notifications, notification)
	return notification
}

// MarkNotificationRead marks one notification as read. Unknown ids are
// silently ignored.
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// MarkAllNotificationsRead marks every notification as read.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// UnreadCount returns the number of unread notifications.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			count++
		}
	}
	return count
}

// Notifications returns a snapshot of the notification collection in
// insertion order.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}
