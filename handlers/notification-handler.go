package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vidhi3000/project-harmony-main/store"
)

type NotificationHandler struct {
	store *store.Store
}

func NewNotificationHandler(s *store.Store) *NotificationHandler {
	return &NotificationHandler{store: s}
}

type notificationsResponse struct {
	Notifications interface{} `json:"notifications"`
	UnreadCount   int         `json:"unreadCount"`
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(notificationsResponse{
		Notifications: h.store.Notifications(),
		UnreadCount:   h.store.UnreadCount(),
	})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.store.MarkNotificationRead(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.store.MarkAllNotificationsRead()
	w.WriteHeader(http.StatusNoContent)
}
