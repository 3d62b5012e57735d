package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vidhi3000/project-harmony-main/models"
	"github.com/vidhi3000/project-harmony-main/store"
)

// SettingsHandler covers the UI-adjacent preferences: theme and
// sidebar state.
type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

type preferencesResponse struct {
	Theme       models.Theme `json:"theme"`
	SidebarOpen bool         `json:"sidebarOpen"`
}

func (h *SettingsHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(preferencesResponse{
		Theme:       h.store.Theme(),
		SidebarOpen: h.store.SidebarOpen(),
	})
}

type preferencesRequest struct {
	Theme       *string `json:"theme"`
	SidebarOpen *bool   `json:"sidebarOpen"`
}

func (h *SettingsHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Theme != nil {
		theme := models.Theme(*req.Theme)
		if theme != models.ThemeLight && theme != models.ThemeDark {
			http.Error(w, fmt.Sprintf("Unknown theme: %s", *req.Theme), http.StatusBadRequest)
			return
		}
		h.store.SetTheme(theme)
	}
	if req.SidebarOpen != nil {
		h.store.SetSidebarOpen(*req.SidebarOpen)
	}

	h.GetPreferences(w, r)
}

func (h *SettingsHandler) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	h.store.ToggleSidebar()
	h.GetPreferences(w, r)
}
