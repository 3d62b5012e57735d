package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vidhi3000/project-harmony-main/logging"
	"github.com/vidhi3000/project-harmony-main/models"
	"github.com/vidhi3000/project-harmony-main/store"
)

// UserHandler covers the team roster and the signed-in user's profile.
type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

func validRole(role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleMember, models.RoleViewer:
		return true
	}
	return false
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
	Timezone string `json:"timezone"`
}

// InviteUser adds a member to the roster.
func (h *UserHandler) InviteUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleMember
	}
	if !validRole(role) {
		http.Error(w, fmt.Sprintf("Unknown role: %s", req.Role), http.StatusBadRequest)
		return
	}

	user := h.store.AddUser(store.UserFields{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Avatar:   req.Avatar,
		Role:     role,
		Timezone: req.Timezone,
	})
	logging.Logger.Infof("Event ID: USER_INVITED, Description: Added user %s to the roster", user.ID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.store.Users())
}

type userPatchRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
	Role     *string `json:"role"`
	Timezone *string `json:"timezone"`
}

func (req *userPatchRequest) toPatch(w http.ResponseWriter) (store.UserPatch, bool) {
	patch := store.UserPatch{
		Avatar:   req.Avatar,
		Timezone: req.Timezone,
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			http.Error(w, "Name cannot be empty", http.StatusBadRequest)
			return patch, false
		}
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}
	if req.Email != nil {
		if strings.TrimSpace(*req.Email) == "" {
			http.Error(w, "Email cannot be empty", http.StatusBadRequest)
			return patch, false
		}
		email := strings.TrimSpace(*req.Email)
		patch.Email = &email
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !validRole(role) {
			http.Error(w, fmt.Sprintf("Unknown role: %s", *req.Role), http.StatusBadRequest)
			return patch, false
		}
		patch.Role = &role
	}
	return patch, true
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req userPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch, ok := req.toPatch(w)
	if !ok {
		return
	}
	h.store.UpdateUser(id, patch)

	user := h.store.User(id)
	if user == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// RemoveUser drops a member from the roster. Tasks assigned to them
// are left as they are; the board shows them as unassigned.
func (h *UserHandler) RemoveUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.store.RemoveUser(id)
	logging.Logger.Infof("Event ID: USER_REMOVED, Description: Removed user %s from the roster", id)
	w.WriteHeader(http.StatusNoContent)
}

// GetProfile returns the signed-in user.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := h.store.CurrentUser()
	if user == nil {
		http.Error(w, "Not signed in", http.StatusUnauthorized)
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// UpdateProfile merges a patch into the signed-in user's record.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if h.store.CurrentUser() == nil {
		http.Error(w, "Not signed in", http.StatusUnauthorized)
		return
	}

	var req userPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch, ok := req.toPatch(w)
	if !ok {
		return
	}
	h.store.UpdateCurrentUser(patch)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.store.CurrentUser())
}
