package handlers

import (
	"net/http"

	"github.com/vidhi3000/project-harmony-main/logging"
	"github.com/vidhi3000/project-harmony-main/store"
)

// RequireAuth gates a route on the session state the identity
// collaborator maintains in the store. It is the routing guard: an
// unauthenticated request gets 401 instead of the page redirect the
// browser client performs.
func RequireAuth(s *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !s.IsAuthenticated() {
				logging.Logger.Warnf("Event ID: AUTH_REQUIRED, Description: Unauthenticated request to %s %s", r.Method, r.URL.Path)
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// EnableCORS allows the browser client to call the API from another
// origin.
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
