package handlers

import (
	"log"
	"net/http"

	"github.com/novamint/rewards-be/internal/http/respond"
	"github.com/novamint/rewards-be/internal/storage"
)

// UsersHandler serves the user listing endpoints. The same listing backs both
// the authenticated and the admin-only route; the role gate lives in
// middleware, not here.
type UsersHandler struct {
	store storage.UserStore
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(store storage.UserStore) *UsersHandler {
	return &UsersHandler{store: store}
}

// HandleList returns every user record. Password hashes are excluded by the
// model's serialization rules.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		log.Printf("list users: %v", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	respond.JSON(w, http.StatusOK, users)
}
