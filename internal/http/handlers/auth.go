package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/novamint/rewards-be/internal/auth"
	"github.com/novamint/rewards-be/internal/http/respond"
	"github.com/novamint/rewards-be/internal/models"
	"github.com/novamint/rewards-be/internal/models/dto"
	"github.com/novamint/rewards-be/internal/storage"
)

// AuthHandler owns the register and login endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
	hasher *auth.PasswordHasher
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, hasher *auth.PasswordHasher) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, hasher: hasher}
}

// HandleRegister creates a new user-role account. No token is issued here;
// clients log in separately.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "username, email, and password are required")
		return
	}

	passwordHash, err := h.hasher.Hash(req.Password)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	// The insert itself detects duplicates; checking first would race with a
	// concurrent registration for the same email.
	_, err = h.store.CreateUser(r.Context(), models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusBadRequest, "email already in use")
			return
		}
		log.Printf("create user error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, http.StatusCreated, dto.MessageResponse{Message: "registration successful"})
}

// HandleLogin verifies credentials and issues a bearer token. An unknown
// email and a wrong password are distinct failures with distinct statuses.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.store.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusBadRequest, "user not found")
			return
		}
		log.Printf("login: fetch user %s: %v", email, err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !h.hasher.Verify(req.Password, user.PasswordHash) {
		respond.Error(w, http.StatusUnauthorized, "incorrect password")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Role)
	if err != nil {
		log.Printf("login: generate token for user %d: %v", user.ID, err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	respond.JSON(w, http.StatusOK, dto.LoginResponse{Token: token})
}
