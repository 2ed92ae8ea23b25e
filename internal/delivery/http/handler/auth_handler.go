package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pokedex/internal/application/auth"
	domain "pokedex/internal/domain/auth"
	"pokedex/internal/domain/user"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Pseudo == "" || req.Email == "" || req.Password == "" {
		SendError(w, "Pseudo, email, and password are required", http.StatusBadRequest)
		return
	}

	newUser, token, err := h.service.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserAlreadyExists):
			SendError(w, "User already exists", http.StatusBadRequest)
		case errors.Is(err, user.ErrInvalidEmail):
			SendError(w, "Invalid email address", http.StatusBadRequest)
		default:
			SendInternalError(w, "Failed to register user", err)
		}
		return
	}

	SendJSON(w, http.StatusCreated, domain.RegisterResponse{
		ID:     newUser.ID,
		Pseudo: newUser.Pseudo,
		Email:  newUser.Email,
		Token:  token,
	})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			SendError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		SendInternalError(w, "Failed to login", err)
		return
	}

	SendJSON(w, http.StatusOK, domain.LoginResponse{Token: token})
}
