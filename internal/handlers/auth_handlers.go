// File: internal/handlers/auth_handlers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nupat-tech/nupatai/internal/dtos"
	"github.com/nupat-tech/nupatai/internal/middleware"
	"github.com/nupat-tech/nupatai/internal/services"
	"github.com/nupat-tech/nupatai/internal/services/user_services"
)

// AuthHandler exposes registration, login and the token-identity
// endpoints.
type AuthHandler struct {
	authService *user_services.AuthService
	logger      services.Logger
	debug       bool
}

func NewAuthHandler(authService *user_services.AuthService, logger services.Logger, debug bool) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger, debug: debug}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dtos.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	account, token, err := h.authService.Signup(r.Context(), req.Email, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user_services.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, "email already registered")
		case errors.Is(err, user_services.ErrPhoneTaken):
			writeError(w, http.StatusBadRequest, "phone number already registered")
		default:
			h.logger.Error("signup failed", "error", err)
			if h.debug {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, dtos.NewAuthResponse(account, token))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	account, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user_services.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "incorrect email or password")
			return
		}
		h.logger.Error("login failed", "error", err)
		if h.debug {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, dtos.NewAuthResponse(account, token))
}

// Me handles GET /auth/me and returns the authenticated profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	writeJSON(w, http.StatusOK, dtos.NewUserResponse(account))
}

// Logout handles POST /auth/logout. Tokens are stateless so this only
// acknowledges; clients discard the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "successfully logged out"})
}
