package handlers

import (
	"errors"
	"net/http"

	"pyquest/internal/credentials"
	"pyquest/internal/security"
	"pyquest/internal/service"
	"pyquest/internal/validation"
)

// AuthHandler handles signup, login and logout
type AuthHandler struct {
	authService   *service.AuthService
	playerService *service.PlayerService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, playerService *service.PlayerService) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		playerService: playerService,
	}
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string            `json:"token"`
	Snapshot *service.Snapshot `json:"snapshot"`
}

// Signup creates a new account
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	account, err := h.authService.Signup(req.Username, req.Password, req.Avatar)
	if err != nil {
		var ve validation.ValidationError
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			respondWithError(w, http.StatusConflict, "That username is already taken", "", nil)
		case errors.As(err, &ve):
			respondWithError(w, http.StatusBadRequest, ve.Message, "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Signup failed", err)
		}
		return
	}

	snapshot, err := h.playerService.Snapshot(account.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Snapshot after signup failed", err)
		return
	}

	respondJSON(w, http.StatusCreated, snapshot)
}

// Login authenticates and opens a session. The session id travels both as
// an http-only cookie (browser flows) and as a bearer token in the body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	session, token, account, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One message for unknown user and wrong password alike
			respondWithError(w, http.StatusUnauthorized, "Invalid username or password", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Login failed", err)
		return
	}

	snapshot, err := h.playerService.Snapshot(account.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Snapshot after login failed", err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusOK, loginResponse{Token: token, Snapshot: snapshot})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword updates the signed-in account's password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	account := GetAccountFromContext(r.Context())
	if account == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if err := h.authService.ChangePassword(account.ID, req.CurrentPassword, req.NewPassword); err != nil {
		var ve validation.ValidationError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondWithError(w, http.StatusUnauthorized, "Current password is incorrect", "", nil)
		case errors.As(err, &ve):
			respondWithError(w, http.StatusBadRequest, ve.Message, "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Password change failed", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"changed": true})
}

// Logout ends the current session; the account and its progress stay
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionID := GetSessionFromContext(r.Context()); sessionID != "" {
		if err := h.authService.Logout(sessionID); err != nil {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Logout failed", err)
			return
		}
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, SessionCookieName))
	respondJSON(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

// SuggestUsernames offers kid-friendly username ideas for the signup form
func (h *AuthHandler) SuggestUsernames(w http.ResponseWriter, r *http.Request) {
	suggestions, err := credentials.SuggestUsernames(3)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Username suggestion failed", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}
