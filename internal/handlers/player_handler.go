package handlers

import (
	"errors"
	"net/http"

	"pyquest/internal/catalog"
	"pyquest/internal/progression"
	"pyquest/internal/service"
	"pyquest/internal/validation"
)

// PlayerHandler serves the signed-in player's profile and progress
type PlayerHandler struct {
	playerService *service.PlayerService
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

type avatarRequest struct {
	Avatar string `json:"avatar"`
}

type livesRequest struct {
	Delta int `json:"delta"`
}

type rewardRequest struct {
	XP    int `json:"xp"`
	Coins int `json:"coins"`
}

// Me returns the full snapshot for the signed-in account
func (h *PlayerHandler) Me(w http.ResponseWriter, r *http.Request) {
	account := GetAccountFromContext(r.Context())
	if account == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	snapshot, err := h.playerService.Snapshot(account.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Snapshot failed", err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// UpdateAvatar changes the account's avatar
func (h *PlayerHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	account := GetAccountFromContext(r.Context())
	if account == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	var req avatarRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	snapshot, err := h.playerService.UpdateAvatar(account.ID, req.Avatar)
	if err != nil {
		var ve validation.ValidationError
		if errors.As(err, &ve) {
			respondWithError(w, http.StatusBadRequest, ve.Message, "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Avatar update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// AdjustLives spends or restores lives. Deltas that would push lives past
// either bound are clamped rather than rejected.
func (h *PlayerHandler) AdjustLives(w http.ResponseWriter, r *http.Request) {
	account := GetAccountFromContext(r.Context())
	if account == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	var req livesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	snapshot, err := h.playerService.AdjustLives(account.ID, req.Delta)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Lives update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// AwardReward adds XP and coins outside of lesson completion, for
// checkpoint quizzes and daily bonuses
func (h *PlayerHandler) AwardReward(w http.ResponseWriter, r *http.Request) {
	account := GetAccountFromContext(r.Context())
	if account == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	var req rewardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	snapshot, err := h.playerService.AddXPAndCoins(account.ID, req.XP, req.Coins)
	if err != nil {
		if errors.Is(err, progression.ErrInvalidAmount) {
			respondWithError(w, http.StatusBadRequest, "XP and coin amounts must not be negative", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Reward failed", err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// Levels lists the level map with per-account unlock and completion state
func (h *PlayerHandler) Levels(w http.ResponseWriter, r *http.Request) {
	account := GetAccountFromContext(r.Context())
	if account == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	snapshot, err := h.playerService.Snapshot(account.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Level map failed", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"levels":       snapshot.Levels,
		"totalLessons": catalog.TotalLessons(),
	})
}
