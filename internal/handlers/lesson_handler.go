package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pyquest/internal/catalog"
	"pyquest/internal/evaluator"
	"pyquest/internal/progression"
	"pyquest/internal/service"
)

// LessonHandler serves lesson metadata, completion and code runs
type LessonHandler struct {
	playerService *service.PlayerService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(playerService *service.PlayerService) *LessonHandler {
	return &LessonHandler{playerService: playerService}
}

type completionRequest struct {
	XP               int `json:"xp"`
	Coins            int `json:"coins"`
	Attempts         int `json:"attempts"`
	TimeSpentSeconds int `json:"timeSpentSeconds"`
}

type runRequest struct {
	Source string `json:"source"`
}

type lessonResponse struct {
	catalog.Lesson
	Level catalog.Level `json:"level"`
}

func lessonIDFromPath(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// GetLesson returns lesson metadata together with its level
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	id, err := lessonIDFromPath(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lesson id", "", nil)
		return
	}

	lesson, err := catalog.GetLesson(id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Lesson not found", "", nil)
		return
	}
	level, err := catalog.LevelByLesson(id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Lesson not found", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, lessonResponse{Lesson: lesson, Level: level})
}

// CompleteLesson records a finished lesson and awards its rewards
func (h *LessonHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	account := GetAccountFromContext(r.Context())
	if account == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	id, err := lessonIDFromPath(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lesson id", "", nil)
		return
	}

	var req completionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	snapshot, err := h.playerService.CompleteLesson(account.ID, id, req.XP, req.Coins, req.Attempts, req.TimeSpentSeconds)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownLesson):
			respondWithError(w, http.StatusNotFound, "Lesson not found", "", nil)
		case errors.Is(err, progression.ErrInvalidAmount):
			respondWithError(w, http.StatusBadRequest, "Invalid completion data", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Completion failed", err)
		}
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// RunCode evaluates submitted lesson code and returns its simulated
// output plus the lesson checklist flags it satisfied. Running code is
// free of side effects on progress; completion is a separate call.
func (h *LessonHandler) RunCode(w http.ResponseWriter, r *http.Request) {
	id, err := lessonIDFromPath(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lesson id", "", nil)
		return
	}
	if _, err := catalog.LevelByLesson(id); err != nil {
		respondWithError(w, http.StatusNotFound, "Lesson not found", "", nil)
		return
	}

	var req runRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	result := evaluator.Run(req.Source, evaluator.ForLesson(id))
	respondJSON(w, http.StatusOK, result)
}
