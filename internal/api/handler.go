// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ielts-companion/backend/internal/service"
	"github.com/ielts-companion/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store  store.Store
	gen    *service.Service
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s store.Store, gen *service.Service, logger *slog.Logger) *Handler {
	return &Handler{
		store:  s,
		gen:    gen,
		logger: logger,
	}
}

// RegisterRoutes wires every API route onto mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Answer judge
	mux.HandleFunc("POST /api/vocabulary-game/check", h.checkAnswer)

	// Generation features
	mux.HandleFunc("POST /api/speaking", h.generateSpeaking)
	mux.HandleFunc("POST /api/writing", h.generateWriting)
	mux.HandleFunc("POST /api/writing-fix", h.fixWriting)
	mux.HandleFunc("POST /api/vocabulary", h.generateVocabulary)

	// Vocabulary learning sessions
	mux.HandleFunc("GET /api/vocabulary-learn", h.listVocabSessions)
	mux.HandleFunc("POST /api/vocabulary-learn", h.learnVocabulary)
	mux.HandleFunc("DELETE /api/vocabulary-learn", h.deleteVocabSession)

	// Speaking practice sessions
	mux.HandleFunc("GET /api/speaking-practice", h.listSpeakingSessions)
	mux.HandleFunc("POST /api/speaking-practice", h.generatePractice)
	mux.HandleFunc("DELETE /api/speaking-practice", h.deleteSpeakingSession)
	mux.HandleFunc("POST /api/speaking-practice/analyze", h.analyzeSpeech)
	mux.HandleFunc("POST /api/speaking-practice/generate-name", h.generateSessionName)

	// Lessons
	mux.HandleFunc("GET /api/lessons", h.listLessons)
	mux.HandleFunc("POST /api/lessons", h.createLesson)
	mux.HandleFunc("PUT /api/lessons/{lessonID}", h.updateLesson)
	mux.HandleFunc("DELETE /api/lessons/{lessonID}", h.deleteLesson)
	mux.HandleFunc("POST /api/lessons/game", h.lessonGameCards)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body, which is what the web UI expects.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false (and writes a
// 400) when the body is not valid JSON; the caller should return.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// handleGenerationError maps completion failures to a 502. Returns true if
// an error was handled (caller should return).
func (h *Handler) handleGenerationError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	var genErr *service.GenerationError
	if errors.As(err, &genErr) {
		respondError(w, http.StatusBadGateway, "failed to generate "+genErr.Feature+" content")
		return true
	}
	h.logger.Error("unexpected generation error", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
