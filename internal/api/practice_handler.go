package api

import (
	"net/http"

	"github.com/ielts-companion/backend/internal/domain/material"
	"github.com/ielts-companion/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type PracticeRequest struct {
	Topic            string `json:"topic" example:"explaining a production incident to the team"`
	ConversationName string `json:"conversationName,omitempty"`
	Format           string `json:"format,omitempty" example:"conversation"`
}

type AnalyzeSpeechRequest struct {
	Speech           string `json:"speech"`
	ConversationName string `json:"conversationName,omitempty"`
}

type PracticeResponse struct {
	ID               int64  `json:"id,omitempty"`
	ConversationName string `json:"conversationName"`
	*material.PracticeMaterials
}

type GenerateNameRequest struct {
	Topic string `json:"topic" example:"sprint planning"`
}

type GenerateNameResponse struct {
	ConversationName string `json:"conversationName" example:"Sprint Planning Discussion"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// generatePractice creates a practice speech or conversation with study aids.
// @Summary      Generate speaking practice
// @Description  Generates a practice speech or two-person conversation for a work scenario, with vocabulary, idioms, grammar, and sentence patterns, and saves the session.
// @Tags         SpeakingPractice
// @Accept       json
// @Produce      json
// @Param        body  body      PracticeRequest  true  "Scenario topic and format"
// @Success      200   {object}  PracticeResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/speaking-practice [post]
func (h *Handler) generatePractice(w http.ResponseWriter, r *http.Request) {
	var req PracticeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "topic is required")
		return
	}
	if req.Format == "" {
		req.Format = "speech"
	}
	if req.ConversationName == "" {
		req.ConversationName = h.gen.GenerateName(r.Context(), req.Topic)
	}

	materials, id, err := h.gen.SpeakingPractice(r.Context(), req.Topic, req.ConversationName, req.Format)
	if h.handleGenerationError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, PracticeResponse{
		ID:                id,
		ConversationName:  req.ConversationName,
		PracticeMaterials: materials,
	})
}

// analyzeSpeech extracts study aids from text the learner pastes in.
// @Summary      Analyze a speech or conversation
// @Description  Extracts vocabulary, idioms, grammar, and sentence patterns from existing text and saves the session.
// @Tags         SpeakingPractice
// @Accept       json
// @Produce      json
// @Param        body  body      AnalyzeSpeechRequest  true  "Text to analyze"
// @Success      200   {object}  PracticeResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/speaking-practice/analyze [post]
func (h *Handler) analyzeSpeech(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeSpeechRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Speech == "" {
		respondError(w, http.StatusBadRequest, "speech is required")
		return
	}
	if req.ConversationName == "" {
		req.ConversationName = "Analyzed Speech"
	}

	materials, id, err := h.gen.AnalyzeSpeech(r.Context(), req.Speech, req.ConversationName)
	if h.handleGenerationError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, PracticeResponse{
		ID:                id,
		ConversationName:  req.ConversationName,
		PracticeMaterials: materials,
	})
}

// generateSessionName names a practice session from its topic.
// @Summary      Generate a session name
// @Description  Produces a short session name. Falls back to "topic - date" if the provider is unavailable.
// @Tags         SpeakingPractice
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateNameRequest  true  "Session topic"
// @Success      200   {object}  GenerateNameResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/speaking-practice/generate-name [post]
func (h *Handler) generateSessionName(w http.ResponseWriter, r *http.Request) {
	var req GenerateNameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "topic is required")
		return
	}

	name := h.gen.GenerateName(r.Context(), req.Topic)
	respondJSON(w, http.StatusOK, GenerateNameResponse{ConversationName: name})
}

// listSpeakingSessions returns saved practice sessions, newest first.
// @Summary      List speaking practice sessions
// @Tags         SpeakingPractice
// @Produce      json
// @Success      200  {object}  SessionListResponse[store.SpeakingSession]
// @Router       /api/speaking-practice [get]
func (h *Handler) listSpeakingSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.ListSpeakingSessions(r.Context())
	if h.handleStoreError(w, err, "sessions") {
		return
	}
	if sessions == nil {
		sessions = []store.SpeakingSession{}
	}
	respondJSON(w, http.StatusOK, SessionListResponse[store.SpeakingSession]{Sessions: sessions})
}

// deleteSpeakingSession removes one saved practice session.
// @Summary      Delete a speaking practice session
// @Tags         SpeakingPractice
// @Accept       json
// @Param        body  body  DeleteSessionRequest  true  "Session id"
// @Success      204
// @Failure      404   {object}  map[string]string
// @Router       /api/speaking-practice [delete]
func (h *Handler) deleteSpeakingSession(w http.ResponseWriter, r *http.Request) {
	var req DeleteSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.store.DeleteSpeakingSession(r.Context(), req.ID)
	if h.handleStoreError(w, err, "session") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
