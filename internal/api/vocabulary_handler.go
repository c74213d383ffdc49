package api

import (
	"net/http"
	"strings"

	"github.com/ielts-companion/backend/internal/domain/material"
	"github.com/ielts-companion/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type VocabularyRequest struct {
	Topic    string `json:"topic" example:"environment"`
	TaskType string `json:"taskType" example:"speaking"`
}

type VocabularyLearnRequest struct {
	// Words is the raw learner input, comma or newline separated.
	Words string `json:"words" example:"contribution, sustainable"`
}

type VocabularyLearnResponse struct {
	Results []material.WordBreakdown `json:"results"`
}

type SessionListResponse[T any] struct {
	Sessions []T `json:"sessions"`
}

type DeleteSessionRequest struct {
	ID int64 `json:"id" example:"3"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// generateVocabulary produces phrase lists for a topic.
// @Summary      Generate topic phrases
// @Description  Generates two sets of phrases and idioms for a topic, aimed at speaking or writing.
// @Tags         Vocabulary
// @Accept       json
// @Produce      json
// @Param        body  body      VocabularyRequest  true  "Topic and task type"
// @Success      200   {object}  material.PhraseSets
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/vocabulary [post]
func (h *Handler) generateVocabulary(w http.ResponseWriter, r *http.Request) {
	var req VocabularyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "topic is required")
		return
	}
	if req.TaskType == "" {
		req.TaskType = "speaking"
	}

	sets, err := h.gen.Vocabulary(r.Context(), req.Topic, req.TaskType)
	if h.handleGenerationError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, sets)
}

// learnVocabulary generates per-word breakdowns and saves the run.
// @Summary      Break down vocabulary words
// @Description  Generates a detailed study entry for each word and persists the run as a learning session.
// @Tags         Vocabulary
// @Accept       json
// @Produce      json
// @Param        body  body      VocabularyLearnRequest  true  "Words to study"
// @Success      200   {object}  VocabularyLearnResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/vocabulary-learn [post]
func (h *Handler) learnVocabulary(w http.ResponseWriter, r *http.Request) {
	var req VocabularyLearnRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	words := splitWords(req.Words)
	if len(words) == 0 {
		respondError(w, http.StatusBadRequest, "words is required")
		return
	}

	results, err := h.gen.VocabularyLearn(r.Context(), words)
	if h.handleGenerationError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, VocabularyLearnResponse{Results: results})
}

// listVocabSessions returns saved learning sessions, newest first.
// @Summary      List vocabulary learning sessions
// @Tags         Vocabulary
// @Produce      json
// @Success      200  {object}  SessionListResponse[store.VocabSession]
// @Router       /api/vocabulary-learn [get]
func (h *Handler) listVocabSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.ListVocabSessions(r.Context())
	if h.handleStoreError(w, err, "sessions") {
		return
	}
	if sessions == nil {
		sessions = []store.VocabSession{}
	}
	respondJSON(w, http.StatusOK, SessionListResponse[store.VocabSession]{Sessions: sessions})
}

// deleteVocabSession removes one saved learning session.
// @Summary      Delete a vocabulary learning session
// @Tags         Vocabulary
// @Accept       json
// @Param        body  body  DeleteSessionRequest  true  "Session id"
// @Success      204
// @Failure      404   {object}  map[string]string
// @Router       /api/vocabulary-learn [delete]
func (h *Handler) deleteVocabSession(w http.ResponseWriter, r *http.Request) {
	var req DeleteSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.store.DeleteVocabSession(r.Context(), req.ID)
	if h.handleStoreError(w, err, "session") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// splitWords turns raw learner input into clean words. Commas, semicolons,
// and newlines all work as separators.
func splitWords(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := strings.TrimSpace(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}
