package api

import (
	"net/http"
	"strconv"

	"github.com/ielts-companion/backend/internal/domain/lesson"
	"github.com/ielts-companion/backend/internal/domain/material"
)

// ── Request / Response types ────────────────────────────────────────────────

type LessonRequest struct {
	Name    string `json:"name" example:"Unit 3: Environment"`
	Content string `json:"content"`
}

type LessonListResponse struct {
	Lessons []lesson.Lesson `json:"lessons"`
}

type GameCardsRequest struct {
	Content string `json:"content"`
}

type GameCardsResponse struct {
	Cards []material.GameCard `json:"cards"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listLessons returns all saved lessons, newest first.
// @Summary      List lessons
// @Tags         Lessons
// @Produce      json
// @Success      200  {object}  LessonListResponse
// @Router       /api/lessons [get]
func (h *Handler) listLessons(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.store.ListLessons(r.Context())
	if h.handleStoreError(w, err, "lessons") {
		return
	}
	if lessons == nil {
		lessons = []lesson.Lesson{}
	}
	respondJSON(w, http.StatusOK, LessonListResponse{Lessons: lessons})
}

// createLesson saves a new lesson.
// @Summary      Create a lesson
// @Tags         Lessons
// @Accept       json
// @Produce      json
// @Param        body  body      LessonRequest  true  "Lesson to save"
// @Success      201   {object}  lesson.Lesson
// @Failure      400   {object}  map[string]string
// @Router       /api/lessons [post]
func (h *Handler) createLesson(w http.ResponseWriter, r *http.Request) {
	var req LessonRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := lesson.New(req.Name, req.Content)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveLesson(r.Context(), l); h.handleStoreError(w, err, "lesson") {
		return
	}
	respondJSON(w, http.StatusCreated, l)
}

// updateLesson replaces a lesson's name and content.
// @Summary      Update a lesson
// @Tags         Lessons
// @Accept       json
// @Produce      json
// @Param        lessonID  path      int            true  "Lesson ID"
// @Param        body      body      LessonRequest  true  "New name and content"
// @Success      200       {object}  lesson.Lesson
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/lessons/{lessonID} [put]
func (h *Handler) updateLesson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("lessonID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	var req LessonRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := lesson.New(req.Name, req.Content)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	l.ID = id

	if err := h.store.UpdateLesson(r.Context(), l); h.handleStoreError(w, err, "lesson") {
		return
	}
	respondJSON(w, http.StatusOK, l)
}

// deleteLesson removes a lesson.
// @Summary      Delete a lesson
// @Tags         Lessons
// @Param        lessonID  path  int  true  "Lesson ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/lessons/{lessonID} [delete]
func (h *Handler) deleteLesson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("lessonID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	if err := h.store.DeleteLesson(r.Context(), id); h.handleStoreError(w, err, "lesson") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lessonGameCards turns lesson content into flashcards for the matching game.
// @Summary      Build flashcards from lesson content
// @Description  Extracts word/meaning pairs from lesson content. Content that is already a card array is returned as-is.
// @Tags         Lessons
// @Accept       json
// @Produce      json
// @Param        body  body      GameCardsRequest  true  "Lesson content"
// @Success      200   {object}  GameCardsResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/lessons/game [post]
func (h *Handler) lessonGameCards(w http.ResponseWriter, r *http.Request) {
	var req GameCardsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Content == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}

	cards, err := h.gen.LessonGameCards(r.Context(), req.Content)
	if h.handleGenerationError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, GameCardsResponse{Cards: cards})
}
