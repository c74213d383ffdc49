package api

import (
	"net/http"

	"github.com/ielts-companion/backend/internal/domain/material"
)

// ── Request / Response types ────────────────────────────────────────────────

type WritingRequest struct {
	Input       string   `json:"input" example:"Some people think technology makes life more complex."`
	ImageBase64 string   `json:"imageBase64,omitempty"`
	TaskType    string   `json:"taskType" example:"2"`
	Bands       []string `json:"bands" example:"6.5,7.5"`
}

type WritingResponse struct {
	Results []material.BandResponse `json:"results"`
}

type WritingFixRequest struct {
	Question            string `json:"question,omitempty"`
	QuestionImageBase64 string `json:"questionImageBase64,omitempty"`
	Answer              string `json:"answer"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// generateWriting produces one model response per requested band.
// @Summary      Generate writing responses
// @Description  Generates an IELTS writing response for each requested band. Task 1 charts can be sent as a base64 image.
// @Tags         Writing
// @Accept       json
// @Produce      json
// @Param        body  body      WritingRequest  true  "Task input and target bands"
// @Success      200   {object}  WritingResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/writing [post]
func (h *Handler) generateWriting(w http.ResponseWriter, r *http.Request) {
	var req WritingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Input == "" && req.ImageBase64 == "" {
		respondError(w, http.StatusBadRequest, "input or imageBase64 is required")
		return
	}
	if len(req.Bands) == 0 {
		respondError(w, http.StatusBadRequest, "at least one band is required")
		return
	}
	if req.TaskType == "" {
		req.TaskType = "2"
	}

	results, err := h.gen.Writing(r.Context(), req.Input, req.ImageBase64, req.TaskType, req.Bands)
	if h.handleGenerationError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, WritingResponse{Results: results})
}

// fixWriting analyzes a learner's writing and reports every error found.
// @Summary      Analyze a writing submission
// @Description  Scores the answer, lists grammar/typo/spelling errors, and returns a corrected version.
// @Tags         Writing
// @Accept       json
// @Produce      json
// @Param        body  body      WritingFixRequest  true  "Question (text or image) and the learner's answer"
// @Success      200   {object}  material.WritingFixReport
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/writing-fix [post]
func (h *Handler) fixWriting(w http.ResponseWriter, r *http.Request) {
	var req WritingFixRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Answer == "" {
		respondError(w, http.StatusBadRequest, "answer is required")
		return
	}
	if req.Question == "" && req.QuestionImageBase64 == "" {
		respondError(w, http.StatusBadRequest, "question or questionImageBase64 is required")
		return
	}

	report, err := h.gen.WritingFix(r.Context(), req.Question, req.QuestionImageBase64, req.Answer)
	if h.handleGenerationError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, report)
}
