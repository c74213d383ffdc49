package api

import (
	"net/http"

	"github.com/ielts-companion/backend/internal/domain/material"
)

// ── Request / Response types ────────────────────────────────────────────────

type SpeakingRequest struct {
	Question string   `json:"question" example:"Describe a person who has influenced you."`
	Part     string   `json:"part" example:"2"`
	Bands    []string `json:"bands" example:"6.5,7.5"`
}

type SpeakingResponse struct {
	Results []material.BandAnswer `json:"results"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// generateSpeaking produces one model answer per requested band.
// @Summary      Generate speaking answers
// @Description  Generates an IELTS speaking answer for each requested band, with vocabulary and structures.
// @Tags         Speaking
// @Accept       json
// @Produce      json
// @Param        body  body      SpeakingRequest  true  "Question, part, and target bands"
// @Success      200   {object}  SpeakingResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/speaking [post]
func (h *Handler) generateSpeaking(w http.ResponseWriter, r *http.Request) {
	var req SpeakingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "question is required")
		return
	}
	if len(req.Bands) == 0 {
		respondError(w, http.StatusBadRequest, "at least one band is required")
		return
	}
	if req.Part == "" {
		req.Part = "1"
	}

	results, err := h.gen.Speaking(r.Context(), req.Question, req.Part, req.Bands)
	if h.handleGenerationError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SpeakingResponse{Results: results})
}
