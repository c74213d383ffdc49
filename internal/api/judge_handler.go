package api

import (
	"errors"
	"net/http"

	"github.com/ielts-companion/backend/internal/judge"
	"github.com/ielts-companion/backend/pkg/metrics"
)

// ── Request / Response types ────────────────────────────────────────────────

type CheckAnswerRequest struct {
	UserAnswer    string `json:"userAnswer" example:"the contribution"`
	CorrectAnswer string `json:"correctAnswer" example:"contribution"`
	Question      string `json:"question,omitempty" example:"đóng góp"`
}

type CheckAnswerResponse struct {
	IsCorrect     bool    `json:"isCorrect" example:"true"`
	Similarity    float64 `json:"similarity" example:"92.31"`
	UserAnswer    string  `json:"userAnswer" example:"the contribution"`
	CorrectAnswer string  `json:"correctAnswer" example:"contribution"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// checkAnswer judges a vocabulary-game answer against the expected one.
// @Summary      Check a vocabulary-game answer
// @Description  Judges the learner's answer with exact, containment, and similarity matching after normalization.
// @Tags         VocabularyGame
// @Accept       json
// @Produce      json
// @Param        body  body      CheckAnswerRequest  true  "Answer to check"
// @Success      200   {object}  CheckAnswerResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/vocabulary-game/check [post]
func (h *Handler) checkAnswer(w http.ResponseWriter, r *http.Request) {
	var req CheckAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.UserAnswer == "" || req.CorrectAnswer == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields: userAnswer and correctAnswer")
		return
	}

	result, err := judge.Check(req.UserAnswer, req.CorrectAnswer)
	if err != nil {
		if errors.Is(err, judge.ErrEmptyAnswer) {
			respondError(w, http.StatusBadRequest, "answer is empty after normalization")
			return
		}
		h.logger.Error("answer check failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.RecordJudgeVerdict(result.IsCorrect)

	respondJSON(w, http.StatusOK, CheckAnswerResponse{
		IsCorrect:     result.IsCorrect,
		Similarity:    result.Similarity,
		UserAnswer:    result.NormalizedUser,
		CorrectAnswer: result.NormalizedCorrect,
	})
}
