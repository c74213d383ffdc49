// Package service implements the learning-material generation features on
// top of a completion provider and the session store.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ielts-companion/backend/internal/completion"
	"github.com/ielts-companion/backend/internal/domain/material"
	"github.com/ielts-companion/backend/internal/prompt"
	"github.com/ielts-companion/backend/internal/store"
	"github.com/ielts-companion/backend/internal/worker"
	"github.com/ielts-companion/backend/pkg/metrics"
)

// GenerationError reports a failed completion call for one feature. It
// wraps the underlying provider or parse error.
type GenerationError struct {
	Feature string
	Reason  string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Feature, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Feature, e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Service generates learning materials and persists the session-backed
// features. It is safe for concurrent use.
type Service struct {
	client  completion.Client
	store   store.Store
	logger  *slog.Logger
	workers int
}

func New(client completion.Client, st store.Store, logger *slog.Logger, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		client:  client,
		store:   st,
		logger:  logger,
		workers: workers,
	}
}

// generateJSON runs one completion call and decodes the JSON payload into
// out. Models occasionally wrap JSON in prose or markdown fences even when
// asked not to, so a balanced-brace extraction runs before giving up.
func (s *Service) generateJSON(ctx context.Context, feature string, req completion.Request, out any, validate func() error) error {
	start := time.Now()
	err := s.completeJSON(ctx, req, out, validate)
	metrics.RecordGeneration(feature, err, time.Since(start))
	if err != nil {
		s.logger.Error("generation failed", "feature", feature, "error", err)
		return &GenerationError{Feature: feature, Reason: "generation failed", Err: err}
	}
	return nil
}

func (s *Service) completeJSON(ctx context.Context, req completion.Request, out any, validate func() error) error {
	raw, err := s.client.Complete(ctx, req)
	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(raw)
	if err := json.Unmarshal([]byte(trimmed), out); err != nil {
		extracted := completion.ExtractJSON(trimmed)
		if extracted == "" {
			return fmt.Errorf("no JSON object in response: %w", err)
		}
		if err := json.Unmarshal([]byte(extracted), out); err != nil {
			return fmt.Errorf("parse extracted JSON: %w", err)
		}
	}

	if validate != nil {
		return validate()
	}
	return nil
}

type bandOutcome[T any] struct {
	value T
	err   error
}

// Speaking generates one answer per requested band, concurrently. Results
// come back in the order bands were given.
func (s *Service) Speaking(ctx context.Context, question, part string, bands []string) ([]material.BandAnswer, error) {
	pool := worker.NewPool[bandOutcome[material.BandAnswer]](s.workers, len(bands))
	defer pool.Close()

	for _, band := range bands {
		band := band
		pool.Submit(band, func() bandOutcome[material.BandAnswer] {
			var answer material.BandAnswer
			err := s.generateJSON(ctx, "speaking", completion.Request{
				System:      prompt.SystemExaminer,
				Prompt:      prompt.Speaking(question, part, band),
				JSONMode:    true,
				Temperature: 0.7,
			}, &answer, func() error {
				if answer.Answer == "" {
					return fmt.Errorf("band %s: empty answer", band)
				}
				return nil
			})
			answer.Band = band
			return bandOutcome[material.BandAnswer]{value: answer, err: err}
		})
	}

	byBand := make(map[string]material.BandAnswer, len(bands))
	for range bands {
		result := <-pool.Results()
		if result.Output.err != nil {
			return nil, result.Output.err
		}
		byBand[result.JobID] = result.Output.value
	}

	answers := make([]material.BandAnswer, 0, len(bands))
	for _, band := range bands {
		answers = append(answers, byBand[band])
	}
	return answers, nil
}

// Writing generates one writing response per requested band, concurrently.
// An optional task image is forwarded to the provider with every call.
func (s *Service) Writing(ctx context.Context, input, imageBase64, taskType string, bands []string) ([]material.BandResponse, error) {
	pool := worker.NewPool[bandOutcome[material.BandResponse]](s.workers, len(bands))
	defer pool.Close()

	for _, band := range bands {
		band := band
		pool.Submit(band, func() bandOutcome[material.BandResponse] {
			var response material.BandResponse
			err := s.generateJSON(ctx, "writing", completion.Request{
				System:      prompt.SystemExaminer,
				Prompt:      prompt.Writing(input, taskType, band),
				ImageBase64: imageBase64,
				JSONMode:    true,
				Temperature: 0.7,
			}, &response, func() error {
				if response.Response == "" {
					return fmt.Errorf("band %s: empty response", band)
				}
				return nil
			})
			response.Band = band
			return bandOutcome[material.BandResponse]{value: response, err: err}
		})
	}

	byBand := make(map[string]material.BandResponse, len(bands))
	for range bands {
		result := <-pool.Results()
		if result.Output.err != nil {
			return nil, result.Output.err
		}
		byBand[result.JobID] = result.Output.value
	}

	responses := make([]material.BandResponse, 0, len(bands))
	for _, band := range bands {
		responses = append(responses, byBand[band])
	}
	return responses, nil
}

// WritingFix analyzes a learner's writing and reports errors plus a
// corrected version. The question may arrive as text or as an image.
func (s *Service) WritingFix(ctx context.Context, question, questionImageBase64, answer string) (*material.WritingFixReport, error) {
	var report material.WritingFixReport
	err := s.generateJSON(ctx, "writing_fix", completion.Request{
		System:      prompt.SystemExaminer,
		Prompt:      prompt.WritingFix(question, questionImageBase64 != "", answer),
		ImageBase64: questionImageBase64,
		JSONMode:    true,
		Temperature: 0.3,
	}, &report, func() error {
		if report.CorrectedAnswer == "" {
			return fmt.Errorf("empty corrected answer")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Vocabulary generates topic phrase lists for speaking or writing.
func (s *Service) Vocabulary(ctx context.Context, topic, taskType string) (*material.PhraseSets, error) {
	var sets material.PhraseSets
	err := s.generateJSON(ctx, "vocabulary", completion.Request{
		System:      prompt.SystemTeacher,
		Prompt:      prompt.Vocabulary(topic, taskType),
		JSONMode:    true,
		Temperature: 0.7,
	}, &sets, func() error {
		if len(sets.Vocabulary) == 0 {
			return fmt.Errorf("empty vocabulary list")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sets, nil
}

// VocabularyLearn generates a breakdown for each word and persists the run
// as a learning session. A failed save is logged, not surfaced: the
// learner still gets the materials.
func (s *Service) VocabularyLearn(ctx context.Context, words []string) ([]material.WordBreakdown, error) {
	var payload struct {
		Results []material.WordBreakdown `json:"results"`
	}
	err := s.generateJSON(ctx, "vocabulary_learn", completion.Request{
		System:      prompt.SystemTeacher,
		Prompt:      prompt.VocabularyLearn(words),
		JSONMode:    true,
		Temperature: 0.3,
	}, &payload, func() error {
		if len(payload.Results) == 0 {
			return fmt.Errorf("empty results list")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resultsJSON, err := json.Marshal(payload.Results); err == nil {
		if _, err := s.store.SaveVocabSession(ctx, strings.Join(words, ", "), string(resultsJSON)); err != nil {
			s.logger.Error("failed to save vocab session", "error", err)
		}
	}
	return payload.Results, nil
}

// SpeakingPractice generates a practice speech or conversation with study
// aids and persists it under conversationName. Returns the session id, or
// zero when the save failed (logged, not surfaced).
func (s *Service) SpeakingPractice(ctx context.Context, topic, conversationName, format string) (*material.PracticeMaterials, int64, error) {
	var materials material.PracticeMaterials
	err := s.generateJSON(ctx, "speaking_practice", completion.Request{
		System:      prompt.SystemCoach,
		Prompt:      prompt.SpeakingPractice(topic, format),
		JSONMode:    true,
		Temperature: 0.7,
	}, &materials, func() error {
		if materials.Speech == "" {
			return fmt.Errorf("empty speech")
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	id := s.saveSpeakingSession(ctx, conversationName, topic, &materials)
	return &materials, id, nil
}

// AnalyzeSpeech extracts study aids from an existing speech or conversation
// and persists the analysis as a practice session.
func (s *Service) AnalyzeSpeech(ctx context.Context, speech, conversationName string) (*material.PracticeMaterials, int64, error) {
	var materials material.PracticeMaterials
	err := s.generateJSON(ctx, "analyze_speech", completion.Request{
		System:      prompt.SystemCoach,
		Prompt:      prompt.AnalyzeSpeech(speech),
		JSONMode:    true,
		Temperature: 0.3,
	}, &materials, func() error {
		if len(materials.Vocabulary) == 0 {
			return fmt.Errorf("empty vocabulary list")
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if materials.Speech == "" {
		materials.Speech = speech
	}

	id := s.saveSpeakingSession(ctx, conversationName, "Analyzed Speech", &materials)
	return &materials, id, nil
}

func (s *Service) saveSpeakingSession(ctx context.Context, conversationName, topic string, materials *material.PracticeMaterials) int64 {
	resultsJSON, err := json.Marshal(materials)
	if err != nil {
		s.logger.Error("failed to marshal practice materials", "error", err)
		return 0
	}
	id, err := s.store.SaveSpeakingSession(ctx, conversationName, topic, string(resultsJSON))
	if err != nil {
		s.logger.Error("failed to save speaking session", "error", err)
		return 0
	}
	return id
}

// GenerateName asks the provider for a short session name. Any failure
// falls back to "<topic> - <date>" so the caller always gets a name.
func (s *Service) GenerateName(ctx context.Context, topic string) string {
	start := time.Now()
	raw, err := s.client.Complete(ctx, completion.Request{
		Prompt:      prompt.SessionName(topic),
		Temperature: 0.7,
		MaxTokens:   50,
	})
	metrics.RecordGeneration("generate_name", err, time.Since(start))
	if err != nil {
		s.logger.Warn("name generation failed, using fallback", "error", err)
		return fallbackName(topic)
	}

	name := strings.TrimSpace(raw)
	name = strings.Trim(name, `"'`)
	if name == "" {
		return fallbackName(topic)
	}
	return name
}

func fallbackName(topic string) string {
	return fmt.Sprintf("%s - %s", topic, time.Now().Format("2006-01-02"))
}

// LessonGameCards turns lesson content into flashcards. Content that is
// already a [{word, meaning}] JSON array is returned as-is without a
// provider call, so saved card sets replay instantly.
func (s *Service) LessonGameCards(ctx context.Context, content string) ([]material.GameCard, error) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "[") {
		var cards []material.GameCard
		if err := json.Unmarshal([]byte(trimmed), &cards); err == nil && len(cards) > 0 && cards[0].Word != "" {
			return cards, nil
		}
	}

	var payload struct {
		Cards []material.GameCard `json:"cards"`
	}
	err := s.generateJSON(ctx, "lesson_game", completion.Request{
		System:      prompt.SystemTeacher,
		Prompt:      prompt.GameCards(content),
		JSONMode:    true,
		Temperature: 0.5,
	}, &payload, func() error {
		if len(payload.Cards) == 0 {
			return fmt.Errorf("empty card list")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload.Cards, nil
}
