package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ielts-companion/backend/internal/api"
	"github.com/ielts-companion/backend/internal/completion"
	"github.com/ielts-companion/backend/internal/service"
	"github.com/ielts-companion/backend/internal/store"
)

// stubClient returns a fixed response for every completion call.
type stubClient struct {
	response string
	err      error
}

func (c *stubClient) Complete(context.Context, completion.Request) (string, error) {
	return c.response, c.err
}

func newTestServer(t *testing.T, client completion.Client) (*http.ServeMux, store.Store) {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := service.New(client, st, logger, 2)
	handler := api.NewHandler(st, gen, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)
	return mux, st
}

func mustMarshal(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return bytes.NewReader(payload)
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCheckAnswerCorrect(t *testing.T) {
	mux, _ := newTestServer(t, &stubClient{})

	rec := postJSON(t, mux, "/api/vocabulary-game/check", api.CheckAnswerRequest{
		UserAnswer:    "The Contribution!",
		CorrectAnswer: "contribution",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp api.CheckAnswerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !resp.IsCorrect {
		t.Error("expected the contained answer to be judged correct")
	}
	if resp.UserAnswer != "the contribution" {
		t.Errorf("expected normalized user answer, got %q", resp.UserAnswer)
	}
	if resp.CorrectAnswer != "contribution" {
		t.Errorf("expected normalized correct answer, got %q", resp.CorrectAnswer)
	}
}

func TestCheckAnswerIncorrect(t *testing.T) {
	mux, _ := newTestServer(t, &stubClient{})

	rec := postJSON(t, mux, "/api/vocabulary-game/check", api.CheckAnswerRequest{
		UserAnswer:    "contirbution",
		CorrectAnswer: "contribution",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp api.CheckAnswerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.IsCorrect {
		t.Error("expected a below-threshold answer to be judged incorrect")
	}
	if resp.Similarity != 83.33 {
		t.Errorf("expected similarity 83.33, got %v", resp.Similarity)
	}
}

func TestCheckAnswerMissingFields(t *testing.T) {
	mux, _ := newTestServer(t, &stubClient{})

	rec := postJSON(t, mux, "/api/vocabulary-game/check", api.CheckAnswerRequest{
		UserAnswer: "hello",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing correctAnswer, got %d", rec.Code)
	}
}

func TestCheckAnswerPunctuationOnly(t *testing.T) {
	mux, _ := newTestServer(t, &stubClient{})

	rec := postJSON(t, mux, "/api/vocabulary-game/check", api.CheckAnswerRequest{
		UserAnswer:    "!!!",
		CorrectAnswer: "cat",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an answer that normalizes to empty, got %d", rec.Code)
	}
}

func TestGenerationFailureReturns502(t *testing.T) {
	mux, _ := newTestServer(t, &stubClient{response: "not json at all"})

	rec := postJSON(t, mux, "/api/vocabulary", api.VocabularyRequest{Topic: "environment"})
	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502 for an unparseable provider response, got %d", rec.Code)
	}
}
