package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ielts-companion/backend/internal/api"
	"github.com/ielts-companion/backend/internal/store"
)

func TestVocabularyLearnLifecycle(t *testing.T) {
	mux, _ := newTestServer(t, &stubClient{
		response: `{"results": [{"word": "resilient", "word_type": "adjective", "pronunciation": "/rɪˈzɪliənt/", "meaning": "kiên cường", "verb_phrases": [], "synonyms": ["tough"]}]}`,
	})

	// Generate and persist
	rec := postJSON(t, mux, "/api/vocabulary-learn", api.VocabularyLearnRequest{Words: "resilient"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp api.VocabularyLearnResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Word != "resilient" {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}

	// List the persisted session
	req := httptest.NewRequest(http.MethodGet, "/api/vocabulary-learn", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var list api.SessionListResponse[store.VocabSession]
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(list.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(list.Sessions))
	}

	// Delete it
	delReq := httptest.NewRequest(http.MethodDelete, "/api/vocabulary-learn",
		mustMarshal(t, api.DeleteSessionRequest{ID: list.Sessions[0].ID}))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, delReq)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestSpeakingPracticeEndpoint(t *testing.T) {
	mux, st := newTestServer(t, &stubClient{
		response: `{"speech": "Well, let me walk you through the incident...", "vocabulary": [{"english": "root cause", "vietnamese": "nguyên nhân gốc"}], "idioms": [], "grammar": [], "sentencePatterns": []}`,
	})

	rec := postJSON(t, mux, "/api/speaking-practice", api.PracticeRequest{
		Topic:            "explaining a production incident",
		ConversationName: "Incident Review",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp api.PracticeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.ConversationName != "Incident Review" {
		t.Errorf("unexpected name %q", resp.ConversationName)
	}
	if resp.Speech == "" {
		t.Error("expected a speech in the response")
	}
	if resp.ID == 0 {
		t.Error("expected the session to be persisted with an id")
	}

	sessions, err := st.ListSpeakingSessions(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ConversationName != "Incident Review" {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}
}

func TestGenerateNameEndpoint(t *testing.T) {
	mux, _ := newTestServer(t, &stubClient{response: "Incident Postmortem Walkthrough"})

	rec := postJSON(t, mux, "/api/speaking-practice/generate-name", api.GenerateNameRequest{Topic: "postmortem"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp api.GenerateNameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.ConversationName != "Incident Postmortem Walkthrough" {
		t.Errorf("unexpected name %q", resp.ConversationName)
	}

	rec = postJSON(t, mux, "/api/speaking-practice/generate-name", api.GenerateNameRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing topic, got %d", rec.Code)
	}
}
