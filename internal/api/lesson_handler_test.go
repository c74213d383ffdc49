package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/ielts-companion/backend/internal/api"
	"github.com/ielts-companion/backend/internal/domain/lesson"
)

func TestLessonLifecycle(t *testing.T) {
	mux, _ := newTestServer(t, &stubClient{})

	// Create
	rec := postJSON(t, mux, "/api/lessons", api.LessonRequest{
		Name:    "Unit 3: Environment",
		Content: "deforestation - nạn phá rừng",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created lesson.Lesson
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an id on the created lesson")
	}

	// List
	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var list api.LessonListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(list.Lessons) != 1 || list.Lessons[0].Name != "Unit 3: Environment" {
		t.Fatalf("unexpected lessons: %+v", list.Lessons)
	}

	// Update
	id := strconv.FormatInt(created.ID, 10)
	body := mustMarshal(t, api.LessonRequest{Name: "Unit 3 revised", Content: "updated content"})
	putReq := httptest.NewRequest(http.MethodPut, "/api/lessons/"+id, body)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, putReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d: %s", rec.Code, rec.Body.String())
	}

	// Delete
	delReq := httptest.NewRequest(http.MethodDelete, "/api/lessons/"+id, nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, delReq)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on delete, got %d", rec.Code)
	}

	// Delete again: gone
	delReq = httptest.NewRequest(http.MethodDelete, "/api/lessons/"+id, nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, delReq)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestCreateLessonValidation(t *testing.T) {
	mux, _ := newTestServer(t, &stubClient{})

	rec := postJSON(t, mux, "/api/lessons", api.LessonRequest{Name: "", Content: "x"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty name, got %d", rec.Code)
	}
}

func TestLessonGameCardsEndpoint(t *testing.T) {
	mux, _ := newTestServer(t, &stubClient{
		response: `{"cards": [{"word": "habitat", "meaning": "môi trường sống"}]}`,
	})

	rec := postJSON(t, mux, "/api/lessons/game", api.GameCardsRequest{Content: "A lesson about wildlife."})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp api.GameCardsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Cards) != 1 || resp.Cards[0].Word != "habitat" {
		t.Errorf("unexpected cards: %+v", resp.Cards)
	}
}
