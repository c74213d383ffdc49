package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ielts-companion/backend/internal/domain/lesson"
	"github.com/ielts-companion/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLessonCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l, err := lesson.New("Unit 1", "content about the environment")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.SaveLesson(ctx, l); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if l.ID == 0 {
		t.Fatal("expected ID to be assigned on save")
	}

	lessons, err := s.ListLessons(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(lessons))
	}
	if lessons[0].Name != "Unit 1" {
		t.Errorf("expected name %q, got %q", "Unit 1", lessons[0].Name)
	}
	if lessons[0].CreatedAt == "" {
		t.Error("expected created_at to be set")
	}

	l.Name = "Unit 1 revised"
	if err := s.UpdateLesson(ctx, l); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	lessons, err = s.ListLessons(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if lessons[0].Name != "Unit 1 revised" {
		t.Errorf("expected updated name, got %q", lessons[0].Name)
	}

	if err := s.DeleteLesson(ctx, l.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	lessons, err = s.ListLessons(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lessons) != 0 {
		t.Errorf("expected no lessons after delete, got %d", len(lessons))
	}
}

func TestLessonNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.DeleteLesson(ctx, 999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	missing := &lesson.Lesson{ID: 999, Name: "x", Content: "y"}
	if err := s.UpdateLesson(ctx, missing); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestVocabSessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.SaveVocabSession(ctx, "contribution, sustainable", `[{"word":"contribution"}]`)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero session id")
	}

	sessions, err := s.ListVocabSessions(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].InputWords != "contribution, sustainable" {
		t.Errorf("unexpected input words %q", sessions[0].InputWords)
	}

	if err := s.DeleteVocabSession(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := s.DeleteVocabSession(ctx, id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSpeakingSessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.SaveSpeakingSession(ctx, "Sprint Planning Discussion", "sprint planning", `{"speech":"..."}`)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	sessions, err := s.ListSpeakingSessions(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].ConversationName != "Sprint Planning Discussion" {
		t.Errorf("unexpected name %q", sessions[0].ConversationName)
	}
	if sessions[0].Topic != "sprint planning" {
		t.Errorf("unexpected topic %q", sessions[0].Topic)
	}

	if err := s.DeleteSpeakingSession(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := s.DeleteSpeakingSession(ctx, 999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Same-second inserts fall back to id ordering, newest first.
	first, _ := lesson.New("first", "a")
	second, _ := lesson.New("second", "b")
	if err := s.SaveLesson(ctx, first); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.SaveLesson(ctx, second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	lessons, err := s.ListLessons(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(lessons))
	}
	if lessons[0].Name != "second" || lessons[1].Name != "first" {
		t.Errorf("expected newest first, got %q then %q", lessons[0].Name, lessons[1].Name)
	}
}
