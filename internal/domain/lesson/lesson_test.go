package lesson_test

import (
	"testing"

	"github.com/ielts-companion/backend/internal/domain/lesson"
)

func TestNewLesson(t *testing.T) {
	l, err := lesson.New("Linking words", "However, moreover, furthermore...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if l.Name != "Linking words" {
		t.Errorf("expected name %q, got %q", "Linking words", l.Name)
	}

	if l.ID != 0 {
		t.Errorf("expected zero ID before save, got %d", l.ID)
	}
}

func TestNewLessonValidation(t *testing.T) {
	if _, err := lesson.New("", "content"); err == nil {
		t.Error("expected error for empty name")
	}

	if _, err := lesson.New("name", ""); err == nil {
		t.Error("expected error for empty content")
	}
}
