package store

import (
	"context"
	"errors"

	"github.com/ielts-companion/backend/internal/domain/lesson"
)

var (
	ErrNotFound = errors.New("not found")
)

// VocabSession is one persisted vocabulary-learning run: the raw input
// words and the generated breakdowns as a JSON blob.
type VocabSession struct {
	ID          int64  `json:"id"`
	InputWords  string `json:"input_words"`
	ResultsJSON string `json:"results_json"`
	CreatedAt   string `json:"created_at"`
}

// SpeakingSession is one persisted speaking-practice run.
type SpeakingSession struct {
	ID               int64  `json:"id"`
	ConversationName string `json:"conversation_name"`
	Topic            string `json:"topic"`
	ResultsJSON      string `json:"results_json"`
	CreatedAt        string `json:"created_at"`
}

// Store is the persistence boundary. List operations return newest first;
// delete and update report ErrNotFound for unknown ids.
type Store interface {
	SaveLesson(ctx context.Context, l *lesson.Lesson) error
	ListLessons(ctx context.Context) ([]lesson.Lesson, error)
	UpdateLesson(ctx context.Context, l *lesson.Lesson) error
	DeleteLesson(ctx context.Context, id int64) error

	SaveVocabSession(ctx context.Context, inputWords, resultsJSON string) (int64, error)
	ListVocabSessions(ctx context.Context) ([]VocabSession, error)
	DeleteVocabSession(ctx context.Context, id int64) error

	SaveSpeakingSession(ctx context.Context, conversationName, topic, resultsJSON string) (int64, error)
	ListSpeakingSessions(ctx context.Context) ([]SpeakingSession, error)
	DeleteSpeakingSession(ctx context.Context, id int64) error

	Close() error
}
