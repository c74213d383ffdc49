package store

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/ielts-companion/backend/internal/domain/lesson"
)

const schema = `
CREATE TABLE IF NOT EXISTS lessons (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS vocab_learning_sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    input_words TEXT NOT NULL,
    results_json TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS speaking_practice_sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    conversation_name TEXT NOT NULL,
    topic TEXT NOT NULL,
    results_json TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore persists sessions and lessons in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Lessons
// ============================================================================

func (s *SQLiteStore) SaveLesson(ctx context.Context, l *lesson.Lesson) error {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO lessons (name, content) VALUES (?, ?)", l.Name, l.Content)
	if err != nil {
		return err
	}
	l.ID, err = result.LastInsertId()
	return err
}

func (s *SQLiteStore) ListLessons(ctx context.Context) ([]lesson.Lesson, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, content, created_at FROM lessons ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []lesson.Lesson
	for rows.Next() {
		var l lesson.Lesson
		if err := rows.Scan(&l.ID, &l.Name, &l.Content, &l.CreatedAt); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

func (s *SQLiteStore) UpdateLesson(ctx context.Context, l *lesson.Lesson) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE lessons SET name = ?, content = ? WHERE id = ?", l.Name, l.Content, l.ID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (s *SQLiteStore) DeleteLesson(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM lessons WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// ============================================================================
// Vocabulary learning sessions
// ============================================================================

func (s *SQLiteStore) SaveVocabSession(ctx context.Context, inputWords, resultsJSON string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO vocab_learning_sessions (input_words, results_json) VALUES (?, ?)",
		inputWords, resultsJSON)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLiteStore) ListVocabSessions(ctx context.Context) ([]VocabSession, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, input_words, results_json, created_at FROM vocab_learning_sessions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []VocabSession
	for rows.Next() {
		var vs VocabSession
		if err := rows.Scan(&vs.ID, &vs.InputWords, &vs.ResultsJSON, &vs.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, vs)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) DeleteVocabSession(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM vocab_learning_sessions WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// ============================================================================
// Speaking practice sessions
// ============================================================================

func (s *SQLiteStore) SaveSpeakingSession(ctx context.Context, conversationName, topic, resultsJSON string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO speaking_practice_sessions (conversation_name, topic, results_json) VALUES (?, ?, ?)",
		conversationName, topic, resultsJSON)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLiteStore) ListSpeakingSessions(ctx context.Context) ([]SpeakingSession, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, conversation_name, topic, results_json, created_at FROM speaking_practice_sessions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []SpeakingSession
	for rows.Next() {
		var ss SpeakingSession
		if err := rows.Scan(&ss.ID, &ss.ConversationName, &ss.Topic, &ss.ResultsJSON, &ss.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, ss)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) DeleteSpeakingSession(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM speaking_practice_sessions WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// checkAffected maps "zero rows touched" to ErrNotFound.
func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
