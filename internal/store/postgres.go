package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ielts-companion/backend/internal/domain/lesson"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS lessons (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS vocab_learning_sessions (
    id BIGSERIAL PRIMARY KEY,
    input_words TEXT NOT NULL,
    results_json TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS speaking_practice_sessions (
    id BIGSERIAL PRIMARY KEY,
    conversation_name TEXT NOT NULL,
    topic TEXT NOT NULL,
    results_json TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// timeLayout matches the SQLite CURRENT_TIMESTAMP format so both drivers
// hand the same created_at strings to the UI.
const timeLayout = "2006-01-02 15:04:05"

// PostgresStore persists sessions and lessons in Postgres. Used instead
// of SQLite when the service runs against a managed database.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveLesson(ctx context.Context, l *lesson.Lesson) error {
	return s.pool.QueryRow(ctx,
		"INSERT INTO lessons (name, content) VALUES ($1, $2) RETURNING id",
		l.Name, l.Content).Scan(&l.ID)
}

func (s *PostgresStore) ListLessons(ctx context.Context) ([]lesson.Lesson, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, name, content, created_at FROM lessons ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []lesson.Lesson
	for rows.Next() {
		var l lesson.Lesson
		var createdAt time.Time
		if err := rows.Scan(&l.ID, &l.Name, &l.Content, &createdAt); err != nil {
			return nil, err
		}
		l.CreatedAt = createdAt.UTC().Format(timeLayout)
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

func (s *PostgresStore) UpdateLesson(ctx context.Context, l *lesson.Lesson) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE lessons SET name = $1, content = $2 WHERE id = $3", l.Name, l.Content, l.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteLesson(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM lessons WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SaveVocabSession(ctx context.Context, inputWords, resultsJSON string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		"INSERT INTO vocab_learning_sessions (input_words, results_json) VALUES ($1, $2) RETURNING id",
		inputWords, resultsJSON).Scan(&id)
	return id, err
}

func (s *PostgresStore) ListVocabSessions(ctx context.Context) ([]VocabSession, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, input_words, results_json, created_at FROM vocab_learning_sessions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []VocabSession
	for rows.Next() {
		var vs VocabSession
		var createdAt time.Time
		if err := rows.Scan(&vs.ID, &vs.InputWords, &vs.ResultsJSON, &createdAt); err != nil {
			return nil, err
		}
		vs.CreatedAt = createdAt.UTC().Format(timeLayout)
		sessions = append(sessions, vs)
	}
	return sessions, rows.Err()
}

func (s *PostgresStore) DeleteVocabSession(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM vocab_learning_sessions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SaveSpeakingSession(ctx context.Context, conversationName, topic, resultsJSON string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		"INSERT INTO speaking_practice_sessions (conversation_name, topic, results_json) VALUES ($1, $2, $3) RETURNING id",
		conversationName, topic, resultsJSON).Scan(&id)
	return id, err
}

func (s *PostgresStore) ListSpeakingSessions(ctx context.Context) ([]SpeakingSession, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, conversation_name, topic, results_json, created_at FROM speaking_practice_sessions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []SpeakingSession
	for rows.Next() {
		var ss SpeakingSession
		var createdAt time.Time
		if err := rows.Scan(&ss.ID, &ss.ConversationName, &ss.Topic, &ss.ResultsJSON, &createdAt); err != nil {
			return nil, err
		}
		ss.CreatedAt = createdAt.UTC().Format(timeLayout)
		sessions = append(sessions, ss)
	}
	return sessions, rows.Err()
}

func (s *PostgresStore) DeleteSpeakingSession(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM speaking_practice_sessions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
