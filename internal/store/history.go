package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aslanbek/kazlearn/internal/practice"
)

// SessionRecord is one finished session as stored locally.
type SessionRecord struct {
	ID           string    `db:"id"`
	RemoteID     int64     `db:"remote_id"`
	SessionType  string    `db:"session_type"`
	CorrectCount int       `db:"correct_count"`
	TotalCount   int       `db:"total_count"`
	AccuracyPct  int       `db:"accuracy_pct"`
	DurationSec  int       `db:"duration_sec"`
	FinishedAt   time.Time `db:"finished_at"`
}

// AnswerRecord is one graded answer within a stored session.
type AnswerRecord struct {
	ID             string `db:"id"`
	SessionID      string `db:"session_id"`
	WordID         int64  `db:"word_id"`
	Prompt         string `db:"prompt"`
	Expected       string `db:"expected"`
	Submitted      string `db:"submitted"`
	Correct        bool   `db:"correct"`
	ResponseTimeMs int64  `db:"response_time_ms"`
}

// RecordSummary persists a finished session and its answers in one
// transaction. The words slice provides prompt and expected text for
// each result, matched by position.
func (s *Store) RecordSummary(ctx context.Context, sum *practice.Summary, words []practice.Word, finishedAt time.Time) (string, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rec := SessionRecord{
		ID:           uuid.NewString(),
		RemoteID:     sum.SessionID,
		SessionType:  sum.SessionType,
		CorrectCount: sum.CorrectCount,
		TotalCount:   sum.TotalCount,
		AccuracyPct:  sum.AccuracyPct,
		DurationSec:  sum.DurationSec,
		FinishedAt:   finishedAt.UTC(),
	}
	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO sessions (id, remote_id, session_type, correct_count, total_count, accuracy_pct, duration_sec, finished_at)
		VALUES (:id, :remote_id, :session_type, :correct_count, :total_count, :accuracy_pct, :duration_sec, :finished_at)`,
		rec)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}

	for i, res := range sum.Results {
		ans := AnswerRecord{
			ID:             uuid.NewString(),
			SessionID:      rec.ID,
			WordID:         res.WordID,
			Submitted:      res.Submitted,
			Correct:        res.Correct,
			ResponseTimeMs: res.ResponseTimeMs,
		}
		if i < len(words) {
			ans.Prompt = words[i].Prompt
			ans.Expected = words[i].Answer
		}
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO answers (id, session_id, word_id, prompt, expected, submitted, correct, response_time_ms)
			VALUES (:id, :session_id, :word_id, :prompt, :expected, :submitted, :correct, :response_time_ms)`,
			ans)
		if err != nil {
			return "", fmt.Errorf("insert answer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return rec.ID, nil
}

// RecentSessions returns the most recently finished sessions, newest
// first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []SessionRecord
	err := s.db.SelectContext(ctx, &out, `
		SELECT id, remote_id, session_type, correct_count, total_count, accuracy_pct, duration_sec, finished_at
		FROM sessions ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}
	return out, nil
}

// SessionAnswers returns the stored answers for one session, in
// insertion order.
func (s *Store) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	var out []AnswerRecord
	err := s.db.SelectContext(ctx, &out, `
		SELECT id, session_id, word_id, prompt, expected, submitted, correct, response_time_ms
		FROM answers WHERE session_id = ? ORDER BY rowid`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("select answers: %w", err)
	}
	return out, nil
}
