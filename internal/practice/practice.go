// Package practice owns the lifecycle of one practice attempt: fetching a
// word batch, presenting words one at a time, grading answers, and folding
// per-word results into a session summary. It talks to the backend only
// through the SessionService boundary and never blocks the learner on
// answer or finish calls.
package practice

import (
	"context"
	"time"
)

// SkippedAnswer is the sentinel recorded as the submitted answer when the
// learner skips a word instead of answering it.
const SkippedAnswer = "skipped"

// Session types accepted by the backend.
const (
	SessionTypePractice = "practice"
	SessionTypeReview   = "review"
)

// Word is one quizzable unit, immutable for the duration of a session.
// Only Prompt and Answer participate in grading; everything else is
// display-only and may be absent.
type Word struct {
	ID              int64
	Prompt          string
	Answer          string
	Cyrillic        string
	Pronunciation   string
	ImageURL        string
	DifficultyLevel int
	TimesSeen       int
	IsReview        bool
}

// Result is the immutable record of one word's outcome.
type Result struct {
	WordID         int64
	Correct        bool
	Submitted      string
	ResponseTimeMs int64
}

// Session is the word batch issued by the backend at session start.
type Session struct {
	ID         int64
	Type       string
	Words      []Word
	TotalWords int
}

// StartOptions selects the word batch for a new session.
type StartOptions struct {
	SessionType       string
	WordCount         int
	CategoryID        int64 // 0 = any
	DifficultyLevelID int64 // 0 = any
	IncludeReview     bool
	LanguageCode      string
}

// Submission carries one graded answer to the backend.
type Submission struct {
	WordID         int64
	Correct        bool
	QuestionType   string
	UserAnswer     string
	CorrectAnswer  string
	ResponseTimeMs int64
}

// Summary aggregates a finished session. It is always derived from the
// locally recorded results, never from the server's finish response.
type Summary struct {
	SessionID    int64
	SessionType  string
	CorrectCount int
	TotalCount   int
	AccuracyPct  int
	DurationSec  int
	Results      []Result
}

// SessionService is the backend boundary the controller consumes.
// Start is the only call the controller waits on; SubmitAnswer and
// Finish are best-effort and their failures never reach the caller's
// control flow.
type SessionService interface {
	Start(ctx context.Context, opts StartOptions) (*Session, error)
	SubmitAnswer(ctx context.Context, sessionID int64, sub Submission) error
	Finish(ctx context.Context, sessionID int64, durationSec int) error
}

// Clock supplies the time source for response-time and duration
// measurement. Injected so tests can control it.
type Clock interface {
	Now() time.Time
}

// Notifier surfaces user-facing success/failure messages. Delivery is
// fire-and-forget; implementations must not block.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}
