package api

import (
	"context"

	"github.com/aslanbek/kazlearn/internal/practice"
)

// PracticeService adapts the HTTP client to the controller's
// SessionService boundary, mapping wire types to practice types.
type PracticeService struct {
	client *Client
}

var _ practice.SessionService = (*PracticeService)(nil)

// NewPracticeService wraps a Client as a practice.SessionService.
func NewPracticeService(client *Client) *PracticeService {
	return &PracticeService{client: client}
}

// Start creates a backend session and converts the word batch.
func (s *PracticeService) Start(ctx context.Context, opts practice.StartOptions) (*practice.Session, error) {
	req := PracticeRequest{
		SessionType:   opts.SessionType,
		WordCount:     opts.WordCount,
		IncludeReview: opts.IncludeReview,
		LanguageCode:  opts.LanguageCode,
	}
	if opts.SessionType == "" {
		req.SessionType = practice.SessionTypePractice
	}
	if opts.CategoryID > 0 {
		id := opts.CategoryID
		req.CategoryID = &id
	}
	if opts.DifficultyLevelID > 0 {
		id := opts.DifficultyLevelID
		req.DifficultyLevelID = &id
	}

	wire, err := s.client.StartPractice(ctx, req)
	if err != nil {
		return nil, err
	}

	sess := &practice.Session{
		ID:         wire.SessionID,
		Type:       wire.SessionType,
		TotalWords: wire.TotalWords,
		Words:      make([]practice.Word, 0, len(wire.Words)),
	}
	for _, w := range wire.Words {
		sess.Words = append(sess.Words, toPracticeWord(w))
	}
	return sess, nil
}

// SubmitAnswer forwards one graded answer.
func (s *PracticeService) SubmitAnswer(ctx context.Context, sessionID int64, sub practice.Submission) error {
	return s.client.SubmitPracticeAnswer(ctx, sessionID, sub.WordID, sub.Correct, sub.UserAnswer, sub.CorrectAnswer, sub.ResponseTimeMs)
}

// Finish closes the backend session. The returned record is discarded:
// the locally computed summary is authoritative.
func (s *PracticeService) Finish(ctx context.Context, sessionID int64, durationSec int) error {
	_, err := s.client.FinishPractice(ctx, sessionID, durationSec)
	return err
}

// toPracticeWord flattens optional wire fields into zero-value-safe
// practice fields.
func toPracticeWord(w PracticeWord) practice.Word {
	out := practice.Word{
		ID:              w.ID,
		Prompt:          w.KazakhWord,
		Answer:          w.Translation,
		DifficultyLevel: w.DifficultyLevel,
		TimesSeen:       w.TimesSeen,
		IsReview:        w.IsReview,
	}
	if w.KazakhCyrillic != nil {
		out.Cyrillic = *w.KazakhCyrillic
	}
	if w.Pronunciation != nil {
		out.Pronunciation = *w.Pronunciation
	}
	if w.ImageURL != nil {
		out.ImageURL = *w.ImageURL
	}
	return out
}
