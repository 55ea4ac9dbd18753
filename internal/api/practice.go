package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// StartPractice creates a practice session and returns the word batch.
func (c *Client) StartPractice(ctx context.Context, req PracticeRequest) (*PracticeSession, error) {
	var sess PracticeSession
	if err := c.post(ctx, "/learning/practice/start", nil, req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// SubmitPracticeAnswer records one graded answer against a session.
// The backend takes these as query parameters.
func (c *Client) SubmitPracticeAnswer(ctx context.Context, sessionID, wordID int64, correct bool, userAnswer, correctAnswer string, responseTimeMs int64) error {
	q := url.Values{}
	q.Set("word_id", strconv.FormatInt(wordID, 10))
	q.Set("was_correct", strconv.FormatBool(correct))
	if userAnswer != "" {
		q.Set("user_answer", userAnswer)
	}
	if correctAnswer != "" {
		q.Set("correct_answer", correctAnswer)
	}
	if responseTimeMs > 0 {
		q.Set("response_time_ms", strconv.FormatInt(responseTimeMs, 10))
	}

	path := fmt.Sprintf("/learning/practice/%d/answer", sessionID)
	return c.post(ctx, path, q, nil, nil)
}

// FinishPractice closes a session and returns the backend's record of
// it. Callers treat the record as informational only.
func (c *Client) FinishPractice(ctx context.Context, sessionID int64, durationSec int) (*LearningSession, error) {
	q := url.Values{}
	q.Set("duration_seconds", strconv.Itoa(durationSec))

	var sess LearningSession
	path := fmt.Sprintf("/learning/practice/%d/finish", sessionID)
	if err := c.post(ctx, path, q, nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Sessions returns the user's learning session history.
func (c *Client) Sessions(ctx context.Context, limit, offset int) ([]LearningSession, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	var sessions []LearningSession
	if err := c.get(ctx, "/learning/sessions", q, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
