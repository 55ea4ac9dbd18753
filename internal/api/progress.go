package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// MyWords lists the user's learning words. Status and filter zero
// values mean "any".
func (c *Client) MyWords(ctx context.Context, status string, filters WordFilters) ([]WordProgress, error) {
	q := filters.values()
	if status != "" {
		q.Set("status", status)
	}

	var progress []WordProgress
	if err := c.get(ctx, "/learning/words/my-list", q, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// AddWord puts a single word on the user's learning list.
func (c *Client) AddWord(ctx context.Context, wordID int64, status string) (*WordProgress, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}

	var progress WordProgress
	path := fmt.Sprintf("/learning/words/%d/add", wordID)
	if err := c.post(ctx, path, q, nil, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

type addWordsRequest struct {
	WordIDs []int64 `json:"word_ids"`
	Status  string  `json:"status"`
}

// AddWords puts a batch of words on the user's learning list and
// returns the created progress records. Words the backend does not
// recognize are silently dropped from the response.
func (c *Client) AddWords(ctx context.Context, wordIDs []int64, status string) ([]WordProgress, error) {
	var progress []WordProgress
	body := addWordsRequest{WordIDs: wordIDs, Status: status}
	if err := c.post(ctx, "/learning/words/add-multiple", nil, body, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// WordsDueForReview lists words the backend's scheduler has flagged as
// due.
func (c *Client) WordsDueForReview(ctx context.Context, limit int) ([]WordProgress, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var progress []WordProgress
	if err := c.get(ctx, "/learning/words/due-for-review", q, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ReviewSchedule summarizes upcoming reviews.
func (c *Client) ReviewSchedule(ctx context.Context) (*ReviewSchedule, error) {
	var sched ReviewSchedule
	if err := c.get(ctx, "/learning/review-schedule", nil, &sched); err != nil {
		return nil, err
	}
	return &sched, nil
}
