package api

import "context"

// Stats returns the user's aggregate learning statistics.
func (c *Client) Stats(ctx context.Context) (*LearningStats, error) {
	var stats LearningStats
	if err := c.get(ctx, "/learning/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Dashboard returns the combined dashboard payload.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var dash Dashboard
	if err := c.get(ctx, "/learning/dashboard", nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// Streak returns the user's activity streak.
func (c *Client) Streak(ctx context.Context) (*Streak, error) {
	var streak Streak
	if err := c.get(ctx, "/learning/streak", nil, &streak); err != nil {
		return nil, err
	}
	return &streak, nil
}

// CategoryProgressList returns per-category learning progress.
func (c *Client) CategoryProgressList(ctx context.Context) ([]CategoryProgress, error) {
	var progress []CategoryProgress
	if err := c.get(ctx, "/learning/stats/categories", nil, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}
