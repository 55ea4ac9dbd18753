package api

import (
	"context"
	"net/url"
	"strconv"
)

// WordFilters narrows a catalog listing. Zero values mean "any".
type WordFilters struct {
	CategoryID        int64
	DifficultyLevelID int64
	LanguageCode      string
	Limit             int
	Offset            int
}

func (f WordFilters) values() url.Values {
	q := url.Values{}
	if f.CategoryID > 0 {
		q.Set("category_id", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.DifficultyLevelID > 0 {
		q.Set("difficulty_level_id", strconv.FormatInt(f.DifficultyLevelID, 10))
	}
	if f.LanguageCode != "" {
		q.Set("language_code", f.LanguageCode)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	return q
}

// Words lists the word catalog.
func (c *Client) Words(ctx context.Context, filters WordFilters) ([]WordSummary, error) {
	var words []WordSummary
	if err := c.get(ctx, "/words/", filters.values(), &words); err != nil {
		return nil, err
	}
	return words, nil
}

// SearchWords searches the catalog by term.
func (c *Client) SearchWords(ctx context.Context, term string, filters WordFilters) ([]WordSummary, error) {
	q := filters.values()
	q.Set("q", term)

	var words []WordSummary
	if err := c.get(ctx, "/words/search/", q, &words); err != nil {
		return nil, err
	}
	return words, nil
}

// Categories lists the word categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.get(ctx, "/categories/", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// DifficultyLevels lists the catalog difficulty tiers.
func (c *Client) DifficultyLevels(ctx context.Context) ([]DifficultyLevel, error) {
	var levels []DifficultyLevel
	if err := c.get(ctx, "/difficulty-levels/", nil, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}
