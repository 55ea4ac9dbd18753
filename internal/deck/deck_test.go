package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidDeck(t *testing.T) {
	d, err := Parse([]byte(`{
		"name": "Food basics",
		"description": "Common food words",
		"language_code": "en",
		"word_ids": [1, 2, 3]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Food basics", d.Name)
	assert.Equal(t, []int64{1, 2, 3}, d.WordIDs)
}

func TestParseRejectsInvalidDecks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing name", `{"language_code": "en", "word_ids": [1]}`},
		{"empty word list", `{"name": "x", "language_code": "en", "word_ids": []}`},
		{"non-integer id", `{"name": "x", "language_code": "en", "word_ids": ["a"]}`},
		{"unknown field", `{"name": "x", "language_code": "en", "word_ids": [1], "extra": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Travel", "language_code": "en", "word_ids": [9]}`), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Travel", d.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
