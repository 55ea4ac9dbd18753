package practice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrade(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		expected  string
		want      bool
	}{
		{"exact match", "apple", "apple", true},
		{"surrounding whitespace", " Answer \n", "answer", true},
		{"case insensitive", "APPLE", "apple", true},
		{"near miss is wrong", "answers", "answer", false},
		{"no partial credit", "app", "apple", false},
		{"cyrillic case folding", "Алма", "алма", true},
		{"internal whitespace matters", "red apple", "redapple", false},
		{"expected side also normalized", "apple", "  Apple ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grade(tt.submitted, tt.expected))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "apple", Normalize("  APPLE\t\n"))
	assert.Equal(t, "", Normalize("   "))
}
