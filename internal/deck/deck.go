// Package deck parses shareable word-pack files that learners import
// into their personal learning list.
package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Deck is a shareable list of backend word IDs with display metadata.
type Deck struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	LanguageCode string  `json:"language_code"`
	WordIDs      []int64 `json:"word_ids"`
}

const deckSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["name", "language_code", "word_ids"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"language_code": {"type": "string", "minLength": 2, "maxLength": 5},
		"word_ids": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "integer", "minimum": 1}
		}
	},
	"additionalProperties": false
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(deckSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://deck.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile("schema://deck.json")
	})
	return compiled, compileErr
}

// Parse validates raw deck JSON against the deck schema and decodes it.
func Parse(raw []byte) (*Deck, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	var d Deck
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return &d, nil
}

// Load reads and parses a deck file from disk.
func Load(path string) (*Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	return Parse(raw)
}
