package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONObjectPlain(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, ExtractJSONObject(`{"a": 1}`))
}

func TestExtractJSONObjectFenced(t *testing.T) {
	raw := "Here you go:\n```json\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, ExtractJSONObject(raw))
}

func TestExtractJSONObjectEmbedded(t *testing.T) {
	raw := `Sure! The plan is {"days": [{"n": 1}]} and that is all.`
	assert.Equal(t, `{"days": [{"n": 1}]}`, ExtractJSONObject(raw))
}

func TestExtractJSONObjectBracesInsideStrings(t *testing.T) {
	raw := `{"note": "use {curly} braces", "x": 1}`
	assert.Equal(t, raw, ExtractJSONObject(raw))
}

func TestExtractJSONObjectEscapedQuotes(t *testing.T) {
	raw := `{"quote": "she said \"go {now}\""}`
	assert.Equal(t, raw, ExtractJSONObject(raw))
}

func TestExtractJSONObjectNoObject(t *testing.T) {
	assert.Equal(t, "", ExtractJSONObject("no json here"))
	assert.Equal(t, "", ExtractJSONObject(""))
}

func TestExtractJSONObjectUnterminated(t *testing.T) {
	assert.Equal(t, "", ExtractJSONObject(`{"a": 1`))
}
