package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownVideoMetadata(t *testing.T) {
	md := UnknownVideoMetadata()
	assert.Equal(t, "Unknown Title", md.Title)
	assert.Equal(t, "Unknown Channel", md.Channel)
	assert.Empty(t, md.Duration)
	assert.Empty(t, md.Tags)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "héł", Truncate("héłło", 3))
}

func TestTranscriptResult(t *testing.T) {
	tr := NewTranscriptResult("the quick  brown fox", 0.95)
	assert.Equal(t, 4, tr.WordCount())
	assert.Equal(t, 0, tr.SpeakerCount())
	assert.NotNil(t, tr.Highlights)
	assert.NotNil(t, tr.Entities)
	assert.False(t, tr.IsEmpty())

	assert.True(t, NewTranscriptResult("  ", 0.95).IsEmpty())

	var missing *TranscriptResult
	assert.True(t, missing.IsEmpty())
}
