package entities

import (
	"strings"
	"unicode/utf8"
)

const (
	UnknownTitle    = "Unknown Title"
	UnknownChannel  = "Unknown Channel"
	UnknownDuration = "Unknown"

	// MaxDescriptionLength is the number of description characters kept
	// before the "..." suffix
	MaxDescriptionLength = 300
	// MaxTags is the number of video tags kept
	MaxTags = 5
)

// VideoMetadata describes a video. Every field is optional except Title and
// Channel, which fall back to UnknownTitle and UnknownChannel.
type VideoMetadata struct {
	Title       string   `json:"title"`
	Channel     string   `json:"channel"`
	Duration    string   `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	ViewCount   int64    `json:"view_count,omitempty"`
	UploadDate  string   `json:"upload_date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UnknownVideoMetadata is the record used when metadata lookup fails
func UnknownVideoMetadata() VideoMetadata {
	return VideoMetadata{
		Title:   UnknownTitle,
		Channel: UnknownChannel,
	}
}

// Highlight is a key phrase detected in a transcript
type Highlight struct {
	Text  string  `json:"text"`
	Count int     `json:"count"`
	Rank  float64 `json:"rank"`
}

// Utterance is a stretch of speech attributed to one speaker
type Utterance struct {
	Text  string `json:"text"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

// Entity is a named entity detected in a transcript
type Entity struct {
	Text       string `json:"text"`
	EntityType string `json:"entity_type"`
}

// SentimentResult is the sentiment of one transcript sentence
type SentimentResult struct {
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// TranscriptResult is the output of full audio transcription
type TranscriptResult struct {
	Text       string                 `json:"text"`
	Highlights []Highlight            `json:"highlights"`
	Speakers   map[string][]Utterance `json:"speakers"`
	Entities   []Entity               `json:"entities"`
	Sentiment  []SentimentResult      `json:"sentiment"`
	Confidence float64                `json:"confidence"`
}

// NewTranscriptResult returns a result with empty, non-nil analysis fields
func NewTranscriptResult(text string, confidence float64) *TranscriptResult {
	return &TranscriptResult{
		Text:       text,
		Highlights: []Highlight{},
		Speakers:   map[string][]Utterance{},
		Entities:   []Entity{},
		Sentiment:  []SentimentResult{},
		Confidence: confidence,
	}
}

// SpeakerCount returns the number of distinct speakers
func (t *TranscriptResult) SpeakerCount() int {
	return len(t.Speakers)
}

// WordCount returns the number of whitespace separated words in the text
func (t *TranscriptResult) WordCount() int {
	return len(strings.Fields(t.Text))
}

// IsEmpty reports whether the transcript carries no text
func (t *TranscriptResult) IsEmpty() bool {
	return t == nil || strings.TrimSpace(t.Text) == ""
}

// Truncate returns at most n characters of s
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
