package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GenerationMethod records which pipeline path produced an article
type GenerationMethod string

const (
	MethodFastCaptions      GenerationMethod = "fast_captions"
	MethodFullTranscription GenerationMethod = "full_transcription"
)

const (
	// DefaultSpeakersDetected is stored for caption-based articles and is
	// the floor for transcribed ones
	DefaultSpeakersDetected = 1
	// MaxLinkLength bounds the stored source link
	MaxLinkLength = 500
)

// VideoDetails keeps the descriptive metadata used at generation time
type VideoDetails struct {
	Description string   `json:"description,omitempty"`
	ViewCount   int64    `json:"view_count,omitempty"`
	UploadDate  string   `json:"upload_date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// BlogArticle is a generated article owned by one user
type BlogArticle struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	User   *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	VideoID              string                           `json:"video_id" gorm:"type:text;index"`
	YouTubeTitle         string                           `json:"youtube_title" gorm:"column:youtube_title;type:varchar(300);not null"`
	YouTubeLink          string                           `json:"youtube_link" gorm:"column:youtube_link;type:varchar(500);not null"`
	GeneratedContent     string                           `json:"generated_content" gorm:"type:text;not null"`
	ChannelName          string                           `json:"channel_name" gorm:"type:varchar(200)"`
	VideoDuration        string                           `json:"video_duration" gorm:"type:varchar(20)"`
	WordCount            int                              `json:"word_count" gorm:"not null"`
	TranscriptConfidence float64                          `json:"transcript_confidence" gorm:"not null"`
	SpeakersDetected     int                              `json:"speakers_detected" gorm:"not null"`
	Method               GenerationMethod                 `json:"method" gorm:"type:varchar(32);not null"`
	VideoDetails         datatypes.JSONType[VideoDetails] `json:"video_details" gorm:"column:video_details"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (BlogArticle) TableName() string {
	return "blog_articles"
}

// NewBlogArticle builds an article from generated content and the metadata
// of its source video. Confidence and speaker count start at the
// caption-path defaults; full transcription overrides them.
func NewBlogArticle(userID uuid.UUID, link, videoID string, method GenerationMethod, content string, meta VideoMetadata, defaultConfidence float64) *BlogArticle {
	now := time.Now()
	title := Truncate(meta.Title, 300)
	if title == "" {
		title = UnknownTitle
	}
	return &BlogArticle{
		ID:                   uuid.New(),
		UserID:               userID,
		VideoID:              videoID,
		YouTubeTitle:         title,
		YouTubeLink:          link,
		GeneratedContent:     content,
		ChannelName:          Truncate(meta.Channel, 200),
		VideoDuration:        Truncate(meta.Duration, 20),
		WordCount:            CountWords(content),
		TranscriptConfidence: defaultConfidence,
		SpeakersDetected:     DefaultSpeakersDetected,
		Method:               method,
		VideoDetails: datatypes.NewJSONType(VideoDetails{
			Description: meta.Description,
			ViewCount:   meta.ViewCount,
			UploadDate:  meta.UploadDate,
			Tags:        meta.Tags,
		}),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyTranscript records transcript statistics from full transcription
func (a *BlogArticle) ApplyTranscript(t *TranscriptResult) {
	if t == nil {
		return
	}
	a.TranscriptConfidence = t.Confidence
	// never store fewer than one speaker
	a.SpeakersDetected = max(DefaultSpeakersDetected, t.SpeakerCount())
}

// Validate checks the invariants required before persisting
func (a *BlogArticle) Validate() error {
	if a.UserID == uuid.Nil {
		return ErrMissingOwner
	}
	if strings.TrimSpace(a.YouTubeLink) == "" {
		return ErrMissingSource
	}
	if strings.TrimSpace(a.GeneratedContent) == "" {
		return ErrEmptyContent
	}
	return nil
}

// IsOwnedBy reports whether the article belongs to userID
func (a *BlogArticle) IsOwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}

// CountWords counts whitespace separated words
func CountWords(s string) int {
	return len(strings.Fields(s))
}
