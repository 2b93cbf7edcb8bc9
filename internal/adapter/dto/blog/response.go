package blog

import "time"

// GenerationMetadata summarises the source video and the generated text
type GenerationMetadata struct {
	Title                string   `json:"title"`
	Channel              string   `json:"channel"`
	Duration             string   `json:"duration,omitempty"`
	WordCount            int      `json:"word_count"`
	SpeakersDetected     *int     `json:"speakers_detected,omitempty"`
	TranscriptConfidence *float64 `json:"transcript_confidence,omitempty"`
}

// GenerateResponse is returned after a successful pipeline run
type GenerateResponse struct {
	Success  bool               `json:"success"`
	Content  string             `json:"content"`
	Method   string             `json:"method" example:"fast_captions"`
	BlogID   string             `json:"blog_id"`
	Metadata GenerationMetadata `json:"metadata"`
}

// VideoDetailsResponse is the descriptive video metadata kept with an article
type VideoDetailsResponse struct {
	Description string   `json:"description,omitempty"`
	ViewCount   int64    `json:"view_count,omitempty"`
	UploadDate  string   `json:"upload_date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// BlogResponse is a stored article
type BlogResponse struct {
	ID                   string                `json:"id"`
	VideoID              string                `json:"video_id"`
	YouTubeTitle         string                `json:"youtube_title"`
	YouTubeLink          string                `json:"youtube_link"`
	GeneratedContent     string                `json:"generated_content"`
	ChannelName          string                `json:"channel_name,omitempty"`
	VideoDuration        string                `json:"video_duration,omitempty"`
	WordCount            int                   `json:"word_count"`
	TranscriptConfidence float64               `json:"transcript_confidence"`
	SpeakersDetected     int                   `json:"speakers_detected"`
	Method               string                `json:"method"`
	VideoDetails         *VideoDetailsResponse `json:"video_details,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
}

// ListResponse is returned by GET /v1/blogs
type ListResponse struct {
	Count int64           `json:"count"`
	Blogs []*BlogResponse `json:"blogs"`
}

// ExportResponse is returned by POST /v1/blogs/:id/export
type ExportResponse struct {
	BlogID    string    `json:"blog_id"`
	Object    string    `json:"object"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
