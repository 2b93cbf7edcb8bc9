package blog

import (
	"context"
	"time"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/external/llm"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/external/youtube"
)

// CaptionFetcher returns existing caption text for a video
type CaptionFetcher interface {
	FetchCaptions(ctx context.Context, link string) (string, error)
}

// MetadataFetcher returns display metadata; it never fails
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, link string) entities.VideoMetadata
}

// AudioRetriever downloads a video's media into a temporary directory
type AudioRetriever interface {
	DownloadAudio(ctx context.Context, link string) (*youtube.AudioFile, error)
}

// Transcriber turns an audio file into text
type Transcriber interface {
	Configured() bool
	TranscribeFile(ctx context.Context, path string) (*entities.TranscriptResult, error)
}

// ArticleGenerator writes the article body
type ArticleGenerator interface {
	Configured() bool
	Generate(ctx context.Context, req llm.ArticleRequest) (string, error)
}

// ArticleStore keeps exported articles in object storage
type ArticleStore interface {
	UploadMarkdown(ctx context.Context, objectName string, content string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	RemoveFile(ctx context.Context, objectName string) error
}
