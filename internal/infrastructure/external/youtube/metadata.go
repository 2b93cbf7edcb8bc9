package youtube

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
)

// VideoInfo is the subset of yt-dlp's info JSON the pipeline reads
type VideoInfo struct {
	Title       string   `json:"title"`
	Uploader    string   `json:"uploader"`
	Duration    float64  `json:"duration"`
	Description string   `json:"description"`
	ViewCount   int64    `json:"view_count"`
	UploadDate  string   `json:"upload_date"`
	Tags        []string `json:"tags"`
}

// InfoSource looks up raw video information for a link
type InfoSource interface {
	VideoInfo(ctx context.Context, link string) (*VideoInfo, error)
}

// YTDLPInfoSource reads video information with `yt-dlp --dump-single-json`
type YTDLPInfoSource struct {
	runner runner
}

func NewYTDLPInfoSource(binary string) *YTDLPInfoSource {
	return &YTDLPInfoSource{runner: newRunner(binary)}
}

func (s *YTDLPInfoSource) VideoInfo(ctx context.Context, link string) (*VideoInfo, error) {
	out, err := s.runner.run(ctx, "--dump-single-json", "--skip-download", "--no-playlist", "--quiet", "--no-warnings", link)
	if err != nil {
		return nil, err
	}

	var info VideoInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("decode yt-dlp info: %w", err)
	}
	return &info, nil
}

// MetadataFetcher turns raw video information into display metadata
type MetadataFetcher struct {
	source InfoSource
	logger *zap.Logger
}

func NewMetadataFetcher(source InfoSource, logger *zap.Logger) *MetadataFetcher {
	return &MetadataFetcher{source: source, logger: logger}
}

// FetchMetadata never fails. Lookup errors yield the "Unknown" placeholders.
func (f *MetadataFetcher) FetchMetadata(ctx context.Context, link string) entities.VideoMetadata {
	info, err := f.source.VideoInfo(ctx, link)
	if err != nil {
		if f.logger != nil {
			f.logger.Warn("⚠️ Metadata lookup failed, using placeholders",
				zap.String("link", link),
				zap.Error(err),
			)
		}
		return entities.UnknownVideoMetadata()
	}
	return NormalizeInfo(info)
}

// NormalizeInfo applies the display rules: placeholder title and channel,
// formatted duration, 300 character description and at most 5 tags
func NormalizeInfo(info *VideoInfo) entities.VideoMetadata {
	if info == nil {
		return entities.UnknownVideoMetadata()
	}

	meta := entities.VideoMetadata{
		Title:      info.Title,
		Channel:    info.Uploader,
		Duration:   FormatDuration(int(info.Duration)),
		ViewCount:  info.ViewCount,
		UploadDate: info.UploadDate,
	}
	if meta.Title == "" {
		meta.Title = entities.UnknownTitle
	}
	if meta.Channel == "" {
		meta.Channel = entities.UnknownChannel
	}

	if info.Description != "" {
		meta.Description = entities.Truncate(info.Description, entities.MaxDescriptionLength) + "..."
	}

	tags := info.Tags
	if len(tags) > entities.MaxTags {
		tags = tags[:entities.MaxTags]
	}
	meta.Tags = append([]string{}, tags...)

	return meta
}

// FormatDuration renders seconds as "{h}h {m}m {s}s" or "{m}m {s}s".
// Zero or negative durations are "Unknown".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return entities.UnknownDuration
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}
