package presenter

import (
	blogDTO "github.com/johnquangdev/tubeblog/internal/adapter/dto/blog"
	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	"github.com/johnquangdev/tubeblog/internal/usecase/blog"
)

// ToGenerateResponse converts a pipeline result. Speaker count and
// confidence are only reported for full transcriptions.
func ToGenerateResponse(result *blog.GenerationResult) *blogDTO.GenerateResponse {
	if result == nil || result.Article == nil {
		return nil
	}
	a := result.Article

	meta := blogDTO.GenerationMetadata{
		Title:     result.Metadata.Title,
		Channel:   result.Metadata.Channel,
		Duration:  result.Metadata.Duration,
		WordCount: a.WordCount,
	}
	if a.Method == entities.MethodFullTranscription {
		speakers := a.SpeakersDetected
		if result.Transcript != nil {
			speakers = result.Transcript.SpeakerCount()
		}
		confidence := a.TranscriptConfidence
		meta.SpeakersDetected = &speakers
		meta.TranscriptConfidence = &confidence
	}

	return &blogDTO.GenerateResponse{
		Success:  true,
		Content:  a.GeneratedContent,
		Method:   string(a.Method),
		BlogID:   a.ID.String(),
		Metadata: meta,
	}
}

// ToBlogResponse converts a stored article
func ToBlogResponse(a *entities.BlogArticle) *blogDTO.BlogResponse {
	if a == nil {
		return nil
	}

	resp := &blogDTO.BlogResponse{
		ID:                   a.ID.String(),
		VideoID:              a.VideoID,
		YouTubeTitle:         a.YouTubeTitle,
		YouTubeLink:          a.YouTubeLink,
		GeneratedContent:     a.GeneratedContent,
		ChannelName:          a.ChannelName,
		VideoDuration:        a.VideoDuration,
		WordCount:            a.WordCount,
		TranscriptConfidence: a.TranscriptConfidence,
		SpeakersDetected:     a.SpeakersDetected,
		Method:               string(a.Method),
		CreatedAt:            a.CreatedAt,
	}

	details := a.VideoDetails.Data()
	if details.Description != "" || details.ViewCount != 0 || details.UploadDate != "" || len(details.Tags) > 0 {
		resp.VideoDetails = &blogDTO.VideoDetailsResponse{
			Description: details.Description,
			ViewCount:   details.ViewCount,
			UploadDate:  details.UploadDate,
			Tags:        details.Tags,
		}
	}
	return resp
}

// ToListResponse converts a page of articles
func ToListResponse(articles []*entities.BlogArticle, count int64) *blogDTO.ListResponse {
	blogs := make([]*blogDTO.BlogResponse, 0, len(articles))
	for _, a := range articles {
		blogs = append(blogs, ToBlogResponse(a))
	}
	return &blogDTO.ListResponse{Count: count, Blogs: blogs}
}

// ToExportResponse converts an export result
func ToExportResponse(blogID string, result *blog.ExportResult) *blogDTO.ExportResponse {
	if result == nil {
		return nil
	}
	return &blogDTO.ExportResponse{
		BlogID:    blogID,
		Object:    result.ObjectName,
		URL:       result.URL,
		ExpiresAt: result.ExpiresAt,
	}
}
