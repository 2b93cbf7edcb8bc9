package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	"github.com/johnquangdev/tubeblog/internal/domain/repositories"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/external/llm"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/external/youtube"
	ucerrors "github.com/johnquangdev/tubeblog/internal/usecase/errors"
	"github.com/johnquangdev/tubeblog/pkg/config"
	"github.com/johnquangdev/tubeblog/pkg/runcontext"
)

// GenerationResult is the outcome of one successful pipeline run.
// Transcript is only set for full transcriptions.
type GenerationResult struct {
	Article    *entities.BlogArticle
	Metadata   entities.VideoMetadata
	Transcript *entities.TranscriptResult
}

// ExportResult describes an article exported to object storage
type ExportResult struct {
	ObjectName string
	URL        string
	ExpiresAt  time.Time
}

// Service runs the video to article pipeline and manages stored articles
type Service struct {
	captions    CaptionFetcher
	metadata    MetadataFetcher
	audio       AudioRetriever
	transcriber Transcriber
	generator   ArticleGenerator
	blogRepo    repositories.BlogRepository
	store       ArticleStore
	pipeline    config.PipelineConfig
	urlExpiry   time.Duration
	logger      *zap.Logger
}

// NewService wires the pipeline. store may be nil when object storage is
// disabled; exports then fail with ErrStorageNotConfigured.
func NewService(
	captions CaptionFetcher,
	metadata MetadataFetcher,
	audio AudioRetriever,
	transcriber Transcriber,
	generator ArticleGenerator,
	blogRepo repositories.BlogRepository,
	store ArticleStore,
	cfg *config.Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		captions:    captions,
		metadata:    metadata,
		audio:       audio,
		transcriber: transcriber,
		generator:   generator,
		blogRepo:    blogRepo,
		store:       store,
		pipeline:    cfg.Pipeline,
		urlExpiry:   cfg.Storage.URLExpiry,
		logger:      logger,
	}
}

// Generate turns a YouTube link into a persisted article. Captions are tried
// first; any failure there falls back to downloading and transcribing the
// audio. Exactly one article is stored per successful run. Once started, a
// run is not cancelled by the caller going away.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, link string) (*GenerationResult, error) {
	link = strings.TrimSpace(link)
	if len(link) > entities.MaxLinkLength {
		return nil, fmt.Errorf("%w: link longer than %d characters", ucerrors.ErrInvalidVideoURL, entities.MaxLinkLength)
	}
	videoID, ok := youtube.ExtractVideoID(link)
	if !ok {
		return nil, ucerrors.ErrInvalidVideoURL
	}

	ctx = runcontext.RunBegin(context.WithoutCancel(ctx), userID)
	ctx = runcontext.SetVideoID(ctx, string(videoID))
	s.logStage(ctx, "parsing", "🚀 Pipeline started", zap.String("link", link))

	meta, result, err := s.tryFast(ctx, userID, link, videoID)
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result, nil
	}

	return s.runSlow(ctx, userID, link, videoID, meta)
}

// tryFast returns a result when the caption path succeeds. A nil result with
// a nil error means the slow path must run; metadata fetched on the way is
// returned for reuse.
func (s *Service) tryFast(ctx context.Context, userID uuid.UUID, link string, videoID youtube.VideoID) (*entities.VideoMetadata, *GenerationResult, error) {
	s.logStage(ctx, "fast_attempt", "📝 Fetching captions")

	transcript, err := s.captions.FetchCaptions(ctx, link)
	if err != nil {
		s.logStage(ctx, "fast_failed", "⚠️ Captions unavailable", zap.Error(err))
		return nil, nil, nil
	}

	trimmed := strings.TrimSpace(transcript)
	if len([]rune(trimmed)) <= s.pipeline.MinCaptionLength {
		s.logStage(ctx, "fast_failed", "⚠️ Captions too short",
			zap.Int("chars", len([]rune(trimmed))),
			zap.Int("min_chars", s.pipeline.MinCaptionLength),
		)
		return nil, nil, nil
	}

	meta := s.metadata.FetchMetadata(ctx, link)

	content, err := s.generator.Generate(ctx, llm.ArticleRequest{
		Variant:    llm.VariantFast,
		Transcript: transcript,
		Metadata:   meta,
	})
	if err != nil {
		s.logStage(ctx, "fast_failed", "⚠️ Fast generation failed", zap.Error(err))
		return &meta, nil, nil
	}
	if strings.TrimSpace(content) == "" {
		s.logStage(ctx, "fast_failed", "⚠️ Fast generation returned no content")
		return &meta, nil, nil
	}

	article := entities.NewBlogArticle(userID, link, string(videoID), entities.MethodFastCaptions, content, meta, s.pipeline.DefaultConfidence)
	if err := s.persist(ctx, article); err != nil {
		return nil, nil, err
	}

	s.logStage(ctx, "fast_success", "✅ Article generated from captions",
		zap.String("blog_id", article.ID.String()),
		zap.Int("word_count", article.WordCount),
	)
	return &meta, &GenerationResult{Article: article, Metadata: meta}, nil
}

func (s *Service) runSlow(ctx context.Context, userID uuid.UUID, link string, videoID youtube.VideoID, cached *entities.VideoMetadata) (*GenerationResult, error) {
	s.logStage(ctx, "slow_attempt", "🎧 Falling back to full transcription")

	var meta entities.VideoMetadata
	if cached != nil {
		meta = *cached
	} else {
		meta = s.metadata.FetchMetadata(ctx, link)
	}

	if !s.transcriber.Configured() {
		s.logStage(ctx, "slow_failed", "❌ Transcriber not configured")
		return nil, ucerrors.ErrTranscriberNotConfigured
	}
	if !s.generator.Configured() {
		s.logStage(ctx, "slow_failed", "❌ Generator not configured")
		return nil, ucerrors.ErrGeneratorNotConfigured
	}

	audio, err := s.audio.DownloadAudio(ctx, link)
	if err != nil {
		s.logStage(ctx, "slow_failed", "❌ Audio download failed", zap.Error(err))
		return nil, ucerrors.ErrNoTranscript
	}
	defer func() {
		if err := audio.Cleanup(); err != nil && s.logger != nil {
			s.logger.Warn("Failed to remove audio temp dir",
				append(runcontext.Fields(ctx), zap.String("dir", audio.Dir), zap.Error(err))...)
		}
	}()

	transcript, err := s.transcriber.TranscribeFile(ctx, audio.Path)
	if err != nil {
		s.logStage(ctx, "slow_failed", "❌ Transcription failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrTranscriptionFailed, err)
	}
	if transcript.IsEmpty() {
		s.logStage(ctx, "slow_failed", "❌ Transcription returned no text")
		return nil, ucerrors.ErrNoTranscript
	}

	content, err := s.generator.Generate(ctx, llm.ArticleRequest{
		Variant:  llm.VariantEnhanced,
		Result:   transcript,
		Metadata: meta,
	})
	if err != nil {
		s.logStage(ctx, "slow_failed", "❌ Enhanced generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrGenerationFailed, err)
	}

	article := entities.NewBlogArticle(userID, link, string(videoID), entities.MethodFullTranscription, content, meta, s.pipeline.DefaultConfidence)
	article.ApplyTranscript(transcript)
	if err := s.persist(ctx, article); err != nil {
		return nil, err
	}

	s.logStage(ctx, "slow_success", "✅ Article generated from transcription",
		zap.String("blog_id", article.ID.String()),
		zap.Int("word_count", article.WordCount),
		zap.Int("speakers_detected", article.SpeakersDetected),
	)
	return &GenerationResult{Article: article, Metadata: meta, Transcript: transcript}, nil
}

func (s *Service) persist(ctx context.Context, article *entities.BlogArticle) error {
	if err := article.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ucerrors.ErrGenerationFailed, err)
	}
	if err := s.blogRepo.Create(ctx, article); err != nil {
		s.logStage(ctx, "persist_failed", "❌ Failed to store article", zap.Error(err))
		return fmt.Errorf("failed to store article: %w", err)
	}
	return nil
}

func (s *Service) logStage(ctx context.Context, stage, msg string, fields ...zap.Field) {
	if s.logger == nil {
		return
	}
	all := append(runcontext.Fields(ctx), zap.String("stage", stage))
	s.logger.Info(msg, append(all, fields...)...)
}

// List returns the user's articles newest first, with their total count
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*entities.BlogArticle, int64, error) {
	articles, err := s.blogRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	count, err := s.blogRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return articles, count, nil
}

// Get returns one of the user's articles
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*entities.BlogArticle, error) {
	article, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrBlogNotFound) {
			return nil, ucerrors.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	if !article.IsOwnedBy(userID) {
		return nil, ucerrors.ErrAccessDenied
	}
	return article, nil
}

// Delete removes one of the user's articles and any exported copy of it
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	article, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.blogRepo.Delete(ctx, article.ID); err != nil {
		if errors.Is(err, entities.ErrBlogNotFound) {
			return ucerrors.ErrBlogNotFound
		}
		return fmt.Errorf("failed to delete article: %w", err)
	}

	if s.store != nil {
		if err := s.store.RemoveFile(ctx, ExportObjectName(article)); err != nil && s.logger != nil {
			s.logger.Warn("Failed to remove exported article",
				zap.String("blog_id", article.ID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}

// Export uploads the article as markdown and returns a presigned link to it
func (s *Service) Export(ctx context.Context, userID, id uuid.UUID) (*ExportResult, error) {
	if s.store == nil {
		return nil, ucerrors.ErrStorageNotConfigured
	}

	article, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	objectName := ExportObjectName(article)
	if err := s.store.UploadMarkdown(ctx, objectName, RenderMarkdown(article)); err != nil {
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrExportFailed, err)
	}

	url, err := s.store.GetFileURL(ctx, objectName, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrExportFailed, err)
	}

	if s.logger != nil {
		s.logger.Info("📦 Article exported",
			zap.String("blog_id", article.ID.String()),
			zap.String("object", objectName),
		)
	}

	return &ExportResult{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  time.Now().Add(s.urlExpiry),
	}, nil
}
