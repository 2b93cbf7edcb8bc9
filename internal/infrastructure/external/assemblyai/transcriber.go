package assemblyai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	"github.com/johnquangdev/tubeblog/pkg/config"
)

var (
	ErrNotConfigured       = errors.New("AssemblyAI API key not configured")
	ErrTranscriptionFailed = errors.New("Transcription failed")
)

// TranscriptClient is the part of the SDK transcripts API the transcriber uses
type TranscriptClient interface {
	TranscribeFromReader(ctx context.Context, reader io.Reader, params *aai.TranscriptOptionalParams) (aai.Transcript, error)
}

// Transcriber converts downloaded media into a transcript with AssemblyAI
type Transcriber struct {
	client     TranscriptClient
	confidence float64
	logger     *zap.Logger
}

// NewTranscriber builds the SDK client from config. With an empty API key
// the transcriber is returned unconfigured and every call fails with
// ErrNotConfigured.
func NewTranscriber(cfg *config.Config, logger *zap.Logger) *Transcriber {
	t := &Transcriber{
		confidence: cfg.Pipeline.DefaultConfidence,
		logger:     logger,
	}
	if cfg.Assembly.APIKey == "" {
		return t
	}

	opts := []aai.ClientOption{aai.WithAPIKey(cfg.Assembly.APIKey)}
	if cfg.Assembly.BaseURL != "" {
		opts = append(opts, aai.WithBaseURL(cfg.Assembly.BaseURL))
	}
	t.client = aai.NewClientWithOptions(opts...).Transcripts
	return t
}

// NewTranscriberWithClient wires an existing transcripts client
func NewTranscriberWithClient(client TranscriptClient, confidence float64, logger *zap.Logger) *Transcriber {
	return &Transcriber{client: client, confidence: confidence, logger: logger}
}

// Configured reports whether an API key was supplied
func (t *Transcriber) Configured() bool {
	return t.client != nil
}

// TranscribeFile uploads the file, waits for completion and returns the text.
// Only punctuation and text formatting are requested, so the analysis
// fields of the result stay empty.
func (t *Transcriber) TranscribeFile(ctx context.Context, path string) (*entities.TranscriptResult, error) {
	if !t.Configured() {
		return nil, ErrNotConfigured
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	params := &aai.TranscriptOptionalParams{
		Punctuate:  aai.Bool(true),
		FormatText: aai.Bool(true),
	}

	transcript, err := t.client.TranscribeFromReader(ctx, f, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("%w: %s", ErrTranscriptionFailed, msg)
	}

	var text string
	if transcript.Text != nil {
		text = *transcript.Text
	}

	if t.logger != nil {
		var id string
		if transcript.ID != nil {
			id = *transcript.ID
		}
		t.logger.Info("✅ Transcription completed",
			zap.String("transcript_id", id),
			zap.Int("chars", len(text)),
		)
	}

	return entities.NewTranscriptResult(text, t.confidence), nil
}
