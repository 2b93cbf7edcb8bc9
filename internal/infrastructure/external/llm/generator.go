package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	"github.com/johnquangdev/tubeblog/pkg/config"
)

var (
	ErrNotConfigured    = errors.New("LLM API key not configured")
	ErrGenerationFailed = errors.New("failed to generate blog article")
)

// Variant selects the prompt and acceptance rules of a generation
type Variant string

const (
	// VariantFast writes from caption text and metadata
	VariantFast Variant = "fast"
	// VariantEnhanced writes from a full transcription and its analysis
	VariantEnhanced Variant = "enhanced"
)

const systemPrompt = "You are a professional blog writer who turns video content into publication-ready articles."

// ArticleRequest is the input of one generation
type ArticleRequest struct {
	Variant Variant
	// Transcript is the caption text used by VariantFast
	Transcript string
	// Result is the transcription used by VariantEnhanced
	Result   *entities.TranscriptResult
	Metadata entities.VideoMetadata
}

// Generator writes blog articles with an OpenAI-compatible chat completion API
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	fastLimit   int
	fullLimit   int
	logger      *zap.Logger
}

// NewGenerator creates a generator. With an empty LLM API key every call
// fails with ErrNotConfigured.
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	g := &Generator{
		model:       cfg.LLM.Model,
		temperature: cfg.LLM.Temperature,
		maxTokens:   cfg.LLM.MaxTokens,
		fastLimit:   cfg.Pipeline.FastTranscriptLimit,
		fullLimit:   cfg.Pipeline.FullTranscriptLimit,
		logger:      logger,
	}
	if cfg.LLM.APIKey == "" {
		return g
	}

	clientCfg := openai.DefaultConfig(cfg.LLM.APIKey)
	if cfg.LLM.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.LLM.BaseURL, "/")
	}
	g.client = openai.NewClientWithConfig(clientCfg)
	return g
}

// Configured reports whether an API key was supplied
func (g *Generator) Configured() bool {
	return g.client != nil
}

// Generate returns the article body for the request's variant
func (g *Generator) Generate(ctx context.Context, req ArticleRequest) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	var prompt string
	switch req.Variant {
	case VariantFast:
		prompt = fastPrompt(req.Transcript, req.Metadata, g.fastLimit)
	case VariantEnhanced:
		if req.Result.IsEmpty() {
			return "", fmt.Errorf("%w: empty transcript", ErrGenerationFailed)
		}
		prompt = enhancedPrompt(req.Result, req.Metadata, g.fullLimit)
	default:
		return "", fmt.Errorf("unknown variant %q", req.Variant)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrGenerationFailed)
	}

	content := resp.Choices[0].Message.Content
	if req.Variant == VariantEnhanced && strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: no content generated", ErrGenerationFailed)
	}

	if g.logger != nil {
		g.logger.Info("✍️ Article generated",
			zap.String("variant", string(req.Variant)),
			zap.String("model", g.model),
			zap.Int("prompt_chars", len(prompt)),
			zap.Int("content_chars", len(content)),
		)
	}
	return content, nil
}
