package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	"github.com/johnquangdev/tubeblog/pkg/config"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// newChatServer answers chat completions with content and records the
// last user prompt
func newChatServer(t *testing.T, content string, status int) (*httptest.Server, *string) {
	t.Helper()
	var lastPrompt string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		for _, m := range req.Messages {
			if m.Role == "user" {
				lastPrompt = m.Content
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"model overloaded","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(ts.Close)
	return ts, &lastPrompt
}

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = baseURL
	cfg.LLM.Model = "llama-3.3-70b-versatile"
	cfg.LLM.MaxTokens = 2048
	cfg.Pipeline.FastTranscriptLimit = 8000
	cfg.Pipeline.FullTranscriptLimit = 3000
	return cfg
}

func TestGenerate_Fast(t *testing.T) {
	ts, prompt := newChatServer(t, "# Article\n\nBody", http.StatusOK)
	g := NewGenerator(testConfig(ts.URL+"/v1"), zap.NewNop())

	transcript := strings.Repeat("a", 9000)
	out, err := g.Generate(context.Background(), ArticleRequest{
		Variant:    VariantFast,
		Transcript: transcript,
		Metadata:   entities.VideoMetadata{Title: "Go Tips"},
	})
	require.NoError(t, err)
	assert.Equal(t, "# Article\n\nBody", out)

	assert.Contains(t, *prompt, "Title: Go Tips")
	assert.Contains(t, *prompt, "Channel: YouTube")
	assert.Contains(t, *prompt, "500-800 words")
	assert.Contains(t, *prompt, strings.Repeat("a", 8000))
	assert.NotContains(t, *prompt, strings.Repeat("a", 8001))
}

func TestGenerate_Enhanced(t *testing.T) {
	ts, prompt := newChatServer(t, "Enhanced article", http.StatusOK)
	g := NewGenerator(testConfig(ts.URL+"/v1"), zap.NewNop())

	result := entities.NewTranscriptResult(strings.Repeat("word ", 1000), 0.95)
	result.Highlights = []entities.Highlight{{Text: "goroutines"}, {Text: "channels"}}
	result.Speakers = map[string][]entities.Utterance{"A": nil, "B": nil}

	out, err := g.Generate(context.Background(), ArticleRequest{
		Variant: VariantEnhanced,
		Result:  result,
		Metadata: entities.VideoMetadata{
			Title:       "Concurrency",
			Channel:     "Gopher TV",
			Duration:    "10m 0s",
			Description: strings.Repeat("d", 250),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Enhanced article", out)

	assert.Contains(t, *prompt, "- Word Count: 1000 words")
	assert.Contains(t, *prompt, "- Speakers Detected: 2 (Multi-speaker content)")
	assert.Contains(t, *prompt, "• goroutines\n• channels")
	assert.Contains(t, *prompt, "- Description: "+strings.Repeat("d", 200)+"\n")
	assert.Contains(t, *prompt, "600-800 words")
	assert.NotContains(t, *prompt, strings.Repeat("word ", 601))
}

func TestGenerate_EnhancedEmptyOutput(t *testing.T) {
	ts, _ := newChatServer(t, "   ", http.StatusOK)
	g := NewGenerator(testConfig(ts.URL+"/v1"), zap.NewNop())

	_, err := g.Generate(context.Background(), ArticleRequest{
		Variant: VariantEnhanced,
		Result:  entities.NewTranscriptResult("some words", 0.95),
	})
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerate_UpstreamError(t *testing.T) {
	ts, _ := newChatServer(t, "", http.StatusInternalServerError)
	g := NewGenerator(testConfig(ts.URL+"/v1"), zap.NewNop())

	_, err := g.Generate(context.Background(), ArticleRequest{Variant: VariantFast, Transcript: "text"})
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerate_NotConfigured(t *testing.T) {
	cfg := testConfig("")
	cfg.LLM.APIKey = ""
	g := NewGenerator(cfg, zap.NewNop())

	assert.False(t, g.Configured())
	_, err := g.Generate(context.Background(), ArticleRequest{Variant: VariantFast, Transcript: "text"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
