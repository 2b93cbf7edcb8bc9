package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/pkg/config"
)

var (
	ErrInvalidLink     = errors.New("not a recognised YouTube link")
	ErrNoCaptions      = errors.New("no captions in the requested languages")
	ErrPlayerResponse  = errors.New("ytInitialPlayerResponse not found in watch page")
	ErrEmptyTranscript = errors.New("caption track is empty")
)

const (
	playerResponseMarker = "ytInitialPlayerResponse = "
	browserUserAgent     = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxWatchPageBytes    = 6 << 20
	maxTimedTextBytes    = 2 << 20
)

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type timedText struct {
	Lines []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

// CaptionFetcher reads existing caption tracks from the YouTube watch page
type CaptionFetcher struct {
	client    *http.Client
	baseURL   string
	languages []string
	logger    *zap.Logger
}

// NewCaptionFetcher creates a caption fetcher from the YouTube config
func NewCaptionFetcher(cfg *config.YouTubeConfig, logger *zap.Logger) *CaptionFetcher {
	languages := cfg.CaptionLanguages
	if len(languages) == 0 {
		languages = []string{"en", "en-US"}
	}
	return &CaptionFetcher{
		client:    &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:   strings.TrimRight(cfg.WatchBaseURL, "/"),
		languages: languages,
		logger:    logger,
	}
}

// FetchCaptions returns the caption text of the linked video, segments
// joined by single spaces in playback order
func (f *CaptionFetcher) FetchCaptions(ctx context.Context, link string) (string, error) {
	id, ok := ExtractVideoID(link)
	if !ok {
		return "", ErrInvalidLink
	}

	page, err := f.get(ctx, f.baseURL+"/watch?v="+url.QueryEscape(string(id)), maxWatchPageBytes)
	if err != nil {
		return "", fmt.Errorf("watch page: %w", err)
	}

	idx := strings.Index(string(page), playerResponseMarker)
	if idx < 0 {
		return "", ErrPlayerResponse
	}
	raw := extractJSON(page[idx+len(playerResponseMarker):])
	if raw == nil {
		return "", ErrPlayerResponse
	}

	var player playerResponse
	if err := json.Unmarshal(raw, &player); err != nil {
		return "", fmt.Errorf("decode player response: %w", err)
	}
	if player.Captions == nil {
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Reason != "" {
			return "", fmt.Errorf("%w: %s", ErrNoCaptions, player.PlayabilityStatus.Reason)
		}
		return "", ErrNoCaptions
	}

	track, ok := pickTrack(player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, f.languages)
	if !ok {
		return "", ErrNoCaptions
	}

	if f.logger != nil {
		f.logger.Debug("📝 Caption track selected",
			zap.String("video_id", string(id)),
			zap.String("language", track.LanguageCode),
			zap.Bool("auto_generated", track.Kind == "asr"),
		)
	}

	body, err := f.get(ctx, track.BaseURL, maxTimedTextBytes)
	if err != nil {
		return "", fmt.Errorf("timedtext: %w", err)
	}

	text, err := joinTimedText(body)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyTranscript
	}
	return text, nil
}

func (f *CaptionFetcher) get(ctx context.Context, rawURL string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

// pickTrack prefers a manual track over an auto-generated one, trying the
// languages in order. Tracks in other languages are never used.
func pickTrack(tracks []captionTrack, languages []string) (captionTrack, bool) {
	for _, lang := range languages {
		for _, t := range tracks {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range languages {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	return captionTrack{}, false
}

func joinTimedText(body []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("parse timedtext XML: %w", err)
	}

	var sb strings.Builder
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// extractJSON returns the JSON object starting at b[0] by tracking brace
// depth outside of string literals
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}
