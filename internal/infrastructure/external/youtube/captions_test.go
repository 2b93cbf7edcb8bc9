package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/pkg/config"
)

const watchPageTemplate = `<html><head><script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[%s]}},"videoDetails":{"title":"a {braced} \"title\""}};var meta = {};</script></head></html>`

const timedTextBody = `<?xml version="1.0" encoding="utf-8" ?><transcript>
<text start="0" dur="1.5">Hello &amp;amp; welcome</text>
<text start="1.5" dur="2">  to the   show </text>
<text start="3.5" dur="1"></text>
<text start="4.5" dur="1">it&amp;#39;s great</text>
</transcript>`

func newCaptionServer(t *testing.T, tracks func(base string) string) *httptest.Server {
	t.Helper()
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/watch":
			if r.URL.Query().Get("v") != "abc123" {
				http.NotFound(w, r)
				return
			}
			fmt.Fprintf(w, watchPageTemplate, tracks(ts.URL))
		case "/timedtext":
			if r.URL.Query().Get("lang") != "en" {
				w.WriteHeader(http.StatusTeapot)
				return
			}
			fmt.Fprint(w, timedTextBody)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newTestCaptionFetcher(baseURL string) *CaptionFetcher {
	return NewCaptionFetcher(&config.YouTubeConfig{
		WatchBaseURL:     baseURL,
		CaptionLanguages: []string{"en", "en-US"},
		RequestTimeout:   5 * time.Second,
	}, zap.NewNop())
}

func TestFetchCaptions_JoinsSegments(t *testing.T) {
	ts := newCaptionServer(t, func(base string) string {
		return fmt.Sprintf(`{"baseUrl":"%s/timedtext?lang=de","languageCode":"de"},{"baseUrl":"%s/timedtext?lang=en","languageCode":"en"}`, base, base)
	})

	text, err := newTestCaptionFetcher(ts.URL).FetchCaptions(context.Background(), "https://youtu.be/abc123")
	require.NoError(t, err)
	assert.Equal(t, "Hello & welcome to the   show it's great", text)
}

func TestFetchCaptions_PrefersManualTrack(t *testing.T) {
	ts := newCaptionServer(t, func(base string) string {
		return fmt.Sprintf(`{"baseUrl":"%s/timedtext?lang=asr","languageCode":"en","kind":"asr"},{"baseUrl":"%s/timedtext?lang=en","languageCode":"en"}`, base, base)
	})

	text, err := newTestCaptionFetcher(ts.URL).FetchCaptions(context.Background(), "https://www.youtube.com/watch?v=abc123")
	require.NoError(t, err)
	assert.Contains(t, text, "Hello & welcome")
}

func TestFetchCaptions_NoMatchingLanguage(t *testing.T) {
	ts := newCaptionServer(t, func(base string) string {
		return fmt.Sprintf(`{"baseUrl":"%s/timedtext?lang=fr","languageCode":"fr"}`, base)
	})

	_, err := newTestCaptionFetcher(ts.URL).FetchCaptions(context.Background(), "https://youtu.be/abc123")
	assert.ErrorIs(t, err, ErrNoCaptions)
}

func TestFetchCaptions_InvalidLink(t *testing.T) {
	_, err := newTestCaptionFetcher("http://127.0.0.1:1").FetchCaptions(context.Background(), "not a url")
	assert.ErrorIs(t, err, ErrInvalidLink)
}

func TestFetchCaptions_MissingPlayerResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>consent wall</html>")
	}))
	defer ts.Close()

	_, err := newTestCaptionFetcher(ts.URL).FetchCaptions(context.Background(), "https://youtu.be/abc123")
	assert.ErrorIs(t, err, ErrPlayerResponse)
}

func TestExtractJSON(t *testing.T) {
	in := []byte(`{"a":"}{","b":{"c":"\"}"}};rest`)
	assert.Equal(t, `{"a":"}{","b":{"c":"\"}"}}`, string(extractJSON(in)))
	assert.Nil(t, extractJSON([]byte(`{"open":`)))
	assert.Nil(t, extractJSON([]byte(`x{}`)))
}
