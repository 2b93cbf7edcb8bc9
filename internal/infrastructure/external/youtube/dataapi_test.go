package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestParseISODuration(t *testing.T) {
	assert.Equal(t, 3723, parseISODuration("PT1H2M3S"))
	assert.Equal(t, 90, parseISODuration("PT1M30S"))
	assert.Equal(t, 86400+5, parseISODuration("P1DT5S"))
	assert.Equal(t, 0, parseISODuration("P0D"))
	assert.Equal(t, 0, parseISODuration("garbage"))
}

func TestDataAPISource_VideoInfo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("id") != "abc123" {
			fmt.Fprint(w, `{"items":[]}`)
			return
		}
		fmt.Fprint(w, `{"items":[{"id":"abc123",
			"snippet":{"title":"API Title","channelTitle":"API Channel","description":"desc","publishedAt":"2024-03-05T10:00:00Z","tags":["go"]},
			"contentDetails":{"duration":"PT4M2S"},
			"statistics":{"viewCount":"1234"}}]}`)
	}))
	defer ts.Close()

	src, err := NewDataAPISource(context.Background(), "test-key", option.WithEndpoint(ts.URL+"/"))
	require.NoError(t, err)

	info, err := src.VideoInfo(context.Background(), "https://youtu.be/abc123")
	require.NoError(t, err)
	assert.Equal(t, "API Title", info.Title)
	assert.Equal(t, "API Channel", info.Uploader)
	assert.Equal(t, float64(242), info.Duration)
	assert.Equal(t, int64(1234), info.ViewCount)
	assert.Equal(t, "20240305", info.UploadDate)
	assert.Equal(t, []string{"go"}, info.Tags)

	_, err = src.VideoInfo(context.Background(), "https://youtu.be/missing")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}
