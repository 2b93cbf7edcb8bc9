package youtube

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// ErrVideoNotFound is returned when the Data API has no video for the id
var ErrVideoNotFound = errors.New("video not found")

var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// DataAPISource reads video information from the YouTube Data API v3
type DataAPISource struct {
	service *ytapi.Service
}

// NewDataAPISource creates a Data API client authenticated with apiKey.
// Extra options are appended after the key, e.g. option.WithEndpoint.
func NewDataAPISource(ctx context.Context, apiKey string, opts ...option.ClientOption) (*DataAPISource, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &DataAPISource{service: svc}, nil
}

func (s *DataAPISource) VideoInfo(ctx context.Context, link string) (*VideoInfo, error) {
	id, ok := ExtractVideoID(link)
	if !ok {
		return nil, ErrInvalidLink
	}

	resp, err := s.service.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Id(string(id)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("videos.list: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	v := resp.Items[0]
	info := &VideoInfo{}
	if v.Snippet != nil {
		info.Title = v.Snippet.Title
		info.Uploader = v.Snippet.ChannelTitle
		info.Description = v.Snippet.Description
		info.Tags = v.Snippet.Tags
		info.UploadDate = uploadDate(v.Snippet.PublishedAt)
	}
	if v.ContentDetails != nil {
		info.Duration = float64(parseISODuration(v.ContentDetails.Duration))
	}
	if v.Statistics != nil {
		info.ViewCount = int64(v.Statistics.ViewCount)
	}
	return info, nil
}

// uploadDate converts an RFC 3339 timestamp to yt-dlp's YYYYMMDD form
func uploadDate(publishedAt string) string {
	t, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return ""
	}
	return t.UTC().Format("20060102")
}

// parseISODuration returns the seconds in an ISO 8601 duration such as
// "PT1H2M3S". Unparseable input is 0.
func parseISODuration(d string) int {
	m := isoDurationPattern.FindStringSubmatch(d)
	if m == nil {
		return 0
	}
	units := []int{86400, 3600, 60, 1}
	total := 0
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0
		}
		total += n * unit
	}
	return total
}
