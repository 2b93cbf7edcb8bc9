package youtube

import "regexp"

// VideoID is the canonical identifier of a YouTube video
type VideoID string

// linkPatterns are tried in order; the first match wins
var linkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&\n?#]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([^&\n?#]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([^&\n?#]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([^&\n?#]+)`),
}

// ExtractVideoID returns the video identifier embedded in a watch, youtu.be,
// embed or shorts link. The pattern may occur anywhere in raw. ok is false
// when no pattern matches.
func ExtractVideoID(raw string) (id VideoID, ok bool) {
	for _, re := range linkPatterns {
		if m := re.FindStringSubmatch(raw); len(m) == 2 && m[1] != "" {
			return VideoID(m[1]), true
		}
	}
	return "", false
}

// WatchURL returns the canonical watch page link for id
func WatchURL(id VideoID) string {
	return "https://www.youtube.com/watch?v=" + string(id)
}
