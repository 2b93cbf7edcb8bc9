package blog

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
)

// ExportObjectName is the storage key of an article's markdown export
func ExportObjectName(article *entities.BlogArticle) string {
	return fmt.Sprintf("articles/%s/%s.md", article.UserID, article.ID)
}

// RenderMarkdown prefixes the generated body with a source header
func RenderMarkdown(article *entities.BlogArticle) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<!-- source: %s -->\n", article.YouTubeLink)
	fmt.Fprintf(&sb, "<!-- method: %s, words: %d -->\n\n", article.Method, article.WordCount)

	fmt.Fprintf(&sb, "> Based on [%s](%s)", article.YouTubeTitle, article.YouTubeLink)
	if article.ChannelName != "" {
		fmt.Fprintf(&sb, " by %s", article.ChannelName)
	}
	if article.VideoDuration != "" && article.VideoDuration != entities.UnknownDuration {
		fmt.Fprintf(&sb, " (%s)", article.VideoDuration)
	}
	sb.WriteString("\n\n")

	sb.WriteString(strings.TrimSpace(article.GeneratedContent))
	sb.WriteString("\n")

	if tags := article.VideoDetails.Data().Tags; len(tags) > 0 {
		sb.WriteString("\n---\n\nTags: ")
		sb.WriteString(strings.Join(tags, ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}
