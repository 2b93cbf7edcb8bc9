package llm

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
)

const (
	maxPromptDescription = 200
	maxPromptEntities    = 5
	maxPromptHighlights  = 8

	unknown = "Unknown"
)

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func fastPrompt(transcript string, meta entities.VideoMetadata, limit int) string {
	return fmt.Sprintf(`Create a well-structured blog article from this YouTube video transcript:

Title: %s
Channel: %s

Transcript:
%s

Write a comprehensive blog article with:
- Engaging introduction
- Clear headings and subheadings
- Key insights and takeaways
- Professional conclusion
- 500-800 words

Make it readable and engaging for a general audience.`,
		orDefault(meta.Title, "Video Analysis"),
		orDefault(meta.Channel, "YouTube"),
		entities.Truncate(transcript, limit),
	)
}

func enhancedPrompt(result *entities.TranscriptResult, meta entities.VideoMetadata, limit int) string {
	speakers := result.SpeakerCount()
	speakerNote := "(Single speaker)"
	if speakers > 1 {
		speakerNote = "(Multi-speaker content)"
	}

	names := make([]string, 0, maxPromptEntities)
	for i, e := range result.Entities {
		if i == maxPromptEntities {
			break
		}
		names = append(names, e.Text)
	}

	bullets := make([]string, 0, maxPromptHighlights)
	for i, h := range result.Highlights {
		if i == maxPromptHighlights {
			break
		}
		bullets = append(bullets, "• "+h.Text)
	}

	var sb strings.Builder
	sb.WriteString("Create a comprehensive, well-structured blog article based on this YouTube video content:\n\n")

	sb.WriteString("VIDEO DETAILS:\n")
	fmt.Fprintf(&sb, "- Title: %s\n", orDefault(meta.Title, unknown))
	fmt.Fprintf(&sb, "- Channel: %s\n", orDefault(meta.Channel, unknown))
	fmt.Fprintf(&sb, "- Duration: %s\n", orDefault(meta.Duration, unknown))
	fmt.Fprintf(&sb, "- Description: %s\n\n", entities.Truncate(meta.Description, maxPromptDescription))

	sb.WriteString("TRANSCRIPT ANALYSIS:\n")
	fmt.Fprintf(&sb, "- Word Count: %d words\n", result.WordCount())
	fmt.Fprintf(&sb, "- Speakers Detected: %d %s\n", speakers, speakerNote)
	fmt.Fprintf(&sb, "- Key Entities: %s\n\n", strings.Join(names, ", "))

	sb.WriteString("KEY HIGHLIGHTS FROM AI ANALYSIS:\n")
	sb.WriteString(strings.Join(bullets, "\n"))
	sb.WriteString("\n\n")

	sb.WriteString("FULL TRANSCRIPT:\n")
	sb.WriteString(entities.Truncate(result.Text, limit))
	sb.WriteString("\n\n")

	sb.WriteString(`INSTRUCTIONS:
1. Create a professional blog article (NOT a video transcript)
2. Use proper blog structure with engaging headings
3. Include a compelling introduction and conclusion
4. Incorporate the key highlights naturally
5. Make it SEO-friendly with relevant keywords
6. Write in a conversational yet professional tone
7. Include 600-800 words
8. Add subheadings to break up content

BLOG STRUCTURE:
- Compelling headline
- Introduction hook
- Main content sections with subheadings
- Key takeaways section
- Conclusion with call-to-action

Generate a complete, publication-ready blog article:`)

	return sb.String()
}
