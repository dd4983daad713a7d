package entities

import (
	"fmt"
	"strings"
)

// TranscriptEntry is a single caption segment with its start offset in
// seconds (fractional) as reported by the transcript provider.
type TranscriptEntry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript holds the fetched transcript in the two forms the flows consume.
type Transcript struct {
	VideoID         string `json:"video_id"`
	Language        string `json:"language"`
	PlainText       string `json:"plain_text"`
	TimestampedText string `json:"timestamped_text"`
}

// maxPlainTextWords caps the plain-text form built at fetch time. The
// timestamped form is not truncated here; the summary flow truncates it to
// 3000 characters when building the prompt.
const maxPlainTextWords = 3000

// BuildTranscript renders provider entries into the plain and timestamped
// text forms. An entry list with no usable text yields ErrEmptyTranscript.
func BuildTranscript(videoID, language string, entries []TranscriptEntry) (*Transcript, error) {
	var words []string
	var timestamped strings.Builder

	for _, entry := range entries {
		text := strings.TrimSpace(entry.Text)
		if text == "" {
			continue
		}
		words = append(words, strings.Fields(text)...)

		start := int(entry.Start)
		fmt.Fprintf(&timestamped, "[%02d:%02d] %s\n", start/60, start%60, text)
	}

	if len(words) == 0 {
		return nil, ErrEmptyTranscript
	}
	if len(words) > maxPlainTextWords {
		words = words[:maxPlainTextWords]
	}

	return &Transcript{
		VideoID:         videoID,
		Language:        language,
		PlainText:       strings.Join(words, " "),
		TimestampedText: timestamped.String(),
	}, nil
}
