package youtube

import (
	"net/url"
	"strings"
)

// ExtractVideoID pulls the video identifier out of a YouTube URL. For
// youtu.be links it is the path segment after the last slash; for youtube.com
// links it is the v query parameter. Any other shape or parse failure returns
// ok=false, never an error.
func ExtractVideoID(rawURL string) (string, bool) {
	switch {
	case strings.Contains(rawURL, "youtu.be"):
		id := rawURL[strings.LastIndex(rawURL, "/")+1:]
		if id == "" {
			return "", false
		}
		return id, true

	case strings.Contains(rawURL, "youtube.com"):
		parsed, err := url.Parse(rawURL)
		if err != nil {
			return "", false
		}
		id := parsed.Query().Get("v")
		if id == "" {
			return "", false
		}
		return id, true

	default:
		return "", false
	}
}
