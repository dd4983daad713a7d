package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/johnquangdev/yt-research-assistant/internal/domain/entities"
	"github.com/johnquangdev/yt-research-assistant/pkg/config"
)

// Client fetches video transcripts from YouTube. Caption track metadata is
// read from the watch page player response; the selected track's timed-text
// XML is fetched from the URL the track advertises.
type Client struct {
	baseURL string
	client  *http.Client
}

const defaultBaseURL = "https://www.youtube.com"

// Desktop user agent; YouTube serves a captionless page to unknown clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// NewClient creates a transcript client using values from the provided
// config. Pass a nil config to use defaults.
func NewClient(cfg *config.YouTubeConfig) *Client {
	base := defaultBaseURL
	timeout := 15 * time.Second
	if cfg != nil {
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
		if cfg.TimeoutSeconds > 0 {
			timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}
	}
	return &Client{
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
	}
}

// captionTrack is one transcript option from the player response.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated
}

type playerResponse struct {
	Captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// timedText is the transcript XML served by the timedtext endpoint.
type timedText struct {
	XMLName xml.Name   `xml:"transcript"`
	Texts   []textNode `xml:"text"`
}

type textNode struct {
	Start    string `xml:"start,attr"`
	Duration string `xml:"dur,attr"`
	Text     string `xml:",chardata"`
}

// Fetch retrieves the transcript for a video, preferring an English track and
// falling back to the first track the provider lists. Any failure (disabled
// captions, no tracks, transport or parse errors, an empty transcript) is
// reported as entities.ErrTranscriptUnavailable. No partial results.
func (c *Client) Fetch(ctx context.Context, videoID string) (*entities.Transcript, error) {
	page, err := c.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrTranscriptUnavailable, err)
	}

	tracks, err := extractCaptionTracks(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrTranscriptUnavailable, err)
	}

	track := selectTrack(tracks)
	entries, err := c.fetchTrack(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrTranscriptUnavailable, err)
	}

	transcript, err := entities.BuildTranscript(videoID, track.LanguageCode, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrTranscriptUnavailable, err)
	}
	return transcript, nil
}

func (c *Client) fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/watch?v="+videoID, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("watch page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// selectTrack prefers the first English track; otherwise the first track in
// provider order.
func selectTrack(tracks []captionTrack) captionTrack {
	for _, track := range tracks {
		if strings.HasPrefix(track.LanguageCode, "en") {
			return track
		}
	}
	return tracks[0]
}

// extractCaptionTracks parses the ytInitialPlayerResponse JSON embedded in
// the watch page and returns its caption track list.
func extractCaptionTracks(page string) ([]captionTrack, error) {
	const marker = "ytInitialPlayerResponse = "
	start := strings.Index(page, marker)
	if start == -1 {
		return nil, fmt.Errorf("no player response in watch page")
	}
	start += len(marker)

	// Walk the object brace-by-brace to find where the JSON ends.
	depth := 0
	end := start
	for ; end < len(page); end++ {
		switch page[end] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end++
				goto parse
			}
		}
	}
	return nil, fmt.Errorf("malformed player response")

parse:
	var player playerResponse
	if err := json.Unmarshal([]byte(page[start:end]), &player); err != nil {
		return nil, fmt.Errorf("parse player response: %w", err)
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, fmt.Errorf("no caption tracks for video")
	}
	return tracks, nil
}

// fetchTrack downloads and parses one track's timed-text XML.
func (c *Client) fetchTrack(ctx context.Context, trackURL string) ([]entities.TranscriptEntry, error) {
	// Track URLs on the live site are absolute; resolve relative ones
	// against the configured base for completeness.
	if strings.HasPrefix(trackURL, "/") {
		trackURL = c.baseURL + trackURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse transcript XML: %w", err)
	}

	entries := make([]entities.TranscriptEntry, 0, len(tt.Texts))
	for _, node := range tt.Texts {
		start, _ := strconv.ParseFloat(node.Start, 64)
		duration, _ := strconv.ParseFloat(node.Duration, 64)
		entries = append(entries, entities.TranscriptEntry{
			// Caption text carries HTML entities on top of XML escaping.
			Text:     html.UnescapeString(node.Text),
			Start:    start,
			Duration: duration,
		})
	}
	return entries, nil
}
