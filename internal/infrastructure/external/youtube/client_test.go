package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/yt-research-assistant/internal/domain/entities"
	"github.com/johnquangdev/yt-research-assistant/pkg/config"
)

// watchPage renders a minimal watch page embedding the given caption tracks.
func watchPage(t *testing.T, tracks []map[string]string) string {
	t.Helper()
	player := map[string]interface{}{
		"captions": map[string]interface{}{
			"playerCaptionsTracklistRenderer": map[string]interface{}{
				"captionTracks": tracks,
			},
		},
	}
	b, err := json.Marshal(player)
	require.NoError(t, err)
	return fmt.Sprintf("<html><script>var ytInitialPlayerResponse = %s;</script></html>", b)
}

const transcriptXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.32" dur="2.1">hello there</text>
  <text start="65.9" dur="1.8">it&amp;#39;s me again</text>
</transcript>`

func newTestClient(ts *httptest.Server) *Client {
	return NewClient(&config.YouTubeConfig{BaseURL: ts.URL, TimeoutSeconds: 5})
}

func TestFetch_PrefersEnglishTrack(t *testing.T) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	defer ts.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage(t, []map[string]string{
			{"baseUrl": ts.URL + "/api/timedtext?lang=de", "languageCode": "de"},
			{"baseUrl": ts.URL + "/api/timedtext?lang=en", "languageCode": "en"},
		}))
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lang") != "en" {
			t.Fatalf("expected the english track to be fetched, got lang=%s", r.URL.Query().Get("lang"))
		}
		fmt.Fprint(w, transcriptXML)
	})

	transcript, err := newTestClient(ts).Fetch(context.Background(), "vid1")
	require.NoError(t, err)

	assert.Equal(t, "en", transcript.Language)
	assert.Equal(t, "hello there it's me again", transcript.PlainText)
	assert.Equal(t, "[00:00] hello there\n[01:05] it's me again\n", transcript.TimestampedText)
}

func TestFetch_FallsBackToFirstTrackInProviderOrder(t *testing.T) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	defer ts.Close()

	var fetchedLang string
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage(t, []map[string]string{
			{"baseUrl": ts.URL + "/api/timedtext?lang=hi", "languageCode": "hi"},
			{"baseUrl": ts.URL + "/api/timedtext?lang=ta", "languageCode": "ta"},
		}))
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		fetchedLang = r.URL.Query().Get("lang")
		fmt.Fprint(w, transcriptXML)
	})

	transcript, err := newTestClient(ts).Fetch(context.Background(), "vid1")
	require.NoError(t, err)
	assert.Equal(t, "hi", fetchedLang)
	assert.Equal(t, "hi", transcript.Language)
}

func TestFetch_NoCaptionTracks(t *testing.T) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	defer ts.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage(t, []map[string]string{}))
	})

	_, err := newTestClient(ts).Fetch(context.Background(), "vid1")
	assert.ErrorIs(t, err, entities.ErrTranscriptUnavailable)
}

func TestFetch_NoPlayerResponse(t *testing.T) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	defer ts.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>nothing useful</html>")
	})

	_, err := newTestClient(ts).Fetch(context.Background(), "vid1")
	assert.ErrorIs(t, err, entities.ErrTranscriptUnavailable)
}

func TestFetch_WatchPageError(t *testing.T) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	defer ts.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := newTestClient(ts).Fetch(context.Background(), "vid1")
	assert.ErrorIs(t, err, entities.ErrTranscriptUnavailable)
}

func TestFetch_EmptyTranscriptIsUnavailable(t *testing.T) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	defer ts.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage(t, []map[string]string{
			{"baseUrl": ts.URL + "/api/timedtext?lang=en", "languageCode": "en"},
		}))
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0" encoding="utf-8"?><transcript></transcript>`)
	})

	_, err := newTestClient(ts).Fetch(context.Background(), "vid1")
	assert.ErrorIs(t, err, entities.ErrTranscriptUnavailable)
}
