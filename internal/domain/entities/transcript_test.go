package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTranscript_Forms(t *testing.T) {
	entries := []TranscriptEntry{
		{Text: "hello there", Start: 0.32, Duration: 2.1},
		{Text: "welcome back", Start: 65.9, Duration: 1.8},
		{Text: "to the channel", Start: 754.0, Duration: 2.4},
	}

	transcript, err := BuildTranscript("vid1", "en", entries)
	require.NoError(t, err)

	assert.Equal(t, "hello there welcome back to the channel", transcript.PlainText)
	assert.Equal(t, "[00:00] hello there\n[01:05] welcome back\n[12:34] to the channel\n", transcript.TimestampedText)
	assert.Equal(t, "vid1", transcript.VideoID)
	assert.Equal(t, "en", transcript.Language)
}

func TestBuildTranscript_TruncatesPlainTextAt3000Words(t *testing.T) {
	words := make([]string, 3500)
	for i := range words {
		words[i] = "word"
	}
	entries := []TranscriptEntry{{Text: strings.Join(words, " "), Start: 0}}

	transcript, err := BuildTranscript("vid1", "en", entries)
	require.NoError(t, err)

	assert.Len(t, strings.Fields(transcript.PlainText), 3000)
	// The timestamped form is not truncated at fetch time.
	assert.Len(t, strings.Fields(transcript.TimestampedText), 3501)
}

func TestBuildTranscript_EmptyEntriesIsAnError(t *testing.T) {
	_, err := BuildTranscript("vid1", "en", nil)
	assert.ErrorIs(t, err, ErrEmptyTranscript)

	_, err = BuildTranscript("vid1", "en", []TranscriptEntry{{Text: "   "}})
	assert.ErrorIs(t, err, ErrEmptyTranscript)
}
