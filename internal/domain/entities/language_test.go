package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage_Keywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{"plain keyword", "please summarize in hindi", LanguageHindi},
		{"mixed case", "Reply In TELUGU please", LanguageTelugu},
		{"tamil", "tamil", LanguageTamil},
		{"kannada", "use kannada for this one", LanguageKannada},
		{"marathi", "marathi version", LanguageMarathi},
		{"keyword inside another word", "the hindight of the show", LanguageHindi},
		{"no keyword", "what is this video about", LanguageEnglish},
		{"empty", "", LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestDetectLanguage_FirstMatchInTableOrderWins(t *testing.T) {
	// hindi precedes telugu in the keyword table.
	assert.Equal(t, LanguageHindi, DetectLanguage("telugu or hindi, whichever"))
}
