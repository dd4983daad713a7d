package entities

import "strings"

// Language is the output language for generated responses.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageHindi   Language = "Hindi"
	LanguageTelugu  Language = "Telugu"
	LanguageTamil   Language = "Tamil"
	LanguageKannada Language = "Kannada"
	LanguageMarathi Language = "Marathi"
)

// languageKeyword maps a lowercase keyword to its language. Iteration order is
// fixed: the first keyword found in the text wins.
type languageKeyword struct {
	keyword  string
	language Language
}

var supportedLanguages = []languageKeyword{
	{"hindi", LanguageHindi},
	{"telugu", LanguageTelugu},
	{"tamil", LanguageTamil},
	{"kannada", LanguageKannada},
	{"marathi", LanguageMarathi},
}

// DetectLanguage returns the first supported language whose keyword appears
// anywhere in the text (case-insensitive, substring match, no word-boundary
// checking), or English when none matches.
func DetectLanguage(text string) Language {
	lower := strings.ToLower(text)
	for _, sl := range supportedLanguages {
		if strings.Contains(lower, sl.keyword) {
			return sl.language
		}
	}
	return LanguageEnglish
}
