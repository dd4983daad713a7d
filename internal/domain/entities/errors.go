package entities

import "errors"

// Flow errors surfaced to the user
var (
	ErrInvalidLink           = errors.New("invalid youtube link")
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	ErrEmptyTranscript       = errors.New("transcript is empty")
)

// Generation errors
var (
	ErrGenerationFailed = errors.New("completion generation failed")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
)
