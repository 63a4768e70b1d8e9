package entities

import "errors"

// Domain errors
var (
	// Meeting errors
	ErrMeetingNotFound = errors.New("meeting not found")

	// Summarization errors
	ErrMissingAPIKey      = errors.New("api key required")
	ErrMissingTranscript  = errors.New("meeting text required")
	ErrEmptyModelResponse = errors.New("empty response from model")

	// Generic errors
	ErrInvalidRequest = errors.New("invalid request")
)
