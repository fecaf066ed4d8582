package stt

import "context"

// Result is a provider-agnostic transcription outcome.
type Result struct {
	Text       string
	Confidence float64
	Provider   string
}

// Provider defines the contract for any speech-to-text backend.
type Provider interface {
	// Transcribe sends raw audio bytes to the backend and returns the
	// transcript. contentType is the MIME type of the upload.
	Transcribe(ctx context.Context, audio []byte, contentType string) (*Result, error)
}
