// Package provider wraps the external generative-media backends behind a
// single interface so the rest of the service never touches an SDK type.
package provider

import (
	"context"
	"fmt"

	"mediastudio-backend/internal/config"
)

// Blob is a binary artifact or input, paired with its MIME type.
type Blob struct {
	MIMEType string
	Data     []byte
}

// ImageRequest covers both fresh generations and edits. When SessionID is
// set the provider continues the identified generation thread instead of
// starting a new one; Images are only consulted for fresh generations.
type ImageRequest struct {
	Prompt      string
	Model       string
	AspectRatio string
	Images      []Blob
	SessionID   string
}

// VideoRequest covers text-to-video, image-to-video (Image set) and
// extension (VideoID set to a previously returned identifier).
type VideoRequest struct {
	Prompt      string
	Image       *Blob
	Resolution  string
	AspectRatio string
	VideoID     string
}

type SpeechRequest struct {
	Prompt string
	Voice  string
}

// Result is what a provider call produced. Artifact is nil when the
// provider decided a text-only answer was appropriate; Text carries any
// commentary either way.
type Result struct {
	Artifact  *Blob
	Text      string
	SessionID string
	VideoID   string
	Tier      string
}

// Provider is the contract the relay forwards to. Implementations must
// honor ctx cancellation on every call; video calls in particular run for
// minutes and are cut off by the caller's deadline.
type Provider interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*Result, error)
	GenerateVideo(ctx context.Context, req VideoRequest) (*Result, error)
	ExtendVideo(ctx context.Context, req VideoRequest) (*Result, error)
	Synthesize(ctx context.Context, req SpeechRequest) (*Result, error)
}

// New selects the configured backend.
func New(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.Provider.Name {
	case "gemini":
		return NewGemini(ctx, cfg)
	case "openai":
		return NewOpenAI(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider.Name)
	}
}
