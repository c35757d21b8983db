package intelligence

import (
	"context"
	"errors"

	"legalassist/models"
)

// ErrUnavailable is returned when no text generation backend is configured.
var ErrUnavailable = errors.New("text generation is not configured")

// GenerationRequest is one stateless call: instruction, prior turns, then the new message.
type GenerationRequest struct {
	SystemInstruction string
	History           []models.ChatMessage
	Message           string
	// JSON asks the backend for a single JSON object.
	JSON bool
}

// Generator produces a reply for a request. Implementations must be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// UnavailableGenerator always fails, which drives callers onto their fallback replies.
type UnavailableGenerator struct{}

func (UnavailableGenerator) Generate(context.Context, GenerationRequest) (string, error) {
	return "", ErrUnavailable
}
