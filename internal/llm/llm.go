package llm

import (
	"context"
	"errors"
	"io"
)

// Client generates text completions from prompts.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Transcriber converts an audio payload to text.
type Transcriber interface {
	Transcribe(ctx context.Context, fileName string, r io.Reader) (string, error)
}

// PlaceholderClient fails every call; used when no provider is configured.
type PlaceholderClient struct{}

func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", errors.New("llm client not configured")
}

func (PlaceholderClient) Transcribe(ctx context.Context, fileName string, r io.Reader) (string, error) {
	_ = ctx
	_ = fileName
	_ = r
	return "", errors.New("llm client not configured")
}
