// Package drafts exposes the AI-assisted drafting workflows: strategy
// outlines, objection responses, predicate analysis of a stored document, and
// audio transcription. Each call is a stateless proxy to the language model;
// nothing is persisted.
package drafts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"wetheparent-backend/internal/attachments"
	"wetheparent-backend/internal/extract"
	"wetheparent-backend/internal/llm"
)

// Sentinel errors returned by the drafting service.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ProviderError wraps a failure from the model provider so handlers can map
// it to 502 while passing the provider message through.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return e.Err.Error() }
func (e *ProviderError) Unwrap() error { return e.Err }

// maxExtractChars caps how much document text goes into a prompt.
const maxExtractChars = 24000

// Service runs drafting workflows against a completion provider.
type Service struct {
	LLM         llm.Client
	Transcriber llm.Transcriber
	Attachments *attachments.Service
}

// NewService constructs a Service.
func NewService(client llm.Client, transcriber llm.Transcriber, att *attachments.Service) *Service {
	return &Service{LLM: client, Transcriber: transcriber, Attachments: att}
}

// Strategy drafts a case strategy outline from an issue statement and
// optional supporting facts.
func (s *Service) Strategy(ctx context.Context, userID, issue, facts string) (string, error) {
	if userID == "" {
		return "", ErrUnauthenticated
	}
	if strings.TrimSpace(issue) == "" {
		return "", fmt.Errorf("%w: issue is required", ErrInvalidInput)
	}
	return s.complete(ctx, strategyPrompt(issue, facts))
}

// Objection drafts a spoken response to an objection raised in a hearing.
func (s *Service) Objection(ctx context.Context, userID, objection, hearingContext string) (string, error) {
	if userID == "" {
		return "", ErrUnauthenticated
	}
	if strings.TrimSpace(objection) == "" {
		return "", fmt.Errorf("%w: objection is required", ErrInvalidInput)
	}
	return s.complete(ctx, objectionPrompt(objection, hearingContext))
}

// PredicateAnalysis loads a stored attachment, extracts its text, and asks
// the model for the predicate questions needed to admit it.
func (s *Service) PredicateAnalysis(ctx context.Context, userID, attachmentID string) (string, error) {
	if userID == "" {
		return "", ErrUnauthenticated
	}

	att, body, err := s.Attachments.OpenBlob(ctx, userID, attachmentID)
	if err != nil {
		return "", err
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read attachment %s: %w", attachmentID, err)
	}

	text, err := extract.TextFromBytes(ctx, raw, att.MimeType, att.FileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: document contains no extractable text", ErrInvalidInput)
	}
	if len(text) > maxExtractChars {
		text = text[:maxExtractChars]
	}

	return s.complete(ctx, predicatePrompt(att.FileName, text))
}

// Transcribe forwards an audio payload to the provider's transcription
// endpoint and returns the text.
func (s *Service) Transcribe(ctx context.Context, userID, fileName string, r io.Reader) (string, error) {
	if userID == "" {
		return "", ErrUnauthenticated
	}
	if fileName == "" || r == nil {
		return "", fmt.Errorf("%w: no file selected", ErrInvalidInput)
	}
	out, err := s.Transcriber.Transcribe(ctx, fileName, r)
	if err != nil {
		return "", &ProviderError{Err: err}
	}
	return out, nil
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	out, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		return "", &ProviderError{Err: err}
	}
	return out, nil
}
