package drafts

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wetheparent-backend/internal/attachments"
)

type fakeLLM struct {
	lastPrompt string
	reply      string
	err        error
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeTranscriber struct {
	lastFile string
	reply    string
	err      error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, fileName string, r io.Reader) (string, error) {
	f.lastFile = fileName
	_, _ = io.Copy(io.Discard, r)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// memStore serves blobs seeded by tests.
type memStore struct {
	blobs map[string][]byte
}

func (m *memStore) Save(ctx context.Context, storageKey string, r io.Reader) (int64, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, "", err
	}
	if m.blobs == nil {
		m.blobs = map[string][]byte{}
	}
	m.blobs[storageKey] = data
	return int64(len(data)), "text/plain", nil
}

func (m *memStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	data, ok := m.blobs[storageKey]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (m *memStore) PublicURL(storageKey string) string {
	return "http://localhost:8080/files/" + storageKey
}

func newTestService(t *testing.T, client *fakeLLM, transcriber *fakeTranscriber) (*Service, *attachments.Service) {
	t.Helper()
	att := &attachments.Service{
		Store: &memStore{},
		Repo:  attachments.NewMemoryRepo(),
	}
	return NewService(client, transcriber, att), att
}

func TestStrategyFormatsPromptAndReturnsDraft(t *testing.T) {
	client := &fakeLLM{reply: "1. Request an evidentiary hearing."}
	svc, _ := newTestService(t, client, &fakeTranscriber{})

	draft, err := svc.Strategy(context.Background(), "user-1", "reunification delayed", "case plan tasks complete")
	require.NoError(t, err)
	assert.Equal(t, "1. Request an evidentiary hearing.", draft)
	assert.Contains(t, client.lastPrompt, "reunification delayed")
	assert.Contains(t, client.lastPrompt, "case plan tasks complete")
	assert.Contains(t, client.lastPrompt, "not legal advice")
}

func TestStrategyRequiresIssue(t *testing.T) {
	svc, _ := newTestService(t, &fakeLLM{}, &fakeTranscriber{})

	_, err := svc.Strategy(context.Background(), "user-1", "   ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStrategyRequiresPrincipal(t *testing.T) {
	client := &fakeLLM{}
	svc, _ := newTestService(t, client, &fakeTranscriber{})

	_, err := svc.Strategy(context.Background(), "", "issue", "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, client.lastPrompt, "provider must not be called without a principal")
}

func TestObjectionWrapsProviderFailure(t *testing.T) {
	client := &fakeLLM{err: errors.New("model overloaded")}
	svc, _ := newTestService(t, client, &fakeTranscriber{})

	_, err := svc.Objection(context.Background(), "user-1", "hearsay", "")
	var provider *ProviderError
	require.ErrorAs(t, err, &provider)
	assert.EqualError(t, provider, "model overloaded")
}

func TestPredicateAnalysisFeedsExtractedText(t *testing.T) {
	client := &fakeLLM{reply: "Q1: Do you recognize this document?"}
	svc, att := newTestService(t, client, &fakeTranscriber{})

	stored, err := att.Ingest(context.Background(), "user-1", "case-1",
		attachments.KindDocument, "shelter-order.txt", 12,
		strings.NewReader("shelter order entered 2026-01-05"))
	require.NoError(t, err)

	analysis, err := svc.PredicateAnalysis(context.Background(), "user-1", stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q1: Do you recognize this document?", analysis)
	assert.Contains(t, client.lastPrompt, "shelter order entered 2026-01-05")
	assert.Contains(t, client.lastPrompt, "shelter-order.txt")
}

func TestPredicateAnalysisUnknownAttachment(t *testing.T) {
	svc, _ := newTestService(t, &fakeLLM{}, &fakeTranscriber{})

	_, err := svc.PredicateAnalysis(context.Background(), "user-1", "missing-id")
	assert.ErrorIs(t, err, attachments.ErrNotFound)
}

func TestTranscribeForwardsAudio(t *testing.T) {
	transcriber := &fakeTranscriber{reply: "the hearing is continued to March"}
	svc, _ := newTestService(t, &fakeLLM{}, transcriber)

	text, err := svc.Transcribe(context.Background(), "user-1", "hearing.mp3", strings.NewReader("audio-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "the hearing is continued to March", text)
	assert.Equal(t, "hearing.mp3", transcriber.lastFile)
}

func TestTranscribeWrapsProviderFailure(t *testing.T) {
	transcriber := &fakeTranscriber{err: errors.New("whisper unavailable")}
	svc, _ := newTestService(t, &fakeLLM{}, transcriber)

	_, err := svc.Transcribe(context.Background(), "user-1", "hearing.mp3", strings.NewReader("audio"))
	var provider *ProviderError
	require.ErrorAs(t, err, &provider)
	assert.EqualError(t, provider, "whisper unavailable")
}
