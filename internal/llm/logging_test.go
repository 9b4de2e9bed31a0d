package llm

import (
	"context"
	"encoding/json"
	"testing"

	"vocadrill/internal/store"
)

// fakeEventRepo records appended LLM events.
type fakeEventRepo struct {
	llmEvents []store.LLMRequestEventData
}

func (f *fakeEventRepo) AppendSessionEvent(context.Context, store.SessionEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.llmEvents = append(f.llmEvents, data)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func TestLoggingProvider_AppendsEvent(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"words":[]}`), Usage: Usage{InputTokens: 7, OutputTokens: 3}},
	)

	p := WithLogging(mock, repo)
	ctx := WithPurpose(context.Background(), PurposeWordGen)

	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.llmEvents) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.llmEvents))
	}
	e := repo.llmEvents[0]
	if e.Purpose != PurposeWordGen {
		t.Errorf("purpose = %q, want %q", e.Purpose, PurposeWordGen)
	}
	if e.InputTokens != 7 || e.OutputTokens != 3 {
		t.Errorf("tokens = %d/%d, want 7/3", e.InputTokens, e.OutputTokens)
	}
	if !e.Success {
		t.Error("expected success=true")
	}
}

func TestLoggingProvider_NilRepoSkipsLogging(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"words":[]}`)},
	)

	p := WithLogging(mock, nil)

	resp, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"words":[]}` {
		t.Fatalf("response content = %s", resp.Content)
	}
}
