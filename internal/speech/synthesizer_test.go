package speech

import (
	"testing"

	"google.golang.org/genai"
)

func TestExtractAudio(t *testing.T) {
	if got := extractAudio(nil); got != nil {
		t.Error("nil response should yield no audio")
	}

	empty := &genai.GenerateContentResponse{}
	if got := extractAudio(empty); got != nil {
		t.Error("empty response should yield no audio")
	}

	noData := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "hello"}}}},
		},
	}
	if got := extractAudio(noData); got != nil {
		t.Error("text-only response should yield no audio")
	}

	withData := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "ignored"},
				{InlineData: &genai.Blob{Data: []byte{1, 2, 3, 4}}},
			}}},
		},
	}
	got := extractAudio(withData)
	if len(got) != 4 {
		t.Fatalf("expected 4 audio bytes, got %d", len(got))
	}
}

func TestNoopPlayer(t *testing.T) {
	var p Player = NoopPlayer{}
	if err := p.Play(t.Context(), []byte{1, 2}); err != nil {
		t.Errorf("noop play should never fail: %v", err)
	}
	p.Stop()
}
