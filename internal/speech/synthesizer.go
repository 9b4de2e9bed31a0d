// Package speech turns word text into playable pronunciation audio.
// Gemini TTS returns raw 16-bit little-endian PCM at 24 kHz; this
// package decodes it, wraps it as WAV, and plays it through a platform
// audio command. Failures here never surface as errors to the drill
// flow: no audio just means the speaker button does nothing.
package speech

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"vocadrill/internal/llm"
	"vocadrill/internal/store"
)

// SampleRate is the PCM sample rate Gemini TTS produces.
const SampleRate = 24000

// DefaultTTSModel is the Gemini text-to-speech model.
const DefaultTTSModel = "gemini-2.5-flash-preview-tts"

// DefaultVoice is the prebuilt voice used for pronunciation.
const DefaultVoice = "Kore"

// Synthesizer produces pronunciation audio for a word.
type Synthesizer interface {
	// Pronounce returns raw PCM audio for the given text, or an error
	// when synthesis is unavailable or fails.
	Pronounce(ctx context.Context, text string) ([]byte, error)
}

// GeminiSynthesizer implements Synthesizer using Gemini TTS.
type GeminiSynthesizer struct {
	client *genai.Client
	model  string
	voice  string
	events store.EventRepo
}

// NewGeminiSynthesizer creates a synthesizer on an existing genai
// client. The event repo may be nil; synthesis then goes unlogged.
func NewGeminiSynthesizer(client *genai.Client, events store.EventRepo) *GeminiSynthesizer {
	return &GeminiSynthesizer{
		client: client,
		model:  DefaultTTSModel,
		voice:  DefaultVoice,
		events: events,
	}
}

func (s *GeminiSynthesizer) Pronounce(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: text}}},
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	pcm := extractAudio(result)
	if err == nil && len(pcm) == 0 {
		err = fmt.Errorf("no audio data in TTS response")
	}

	s.logEvent(ctx, text, len(pcm), time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("synthesize %q: %w", text, err)
	}
	return ClampPCM(pcm), nil
}

// extractAudio pulls the inline PCM bytes out of a TTS response.
func extractAudio(result *genai.GenerateContentResponse) []byte {
	if result == nil {
		return nil
	}
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}

func (s *GeminiSynthesizer) logEvent(ctx context.Context, text string, audioBytes int, latency time.Duration, err error) {
	if s.events == nil {
		return
	}
	data := store.LLMRequestEventData{
		Provider:     "gemini",
		Model:        s.model,
		Purpose:      llm.PurposePronunciation,
		LatencyMs:    latency.Milliseconds(),
		Success:      err == nil,
		RequestBody:  text,
		ResponseBody: fmt.Sprintf("(%d bytes of audio)", audioBytes),
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	// Best effort; pronunciation must not fail on logging problems.
	_ = s.events.AppendLLMRequest(ctx, data)
}
