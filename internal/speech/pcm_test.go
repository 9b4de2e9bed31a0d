package speech

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"testing"
)

func TestClampPCM(t *testing.T) {
	even := []byte{1, 2, 3, 4}
	if got := ClampPCM(even); len(got) != 4 {
		t.Errorf("even buffer should be untouched, got %d bytes", len(got))
	}

	odd := []byte{1, 2, 3, 4, 5}
	got := ClampPCM(odd)
	if len(got) != 4 {
		t.Fatalf("odd buffer should lose the trailing byte, got %d bytes", len(got))
	}
	if !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("unexpected clamped bytes: %v", got)
	}

	if got := ClampPCM(nil); len(got) != 0 {
		t.Errorf("nil buffer should stay empty, got %d bytes", len(got))
	}
}

func TestDecodeBase64PCM(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
	got, err := DecodeBase64PCM(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("decoded payload should be clamped to 2 bytes, got %d", len(got))
	}

	if _, err := DecodeBase64PCM("%%%not-base64%%%"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestWrapWAV(t *testing.T) {
	pcm := []byte{10, 20, 30, 40}
	wav := WrapWAV(pcm, SampleRate)

	if len(wav) != 44+len(pcm) {
		t.Fatalf("expected 44-byte header plus payload, got %d bytes", len(wav))
	}

	le := binary.LittleEndian
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}
	if le.Uint32(wav[4:8]) != uint32(36+len(pcm)) {
		t.Errorf("wrong RIFF chunk size: %d", le.Uint32(wav[4:8]))
	}
	if string(wav[12:16]) != "fmt " {
		t.Error("missing fmt chunk")
	}
	if le.Uint16(wav[20:22]) != 1 {
		t.Error("audio format should be PCM")
	}
	if le.Uint16(wav[22:24]) != 1 {
		t.Error("channel count should be mono")
	}
	if le.Uint32(wav[24:28]) != SampleRate {
		t.Errorf("wrong sample rate: %d", le.Uint32(wav[24:28]))
	}
	if le.Uint32(wav[28:32]) != SampleRate*2 {
		t.Errorf("wrong byte rate: %d", le.Uint32(wav[28:32]))
	}
	if le.Uint16(wav[32:34]) != 2 {
		t.Errorf("wrong block align: %d", le.Uint16(wav[32:34]))
	}
	if le.Uint16(wav[34:36]) != 16 {
		t.Errorf("wrong bits per sample: %d", le.Uint16(wav[34:36]))
	}
	if string(wav[36:40]) != "data" {
		t.Error("missing data chunk")
	}
	if le.Uint32(wav[40:44]) != uint32(len(pcm)) {
		t.Errorf("wrong data size: %d", le.Uint32(wav[40:44]))
	}
	if !bytes.Equal(wav[44:], pcm) {
		t.Error("payload bytes do not match input")
	}
}
