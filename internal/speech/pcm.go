package speech

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// ClampPCM drops a trailing odd byte so the buffer holds whole 16-bit
// samples. TTS payloads occasionally arrive with an odd length.
func ClampPCM(pcm []byte) []byte {
	if len(pcm)%2 != 0 {
		return pcm[:len(pcm)-1]
	}
	return pcm
}

// DecodeBase64PCM decodes a base64 PCM payload and clamps it to an
// even sample boundary.
func DecodeBase64PCM(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode PCM payload: %w", err)
	}
	return ClampPCM(raw), nil
}

// WrapWAV wraps raw 16-bit little-endian mono PCM in a RIFF/WAV
// container so platform audio players can handle it.
func WrapWAV(pcm []byte, sampleRate int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buf := make([]byte, 0, 44+len(pcm))
	le := binary.LittleEndian

	u32 := func(v uint32) []byte {
		b := make([]byte, 4)
		le.PutUint32(b, v)
		return b
	}
	u16 := func(v uint16) []byte {
		b := make([]byte, 2)
		le.PutUint16(b, v)
		return b
	}

	buf = append(buf, []byte("RIFF")...)
	buf = append(buf, u32(uint32(36+len(pcm)))...)
	buf = append(buf, []byte("WAVE")...)

	buf = append(buf, []byte("fmt ")...)
	buf = append(buf, u32(16)...) // fmt chunk size
	buf = append(buf, u16(1)...)  // PCM format
	buf = append(buf, u16(channels)...)
	buf = append(buf, u32(uint32(sampleRate))...)
	buf = append(buf, u32(uint32(byteRate))...)
	buf = append(buf, u16(uint16(blockAlign))...)
	buf = append(buf, u16(bitsPerSample)...)

	buf = append(buf, []byte("data")...)
	buf = append(buf, u32(uint32(len(pcm)))...)
	buf = append(buf, pcm...)

	return buf
}
