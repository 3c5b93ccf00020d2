package artifact

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestParseAudioMIME(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		wantBits int
		wantRate int
	}{
		{name: "full", mimeType: "audio/L16;codec=pcm;rate=24000", wantBits: 16, wantRate: 24000},
		{name: "custom_rate", mimeType: "audio/L16;rate=44100", wantBits: 16, wantRate: 44100},
		{name: "24_bit", mimeType: "audio/L24;rate=48000", wantBits: 24, wantRate: 48000},
		{name: "no_params", mimeType: "audio/pcm", wantBits: 16, wantRate: 24000},
		{name: "malformed_rate", mimeType: "audio/L16;rate=abc", wantBits: 16, wantRate: 24000},
		{name: "spaced_params", mimeType: "audio/L16; rate=16000", wantBits: 16, wantRate: 16000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAudioMIME(tt.mimeType)
			if got.BitsPerSample != tt.wantBits {
				t.Errorf("bits = %d, want %d", got.BitsPerSample, tt.wantBits)
			}
			if got.Rate != tt.wantRate {
				t.Errorf("rate = %d, want %d", got.Rate, tt.wantRate)
			}
		})
	}
}

func TestEncapsulateWAV(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	out := encapsulateWAV(pcm, "audio/L16;rate=24000")

	if len(out) != 44+len(pcm) {
		t.Fatalf("length = %d, want %d", len(out), 44+len(pcm))
	}
	if !bytes.Equal(out[0:4], []byte("RIFF")) {
		t.Errorf("missing RIFF marker: %q", out[0:4])
	}
	if !bytes.Equal(out[8:12], []byte("WAVE")) {
		t.Errorf("missing WAVE marker: %q", out[8:12])
	}
	if got := binary.LittleEndian.Uint32(out[4:8]); got != uint32(36+len(pcm)) {
		t.Errorf("riff size = %d, want %d", got, 36+len(pcm))
	}
	if got := binary.LittleEndian.Uint16(out[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(out[24:28]); got != 24000 {
		t.Errorf("sample rate = %d, want 24000", got)
	}
	if got := binary.LittleEndian.Uint32(out[28:32]); got != 48000 {
		t.Errorf("byte rate = %d, want 48000", got)
	}
	if got := binary.LittleEndian.Uint16(out[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != uint32(len(pcm)) {
		t.Errorf("data size = %d, want %d", got, len(pcm))
	}
	if !bytes.Equal(out[44:], pcm) {
		t.Errorf("payload mismatch: %v", out[44:])
	}
}
