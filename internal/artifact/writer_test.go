package artifact

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediastudio-backend/internal/provider"
)

func TestWriterSaveImage(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	url, err := w.Save(provider.Blob{MIMEType: "image/png", Data: []byte("png-bytes")})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(url, "/outputs/output_") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected reference url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(w.Dir(), filepath.Base(url)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(data, []byte("png-bytes")) {
		t.Fatalf("stored bytes mismatch: %q", data)
	}
}

func TestWriterSaveRawAudioWrapsWAV(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	pcm := []byte{0x10, 0x20, 0x30, 0x40}
	url, err := w.Save(provider.Blob{MIMEType: "audio/L16;rate=24000", Data: pcm})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasSuffix(url, ".wav") {
		t.Fatalf("raw audio should be saved as .wav, got %q", url)
	}

	data, err := os.ReadFile(filepath.Join(w.Dir(), filepath.Base(url)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) != 44+len(pcm) || !bytes.Equal(data[0:4], []byte("RIFF")) {
		t.Fatalf("stored file is not a WAV container: %d bytes, header %q", len(data), data[:4])
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"video/mp4", ".mp4"},
		{"audio/mpeg", ".mp3"},
		{"audio/wav", ".wav"},
		{"image/png; charset=binary", ".png"},
		{"audio/L16;rate=24000", ""},
		{"application/octet-stream", ""},
	}

	for _, tt := range tests {
		if got := extensionFor(tt.mimeType); got != tt.want {
			t.Errorf("extensionFor(%q) = %q, want %q", tt.mimeType, got, tt.want)
		}
	}
}
