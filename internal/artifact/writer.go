// Package artifact persists generated media to the served output
// directory and hands back the reference URL the client downloads from.
package artifact

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"mediastudio-backend/internal/provider"
	"mediastudio-backend/pkg/logger"
)

const publicPrefix = "/outputs"

type Writer struct {
	dir string
}

func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the directory artifacts are written to, for static serving
// and the health check.
func (w *Writer) Dir() string {
	return w.dir
}

// Save writes the artifact as output_<timestamp>.<ext> and returns its
// public download path. Raw PCM audio the provider returns without a
// mappable extension is wrapped into a WAV container first, matching the
// behavior of the speech endpoint's browser clients.
func (w *Writer) Save(blob provider.Blob) (string, error) {
	data := blob.Data
	ext := extensionFor(blob.MIMEType)
	if ext == "" {
		if strings.HasPrefix(blob.MIMEType, "audio/") {
			data = encapsulateWAV(data, blob.MIMEType)
			ext = ".wav"
		} else {
			ext = ".bin"
		}
	}

	name := fmt.Sprintf("output_%s%s", time.Now().Format("20060102-150405"), ext)
	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}

	logger.Infof("artifact saved: %s (%d bytes)", name, len(data))
	return path.Join(publicPrefix, name), nil
}

func extensionFor(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	switch strings.TrimSpace(mimeType) {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "video/mp4":
		return ".mp4"
	case "audio/mpeg":
		return ".mp3"
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/ogg":
		return ".ogg"
	default:
		return ""
	}
}
