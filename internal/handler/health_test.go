package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"mediastudio-backend/internal/config"
	"mediastudio-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func healthRequest(t *testing.T, cfg *config.Config) (*httptest.ResponseRecorder, model.HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", NewHealthHandler(cfg).Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp model.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v (%s)", err, w.Body.String())
	}
	return w, resp
}

func TestHealthOK(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "data.db")
	if err := os.WriteFile(dbPath, nil, 0644); err != nil {
		t.Fatalf("seed db file: %v", err)
	}

	cfg := &config.Config{
		Provider: config.ProviderConfig{Name: "gemini"},
		Gemini:   config.GeminiConfig{APIKey: "key"},
		Storage:  config.StorageConfig{OutputDir: dir, DBPath: dbPath},
	}

	w, resp := healthRequest(t, cfg)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if resp.Status != "ok" || !resp.APIKey || !resp.OutputDir || !resp.PromptStore {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestHealthDegraded(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "data.db")
	if err := os.WriteFile(dbPath, nil, 0644); err != nil {
		t.Fatalf("seed db file: %v", err)
	}

	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{
			name: "missing_api_key",
			cfg: &config.Config{
				Provider: config.ProviderConfig{Name: "gemini"},
				Storage:  config.StorageConfig{OutputDir: dir, DBPath: dbPath},
			},
		},
		{
			name: "missing_output_dir",
			cfg: &config.Config{
				Provider: config.ProviderConfig{Name: "gemini"},
				Gemini:   config.GeminiConfig{APIKey: "key"},
				Storage:  config.StorageConfig{OutputDir: filepath.Join(dir, "nope"), DBPath: dbPath},
			},
		},
		{
			name: "missing_db",
			cfg: &config.Config{
				Provider: config.ProviderConfig{Name: "gemini"},
				Gemini:   config.GeminiConfig{APIKey: "key"},
				Storage:  config.StorageConfig{OutputDir: dir, DBPath: filepath.Join(dir, "nope.db")},
			},
		},
		{
			name: "openai_key_checked_for_openai_provider",
			cfg: &config.Config{
				Provider: config.ProviderConfig{Name: "openai"},
				Gemini:   config.GeminiConfig{APIKey: "wrong-provider-key"},
				Storage:  config.StorageConfig{OutputDir: dir, DBPath: dbPath},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := healthRequest(t, tt.cfg)
			if w.Code != http.StatusServiceUnavailable {
				t.Fatalf("status = %d, want 503", w.Code)
			}
			if resp.Status != "degraded" {
				t.Fatalf("status field = %q, want degraded", resp.Status)
			}
		})
	}
}
