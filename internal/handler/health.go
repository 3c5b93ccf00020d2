package handler

import (
	"net/http"
	"os"
	"time"

	"mediastudio-backend/internal/config"
	"mediastudio-backend/internal/model"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health reports whether the service can actually do work: provider
// credential present, output directory in place, prompt store reachable.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := model.HealthResponse{
		APIKey:      h.apiKeyPresent(),
		OutputDir:   exists(h.cfg.Storage.OutputDir),
		PromptStore: exists(h.cfg.Storage.DBPath),
		Timestamp:   time.Now().Unix(),
	}

	status := http.StatusOK
	resp.Status = "ok"
	if !resp.APIKey || !resp.OutputDir || !resp.PromptStore {
		status = http.StatusServiceUnavailable
		resp.Status = "degraded"
	}

	c.JSON(status, resp)
}

func (h *HealthHandler) apiKeyPresent() bool {
	switch h.cfg.Provider.Name {
	case "openai":
		return h.cfg.OpenAI.APIKey != ""
	default:
		return h.cfg.Gemini.APIKey != ""
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
