package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestVoicesCatalogue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/voices", Voices)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/voices", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Voices []Voice `json:"voices"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Voices) != 30 {
		t.Fatalf("catalogue has %d voices, want 30", len(resp.Voices))
	}
	if resp.Voices[0].Name != "Zephyr" || resp.Voices[0].Style != "Bright" {
		t.Fatalf("unexpected first voice: %+v", resp.Voices[0])
	}
}
