package model

import "time"

// GenerationResponse mirrors the response shape of the original web API:
// a served artifact reference plus whatever identifiers the provider
// handed back for continuing the generation thread.
type GenerationResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	OutputFile string `json:"output_file,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	VideoID    string `json:"video_id,omitempty"`
	Commentary string `json:"commentary,omitempty"`
}

// ErrorResponse keeps the short user-facing message and the detailed
// diagnostic on separate fields; handlers must never collapse the two.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	APIKey      bool   `json:"api_key_present"`
	OutputDir   bool   `json:"output_dir_exists"`
	PromptStore bool   `json:"prompt_store_exists"`
	Timestamp   int64  `json:"timestamp"`
}

type PromptResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type PromptListResponse struct {
	Prompts []PromptResponse `json:"prompts"`
}
