package provider

import (
	"context"
	"encoding/base64"
	"io"
	"strings"

	"mediastudio-backend/internal/config"
	"mediastudio-backend/internal/utils"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI is the alternate backend. It covers single-shot image generation
// and speech; multi-turn image sessions and every video operation return
// ErrUnsupported so the caller can tell the user rather than guess.
type OpenAI struct {
	client *openai.Client
	cfg    config.OpenAIConfig
}

func NewOpenAI(cfg *config.Config) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}
	clientCfg.HTTPClient = utils.NewHTTPClient(cfg.OpenAI.Timeout)

	return &OpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg.OpenAI,
	}
}

func (o *OpenAI) GenerateImage(ctx context.Context, req ImageRequest) (*Result, error) {
	if req.SessionID != "" || len(req.Images) > 0 {
		return nil, &Error{
			Message: "multi-turn image editing requires the gemini provider",
			Cause:   ErrUnsupported,
		}
	}

	model := req.Model
	if model == "" {
		model = o.cfg.ImageModel
	}

	resp, err := o.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          model,
		N:              1,
		Size:           sizeForAspect(req.AspectRatio),
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, Errorf("image generation failed", err)
	}
	if len(resp.Data) == 0 {
		return nil, &Error{Message: "provider returned no image"}
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, Errorf("failed to decode image payload", err)
	}

	return &Result{
		Artifact: &Blob{MIMEType: "image/png", Data: data},
		Text:     resp.Data[0].RevisedPrompt,
	}, nil
}

func (o *OpenAI) GenerateVideo(ctx context.Context, req VideoRequest) (*Result, error) {
	return nil, &Error{
		Message: "video generation requires the gemini provider",
		Cause:   ErrUnsupported,
	}
}

func (o *OpenAI) ExtendVideo(ctx context.Context, req VideoRequest) (*Result, error) {
	return nil, &Error{
		Message: "video extension requires the gemini provider",
		Cause:   ErrUnsupported,
	}
}

func (o *OpenAI) Synthesize(ctx context.Context, req SpeechRequest) (*Result, error) {
	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(o.cfg.TTSModel),
		Input: req.Prompt,
		Voice: openai.SpeechVoice(strings.ToLower(req.Voice)),
	})
	if err != nil {
		return nil, Errorf("speech synthesis failed", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, Errorf("failed to read audio payload", err)
	}

	return &Result{
		Artifact: &Blob{MIMEType: "audio/mpeg", Data: data},
	}, nil
}

// sizeForAspect maps the portrait/landscape ratios the UI offers onto the
// sizes the image endpoint accepts.
func sizeForAspect(aspect string) string {
	switch aspect {
	case "9:16", "2:3", "3:4":
		return openai.CreateImageSize1024x1792
	case "16:9", "3:2", "4:3", "21:9":
		return openai.CreateImageSize1792x1024
	default:
		return openai.CreateImageSize1024x1024
	}
}
