package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mediastudio-backend/internal/config"
	"mediastudio-backend/pkg/logger"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// Gemini drives the Google GenAI backend: Gemini image models for
// generation/editing, Veo for video, and the TTS preview models for
// speech. Continuation threads live in in-process registries; the opaque
// identifiers handed to callers are only valid for this process lifetime.
type Gemini struct {
	client *genai.Client
	cfg    config.GeminiConfig

	mu     sync.Mutex
	chats  map[string]*genai.Chat
	videos map[string]*genai.Video
}

func NewGemini(ctx context.Context, cfg *config.Config) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{
		client: client,
		cfg:    cfg.Gemini,
		chats:  make(map[string]*genai.Chat),
		videos: make(map[string]*genai.Video),
	}, nil
}

func (g *Gemini) GenerateImage(ctx context.Context, req ImageRequest) (*Result, error) {
	if req.SessionID != "" {
		return g.continueImage(ctx, req)
	}

	model := req.Model
	if model == "" {
		model = g.cfg.ImageModel
	}
	if len(req.Images) > 0 && req.Model == "" {
		model = g.cfg.ImageEditModel
	}

	genCfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}
	if req.AspectRatio != "" {
		genCfg.ImageConfig = &genai.ImageConfig{AspectRatio: req.AspectRatio}
	}

	chat, err := g.client.Chats.Create(ctx, model, genCfg, nil)
	if err != nil {
		return nil, Errorf("failed to open image generation session", err)
	}

	parts := []genai.Part{{Text: req.Prompt}}
	for _, img := range req.Images {
		parts = append(parts, genai.Part{
			InlineData: &genai.Blob{MIMEType: img.MIMEType, Data: img.Data},
		})
	}

	resp, err := chat.SendMessage(ctx, parts...)
	if err != nil {
		return nil, Errorf("image generation failed", err)
	}

	result, err := extractResult(resp)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	g.mu.Lock()
	g.chats[sessionID] = chat
	g.mu.Unlock()
	result.SessionID = sessionID

	return result, nil
}

func (g *Gemini) continueImage(ctx context.Context, req ImageRequest) (*Result, error) {
	g.mu.Lock()
	chat, ok := g.chats[req.SessionID]
	g.mu.Unlock()
	if !ok {
		return nil, &Error{Message: "unknown image session", Detail: req.SessionID}
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: req.Prompt})
	if err != nil {
		return nil, Errorf("image edit failed", err)
	}

	result, err := extractResult(resp)
	if err != nil {
		return nil, err
	}
	result.SessionID = req.SessionID

	return result, nil
}

func (g *Gemini) GenerateVideo(ctx context.Context, req VideoRequest) (*Result, error) {
	var image *genai.Image
	if req.Image != nil {
		image = &genai.Image{ImageBytes: req.Image.Data, MIMEType: req.Image.MIMEType}
	}

	op, err := g.client.Models.GenerateVideos(ctx, g.cfg.VideoModel, req.Prompt, image, &genai.GenerateVideosConfig{
		Resolution:  req.Resolution,
		AspectRatio: req.AspectRatio,
	})
	if err != nil {
		return nil, Errorf("video generation failed", err)
	}

	return g.awaitVideo(ctx, op, req.Resolution)
}

func (g *Gemini) ExtendVideo(ctx context.Context, req VideoRequest) (*Result, error) {
	g.mu.Lock()
	source, ok := g.videos[req.VideoID]
	g.mu.Unlock()
	if !ok {
		return nil, &Error{Message: "unknown video identifier", Detail: req.VideoID}
	}

	op, err := g.client.Models.GenerateVideosFromSource(ctx, g.cfg.VideoModel,
		&genai.GenerateVideosSource{
			Prompt: req.Prompt,
			Video:  source,
		},
		&genai.GenerateVideosConfig{
			Resolution:  req.Resolution,
			AspectRatio: req.AspectRatio,
		})
	if err != nil {
		return nil, Errorf("video extension failed", err)
	}

	return g.awaitVideo(ctx, op, req.Resolution)
}

// awaitVideo polls the long-running operation until the provider reports
// completion, then downloads the produced video. ctx carries the caller's
// deadline; bailing out here leaves no registry entry behind.
func (g *Gemini) awaitVideo(ctx context.Context, op *genai.GenerateVideosOperation, tier string) (*Result, error) {
	poll := g.cfg.PollInterval
	if poll <= 0 {
		poll = 10 * time.Second
	}

	for !op.Done {
		logger.Debug("video generation pending, polling again")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(poll):
		}

		var err error
		op, err = g.client.Operations.GetVideosOperation(ctx, op, nil)
		if err != nil {
			return nil, Errorf("failed to poll video operation", err)
		}
	}

	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return nil, &Error{Message: "video generation returned no video", Detail: fmt.Sprintf("operation %s", op.Name)}
	}

	video := op.Response.GeneratedVideos[0].Video
	data, err := g.client.Files.Download(ctx, video, nil)
	if err != nil {
		return nil, Errorf("failed to download generated video", err)
	}
	if len(data) == 0 {
		data = video.VideoBytes
	}

	videoID := uuid.NewString()
	g.mu.Lock()
	g.videos[videoID] = video
	g.mu.Unlock()

	return &Result{
		Artifact: &Blob{MIMEType: "video/mp4", Data: data},
		VideoID:  videoID,
		Tier:     tier,
	}, nil
}

func (g *Gemini) Synthesize(ctx context.Context, req SpeechRequest) (*Result, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature:        genai.Ptr[float32](1),
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: req.Voice},
			},
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(req.Prompt)}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.TTSModel, contents, genCfg)
	if err != nil {
		return nil, Errorf("speech synthesis failed", err)
	}

	return extractResult(resp)
}

// extractResult pulls the first inline artifact and any text parts out of
// a model response. A response with text but no artifact is a legitimate
// text-only outcome, not an error.
func extractResult(resp *genai.GenerateContentResponse) (*Result, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, &Error{Message: "provider returned an empty response", Detail: fmt.Sprintf("%+v", resp)}
	}

	result := &Result{}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 && result.Artifact == nil {
			result.Artifact = &Blob{
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			}
			continue
		}
		if part.Text != "" {
			result.Text += part.Text
		}
	}

	if result.Artifact == nil && result.Text == "" {
		return nil, &Error{Message: "provider response contained no artifact or text", Detail: fmt.Sprintf("%+v", resp)}
	}

	return result, nil
}
