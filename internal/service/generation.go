// Package service validates generation requests, consults the
// continuation tracker, and relays the work to the configured provider.
package service

import (
	"context"
	"errors"
	"strings"

	"mediastudio-backend/internal/artifact"
	"mediastudio-backend/internal/config"
	"mediastudio-backend/internal/model"
	"mediastudio-backend/internal/provider"
	"mediastudio-backend/internal/session"
	"mediastudio-backend/pkg/logger"
)

type GenerationService struct {
	provider provider.Provider
	writer   *artifact.Writer
	sessions *session.Store
	cfg      *config.Config
}

func NewGenerationService(p provider.Provider, w *artifact.Writer, sessions *session.Store, cfg *config.Config) *GenerationService {
	return &GenerationService{
		provider: p,
		writer:   w,
		sessions: sessions,
		cfg:      cfg,
	}
}

// Generate runs one request end to end: validate, decide NEW/CONTINUE,
// call the provider, persist the artifact, record the new continuation
// token. Provider failures and timeouts leave the tracker untouched.
func (s *GenerationService) Generate(ctx context.Context, req *model.GenerationRequest) (*model.GenerationResponse, error) {
	s.applyDefaults(req)

	family := familyOf(req.Operation)
	decision := s.sessions.Decide(req.BrowseSession, family, req.IsNew)

	if err := s.validate(req, decision); err != nil {
		return nil, err
	}

	var (
		result *provider.Result
		err    error
	)

	switch req.Operation {
	case model.OpTextToImage, model.OpImageToImage:
		result, err = s.generateImage(ctx, req, decision)
	case model.OpTextToVideo, model.OpImageToVideo:
		result, err = s.generateVideo(ctx, req)
	case model.OpExtendVideo:
		result, err = s.extendVideo(ctx, req)
	case model.OpTextToSpeech:
		result, err = s.provider.Synthesize(ctx, provider.SpeechRequest{
			Prompt: req.Prompt,
			Voice:  req.Voice,
		})
	default:
		return nil, validationErrorf("unknown operation: %s", req.Operation)
	}

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warnf("%s timed out for session %s", req.Operation, req.BrowseSession)
			return nil, &TimeoutError{Operation: req.Operation}
		}
		return nil, err
	}

	resp := &model.GenerationResponse{
		Status:     "success",
		Message:    messageFor(req.Operation, result),
		Commentary: result.Text,
		VideoID:    result.VideoID,
	}

	if result.Artifact != nil {
		outputFile, err := s.writer.Save(*result.Artifact)
		if err != nil {
			return nil, err
		}
		resp.OutputFile = outputFile
	}

	// The client-facing session id is the browse-session key; the
	// provider's continuation token never leaves the tracker.
	switch family {
	case session.FamilyImage:
		if result.SessionID != "" {
			s.sessions.Observe(req.BrowseSession, session.FamilyImage, result.SessionID, "")
			resp.SessionID = req.BrowseSession
		}
	case session.FamilyVideo:
		if result.VideoID != "" {
			s.sessions.Observe(req.BrowseSession, session.FamilyVideo, result.VideoID, result.Tier)
			resp.SessionID = req.BrowseSession
		}
	}

	return resp, nil
}

// Reset drops the continuation state of a browse session.
func (s *GenerationService) Reset(browseSession string) {
	s.sessions.Reset(browseSession)
}

func (s *GenerationService) applyDefaults(req *model.GenerationRequest) {
	gen := s.cfg.Generation
	if req.AspectRatio == "" {
		req.AspectRatio = gen.AspectRatio
	}
	if req.Resolution == "" {
		req.Resolution = gen.Resolution
	}
	if req.Voice == "" {
		req.Voice = gen.Voice
	}
}

// validate applies every input constraint that must be checked before the
// provider is contacted. Requests with too many files are rejected
// outright rather than silently truncated.
func (s *GenerationService) validate(req *model.GenerationRequest, decision session.Decision) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return &ValidationError{Reason: "prompt is required"}
	}

	switch req.Operation {
	case model.OpImageToVideo:
		if len(req.Files) == 0 {
			return &ValidationError{Reason: "image-to-video requires at least one input file"}
		}
	case model.OpImageToImage:
		if decision.Mode == session.ModeNew && len(req.Files) == 0 {
			return &ValidationError{Reason: "image-to-image requires an input file when starting a new generation"}
		}
	case model.OpTextToVideo, model.OpTextToSpeech, model.OpTextToImage:
		if len(req.Files) > 0 {
			return validationErrorf("%s does not accept input files", req.Operation)
		}
	case model.OpExtendVideo:
		state := s.sessions.Get(req.BrowseSession)
		if state.Kind != session.KindVideo {
			return &ValidationError{Reason: "no video available to extend in this session"}
		}
		if req.VideoID != "" && req.VideoID != state.Token {
			return validationErrorf("video %s is not the most recent video of this session", req.VideoID)
		}
		if !state.Extendable(req.VideoID) {
			return validationErrorf("only %s videos can be extended; %s output is final", model.Resolution720p, state.Tier)
		}
		if len(req.Files) > 1 {
			return &ValidationError{Reason: "extend-video accepts at most one input file"}
		}
	}

	if max := s.maxInputFiles(req); len(req.Files) > max {
		return validationErrorf("too many input files: %d (maximum %d)", len(req.Files), max)
	}

	return nil
}

func (s *GenerationService) maxInputFiles(req *model.GenerationRequest) int {
	gen := s.cfg.Generation
	if req.Operation == model.OpImageToImage && req.Model != "" && req.Model == s.cfg.Gemini.ProImageModel {
		return gen.ProMaxInputFiles
	}
	return gen.MaxInputFiles
}

func (s *GenerationService) generateImage(ctx context.Context, req *model.GenerationRequest, decision session.Decision) (*provider.Result, error) {
	preq := provider.ImageRequest{
		Prompt:      req.Prompt,
		Model:       req.Model,
		AspectRatio: req.AspectRatio,
	}
	if decision.Mode == session.ModeContinue {
		preq.SessionID = decision.Token
	} else {
		for _, f := range req.Files {
			preq.Images = append(preq.Images, provider.Blob{MIMEType: f.MIMEType, Data: f.Data})
		}
	}

	return s.provider.GenerateImage(ctx, preq)
}

func (s *GenerationService) generateVideo(ctx context.Context, req *model.GenerationRequest) (*provider.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Generation.VideoTimeout)
	defer cancel()

	preq := provider.VideoRequest{
		Prompt:      req.Prompt,
		Resolution:  req.Resolution,
		AspectRatio: req.AspectRatio,
	}
	if len(req.Files) > 0 {
		preq.Image = &provider.Blob{MIMEType: req.Files[0].MIMEType, Data: req.Files[0].Data}
	}

	return s.provider.GenerateVideo(ctx, preq)
}

func (s *GenerationService) extendVideo(ctx context.Context, req *model.GenerationRequest) (*provider.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Generation.VideoTimeout)
	defer cancel()

	videoID := req.VideoID
	if videoID == "" {
		videoID = s.sessions.Get(req.BrowseSession).Token
	}

	return s.provider.ExtendVideo(ctx, provider.VideoRequest{
		Prompt:      req.Prompt,
		Resolution:  req.Resolution,
		AspectRatio: req.AspectRatio,
		VideoID:     videoID,
	})
}

func familyOf(op model.Operation) session.Family {
	switch op {
	case model.OpTextToImage, model.OpImageToImage:
		return session.FamilyImage
	case model.OpTextToVideo, model.OpImageToVideo, model.OpExtendVideo:
		return session.FamilyVideo
	default:
		return session.FamilyNone
	}
}

func messageFor(op model.Operation, result *provider.Result) string {
	if result.Artifact == nil {
		return "the model answered with text only"
	}
	switch op {
	case model.OpTextToImage, model.OpImageToImage:
		return "image generated"
	case model.OpTextToVideo, model.OpImageToVideo:
		return "video generated"
	case model.OpExtendVideo:
		return "video extended"
	case model.OpTextToSpeech:
		return "speech generated"
	default:
		return "generation complete"
	}
}
