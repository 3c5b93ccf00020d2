package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"mediastudio-backend/internal/model"
	"mediastudio-backend/internal/provider"
	"mediastudio-backend/internal/service"
	"mediastudio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GenerationHandler struct {
	service *service.GenerationService
}

func NewGenerationHandler(svc *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{service: svc}
}

func (h *GenerationHandler) TextToImage(c *gin.Context)  { h.generate(c, model.OpTextToImage) }
func (h *GenerationHandler) ImageToImage(c *gin.Context) { h.generate(c, model.OpImageToImage) }
func (h *GenerationHandler) TextToVideo(c *gin.Context)  { h.generate(c, model.OpTextToVideo) }
func (h *GenerationHandler) ImageToVideo(c *gin.Context) { h.generate(c, model.OpImageToVideo) }
func (h *GenerationHandler) ExtendVideo(c *gin.Context)  { h.generate(c, model.OpExtendVideo) }
func (h *GenerationHandler) TextToSpeech(c *gin.Context) { h.generate(c, model.OpTextToSpeech) }

// ResetSession drops the continuation state of the given browse session,
// forcing the next generation to start fresh.
func (h *GenerationHandler) ResetSession(c *gin.Context) {
	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_error",
			Message: "session_id is required",
		})
		return
	}

	h.service.Reset(sessionID)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "session reset"})
}

func (h *GenerationHandler) generate(c *gin.Context, op model.Operation) {
	req, err := parseGenerationRequest(c, op)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_request",
			Message: "could not parse request form",
			Detail:  err.Error(),
		})
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		writeGenerationError(c, op, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// parseGenerationRequest reads the multipart form shared by all
// generation endpoints. Uploads may arrive under "files" or, for clients
// of the original single-file API, under "file".
func parseGenerationRequest(c *gin.Context, op model.Operation) (*model.GenerationRequest, error) {
	req := &model.GenerationRequest{
		Operation:     op,
		Prompt:        c.PostForm("prompt"),
		Model:         c.PostForm("model"),
		AspectRatio:   c.PostForm("aspect_ratio"),
		Resolution:    c.PostForm("resolution"),
		Voice:         c.PostForm("voice"),
		VideoID:       c.PostForm("video_id"),
		BrowseSession: c.PostForm("session_id"),
	}

	if v := c.PostForm("is_new"); v != "" {
		isNew, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IsNew = isNew
	}

	if req.BrowseSession == "" {
		req.BrowseSession = uuid.NewString()
	}

	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return req, nil
		}
		return nil, err
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["file"]
	}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		mimeType := fh.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = http.DetectContentType(data)
		}

		req.Files = append(req.Files, model.InputFile{
			Name:     fh.Filename,
			MIMEType: mimeType,
			Data:     data,
		})
	}

	return req, nil
}

func writeGenerationError(c *gin.Context, op model.Operation, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_error",
			Message: vErr.Reason,
		})
		return
	}

	var tErr *service.TimeoutError
	if errors.As(err, &tErr) {
		c.JSON(http.StatusGatewayTimeout, model.ErrorResponse{
			Error:   "timeout",
			Message: tErr.Error(),
			Detail:  "the provider did not finish in time; the request can be resubmitted",
		})
		return
	}

	var pErr *provider.Error
	if errors.As(err, &pErr) {
		c.JSON(http.StatusBadGateway, model.ErrorResponse{
			Error:   "provider_error",
			Message: pErr.Message,
			Detail:  pErr.Detail,
		})
		return
	}

	logger.Errorf("%s failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{
		Error:   "internal_error",
		Message: "generation failed",
		Detail:  err.Error(),
	})
}
