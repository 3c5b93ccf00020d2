package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mediastudio-backend/internal/model"
	"mediastudio-backend/internal/store"
	"mediastudio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PromptHandler struct {
	store *store.PromptStore
}

func NewPromptHandler(s *store.PromptStore) *PromptHandler {
	return &PromptHandler{store: s}
}

func (h *PromptHandler) List(c *gin.Context) {
	prompts, err := h.store.List()
	if err != nil {
		writeStoreError(c, err)
		return
	}

	resp := model.PromptListResponse{Prompts: make([]model.PromptResponse, 0, len(prompts))}
	for _, p := range prompts {
		resp.Prompts = append(resp.Prompts, model.PromptResponse{
			ID:        p.ID,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PromptHandler) Create(c *gin.Context) {
	var req model.PromptCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_error",
			Message: "content is required",
		})
		return
	}

	prompt, err := h.store.Create(req.Content)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "prompt saved",
		"id":      prompt.ID,
	})
}

func (h *PromptHandler) Update(c *gin.Context) {
	id, err := parsePromptID(c)
	if err != nil {
		return
	}

	var req model.PromptUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_error",
			Message: "content is required",
		})
		return
	}

	if _, err := h.store.Update(id, req.Content); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "prompt updated"})
}

func (h *PromptHandler) Delete(c *gin.Context) {
	id, err := parsePromptID(c)
	if err != nil {
		return
	}

	if err := h.store.Delete(id); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "prompt deleted"})
}

func parsePromptID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_error",
			Message: "invalid prompt id",
		})
		return 0, err
	}
	return uint(id), nil
}

func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrPromptNotFound) {
		c.JSON(http.StatusNotFound, model.ErrorResponse{
			Error:   "not_found",
			Message: "prompt not found",
		})
		return
	}

	logger.Errorf("prompt store error: %v", err)
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{
		Error:   "store_error",
		Message: "prompt store operation failed",
		Detail:  err.Error(),
	})
}
