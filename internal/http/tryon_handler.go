package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Grendlee/fit-check/internal/domain"
	"github.com/Grendlee/fit-check/internal/llm"
	"github.com/Grendlee/fit-check/internal/service"
)

// TryOnHandler mantiene dependencias para el try-on virtual y el endpoint
// de prueba del modelo.
type TryOnHandler struct {
	logger       *zap.Logger
	tryOnSvc     *service.TryOnService
	visionClient llm.VisionClient
}

// NewTryOnHandler crea una instancia de TryOnHandler con dependencias necesarias.
func NewTryOnHandler(logger *zap.Logger, tryOnSvc *service.TryOnService, visionClient llm.VisionClient) *TryOnHandler {
	return &TryOnHandler{
		logger:       logger,
		tryOnSvc:     tryOnSvc,
		visionClient: visionClient,
	}
}

// GenerateTryOn maneja POST /tryon.
func (h *TryOnHandler) GenerateTryOn(c *gin.Context) {
	var req struct {
		Prompt        string `json:"prompt"`
		BodyImage     string `json:"body_image" binding:"required"`
		ClothingImage string `json:"clothing_image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt and both base64 images are required"})
		return
	}

	result, err := h.tryOnSvc.GenerateTryOn(c.Request.Context(), req.Prompt, req.BodyImage, req.ClothingImage)
	if err != nil {
		if errors.Is(err, domain.ErrMissingImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("try-on failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"image":       result.ImageBase64,
		"description": result.Description,
	})
}

// TestModel maneja POST /gemini/test: passthrough plano de prompt a texto.
func (h *TryOnHandler) TestModel(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	text, err := h.visionClient.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		h.logger.Error("model test failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
