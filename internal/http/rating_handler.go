package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Grendlee/fit-check/internal/domain"
	"github.com/Grendlee/fit-check/internal/service"
)

// RatingHandler mantiene dependencias para endpoints de rating.
type RatingHandler struct {
	logger    *zap.Logger
	ratingSvc *service.RatingService
}

// NewRatingHandler crea una instancia de RatingHandler con dependencias necesarias.
func NewRatingHandler(logger *zap.Logger, ratingSvc *service.RatingService) *RatingHandler {
	return &RatingHandler{
		logger:    logger,
		ratingSvc: ratingSvc,
	}
}

// RateOutfit maneja POST /styles/:styleId/rating.
func (h *RatingHandler) RateOutfit(c *gin.Context) {
	styleID := c.Param("styleId")

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
		SessionID   string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid rating request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 is required"})
		return
	}

	// Sin session id el cliente recibe uno nuevo y debe reusarlo en la
	// pagina de sugerencias.
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	rating, err := h.ratingSvc.Rate(c.Request.Context(), sessionID, styleID, req.ImageBase64)
	if err != nil {
		h.respondRatingError(c, styleID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"rating":     rating,
	})
}

func (h *RatingHandler) respondRatingError(c *gin.Context, styleID string, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingStyle), errors.Is(err, domain.ErrMissingImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMissingRubric):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoJSON):
		h.logger.Warn("model reply not parseable", zap.String("style_id", styleID))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "model did not return JSON"})
	default:
		h.logger.Error("rating failed", zap.Error(err), zap.String("style_id", styleID))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
