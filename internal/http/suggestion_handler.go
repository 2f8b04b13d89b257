package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Grendlee/fit-check/internal/domain"
	"github.com/Grendlee/fit-check/internal/service"
)

// SuggestionHandler mantiene dependencias para endpoints de sugerencias.
type SuggestionHandler struct {
	logger        *zap.Logger
	suggestionSvc *service.SuggestionService
	ratingStore   service.RatingStore
}

// NewSuggestionHandler crea una instancia de SuggestionHandler con dependencias necesarias.
func NewSuggestionHandler(
	logger *zap.Logger,
	suggestionSvc *service.SuggestionService,
	ratingStore service.RatingStore,
) *SuggestionHandler {
	return &SuggestionHandler{
		logger:        logger,
		suggestionSvc: suggestionSvc,
		ratingStore:   ratingStore,
	}
}

// GetSuggestions maneja GET /styles/:styleId/suggestions.
// El rating previo se resuelve aqui y se pasa explicito al service; el
// engine no toca el store.
func (h *SuggestionHandler) GetSuggestions(c *gin.Context) {
	styleID := c.Param("styleId")
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = c.GetHeader("X-Session-ID")
	}

	var prior *domain.RatingResult
	if h.ratingStore != nil && sessionID != "" {
		stored, err := h.ratingStore.Get(sessionID)
		if err != nil {
			// Sin rating legible seguimos con el default (ambas mitades).
			h.logger.Warn("read stored rating failed", zap.Error(err), zap.String("session_id", sessionID))
		} else {
			prior = stored
		}
	}

	suggestions, err := h.suggestionSvc.Suggest(c.Request.Context(), styleID, prior)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingStyle), errors.Is(err, domain.ErrMissingRubric):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("suggestions failed", zap.Error(err), zap.String("style_id", styleID))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
