package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Grendlee/fit-check/internal/domain"
	"github.com/Grendlee/fit-check/internal/rubric"
)

// StyleHandler expone los rubrics registrados en modo solo lectura.
type StyleHandler struct {
	logger *zap.Logger
}

// NewStyleHandler crea una instancia de StyleHandler.
func NewStyleHandler(logger *zap.Logger) *StyleHandler {
	return &StyleHandler{logger: logger}
}

// ListStyles maneja GET /styles.
func (h *StyleHandler) ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"styles": rubric.Keys()})
}

// GetRubric maneja GET /styles/:styleId/rubric.
func (h *StyleHandler) GetRubric(c *gin.Context) {
	styleID := c.Param("styleId")

	r, err := rubric.Get(styleID)
	if err != nil {
		if errors.Is(err, domain.ErrMissingRubric) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("get rubric failed", zap.Error(err), zap.String("style_id", styleID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load rubric"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"style_id": styleID,
		"key":      rubric.Key(styleID),
		"rubric":   r,
	})
}
