package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	styleH *StyleHandler,
	ratingH *RatingHandler,
	suggestionH *SuggestionHandler,
	tryOnH *TryOnHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	styles := r.Group("/styles")
	styles.GET("", styleH.ListStyles)
	styles.GET("/:styleId/rubric", styleH.GetRubric)
	styles.POST("/:styleId/rating", ratingH.RateOutfit)
	styles.GET("/:styleId/suggestions", suggestionH.GetSuggestions)

	r.POST("/tryon", tryOnH.GenerateTryOn)
	r.POST("/gemini/test", tryOnH.TestModel)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
