package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Grendlee/fit-check/internal/domain"
	"github.com/Grendlee/fit-check/internal/llm"
	"github.com/Grendlee/fit-check/internal/rubric"
)

// ratingTTL acota la vida del rating de sesion: el siguiente intento lo
// reemplaza de todos modos.
const ratingTTL = 30 * time.Minute

// RatingService orquesta un intento de rating: arma el prompt desde el
// rubric, llama al modelo de vision, valida la respuesta y persiste el
// resultado para la sesion.
type RatingService struct {
	visionClient  llm.VisionClient
	ratingStore   RatingStore
	promptBuilder RatingPromptBuilder
	parser        RatingParser
	logger        *zap.Logger
}

func NewRatingService(visionClient llm.VisionClient, ratingStore RatingStore, logger *zap.Logger) *RatingService {
	return &RatingService{
		visionClient: visionClient,
		ratingStore:  ratingStore,
		logger:       logger,
	}
}

// Rate evalua la captura contra el estilo objetivo y devuelve el rating
// validado. Un fallo del modelo o del parser se reporta tal cual; nada se
// reintenta.
func (s *RatingService) Rate(ctx context.Context, sessionID, styleID, imageBase64 string) (domain.RatingResult, error) {
	if strings.TrimSpace(styleID) == "" {
		return domain.RatingResult{}, domain.ErrMissingStyle
	}
	if strings.TrimSpace(imageBase64) == "" {
		return domain.RatingResult{}, domain.ErrMissingImage
	}

	r, err := rubric.Get(styleID)
	if err != nil {
		return domain.RatingResult{}, err
	}

	prompt := s.promptBuilder.BuildRatingPrompt(styleID, "", "", r)

	raw, err := s.visionClient.GenerateVisionRating(ctx, prompt, imageBase64)
	if err != nil {
		return domain.RatingResult{}, fmt.Errorf("vision rating: %w", err)
	}

	rating, err := s.parser.Parse(raw, styleID)
	if err != nil {
		return domain.RatingResult{}, err
	}

	if s.ratingStore != nil {
		if err := s.ratingStore.Save(sessionID, rating, ratingTTL); err != nil {
			// El rating sigue siendo valido aunque no se pudo persistir;
			// la siguiente pagina simplemente asumira ambos flags en true.
			s.logger.Warn("persist rating failed", zap.Error(err), zap.String("session_id", sessionID))
		}
	}

	return rating, nil
}
