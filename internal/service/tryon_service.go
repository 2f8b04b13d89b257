package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Grendlee/fit-check/internal/domain"
	"github.com/Grendlee/fit-check/internal/llm"
)

// defaultTryOnPrompt se usa cuando el caller no manda prompt propio.
const defaultTryOnPrompt = "Generate a photorealistic image of this person wearing this clothing item."

// TryOnService genera una imagen de try-on virtual combinando la foto del
// usuario con una prenda.
type TryOnService struct {
	tryOnClient llm.TryOnClient
	logger      *zap.Logger
}

func NewTryOnService(tryOnClient llm.TryOnClient, logger *zap.Logger) *TryOnService {
	return &TryOnService{
		tryOnClient: tryOnClient,
		logger:      logger,
	}
}

// GenerateTryOn pide al modelo la imagen compuesta. Ambas imagenes son
// obligatorias; el prompt es opcional.
func (s *TryOnService) GenerateTryOn(ctx context.Context, prompt, bodyBase64, clothingBase64 string) (domain.TryOnResult, error) {
	if strings.TrimSpace(bodyBase64) == "" || strings.TrimSpace(clothingBase64) == "" {
		return domain.TryOnResult{}, domain.ErrMissingImage
	}
	if strings.TrimSpace(prompt) == "" {
		prompt = defaultTryOnPrompt
	}

	image, description, err := s.tryOnClient.GenerateTryOn(ctx, prompt, bodyBase64, clothingBase64)
	if err != nil {
		return domain.TryOnResult{}, fmt.Errorf("try-on generate: %w", err)
	}

	if description == "" {
		description = "Try-on generated"
	}

	s.logger.Info("try-on generated", zap.Int("image_bytes_b64", len(image)))

	return domain.TryOnResult{
		ImageBase64: image,
		Description: description,
	}, nil
}
