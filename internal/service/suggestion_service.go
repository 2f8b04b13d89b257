package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Grendlee/fit-check/internal/domain"
	"github.com/Grendlee/fit-check/internal/repository"
	"github.com/Grendlee/fit-check/internal/rubric"
)

// topPicksPerSlot y topPicksTotal acotan el volumen de sugerencias sin
// importar el tamano del closet.
const (
	topPicksPerSlot = 6
	topPicksTotal   = 8
)

// SuggestionService decide que mitades del outfit necesitan reemplazo y
// arma el payload de sugerencias a partir del closet rankeado.
type SuggestionService struct {
	closetRepo repository.ClosetRepository
	scorer     ScoringEngine
	composer   OutfitComposer
	logger     *zap.Logger
}

func NewSuggestionService(closetRepo repository.ClosetRepository, logger *zap.Logger) *SuggestionService {
	return &SuggestionService{
		closetRepo: closetRepo,
		logger:     logger,
	}
}

// Suggest genera sugerencias para el estilo objetivo. prior es el rating
// previo de la sesion (nil si no existe); se recibe explicito para que el
// engine no dependa de estado ambiental.
func (s *SuggestionService) Suggest(ctx context.Context, styleID string, prior *domain.RatingResult) (domain.Suggestions, error) {
	if strings.TrimSpace(styleID) == "" {
		return domain.Suggestions{}, domain.ErrMissingStyle
	}

	r, err := rubric.Get(styleID)
	if err != nil {
		return domain.Suggestions{}, err
	}

	// Default seguro: sin rating previo asumimos que todo necesita mejora.
	// Un rating para OTRO estilo no dice nada sobre el actual.
	needTops, needBottoms := true, true
	if prior != nil && prior.TargetStyle == styleID {
		needTops = !prior.TopMatch
		needBottoms = !prior.BottomMatch
	}

	out := domain.Suggestions{
		NeedTops:    needTops,
		NeedBottoms: needBottoms,
		TopPicks:    []domain.RankedItem{},
		Outfits:     []domain.OutfitCandidate{},
	}

	// Ambas mitades ya matchean: cero trabajo downstream.
	if !needTops && !needBottoms {
		return out, nil
	}

	items, err := s.closetRepo.FindByCategory(ctx, styleID)
	if err != nil {
		return domain.Suggestions{}, fmt.Errorf("fetch closet items: %w", err)
	}

	ranked := s.scorer.RankItems(r, items)

	var tops, bottoms []domain.RankedItem
	for _, it := range ranked {
		if it.Slot == domain.SlotTop {
			tops = append(tops, it)
		} else {
			bottoms = append(bottoms, it)
		}
	}

	if needTops {
		out.TopPicks = append(out.TopPicks, headOf(tops, topPicksPerSlot)...)
	}
	if needBottoms {
		out.TopPicks = append(out.TopPicks, headOf(bottoms, topPicksPerSlot)...)
	}
	if len(out.TopPicks) > topPicksTotal {
		out.TopPicks = out.TopPicks[:topPicksTotal]
	}

	// Los combos solo tienen sentido cuando se reemplazan ambas mitades.
	if needTops && needBottoms {
		out.Outfits = s.composer.Compose(tops, bottoms)
	}

	s.logger.Info("suggestions built",
		zap.String("style_id", styleID),
		zap.Bool("need_tops", needTops),
		zap.Bool("need_bottoms", needBottoms),
		zap.Int("top_picks", len(out.TopPicks)),
		zap.Int("outfits", len(out.Outfits)),
	)

	return out, nil
}

func headOf(items []domain.RankedItem, n int) []domain.RankedItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}
