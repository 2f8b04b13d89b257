package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/Grendlee/fit-check/internal/domain"
)

const (
	outfitPoolSize = 8
	maxOutfits     = 10

	// El top pesa un poco mas que el bottom en el score combinado.
	// Asimetria intencional, no un bug.
	topWeight    = 0.55
	bottomWeight = 0.45
)

// OutfitComposer combina pools de tops y bottoms ya rankeados en candidatos
// de outfit. Sin estado; seguro para uso concurrente.
type OutfitComposer struct{}

// DefaultOutfitComposer permite uso directo sin instanciar.
var DefaultOutfitComposer = OutfitComposer{}

// Compose genera candidatos a partir de los dos pools (ordenados por score
// descendente). Solo participan los primeros 8 de cada pool; se generan
// max(len(top), len(bottom)) candidatos con tope 10, ciclando el pool corto
// con modulo para que ningun candidato quede sin pareja. Pool vacio deja esa
// mitad en nil y aporta 0 al score combinado.
func (OutfitComposer) Compose(tops, bottoms []domain.RankedItem) []domain.OutfitCandidate {
	topPool := truncatePool(tops)
	bottomPool := truncatePool(bottoms)

	outfits := []domain.OutfitCandidate{}
	if len(topPool) == 0 && len(bottomPool) == 0 {
		return outfits
	}

	count := len(topPool)
	if len(bottomPool) > count {
		count = len(bottomPool)
	}
	if count > maxOutfits {
		count = maxOutfits
	}

	for i := 0; i < count; i++ {
		var top, bottom *domain.RankedItem
		topScore, bottomScore := 0.0, 0.0

		if len(topPool) > 0 {
			t := topPool[i%len(topPool)]
			top = &t
			topScore = float64(t.Score)
		}
		if len(bottomPool) > 0 {
			b := bottomPool[i%len(bottomPool)]
			bottom = &b
			bottomScore = float64(b.Score)
		}

		outfits = append(outfits, domain.OutfitCandidate{
			// Titulo por orden de generacion; NO se renumera tras el sort.
			Title:  fmt.Sprintf("Outfit %d", i+1),
			Top:    top,
			Bottom: bottom,
			Score:  int(math.Round(topScore*topWeight + bottomScore*bottomWeight)),
		})
	}

	sort.SliceStable(outfits, func(i, j int) bool {
		return outfits[i].Score > outfits[j].Score
	})
	return outfits
}

func truncatePool(pool []domain.RankedItem) []domain.RankedItem {
	if len(pool) > outfitPoolSize {
		return pool[:outfitPoolSize]
	}
	return pool
}
