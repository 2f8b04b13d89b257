package service

import (
	"sort"
	"strings"

	"github.com/Grendlee/fit-check/internal/domain"
)

// Pesos del scoring: los hits firma valen mas que paleta/silueta, y cada
// token "avoid" resta de forma acumulativa (la severidad del mismatch crece
// con cada elemento prohibido presente).
const (
	broadTokenBonus = 3
	signatureBonus  = 10
	paletteBonus    = 4
	silhouetteBonus = 4
	avoidPenalty    = 6
	minTokenLen     = 3
)

const (
	reasonSignature  = "Matches signature items"
	reasonPalette    = "Fits palette/materials"
	reasonSilhouette = "Fits silhouette"
	reasonAvoid      = "Has an avoid element"
)

// ScoringEngine puntua prendas del closet contra un rubric por matching de
// substrings de tokens. Sin estado; seguro para uso concurrente.
type ScoringEngine struct{}

// DefaultScoringEngine permite uso directo sin instanciar.
var DefaultScoringEngine = ScoringEngine{}

// nonAlnum corta sobre cualquier run de caracteres no alfanumericos.
func nonAlnum(r rune) bool {
	return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
}

// tokenize une una lista del rubric, la pasa a minusculas y la parte en
// tokens alfanumericos. Los vacios se descartan.
func tokenize(list []string) []string {
	joined := strings.ToLower(strings.Join(list, " "))
	return strings.FieldsFunc(joined, nonAlnum)
}

// itemBlob concatena los campos descriptivos de la prenda en orden fijo,
// saltando ausentes, y lo baja a minusculas. Es la superficie de matching.
func itemBlob(it domain.ClosetItem) string {
	parts := make([]string, 0, 8)
	for _, p := range []string{
		it.Category,
		it.OgFileName,
		it.Attr("type"),
		it.Attr("style"),
		it.Attr("fit"),
		it.Attr("color"),
		it.Attr("description"),
		it.Attr("gender_target"),
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// anyTokenIn reporta si algun token (largo >= minTokenLen) aparece como
// substring del blob.
func anyTokenIn(blob string, tokens []string) bool {
	for _, tok := range tokens {
		if len(tok) < minTokenLen {
			continue
		}
		if strings.Contains(blob, tok) {
			return true
		}
	}
	return false
}

// RankItems puntua cada prenda contra el rubric y devuelve la secuencia
// ordenada por score descendente. El orden relativo de empates se preserva
// (sort estable) y la salida es una permutacion de la entrada.
func (ScoringEngine) RankItems(r domain.StyleRubric, items []domain.ClosetItem) []domain.RankedItem {
	signatureTokens := tokenize(r.SignatureItems)
	paletteTokens := tokenize(r.PaletteMaterials)
	silhouetteTokens := tokenize(r.Silhouette)
	avoidTokens := tokenize(r.Avoid)

	// Union de tokens positivos, dedupe preservando primera aparicion.
	seen := make(map[string]struct{})
	var allPositive []string
	for _, tok := range append(append(append([]string{}, signatureTokens...), paletteTokens...), silhouetteTokens...) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		allPositive = append(allPositive, tok)
	}

	seenAvoid := make(map[string]struct{})
	var distinctAvoid []string
	for _, tok := range avoidTokens {
		if _, ok := seenAvoid[tok]; ok {
			continue
		}
		seenAvoid[tok] = struct{}{}
		distinctAvoid = append(distinctAvoid, tok)
	}

	ranked := make([]domain.RankedItem, 0, len(items))
	for _, it := range items {
		blob := itemBlob(it)

		score := 0
		var reasons []string

		for _, tok := range allPositive {
			if len(tok) < minTokenLen {
				continue
			}
			if strings.Contains(blob, tok) {
				score += broadTokenBonus
			}
		}

		if anyTokenIn(blob, signatureTokens) {
			score += signatureBonus
			reasons = append(reasons, reasonSignature)
		}
		if anyTokenIn(blob, paletteTokens) {
			score += paletteBonus
			reasons = append(reasons, reasonPalette)
		}
		if anyTokenIn(blob, silhouetteTokens) {
			score += silhouetteBonus
			reasons = append(reasons, reasonSilhouette)
		}

		avoidHit := false
		for _, tok := range distinctAvoid {
			if len(tok) < minTokenLen {
				continue
			}
			if strings.Contains(blob, tok) {
				score -= avoidPenalty
				avoidHit = true
			}
		}
		if avoidHit {
			reasons = append(reasons, reasonAvoid)
		}

		slot := domain.SlotBottom
		if it.SourceTable == domain.TopsSourceTable {
			slot = domain.SlotTop
		}

		ranked = append(ranked, domain.RankedItem{
			ClosetItem: it,
			Score:      score,
			Reasons:    dedupeReasons(reasons),
			Slot:       slot,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// dedupeReasons elimina duplicados preservando orden de primera aparicion.
func dedupeReasons(reasons []string) []string {
	seen := make(map[string]struct{}, len(reasons))
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
