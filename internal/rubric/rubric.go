package rubric

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Grendlee/fit-check/internal/domain"
)

// Key normaliza un style id al key del rubric: tech-bro -> tech_bro.
func Key(styleID string) string {
	return strings.ReplaceAll(styleID, "-", "_")
}

// Get devuelve el rubric para un style id, o ErrMissingRubric si no existe.
func Get(styleID string) (domain.StyleRubric, error) {
	r, ok := rubrics[Key(styleID)]
	if !ok {
		return domain.StyleRubric{}, fmt.Errorf("style %q: %w", styleID, domain.ErrMissingRubric)
	}
	return r, nil
}

// Keys devuelve los keys de estilo registrados, ordenados.
func Keys() []string {
	out := make([]string, 0, len(rubrics))
	for k := range rubrics {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// PromptText renderiza el rubric como el bloque de bullets que se incrusta
// en el prompt de vision. El rubric es la UNICA definicion del estilo que
// ve el modelo.
func PromptText(r domain.StyleRubric) string {
	var sb strings.Builder

	writeSection := func(title string, items []string) {
		sb.WriteString(title)
		sb.WriteString(":\n- ")
		sb.WriteString(strings.Join(items, "\n- "))
		sb.WriteString("\n\n")
	}

	writeSection("Signature items", r.SignatureItems)
	writeSection("Avoid", r.Avoid)
	writeSection("Palette & materials", r.PaletteMaterials)
	writeSection("Silhouette", r.Silhouette)

	return strings.TrimSpace(sb.String())
}
