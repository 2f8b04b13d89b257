package service

import (
	"encoding/json"
	"fmt"

	"github.com/Grendlee/fit-check/internal/domain"
)

// RatingParser convierte la respuesta libre del modelo de vision en un
// RatingResult bien formado. El parseo es total: cualquier campo ausente o
// con tipo equivocado cae a su default; el unico modo de fallo es que no
// exista ningun objeto JSON parseable en la respuesta.
type RatingParser struct{}

// DefaultRatingParser permite uso directo sin instanciar.
var DefaultRatingParser = RatingParser{}

// Parse extrae y valida el JSON de la respuesta cruda del modelo.
// target_style se sobreescribe SIEMPRE con el style id pedido: el rating
// almacenado no puede derivar silenciosamente hacia otro objetivo.
func (RatingParser) Parse(raw, targetStyle string) (domain.RatingResult, error) {
	cleaned := cleanModelReply(raw)

	candidate := extractJSONObject(cleaned)
	if candidate == "" {
		candidate = extractJSONObject(raw)
	}
	if candidate == "" {
		return domain.RatingResult{}, fmt.Errorf("extract rating: %w", domain.ErrNoJSON)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return domain.RatingResult{}, fmt.Errorf("parse rating: %w", domain.ErrNoJSON)
	}

	return domain.RatingResult{
		TargetStyle:   targetStyle,
		DetectedStyle: stringField(fields, "detected_style", "Unknown"),
		MatchScore:    clamp(numberField(fields, "match_score"), 0, 100),
		Confidence:    clamp(numberField(fields, "confidence"), 0, 1),
		Reasons:       stringsField(fields, "reasons"),
		Suggestions:   stringsField(fields, "suggestions"),
		TopMatch:      boolField(fields, "top_match"),
		BottomMatch:   boolField(fields, "bottom_match"),
	}, nil
}

// stringField devuelve el campo como string o el fallback si falta o no tipa.
func stringField(fields map[string]json.RawMessage, key, fallback string) string {
	var s string
	if raw, ok := fields[key]; ok && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return fallback
}

func numberField(fields map[string]json.RawMessage, key string) float64 {
	var n float64
	if raw, ok := fields[key]; ok && json.Unmarshal(raw, &n) == nil {
		return n
	}
	return 0
}

func boolField(fields map[string]json.RawMessage, key string) bool {
	var b bool
	if raw, ok := fields[key]; ok && json.Unmarshal(raw, &b) == nil {
		return b
	}
	return false
}

// stringsField acepta solo arrays de strings; cualquier otra cosa cae a
// slice vacio (nunca nil, para que el JSON de salida serialice []).
func stringsField(fields map[string]json.RawMessage, key string) []string {
	var list []string
	if raw, ok := fields[key]; ok && json.Unmarshal(raw, &list) == nil && list != nil {
		return list
	}
	return []string{}
}

// clamp acota v al rango [lo, hi]. El prompt documenta los rangos pero el
// modelo no siempre los respeta.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
