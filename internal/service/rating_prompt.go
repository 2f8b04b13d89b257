package service

import (
	"fmt"
	"strings"

	"github.com/Grendlee/fit-check/internal/domain"
	"github.com/Grendlee/fit-check/internal/rubric"
)

// RatingPromptBuilder arma el prompt de vision que se envia junto a la
// captura. El rubric es la unica definicion del estilo que ve el modelo.
type RatingPromptBuilder struct{}

// DefaultRatingPromptBuilder permite uso directo sin instanciar.
var DefaultRatingPromptBuilder = RatingPromptBuilder{}

// BuildRatingPrompt genera el prompt completo para evaluar un outfit contra
// el estilo objetivo. styleName puede venir vacio; cae al style id.
func (RatingPromptBuilder) BuildRatingPrompt(styleID, styleName, styleDescription string, r domain.StyleRubric) string {
	if strings.TrimSpace(styleName) == "" {
		styleName = styleID
	}

	var sb strings.Builder

	sb.WriteString("Return ONLY valid JSON (no markdown, no extra text).\n\n")

	sb.WriteString("Schema:\n")
	sb.WriteString(`{
  "target_style": string,
  "detected_style": string,
  "match_score": number,
  "confidence": number,
  "top_match": boolean,
  "bottom_match": boolean,
  "reasons": string[],
  "suggestions": string[]
}
`)
	sb.WriteString("\n")

	sb.WriteString("TARGET STYLE:\n")
	sb.WriteString(fmt.Sprintf("- id: %q\n", styleID))
	sb.WriteString(fmt.Sprintf("- name: %q\n", styleName))
	sb.WriteString(fmt.Sprintf("- description: %q\n\n", styleDescription))

	sb.WriteString("RUBRIC (this is the ONLY definition of the target style; use it as your reference):\n")
	sb.WriteString(rubric.PromptText(r))
	sb.WriteString("\n\n")

	sb.WriteString("Hard rules:\n")
	sb.WriteString(fmt.Sprintf("- You MUST set \"target_style\" exactly to %q.\n", styleID))
	sb.WriteString("- Your judgments MUST be based on the rubric above. Do not rely on stereotypes or outside knowledge.\n")
	sb.WriteString("- If the outfit is not fully visible (headshot / cropped / shoes not shown), match_score MUST be between 0 and 20 and include \"insufficient outfit visibility\" in reasons.\n")
	sb.WriteString("- match_score: 0-100, confidence: 0-1.\n")
	sb.WriteString("- Provide 3-6 bullet reasons and 3-6 bullet suggestions.\n")
	sb.WriteString("- Suggestions must explicitly reference rubric items (e.g., replace X with a rubric signature item).\n")
	sb.WriteString("- Set top_match true only if the TOP clearly matches the rubric.\n")
	sb.WriteString("- Set bottom_match true only if the BOTTOM clearly matches the rubric.\n")
	sb.WriteString("- If top or bottom is not visible / unclear, set that part's match to false.\n\n")

	sb.WriteString("Now analyze the image and output JSON only.")

	return sb.String()
}
