package service

import (
	"regexp"
	"strings"
)

// extractJSONObject recorta el substring candidato a objeto JSON: desde la
// primera '{' hasta la ultima '}'. Devuelve "" si no hay objeto aparente.
// El recorte greedy tolera objetos anidados sin balancear llaves.
func extractJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}
	end := strings.LastIndexByte(input, '}')
	if end <= start {
		return ""
	}
	return input[start : end+1]
}

var (
	fenceStartRe = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	fenceEndRe   = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// cleanModelReply quita fences ```json ... ``` y BOM, dejando el contenido usable.
func cleanModelReply(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "\ufeff")

	s = fenceStartRe.ReplaceAllString(s, "")
	s = fenceEndRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
