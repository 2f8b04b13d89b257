package domain

// RatingResult es el resultado validado de un intento de rating.
// Todos los campos tienen default seguro: el tipo siempre queda completo
// aunque el modelo devuelva un JSON degenerado.
type RatingResult struct {
	TargetStyle   string   `json:"target_style"`
	DetectedStyle string   `json:"detected_style"`
	MatchScore    float64  `json:"match_score"`
	Confidence    float64  `json:"confidence"`
	Reasons       []string `json:"reasons"`
	Suggestions   []string `json:"suggestions"`
	TopMatch      bool     `json:"top_match"`
	BottomMatch   bool     `json:"bottom_match"`
}

// TryOnResult es la salida de una generacion de try-on virtual.
type TryOnResult struct {
	ImageBase64 string `json:"image"`
	Description string `json:"description"`
}
