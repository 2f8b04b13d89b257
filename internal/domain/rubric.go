package domain

// StyleRubric es la definicion canonica de un estilo: prendas firma,
// elementos a evitar, paleta/materiales y silueta. Inmutable una vez cargado.
type StyleRubric struct {
	SignatureItems   []string `json:"signature_items"`
	Avoid            []string `json:"avoid"`
	PaletteMaterials []string `json:"palette_materials"`
	Silhouette       []string `json:"silhouette"`
}
