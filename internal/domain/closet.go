package domain

// TopsSourceTable identifica la tabla de origen de prendas superiores.
// Cualquier otro source_table se trata como prenda inferior.
const TopsSourceTable = "tops_generated_v1"

// Slot indica que mitad del outfit ocupa una prenda.
type Slot string

const (
	SlotTop    Slot = "top"
	SlotBottom Slot = "bottom"
)

// ClosetItem es una prenda digitalizada del closet del usuario.
// Es propiedad del colaborador de closet; este core solo la lee.
type ClosetItem struct {
	ID          string            `json:"id"`
	ImageURL    string            `json:"image_url"`
	SourceTable string            `json:"source_table"`
	Category    string            `json:"category"`
	OgFileName  string            `json:"og_file_name"`
	Attributes  map[string]string `json:"attributes"`
}

// Attr devuelve el atributo pedido o cadena vacia si no existe.
func (it ClosetItem) Attr(key string) string {
	if it.Attributes == nil {
		return ""
	}
	return it.Attributes[key]
}

// RankedItem es un ClosetItem puntuado contra un rubric.
// Vive solo durante un pase de ranking; no se persiste.
type RankedItem struct {
	ClosetItem
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
	Slot    Slot     `json:"slot"`
}

// OutfitCandidate es una combinacion top+bottom con score combinado.
// Cualquiera de las dos mitades puede faltar si su pool estaba vacio.
type OutfitCandidate struct {
	Title  string      `json:"title"`
	Top    *RankedItem `json:"top,omitempty"`
	Bottom *RankedItem `json:"bottom,omitempty"`
	Score  int         `json:"score"`
}

// Suggestions es el payload final que consume la capa de presentacion.
type Suggestions struct {
	NeedTops    bool              `json:"need_tops"`
	NeedBottoms bool              `json:"need_bottoms"`
	TopPicks    []RankedItem      `json:"top_picks"`
	Outfits     []OutfitCandidate `json:"outfits"`
}
