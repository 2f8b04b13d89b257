package rubric

import "github.com/Grendlee/fit-check/internal/domain"

// rubrics es la tabla estatica de estilos soportados. Solo lectura.
var rubrics = map[string]domain.StyleRubric{
	"tech_bro": {
		SignatureItems: []string{
			"Patagonia or North Face vest",
			"quarter zip or performance tee",
			"slim chinos or dark jeans",
			"Allbirds or minimal sneakers",
			"simple backpack or tote",
		},
		Avoid: []string{
			"loud graphics",
			"baggy streetwear",
			"formal tailoring",
		},
		PaletteMaterials: []string{
			"neutral colors (gray, navy, black)",
			"performance or tech fabrics",
			"clean basics",
		},
		Silhouette: []string{
			"clean",
			"fitted-to-relaxed",
			"light layering",
		},
	},

	"techwear": {
		SignatureItems: []string{
			"technical jacket or shell",
			"cargo or tactical pants",
			"utility straps or pockets",
			"futuristic sneakers or boots",
		},
		Avoid: []string{
			"bright colors",
			"classic tailoring",
			"soft casual knits",
		},
		PaletteMaterials: []string{
			"black, charcoal, dark gray",
			"nylon, gore-tex, synthetic fabrics",
		},
		Silhouette: []string{
			"structured",
			"layered",
			"functional",
		},
	},

	"teacher": {
		SignatureItems: []string{
			"cardigan or knit sweater",
			"blouse or button-down",
			"straight-leg pants or midi skirt",
			"comfortable flats or loafers",
		},
		Avoid: []string{
			"revealing silhouettes",
			"heavy streetwear",
			"overly formal suits",
		},
		PaletteMaterials: []string{
			"soft neutrals",
			"earth tones",
			"cotton or knit fabrics",
		},
		Silhouette: []string{
			"approachable",
			"modest",
			"comfortable",
		},
	},

	"baggy": {
		SignatureItems: []string{
			"oversized t-shirt or hoodie",
			"wide-leg pants or cargos",
			"chunky sneakers",
			"beanie or cap",
		},
		Avoid: []string{
			"slim-fit tailoring",
			"formal shoes",
			"tight silhouettes",
		},
		PaletteMaterials: []string{
			"muted or monochrome tones",
			"cotton, fleece, denim",
		},
		Silhouette: []string{
			"oversized",
			"relaxed",
			"streetwear-forward",
		},
	},

	"business_formal": {
		SignatureItems: []string{
			"tailored suit jacket",
			"dress shirt or blouse",
			"dress pants or pencil skirt",
			"oxfords or heels",
		},
		Avoid: []string{
			"casual sneakers",
			"denim",
			"oversized streetwear",
		},
		PaletteMaterials: []string{
			"navy, black, gray",
			"wool, structured fabrics",
		},
		Silhouette: []string{
			"tailored",
			"structured",
			"polished",
		},
	},

	"ted_talk": {
		SignatureItems: []string{
			"smart blazer or jacket",
			"simple top",
			"dark jeans or trousers",
			"clean sneakers or boots",
		},
		Avoid: []string{
			"flashy branding",
			"extreme streetwear",
			"overly formal suits",
		},
		PaletteMaterials: []string{
			"neutral or warm tones",
			"soft structure",
		},
		Silhouette: []string{
			"intentional",
			"confident",
			"approachable",
		},
	},

	"goth": {
		SignatureItems: []string{
			"black layered clothing",
			"leather or lace elements",
			"boots",
			"dark accessories",
		},
		Avoid: []string{
			"bright colors",
			"athleisure",
			"preppy basics",
		},
		PaletteMaterials: []string{
			"black, charcoal, deep red",
			"leather, mesh, velvet",
		},
		Silhouette: []string{
			"dramatic",
			"layered",
			"expressive",
		},
	},

	"pinterest_girly": {
		SignatureItems: []string{
			"cardigans or blouses",
			"skirts or relaxed jeans",
			"hair accessories",
			"mary janes or ballet flats",
		},
		Avoid: []string{
			"heavy streetwear",
			"technical fabrics",
			"harsh color blocking",
		},
		PaletteMaterials: []string{
			"pastels",
			"cream and soft browns",
			"knits and flowy fabrics",
		},
		Silhouette: []string{
			"soft",
			"feminine",
			"curated",
		},
	},

	"preppy": {
		SignatureItems: []string{
			"collared shirt",
			"sweater vest or blazer",
			"pleated skirt or chinos",
			"loafers",
		},
		Avoid: []string{
			"distressed clothing",
			"streetwear bagginess",
			"athletic sneakers",
		},
		PaletteMaterials: []string{
			"navy, cream, plaid",
			"cotton, wool",
		},
		Silhouette: []string{
			"neat",
			"structured",
			"classic",
		},
	},

	"rapper": {
		SignatureItems: []string{
			"statement outerwear",
			"graphic tee or hoodie",
			"baggy pants",
			"bold sneakers",
			"chains or accessories",
		},
		Avoid: []string{
			"minimalist basics",
			"formal tailoring",
			"muted outfits without accents",
		},
		PaletteMaterials: []string{
			"black, bold colors, metallics",
			"denim, leather",
		},
		Silhouette: []string{
			"bold",
			"confident",
			"attention-grabbing",
		},
	},
}
