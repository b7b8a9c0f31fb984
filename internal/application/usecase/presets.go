package usecase

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/camisetasbahia/catalogo-api/internal/domain/taxonomy"
)

// preset receta de alta masiva: ruta fija, pool de imágenes y generadores de
// nombre y precio (pueden devolver nil: producto sin nombre o sin precio).
type preset struct {
	path   taxonomy.Path
	images []string
	name   func(rnd *rand.Rand) *string
	price  func(rnd *rand.Rand) *decimal.Decimal
}

var bermudaTeams = []string{
	"Boca", "River", "Racing", "Independiente", "San Lorenzo", "Estudiantes",
	"Gimnasia", "Newell's", "Rosario Central", "Talleres", "Belgrano", "Colón",
	"Unión", "Banfield", "Lanús", "Vélez", "Huracán", "Argentinos Juniors",
	"Defensa y Justicia", "Godoy Cruz",
}

var bermudaColors = []string{
	"Negro", "Azul", "Rojo", "Blanco", "Gris", "Verde", "Amarillo", "Naranja",
}

var presets = map[string]preset{
	"bermudas": {
		path: taxonomy.Path{Level0: "adulto", Level1: "futbol", Level2: "bermudas"},
		images: []string{
			"https://images.unsplash.com/photo-1591195853828-11db59a44f6b?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1565084888279-aca607ecce0c?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1584865288642-42078afe6942?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1571945153237-4929e783af4a?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1560243563-062bfc001d68?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1562157873-818bc0726f68?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1590400516695-36708d3f964a?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1586363104862-3a5e2ab60d99?q=80&w=600&auto=format&fit=crop",
		},
		name: func(rnd *rand.Rand) *string {
			n := fmt.Sprintf("Bermuda %s %s",
				bermudaTeams[rnd.Intn(len(bermudaTeams))],
				bermudaColors[rnd.Intn(len(bermudaColors))])
			return &n
		},
		price: func(rnd *rand.Rand) *decimal.Decimal {
			// entre 5000 y 14999
			p := decimal.NewFromInt(int64(5000 + rnd.Intn(10000)))
			return &p
		},
	},
	"chupines": {
		path: taxonomy.Path{Level0: "adulto", Level1: "futbol", Level2: "chupines-entrenamiento"},
		images: []string{
			"https://images.unsplash.com/photo-1552902865-b72c031ac5ea?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1565084888279-aca607ecce0c?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1584865288642-42078afe6942?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1571945153237-4929e783af4a?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1560243563-062bfc001d68?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1562157873-818bc0726f68?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1590400516695-36708d3f964a?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1586363104862-3a5e2ab60d99?q=80&w=600&auto=format&fit=crop",
		},
		name:  func(*rand.Rand) *string { return nil },
		price: func(*rand.Rand) *decimal.Decimal { return nil },
	},
}
