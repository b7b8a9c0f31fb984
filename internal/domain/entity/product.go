package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una prenda publicada en la tienda. La clasificación es una
// ruta de hasta cuatro niveles: Category y Subcategory siempre presentes, los
// niveles más profundos opcionales y sin huecos (si hay nivel 3 tiene que haber
// nivel 2). Images conserva el orden de carga; Images[0] es la portada.
type Product struct {
	ID                string
	Name              *string // nil = producto sin nombre
	Category          string
	Subcategory       string
	Subsubcategory    *string
	Subsubsubcategory *string
	Price             *decimal.Decimal // nil = "consultar precio"
	Images            []string
	Temporada         string // normalizado: nunca null, "" cuando no aplica
	Marca             string // normalizado: nunca null
	Description       *string
	Sizes             []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	UserID            string
}

// HasImages indica si el producto tiene al menos una imagen cargada.
func (p *Product) HasImages() bool {
	return len(p.Images) > 0
}

// AllSizes es el conjunto canónico de talles de la tienda.
var AllSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}
