// Package catalog contiene la lógica pura de la vidriera: filtrado por ruta de
// categorías y búsqueda, y la selección de destacados de la portada.
package catalog

import (
	"strings"

	"github.com/camisetasbahia/catalogo-api/internal/domain/entity"
	"github.com/camisetasbahia/catalogo-api/internal/domain/taxonomy"
)

// Filter devuelve el subconjunto de products que cumple la ruta de categorías
// y el término de búsqueda, en el mismo orden de entrada (filtro estable).
//
// Reglas:
//   - search no vacío exige coincidencia de substring insensible a mayúsculas
//     sobre Name; un producto sin nombre nunca coincide con una búsqueda.
//   - si path no restringe (nivel 0 ausente o "todos") no se aplica ningún
//     filtro de categoría, haya o no búsqueda.
//   - con nivel 0 presente se exige igualdad exacta en cada nivel presente de
//     la ruta; un nivel ausente no impone nada sobre el campo del producto
//     (coincidencia por prefijo, no por nivel exacto).
//   - búsqueda y categoría se combinan con AND.
func Filter(products []*entity.Product, path taxonomy.Path, search string) []*entity.Product {
	search = strings.TrimSpace(search)
	var lowered string
	if search != "" {
		lowered = strings.ToLower(search)
	}

	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if search != "" {
			if p.Name == nil || !strings.Contains(strings.ToLower(*p.Name), lowered) {
				continue
			}
		}
		if !matchesPath(p, path) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesPath(p *entity.Product, path taxonomy.Path) bool {
	if path.IsAll() {
		return true
	}
	if p.Category != path.Level0 {
		return false
	}
	if path.Level1 != "" && p.Subcategory != path.Level1 {
		return false
	}
	if path.Level2 != "" && !strEq(p.Subsubcategory, path.Level2) {
		return false
	}
	if path.Level3 != "" && !strEq(p.Subsubsubcategory, path.Level3) {
		return false
	}
	return true
}

func strEq(field *string, want string) bool {
	return field != nil && *field == want
}
