package catalog

import "github.com/camisetasbahia/catalogo-api/internal/domain/entity"

// FeaturedLimit es la cantidad de productos destacados de la portada.
const FeaturedLimit = 8

// SelectFeatured elige una muestra acotada que maximiza la diversidad de pares
// (categoría, subcategoría), prefiriendo productos con imagen. Determinista
// para un orden de entrada fijo: "gana el primero" por clave.
//
// Los productos sin imágenes quedan fuera por completo, aunque eso deje el
// resultado por debajo de limit.
func SelectFeatured(products []*entity.Product, limit int) []*entity.Product {
	byCategory := make(map[string]*entity.Product)
	bySubcategory := make(map[string]*entity.Product)
	var categoryOrder, subcategoryOrder []string

	for _, p := range products {
		if !p.HasImages() {
			continue
		}
		if _, ok := byCategory[p.Category]; !ok {
			byCategory[p.Category] = p
			categoryOrder = append(categoryOrder, p.Category)
		}
		subKey := p.Category + "-" + p.Subcategory
		if _, ok := bySubcategory[subKey]; !ok {
			bySubcategory[subKey] = p
			subcategoryOrder = append(subcategoryOrder, subKey)
		}
	}

	// Primero un producto por (categoría, subcategoría), en orden de aparición.
	combined := make([]*entity.Product, 0, limit)
	seen := make(map[string]bool)
	for _, key := range subcategoryOrder {
		p := bySubcategory[key]
		combined = append(combined, p)
		seen[p.ID] = true
	}

	// Si faltan, completar con uno por categoría principal.
	if len(combined) < limit {
		for _, key := range categoryOrder {
			if len(combined) >= limit {
				break
			}
			p := byCategory[key]
			if !seen[p.ID] {
				combined = append(combined, p)
				seen[p.ID] = true
			}
		}
	}

	// Si siguen faltando, rellenar con el resto de los productos con imagen.
	if len(combined) < limit {
		for _, p := range products {
			if len(combined) >= limit {
				break
			}
			if !p.HasImages() || seen[p.ID] {
				continue
			}
			combined = append(combined, p)
			seen[p.ID] = true
		}
	}

	if len(combined) > limit {
		combined = combined[:limit]
	}
	return combined
}
