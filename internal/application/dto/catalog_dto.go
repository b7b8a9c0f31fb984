package dto

import "github.com/camisetasbahia/catalogo-api/internal/domain/taxonomy"

// BrowseResponse resultado de la vidriera: productos filtrados más el título y
// la miga de pan de la ruta actual. Popular solo viene cargado cuando no hay
// filtro de categoría ni búsqueda.
type BrowseResponse struct {
	Title       string            `json:"title"`
	Breadcrumbs []taxonomy.Crumb  `json:"breadcrumbs"`
	Search      string            `json:"search,omitempty"`
	Items       []ProductResponse `json:"items"`
	Total       int               `json:"total"`
	Popular     []PopularSection  `json:"popular,omitempty"`
}

// PopularSection una sección fija de la vidriera sin filtrar (ej. "Bermudas").
type PopularSection struct {
	Key   string            `json:"key"`
	Name  string            `json:"name"`
	Items []ProductResponse `json:"items"`
}

// CategoriesResponse hijos inmediatos de la ruta pedida (navegación del árbol).
type CategoriesResponse struct {
	Breadcrumbs []taxonomy.Crumb `json:"breadcrumbs"`
	Children    []taxonomy.Node  `json:"children"`
}
