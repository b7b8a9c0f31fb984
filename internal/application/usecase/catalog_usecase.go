package usecase

import (
	"context"

	"github.com/camisetasbahia/catalogo-api/internal/application/dto"
	"github.com/camisetasbahia/catalogo-api/internal/domain/catalog"
	"github.com/camisetasbahia/catalogo-api/internal/domain/entity"
	"github.com/camisetasbahia/catalogo-api/internal/domain/taxonomy"
)

// popularSections las secciones fijas de la portada, en orden de aparición.
var popularSections = []struct {
	Name string
	Path taxonomy.Path
}{
	{"Camisetas de Fútbol", taxonomy.Path{Level0: "adulto", Level1: "futbol", Level2: "camisetas"}},
	{"Camisetas Retro", taxonomy.Path{Level0: "adulto", Level1: "futbol", Level2: "camisetas-retro"}},
	{"Bermudas", taxonomy.Path{Level0: "adulto", Level1: "futbol", Level2: "bermudas"}},
	{"Chupines de Entrenamiento", taxonomy.Path{Level0: "adulto", Level1: "futbol", Level2: "chupines-entrenamiento"}},
}

// CatalogUseCase la vidriera pública: navegación por categorías, búsqueda y
// destacados. Solo lee; nunca devuelve error (hereda la política de
// ProductService: store caído → catálogo vacío).
type CatalogUseCase struct {
	products *ProductService
	tax      *taxonomy.Tree
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products *ProductService, tax *taxonomy.Tree) *CatalogUseCase {
	return &CatalogUseCase{products: products, tax: tax}
}

// Browse resuelve la vista principal: filtra por ruta de categoría y término
// de búsqueda, arma título y miga de pan. Las secciones populares solo se
// cargan en la vista sin filtro ni búsqueda.
func (uc *CatalogUseCase) Browse(ctx context.Context, path taxonomy.Path, search string) dto.BrowseResponse {
	all := uc.products.List(ctx)
	filtered := catalog.Filter(all, path, search)
	list := dto.ToProductList(filtered)

	resp := dto.BrowseResponse{
		Title:       uc.tax.Title(path),
		Breadcrumbs: uc.tax.Breadcrumbs(path),
		Search:      search,
		Items:       list.Items,
		Total:       list.Total,
	}
	if path.IsAll() && search == "" {
		resp.Popular = uc.popular(all)
	}
	return resp
}

// Featured devuelve los productos destacados de la portada.
func (uc *CatalogUseCase) Featured(ctx context.Context) dto.ProductListResponse {
	all := uc.products.List(ctx)
	return dto.ToProductList(catalog.SelectFeatured(all, catalog.FeaturedLimit))
}

// Categories devuelve los hijos inmediatos de la ruta pedida, con su miga de
// pan. Una ruta inexistente devuelve hijos nil.
func (uc *CatalogUseCase) Categories(path taxonomy.Path) dto.CategoriesResponse {
	return dto.CategoriesResponse{
		Breadcrumbs: uc.tax.Breadcrumbs(path),
		Children:    uc.tax.ChildrenOf(path),
	}
}

func (uc *CatalogUseCase) popular(all []*entity.Product) []dto.PopularSection {
	sections := make([]dto.PopularSection, 0, len(popularSections))
	for _, s := range popularSections {
		items := catalog.Filter(all, s.Path, "")
		if len(items) > catalog.FeaturedLimit {
			items = items[:catalog.FeaturedLimit]
		}
		if len(items) == 0 {
			continue
		}
		list := dto.ToProductList(items)
		sections = append(sections, dto.PopularSection{
			Key:   s.Path.Level0 + "-" + s.Path.Level1 + "-" + s.Path.Level2,
			Name:  s.Name,
			Items: list.Items,
		})
	}
	return sections
}
