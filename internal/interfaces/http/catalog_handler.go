package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camisetasbahia/catalogo-api/internal/application/dto"
	"github.com/camisetasbahia/catalogo-api/internal/application/usecase"
	"github.com/camisetasbahia/catalogo-api/internal/domain/taxonomy"
)

// CatalogHandler maneja la vidriera pública (sin auth).
type CatalogHandler struct {
	catalog  *usecase.CatalogUseCase
	products *usecase.ProductService
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *usecase.CatalogUseCase, products *usecase.ProductService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, products: products}
}

// pathFromQuery arma la ruta de categoría desde los query params. Los cuatro
// niveles viajan como categoria/subcategoria/subsubcategoria/subsubsubcategoria.
func pathFromQuery(c *fiber.Ctx) taxonomy.Path {
	return taxonomy.Path{
		Level0: c.Query("categoria"),
		Level1: c.Query("subcategoria"),
		Level2: c.Query("subsubcategoria"),
		Level3: c.Query("subsubsubcategoria"),
	}
}

// searchFromQuery devuelve el término de búsqueda. El nombre canónico es
// "buscar"; "search" se mantiene como alias legado.
func searchFromQuery(c *fiber.Ctx) string {
	if s := c.Query("buscar"); s != "" {
		return s
	}
	return c.Query("search")
}

// Browse godoc
// @Summary      Listar productos de la vidriera
// @Tags         catalogo
// @Produce      json
// @Param        categoria           query  string  false  "Nivel 0 de categoría"
// @Param        subcategoria        query  string  false  "Nivel 1 de categoría"
// @Param        subsubcategoria     query  string  false  "Nivel 2 de categoría"
// @Param        subsubsubcategoria  query  string  false  "Nivel 3 de categoría"
// @Param        buscar              query  string  false  "Término de búsqueda"
// @Success      200  {object}  dto.BrowseResponse
// @Router       /api/productos [get]
func (h *CatalogHandler) Browse(c *fiber.Ctx) error {
	out := h.catalog.Browse(c.Context(), pathFromQuery(c), searchFromQuery(c))
	return c.JSON(out)
}

// Detail godoc
// @Summary      Obtener producto por ID
// @Tags         catalogo
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	p := h.products.GetByID(c.Context(), id)
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.ToProductResponse(p))
}

// Featured godoc
// @Summary      Productos destacados de la portada
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/destacados [get]
func (h *CatalogHandler) Featured(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Featured(c.Context()))
}

// Categories godoc
// @Summary      Hijos inmediatos de una ruta de categoría
// @Tags         catalogo
// @Produce      json
// @Param        categoria           query  string  false  "Nivel 0 de categoría"
// @Param        subcategoria        query  string  false  "Nivel 1 de categoría"
// @Param        subsubcategoria     query  string  false  "Nivel 2 de categoría"
// @Param        subsubsubcategoria  query  string  false  "Nivel 3 de categoría"
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/categorias [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Categories(pathFromQuery(c)))
}
