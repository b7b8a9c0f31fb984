package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/camisetasbahia/catalogo-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. Los campos nullable del
// esquema (name, price, description y los niveles profundos de categoría)
// viajan como punteros; temporada y marca ausentes se normalizan a "".
type CreateProductRequest struct {
	Name              *string          `json:"name"`
	Category          string           `json:"category" validate:"required"`
	Subcategory       string           `json:"subcategory" validate:"required"`
	Subsubcategory    *string          `json:"subsubcategory"`
	Subsubsubcategory *string          `json:"subsubsubcategory"`
	Price             *decimal.Decimal `json:"price"`
	Images            []string         `json:"images"`
	Temporada         *string          `json:"temporada"`
	Marca             *string          `json:"marca"`
	Description       *string          `json:"description"`
	Sizes             []string         `json:"sizes"`
}

// UpdateProductRequest entrada para actualizar un producto. Los campos en nil
// no se tocan, salvo temporada, marca y description que se reemplazan siempre
// (ausente → ""/null), igual que en el alta. Un nivel profundo de categoría en
// "" lo limpia a null.
type UpdateProductRequest struct {
	Name              *string          `json:"name"`
	Category          *string          `json:"category"`
	Subcategory       *string          `json:"subcategory"`
	Subsubcategory    *string          `json:"subsubcategory"`
	Subsubsubcategory *string          `json:"subsubsubcategory"`
	Price             *decimal.Decimal `json:"price"`
	Images            []string         `json:"images"`
	Temporada         *string          `json:"temporada"`
	Marca             *string          `json:"marca"`
	Description       *string          `json:"description"`
	Sizes             []string         `json:"sizes"`
}

// VariantInput un par (imagen, nombre opcional) que genera un producto.
type VariantInput struct {
	Image string `json:"image" validate:"required"`
	Name  string `json:"name"`
}

// CreateManyRequest alta de varios productos a partir de una base común y una
// variante por producto.
type CreateManyRequest struct {
	Base     CreateProductRequest `json:"base"`
	Variants []VariantInput       `json:"variants" validate:"required,min=1"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string           `json:"id"`
	Name              *string          `json:"name"`
	Category          string           `json:"category"`
	Subcategory       string           `json:"subcategory"`
	Subsubcategory    *string          `json:"subsubcategory"`
	Subsubsubcategory *string          `json:"subsubsubcategory"`
	Price             *decimal.Decimal `json:"price"`
	Images            []string         `json:"images"`
	Temporada         string           `json:"temporada"`
	Marca             string           `json:"marca"`
	Description       *string          `json:"description"`
	Sizes             []string         `json:"sizes"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	UserID            string           `json:"user_id"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ToProductResponse convierte la entidad a su representación de salida.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Subcategory:       p.Subcategory,
		Subsubcategory:    p.Subsubcategory,
		Subsubsubcategory: p.Subsubsubcategory,
		Price:             p.Price,
		Images:            p.Images,
		Temporada:         p.Temporada,
		Marca:             p.Marca,
		Description:       p.Description,
		Sizes:             p.Sizes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		UserID:            p.UserID,
	}
}

// ToProductList convierte un slice de entidades a la lista de salida.
func ToProductList(list []*entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}
