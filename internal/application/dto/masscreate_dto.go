package dto

// MassCreateRequest alta masiva de productos con imágenes para una ruta de
// categoría. Variants trae una imagen (y nombre opcional) por producto.
type MassCreateRequest struct {
	Category          string         `json:"category" validate:"required"`
	Subcategory       string         `json:"subcategory" validate:"required"`
	Subsubcategory    string         `json:"subsubcategory"`
	Subsubsubcategory string         `json:"subsubsubcategory"`
	Variants          []VariantInput `json:"variants" validate:"required,min=1"`
}

// PresetCreateRequest alta masiva con un preset fijo (bermudas, chupines):
// Count productos con imágenes elegidas al azar del pool del preset.
type PresetCreateRequest struct {
	Count int `json:"count" validate:"required,min=1"`
}

// MassCreateResponse resultado del alta masiva. Created refleja solo los
// productos que realmente se persistieron (los lotes fallidos se omiten).
type MassCreateResponse struct {
	Requested int    `json:"requested"`
	Created   int    `json:"created"`
	Path      string `json:"path"`
}
