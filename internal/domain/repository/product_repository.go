package repository

import (
	"context"

	"github.com/camisetasbahia/catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, product *entity.Product) error
	// CreateBatch inserta el lote completo en una sola sentencia: o entran
	// todos o no entra ninguno.
	CreateBatch(ctx context.Context, products []*entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) (bool, error)
}
