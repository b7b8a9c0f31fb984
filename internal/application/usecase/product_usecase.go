package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/camisetasbahia/catalogo-api/internal/application/dto"
	"github.com/camisetasbahia/catalogo-api/internal/domain"
	"github.com/camisetasbahia/catalogo-api/internal/domain/entity"
	"github.com/camisetasbahia/catalogo-api/internal/domain/repository"
	"github.com/camisetasbahia/catalogo-api/internal/domain/taxonomy"
	"github.com/camisetasbahia/catalogo-api/pkg/logger"
)

// ProductService casos de uso CRUD sobre el catálogo.
//
// Política de errores: los fallos de validación se devuelven como error
// (envuelven domain.ErrInvalidInput / ErrNotFound) antes de tocar el store;
// los fallos del store se loguean y degradan a resultado nil/vacío/false con
// error nil. Para quien llama, un resultado vacío es la única señal de fallo
// del store.
type ProductService struct {
	repo repository.ProductRepository
	tax  *taxonomy.Tree
	log  *logger.Logger
}

// NewProductService construye el servicio.
func NewProductService(repo repository.ProductRepository, tax *taxonomy.Tree, log *logger.Logger) *ProductService {
	return &ProductService{repo: repo, tax: tax, log: log}
}

// List devuelve todos los productos, más recientes primero. Nunca devuelve
// error: un fallo del store se loguea y resulta en lista vacía.
func (s *ProductService) List(ctx context.Context) []*entity.Product {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listar productos")
		return nil
	}
	return list
}

// GetByID devuelve el producto o nil (inexistente o fallo del store).
func (s *ProductService) GetByID(ctx context.Context, id string) *entity.Product {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("obtener producto")
		return nil
	}
	return p
}

// Create da de alta un producto nuevo. El error devuelto es siempre de
// validación; un fallo del store degrada a (nil, nil).
func (s *ProductService) Create(ctx context.Context, actor *entity.Actor, in dto.CreateProductRequest) (*entity.Product, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	if len(in.Images) == 0 {
		return nil, fmt.Errorf("%w: debe agregar al menos una imagen válida", domain.ErrInvalidInput)
	}
	now := time.Now()
	p := &entity.Product{
		ID:                uuid.New().String(),
		Name:              normalizeOpt(in.Name),
		Category:          in.Category,
		Subcategory:       in.Subcategory,
		Subsubcategory:    normalizeOpt(in.Subsubcategory),
		Subsubsubcategory: normalizeOpt(in.Subsubsubcategory),
		Price:             in.Price,
		Images:            in.Images,
		Temporada:         strOrEmpty(in.Temporada),
		Marca:             strOrEmpty(in.Marca),
		Description:       normalizeOpt(in.Description),
		Sizes:             in.Sizes,
		CreatedAt:         now,
		UpdatedAt:         now,
		UserID:            actor.UserID(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error().Err(err).Msg("crear producto")
		return nil, nil
	}
	return p, nil
}

// CreateMany da de alta un producto por variante, heredando base. El nombre de
// cada producto es el de la variante; si falta, el de base; si también falta,
// el nombre derivado del árbol de categorías (" - ", fallback "Producto").
// Las imágenes de cada producto se reemplazan por la única imagen de su
// variante. Devuelve los productos persistidos (vacío si el lote falló).
func (s *ProductService) CreateMany(ctx context.Context, actor *entity.Actor, in dto.CreateManyRequest) ([]*entity.Product, error) {
	if err := validateCreate(in.Base); err != nil {
		return nil, err
	}
	if len(in.Variants) == 0 {
		return nil, fmt.Errorf("%w: debe agregar al menos una imagen válida", domain.ErrInvalidInput)
	}
	derived := s.tax.DisplayName(taxonomy.Path{
		Level0: in.Base.Category,
		Level1: in.Base.Subcategory,
		Level2: strOrEmpty(in.Base.Subsubcategory),
		Level3: strOrEmpty(in.Base.Subsubsubcategory),
	})

	now := time.Now()
	products := make([]*entity.Product, 0, len(in.Variants))
	for _, v := range in.Variants {
		name := v.Name
		if name == "" && in.Base.Name != nil {
			name = *in.Base.Name
		}
		if name == "" {
			name = derived
		}
		products = append(products, &entity.Product{
			ID:                uuid.New().String(),
			Name:              &name,
			Category:          in.Base.Category,
			Subcategory:       in.Base.Subcategory,
			Subsubcategory:    normalizeOpt(in.Base.Subsubcategory),
			Subsubsubcategory: normalizeOpt(in.Base.Subsubsubcategory),
			Price:             in.Base.Price,
			Images:            []string{v.Image},
			Temporada:         strOrEmpty(in.Base.Temporada),
			Marca:             strOrEmpty(in.Base.Marca),
			Description:       normalizeOpt(in.Base.Description),
			Sizes:             in.Base.Sizes,
			CreatedAt:         now,
			UpdatedAt:         now,
			UserID:            actor.UserID(),
		})
	}
	if err := s.repo.CreateBatch(ctx, products); err != nil {
		s.log.Error().Err(err).Int("cantidad", len(products)).Msg("crear productos múltiples")
		return nil, nil
	}
	return products, nil
}

// Update reemplaza los campos provistos y siempre vuelve a estampar
// temporada/marca/description (ausente → ""/null), updated_at y user_id, igual
// que el alta. Devuelve (nil, ErrNotFound) si el producto no existe y
// (nil, nil) ante un fallo del store.
func (s *ProductService) Update(ctx context.Context, actor *entity.Actor, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("obtener producto para actualizar")
		return nil, nil
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	// Trabajar sobre una copia: si la validación corta, el original no queda
	// a medio modificar.
	copia := *p
	p = &copia

	if in.Name != nil {
		p.Name = normalizeOpt(in.Name)
	}
	if in.Category != nil && *in.Category != "" {
		p.Category = *in.Category
	}
	if in.Subcategory != nil && *in.Subcategory != "" {
		p.Subcategory = *in.Subcategory
	}
	if in.Subsubcategory != nil {
		p.Subsubcategory = normalizeOpt(in.Subsubcategory)
	}
	if in.Subsubsubcategory != nil {
		p.Subsubsubcategory = normalizeOpt(in.Subsubsubcategory)
	}
	// La ruta resultante no admite huecos: nivel 3 solo con nivel 2 presente.
	if p.Subsubsubcategory != nil && p.Subsubcategory == nil {
		return nil, fmt.Errorf("%w: la sub-sub-subcategoría requiere sub-subcategoría", domain.ErrInvalidInput)
	}
	if in.Price != nil {
		p.Price = in.Price
	}
	if in.Images != nil {
		p.Images = in.Images
	}
	if in.Sizes != nil {
		p.Sizes = in.Sizes
	}
	// Estos tres se reescriben siempre, como en el alta.
	p.Temporada = strOrEmpty(in.Temporada)
	p.Marca = strOrEmpty(in.Marca)
	p.Description = normalizeOpt(in.Description)
	p.UpdatedAt = time.Now()
	p.UserID = actor.UserID()

	if err := s.repo.Update(ctx, p); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("actualizar producto")
		return nil, nil
	}
	return p, nil
}

// Delete elimina un producto. Devuelve false tanto si no existía como si el
// store falló (el fallo queda logueado).
func (s *ProductService) Delete(ctx context.Context, id string) bool {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("eliminar producto")
		return false
	}
	return ok
}

// ── validación ────────────────────────────────────────────────────────────────

func validateCreate(in dto.CreateProductRequest) error {
	if in.Category == "" {
		return fmt.Errorf("%w: debe seleccionar una categoría", domain.ErrInvalidInput)
	}
	if in.Subcategory == "" {
		return fmt.Errorf("%w: debe seleccionar una subcategoría", domain.ErrInvalidInput)
	}
	// Un nivel profundo solo puede venir si el anterior vino (sin huecos).
	if strOrEmpty(in.Subsubsubcategory) != "" && strOrEmpty(in.Subsubcategory) == "" {
		return fmt.Errorf("%w: la sub-sub-subcategoría requiere sub-subcategoría", domain.ErrInvalidInput)
	}
	if len(in.Sizes) == 0 {
		return fmt.Errorf("%w: debe seleccionar al menos un talle", domain.ErrInvalidInput)
	}
	return nil
}

// ── normalización de escritura ────────────────────────────────────────────────

// strOrEmpty coerciona nil → "" (regla de temporada y marca).
func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// normalizeOpt colapsa nil y "" a nil (description y niveles opcionales).
func normalizeOpt(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
