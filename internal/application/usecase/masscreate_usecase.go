package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/camisetasbahia/catalogo-api/internal/application/dto"
	"github.com/camisetasbahia/catalogo-api/internal/domain"
	"github.com/camisetasbahia/catalogo-api/internal/domain/entity"
	"github.com/camisetasbahia/catalogo-api/internal/domain/repository"
	"github.com/camisetasbahia/catalogo-api/internal/domain/taxonomy"
	"github.com/camisetasbahia/catalogo-api/pkg/logger"
)

// batchSize cantidad de productos por lote de inserción.
const batchSize = 10

// MassCreateUseCase alta masiva de productos: un producto por imagen, talles
// al azar, en lotes secuenciales de batchSize. Un lote fallido se loguea y se
// omite; los demás siguen (éxito parcial).
type MassCreateUseCase struct {
	repo repository.ProductRepository
	tax  *taxonomy.Tree
	log  *logger.Logger
	rnd  *rand.Rand
}

// NewMassCreateUseCase construye el caso de uso. rnd permite fijar la semilla
// en tests; con nil se siembra con el reloj.
func NewMassCreateUseCase(repo repository.ProductRepository, tax *taxonomy.Tree, log *logger.Logger, rnd *rand.Rand) *MassCreateUseCase {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MassCreateUseCase{repo: repo, tax: tax, log: log, rnd: rnd}
}

// MassCreate genera un producto por variante sobre la ruta de categoría dada.
// Cada producto sale sin precio, con el nombre de su variante (o sin nombre) y
// entre 3 y 6 talles elegidos al azar.
func (uc *MassCreateUseCase) MassCreate(ctx context.Context, actor *entity.Actor, in dto.MassCreateRequest) (*dto.MassCreateResponse, error) {
	if in.Category == "" {
		return nil, fmt.Errorf("%w: debe seleccionar una categoría", domain.ErrInvalidInput)
	}
	if in.Subcategory == "" {
		return nil, fmt.Errorf("%w: debe seleccionar una subcategoría", domain.ErrInvalidInput)
	}
	// La ruta no admite huecos: nivel 3 solo con nivel 2 presente.
	if in.Subsubsubcategory != "" && in.Subsubcategory == "" {
		return nil, fmt.Errorf("%w: la sub-sub-subcategoría requiere sub-subcategoría", domain.ErrInvalidInput)
	}
	variants := make([]dto.VariantInput, 0, len(in.Variants))
	for _, v := range in.Variants {
		if v.Image != "" {
			variants = append(variants, v)
		}
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: debe agregar al menos una imagen válida", domain.ErrInvalidInput)
	}

	path := taxonomy.Path{
		Level0: in.Category,
		Level1: in.Subcategory,
		Level2: in.Subsubcategory,
		Level3: in.Subsubsubcategory,
	}
	products := make([]*entity.Product, 0, len(variants))
	for _, v := range variants {
		var name *string
		if v.Name != "" {
			n := v.Name
			name = &n
		}
		products = append(products, uc.newProduct(actor, path, name, nil, v.Image))
	}
	created := uc.insertBatches(ctx, products)
	return &dto.MassCreateResponse{
		Requested: len(products),
		Created:   created,
		Path:      uc.tax.ResolveName(path, " > ", ""),
	}, nil
}

// CreatePreset genera count productos con el preset dado (nombres, precios e
// imágenes predefinidos).
func (uc *MassCreateUseCase) CreatePreset(ctx context.Context, actor *entity.Actor, name string, count int) (*dto.MassCreateResponse, error) {
	pre, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: preset desconocido: %s", domain.ErrInvalidInput, name)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput)
	}

	products := make([]*entity.Product, 0, count)
	for i := 0; i < count; i++ {
		image := pre.images[uc.rnd.Intn(len(pre.images))]
		products = append(products, uc.newProduct(actor, pre.path, pre.name(uc.rnd), pre.price(uc.rnd), image))
	}
	created := uc.insertBatches(ctx, products)
	return &dto.MassCreateResponse{
		Requested: count,
		Created:   created,
		Path:      uc.tax.ResolveName(pre.path, " > ", ""),
	}, nil
}

func (uc *MassCreateUseCase) newProduct(actor *entity.Actor, path taxonomy.Path, name *string, price *decimal.Decimal, image string) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:                uuid.New().String(),
		Name:              name,
		Category:          path.Level0,
		Subcategory:       path.Level1,
		Subsubcategory:    optLevel(path.Level2),
		Subsubsubcategory: optLevel(path.Level3),
		Price:             price,
		Images:            []string{image},
		Temporada:         "",
		Marca:             "",
		Description:       nil,
		Sizes:             uc.randomSizes(),
		CreatedAt:         now,
		UpdatedAt:         now,
		UserID:            actor.UserID(),
	}
}

// randomSizes elige entre 3 y 6 talles distintos al azar.
func (uc *MassCreateUseCase) randomSizes() []string {
	n := 3 + uc.rnd.Intn(4)
	perm := uc.rnd.Perm(len(entity.AllSizes))
	sizes := make([]string, 0, n)
	for _, i := range perm[:n] {
		sizes = append(sizes, entity.AllSizes[i])
	}
	return sizes
}

// insertBatches persiste en lotes secuenciales de batchSize y devuelve cuántos
// productos quedaron guardados.
func (uc *MassCreateUseCase) insertBatches(ctx context.Context, products []*entity.Product) int {
	created := 0
	for start := 0; start < len(products); start += batchSize {
		end := start + batchSize
		if end > len(products) {
			end = len(products)
		}
		batch := products[start:end]
		if err := uc.repo.CreateBatch(ctx, batch); err != nil {
			uc.log.Error().Err(err).
				Int("lote", start/batchSize+1).
				Int("cantidad", len(batch)).
				Msg("insertar lote de productos")
			continue
		}
		created += len(batch)
	}
	return created
}

func optLevel(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
