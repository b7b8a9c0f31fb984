package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camisetasbahia/catalogo-api/internal/application/dto"
	"github.com/camisetasbahia/catalogo-api/internal/application/usecase"
	"github.com/camisetasbahia/catalogo-api/internal/domain"
	"github.com/camisetasbahia/catalogo-api/internal/domain/entity"
	"github.com/camisetasbahia/catalogo-api/internal/domain/taxonomy"
	"github.com/camisetasbahia/catalogo-api/pkg/logger"
)

func newService(repo *fakeRepo) *usecase.ProductService {
	return usecase.NewProductService(repo, taxonomy.Default(), logger.Nop())
}

func ptr(s string) *string { return &s }

func admin() *entity.Actor {
	return &entity.Actor{ID: "1", Email: "admin@camisetasbahia.com", Role: "admin"}
}

func altaValida() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        ptr("Camiseta Boca 2024"),
		Category:    "adulto",
		Subcategory: "futbol",
		Images:      []string{"https://example.com/boca.jpg"},
		Sizes:       []string{"S", "M"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — normalización de escritura
// ──────────────────────────────────────────────────────────────────────────────

// Temporada y marca ausentes se persisten como "" (nunca null); description
// ausente queda null. El actor queda estampado en user_id.
func TestCreate_NormalizaCamposOpcionales(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo)

	p, err := svc.Create(context.Background(), admin(), altaValida())
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "", p.Temporada)
	assert.Equal(t, "", p.Marca)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Price)
	assert.Equal(t, "1", p.UserID)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	require.Len(t, repo.products, 1)
}

// Sin actor autenticado, las escrituras se atribuyen al usuario "system".
func TestCreate_SinActorUsaSystem(t *testing.T) {
	svc := newService(&fakeRepo{})
	p, err := svc.Create(context.Background(), nil, altaValida())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.SystemUserID, p.UserID)
}

func TestCreate_ValidacionBloqueaAntesDelStore(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo)

	casos := []struct {
		nombre string
		mutar  func(*dto.CreateProductRequest)
	}{
		{"sin categoría", func(in *dto.CreateProductRequest) { in.Category = "" }},
		{"sin subcategoría", func(in *dto.CreateProductRequest) { in.Subcategory = "" }},
		{"sin talles", func(in *dto.CreateProductRequest) { in.Sizes = nil }},
		{"sin imágenes", func(in *dto.CreateProductRequest) { in.Images = nil }},
		{"nivel 3 sin nivel 2", func(in *dto.CreateProductRequest) { in.Subsubsubcategory = ptr("selecciones-nacionales") }},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := altaValida()
			c.mutar(&in)
			p, err := svc.Create(context.Background(), admin(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, p)
		})
	}
	assert.Empty(t, repo.products, "la validación no debe llegar al store")
}

// Un fallo del store degrada a (nil, nil): sin error hacia arriba.
func TestCreate_FalloDelStoreDegradaANil(t *testing.T) {
	svc := newService(&fakeRepo{createErr: errStore})
	p, err := svc.Create(context.Background(), admin(), altaValida())
	assert.NoError(t, err)
	assert.Nil(t, p)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateMany — derivación de nombres
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateMany_DerivaNombres(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo)

	base := altaValida()
	base.Name = ptr("Nombre Base")
	base.Subsubcategory = ptr("bermudas")
	in := dto.CreateManyRequest{
		Base: base,
		Variants: []dto.VariantInput{
			{Image: "https://example.com/1.jpg", Name: "Nombre Propio"},
			{Image: "https://example.com/2.jpg"},
		},
	}
	list, err := svc.CreateMany(context.Background(), admin(), in)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Nombre Propio", *list[0].Name, "la variante con nombre lo conserva")
	assert.Equal(t, "Nombre Base", *list[1].Name, "sin nombre de variante hereda el de base")
	assert.Equal(t, []string{"https://example.com/1.jpg"}, list[0].Images,
		"cada producto lleva solo la imagen de su variante")
}

// Sin nombre de variante ni de base, se deriva del árbol de categorías.
func TestCreateMany_NombreDerivadoDelArbol(t *testing.T) {
	svc := newService(&fakeRepo{})
	base := altaValida()
	base.Name = nil
	base.Subsubcategory = ptr("bermudas")
	list, err := svc.CreateMany(context.Background(), admin(), dto.CreateManyRequest{
		Base:     base,
		Variants: []dto.VariantInput{{Image: "https://example.com/1.jpg"}},
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Adulto - Fútbol - Bermudas", *list[0].Name)
}

func TestCreateMany_SinVariantesEsInvalido(t *testing.T) {
	svc := newService(&fakeRepo{})
	list, err := svc.CreateMany(context.Background(), admin(), dto.CreateManyRequest{Base: altaValida()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, list)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — reemplazo parcial con re-estampado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ReemplazaSoloLoProvisto(t *testing.T) {
	precio := decimal.NewFromInt(9999)
	existente := &entity.Product{
		ID:          "p1",
		Name:        ptr("Original"),
		Category:    "adulto",
		Subcategory: "futbol",
		Price:       &precio,
		Images:      []string{"https://example.com/a.jpg"},
		Temporada:   "2023",
		Marca:       "Nike",
		Description: ptr("desc vieja"),
		Sizes:       []string{"M"},
		UserID:      entity.SystemUserID,
	}
	repo := &fakeRepo{products: []*entity.Product{existente}}
	svc := newService(repo)

	nuevo, err := svc.Update(context.Background(), admin(), "p1", dto.UpdateProductRequest{
		Name: ptr("Renombrado"),
	})
	require.NoError(t, err)
	require.NotNil(t, nuevo)

	assert.Equal(t, "Renombrado", *nuevo.Name)
	assert.Equal(t, "adulto", nuevo.Category, "los campos no provistos no se tocan")
	assert.True(t, precio.Equal(*nuevo.Price))
	// Temporada, marca y description se reescriben siempre, como en el alta.
	assert.Equal(t, "", nuevo.Temporada)
	assert.Equal(t, "", nuevo.Marca)
	assert.Nil(t, nuevo.Description)
	assert.Equal(t, "1", nuevo.UserID, "el actor del update queda estampado")
}

// Limpiar el nivel 2 dejando el nivel 3 produciría una ruta con hueco: se
// rechaza antes del store y el producto guardado no cambia.
func TestUpdate_RutaConHuecoEsInvalida(t *testing.T) {
	existente := &entity.Product{
		ID:                "p1",
		Name:              ptr("Camiseta"),
		Category:          "adulto",
		Subcategory:       "futbol",
		Subsubcategory:    ptr("camisetas"),
		Subsubsubcategory: ptr("selecciones-nacionales"),
		Sizes:             []string{"M"},
		UserID:            entity.SystemUserID,
	}
	repo := &fakeRepo{products: []*entity.Product{existente}}
	svc := newService(repo)

	p, err := svc.Update(context.Background(), admin(), "p1", dto.UpdateProductRequest{
		Subsubcategory: ptr(""),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, p)
	require.NotNil(t, repo.products[0].Subsubcategory, "el producto guardado no debe quedar a medio modificar")
	assert.Equal(t, "camisetas", *repo.products[0].Subsubcategory)

	// Agregar nivel 3 a un producto sin nivel 2 también es un hueco.
	repo.products = append(repo.products, &entity.Product{
		ID: "p2", Name: ptr("Bermuda"), Category: "adulto", Subcategory: "futbol",
		Sizes: []string{"M"}, UserID: entity.SystemUserID,
	})
	p, err = svc.Update(context.Background(), admin(), "p2", dto.UpdateProductRequest{
		Subsubsubcategory: ptr("selecciones-nacionales"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, p)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	svc := newService(&fakeRepo{})
	p, err := svc.Update(context.Background(), admin(), "no-existe", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, p)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas y borrado — política de degradar a vacío
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FalloDelStoreDevuelveVacio(t *testing.T) {
	svc := newService(&fakeRepo{listErr: errStore})
	assert.Empty(t, svc.List(context.Background()))
}

func TestGetByID_InexistenteDevuelveNil(t *testing.T) {
	svc := newService(&fakeRepo{})
	assert.Nil(t, svc.GetByID(context.Background(), "nada"))
}

func TestDelete_FalloDelStoreDevuelveFalse(t *testing.T) {
	svc := newService(&fakeRepo{deleteErr: errStore})
	assert.False(t, svc.Delete(context.Background(), "p1"))
}

func TestDelete_Existente(t *testing.T) {
	repo := &fakeRepo{products: []*entity.Product{{ID: "p1"}}}
	svc := newService(repo)
	assert.True(t, svc.Delete(context.Background(), "p1"))
	assert.Empty(t, repo.products)
}

// ──────────────────────────────────────────────────────────────────────────────
// EnsureSeed
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureSeed_SoloConTablaVacia(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo)

	svc.EnsureSeed(context.Background())
	require.Len(t, repo.products, 3, "con tabla vacía se insertan los productos iniciales")

	svc.EnsureSeed(context.Background())
	assert.Len(t, repo.products, 3, "con datos existentes no se vuelve a sembrar")
}

// El catálogo inicial se siembra tal cual estaba cargado en producción.
func TestEnsureSeed_DatosIniciales(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo)
	svc.EnsureSeed(context.Background())
	require.Len(t, repo.products, 3)

	arg := repo.products[0]
	require.NotNil(t, arg.Name)
	assert.Equal(t, "Argentina 2022 Campeón", *arg.Name)
	assert.Equal(t, "selecciones-nacionales", *arg.Subsubsubcategory)
	assert.Nil(t, arg.Description)
	assert.Equal(t, "Adidas", arg.Marca)
	require.Len(t, arg.Images, 2)
	assert.Contains(t, arg.Images[0], "photo-1671465317593")

	river := repo.products[2]
	assert.Equal(t, "River Plate Retro 1986", *river.Name)
	assert.Equal(t, "camisetas-retro", *river.Subsubcategory)
	assert.Equal(t, "1986", river.Temporada)
	assert.True(t, river.Price.Equal(decimal.NewFromInt(19999)))
}

func TestEnsureSeed_FalloDelStoreNoEsFatal(t *testing.T) {
	repo := &fakeRepo{countErr: errStore}
	svc := newService(repo)
	svc.EnsureSeed(context.Background()) // no debe entrar en pánico
	assert.Zero(t, repo.batchCalls)
}
