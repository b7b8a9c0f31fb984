package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camisetasbahia/catalogo-api/internal/domain/taxonomy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Resolve — resolución por ruta completa
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_RutaCompletaCuatroNiveles(t *testing.T) {
	tree := taxonomy.Default()
	nodes := tree.Resolve(taxonomy.Path{
		Level0: "adulto",
		Level1: "futbol",
		Level2: "camisetas",
		Level3: "selecciones-nacionales",
	})
	require.Len(t, nodes, 4)
	assert.Equal(t, "Adulto", nodes[0].Name)
	assert.Equal(t, "Fútbol", nodes[1].Name)
	assert.Equal(t, "Camisetas", nodes[2].Name)
	assert.Equal(t, "Selecciones Nacionales", nodes[3].Name)
}

// Un id inexistente en el nivel intermedio corta la resolución ahí, sin error.
func TestResolve_IdInvalidoTruncaSinError(t *testing.T) {
	tree := taxonomy.Default()
	nodes := tree.Resolve(taxonomy.Path{
		Level0: "adulto",
		Level1: "futbol",
		Level2: "no-existe",
		Level3: "selecciones-nacionales",
	})
	require.Len(t, nodes, 2, "debe resolver solo hasta el último nivel válido")
	assert.Equal(t, "futbol", nodes[1].ID)
}

// Los ids solo son únicos entre hermanos: "camisetas" bajo básquet no existe
// aunque exista bajo fútbol.
func TestResolve_IdNoResuelveFueraDeSuRama(t *testing.T) {
	tree := taxonomy.Default()
	nodes := tree.Resolve(taxonomy.Path{Level0: "adulto", Level1: "basquet", Level2: "camisetas"})
	require.Len(t, nodes, 2)
	assert.Equal(t, "basquet", nodes[1].ID)
}

func TestResolve_RutaVacia(t *testing.T) {
	tree := taxonomy.Default()
	assert.Empty(t, tree.Resolve(taxonomy.Path{}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Breadcrumbs y nombres derivados
// ──────────────────────────────────────────────────────────────────────────────

func TestBreadcrumbs_TruncaEnPrimerFallo(t *testing.T) {
	tree := taxonomy.Default()
	crumbs := tree.Breadcrumbs(taxonomy.Path{Level0: "adulto", Level1: "inexistente", Level2: "camisetas"})
	require.Len(t, crumbs, 1)
	assert.Equal(t, taxonomy.Crumb{ID: "adulto", Name: "Adulto"}, crumbs[0])
}

func TestDisplayName_UneConGuionYFallback(t *testing.T) {
	tree := taxonomy.Default()
	assert.Equal(t, "Adulto - Fútbol - Bermudas",
		tree.DisplayName(taxonomy.Path{Level0: "adulto", Level1: "futbol", Level2: "bermudas"}))
	assert.Equal(t, "Producto", tree.DisplayName(taxonomy.Path{Level0: "nada"}))
}

func TestTitle_UneConFlechaYFallback(t *testing.T) {
	tree := taxonomy.Default()
	assert.Equal(t, "Adulto › Fútbol",
		tree.Title(taxonomy.Path{Level0: "adulto", Level1: "futbol"}))
	assert.Equal(t, "Todas las Categorías", tree.Title(taxonomy.Path{}))
}

// ──────────────────────────────────────────────────────────────────────────────
// ChildrenOf — navegación
// ──────────────────────────────────────────────────────────────────────────────

func TestChildrenOf_RutaVaciaDevuelveRaices(t *testing.T) {
	tree := taxonomy.Default()
	roots := tree.ChildrenOf(taxonomy.Path{})
	require.Len(t, roots, 2)
	assert.Equal(t, "adulto", roots[0].ID)
	assert.Equal(t, "nino", roots[1].ID)
}

func TestChildrenOf_NodoIntermedio(t *testing.T) {
	tree := taxonomy.Default()
	children := tree.ChildrenOf(taxonomy.Path{Level0: "adulto", Level1: "futbol"})
	ids := make([]string, 0, len(children))
	for _, c := range children {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"bermudas", "camisetas", "camisetas-retro", "chupines-entrenamiento"}, ids)
}

func TestChildrenOf_HojaDevuelveVacio(t *testing.T) {
	tree := taxonomy.Default()
	assert.Empty(t, tree.ChildrenOf(taxonomy.Path{Level0: "nino"}))
}

func TestChildrenOf_RutaInexistenteDevuelveNil(t *testing.T) {
	tree := taxonomy.Default()
	assert.Nil(t, tree.ChildrenOf(taxonomy.Path{Level0: "no-existe"}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Path.IsAll — centinela "todos"
// ──────────────────────────────────────────────────────────────────────────────

func TestPathIsAll(t *testing.T) {
	assert.True(t, taxonomy.Path{}.IsAll())
	assert.True(t, taxonomy.Path{Level0: taxonomy.AllSentinel}.IsAll())
	assert.False(t, taxonomy.Path{Level0: "adulto"}.IsAll())
}
