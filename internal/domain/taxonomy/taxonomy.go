// Package taxonomy modela el árbol estático de categorías de la tienda: hasta
// cuatro niveles (categoría → subcategoría → sub-subcategoría →
// sub-sub-subcategoría). El árbol se define una vez al inicio y nunca muta.
//
// Todas las búsquedas recorren la ruta completa desde la raíz: los ids solo son
// únicos entre hermanos, así que resolver por id suelto sería ambiguo.
package taxonomy

import "strings"

// Node es un nodo del árbol de categorías. Children vacío = hoja.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Children []Node `json:"children"`
}

// Path es una clave parcial de 0 a 4 niveles ("" = nivel ausente). Un nivel
// solo puede estar presente si todos los anteriores lo están; esa invariante la
// garantiza quien construye el Path (la capa HTTP), aquí solo se recorre en
// orden y se corta en el primer nivel ausente o irresoluble.
type Path struct {
	Level0 string
	Level1 string
	Level2 string
	Level3 string
}

// Levels devuelve los niveles en orden raíz → hoja.
func (p Path) Levels() [4]string {
	return [4]string{p.Level0, p.Level1, p.Level2, p.Level3}
}

// IsAll indica que la ruta no restringe nada: nivel 0 ausente o el centinela
// "todos" de la tienda.
func (p Path) IsAll() bool {
	return p.Level0 == "" || p.Level0 == AllSentinel
}

// AllSentinel es el valor del parámetro categoria que significa "sin filtro".
const AllSentinel = "todos"

// Crumb es una entrada de la miga de pan (breadcrumb).
type Crumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tree es el árbol inmutable de categorías.
type Tree struct {
	roots []Node
}

// New construye un árbol a partir de sus raíces.
func New(roots []Node) *Tree {
	return &Tree{roots: roots}
}

// Roots devuelve las categorías principales en orden de definición.
func (t *Tree) Roots() []Node {
	return t.roots
}

// Resolve recorre level0..level3 en orden y devuelve los nodos resueltos.
// Un id inexistente en la profundidad esperada no es un error: simplemente
// corta la resolución ahí. Nunca entra en pánico ni devuelve error.
func (t *Tree) Resolve(p Path) []Node {
	var resolved []Node
	siblings := t.roots
	for _, id := range p.Levels() {
		if id == "" {
			break
		}
		node, ok := findChild(siblings, id)
		if !ok {
			break
		}
		resolved = append(resolved, node)
		siblings = node.Children
	}
	return resolved
}

// ResolveName resuelve la ruta y une los nombres con sep. Si ningún nivel
// resuelve devuelve fallback. Los dos consumidores de la tienda usan
// separadores distintos: " - " para nombres generados de producto y " › "
// para títulos de página.
func (t *Tree) ResolveName(p Path, sep, fallback string) string {
	nodes := t.Resolve(p)
	if len(nodes) == 0 {
		return fallback
	}
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	return strings.Join(names, sep)
}

// DisplayName devuelve el nombre generado de producto para la ruta
// ("Adulto - Fútbol - Camisetas"), con fallback "Producto".
func (t *Tree) DisplayName(p Path) string {
	return t.ResolveName(p, " - ", "Producto")
}

// Title devuelve el título de página para la ruta ("Adulto › Fútbol"), con
// fallback "Todas las Categorías".
func (t *Tree) Title(p Path) string {
	return t.ResolveName(p, " › ", "Todas las Categorías")
}

// ChildrenOf devuelve los hijos inmediatos del nodo más profundo resuelto.
// Si la ruta está vacía devuelve las raíces; si no resuelve ningún nivel o el
// nodo es hoja, devuelve vacío.
func (t *Tree) ChildrenOf(p Path) []Node {
	if p.Levels() == ([4]string{}) {
		return t.roots
	}
	nodes := t.Resolve(p)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[len(nodes)-1].Children
}

// Breadcrumbs devuelve la miga de pan de la ruta: los pares id/nombre de cada
// nivel resuelto, cortando en el primer fallo sin lanzar error.
func (t *Tree) Breadcrumbs(p Path) []Crumb {
	nodes := t.Resolve(p)
	crumbs := make([]Crumb, 0, len(nodes))
	for _, n := range nodes {
		crumbs = append(crumbs, Crumb{ID: n.ID, Name: n.Name})
	}
	return crumbs
}

func findChild(siblings []Node, id string) (Node, bool) {
	for _, n := range siblings {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
