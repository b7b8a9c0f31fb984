package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/camisetasbahia/catalogo-api/internal/domain"
	"github.com/camisetasbahia/catalogo-api/internal/domain/entity"
	"github.com/camisetasbahia/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category, subcategory, subsubcategory, subsubsubcategory,
	       price, images, temporada, marca, description, sizes, created_at, updated_at, user_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool, tx o mock vía Querier).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve todos los productos ordenados por created_at descendente.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Count devuelve la cantidad total de productos (usado por la siembra inicial).
func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query, productArgs(p)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// CreateBatch inserta el lote completo en una sola sentencia multi-fila: o se
// persisten todos los productos del lote o ninguno.
func (r *ProductRepo) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	const cols = 15
	placeholders := make([]string, 0, len(products))
	args := make([]any, 0, len(products)*cols)
	for i, p := range products {
		row := make([]string, cols)
		for j := range row {
			row[j] = fmt.Sprintf("$%d", i*cols+j+1)
		}
		placeholders = append(placeholders, "("+strings.Join(row, ", ")+")")
		args = append(args, productArgs(p)...)
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ` + strings.Join(placeholders, ", ")
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert product batch: %w", err)
	}
	return nil
}

// Update reemplaza los campos editables del producto y su updated_at/user_id.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, subcategory = $4, subsubcategory = $5,
		       subsubsubcategory = $6, price = $7, images = $8, temporada = $9, marca = $10,
		       description = $11, sizes = $12, updated_at = $13, user_id = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.Subcategory, p.Subsubcategory, p.Subsubsubcategory,
		p.Price, p.Images, p.Temporada, p.Marca, p.Description, p.Sizes, p.UpdatedAt, p.UserID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. Devuelve false si no existía.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar scanProduct.
type pgxScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Subcategory, &p.Subsubcategory, &p.Subsubsubcategory,
		&p.Price, &p.Images, &p.Temporada, &p.Marca, &p.Description, &p.Sizes,
		&p.CreatedAt, &p.UpdatedAt, &p.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func productArgs(p *entity.Product) []any {
	return []any{
		p.ID, p.Name, p.Category, p.Subcategory, p.Subsubcategory, p.Subsubsubcategory,
		p.Price, p.Images, p.Temporada, p.Marca, p.Description, p.Sizes,
		p.CreatedAt, p.UpdatedAt, p.UserID,
	}
}
