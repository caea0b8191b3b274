package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocksync-api/internal/domain"
	"github.com/jhoicas/stocksync-api/internal/domain/entity"
	"github.com/jhoicas/stocksync-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, name, COALESCE(description, ''), COALESCE(sku, ''), COALESCE(category_id::text, ''),
	quantity, COALESCE(min_quantity, 0), COALESCE(price, 0), COALESCE(cost, 0),
	COALESCE(supplier, ''), COALESCE(location, ''), created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.CategoryID,
		&p.Quantity, &p.MinQuantity, &p.Price, &p.Cost,
		&p.Supplier, &p.Location, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, sku, category_id, quantity, min_quantity, price, cost, supplier, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, nullable(product.Description), nullable(product.SKU),
		nullable(product.CategoryID), product.Quantity, product.MinQuantity,
		product.Price, product.Cost, nullable(product.Supplier), nullable(product.Location),
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene un producto bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción; evita carreras entre ajustes concurrentes.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Update actualiza los datos de catálogo de un producto. No modifica Quantity
// (la cantidad se maneja vía movimientos).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, sku = $4, category_id = $5,
			min_quantity = $6, price = $7, cost = $8, supplier = $9, location = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, nullable(product.Description), nullable(product.SKU),
		nullable(product.CategoryID), product.MinQuantity, product.Price, product.Cost,
		nullable(product.Supplier), nullable(product.Location), product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad del producto (usada por el motor de ajustes).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int, updatedAt time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = $3 WHERE id = $1`,
		id, quantity, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithCategory lista todos los productos con su categoría resuelta (LEFT JOIN),
// del más reciente al más antiguo. search filtra por subcadena en name o sku.
func (r *ProductRepo) ListWithCategory(ctx context.Context, search string) ([]*entity.ProductWithCategory, error) {
	query := `
		SELECT
			p.id, p.name, COALESCE(p.description, ''), COALESCE(p.sku, ''), COALESCE(p.category_id::text, ''),
			p.quantity, COALESCE(p.min_quantity, 0), COALESCE(p.price, 0), COALESCE(p.cost, 0),
			COALESCE(p.supplier, ''), COALESCE(p.location, ''), p.created_at, p.updated_at,
			COALESCE(c.id::text, ''), COALESCE(c.name, ''), COALESCE(c.description, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE $1 = '' OR p.name ILIKE '%' || $1 || '%' OR p.sku ILIKE '%' || $1 || '%'
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductWithCategory
	for rows.Next() {
		var pc entity.ProductWithCategory
		var catID, catName, catDesc string
		if err := rows.Scan(
			&pc.ID, &pc.Name, &pc.Description, &pc.SKU, &pc.CategoryID,
			&pc.Quantity, &pc.MinQuantity, &pc.Price, &pc.Cost,
			&pc.Supplier, &pc.Location, &pc.CreatedAt, &pc.UpdatedAt,
			&catID, &catName, &catDesc,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if catID != "" {
			pc.Category = &entity.Category{ID: catID, Name: catName, Description: catDesc}
		}
		list = append(list, &pc)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
