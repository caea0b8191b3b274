package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stocksync-api/internal/domain/entity"
	"github.com/jhoicas/stocksync-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL. El log es append-only: solo insert y lecturas.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un movimiento en el log.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, reason, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		nullable(movement.Reason), nullable(movement.Notes), movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListRecent devuelve los últimos `limit` movimientos, del más reciente al más
// antiguo, con nombre y SKU del producto resueltos por join.
func (r *StockMovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.StockMovementWithProduct, error) {
	query := `
		SELECT m.id, COALESCE(m.product_id::text, ''), m.type, m.quantity,
			COALESCE(m.reason, ''), COALESCE(m.notes, ''), m.created_at,
			COALESCE(p.name, ''), COALESCE(p.sku, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovementWithProduct
	for rows.Next() {
		var m entity.StockMovementWithProduct
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity,
			&m.Reason, &m.Notes, &m.CreatedAt,
			&m.ProductName, &m.ProductSKU,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByProduct devuelve los movimientos de un producto, del más reciente al más antiguo.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, COALESCE(product_id::text, ''), type, quantity,
			COALESCE(reason, ''), COALESCE(notes, ''), created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.Notes, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
