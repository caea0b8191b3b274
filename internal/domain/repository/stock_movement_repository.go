package repository

import (
	"context"

	"github.com/jhoicas/stocksync-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el log de
// movimientos (DIP). El log es append-only: no hay update ni delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListRecent devuelve los últimos `limit` movimientos, del más reciente al
	// más antiguo, con los datos del producto resueltos por join.
	ListRecent(ctx context.Context, limit int) ([]*entity.StockMovementWithProduct, error)
	ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error)
}
