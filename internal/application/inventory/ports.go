package inventory

import (
	"context"

	"github.com/jhoicas/stocksync-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el UPDATE de cantidad y el
// INSERT del movimiento se persistan juntos o no se persista ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
