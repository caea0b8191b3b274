package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stocksync-api/internal/application/dto"
	"github.com/jhoicas/stocksync-api/internal/domain"
	"github.com/jhoicas/stocksync-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stocksync-api/internal/domain/inventory"
	"github.com/jhoicas/stocksync-api/internal/domain/repository"
)

// AdjustStockUseCase aplica ajustes de stock de forma transaccional: bloquea la
// fila del producto (SELECT FOR UPDATE), calcula la nueva cantidad con el motor
// de dominio y persiste cantidad + movimiento con Commit/Rollback.
type AdjustStockUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
}

// NewAdjustStockUseCase construye el caso de uso. movementRepo se usa solo para
// lecturas del log; las escrituras pasan por la transacción.
func NewAdjustStockUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// AdjustStock valida la entrada, aplica el ajuste dentro de una transacción y
// devuelve la cantidad resultante junto con el movimiento registrado.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if in.ProductID == "" || !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	// IN/OUT mueven al menos 1 unidad; ADJUSTMENT admite 0 (dejar sin stock)
	switch in.Type {
	case entity.MovementTypeIn, entity.MovementTypeOut:
		if in.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeAdjustment:
		if in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	var out *dto.AdjustStockResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQuantity, draft, err := domaininv.Apply(product.Quantity, in.Type, in.Quantity)
		if err != nil {
			return err
		}

		now := time.Now()
		draft.ID = uuid.New().String()
		draft.ProductID = product.ID
		draft.Reason = in.Reason
		draft.Notes = in.Notes
		draft.CreatedAt = now

		if err := productRepo.UpdateQuantity(ctx, product.ID, newQuantity, now); err != nil {
			return err
		}
		if err := movementRepo.Create(ctx, &draft); err != nil {
			return err
		}

		out = &dto.AdjustStockResponse{
			ProductID:        product.ID,
			PreviousQuantity: product.Quantity,
			NewQuantity:      newQuantity,
			Movement:         *dto.NewMovementResponse(&draft),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListMovements devuelve los últimos `limit` movimientos del log, del más
// reciente al más antiguo, con los datos del producto resueltos.
func (uc *AdjustStockUseCase) ListMovements(ctx context.Context, limit int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.NewMovementWithProductResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// ListMovementsByProduct devuelve los movimientos de un producto.
func (uc *AdjustStockUseCase) ListMovementsByProduct(ctx context.Context, productID string, limit int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListByProduct(ctx, productID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.NewMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}
