// Package dashboard contiene los casos de uso del tablero de inventario:
// snapshot de productos + movimientos recientes y estadísticas agregadas.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stocksync-api/internal/application/dto"
	"github.com/jhoicas/stocksync-api/internal/domain/entity"
	"github.com/jhoicas/stocksync-api/internal/domain/repository"
)

// recentMovementLimit cuántos movimientos carga el snapshot del tablero.
const recentMovementLimit = 10

// UseCase genera el snapshot del tablero. El snapshot es un valor inmutable que
// el consumidor reemplaza por completo en cada carga, nunca se mezcla en sitio.
type UseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetSummary carga el snapshot (productos con categoría + últimos 10
// movimientos con producto, en paralelo) y calcula las estadísticas.
func (uc *UseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		list []*entity.ProductWithCategory
		err  error
	}
	type movementsResult struct {
		list []*entity.StockMovementWithProduct
		err  error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.productRepo.ListWithCategory(ctx, "")
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.movementRepo.ListRecent(ctx, recentMovementLimit)
		movementsCh <- movementsResult{list, err}
	}()

	products := <-productsCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: cargar productos: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: cargar movimientos: %w", movements.err)
	}

	summary := &dto.DashboardSummaryDTO{
		Stats:     ComputeStats(products.list, movements.list, time.Now()),
		Products:  make([]dto.ProductResponse, 0, len(products.list)),
		Movements: make([]dto.MovementResponse, 0, len(movements.list)),
	}
	for _, p := range products.list {
		summary.Products = append(summary.Products, *dto.NewProductResponse(p))
	}
	for _, m := range movements.list {
		summary.Movements = append(summary.Movements, *dto.NewMovementWithProductResponse(m))
	}
	return summary, nil
}

// GetLowStock devuelve la lista de productos en stock bajo.
func (uc *UseCase) GetLowStock(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.ListWithCategory(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("dashboard: cargar productos: %w", err)
	}
	low := FilterLowStock(list)
	items := make([]dto.ProductResponse, 0, len(low))
	for _, p := range low {
		items = append(items, *dto.NewProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}
