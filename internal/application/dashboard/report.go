package dashboard

import (
	"context"
	"fmt"
	"time"
)

// LowStockReportUseCase genera el PDF del reporte de reposición: los productos
// en stock bajo del snapshot actual.
type LowStockReportUseCase struct {
	dashboard *UseCase
	generator LowStockPDFGenerator
}

// NewLowStockReportUseCase construye el caso de uso.
func NewLowStockReportUseCase(dashboard *UseCase, generator LowStockPDFGenerator) *LowStockReportUseCase {
	return &LowStockReportUseCase{dashboard: dashboard, generator: generator}
}

// GeneratePDF carga el snapshot de productos, filtra los de stock bajo y
// devuelve los bytes del PDF.
func (uc *LowStockReportUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	list, err := uc.dashboard.productRepo.ListWithCategory(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("reporte stock bajo: cargar productos: %w", err)
	}
	return uc.generator.GenerateLowStockReport(ctx, FilterLowStock(list), time.Now())
}
