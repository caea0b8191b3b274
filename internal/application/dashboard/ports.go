package dashboard

import (
	"context"
	"time"

	"github.com/jhoicas/stocksync-api/internal/domain/entity"
)

// LowStockPDFGenerator genera la representación imprimible del reporte de
// productos en stock bajo.
type LowStockPDFGenerator interface {
	GenerateLowStockReport(ctx context.Context, items []*entity.ProductWithCategory, generatedAt time.Time) ([]byte, error)
}
