package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocksync-api/internal/application/dto"
	"github.com/jhoicas/stocksync-api/internal/domain/entity"
)

// recentWindowDays ventana de "movimientos recientes" del tablero.
const recentWindowDays = 7

// ComputeStats calcula las estadísticas del tablero desde el snapshot: función
// pura, sin estado incremental; cada recarga recalcula desde cero.
//
//   - total_products: cantidad de productos
//   - low_stock_products: productos con quantity <= min_quantity (límite inclusivo)
//   - total_value: Σ quantity × price
//   - recent_movements: movimientos (de los cargados) con created_at dentro de
//     los últimos 7 días contados desde now, límite inclusivo
func ComputeStats(
	products []*entity.ProductWithCategory,
	movements []*entity.StockMovementWithProduct,
	now time.Time,
) dto.DashboardStatsDTO {
	stats := dto.DashboardStatsDTO{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
	}
	for _, p := range products {
		if p.IsLowStock() {
			stats.LowStockProducts++
		}
		stats.TotalValue = stats.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	weekAgo := now.AddDate(0, 0, -recentWindowDays)
	for _, m := range movements {
		if !m.CreatedAt.Before(weekAgo) {
			stats.RecentMovements++
		}
	}
	return stats
}

// FilterLowStock devuelve los productos en stock bajo (mismo predicado que la
// estadística low_stock_products), conservando el orden del snapshot.
func FilterLowStock(products []*entity.ProductWithCategory) []*entity.ProductWithCategory {
	var out []*entity.ProductWithCategory
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}
