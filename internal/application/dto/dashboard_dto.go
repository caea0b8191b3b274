package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO estadísticas agregadas del tablero. Se recalculan desde
// cero en cada carga, sobre el snapshot completo de productos y los últimos
// movimientos cargados.
type DashboardStatsDTO struct {
	TotalProducts    int             `json:"total_products"`
	LowStockProducts int             `json:"low_stock_products"` // quantity <= min_quantity
	TotalValue       decimal.Decimal `json:"total_value"`        // Σ quantity × price
	RecentMovements  int             `json:"recent_movements"`   // últimos 7 días (inclusivo)
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: el snapshot
// inmutable que la capa de presentación reemplaza por completo en cada carga.
type DashboardSummaryDTO struct {
	Stats     DashboardStatsDTO  `json:"stats"`
	Products  []ProductResponse  `json:"products"`
	Movements []MovementResponse `json:"movements"`
}
