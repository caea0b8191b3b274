package dashboard_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-api/internal/application/dashboard"
	"github.com/jhoicas/stocksync-api/internal/domain/entity"
	"github.com/jhoicas/stocksync-api/internal/domain/inventory"
)

func producto(quantity, minQuantity int, price string) *entity.ProductWithCategory {
	return &entity.ProductWithCategory{Product: entity.Product{
		ID:          "p-" + price,
		Name:        "producto",
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Price:       decimal.RequireFromString(price),
	}}
}

func movimiento(createdAt time.Time) *entity.StockMovementWithProduct {
	return &entity.StockMovementWithProduct{StockMovement: entity.StockMovement{
		ID:        "m",
		Type:      entity.MovementTypeIn,
		Quantity:  1,
		CreatedAt: createdAt,
	}}
}

// Tres productos con precios 10.00, 5.50 y 0 (sin precio) y cantidades 3, 2, 7:
// el valor total del inventario debe ser 3×10.00 + 2×5.50 + 7×0 = 41.00.
func TestComputeStats_ValorTotal(t *testing.T) {
	products := []*entity.ProductWithCategory{
		producto(3, 0, "10.00"),
		producto(2, 0, "5.50"),
		producto(7, 0, "0"),
	}
	stats := dashboard.ComputeStats(products, nil, time.Now())

	assert.Equal(t, 3, stats.TotalProducts)
	assert.True(t, stats.TotalValue.Equal(decimal.RequireFromString("41.00")),
		"total_value debe ser 41.00, fue %s", stats.TotalValue)
}

func TestComputeStats_StockBajoLimiteInclusivo(t *testing.T) {
	products := []*entity.ProductWithCategory{
		producto(5, 10, "1"),  // bajo
		producto(10, 10, "1"), // en el límite: bajo
		producto(11, 10, "1"), // no
	}
	stats := dashboard.ComputeStats(products, nil, time.Now())
	assert.Equal(t, 2, stats.LowStockProducts)
}

// Ventana de movimientos recientes: 7 días con límite inclusivo. Un movimiento
// de hace exactamente 7 días cuenta; uno de hace 8 días no.
func TestComputeStats_VentanaSieteDiasInclusiva(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	movements := []*entity.StockMovementWithProduct{
		movimiento(now),                      // hoy
		movimiento(now.AddDate(0, 0, -3)),    // hace 3 días
		movimiento(now.AddDate(0, 0, -7)),    // hace exactamente 7 días: incluido
		movimiento(now.AddDate(0, 0, -8)),    // hace 8 días: excluido
		movimiento(now.AddDate(0, -1, 0)),    // hace un mes: excluido
	}
	stats := dashboard.ComputeStats(nil, movements, now)
	assert.Equal(t, 3, stats.RecentMovements)
}

// Escenario completo: producto {quantity:20, min_quantity:5, price:10.00} con
// salida de 25 → cantidad 0, movimiento registrado con 25; al recalcular, el
// producto cuenta como stock bajo y aporta 0 al valor total.
func TestComputeStats_RecalculoTrasSalidaRecortada(t *testing.T) {
	p := producto(20, 5, "10.00")

	antes := dashboard.ComputeStats([]*entity.ProductWithCategory{p}, nil, time.Now())
	assert.Equal(t, 0, antes.LowStockProducts)
	assert.True(t, antes.TotalValue.Equal(decimal.RequireFromString("200.00")))

	nueva, draft, err := inventory.Apply(p.Quantity, entity.MovementTypeOut, 25)
	require.NoError(t, err)
	assert.Equal(t, 0, nueva)
	assert.Equal(t, 25, draft.Quantity, "el movimiento registra lo solicitado, no el delta recortado")
	assert.Equal(t, entity.MovementTypeOut, draft.Type)

	p.Quantity = nueva
	despues := dashboard.ComputeStats([]*entity.ProductWithCategory{p}, nil, time.Now())
	assert.Equal(t, 1, despues.LowStockProducts)
	assert.True(t, despues.TotalValue.IsZero(), "un producto agotado aporta 0 al valor total")
}

func TestFilterLowStock_MismoPredicadoQueLaEstadistica(t *testing.T) {
	products := []*entity.ProductWithCategory{
		producto(0, 0, "1"),
		producto(3, 10, "1"),
		producto(50, 10, "1"),
	}
	low := dashboard.FilterLowStock(products)
	stats := dashboard.ComputeStats(products, nil, time.Now())

	require.Len(t, low, stats.LowStockProducts)
	for _, p := range low {
		assert.True(t, p.IsLowStock())
	}
}

func TestComputeStats_SnapshotVacio(t *testing.T) {
	stats := dashboard.ComputeStats(nil, nil, time.Now())
	assert.Equal(t, 0, stats.TotalProducts)
	assert.Equal(t, 0, stats.LowStockProducts)
	assert.Equal(t, 0, stats.RecentMovements)
	assert.True(t, stats.TotalValue.IsZero())
}
