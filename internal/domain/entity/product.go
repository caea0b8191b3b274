package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity es la cantidad autoritativa y nunca es negativa; solo el motor de
// ajustes la modifica (el CRUD no toca Quantity).
type Product struct {
	ID          string
	Name        string // requerido
	Description string
	SKU         string // texto libre, el núcleo no garantiza unicidad
	CategoryID  string // vacío si no tiene categoría (FK débil a categories)
	Quantity    int
	MinQuantity int // umbral de stock bajo, 0 si no se configura
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Supplier    string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está en stock bajo: quantity <= min_quantity
// (límite inclusivo).
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinQuantity
}

// IsOutOfStock indica si el producto está agotado.
func (p *Product) IsOutOfStock() bool {
	return p.Quantity == 0
}

// ProductWithCategory producto con su categoría resuelta por lookup en lectura.
type ProductWithCategory struct {
	Product
	Category *Category // nil si el producto no tiene categoría
}
