package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity es la cantidad inicial; después de creado solo cambia vía ajustes.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	CategoryID  string          `json:"category_id"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	MinQuantity int             `json:"min_quantity" validate:"min=0"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Supplier    string          `json:"supplier"`
	Location    string          `json:"location"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity:
// la cantidad se maneja vía movimientos).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	SKU         *string          `json:"sku"`
	CategoryID  *string          `json:"category_id"`
	MinQuantity *int             `json:"min_quantity" validate:"omitempty,min=0"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	Supplier    *string          `json:"supplier"`
	Location    *string          `json:"location"`
}

// ProductResponse salida de un producto, con su categoría resuelta si la tiene.
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	SKU         string            `json:"sku,omitempty"`
	CategoryID  string            `json:"category_id,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Quantity    int               `json:"quantity"`
	MinQuantity int               `json:"min_quantity"`
	Price       decimal.Decimal   `json:"price"`
	Cost        decimal.Decimal   `json:"cost"`
	Supplier    string            `json:"supplier,omitempty"`
	Location    string            `json:"location,omitempty"`
	LowStock    bool              `json:"low_stock"`
	OutOfStock  bool              `json:"out_of_stock"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
