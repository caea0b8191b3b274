package dto

import "time"

// AdjustStockRequest entrada para ajustar el stock de un producto.
// Para IN/OUT Quantity es la magnitud del cambio (mínimo 1); para ADJUSTMENT
// es la nueva cantidad absoluta (mínimo 0).
type AdjustStockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

// AdjustStockResponse resultado de un ajuste de stock.
type AdjustStockResponse struct {
	ProductID        string           `json:"product_id"`
	PreviousQuantity int              `json:"previous_quantity"`
	NewQuantity      int              `json:"new_quantity"`
	Movement         MovementResponse `json:"movement"`
}

// MovementResponse salida de un movimiento del log.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	ProductSKU  string    `json:"product_sku,omitempty"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse lista de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
