package dto

import "github.com/jhoicas/stocksync-api/internal/domain/entity"

// NewCategoryResponse mapea la entidad Category a su DTO de salida.
func NewCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// NewProductResponse mapea un producto (con categoría opcional) a su DTO de salida.
func NewProductResponse(p *entity.ProductWithCategory) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		CategoryID:  p.CategoryID,
		Category:    NewCategoryResponse(p.Category),
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		Price:       p.Price,
		Cost:        p.Cost,
		Supplier:    p.Supplier,
		Location:    p.Location,
		LowStock:    p.IsLowStock(),
		OutOfStock:  p.IsOutOfStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewMovementResponse mapea un movimiento del log a su DTO de salida.
func NewMovementResponse(m *entity.StockMovement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// NewMovementWithProductResponse mapea un movimiento con los datos del producto resueltos.
func NewMovementWithProductResponse(m *entity.StockMovementWithProduct) *MovementResponse {
	if m == nil {
		return nil
	}
	out := NewMovementResponse(&m.StockMovement)
	out.ProductName = m.ProductName
	out.ProductSKU = m.ProductSKU
	return out
}
