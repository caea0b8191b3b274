package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stocksync-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity actualiza solo la cantidad (usada por el motor de ajustes).
	UpdateQuantity(ctx context.Context, id string, quantity int, updatedAt time.Time) error
	// ListWithCategory lista todos los productos con su categoría resuelta,
	// del más reciente al más antiguo. search filtra por subcadena en name o sku
	// (vacío = sin filtro).
	ListWithCategory(ctx context.Context, search string) ([]*entity.ProductWithCategory, error)
	Delete(ctx context.Context, id string) error
}
