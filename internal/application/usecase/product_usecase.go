package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocksync-api/internal/application/dto"
	"github.com/jhoicas/stocksync-api/internal/domain"
	"github.com/jhoicas/stocksync-api/internal/domain/entity"
	"github.com/jhoicas/stocksync-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Quantity solo cambia en la
// creación; después se maneja vía ajustes de stock.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto con su cantidad inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.Cost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		CategoryID:  in.CategoryID,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Price:       in.Price,
		Cost:        in.Cost,
		Supplier:    in.Supplier,
		Location:    in.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(&entity.ProductWithCategory{Product: *product}), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return dto.NewProductResponse(&entity.ProductWithCategory{Product: *product}), nil
}

// Update actualiza los datos de catálogo de un producto. No permite modificar
// Quantity (se maneja vía movimientos).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinQuantity = *in.MinQuantity
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(&entity.ProductWithCategory{Product: *product}), nil
}

// List lista productos con su categoría resuelta; search filtra por subcadena
// en name o sku.
func (uc *ProductUseCase) List(ctx context.Context, search string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListWithCategory(ctx, search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.NewProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
