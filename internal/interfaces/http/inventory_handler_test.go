package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-api/internal/application/dto"
	"github.com/jhoicas/stocksync-api/internal/application/inventory"
	"github.com/jhoicas/stocksync-api/internal/domain"
	"github.com/jhoicas/stocksync-api/internal/domain/entity"
	"github.com/jhoicas/stocksync-api/internal/domain/repository"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) UpdateQuantity(_ context.Context, id string, quantity int, updatedAt time.Time) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.UpdatedAt = updatedAt
	return nil
}

func (r *memProductRepo) ListWithCategory(_ context.Context, _ string) ([]*entity.ProductWithCategory, error) {
	return nil, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type memMovementRepo struct {
	created []*entity.StockMovement
}

func (r *memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.created = append(r.created, m)
	return nil
}

func (r *memMovementRepo) ListRecent(_ context.Context, limit int) ([]*entity.StockMovementWithProduct, error) {
	var out []*entity.StockMovementWithProduct
	for i := len(r.created) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, &entity.StockMovementWithProduct{StockMovement: *r.created[i]})
	}
	return out, nil
}

func (r *memMovementRepo) ListByProduct(_ context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.created) - 1; i >= 0 && len(out) < limit; i-- {
		if r.created[i].ProductID == productID {
			out = append(out, r.created[i])
		}
	}
	return out, nil
}

type memTxRunner struct {
	products  *memProductRepo
	movements *memMovementRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(r.products, r.movements)
}

func setupInventoryApp(products ...*entity.Product) (*fiber.App, *memProductRepo) {
	productRepo := &memProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		productRepo.products[p.ID] = p
	}
	movementRepo := &memMovementRepo{}
	uc := inventory.NewAdjustStockUseCase(&memTxRunner{products: productRepo, movements: movementRepo}, movementRepo)

	app := fiber.New()
	handler := NewInventoryHandler(uc)
	app.Post("/api/inventory/adjustments", handler.AdjustStock)
	app.Get("/api/inventory/movements", handler.ListMovements)
	app.Get("/api/products/:id/movements", handler.ListMovementsByProduct)
	return app, productRepo
}

func TestAdjustStockHandler_Creado(t *testing.T) {
	app, productRepo := setupInventoryApp(&entity.Product{ID: "p1", Quantity: 10})

	raw, err := json.Marshal(dto.AdjustStockRequest{
		ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 5, Reason: "Compra",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/inventory/adjustments", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.AdjustStockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "p1", out.ProductID)
	assert.Equal(t, 10, out.PreviousQuantity)
	assert.Equal(t, 15, out.NewQuantity)
	assert.Equal(t, entity.MovementTypeIn, out.Movement.Type)
	assert.Equal(t, 15, productRepo.products["p1"].Quantity)
}

func TestAdjustStockHandler_TipoInvalidoDevuelve400(t *testing.T) {
	app, _ := setupInventoryApp(&entity.Product{ID: "p1", Quantity: 10})

	raw, err := json.Marshal(dto.AdjustStockRequest{ProductID: "p1", Type: "TRANSFER", Quantity: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/inventory/adjustments", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestAdjustStockHandler_ProductoInexistenteDevuelve404(t *testing.T) {
	app, _ := setupInventoryApp()

	raw, err := json.Marshal(dto.AdjustStockRequest{ProductID: "nope", Type: entity.MovementTypeOut, Quantity: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/inventory/adjustments", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestListMovementsHandler_RespetaLimite(t *testing.T) {
	app, _ := setupInventoryApp(&entity.Product{ID: "p1", Quantity: 0})

	for i := 0; i < 5; i++ {
		raw, err := json.Marshal(dto.AdjustStockRequest{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: i + 1})
		require.NoError(t, err)
		req := httptest.NewRequest(fiber.MethodPost, "/api/inventory/adjustments", bytes.NewReader(raw))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
	}

	req := httptest.NewRequest(fiber.MethodGet, "/api/inventory/movements?limit=3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.MovementListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 3)
	assert.Equal(t, 5, out.Items[0].Quantity, "el más reciente primero")
}
