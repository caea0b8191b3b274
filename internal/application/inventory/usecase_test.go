package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-api/internal/application/dto"
	appinventory "github.com/jhoicas/stocksync-api/internal/application/inventory"
	"github.com/jhoicas/stocksync-api/internal/domain"
	"github.com/jhoicas/stocksync-api/internal/domain/entity"
	"github.com/jhoicas/stocksync-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id string, quantity int, updatedAt time.Time) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.UpdatedAt = updatedAt
	return nil
}

func (r *fakeProductRepo) ListWithCategory(_ context.Context, _ string) ([]*entity.ProductWithCategory, error) {
	var out []*entity.ProductWithCategory
	for _, p := range r.products {
		out = append(out, &entity.ProductWithCategory{Product: *p})
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	created   []*entity.StockMovement
	createErr error
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, m)
	return nil
}

func (r *fakeMovementRepo) ListRecent(_ context.Context, limit int) ([]*entity.StockMovementWithProduct, error) {
	var out []*entity.StockMovementWithProduct
	for i := len(r.created) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, &entity.StockMovementWithProduct{StockMovement: *r.created[i]})
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.created) - 1; i >= 0 && len(out) < limit; i-- {
		if r.created[i].ProductID == productID {
			out = append(out, r.created[i])
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente con los fakes (sin tx real).
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(r.products, r.movements)
}

func buildUseCase(products ...*entity.Product) (*appinventory.AdjustStockUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movementRepo := &fakeMovementRepo{}
	uc := appinventory.NewAdjustStockUseCase(&fakeTxRunner{products: productRepo, movements: movementRepo}, movementRepo)
	return uc, productRepo, movementRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_EntradaSumaYRegistraMovimiento(t *testing.T) {
	uc, productRepo, movementRepo := buildUseCase(&entity.Product{ID: "p1", Name: "Tornillos", Quantity: 10})

	out, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeIn,
		Quantity:  5,
		Reason:    "Compra",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, out.PreviousQuantity)
	assert.Equal(t, 15, out.NewQuantity)
	assert.Equal(t, 15, productRepo.products["p1"].Quantity, "la cantidad autoritativa debe actualizarse")

	require.Len(t, movementRepo.created, 1)
	mov := movementRepo.created[0]
	assert.NotEmpty(t, mov.ID)
	assert.Equal(t, "p1", mov.ProductID)
	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.Equal(t, 5, mov.Quantity)
	assert.Equal(t, "Compra", mov.Reason)
	assert.False(t, mov.CreatedAt.IsZero())
}

// Salida mayor al stock: la cantidad queda en 0 (nunca negativa) y el
// movimiento registra la cantidad solicitada tal cual.
func TestAdjustStock_SalidaRecortadaEnCero(t *testing.T) {
	uc, productRepo, movementRepo := buildUseCase(&entity.Product{ID: "p1", Quantity: 20, MinQuantity: 5})

	out, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeOut,
		Quantity:  25,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.NewQuantity)
	assert.Equal(t, 0, productRepo.products["p1"].Quantity)
	require.Len(t, movementRepo.created, 1)
	assert.Equal(t, 25, movementRepo.created[0].Quantity)
	assert.Equal(t, entity.MovementTypeOut, movementRepo.created[0].Type)
}

// Dos ADJUSTMENT con el mismo valor dejan la misma cantidad y dos movimientos.
func TestAdjustStock_AjusteIdempotenteConDosMovimientos(t *testing.T) {
	uc, productRepo, movementRepo := buildUseCase(&entity.Product{ID: "p1", Quantity: 17})

	req := dto.AdjustStockRequest{ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: 30}

	primera, err := uc.AdjustStock(context.Background(), req)
	require.NoError(t, err)
	segunda, err := uc.AdjustStock(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 30, primera.NewQuantity)
	assert.Equal(t, 30, segunda.NewQuantity)
	assert.Equal(t, 30, productRepo.products["p1"].Quantity)
	assert.Len(t, movementRepo.created, 2, "cada aplicación genera su propio registro")
}

func TestAdjustStock_AjusteACeroPermitido(t *testing.T) {
	uc, productRepo, _ := buildUseCase(&entity.Product{ID: "p1", Quantity: 9})

	out, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.NewQuantity)
	assert.Equal(t, 0, productRepo.products["p1"].Quantity)
}

func TestAdjustStock_ValidacionDeEntrada(t *testing.T) {
	cases := []struct {
		nombre string
		in     dto.AdjustStockRequest
	}{
		{"tipo desconocido", dto.AdjustStockRequest{ProductID: "p1", Type: "TRANSFER", Quantity: 1}},
		{"sin producto", dto.AdjustStockRequest{Type: entity.MovementTypeIn, Quantity: 1}},
		{"entrada con cantidad cero", dto.AdjustStockRequest{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 0}},
		{"salida con cantidad negativa", dto.AdjustStockRequest{ProductID: "p1", Type: entity.MovementTypeOut, Quantity: -3}},
		{"ajuste negativo", dto.AdjustStockRequest{ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: -1}},
	}
	for _, c := range cases {
		t.Run(c.nombre, func(t *testing.T) {
			uc, productRepo, movementRepo := buildUseCase(&entity.Product{ID: "p1", Quantity: 10})

			_, err := uc.AdjustStock(context.Background(), c.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 10, productRepo.products["p1"].Quantity, "no debe haber escrituras")
			assert.Empty(t, movementRepo.created)
		})
	}
}

func TestAdjustStock_ProductoNoEncontrado(t *testing.T) {
	uc, _, movementRepo := buildUseCase()

	_, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "no-existe", Type: entity.MovementTypeIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movementRepo.created)
}

// Si el registro del movimiento falla, el error se propaga y la transacción
// (aquí simulada) no reporta éxito: nunca hay éxito con log divergente.
func TestAdjustStock_FalloAlRegistrarMovimientoPropagaError(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{ID: "p1", Quantity: 10})
	movementRepo := &fakeMovementRepo{createErr: errors.New("insert stock movement: conexión perdida")}
	uc := appinventory.NewAdjustStockUseCase(&fakeTxRunner{products: productRepo, movements: movementRepo}, movementRepo)

	_, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 5,
	})
	require.Error(t, err)
	assert.Empty(t, movementRepo.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas del log
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_DelMasRecienteAlMasAntiguo(t *testing.T) {
	uc, _, _ := buildUseCase(&entity.Product{ID: "p1", Quantity: 0})

	for i := 0; i < 3; i++ {
		_, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
			ProductID: "p1", Type: entity.MovementTypeIn, Quantity: i + 1,
		})
		require.NoError(t, err)
	}

	out, err := uc.ListMovements(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.Items[0].Quantity, "el más reciente primero")
	assert.Equal(t, 2, out.Items[1].Quantity)
}
