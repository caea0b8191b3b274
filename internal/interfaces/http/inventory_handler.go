package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-api/internal/application/dto"
	"github.com/jhoicas/stocksync-api/internal/application/inventory"
	"github.com/jhoicas/stocksync-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de ajustes y movimientos de stock.
type InventoryHandler struct {
	uc *inventory.AdjustStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.AdjustStockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// AdjustStock godoc
// @Summary      Ajustar stock de un producto
// @Description  Aplica un ajuste IN (entrada), OUT (salida, con piso en 0) o
// @Description  ADJUSTMENT (valor absoluto) y registra el movimiento. La
// @Description  actualización de cantidad y el registro son atómicos.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, type (IN|OUT|ADJUSTMENT), quantity, reason, notes"
// @Success      201   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustStock(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo desconocido o cantidad inválida"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos recientes
// @Description  Últimos movimientos del log, del más reciente al más antiguo, con los datos del producto.
// @Tags         inventory
// @Produce      json
// @Param        limit  query  int  false  "Cantidad de movimientos"  default(10)
// @Success      200    {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	out, err := h.uc.ListMovements(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListMovementsByProduct godoc
// @Summary      Listar movimientos de un producto
// @Tags         inventory
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        limit  query  int     false  "Cantidad de movimientos"  default(20)
// @Success      200    {object}  dto.MovementListResponse
// @Router       /api/products/{id}/movements [get]
func (h *InventoryHandler) ListMovementsByProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	limit := c.QueryInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	out, err := h.uc.ListMovementsByProduct(c.Context(), id, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
