package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-api/internal/application/dashboard"
	"github.com/jhoicas/stocksync-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del tablero y reportes.
type DashboardHandler struct {
	uc       *dashboard.UseCase
	reportUC *dashboard.LowStockReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase, reportUC *dashboard.LowStockReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, reportUC: reportUC}
}

// GetSummary godoc
// @Summary      Snapshot del tablero
// @Description  Productos con categoría + últimos 10 movimientos + estadísticas
// @Description  (total_products, low_stock_products, total_value, recent_movements).
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// GetLowStock godoc
// @Summary      Productos con stock bajo
// @Description  Productos con quantity <= min_quantity (límite inclusivo).
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/low-stock [get]
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetLowStockPDF godoc
// @Summary      Reporte PDF de stock bajo
// @Description  Lista de reposición imprimible con los productos en stock bajo.
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock/pdf [get]
func (h *DashboardHandler) GetLowStockPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.GeneratePDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("stock-bajo-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
