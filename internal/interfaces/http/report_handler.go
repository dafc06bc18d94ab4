package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/techstock-api/internal/application/dto"
	"github.com/jhoicas/techstock-api/internal/application/report"
)

// reportPDFGenerator contrato mínimo para exportar el reporte en PDF.
// Lo implementa *pdf.MovementReportGenerator; la interfaz evita que el
// paquete HTTP importe la infraestructura de PDF.
type reportPDFGenerator interface {
	Generate(report map[string]dto.ProductMovementReport) ([]byte, error)
}

// ReportHandler maneja la vista de reporte de movimientos (protegido).
type ReportHandler struct {
	uc  *report.MovementReportUseCase
	pdf reportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.MovementReportUseCase, pdf reportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// GetMovementReport godoc
// @Summary      Reporte de movimientos por producto
// @Description  Totales de entrada y salida por producto, con nombres de
// @Description  empleado y proveedor, para la vista de gráfico.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]dto.ProductMovementReport
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) GetMovementReport(c *fiber.Ctx) error {
	data, err := h.uc.BuildMovementReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(data)
}

// GetMovementReportPDF godoc
// @Summary      Reporte de movimientos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/movements/pdf [get]
func (h *ReportHandler) GetMovementReportPDF(c *fiber.Ctx) error {
	data, err := h.uc.BuildMovementReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	doc, err := h.pdf.Generate(data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(doc)
}
