package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/application/export"
)

// ExportHandler genera la exportación en PDF del tablero proyectado.
type ExportHandler struct {
	uc *export.PDFUseCase
}

// NewExportHandler construye el handler de exportación.
func NewExportHandler(uc *export.PDFUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// PDF godoc
// @Summary      Exportar el tablero del viewer como PDF
// @Tags         export
// @Produce      application/pdf
// @Param        sort_by        query  string  false  "columna de orden"
// @Param        order          query  string  false  "asc | desc"
// @Param        show_inactive  query  bool    false  "incluir marcas inactivas"
// @Success      200  {file}  binary
// @Router       /api/brands/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	var q dto.ListRecordsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	pdfBytes, err := h.uc.GenerateTable(c.Context(), viewerFromCtx(c), q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="brand-allocation.pdf"`)
	return c.Send(pdfBytes)
}
