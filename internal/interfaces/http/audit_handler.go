package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/application/usecase"
	"github.com/brandops/allocation-api/internal/domain"
)

// AuditHandler expone la bitácora de auditoría (solo admin).
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler de auditoría.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Bitácora completa (solo admin)
// @Tags         audit
// @Produce      json
// @Param        limit   query  int  false  "máximo por página (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.AuditListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.List(viewerFromCtx(c), page)
	if err != nil {
		return auditError(c, err)
	}
	return c.JSON(out)
}

// ListByRecord godoc
// @Summary      Bitácora de un registro (solo admin)
// @Tags         audit
// @Produce      json
// @Param        id      path   string  true   "ID del registro"
// @Param        limit   query  int     false  "máximo por página (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.AuditListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/brands/{id}/audit [get]
func (h *AuditHandler) ListByRecord(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.ListByRecord(viewerFromCtx(c), c.Params("id"), page)
	if err != nil {
		return auditError(c, err)
	}
	return c.JSON(out)
}

func parsePage(c *fiber.Ctx) dto.PageRequest {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	return page
}

func auditError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la bitácora es solo para admin"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
