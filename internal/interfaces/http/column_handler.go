package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/application/usecase"
	"github.com/brandops/allocation-api/internal/domain"
)

// ColumnHandler expone la configuración de columnas del tablero y el alta de
// columnas personalizadas.
type ColumnHandler struct {
	uc *usecase.ColumnUseCase
}

// NewColumnHandler construye el handler de columnas.
func NewColumnHandler(uc *usecase.ColumnUseCase) *ColumnHandler {
	return &ColumnHandler{uc: uc}
}

// List godoc
// @Summary      Columnas visibles y editables para el viewer, agrupadas
// @Tags         columns
// @Produce      json
// @Success      200  {object}  dto.ColumnsResponse
// @Router       /api/columns [get]
func (h *ColumnHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Columns(viewerFromCtx(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear columna personalizada (solo admin)
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomColumnRequest  true  "key de la columna (snake_case)"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/columns/custom [post]
func (h *ColumnHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomColumnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddCustomColumn(c.Context(), actorFromCtx(c), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo admin puede crear columnas"})
		case errors.Is(err, domain.ErrColumnExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COLUMN_EXISTS", Message: "la columna ya existe"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusCreated)
}
