package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/application/usecase"
	"github.com/brandops/allocation-api/internal/domain"
)

// RecordHandler maneja el CRUD de registros de marca proyectados por rol.
type RecordHandler struct {
	uc *usecase.BrandRecordUseCase
}

// NewRecordHandler construye el handler de registros.
func NewRecordHandler(uc *usecase.BrandRecordUseCase) *RecordHandler {
	return &RecordHandler{uc: uc}
}

// List godoc
// @Summary      Listar registros de marca (proyectados para el viewer)
// @Tags         records
// @Produce      json
// @Param        search         query  string  false  "búsqueda por texto (insensible a acentos)"
// @Param        sort_by        query  string  false  "columna de orden"
// @Param        order          query  string  false  "asc | desc"
// @Param        show_inactive  query  bool    false  "incluir marcas inactivas"
// @Success      200  {object}  dto.RecordListResponse
// @Router       /api/brands [get]
func (h *RecordHandler) List(c *fiber.Ctx) error {
	var q dto.ListRecordsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	viewer := viewerFromCtx(c)
	viewer.ShowInactive = q.ShowInactive
	out, err := h.uc.List(viewer, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un registro por ID
// @Tags         records
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.RecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [get]
func (h *RecordHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(viewerFromCtx(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		// Para factory, un registro no asignado responde igual que uno inexistente.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear registro de marca
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecordRequest  true  "campos del registro"
// @Success      201  {object}  dto.RecordResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/brands [post]
func (h *RecordHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), actorFromCtx(c), in)
	if err != nil {
		return recordError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar registro de marca (edición parcial)
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateRecordRequest  true  "campos a modificar"
// @Success      200  {object}  dto.RecordResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [put]
func (h *RecordHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), actorFromCtx(c), c.Params("id"), in)
	if err != nil {
		return recordError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de marca (solo admin)
// @Tags         records
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [delete]
func (h *RecordHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), actorFromCtx(c), c.Params("id")); err != nil {
		return recordError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// recordError mapea los errores de dominio a códigos HTTP.
func recordError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrFieldNotEditable):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FIELD_NOT_EDITABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida para este rol"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
