package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/medstock/internal/application/dto"
	"github.com/jhoicas/medstock/internal/application/inventory"
	"github.com/jhoicas/medstock/internal/application/report"
	domaininv "github.com/jhoicas/medstock/internal/domain/inventory"
	"github.com/jhoicas/medstock/pkg/logger"
)

// InventoryHandler API REST del inventario (protegido).
type InventoryHandler struct {
	uc     *inventory.InventoryUseCase
	report *report.ReportUseCase
	log    *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase, report *report.ReportUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, report: report, log: log}
}

// List godoc
// @Summary      Listar artículos
// @Description  Devuelve la lista completa. Con ?q= aplica el mismo filtro que la pantalla.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        q    query     string  false  "búsqueda por nombre, categoría o ubicación"
// @Success      200  {array}   entity.InventoryItem
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("listar inventario")
		return writeError(c, err)
	}
	return c.JSON(domaininv.Filter(items, c.Query("q")))
}

// Create godoc
// @Summary      Crear artículo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateItemRequest  true  "name y qty obligatorios"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	item, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		h.log.Warn().Err(err).Str("user", GetUsername(c)).Msg("alta de artículo rechazada")
		return writeError(c, err)
	}
	h.log.Info().Str("id", item.ID).Str("user", GetUsername(c)).Msg("artículo creado")
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true, ID: item.ID})
}

// Update godoc
// @Summary      Actualizar artículo (parcial)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "ID del artículo"
// @Param        body  body      dto.UpdateItemRequest  true  "campos a modificar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	item, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		h.log.Warn().Err(err).Str("id", c.Params("id")).Msg("actualización rechazada")
		return writeError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, ID: item.ID})
}

// Delete godoc
// @Summary      Eliminar artículo
// @Description  No falla si el artículo ya no existe.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del artículo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("eliminar artículo")
		return writeError(c, err)
	}
	h.log.Info().Str("id", id).Str("user", GetUsername(c)).Msg("artículo eliminado")
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Summary godoc
// @Summary      Resumen del inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF del inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        q    query  string  false  "mismo filtro que la pantalla"
// @Success      200  {file}  binary
// @Router       /api/inventory/report.pdf [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.Download(c.UserContext(), c.Query("q"))
	if err != nil {
		h.log.Error().Err(err).Msg("generar reporte")
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
