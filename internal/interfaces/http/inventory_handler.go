package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/LuisMtz-24/Panaderia-final/internal/application/dto"
	"github.com/LuisMtz-24/Panaderia-final/internal/application/inventory"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain"
)

// InventoryHandler maneja el inventario (solo administradores).
type InventoryHandler struct {
	uc *inventory.Usecase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.Usecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// inventoryError mapea los errores de dominio del inventario a HTTP.
func inventoryError(c *fiber.Ctx, err error) error {
	if se, ok := domain.IsInsufficientStock(err); ok {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: se.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_producto y cantidad positiva son requeridos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// List godoc
// @Summary      Listar inventario completo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventario [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.InventoryResponse, 0, len(items))
	for _, d := range items {
		out = append(out, dto.ToInventoryResponse(d))
	}
	return c.JSON(out)
}

// GetByProduct godoc
// @Summary      Inventario de un producto
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        idProducto  path  int  true  "ID del producto"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{idProducto} [get]
func (h *InventoryHandler) GetByProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("idProducto")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	d, err := h.uc.GetByProduct(int64(id))
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(dto.ToInventoryResponse(d))
}

// RegisterEntry godoc
// @Summary      Registrar entrada de stock
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntradaRequest  true  "Producto y cantidad"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/entrada [post]
func (h *InventoryHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.EntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RegisterEntry(c.UserContext(), in.IDProducto, in.Cantidad)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(mov))
}

// RegisterExit godoc
// @Summary      Registrar salida de stock
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalidaRequest  true  "Producto, cantidad y referencia"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/salida [post]
func (h *InventoryHandler) RegisterExit(c *fiber.Ctx) error {
	var in dto.SalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RegisterExit(c.UserContext(), in.IDProducto, in.Cantidad, in.Referencia)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(mov))
}

// ListMovements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        idProducto  path  int  true  "ID del producto"
// @Success      200  {array}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos/{idProducto} [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	id, err := c.ParamsInt("idProducto")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	movs, err := h.uc.ListMovements(int64(id))
	if err != nil {
		return inventoryError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.ToMovementResponse(m))
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Fijar el stock de un producto en una cantidad absoluta
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        idProducto  path  int  true  "ID del producto"
// @Param        body  body  dto.AjusteRequest  true  "Cantidad a fijar"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/ajustar/{idProducto} [put]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	id, err := c.ParamsInt("idProducto")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.AjusteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CantidadActual == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad_actual es requerida"})
	}
	d, err := h.uc.Adjust(c.UserContext(), int64(id), *in.CantidadActual)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(dto.ToInventoryResponse(d))
}
