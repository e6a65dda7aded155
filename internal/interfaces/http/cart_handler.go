package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/LuisMtz-24/Panaderia-final/internal/application/cart"
	"github.com/LuisMtz-24/Panaderia-final/internal/application/dto"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain"
)

// CartHandler maneja el carrito del cliente autenticado.
type CartHandler struct {
	uc *cart.Usecase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.Usecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// cartError mapea los errores de dominio del carrito a HTTP.
func cartError(c *fiber.Ctx, err error) error {
	if se, ok := domain.IsInsufficientStock(err); ok {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: se.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "No encontrado"})
	case errors.Is(err, domain.ErrInactiveProduct):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INACTIVE_PRODUCT", Message: "El producto ya no está disponible"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_producto y cantidad positiva son requeridos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// List godoc
// @Summary      Ver el carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToCartResponse(items))
}

// Add godoc
// @Summary      Agregar un producto al carrito
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Producto y cantidad"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carrito/agregar [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Add(c.UserContext(), GetUserID(c), in.IDProducto, in.Cantidad); err != nil {
		return cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Mensaje: "Producto agregado al carrito"})
}

// UpdateQuantity godoc
// @Summary      Cambiar la cantidad de una línea del carrito
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la línea"
// @Param        body  body  dto.UpdateCartItemRequest  true  "Cantidad nueva"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/carrito/{id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateQuantity(c.UserContext(), GetUserID(c), int64(id), in.Cantidad); err != nil {
		return cartError(c, err)
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Cantidad actualizada"})
}

// Remove godoc
// @Summary      Quitar una línea del carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carrito/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Remove(GetUserID(c), int64(id)); err != nil {
		return cartError(c, err)
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Producto quitado del carrito"})
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/carrito/vaciar/todo [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if _, err := h.uc.Clear(GetUserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Carrito vaciado"})
}
