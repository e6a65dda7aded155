package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LuisMtz-24/Panaderia-final/internal/application/auth"
	"github.com/LuisMtz-24/Panaderia-final/internal/application/dto"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
)

// AuthHandler maneja registro, login y sesión.
type AuthHandler struct {
	uc         *auth.Usecase
	cookieName string
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.Usecase, cookieName string) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName}
}

func toUserResponse(c *entity.Customer) dto.UserResponse {
	return dto.UserResponse{
		ID:         c.ID,
		Usuario:    c.Username,
		NombreReal: c.FullName,
		Email:      c.Email,
		Rol:        c.Role,
	}
}

// Register godoc
// @Summary      Registrar cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario y contraseña (mínimo 6 caracteres) son requeridos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "El nombre de usuario ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toUserResponse(out))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	session, user, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Usuario o contraseña incorrectos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(dto.LoginResponse{
		Mensaje: "Sesión iniciada",
		Token:   session.Token,
		Usuario: toUserResponse(user),
		Expira:  session.ExpiresAt,
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := extractToken(c, h.cookieName)
	if err := h.uc.Logout(token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Mensaje: "Sesión cerrada"})
}

// Check godoc
// @Summary      Verificar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.CheckResponse
// @Router       /api/auth/check [get]
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	token := extractToken(c, h.cookieName)
	session, err := h.uc.GetSession(token)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if session == nil {
		return c.JSON(dto.CheckResponse{Autenticado: false})
	}
	user, err := h.uc.Profile(session.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(dto.CheckResponse{Autenticado: false})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := toUserResponse(user)
	return c.JSON(dto.CheckResponse{Autenticado: true, Usuario: &resp})
}

// Profile godoc
// @Summary      Perfil del cliente autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, err := h.uc.Profile(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toUserResponse(user))
}
