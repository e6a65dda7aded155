package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/LuisMtz-24/Panaderia-final/internal/application/dto"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
)

// Locals keys que deja el middleware de auth en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// SessionResolver resuelve un token opaco a su sesión vigente (nil si no hay).
type SessionResolver interface {
	GetSession(token string) (*entity.Session, error)
}

// extractToken toma el token de la cookie de sesión o, si no viene,
// del header Authorization: Bearer <token>.
func extractToken(c *fiber.Ctx, cookieName string) string {
	if tok := c.Cookies(cookieName); tok != "" {
		return tok
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleware exige una sesión vigente y deja sus datos en c.Locals.
func AuthMiddleware(cookieName string, sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c, cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "se requiere iniciar sesión"})
		}
		s, err := sessions.GetSession(token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if s == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "sesión inválida o expirada"})
		}
		c.Locals(LocalUserID, s.CustomerID)
		c.Locals(LocalUsername, s.Username)
		c.Locals(LocalRole, s.Role)
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol de la sesión no está en la lista.
// Debe montarse después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "se requiere rol: " + strings.Join(roles, " o "),
		})
	}
}

// GetUserID devuelve el id del cliente autenticado (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetUsername devuelve el usuario autenticado.
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
