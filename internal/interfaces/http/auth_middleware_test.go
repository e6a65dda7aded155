package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/LuisMtz-24/Panaderia-final/internal/interfaces/http"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testCookie = "panaderia_session"

// fakeSessions resuelve tokens contra un mapa en memoria, respetando expiración.
type fakeSessions struct {
	byToken map[string]*entity.Session
}

func (f *fakeSessions) GetSession(token string) (*entity.Session, error) {
	s, ok := f.byToken[token]
	if !ok || s.Expired(time.Now()) {
		return nil, nil
	}
	return s, nil
}

func sessionsWith(tokens map[string]string) *fakeSessions {
	f := &fakeSessions{byToken: map[string]*entity.Session{}}
	id := int64(1)
	for token, role := range tokens {
		f.byToken[token] = &entity.Session{
			Token:      token,
			CustomerID: id,
			Username:   "user-" + token,
			Role:       role,
			ExpiresAt:  time.Now().Add(time.Hour),
		}
		id++
	}
	return f
}

// buildTestApp monta una ruta protegida con AuthMiddleware y, opcionalmente,
// RequireRole para los roles indicados.
func buildTestApp(sessions apphttp.SessionResolver, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testCookie, sessions)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"role":     apphttp.GetRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, mutate func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if mutate != nil {
		mutate(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — resolución del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenEnCookie(t *testing.T) {
	app := buildTestApp(sessionsWith(map[string]string{"tok-1": entity.RoleCliente}))

	resp := doRequest(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "tok-1"})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user-tok-1", body["username"])
	assert.Equal(t, entity.RoleCliente, body["role"])
}

func TestAuthMiddleware_TokenEnHeaderBearer(t *testing.T) {
	app := buildTestApp(sessionsWith(map[string]string{"tok-2": entity.RoleAdmin}))

	resp := doRequest(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer tok-2")
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(sessionsWith(nil))

	resp := doRequest(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenDesconocido_Retorna401(t *testing.T) {
	app := buildTestApp(sessionsWith(nil))

	resp := doRequest(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "no-existe"})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_SESSION")
}

func TestAuthMiddleware_SesionExpirada_Retorna401(t *testing.T) {
	sessions := &fakeSessions{byToken: map[string]*entity.Session{
		"viejo": {Token: "viejo", Role: entity.RoleCliente, ExpiresAt: time.Now().Add(-time.Minute)},
	}}
	app := buildTestApp(sessions)

	resp := doRequest(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "viejo"})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_HeaderMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(sessionsWith(map[string]string{"tok-3": entity.RoleCliente}))

	resp := doRequest(t, app, func(r *http.Request) {
		r.Header.Set("Authorization", "tok-3") // sin el prefijo Bearer
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(sessionsWith(map[string]string{"adm": entity.RoleAdmin}), entity.RoleAdmin)

	resp := doRequest(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "adm"})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")
}

func TestRequireRole_ClienteBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(sessionsWith(map[string]string{"cli": entity.RoleCliente}), entity.RoleAdmin)

	resp := doRequest(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "cli"})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"cliente no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
	assert.Contains(t, string(body), "se requiere rol: admin",
		"el mensaje debe nombrar los roles permitidos en la ruta")
}

func TestRequireRole_MensajeNombraTodosLosRolesPermitidos(t *testing.T) {
	// Sesión con un rol fuera de la lista para forzar el 403.
	sessions := &fakeSessions{byToken: map[string]*entity.Session{
		"inv": {Token: "inv", Role: "invitado", ExpiresAt: time.Now().Add(time.Hour)},
	}}
	app := buildTestApp(sessions, entity.RoleCliente, entity.RoleAdmin)

	resp := doRequest(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "inv"})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "se requiere rol: cliente o admin")
}

func TestRequireRole_MultiRol(t *testing.T) {
	app := buildTestApp(
		sessionsWith(map[string]string{"cli": entity.RoleCliente}),
		entity.RoleAdmin, entity.RoleCliente,
	)

	resp := doRequest(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookie, Value: "cli"})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"cliente debe poder acceder a ruta que permite admin o cliente")
}
