package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// parseFilter — los parámetros ausentes no deben filtrar
// ──────────────────────────────────────────────────────────────────────────────

// capturarFiltro monta una ruta que guarda el filtro armado para la query dada.
func capturarFiltro(t *testing.T, query string) repository.ProductFilter {
	t.Helper()

	var got repository.ProductFilter
	app := fiber.New()
	app.Get("/api/productos", func(c *fiber.Ctx) error {
		got = parseFilter(c)
		return c.SendStatus(fiber.StatusOK)
	})

	target := "/api/productos"
	if query != "" {
		target += "?" + query
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	return got
}

func TestParseFilter_SinParametros_NoAplicaFiltros(t *testing.T) {
	f := capturarFiltro(t, "")

	assert.Nil(t, f.Activo, "sin parámetro activo el filtro debe quedar sin aplicar")
	assert.Nil(t, f.CategoryID)
	assert.Empty(t, f.Temporadas)
}

func TestParseFilter_ActivoFalse_IncluyeSoloInactivos(t *testing.T) {
	f := capturarFiltro(t, "activo=false")

	require.NotNil(t, f.Activo)
	assert.False(t, *f.Activo)
}

func TestParseFilter_ActivoTrue(t *testing.T) {
	f := capturarFiltro(t, "activo=true")

	require.NotNil(t, f.Activo)
	assert.True(t, *f.Activo)
}

func TestParseFilter_ActivoInvalido_SeIgnora(t *testing.T) {
	f := capturarFiltro(t, "activo=quizas")

	assert.Nil(t, f.Activo)
}

func TestParseFilter_TemporadaYCategoria(t *testing.T) {
	f := capturarFiltro(t, "temporada=navidad&temporada=regular&categoria=3")

	assert.Equal(t, []string{"navidad", "regular"}, f.Temporadas)
	require.NotNil(t, f.CategoryID)
	assert.Equal(t, int64(3), *f.CategoryID)
}
