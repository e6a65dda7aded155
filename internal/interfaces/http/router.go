package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LuisMtz-24/Panaderia-final/internal/application/auth"
	"github.com/LuisMtz-24/Panaderia-final/internal/application/cart"
	"github.com/LuisMtz-24/Panaderia-final/internal/application/catalog"
	"github.com/LuisMtz-24/Panaderia-final/internal/application/inventory"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.Usecase
	CatalogUC   *catalog.Usecase
	CartUC      *cart.Usecase
	InventoryUC *inventory.Usecase
	CookieName  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	requireAuth := AuthMiddleware(deps.CookieName, deps.AuthUC)
	requireAdmin := RequireRole(entity.RoleAdmin)
	requireCliente := RequireRole(entity.RoleCliente, entity.RoleAdmin)

	// Auth (registro, login y check son públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/check", authHandler.Check)
	authGroup.Get("/profile", requireAuth, authHandler.Profile)

	// Productos (lectura pública, escritura de administrador)
	productos := api.Group("/productos")
	productHandler := NewProductHandler(deps.CatalogUC)
	productos.Get("/", productHandler.List)
	productos.Get("/categorias/list", productHandler.ListCategories)
	productos.Post("/categorias", requireAuth, requireAdmin, productHandler.CreateCategory)
	productos.Get("/:id", productHandler.GetByID)
	productos.Post("/", requireAuth, requireAdmin, productHandler.Create)
	productos.Put("/:id", requireAuth, requireAdmin, productHandler.Update)
	productos.Delete("/:id", requireAuth, requireAdmin, productHandler.Delete)

	// Carrito (cliente autenticado)
	carrito := api.Group("/carrito", requireAuth, requireCliente)
	cartHandler := NewCartHandler(deps.CartUC)
	carrito.Get("/", cartHandler.List)
	carrito.Post("/agregar", cartHandler.Add)
	carrito.Delete("/vaciar/todo", cartHandler.Clear)
	carrito.Put("/:id", cartHandler.UpdateQuantity)
	carrito.Delete("/:id", cartHandler.Remove)

	// Inventario (solo administradores)
	inventario := api.Group("/inventario", requireAuth, requireAdmin)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventario.Get("/", inventoryHandler.List)
	inventario.Post("/entrada", inventoryHandler.RegisterEntry)
	inventario.Post("/salida", inventoryHandler.RegisterExit)
	inventario.Get("/movimientos/:idProducto", inventoryHandler.ListMovements)
	inventario.Put("/ajustar/:idProducto", inventoryHandler.Adjust)
	inventario.Get("/:idProducto", inventoryHandler.GetByProduct)
}
