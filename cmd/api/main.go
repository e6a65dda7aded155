package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/LuisMtz-24/Panaderia-final/internal/application/auth"
	"github.com/LuisMtz-24/Panaderia-final/internal/application/cart"
	"github.com/LuisMtz-24/Panaderia-final/internal/application/catalog"
	"github.com/LuisMtz-24/Panaderia-final/internal/application/inventory"
	"github.com/LuisMtz-24/Panaderia-final/internal/infrastructure/postgres"
	httpRouter "github.com/LuisMtz-24/Panaderia-final/internal/interfaces/http"
	"github.com/LuisMtz-24/Panaderia-final/pkg/config"
	"github.com/LuisMtz-24/Panaderia-final/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations("migrations", cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	authUC := auth.NewUsecase(customerRepo, sessionRepo, sessionTTL)
	catalogUC := catalog.NewUsecase(productRepo, categoryRepo, txRunner)
	cartUC := cart.NewUsecase(cartRepo, txRunner)
	inventoryUC := inventory.NewUsecase(invRepo, movRepo, productRepo, txRunner)

	// Limpieza periódica de sesiones vencidas.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := authUC.CleanupExpired()
			if err != nil {
				log.Error().Err(err).Msg("limpiar sesiones vencidas")
				continue
			}
			if n > 0 {
				log.Info().Int64("sesiones", n).Msg("sesiones vencidas eliminadas")
			}
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.LoggerMiddleware(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		CartUC:      cartUC,
		InventoryUC: inventoryUC,
		CookieName:  cfg.Session.CookieName,
	})

	// Frontend estático (catálogo y panel de administración)
	app.Static("/", "./public")

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
