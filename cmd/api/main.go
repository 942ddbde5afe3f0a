package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/upload"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
	infracache "github.com/ferrarisboutique/dashboard-effe-api/internal/infrastructure/cache"
	infrapdf "github.com/ferrarisboutique/dashboard-effe-api/internal/infrastructure/pdf"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/infrastructure/postgres"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/ferrarisboutique/dashboard-effe-api/internal/interfaces/http"
	"github.com/ferrarisboutique/dashboard-effe-api/pkg/config"
	"github.com/ferrarisboutique/dashboard-effe-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("caricamento configurazione: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("avvio applicazione")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connessione a PostgreSQL")
	}
	defer pool.Close()

	saleRepo := postgres.NewSaleRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	mappingRepo := postgres.NewPaymentMappingRepository(pool)
	costRepo := postgres.NewChannelCostRepository(pool)
	userFixRepo := postgres.NewUserChannelRepository(pool)

	// Cache Redis opzionale: con REDIS_ADDR vuoto tutte le letture vanno
	// dirette al database.
	var appCache usecase.Cache
	if cfg.Redis.Addr != "" {
		redisCache, err := infracache.New(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("connessione a Redis")
		}
		defer redisCache.Close()
		appCache = redisCache
		log.Info().Str("addr", cfg.Redis.Addr).Msg("cache Redis attiva")
	}

	loader := usecase.NewLoader(saleRepo, returnRepo, inventoryRepo, mappingRepo, costRepo, userFixRepo)

	salesUploadUC := upload.NewSalesUseCase(saleRepo, mappingRepo, userFixRepo)
	returnsUploadUC := upload.NewReturnsUseCase(returnRepo, mappingRepo)
	inventoryUploadUC := upload.NewInventoryUseCase(inventoryRepo)

	dashboardUC := usecase.NewDashboardUseCase(loader, appCache)
	drilldownUC := usecase.NewDrilldownUseCase(loader, appCache)
	ossUC := usecase.NewOSSUseCase(loader, infrapdf.NewOSSReportRenderer(), xmlexport.NewOSSXMLRenderer())
	settingsUC := usecase.NewSettingsUseCase(mappingRepo, costRepo, userFixRepo, saleRepo, appCache)
	dataAdminUC := usecase.NewDataAdminUseCase(saleRepo, returnRepo, mappingRepo, userFixRepo, appCache)
	catalogUC := usecase.NewCatalogUseCase(inventoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    50 * 1024 * 1024, // upload bulk di decine di migliaia di righe
	})
	app.Use(recover.New())

	// Swagger UI in locale: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dashboard Effe API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SalesUpload:     salesUploadUC,
		ReturnsUpload:   returnsUploadUC,
		InventoryUpload: inventoryUploadUC,
		Dashboard:       dashboardUC,
		Drilldown:       drilldownUC,
		OSS:             ossUC,
		Settings:        settingsUC,
		DataAdmin:       dataAdminUC,
		Catalog:         catalogUC,
		Cache:           appCache,
		Logger:          log,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP terminato")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("segnale di arresto ricevuto, chiusura del server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arresto del server")
	}

	log.Info().Msg("applicazione fermata")
}
