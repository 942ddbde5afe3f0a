package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/upload"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
	"github.com/ferrarisboutique/dashboard-effe-api/pkg/logger"
)

// RouterDeps dipendenze per il router.
type RouterDeps struct {
	SalesUpload     *upload.SalesUseCase
	ReturnsUpload   *upload.ReturnsUseCase
	InventoryUpload *upload.InventoryUseCase
	Dashboard       *usecase.DashboardUseCase
	Drilldown       *usecase.DrilldownUseCase
	OSS             *usecase.OSSUseCase
	Settings        *usecase.SettingsUseCase
	DataAdmin       *usecase.DataAdminUseCase
	Catalog         *usecase.CatalogUseCase
	Cache           usecase.Cache
	Logger          *logger.Logger
	JWTSecret       string
}

// Router registra le rotte dell'API. Le letture analitiche sono pubbliche; le
// mutazioni richiedono il Bearer Token quando JWTSecret è configurato.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWTSecret)

	// Caricamenti bulk (protetto)
	uploadHandler := NewUploadHandler(deps.SalesUpload, deps.ReturnsUpload, deps.InventoryUpload, deps.Cache, deps.Logger)
	uploads := api.Group("/upload", protected)
	uploads.Post("/sales", uploadHandler.UploadSales)
	uploads.Post("/returns", uploadHandler.UploadReturns)
	uploads.Post("/inventory", uploadHandler.UploadInventory)

	// Analytics (pubblico)
	analyticsHandler := NewAnalyticsHandler(deps.Dashboard, deps.Drilldown)
	analytics := api.Group("/analytics")
	analytics.Get("/dashboard", analyticsHandler.GetDashboard)
	analytics.Get("/countries", analyticsHandler.GetCountries)
	analytics.Get("/channels", analyticsHandler.GetChannels)
	analytics.Get("/documents", analyticsHandler.GetDocuments)
	analytics.Get("/brand/:brand", analyticsHandler.GetBrand)

	// Report OSS (pubblico)
	ossHandler := NewOSSHandler(deps.OSS)
	oss := api.Group("/oss")
	oss.Get("/report", ossHandler.GetReport)
	oss.Get("/report/pdf", ossHandler.GetReportPDF)
	oss.Get("/report/xml", ossHandler.GetReportXML)

	// Vendite e resi (listati pubblici, mutazioni protette)
	dataHandler := NewDataHandler(deps.DataAdmin)
	sales := api.Group("/sales")
	sales.Get("/", dataHandler.ListSales)
	sales.Delete("/all", protected, dataHandler.ClearSales)
	sales.Delete("/", protected, dataHandler.DeleteSales)
	sales.Post("/fix-channels", protected, dataHandler.FixChannels)
	sales.Post("/remove-duplicates", protected, dataHandler.RemoveDuplicateSales)

	returns := api.Group("/returns")
	returns.Get("/", dataHandler.ListReturns)
	returns.Delete("/all", protected, dataHandler.ClearReturns)
	returns.Delete("/", protected, dataHandler.DeleteReturns)
	returns.Post("/remove-duplicates", protected, dataHandler.RemoveDuplicateReturns)

	// Catalogo (pubblico)
	inventoryHandler := NewInventoryHandler(deps.Catalog)
	inventory := api.Group("/inventory")
	inventory.Get("/", inventoryHandler.ListItems)
	inventory.Get("/brands", inventoryHandler.ListBrands)
	inventory.Get("/categories", inventoryHandler.ListCategories)

	// Configurazione (letture pubbliche, mutazioni protette)
	settingsHandler := NewSettingsHandler(deps.Settings)
	settings := api.Group("/settings")
	settings.Get("/payment-mappings", settingsHandler.ListPaymentMappings)
	settings.Post("/payment-mappings", protected, settingsHandler.UpsertPaymentMapping)
	settings.Delete("/payment-mappings/:method", protected, settingsHandler.DeletePaymentMapping)
	settings.Get("/unmapped-methods", settingsHandler.ListUnmappedMethods)
	settings.Get("/channel-costs", settingsHandler.ListChannelCosts)
	settings.Post("/channel-costs", protected, settingsHandler.UpsertChannelCost)
}
