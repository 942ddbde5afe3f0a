package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
)

// AnalyticsHandler gestisce gli endpoint analitici del dashboard.
type AnalyticsHandler struct {
	dashboard *usecase.DashboardUseCase
	drilldown *usecase.DrilldownUseCase
}

// NewAnalyticsHandler costruisce l'handler.
func NewAnalyticsHandler(dashboard *usecase.DashboardUseCase, drilldown *usecase.DrilldownUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{dashboard: dashboard, drilldown: drilldown}
}

// GetDashboard godoc
// @Summary      Metriche aggregate del dashboard
// @Description  Totali, margine, ripartizioni e confronto anno su anno per la
//               finestra richiesta.
// @Tags         analytics
// @Produce      json
// @Param        range      query  string  false  "all|7d|30d|90d|1y|current_year|previous_year"
// @Param        startDate  query  string  false  "Inizio periodo custom (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Fine periodo custom (YYYY-MM-DD)"
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	rangeName, custom, err := usecase.ParsePeriodParams(
		c.Query("range"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return fail(c, err)
	}
	out, err := h.dashboard.GetMetrics(c.Context(), rangeName, custom)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// GetCountries godoc
// @Summary      Drill-down per paese di destinazione
// @Tags         analytics
// @Produce      json
// @Param        range      query  string  false  "Finestra temporale"
// @Success      200  {object}  SuccessResponse
// @Router       /api/analytics/countries [get]
func (h *AnalyticsHandler) GetCountries(c *fiber.Ctx) error {
	rangeName, custom, err := usecase.ParsePeriodParams(
		c.Query("range"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return fail(c, err)
	}
	out, err := h.drilldown.Countries(c.Context(), rangeName, custom)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// GetChannels godoc
// @Summary      Drill-down per canale online
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/analytics/channels [get]
func (h *AnalyticsHandler) GetChannels(c *fiber.Ctx) error {
	rangeName, custom, err := usecase.ParsePeriodParams(
		c.Query("range"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return fail(c, err)
	}
	out, err := h.drilldown.Channels(c.Context(), rangeName, custom)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// GetDocuments godoc
// @Summary      Drill-down per tipo documento
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/analytics/documents [get]
func (h *AnalyticsHandler) GetDocuments(c *fiber.Ctx) error {
	rangeName, custom, err := usecase.ParsePeriodParams(
		c.Query("range"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return fail(c, err)
	}
	out, err := h.drilldown.Documents(c.Context(), rangeName, custom)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// GetBrand godoc
// @Summary      Metriche e ripartizioni di un brand
// @Tags         analytics
// @Produce      json
// @Param        brand  path  string  true  "Nome del brand"
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/analytics/brand/{brand} [get]
func (h *AnalyticsHandler) GetBrand(c *fiber.Ctx) error {
	rangeName, custom, err := usecase.ParsePeriodParams(
		c.Query("range"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return fail(c, err)
	}
	out, err := h.drilldown.Brand(c.Context(), c.Params("brand"), rangeName, custom)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
