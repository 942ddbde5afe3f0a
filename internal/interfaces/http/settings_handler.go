package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
)

// SettingsHandler gestisce le tabelle di configurazione curate dall'operatore.
type SettingsHandler struct {
	settings *usecase.SettingsUseCase
}

// NewSettingsHandler costruisce l'handler.
func NewSettingsHandler(settings *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// ListPaymentMappings godoc
// @Summary      Mapping metodo di pagamento → macro-area/canale
// @Tags         settings
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/settings/payment-mappings [get]
func (h *SettingsHandler) ListPaymentMappings(c *fiber.Ctx) error {
	mappings, err := h.settings.ListPaymentMappings(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, mappings)
}

// UpsertPaymentMapping godoc
// @Summary      Crea o aggiorna il mapping di un metodo di pagamento
// @Tags         settings
// @Accept       json
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/settings/payment-mappings [post]
func (h *SettingsHandler) UpsertPaymentMapping(c *fiber.Ctx) error {
	var req dto.PaymentMappingRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadRequest(c, "body: mapping invalido")
	}
	if err := h.settings.UpsertPaymentMapping(c.Context(), req); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

// DeletePaymentMapping godoc
// @Summary      Rimuove il mapping di un metodo di pagamento
// @Tags         settings
// @Produce      json
// @Param        method  path  string  true  "Metodo di pagamento"
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/settings/payment-mappings/{method} [delete]
func (h *SettingsHandler) DeletePaymentMapping(c *fiber.Ctx) error {
	if err := h.settings.DeletePaymentMapping(c.Context(), c.Params("method")); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

// ListUnmappedMethods godoc
// @Summary      Metodi di pagamento presenti nelle vendite ma non mappati
// @Tags         settings
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/settings/unmapped-methods [get]
func (h *SettingsHandler) ListUnmappedMethods(c *fiber.Ctx) error {
	methods, err := h.settings.UnmappedMethods(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, methods)
}

// ListChannelCosts godoc
// @Summary      Modelli di costo dei canali marketplace
// @Tags         settings
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/settings/channel-costs [get]
func (h *SettingsHandler) ListChannelCosts(c *fiber.Ctx) error {
	costs, err := h.settings.ListChannelCosts(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, costs)
}

// UpsertChannelCost godoc
// @Summary      Crea o aggiorna il modello di costo di un metodo
// @Tags         settings
// @Accept       json
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/settings/channel-costs [post]
func (h *SettingsHandler) UpsertChannelCost(c *fiber.Ctx) error {
	var req dto.ChannelCostRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadRequest(c, "body: modello di costo invalido")
	}
	if err := h.settings.UpsertChannelCost(c.Context(), req); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}
