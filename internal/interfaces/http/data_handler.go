package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

// DataHandler gestisce i listati e le operazioni amministrative su vendite e
// resi.
type DataHandler struct {
	admin *usecase.DataAdminUseCase
}

// NewDataHandler costruisce l'handler.
func NewDataHandler(admin *usecase.DataAdminUseCase) *DataHandler {
	return &DataHandler{admin: admin}
}

type idsRequest struct {
	IDs []string `json:"ids"`
}

// ListSales godoc
// @Summary      Listato paginato delle vendite
// @Tags         data
// @Produce      json
// @Param        page     query  int     false  "Pagina (default 1)"
// @Param        limit    query  int     false  "Righe per pagina (default 50)"
// @Param        channel  query  string  false  "Filtro canale"
// @Param        brand    query  string  false  "Filtro brand"
// @Param        country  query  string  false  "Filtro paese"
// @Success      200  {object}  SuccessResponse
// @Router       /api/sales [get]
func (h *DataHandler) ListSales(c *fiber.Ctx) error {
	filter := repository.SaleFilter{
		Channel: c.Query("channel"),
		Brand:   c.Query("brand"),
		Country: c.Query("country"),
	}
	items, pagination, err := h.admin.ListSales(c.Context(), c.QueryInt("page", 1), c.QueryInt("limit", 50), filter)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"items": items, "pagination": pagination})
}

// DeleteSales godoc
// @Summary      Eliminazione di un gruppo di vendite
// @Tags         data
// @Accept       json
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/sales [delete]
func (h *DataHandler) DeleteSales(c *fiber.Ctx) error {
	var req idsRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadRequest(c, "body: atteso {\"ids\": [...]}")
	}
	removed, err := h.admin.DeleteSales(c.Context(), req.IDs)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"removed": removed})
}

// FixChannels godoc
// @Summary      Correzione manuale del canale di un gruppo di vendite
// @Description  Aggiorna il canale e memorizza la correzione come lezione
//               operatore → canale per le ingestioni future.
// @Tags         data
// @Accept       json
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/sales/fix-channels [post]
func (h *DataHandler) FixChannels(c *fiber.Ctx) error {
	var req dto.FixChannelsRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadRequest(c, "body: atteso {\"ids\": [...], \"channel\": \"...\"}")
	}
	updated, err := h.admin.FixChannels(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"updated": updated})
}

// RemoveDuplicateSales godoc
// @Summary      Bonifica dei duplicati tra le vendite
// @Tags         data
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/sales/remove-duplicates [post]
func (h *DataHandler) RemoveDuplicateSales(c *fiber.Ctx) error {
	removed, err := h.admin.RemoveDuplicateSales(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"removed": removed})
}

// ClearSales godoc
// @Summary      Svuotamento completo delle vendite
// @Tags         data
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/sales/all [delete]
func (h *DataHandler) ClearSales(c *fiber.Ctx) error {
	removed, err := h.admin.ClearSales(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"removed": removed})
}

// ListReturns godoc
// @Summary      Listato paginato dei resi
// @Tags         data
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/returns [get]
func (h *DataHandler) ListReturns(c *fiber.Ctx) error {
	items, pagination, err := h.admin.ListReturns(c.Context(), c.QueryInt("page", 1), c.QueryInt("limit", 50))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"items": items, "pagination": pagination})
}

// DeleteReturns godoc
// @Summary      Eliminazione di un gruppo di resi
// @Tags         data
// @Accept       json
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/returns [delete]
func (h *DataHandler) DeleteReturns(c *fiber.Ctx) error {
	var req idsRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadRequest(c, "body: atteso {\"ids\": [...]}")
	}
	removed, err := h.admin.DeleteReturns(c.Context(), req.IDs)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"removed": removed})
}

// RemoveDuplicateReturns godoc
// @Summary      Bonifica dei duplicati tra i resi
// @Tags         data
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/returns/remove-duplicates [post]
func (h *DataHandler) RemoveDuplicateReturns(c *fiber.Ctx) error {
	removed, err := h.admin.RemoveDuplicateReturns(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"removed": removed})
}

// ClearReturns godoc
// @Summary      Svuotamento completo dei resi
// @Tags         data
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/returns/all [delete]
func (h *DataHandler) ClearReturns(c *fiber.Ctx) error {
	removed, err := h.admin.ClearReturns(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"removed": removed})
}
