package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/upload"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
	"github.com/ferrarisboutique/dashboard-effe-api/pkg/logger"
)

// UploadHandler gestisce i caricamenti bulk di vendite, resi e catalogo.
type UploadHandler struct {
	sales     *upload.SalesUseCase
	returns   *upload.ReturnsUseCase
	inventory *upload.InventoryUseCase
	cache     usecase.Cache
	log       *logger.Logger
}

// NewUploadHandler costruisce l'handler. cache può essere nil.
func NewUploadHandler(
	sales *upload.SalesUseCase,
	returns *upload.ReturnsUseCase,
	inventory *upload.InventoryUseCase,
	cache usecase.Cache,
	log *logger.Logger,
) *UploadHandler {
	return &UploadHandler{sales: sales, returns: returns, inventory: inventory, cache: cache, log: log}
}

// UploadSales godoc
// @Summary      Caricamento bulk delle vendite
// @Description  Accetta un array JSON di righe di vendita. Le righe sporche
//               vengono contate e saltate; ricaricare lo stesso file non
//               duplica nulla.
// @Tags         upload
// @Accept       json
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/upload/sales [post]
func (h *UploadHandler) UploadSales(c *fiber.Ctx) error {
	var rows []dto.SaleRow
	if err := c.BodyParser(&rows); err != nil {
		return failBadRequest(c, "body: atteso un array JSON di righe di vendita")
	}

	result, err := h.sales.BulkUpload(c.Context(), rows, h.progress("vendite"))
	if err != nil {
		return fail(c, err)
	}
	h.invalidate(c)
	h.log.Info().
		Int("processed", result.Processed).
		Int("skipped_duplicates", result.SkippedDuplicates).
		Int("skipped_invalid", result.SkippedInvalid).
		Msg("caricamento vendite completato")
	return ok(c, result)
}

// UploadReturns godoc
// @Summary      Caricamento bulk dei resi
// @Tags         upload
// @Accept       json
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/upload/returns [post]
func (h *UploadHandler) UploadReturns(c *fiber.Ctx) error {
	var rows []dto.ReturnRow
	if err := c.BodyParser(&rows); err != nil {
		return failBadRequest(c, "body: atteso un array JSON di righe di reso")
	}

	result, err := h.returns.BulkUpload(c.Context(), rows, h.progress("resi"))
	if err != nil {
		return fail(c, err)
	}
	h.invalidate(c)
	h.log.Info().
		Int("processed", result.Processed).
		Int("skipped_duplicates", result.SkippedDuplicates).
		Msg("caricamento resi completato")
	return ok(c, result)
}

// UploadInventory godoc
// @Summary      Caricamento bulk del catalogo
// @Description  Gli SKU già presenti non vengono mai sovrascritti.
// @Tags         upload
// @Accept       json
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/upload/inventory [post]
func (h *UploadHandler) UploadInventory(c *fiber.Ctx) error {
	var rows []dto.InventoryRow
	if err := c.BodyParser(&rows); err != nil {
		return failBadRequest(c, "body: atteso un array JSON di voci di catalogo")
	}

	result, err := h.inventory.BulkUpload(c.Context(), rows, h.progress("catalogo"))
	if err != nil {
		return fail(c, err)
	}
	h.invalidate(c)
	h.log.Info().
		Int("processed", result.Processed).
		Int("skipped_duplicates", result.SkippedDuplicates).
		Msg("caricamento catalogo completato")
	return ok(c, result)
}

func (h *UploadHandler) progress(kind string) upload.ProgressFunc {
	return func(done, total int) {
		h.log.Debug().Str("tipo", kind).Int("done", done).Int("total", total).Msg("avanzamento caricamento")
	}
}

func (h *UploadHandler) invalidate(c *fiber.Ctx) {
	if h.cache != nil {
		_ = h.cache.InvalidateAll(c.Context())
	}
}
