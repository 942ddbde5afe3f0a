package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
)

// InventoryHandler gestisce i listati del catalogo prodotti.
type InventoryHandler struct {
	catalog *usecase.CatalogUseCase
}

// NewInventoryHandler costruisce l'handler.
func NewInventoryHandler(catalog *usecase.CatalogUseCase) *InventoryHandler {
	return &InventoryHandler{catalog: catalog}
}

// ListItems godoc
// @Summary      Listato paginato del catalogo
// @Tags         inventory
// @Produce      json
// @Param        page      query  int     false  "Pagina (default 1)"
// @Param        limit     query  int     false  "Righe per pagina (default 50)"
// @Param        brand     query  string  false  "Filtro brand"
// @Param        category  query  string  false  "Filtro categoria"
// @Success      200  {object}  SuccessResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items, pagination, err := h.catalog.ListItems(c.Context(),
		c.QueryInt("page", 1), c.QueryInt("limit", 50), c.Query("brand"), c.Query("category"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"items": items, "pagination": pagination})
}

// ListBrands godoc
// @Summary      Brand distinti del catalogo
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/inventory/brands [get]
func (h *InventoryHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.catalog.Brands(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, brands)
}

// ListCategories godoc
// @Summary      Categorie distinte del catalogo
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /api/inventory/categories [get]
func (h *InventoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, categories)
}
