package usecase

import (
	"context"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

// CatalogUseCase i listati del catalogo prodotti.
type CatalogUseCase struct {
	inventory repository.InventoryRepository
}

// NewCatalogUseCase costruisce il caso d'uso.
func NewCatalogUseCase(inventory repository.InventoryRepository) *CatalogUseCase {
	return &CatalogUseCase{inventory: inventory}
}

// ListItems una pagina di catalogo, filtrabile per brand e categoria.
func (uc *CatalogUseCase) ListItems(ctx context.Context, page, limit int, brand, category string) ([]dto.InventoryItemDTO, dto.Pagination, error) {
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	items, total, err := uc.inventory.ListPage(ctx, limit, (page-1)*limit, brand, category)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.InventoryItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromInventoryItem(it))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

// Brands i brand distinti presenti in catalogo, per i filtri del frontend.
func (uc *CatalogUseCase) Brands(ctx context.Context) ([]string, error) {
	return uc.inventory.DistinctBrands(ctx)
}

// Categories le categorie distinte presenti in catalogo.
func (uc *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.inventory.DistinctCategories(ctx)
}
