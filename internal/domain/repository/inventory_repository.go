package repository

import (
	"context"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// InventoryRepository porta di persistenza del catalogo.
// BulkInsertSkipExisting non sovrascrive mai gli SKU già presenti (i
// ri-caricamenti dopo un fallimento parziale restano idempotenti) e restituisce
// il numero di voci effettivamente inserite.
type InventoryRepository interface {
	BulkInsertSkipExisting(ctx context.Context, items []*entity.InventoryItem) (int, error)
	ListAll(ctx context.Context) ([]entity.InventoryItem, error)
	ListPage(ctx context.Context, limit, offset int, brand, category string) ([]entity.InventoryItem, int, error)
	DistinctBrands(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}
