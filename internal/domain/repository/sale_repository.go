package repository

import (
	"context"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// SaleFilter filtri opzionali per i listati di vendite.
type SaleFilter struct {
	Channel string
	Brand   string
	Country string
}

// SaleRepository porta di persistenza delle vendite.
// ListAll deve restituire l'intero dataset paginando fino a esaurimento: la
// correttezza delle aggregazioni dipende dal vedere il set completo, mai
// troncato a una singola pagina.
type SaleRepository interface {
	BulkInsert(ctx context.Context, sales []*entity.Sale) error
	ListAll(ctx context.Context) ([]entity.Sale, error)
	ListPage(ctx context.Context, limit, offset int, f SaleFilter) ([]entity.Sale, int, error)
	UpdateChannelByIDs(ctx context.Context, ids []string, ch entity.Channel) (int64, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ReturnRepository porta di persistenza dei resi.
type ReturnRepository interface {
	BulkInsert(ctx context.Context, returns []*entity.Return) error
	ListAll(ctx context.Context) ([]entity.Return, error)
	ListPage(ctx context.Context, limit, offset int) ([]entity.Return, int, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
