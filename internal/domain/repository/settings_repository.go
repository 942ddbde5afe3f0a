package repository

import (
	"context"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// PaymentMappingRepository tabella metodo di pagamento → macro-area/canale.
type PaymentMappingRepository interface {
	Upsert(ctx context.Context, m entity.PaymentMapping) error
	List(ctx context.Context) ([]entity.PaymentMapping, error)
	Delete(ctx context.Context, method string) error
}

// ChannelCostRepository modello di costo per metodo di pagamento.
type ChannelCostRepository interface {
	Upsert(ctx context.Context, c entity.ChannelCostSettings) error
	List(ctx context.Context) ([]entity.ChannelCostSettings, error)
}

// UserChannelRepository correzioni apprese operatore → canale.
type UserChannelRepository interface {
	Upsert(ctx context.Context, m entity.UserChannelMapping) error
	List(ctx context.Context) ([]entity.UserChannelMapping, error)
}
