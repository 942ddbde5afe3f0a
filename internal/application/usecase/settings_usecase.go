package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/channel"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

// SettingsUseCase gestisce le tabelle di configurazione curate dall'operatore:
// mapping dei metodi di pagamento e modelli di costo dei canali.
type SettingsUseCase struct {
	mappings repository.PaymentMappingRepository
	costs    repository.ChannelCostRepository
	userFix  repository.UserChannelRepository
	sales    repository.SaleRepository
	cache    Cache
}

// NewSettingsUseCase costruisce il caso d'uso. cache può essere nil.
func NewSettingsUseCase(
	mappings repository.PaymentMappingRepository,
	costs repository.ChannelCostRepository,
	userFix repository.UserChannelRepository,
	sales repository.SaleRepository,
	cache Cache,
) *SettingsUseCase {
	return &SettingsUseCase{mappings: mappings, costs: costs, userFix: userFix, sales: sales, cache: cache}
}

// UpsertPaymentMapping crea o aggiorna il mapping di un metodo di pagamento.
// Il canale può essere solo ecommerce o marketplace: i negozi fisici non si
// assegnano mai via mapping.
func (uc *SettingsUseCase) UpsertPaymentMapping(ctx context.Context, req dto.PaymentMappingRequest) error {
	method := strings.TrimSpace(req.Method)
	if method == "" {
		return fmt.Errorf("%w: metodo di pagamento mancante", domain.ErrInvalidInput)
	}
	area := entity.MacroArea(strings.TrimSpace(req.MacroArea))
	if !area.Valid() {
		return fmt.Errorf("%w: macro-area %q", domain.ErrInvalidInput, req.MacroArea)
	}
	ch := entity.Channel(strings.ToLower(strings.TrimSpace(req.Channel)))
	if !ch.IsOnline() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidChannel, req.Channel)
	}

	err := uc.mappings.Upsert(ctx, entity.PaymentMapping{
		Method:    method,
		MacroArea: area,
		Channel:   ch,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	cacheInvalidate(ctx, uc.cache)
	return nil
}

// ListPaymentMappings la tabella dei mapping correnti.
func (uc *SettingsUseCase) ListPaymentMappings(ctx context.Context) ([]dto.PaymentMappingDTO, error) {
	mappings, err := uc.mappings.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMappingDTO, 0, len(mappings))
	for _, m := range mappings {
		out = append(out, dto.FromPaymentMapping(m))
	}
	return out, nil
}

// DeletePaymentMapping rimuove il mapping di un metodo.
func (uc *SettingsUseCase) DeletePaymentMapping(ctx context.Context, method string) error {
	method = strings.TrimSpace(method)
	if method == "" {
		return fmt.Errorf("%w: metodo di pagamento mancante", domain.ErrInvalidInput)
	}
	if err := uc.mappings.Delete(ctx, method); err != nil {
		return err
	}
	cacheInvalidate(ctx, uc.cache)
	return nil
}

// UnmappedMethods i metodi di pagamento presenti nelle vendite ma non ancora
// mappati. Vanno mostrati all'operatore per la bonifica.
func (uc *SettingsUseCase) UnmappedMethods(ctx context.Context) ([]string, error) {
	mappings, err := uc.mappings.List(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return channel.NewClassifier(mappings, nil).UnmappedMethods(sales), nil
}

// UpsertChannelCost crea o aggiorna il modello di costo di un metodo.
func (uc *SettingsUseCase) UpsertChannelCost(ctx context.Context, req dto.ChannelCostRequest) error {
	method := strings.TrimSpace(req.Method)
	if method == "" {
		return fmt.Errorf("%w: metodo di pagamento mancante", domain.ErrInvalidInput)
	}
	if req.CommissionPercent.IsNegative() || req.ExtraCommissionPercent.IsNegative() ||
		req.FixedCost.IsNegative() || req.ReturnCost.IsNegative() {
		return fmt.Errorf("%w: i costi di canale non possono essere negativi", domain.ErrInvalidInput)
	}

	err := uc.costs.Upsert(ctx, entity.ChannelCostSettings{
		Method:                 method,
		CommissionPercent:      req.CommissionPercent,
		ExtraCommissionPercent: req.ExtraCommissionPercent,
		FixedCost:              req.FixedCost,
		ReturnCost:             req.ReturnCost,
		ApplyOnVatIncluded:     req.ApplyOnVatIncluded,
		UpdatedAt:              time.Now(),
	})
	if err != nil {
		return err
	}
	cacheInvalidate(ctx, uc.cache)
	return nil
}

// ListChannelCosts i modelli di costo correnti.
func (uc *SettingsUseCase) ListChannelCosts(ctx context.Context) ([]dto.ChannelCostDTO, error) {
	costs, err := uc.costs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChannelCostDTO, 0, len(costs))
	for _, c := range costs {
		out = append(out, dto.FromChannelCost(c))
	}
	return out, nil
}
