package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/channel"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/dedup"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

// DataAdminUseCase le operazioni amministrative sui dati caricati: listati,
// correzione manuale dei canali, bonifica duplicati e cancellazioni.
type DataAdminUseCase struct {
	sales    repository.SaleRepository
	returns  repository.ReturnRepository
	mappings repository.PaymentMappingRepository
	userFix  repository.UserChannelRepository
	cache    Cache
}

// NewDataAdminUseCase costruisce il caso d'uso. cache può essere nil.
func NewDataAdminUseCase(
	sales repository.SaleRepository,
	returns repository.ReturnRepository,
	mappings repository.PaymentMappingRepository,
	userFix repository.UserChannelRepository,
	cache Cache,
) *DataAdminUseCase {
	return &DataAdminUseCase{sales: sales, returns: returns, mappings: mappings, userFix: userFix, cache: cache}
}

// ListSales una pagina di vendite con il canale risolto con le tabelle correnti.
func (uc *DataAdminUseCase) ListSales(ctx context.Context, page, limit int, filter repository.SaleFilter) ([]dto.SaleDTO, dto.Pagination, error) {
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	sales, total, err := uc.sales.ListPage(ctx, limit, (page-1)*limit, filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	classifier, err := uc.buildClassifier(ctx)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.SaleDTO, 0, len(sales))
	for _, s := range sales {
		s.Channel = classifier.Resolve(s.Channel, s.PaymentMethod)
		out = append(out, dto.FromSale(s))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

// ListReturns una pagina di resi.
func (uc *DataAdminUseCase) ListReturns(ctx context.Context, page, limit int) ([]dto.ReturnDTO, dto.Pagination, error) {
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	returns, total, err := uc.returns.ListPage(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	classifier, err := uc.buildClassifier(ctx)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.ReturnDTO, 0, len(returns))
	for _, r := range returns {
		r.Channel = classifier.Resolve(r.Channel, r.PaymentMethod)
		out = append(out, dto.FromReturn(r))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

// FixChannels assegna manualmente un canale a un gruppo di vendite e memorizza
// la correzione come lezione operatore → canale, riusata nelle ingestioni
// successive.
func (uc *DataAdminUseCase) FixChannels(ctx context.Context, req dto.FixChannelsRequest) (int64, error) {
	if len(req.IDs) == 0 {
		return 0, fmt.Errorf("%w: nessun ID indicato", domain.ErrInvalidInput)
	}
	ch := entity.Channel(strings.ToLower(strings.TrimSpace(req.Channel)))
	if !ch.Valid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidChannel, req.Channel)
	}

	// Lezione per utente prima dell'update: dopo, le righe hanno già il canale
	// nuovo e l'associazione originale andrebbe persa.
	if err := uc.recordUserLessons(ctx, req.IDs, ch); err != nil {
		return 0, err
	}

	updated, err := uc.sales.UpdateChannelByIDs(ctx, req.IDs, ch)
	if err != nil {
		return 0, err
	}
	cacheInvalidate(ctx, uc.cache)
	return updated, nil
}

func (uc *DataAdminUseCase) recordUserLessons(ctx context.Context, ids []string, ch entity.Channel) error {
	sales, err := uc.sales.ListAll(ctx)
	if err != nil {
		return err
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, s := range sales {
		if _, ok := wanted[s.ID]; !ok {
			continue
		}
		user := strings.TrimSpace(s.User)
		if user == "" {
			continue
		}
		key := strings.ToLower(user)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if err := uc.userFix.Upsert(ctx, entity.UserChannelMapping{User: user, Channel: ch}); err != nil {
			return err
		}
	}
	return nil
}

// RemoveDuplicateSales elimina le vendite con firma già vista, conservando la
// prima occorrenza in ordine di inserimento. Restituisce quante righe sono
// state rimosse.
func (uc *DataAdminUseCase) RemoveDuplicateSales(ctx context.Context) (int64, error) {
	sales, err := uc.sales.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(sales))
	var dupIDs []string
	for _, s := range sales {
		sig := dedup.SaleSignature(s)
		if _, dup := seen[sig]; dup {
			dupIDs = append(dupIDs, s.ID)
			continue
		}
		seen[sig] = struct{}{}
	}
	if len(dupIDs) == 0 {
		return 0, nil
	}
	removed, err := uc.sales.DeleteByIDs(ctx, dupIDs)
	if err != nil {
		return 0, err
	}
	cacheInvalidate(ctx, uc.cache)
	return removed, nil
}

// RemoveDuplicateReturns come RemoveDuplicateSales, sui resi.
func (uc *DataAdminUseCase) RemoveDuplicateReturns(ctx context.Context) (int64, error) {
	returns, err := uc.returns.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(returns))
	var dupIDs []string
	for _, r := range returns {
		sig := dedup.ReturnSignature(r)
		if _, dup := seen[sig]; dup {
			dupIDs = append(dupIDs, r.ID)
			continue
		}
		seen[sig] = struct{}{}
	}
	if len(dupIDs) == 0 {
		return 0, nil
	}
	removed, err := uc.returns.DeleteByIDs(ctx, dupIDs)
	if err != nil {
		return 0, err
	}
	cacheInvalidate(ctx, uc.cache)
	return removed, nil
}

// DeleteSales elimina le vendite indicate.
func (uc *DataAdminUseCase) DeleteSales(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: nessun ID indicato", domain.ErrInvalidInput)
	}
	removed, err := uc.sales.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	cacheInvalidate(ctx, uc.cache)
	return removed, nil
}

// DeleteReturns elimina i resi indicati.
func (uc *DataAdminUseCase) DeleteReturns(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: nessun ID indicato", domain.ErrInvalidInput)
	}
	removed, err := uc.returns.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	cacheInvalidate(ctx, uc.cache)
	return removed, nil
}

// ClearSales svuota la tabella vendite.
func (uc *DataAdminUseCase) ClearSales(ctx context.Context) (int64, error) {
	removed, err := uc.sales.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	cacheInvalidate(ctx, uc.cache)
	return removed, nil
}

// ClearReturns svuota la tabella resi.
func (uc *DataAdminUseCase) ClearReturns(ctx context.Context) (int64, error) {
	removed, err := uc.returns.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	cacheInvalidate(ctx, uc.cache)
	return removed, nil
}

func (uc *DataAdminUseCase) buildClassifier(ctx context.Context) (*channel.Classifier, error) {
	mappings, err := uc.mappings.List(ctx)
	if err != nil {
		return nil, err
	}
	fixes, err := uc.userFix.List(ctx)
	if err != nil {
		return nil, err
	}
	return channel.NewClassifier(mappings, fixes), nil
}
