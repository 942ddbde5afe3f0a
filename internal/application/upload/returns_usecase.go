package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/channel"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/dedup"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/normalize"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

// ReturnsUseCase caricamento bulk dei resi.
type ReturnsUseCase struct {
	returns  repository.ReturnRepository
	mappings repository.PaymentMappingRepository
}

// NewReturnsUseCase costruisce il caso d'uso.
func NewReturnsUseCase(returns repository.ReturnRepository, mappings repository.PaymentMappingRepository) *ReturnsUseCase {
	return &ReturnsUseCase{returns: returns, mappings: mappings}
}

// BulkUpload normalizza e inserisce le righe di reso. Gli importi conservano il
// segno della sorgente: merce resa negativa, eventuali spese trattenute
// positive.
func (uc *ReturnsUseCase) BulkUpload(ctx context.Context, rows []dto.ReturnRow, progress ProgressFunc) (dto.UploadResult, error) {
	result := dto.UploadResult{Errors: []string{}}
	if len(rows) == 0 {
		return result, nil
	}

	mappings, err := uc.mappings.List(ctx)
	if err != nil {
		return result, fmt.Errorf("caricamento tabelle canale: %w", err)
	}
	classifier := channel.NewClassifier(mappings, nil)

	existing, err := uc.returns.ListAll(ctx)
	if err != nil {
		return result, fmt.Errorf("snapshot resi esistenti: %w", err)
	}
	seen := make(map[string]struct{}, len(existing)+len(rows))
	for _, r := range existing {
		seen[dedup.ReturnSignature(r)] = struct{}{}
	}

	now := time.Now()
	toInsert := make([]*entity.Return, 0, len(rows))
	for i, row := range rows {
		ret, ok, reason := normalizeReturnRow(row, classifier, now)
		if !ok {
			result.SkippedInvalid++
			result.Errors = append(result.Errors, fmt.Sprintf("riga %d: %s", i+1, reason))
			continue
		}
		sig := dedup.ReturnSignature(*ret)
		if _, dup := seen[sig]; dup {
			result.SkippedDuplicates++
			continue
		}
		seen[sig] = struct{}{}
		toInsert = append(toInsert, ret)
	}

	inserted, errs := insertChunks(ctx, toInsert, uc.returns.BulkInsert, progress)
	result.Processed = inserted
	result.Errors = append(result.Errors, errs...)
	return result, nil
}

func normalizeReturnRow(row dto.ReturnRow, classifier *channel.Classifier, now time.Time) (*entity.Return, bool, string) {
	date, ok := normalize.ParseDateFlexible(row.Date)
	if !ok {
		return nil, false, "data non riconosciuta"
	}
	sku := normalize.Sku(row.SKU)
	orderRef := strings.TrimSpace(row.OrderReference)
	if sku == "" && orderRef == "" {
		return nil, false, "nessun riferimento al prodotto o all'ordine"
	}

	rawChannel := entity.Channel(strings.ToLower(strings.TrimSpace(row.Channel)))
	qty := normalize.ParseQuantity(row.Quantity)
	if qty == 0 {
		qty = 1
	}

	return &entity.Return{
		ID:             uuid.New().String(),
		SaleID:         strings.TrimSpace(row.SaleID),
		Date:           date,
		Channel:        classifier.Resolve(rawChannel, row.PaymentMethod),
		Marketplace:    strings.TrimSpace(row.Marketplace),
		Country:        strings.ToUpper(strings.TrimSpace(row.Country)),
		SKU:            sku,
		Quantity:       qty,
		Amount:         normalize.ParseEuroNumber(row.Amount),
		Reason:         strings.TrimSpace(row.Reason),
		PaymentMethod:  strings.TrimSpace(row.PaymentMethod),
		OrderReference: orderRef,
		CreatedAt:      now,
	}, true, ""
}
