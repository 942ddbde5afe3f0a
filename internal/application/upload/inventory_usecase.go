package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/normalize"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

// InventoryUseCase caricamento bulk del catalogo.
type InventoryUseCase struct {
	inventory repository.InventoryRepository
}

// NewInventoryUseCase costruisce il caso d'uso.
func NewInventoryUseCase(inventory repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{inventory: inventory}
}

// BulkUpload inserisce le voci di catalogo. SKU e brand sono obbligatori; gli
// SKU già presenti non vengono mai sovrascritti, così un ri-caricamento dopo un
// fallimento parziale resta idempotente.
func (uc *InventoryUseCase) BulkUpload(ctx context.Context, rows []dto.InventoryRow, progress ProgressFunc) (dto.UploadResult, error) {
	result := dto.UploadResult{Errors: []string{}}
	if len(rows) == 0 {
		return result, nil
	}

	now := time.Now()
	seen := make(map[string]struct{}, len(rows))
	toInsert := make([]*entity.InventoryItem, 0, len(rows))
	for i, row := range rows {
		sku := normalize.Sku(row.SKU)
		brand := strings.TrimSpace(row.Brand)
		switch {
		case sku == "":
			result.SkippedInvalid++
			result.Errors = append(result.Errors, fmt.Sprintf("riga %d: SKU mancante", i+1))
			continue
		case brand == "":
			result.SkippedInvalid++
			result.Errors = append(result.Errors, fmt.Sprintf("riga %d: brand mancante", i+1))
			continue
		}
		if _, dup := seen[sku]; dup {
			result.SkippedDuplicates++
			continue
		}
		seen[sku] = struct{}{}
		toInsert = append(toInsert, &entity.InventoryItem{
			SKU:           sku,
			Brand:         brand,
			Category:      strings.TrimSpace(row.Category),
			PurchasePrice: normalize.ParseEuroNumber(row.PurchasePrice),
			SellPrice:     normalize.ParseEuroNumber(row.SellPrice),
			Collection:    strings.TrimSpace(row.Collection),
			CreatedAt:     now,
		})
	}

	total := len(toInsert)
	attempted := 0
	for start := 0; start < total; start += chunkSize {
		end := start + chunkSize
		if end > total {
			end = total
		}
		chunk := toInsert[start:end]
		inserted, err := uc.insertWithRetry(ctx, chunk)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("blocco %d-%d: %v", start, end-1, err))
		} else {
			result.Processed += inserted
			result.SkippedDuplicates += len(chunk) - inserted
		}
		attempted = end
		if progress != nil {
			progress(attempted, total)
		}
	}
	return result, nil
}

func (uc *InventoryUseCase) insertWithRetry(ctx context.Context, chunk []*entity.InventoryItem) (int, error) {
	var (
		inserted int
		err      error
	)
	delay := retryBaseDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if inserted, err = uc.inventory.BulkInsertSkipExisting(ctx, chunk); err == nil {
			return inserted, nil
		}
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return 0, err
}
