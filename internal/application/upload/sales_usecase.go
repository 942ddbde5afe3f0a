// Package upload casi d'uso di caricamento bulk: vendite, resi e catalogo.
// Tolleranza per riga: una riga sporca viene contata e saltata, mai propagata
// come errore dell'intero batch.
package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/channel"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/dedup"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/normalize"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

// ProgressFunc callback di avanzamento invocata dopo ogni blocco inserito.
type ProgressFunc func(done, total int)

// SalesUseCase caricamento bulk delle vendite.
type SalesUseCase struct {
	sales    repository.SaleRepository
	mappings repository.PaymentMappingRepository
	userFix  repository.UserChannelRepository
}

// NewSalesUseCase costruisce il caso d'uso.
func NewSalesUseCase(sales repository.SaleRepository, mappings repository.PaymentMappingRepository, userFix repository.UserChannelRepository) *SalesUseCase {
	return &SalesUseCase{sales: sales, mappings: mappings, userFix: userFix}
}

// BulkUpload normalizza, classifica e inserisce le righe di vendita.
// Le righe già presenti (stessa firma data/SKU/quantità/importo) vengono
// saltate: ricaricare lo stesso file due volte non duplica nulla.
func (uc *SalesUseCase) BulkUpload(ctx context.Context, rows []dto.SaleRow, progress ProgressFunc) (dto.UploadResult, error) {
	result := dto.UploadResult{Errors: []string{}}
	if len(rows) == 0 {
		return result, nil
	}

	classifier, err := uc.buildClassifier(ctx)
	if err != nil {
		return result, fmt.Errorf("caricamento tabelle canale: %w", err)
	}

	existing, err := uc.sales.ListAll(ctx)
	if err != nil {
		return result, fmt.Errorf("snapshot vendite esistenti: %w", err)
	}
	seen := make(map[string]struct{}, len(existing)+len(rows))
	for _, s := range existing {
		seen[dedup.SaleSignature(s)] = struct{}{}
	}

	now := time.Now()
	toInsert := make([]*entity.Sale, 0, len(rows))
	for i, row := range rows {
		sale, ok, reason := normalizeSaleRow(row, classifier, now)
		if !ok {
			result.SkippedInvalid++
			result.Errors = append(result.Errors, fmt.Sprintf("riga %d: %s", i+1, reason))
			continue
		}
		sig := dedup.SaleSignature(*sale)
		if _, dup := seen[sig]; dup {
			result.SkippedDuplicates++
			continue
		}
		seen[sig] = struct{}{}
		toInsert = append(toInsert, sale)
	}

	inserted, errs := insertChunks(ctx, toInsert, uc.sales.BulkInsert, progress)
	result.Processed = inserted
	result.Errors = append(result.Errors, errs...)
	return result, nil
}

func (uc *SalesUseCase) buildClassifier(ctx context.Context) (*channel.Classifier, error) {
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

// normalizeSaleRow coercizza una riga grezza in una vendita. Restituisce false
// e il motivo quando la riga è inutilizzabile (data illeggibile o nessun codice
// prodotto).
func normalizeSaleRow(row dto.SaleRow, classifier *channel.Classifier, now time.Time) (*entity.Sale, bool, string) {
	date, ok := normalize.ParseDateFlexible(row.Date)
	if !ok {
		return nil, false, "data non riconosciuta"
	}
	sku := normalize.Sku(row.SKU)
	productID := normalize.Sku(row.ProductID)
	if sku == "" && productID == "" {
		return nil, false, "codice prodotto mancante"
	}
	if sku == "" {
		sku = productID
	}
	if productID == "" {
		productID = sku
	}

	rawChannel := entity.Channel(strings.ToLower(strings.TrimSpace(row.Channel)))
	qty := normalize.ParseQuantity(row.Quantity)
	if qty == 0 {
		qty = 1
	}
	amount := normalize.ParseEuroNumber(row.Amount)
	price := normalize.ParseEuroNumber(row.Price)
	if price.IsZero() && qty != 0 {
		price = amount.Div(decimal.NewFromInt(int64(qty)))
	}

	return &entity.Sale{
		ID:             uuid.New().String(),
		Date:           date,
		User:           strings.TrimSpace(row.User),
		Channel:        classifier.ClassifyAtIngest(rawChannel, row.PaymentMethod, row.User, row.Documento, row.Numero),
		Marketplace:    strings.TrimSpace(row.Marketplace),
		Brand:          strings.TrimSpace(row.Brand),
		Category:       strings.TrimSpace(row.Category),
		SKU:            sku,
		ProductID:      productID,
		Quantity:       qty,
		Price:          price.Round(2),
		Amount:         amount,
		PaymentMethod:  strings.TrimSpace(row.PaymentMethod),
		Area:           strings.TrimSpace(row.Area),
		Country:        strings.ToUpper(strings.TrimSpace(row.Country)),
		OrderReference: strings.TrimSpace(row.OrderReference),
		Documento:      strings.ToUpper(strings.TrimSpace(row.Documento)),
		Numero:         strings.TrimSpace(row.Numero),
		Season:         strings.TrimSpace(row.Season),
		CreatedAt:      now,
	}, true, ""
}
