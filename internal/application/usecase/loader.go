// Package usecase orchestra i casi d'uso analitici e amministrativi del
// dashboard. Nessuno stato mutabile condiviso: ogni richiesta carica le tabelle
// correnti, risolve i canali in lettura e calcola sulle fette materializzate.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/channel"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/matching"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

// Dataset la fotografia completa su cui lavorano i casi d'uso analitici.
// Sales e Returns hanno il canale già risolto con le tabelle correnti: un
// cambio di mapping si riflette sull'intero storico alla lettura successiva.
type Dataset struct {
	Sales      []entity.Sale
	Returns    []entity.Return
	Catalog    *matching.CatalogIndex
	Costs      map[string]entity.ChannelCostSettings
	Classifier *channel.Classifier
}

// Loader carica il dataset completo dai repository.
type Loader struct {
	sales     repository.SaleRepository
	returns   repository.ReturnRepository
	inventory repository.InventoryRepository
	mappings  repository.PaymentMappingRepository
	costs     repository.ChannelCostRepository
	userFix   repository.UserChannelRepository
}

// NewLoader costruisce il loader.
func NewLoader(
	sales repository.SaleRepository,
	returns repository.ReturnRepository,
	inventory repository.InventoryRepository,
	mappings repository.PaymentMappingRepository,
	costs repository.ChannelCostRepository,
	userFix repository.UserChannelRepository,
) *Loader {
	return &Loader{
		sales:     sales,
		returns:   returns,
		inventory: inventory,
		mappings:  mappings,
		costs:     costs,
		userFix:   userFix,
	}
}

// Load esegue le letture in parallelo e risolve i canali.
//
// Quattro goroutine: vendite, resi, catalogo e tabelle di configurazione (tre
// letture piccole, sequenziali nella stessa goroutine).
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	type salesResult struct {
		sales []entity.Sale
		err   error
	}
	type returnsResult struct {
		returns []entity.Return
		err     error
	}
	type inventoryResult struct {
		items []entity.InventoryItem
		err   error
	}
	type settingsResult struct {
		mappings []entity.PaymentMapping
		costs    []entity.ChannelCostSettings
		fixes    []entity.UserChannelMapping
		err      error
	}

	salesCh := make(chan salesResult, 1)
	returnsCh := make(chan returnsResult, 1)
	inventoryCh := make(chan inventoryResult, 1)
	settingsCh := make(chan settingsResult, 1)

	go func() {
		s, err := l.sales.ListAll(ctx)
		salesCh <- salesResult{s, err}
	}()
	go func() {
		r, err := l.returns.ListAll(ctx)
		returnsCh <- returnsResult{r, err}
	}()
	go func() {
		items, err := l.inventory.ListAll(ctx)
		inventoryCh <- inventoryResult{items, err}
	}()
	go func() {
		var res settingsResult
		if res.mappings, res.err = l.mappings.List(ctx); res.err != nil {
			settingsCh <- res
			return
		}
		if res.costs, res.err = l.costs.List(ctx); res.err != nil {
			settingsCh <- res
			return
		}
		res.fixes, res.err = l.userFix.List(ctx)
		settingsCh <- res
	}()

	sales := <-salesCh
	returns := <-returnsCh
	inventory := <-inventoryCh
	settings := <-settingsCh

	if sales.err != nil {
		return nil, fmt.Errorf("caricamento vendite: %w", sales.err)
	}
	if returns.err != nil {
		return nil, fmt.Errorf("caricamento resi: %w", returns.err)
	}
	if inventory.err != nil {
		return nil, fmt.Errorf("caricamento catalogo: %w", inventory.err)
	}
	if settings.err != nil {
		return nil, fmt.Errorf("caricamento configurazione: %w", settings.err)
	}

	classifier := channel.NewClassifier(settings.mappings, settings.fixes)

	ds := &Dataset{
		Sales:      sales.sales,
		Returns:    returns.returns,
		Catalog:    matching.BuildCatalogIndex(inventory.items),
		Costs:      costIndex(settings.costs),
		Classifier: classifier,
	}
	for i := range ds.Sales {
		ds.Sales[i].Channel = classifier.Resolve(ds.Sales[i].Channel, ds.Sales[i].PaymentMethod)
	}
	for i := range ds.Returns {
		ds.Returns[i].Channel = classifier.Resolve(ds.Returns[i].Channel, ds.Returns[i].PaymentMethod)
	}
	return ds, nil
}

// costIndex indicizza i modelli di costo per metodo in minuscolo.
func costIndex(costs []entity.ChannelCostSettings) map[string]entity.ChannelCostSettings {
	out := make(map[string]entity.ChannelCostSettings, len(costs))
	for _, c := range costs {
		out[strings.ToLower(strings.TrimSpace(c.Method))] = c
	}
	return out
}
