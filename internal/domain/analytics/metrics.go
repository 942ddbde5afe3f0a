// Package analytics calcola le metriche aggregate del dashboard: totali,
// margine, ripartizioni per canale/brand/categoria, drill-down e obblighi
// IVA/OSS. Tutte le funzioni sono pure e operano su collezioni già
// materializzate; i chiamanti devono passare vendite e resi con il canale già
// risolto in lettura (channel.Classifier.Resolve).
package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/matching"
)

var (
	hundred = decimal.NewFromInt(100)
	// vatDivisor scorpora l'IVA standard italiana (22%) dal lordo quando la
	// commissione del canale si applica all'imponibile.
	vatDivisor = decimal.NewFromFloat(1.22)
)

const subChannelAltro = "Altro Marketplace"

// DashboardMetrics le metriche aggregate su una fetta di dati (tutto, o un
// sottoinsieme filtrato).
type DashboardMetrics struct {
	TotalSales   decimal.Decimal
	TotalReturns decimal.Decimal
	ReturnRate   decimal.Decimal
	// Margin è nil quando nessuna vendita ha un match di catalogo con prezzo di
	// acquisto positivo: "non calcolabile" (N/D), distinto da zero, e deve
	// restare tale in ogni consumatore a valle.
	Margin            *decimal.Decimal
	SalesByChannel    map[entity.Channel]decimal.Decimal
	SalesByBrand      map[string]decimal.Decimal
	SalesByCategory   map[string]decimal.Decimal
	Marketplaces      []MarketplaceDetail
	MarketplaceTotals MarketplaceDetail
}

// MarketplaceDetail metriche di dettaglio per un marketplace / metodo di
// pagamento sotto il canale marketplace, al netto dei costi di canale.
type MarketplaceDetail struct {
	Name                  string
	GrossSales            decimal.Decimal
	OrderCount            int // ordini distinti, non righe
	ReturnOrderCount      int
	AvgOrderValue         decimal.Decimal
	TotalCommission       decimal.Decimal
	TotalFixedCost        decimal.Decimal
	TotalReturnCost       decimal.Decimal
	NetFromChannel        decimal.Decimal
	NetFromChannelPercent decimal.Decimal
}

// SubChannelKey la chiave di bucket per una vendita nel dettaglio canali: per
// il marketplace è il metodo di pagamento quando noto, poi il nome del
// marketplace, infine un bucket generico; per gli altri canali è il canale
// stesso.
func SubChannelKey(s entity.Sale) string {
	if s.Channel != entity.ChannelMarketplace {
		return string(s.Channel)
	}
	if pm := strings.TrimSpace(s.PaymentMethod); pm != "" {
		return pm
	}
	if mp := strings.TrimSpace(s.Marketplace); mp != "" {
		return mp
	}
	return subChannelAltro
}

func returnSubChannelKey(r entity.Return) string {
	if r.Channel != entity.ChannelMarketplace {
		return string(r.Channel)
	}
	if pm := strings.TrimSpace(r.PaymentMethod); pm != "" {
		return pm
	}
	if mp := strings.TrimSpace(r.Marketplace); mp != "" {
		return mp
	}
	return subChannelAltro
}

// CalculateMetrics calcola le metriche del dashboard su vendite e resi già
// filtrati. catalog può essere nil (nessun inventario caricato): il margine
// risulta non calcolabile. costs è la tabella ChannelCostSettings indicizzata
// per metodo in minuscolo; una voce assente equivale a costi zero.
func CalculateMetrics(
	sales []entity.Sale,
	returns []entity.Return,
	catalog *matching.CatalogIndex,
	costs map[string]entity.ChannelCostSettings,
) DashboardMetrics {
	m := DashboardMetrics{
		SalesByChannel:  make(map[entity.Channel]decimal.Decimal),
		SalesByBrand:    make(map[string]decimal.Decimal),
		SalesByCategory: make(map[string]decimal.Decimal),
	}

	var matchedSales, totalCost decimal.Decimal
	matched := false

	for _, s := range sales {
		m.TotalSales = m.TotalSales.Add(s.Amount)

		if s.Channel.Valid() {
			m.SalesByChannel[s.Channel] = m.SalesByChannel[s.Channel].Add(s.Amount)
		}
		if brand := strings.TrimSpace(s.Brand); brand != "" {
			m.SalesByBrand[brand] = m.SalesByBrand[brand].Add(s.Amount)
		}
		if cat := strings.TrimSpace(s.Category); cat != "" {
			m.SalesByCategory[cat] = m.SalesByCategory[cat].Add(s.Amount)
		}

		// Margine solo sulle vendite con match di catalogo e prezzo di acquisto
		// positivo: il costo non va diluito sulle vendite senza match.
		if hit, ok := catalog.LookupSale(s); ok && hit.PurchasePrice.IsPositive() {
			matched = true
			matchedSales = matchedSales.Add(s.Amount)
			totalCost = totalCost.Add(hit.PurchasePrice.Mul(decimal.NewFromInt(int64(s.Quantity))))
		}
	}

	// Somma degli importi con segno, valore assoluto dopo: un reso da -100 con
	// 20 di spese trattenute vale 80 di rimborso, non 120.
	var returnsSum decimal.Decimal
	for _, r := range returns {
		returnsSum = returnsSum.Add(r.Amount)
	}
	m.TotalReturns = returnsSum.Abs()

	if m.TotalSales.IsPositive() {
		m.ReturnRate = m.TotalReturns.Div(m.TotalSales).Mul(hundred).Round(2)
	}

	if matched && matchedSales.IsPositive() {
		margin := matchedSales.Sub(totalCost).Div(matchedSales).Mul(hundred).Round(2)
		m.Margin = &margin
	}

	m.Marketplaces, m.MarketplaceTotals = marketplaceDetails(sales, returns, costs)
	return m
}

// marketplaceDetails calcola le metriche per marketplace al netto dei costi di
// canale. La riga dei totali è la somma elemento per elemento delle righe, mai
// un ricalcolo indipendente: le due strade divergono per arrotondamento.
func marketplaceDetails(
	sales []entity.Sale,
	returns []entity.Return,
	costs map[string]entity.ChannelCostSettings,
) ([]MarketplaceDetail, MarketplaceDetail) {
	type acc struct {
		gross      decimal.Decimal
		orders     map[string]struct{}
		retOrders  map[string]struct{}
		lineOrders int // righe senza riferimento ordine: ciascuna conta come ordine
		retLines   int
	}
	buckets := make(map[string]*acc)

	bucket := func(key string) *acc {
		a, ok := buckets[key]
		if !ok {
			a = &acc{orders: make(map[string]struct{}), retOrders: make(map[string]struct{})}
			buckets[key] = a
		}
		return a
	}

	for _, s := range sales {
		if s.Channel != entity.ChannelMarketplace {
			continue
		}
		a := bucket(SubChannelKey(s))
		a.gross = a.gross.Add(s.Amount)
		if ref := strings.TrimSpace(s.OrderReference); ref != "" {
			a.orders[ref] = struct{}{}
		} else {
			a.lineOrders++
		}
	}
	for _, r := range returns {
		if r.Channel != entity.ChannelMarketplace {
			continue
		}
		key := returnSubChannelKey(r)
		if _, ok := buckets[key]; !ok {
			continue // resi senza vendite nel periodo: nessun bucket da creare
		}
		a := buckets[key]
		if ref := strings.TrimSpace(r.OrderReference); ref != "" {
			a.retOrders[ref] = struct{}{}
		} else {
			a.retLines++
		}
	}

	details := make([]MarketplaceDetail, 0, len(buckets))
	for key, a := range buckets {
		cost, ok := costs[strings.ToLower(key)]
		if !ok {
			cost = entity.DefaultChannelCost(key)
		}

		basis := a.gross
		if !cost.ApplyOnVatIncluded {
			basis = a.gross.Div(vatDivisor)
		}
		orderCount := len(a.orders) + a.lineOrders
		retCount := len(a.retOrders) + a.retLines

		d := MarketplaceDetail{
			Name:             key,
			GrossSales:       a.gross.Round(2),
			OrderCount:       orderCount,
			ReturnOrderCount: retCount,
			TotalCommission: cost.CommissionPercent.Add(cost.ExtraCommissionPercent).
				Div(hundred).Mul(basis).Round(2),
			TotalFixedCost:  cost.FixedCost.Mul(decimal.NewFromInt(int64(orderCount))).Round(2),
			TotalReturnCost: cost.ReturnCost.Mul(decimal.NewFromInt(int64(retCount))).Round(2),
		}
		d.NetFromChannel = d.GrossSales.Sub(d.TotalCommission).Sub(d.TotalFixedCost).Sub(d.TotalReturnCost)
		if orderCount > 0 {
			d.AvgOrderValue = d.GrossSales.Div(decimal.NewFromInt(int64(orderCount))).Round(2)
		}
		if d.GrossSales.IsPositive() {
			d.NetFromChannelPercent = d.NetFromChannel.Div(d.GrossSales).Mul(hundred).Round(2)
		}
		details = append(details, d)
	}

	sort.Slice(details, func(i, j int) bool {
		if !details[i].GrossSales.Equal(details[j].GrossSales) {
			return details[i].GrossSales.GreaterThan(details[j].GrossSales)
		}
		return details[i].Name < details[j].Name
	})

	// Totali: somma elemento per elemento.
	var tot MarketplaceDetail
	tot.Name = "Totale"
	for _, d := range details {
		tot.GrossSales = tot.GrossSales.Add(d.GrossSales)
		tot.OrderCount += d.OrderCount
		tot.ReturnOrderCount += d.ReturnOrderCount
		tot.TotalCommission = tot.TotalCommission.Add(d.TotalCommission)
		tot.TotalFixedCost = tot.TotalFixedCost.Add(d.TotalFixedCost)
		tot.TotalReturnCost = tot.TotalReturnCost.Add(d.TotalReturnCost)
		tot.NetFromChannel = tot.NetFromChannel.Add(d.NetFromChannel)
	}
	if tot.OrderCount > 0 {
		tot.AvgOrderValue = tot.GrossSales.Div(decimal.NewFromInt(int64(tot.OrderCount))).Round(2)
	}
	if tot.GrossSales.IsPositive() {
		tot.NetFromChannelPercent = tot.NetFromChannel.Div(tot.GrossSales).Mul(hundred).Round(2)
	}
	return details, tot
}
