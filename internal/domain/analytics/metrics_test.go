package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/analytics"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/matching"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func giorno(d int) time.Time {
	return time.Date(2024, 7, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateMetrics_Totali(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(1), Channel: entity.ChannelEcommerce, Amount: dec("100"), Brand: "Nike", Category: "abbigliamento"},
		{Date: giorno(2), Channel: entity.ChannelNegozioDonna, Amount: dec("50"), Brand: "Prada", Category: "accessori"},
		{Date: giorno(3), Channel: entity.ChannelEcommerce, Amount: dec("50"), Brand: "Nike", Category: "abbigliamento"},
	}
	resi := []entity.Return{
		{Date: giorno(5), Amount: dec("-100")},
		{Date: giorno(5), Amount: dec("20")}, // spese di spedizione trattenute
	}

	m := analytics.CalculateMetrics(vendite, resi, nil, nil)

	assert.True(t, dec("200").Equal(m.TotalSales))
	assert.True(t, dec("80").Equal(m.TotalReturns),
		"somma con segno e poi valore assoluto: 80, non 120")
	assert.True(t, dec("40").Equal(m.ReturnRate), "80/200*100")

	assert.True(t, dec("150").Equal(m.SalesByChannel[entity.ChannelEcommerce]))
	assert.True(t, dec("50").Equal(m.SalesByChannel[entity.ChannelNegozioDonna]))
	assert.True(t, dec("150").Equal(m.SalesByBrand["Nike"]))
	assert.True(t, dec("150").Equal(m.SalesByCategory["abbigliamento"]))
}

func TestCalculateMetrics_ReturnRateZeroSenzaVendite(t *testing.T) {
	m := analytics.CalculateMetrics(nil, []entity.Return{{Amount: dec("-10")}}, nil, nil)
	assert.True(t, m.ReturnRate.IsZero(), "con vendite a zero il tasso resta 0, non infinito")
}

func TestCalculateMetrics_MargineNonCalcolabile(t *testing.T) {
	vendite := []entity.Sale{{Channel: entity.ChannelEcommerce, SKU: "ABC", Amount: dec("1000"), Quantity: 1}}

	m := analytics.CalculateMetrics(vendite, nil, nil, nil)
	assert.Nil(t, m.Margin, "senza inventario il margine è N/D, mai zero")

	idx := matching.BuildCatalogIndex([]entity.InventoryItem{{SKU: "XYZ", PurchasePrice: dec("10")}})
	m = analytics.CalculateMetrics(vendite, nil, idx, nil)
	assert.Nil(t, m.Margin, "nessun match di catalogo: margine N/D")

	idx = matching.BuildCatalogIndex([]entity.InventoryItem{{SKU: "ABC", PurchasePrice: dec("0")}})
	m = analytics.CalculateMetrics(vendite, nil, idx, nil)
	assert.Nil(t, m.Margin, "prezzo di acquisto zero non rende il margine calcolabile")
}

func TestCalculateMetrics_MargineSoloSulleVenditeConMatch(t *testing.T) {
	catalogo := matching.BuildCatalogIndex([]entity.InventoryItem{
		{SKU: "ABC-123", Brand: "Nike", PurchasePrice: dec("50")},
	})
	vendite := []entity.Sale{
		{SKU: "abc123", Quantity: 2, Amount: dec("200"), Channel: entity.ChannelEcommerce},
		{SKU: "SENZA-MATCH", Quantity: 5, Amount: dec("9999"), Channel: entity.ChannelEcommerce},
	}

	m := analytics.CalculateMetrics(vendite, nil, catalogo, nil)
	require.NotNil(t, m.Margin)
	assert.True(t, dec("50").Equal(*m.Margin),
		"costo 100 su 200 di vendite con match: margine 50%%, non diluito sulle vendite senza match")
}

func TestCalculateMetrics_DettaglioMarketplace(t *testing.T) {
	vendite := []entity.Sale{
		{Channel: entity.ChannelMarketplace, PaymentMethod: "Amazon", Amount: dec("100"), OrderReference: "A1"},
		{Channel: entity.ChannelMarketplace, PaymentMethod: "Amazon", Amount: dec("100"), OrderReference: "A1"}, // stessa riga ordine
		{Channel: entity.ChannelMarketplace, PaymentMethod: "Amazon", Amount: dec("100"), OrderReference: "A2"},
		{Channel: entity.ChannelMarketplace, PaymentMethod: "Zalando", Amount: dec("50"), OrderReference: "Z1"},
		{Channel: entity.ChannelEcommerce, PaymentMethod: "Stripe", Amount: dec("999")}, // fuori dal dettaglio
	}
	resi := []entity.Return{
		{Channel: entity.ChannelMarketplace, PaymentMethod: "Amazon", Amount: dec("-100"), OrderReference: "A2"},
	}
	costi := map[string]entity.ChannelCostSettings{
		"amazon": {
			Method:             "Amazon",
			CommissionPercent:  dec("10"),
			ExtraCommissionPercent: dec("5"),
			FixedCost:          dec("1"),
			ReturnCost:         dec("3"),
			ApplyOnVatIncluded: true,
		},
	}

	m := analytics.CalculateMetrics(vendite, resi, nil, costi)
	require.Len(t, m.Marketplaces, 2)

	amazon := m.Marketplaces[0]
	assert.Equal(t, "Amazon", amazon.Name, "ordinato per lordo decrescente")
	assert.True(t, dec("300").Equal(amazon.GrossSales))
	assert.Equal(t, 2, amazon.OrderCount, "ordini distinti, non righe")
	assert.True(t, dec("45").Equal(amazon.TotalCommission), "(10+5)%% di 300")
	assert.True(t, dec("2").Equal(amazon.TotalFixedCost), "1 × 2 ordini")
	assert.True(t, dec("3").Equal(amazon.TotalReturnCost), "3 × 1 ordine reso")
	assert.True(t, dec("250").Equal(amazon.NetFromChannel), "300-45-2-3")
	assert.True(t, dec("150").Equal(amazon.AvgOrderValue))

	zalando := m.Marketplaces[1]
	assert.True(t, dec("50").Equal(zalando.NetFromChannel), "senza configurazione i costi sono zero")
}

func TestCalculateMetrics_TotaliMarketplaceSommaElementoPerElemento(t *testing.T) {
	vendite := []entity.Sale{
		{Channel: entity.ChannelMarketplace, PaymentMethod: "Amazon", Amount: dec("100.33"), OrderReference: "A1"},
		{Channel: entity.ChannelMarketplace, PaymentMethod: "Zalando", Amount: dec("200.77"), OrderReference: "Z1"},
		{Channel: entity.ChannelMarketplace, PaymentMethod: "Ebay", Amount: dec("55.55"), OrderReference: "E1"},
	}
	costi := map[string]entity.ChannelCostSettings{
		"amazon":  {CommissionPercent: dec("13.7"), ApplyOnVatIncluded: true},
		"zalando": {CommissionPercent: dec("7.3"), ApplyOnVatIncluded: false},
	}

	m := analytics.CalculateMetrics(vendite, nil, nil, costi)

	var somma decimal.Decimal
	for _, d := range m.Marketplaces {
		somma = somma.Add(d.NetFromChannel)
	}
	assert.True(t, somma.Equal(m.MarketplaceTotals.NetFromChannel),
		"la riga totali deve essere la somma delle righe, non un ricalcolo")
}

func TestCalculateMetrics_CommissioneSuNettoIVA(t *testing.T) {
	vendite := []entity.Sale{
		{Channel: entity.ChannelMarketplace, PaymentMethod: "Amazon", Amount: dec("122"), OrderReference: "A1"},
	}
	costi := map[string]entity.ChannelCostSettings{
		"amazon": {CommissionPercent: dec("10"), ApplyOnVatIncluded: false},
	}

	m := analytics.CalculateMetrics(vendite, nil, nil, costi)
	require.Len(t, m.Marketplaces, 1)
	assert.True(t, dec("10").Equal(m.Marketplaces[0].TotalCommission),
		"10%% di 100 (122 al netto dell'IVA 22%%)")
}

func TestSubChannelKey(t *testing.T) {
	s := entity.Sale{Channel: entity.ChannelMarketplace, PaymentMethod: "Amazon", Marketplace: "Zalando"}
	assert.Equal(t, "Amazon", analytics.SubChannelKey(s), "il metodo di pagamento prevale")

	s.PaymentMethod = ""
	assert.Equal(t, "Zalando", analytics.SubChannelKey(s))

	s.Marketplace = " "
	assert.Equal(t, "Altro Marketplace", analytics.SubChannelKey(s))

	s = entity.Sale{Channel: entity.ChannelEcommerce, PaymentMethod: "Stripe"}
	assert.Equal(t, "ecommerce", analytics.SubChannelKey(s), "fuori dal marketplace la chiave è il canale")
}
