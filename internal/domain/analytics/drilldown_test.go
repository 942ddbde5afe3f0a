package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/analytics"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

func TestAggregateByCountry(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(1), Channel: entity.ChannelEcommerce, Country: "DE", Amount: dec("100")},
		{Date: giorno(2), Channel: entity.ChannelEcommerce, Country: "de", Amount: dec("50")},
		{Date: giorno(3), Channel: entity.ChannelMarketplace, Country: "FR", Amount: dec("80")},
		{Date: giorno(4), Channel: entity.ChannelNegozioDonna, Country: "IT", Amount: dec("999")}, // escluso
	}
	resi := []entity.Return{
		{Date: giorno(5), Channel: entity.ChannelEcommerce, Country: "DE", Amount: dec("-30")},
		{Date: giorno(5), Channel: entity.ChannelEcommerce, Country: "DE", Amount: dec("10")},
	}

	buckets := analytics.AggregateByCountry(vendite, resi)
	require.Len(t, buckets, 2, "i record dei negozi fisici restano fuori")

	de := buckets[0]
	assert.Equal(t, "DE", de.Key, "ordinato per vendite decrescenti")
	assert.True(t, dec("150").Equal(de.SalesAmount), "il paese è case-insensitive")
	assert.True(t, dec("20").Equal(de.ReturnsAmount), "abs(-30+10), non 40")
	assert.True(t, dec("130").Equal(de.NetAmount))
	assert.Equal(t, 2, de.SalesCount)
	assert.Equal(t, 2, de.ReturnsCount)
	assert.Equal(t, 4, de.TransactionCount)

	assert.Equal(t, "FR", buckets[1].Key)
}

func TestAggregate_InvariantiDeiBucket(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(1), Channel: entity.ChannelEcommerce, Country: "DE", Amount: dec("10.10")},
		{Date: giorno(2), Channel: entity.ChannelEcommerce, Country: "FR", Amount: dec("20.20")},
		{Date: giorno(3), Channel: entity.ChannelMarketplace, Country: "ES", Amount: dec("30.30")},
	}
	resi := []entity.Return{
		{Date: giorno(4), Channel: entity.ChannelEcommerce, Country: "FR", Amount: dec("-5")},
	}

	buckets := analytics.AggregateByCountry(vendite, resi)

	var sommaVendite decimal.Decimal
	for _, b := range buckets {
		sommaVendite = sommaVendite.Add(b.SalesAmount)
		assert.True(t, b.NetAmount.Equal(b.SalesAmount.Sub(b.ReturnsAmount)),
			"netAmount == salesAmount - returnsAmount per il bucket %s", b.Key)
	}
	assert.True(t, dec("60.60").Equal(sommaVendite),
		"nessuna vendita persa né contata due volte")
}

func TestAggregateByChannel_SottoCanaleMarketplace(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(1), Channel: entity.ChannelMarketplace, PaymentMethod: "Amazon", Amount: dec("100")},
		{Date: giorno(2), Channel: entity.ChannelMarketplace, Marketplace: "Zalando", Amount: dec("60")},
		{Date: giorno(3), Channel: entity.ChannelMarketplace, Amount: dec("10")},
		{Date: giorno(4), Channel: entity.ChannelEcommerce, PaymentMethod: "Stripe", Amount: dec("70")},
		{Date: giorno(5), Channel: entity.ChannelNegozioUomo, Amount: dec("999")}, // escluso
	}

	buckets := analytics.AggregateByChannel(vendite, nil)
	require.Len(t, buckets, 4)

	chiavi := make([]string, 0, len(buckets))
	for _, b := range buckets {
		chiavi = append(chiavi, b.Key)
	}
	assert.Equal(t, []string{"Amazon", "ecommerce", "Zalando", "Altro Marketplace"}, chiavi,
		"marketplace nel sotto-canale specifico, ecommerce sul canale, mai il tag generico 'marketplace'")
}

func TestAggregateByDocumentType(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(1), Channel: entity.ChannelEcommerce, Documento: "RICEVUTA", Amount: dec("10")},
		{Date: giorno(2), Channel: entity.ChannelEcommerce, Documento: "ricevuta ", Amount: dec("20")},
		{Date: giorno(3), Channel: entity.ChannelNegozioDonna, Documento: "FATTURA", Amount: dec("500")},
	}
	resi := []entity.Return{
		{Date: giorno(4), Channel: entity.ChannelEcommerce, Reason: "RESO", Amount: dec("-10")},
	}

	buckets := analytics.AggregateByDocumentType(vendite, resi)
	require.Len(t, buckets, 3, "il drill-down per documento include anche i negozi")

	assert.Equal(t, "RICEVUTA", buckets[0].Key, "ordinato per numero di transazioni decrescente")
	assert.Equal(t, 2, buckets[0].TransactionCount)
	assert.True(t, dec("30").Equal(buckets[0].SalesAmount))
}

func TestAggregate_TransazioniOrdinatePerDataDecrescente(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(1), Channel: entity.ChannelEcommerce, Country: "DE", Amount: dec("10")},
		{Date: giorno(9), Channel: entity.ChannelEcommerce, Country: "DE", Amount: dec("20")},
		{Date: giorno(5), Channel: entity.ChannelEcommerce, Country: "DE", Amount: dec("30")},
	}

	buckets := analytics.AggregateByCountry(vendite, nil)
	require.Len(t, buckets, 1)
	tx := buckets[0].Transactions
	require.Len(t, tx, 3)
	assert.True(t, tx[0].Date.After(tx[1].Date) && tx[1].Date.After(tx[2].Date))
	assert.Equal(t, analytics.TransactionSale, tx[0].Type)
}

func TestAggregate_DettaglioReso(t *testing.T) {
	resi := []entity.Return{
		{Date: giorno(2), Channel: entity.ChannelMarketplace, PaymentMethod: "Amazon",
			Country: "DE", Amount: dec("-50"), Reason: "RESO", OrderReference: "A9"},
	}

	buckets := analytics.AggregateByChannel(nil, resi)
	require.Len(t, buckets, 1)
	require.Len(t, buckets[0].Transactions, 1)

	d := buckets[0].Transactions[0]
	assert.Equal(t, analytics.TransactionReturn, d.Type)
	assert.Equal(t, "RESO", d.DocumentType)
	assert.True(t, dec("-50").Equal(d.Amount), "l'importo resta con segno nel dettaglio")
	assert.Equal(t, "Amazon", d.ChannelSpecific)
	assert.Equal(t, "A9", d.OrderReference)
}
