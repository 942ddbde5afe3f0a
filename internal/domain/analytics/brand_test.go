package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/analytics"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

func TestCalculateBrandAnalytics(t *testing.T) {
	vendite := []entity.Sale{
		{Brand: "Nike", Channel: entity.ChannelNegozioDonna, Country: "IT", Amount: dec("100")},
		{Brand: "nike ", Channel: entity.ChannelEcommerce, Country: "DE", Amount: dec("60")},
		{Brand: "Nike", Channel: entity.ChannelMarketplace, PaymentMethod: "Amazon", Country: "DE", Amount: dec("40")},
		{Brand: "Prada", Channel: entity.ChannelEcommerce, Country: "FR", Amount: dec("999")}, // altro brand
	}

	got := analytics.CalculateBrandAnalytics("Nike", vendite)

	assert.True(t, dec("200").Equal(got.TotalAmount), "il confronto sul brand è case-insensitive")
	assert.Equal(t, 3, got.TransactionCount)

	// Per paese: DE 100 (50%), IT 100 (50%).
	require.Len(t, got.ByCountry, 2)
	var sommaPct decimal.Decimal
	for _, q := range got.ByCountry {
		sommaPct = sommaPct.Add(q.Percent)
	}
	assert.True(t, dec("100").Equal(sommaPct), "le quote per paese coprono il 100%% del brand")

	// Per macro-canale: Negozio 100, Sito 60, Marketplace 40.
	require.Len(t, got.ByMacroChannel, 3)
	assert.Equal(t, "Negozio", got.ByMacroChannel[0].Key)
	assert.True(t, dec("50").Equal(got.ByMacroChannel[0].Percent))
	assert.Equal(t, "Sito", got.ByMacroChannel[1].Key)
	assert.True(t, dec("30").Equal(got.ByMacroChannel[1].Percent))
	assert.Equal(t, "Marketplace", got.ByMacroChannel[2].Key)
	assert.True(t, dec("20").Equal(got.ByMacroChannel[2].Percent))

	// Per canale specifico: il marketplace finisce nel suo sotto-canale.
	chiavi := make([]string, 0, len(got.ByChannel))
	for _, q := range got.ByChannel {
		chiavi = append(chiavi, q.Key)
	}
	assert.Contains(t, chiavi, "Amazon")
	assert.Contains(t, chiavi, "ecommerce")
	assert.Contains(t, chiavi, "negozio_donna")
}

func TestCalculateBrandAnalytics_TotaleZero(t *testing.T) {
	got := analytics.CalculateBrandAnalytics("Nike", []entity.Sale{
		{Brand: "Prada", Channel: entity.ChannelEcommerce, Amount: dec("10")},
	})

	assert.True(t, got.TotalAmount.IsZero())
	assert.Equal(t, 0, got.TransactionCount)
	assert.Empty(t, got.ByCountry)
	assert.Empty(t, got.ByMacroChannel)
}
