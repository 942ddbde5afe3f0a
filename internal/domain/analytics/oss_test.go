package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/analytics"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

func luglio2024() analytics.Period {
	return analytics.Period{
		Start: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCalculateVATByCountry_Germania(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(10), Country: "DE", Documento: "RICEVUTA", Amount: dec("121")},
	}

	out := analytics.CalculateVATByCountry(vendite, nil, luglio2024())
	require.Len(t, out, 1)

	de := out[0]
	assert.Equal(t, "DE", de.Country)
	assert.True(t, dec("121").Equal(de.BaseAmount))
	assert.True(t, dec("19").Equal(de.VATRate))
	assert.True(t, dec("22.99").Equal(de.VATAmount))
}

func TestCalculateVATByCountry_FiltroDocumento(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(10), Country: "DE", Documento: "FATTURA", Amount: dec("500")},
		{Date: giorno(11), Country: "DE", Documento: "ricevuta", Amount: dec("100")},
	}

	out := analytics.CalculateVATByCountry(vendite, nil, luglio2024())
	require.Len(t, out, 1)
	assert.True(t, dec("100").Equal(out[0].BaseAmount),
		"solo RICEVUTA entra nell'OSS, ma il confronto è case-insensitive")
}

func TestCalculateVATByCountry_ResiEPeriodo(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(10), Country: "FR", Documento: "RICEVUTA", Amount: dec("200")},
		{Date: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), Country: "FR", Documento: "RICEVUTA", Amount: dec("999")}, // fuori periodo
	}
	resi := []entity.Return{
		{Date: giorno(20), Country: "FR", Reason: "RESO", Amount: dec("-50")},
		{Date: giorno(20), Country: "FR", Reason: "NOTA CRED", Amount: dec("-500")}, // causale esclusa
	}

	out := analytics.CalculateVATByCountry(vendite, resi, luglio2024())
	require.Len(t, out, 1)

	fr := out[0]
	assert.True(t, dec("150").Equal(fr.BaseAmount), "200 - 50")
	assert.True(t, dec("30").Equal(fr.VATAmount), "20%% di 150")
}

func TestCalculateVATByCountry_FineInclusiva(t *testing.T) {
	vendite := []entity.Sale{
		{Date: time.Date(2024, 7, 31, 22, 0, 0, 0, time.UTC), Country: "ES", Documento: "RICEVUTA", Amount: dec("100")},
	}

	out := analytics.CalculateVATByCountry(vendite, nil, luglio2024())
	require.Len(t, out, 1, "la fine del periodo è inclusiva fino a fine giornata")
}

func TestCalculateVATByCountry_PaesiFuoriTabellaOmessi(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(10), Country: "IT", Documento: "RICEVUTA", Amount: dec("100")}, // paese del venditore
		{Date: giorno(10), Country: "US", Documento: "RICEVUTA", Amount: dec("100")}, // extra UE
		{Date: giorno(10), Country: "", Documento: "RICEVUTA", Amount: dec("100")},
	}

	out := analytics.CalculateVATByCountry(vendite, nil, luglio2024())
	assert.Empty(t, out, "i paesi fuori tabella non vengono azzerati, vengono omessi")
}

func TestCalculateVATByCountry_OrdinePerPaese(t *testing.T) {
	vendite := []entity.Sale{
		{Date: giorno(10), Country: "NL", Documento: "RICEVUTA", Amount: dec("10")},
		{Date: giorno(10), Country: "AT", Documento: "RICEVUTA", Amount: dec("10")},
		{Date: giorno(10), Country: "DE", Documento: "RICEVUTA", Amount: dec("10")},
	}

	out := analytics.CalculateVATByCountry(vendite, nil, luglio2024())
	require.Len(t, out, 3)
	assert.Equal(t, "AT", out[0].Country)
	assert.Equal(t, "DE", out[1].Country)
	assert.Equal(t, "NL", out[2].Country)
}

func TestVATRateFor(t *testing.T) {
	rate, ok := analytics.VATRateFor("de")
	require.True(t, ok)
	assert.True(t, dec("19").Equal(rate))

	_, ok = analytics.VATRateFor("IT")
	assert.False(t, ok, "il paese del venditore non rientra nell'OSS")
}
