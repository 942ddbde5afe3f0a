package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/analytics"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

var adesso = time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

func venditeDiProva() []entity.Sale {
	return []entity.Sale{
		{Date: adesso.AddDate(0, 0, -3), Amount: dec("100")},  // negli ultimi 7 giorni
		{Date: adesso.AddDate(0, 0, -20), Amount: dec("200")}, // negli ultimi 30
		{Date: adesso.AddDate(0, 0, -60), Amount: dec("300")}, // negli ultimi 90
		{Date: time.Date(2023, 8, 10, 0, 0, 0, 0, time.UTC), Amount: dec("50")},  // anno scorso, dentro la finestra 1y
		{Date: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC), Amount: dec("1000")}, // due anni fa
	}
}

func TestFilterSales_FinestreNominate(t *testing.T) {
	vendite := venditeDiProva()

	assert.Len(t, analytics.FilterSales(vendite, analytics.Range7Days, nil, adesso), 1)
	assert.Len(t, analytics.FilterSales(vendite, analytics.Range30Days, nil, adesso), 2)
	assert.Len(t, analytics.FilterSales(vendite, analytics.Range90Days, nil, adesso), 3)
	assert.Len(t, analytics.FilterSales(vendite, analytics.Range1Year, nil, adesso), 4)
	assert.Len(t, analytics.FilterSales(vendite, analytics.RangeCurrentYear, nil, adesso), 3)
	assert.Len(t, analytics.FilterSales(vendite, analytics.RangePreviousYear, nil, adesso), 1)
}

func TestFilterSales_SconosciutoEquivaleAll(t *testing.T) {
	vendite := venditeDiProva()
	assert.Len(t, analytics.FilterSales(vendite, "qualcosa", nil, adesso), len(vendite))
	assert.Len(t, analytics.FilterSales(vendite, analytics.RangeAll, nil, adesso), len(vendite))
}

func TestFilterSales_CustomInclusivoFineGiornata(t *testing.T) {
	vendite := []entity.Sale{
		{Date: time.Date(2024, 7, 10, 23, 30, 0, 0, time.UTC), Amount: dec("1")},
	}
	custom := &analytics.Period{
		Start: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
	}
	got := analytics.FilterSales(vendite, analytics.RangeCustom, custom, adesso)
	assert.Len(t, got, 1, "la fine del periodo custom è inclusiva fino a fine giornata")
}

func TestCalculateYoYChange_Convenzioni(t *testing.T) {
	// Corrente 150, anno precedente 50 → +200%.
	vendite := []entity.Sale{
		{Date: adesso.AddDate(0, 0, -2), Amount: dec("150")},
		{Date: adesso.AddDate(-1, 0, -2), Amount: dec("50")},
	}
	got := analytics.CalculateYoYChange(vendite, analytics.Range7Days, nil, adesso, analytics.SumSalesAmount)
	assert.Equal(t, analytics.ChangeIncrease, got.Type)
	assert.True(t, dec("200").Equal(got.Change))

	// Precedente 0 e corrente 0 → 0, neutral.
	got = analytics.CalculateYoYChange(nil, analytics.Range7Days, nil, adesso, analytics.SumSalesAmount)
	assert.Equal(t, analytics.ChangeNeutral, got.Type)
	assert.True(t, got.Change.IsZero())

	// Precedente 0 e corrente >0 → 100, increase: convenzione deliberata.
	vendite = []entity.Sale{{Date: adesso.AddDate(0, 0, -2), Amount: dec("10")}}
	got = analytics.CalculateYoYChange(vendite, analytics.Range7Days, nil, adesso, analytics.SumSalesAmount)
	assert.Equal(t, analytics.ChangeIncrease, got.Type)
	assert.True(t, dec("100").Equal(got.Change))

	// Calo → decrease, 1 decimale.
	vendite = []entity.Sale{
		{Date: adesso.AddDate(0, 0, -2), Amount: dec("90")},
		{Date: adesso.AddDate(-1, 0, -2), Amount: dec("120")},
	}
	got = analytics.CalculateYoYChange(vendite, analytics.Range7Days, nil, adesso, analytics.SumSalesAmount)
	assert.Equal(t, analytics.ChangeDecrease, got.Type)
	assert.True(t, dec("-25").Equal(got.Change))
}

func TestCalculateYoYChange_FinestraIllimitata(t *testing.T) {
	vendite := venditeDiProva()
	got := analytics.CalculateYoYChange(vendite, analytics.RangeAll, nil, adesso, analytics.SumSalesAmount)
	assert.Equal(t, analytics.ChangeNeutral, got.Type, "su 'all' non esiste una finestra di confronto")
}

func TestWindow_AnniDiCalendario(t *testing.T) {
	p, ok := analytics.Window(analytics.RangeCurrentYear, nil, adesso)
	require.True(t, ok)
	assert.Equal(t, 2024, p.Start.Year())
	assert.Equal(t, time.January, p.Start.Month())
	assert.Equal(t, 2024, p.End.Year())
	assert.Equal(t, time.December, p.End.Month())

	p, ok = analytics.Window(analytics.RangePreviousYear, nil, adesso)
	require.True(t, ok)
	assert.Equal(t, 2023, p.Start.Year())
	assert.Equal(t, 2023, p.End.Year())
}

func TestSumSalesAmount(t *testing.T) {
	tot := analytics.SumSalesAmount([]entity.Sale{{Amount: dec("1.5")}, {Amount: dec("2.5")}})
	assert.True(t, decimal.NewFromInt(4).Equal(tot))
}
