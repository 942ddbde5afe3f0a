package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// Tag fiscali ammessi nel regime OSS: il reporting copre solo queste categorie
// di documento, qualunque sia la data.
const (
	ossSaleDocument   = "RICEVUTA"
	ossReturnDocument = "RESO"
)

// euVATRates aliquote IVA standard per paese di destinazione UE, Italia
// esclusa in quanto paese del venditore. Percentuali fisse del regime OSS.
var euVATRates = map[string]float64{
	"AT": 20, "BE": 21, "BG": 20, "CY": 19, "CZ": 21,
	"DE": 19, "DK": 25, "EE": 22, "ES": 21, "FI": 25.5,
	"FR": 20, "GR": 24, "HR": 25, "HU": 27, "IE": 23,
	"LT": 21, "LU": 17, "LV": 21, "MT": 18, "NL": 21,
	"PL": 23, "PT": 23, "RO": 19, "SE": 25, "SI": 22,
	"SK": 23,
}

// CountryVAT imponibile e IVA dovuta per un paese di destinazione.
type CountryVAT struct {
	Country       string
	SalesAmount   decimal.Decimal
	ReturnsAmount decimal.Decimal
	BaseAmount    decimal.Decimal // SalesAmount - ReturnsAmount
	VATRate       decimal.Decimal
	VATAmount     decimal.Decimal
	SalesCount    int
	ReturnsCount  int
}

// VATRateFor l'aliquota OSS del paese; false se il paese non è in tabella.
func VATRateFor(country string) (decimal.Decimal, bool) {
	rate, ok := euVATRates[strings.ToUpper(strings.TrimSpace(country))]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(rate), true
}

// CalculateVATByCountry calcola imponibile e IVA dovuta per paese nel periodo
// indicato (fine inclusiva fino a fine giornata). Entrano solo le vendite con
// documento RICEVUTA e i resi con causale RESO (confronto insensibile a
// maiuscole e spazi). I paesi fuori tabella o senza transazioni sono omessi.
// Output ordinato per codice paese crescente.
func CalculateVATByCountry(sales []entity.Sale, returns []entity.Return, period Period) []CountryVAT {
	period.End = EndOfDay(period.End)

	type acc struct {
		sales      decimal.Decimal
		returnsSum decimal.Decimal // con segno
		salesN     int
		returnsN   int
	}
	buckets := make(map[string]*acc)
	get := func(country string) *acc {
		a, ok := buckets[country]
		if !ok {
			a = &acc{}
			buckets[country] = a
		}
		return a
	}

	for _, s := range sales {
		if !period.Contains(s.Date) || docTypeKey(s.Documento) != ossSaleDocument {
			continue
		}
		country := countryKey(s.Country)
		if _, ok := euVATRates[country]; !ok {
			continue
		}
		a := get(country)
		a.sales = a.sales.Add(s.Amount)
		a.salesN++
	}
	for _, r := range returns {
		if !period.Contains(r.Date) || docTypeKey(r.Reason) != ossReturnDocument {
			continue
		}
		country := countryKey(r.Country)
		if _, ok := euVATRates[country]; !ok {
			continue
		}
		a := get(country)
		a.returnsSum = a.returnsSum.Add(r.Amount)
		a.returnsN++
	}

	out := make([]CountryVAT, 0, len(buckets))
	for country, a := range buckets {
		rate, _ := VATRateFor(country)
		row := CountryVAT{
			Country:       country,
			SalesAmount:   a.sales.Round(2),
			ReturnsAmount: a.returnsSum.Abs().Round(2),
			VATRate:       rate,
			SalesCount:    a.salesN,
			ReturnsCount:  a.returnsN,
		}
		row.BaseAmount = row.SalesAmount.Sub(row.ReturnsAmount)
		row.VATAmount = row.BaseAmount.Mul(rate).Div(hundred).Round(2)
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}
