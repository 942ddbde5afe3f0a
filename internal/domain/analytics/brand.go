package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// Macro-canali per la ripartizione del brand.
const (
	macroNegozio     = "Negozio"
	macroSito        = "Sito"
	macroMarketplace = "Marketplace"
	macroAltro       = "Altro"
)

// BrandShare una quota della ripartizione di un brand.
type BrandShare struct {
	Key     string
	Amount  decimal.Decimal
	Percent decimal.Decimal // quota del totale brand, 2 decimali
}

// BrandAnalytics le metriche di un singolo brand con tre ripartizioni
// percentuali: per paese, per macro-canale e per canale specifico. Ogni
// ripartizione copre il 100% del totale del brand (tutte zero se il totale è zero).
type BrandAnalytics struct {
	Brand            string
	TotalAmount      decimal.Decimal
	TransactionCount int
	ByCountry        []BrandShare
	ByMacroChannel   []BrandShare
	ByChannel        []BrandShare
}

// CalculateBrandAnalytics calcola le metriche del brand selezionato sulle
// vendite passate (già filtrate e con canale risolto). Il confronto sul nome
// del brand è insensibile a maiuscole e spazi.
func CalculateBrandAnalytics(brand string, sales []entity.Sale) BrandAnalytics {
	want := strings.ToLower(strings.TrimSpace(brand))
	out := BrandAnalytics{Brand: strings.TrimSpace(brand)}

	byCountry := make(map[string]decimal.Decimal)
	byMacro := make(map[string]decimal.Decimal)
	byChannel := make(map[string]decimal.Decimal)

	for _, s := range sales {
		if strings.ToLower(strings.TrimSpace(s.Brand)) != want {
			continue
		}
		out.TotalAmount = out.TotalAmount.Add(s.Amount)
		out.TransactionCount++

		byCountry[countryKey(s.Country)] = byCountry[countryKey(s.Country)].Add(s.Amount)
		byMacro[macroChannel(s.Channel)] = byMacro[macroChannel(s.Channel)].Add(s.Amount)
		byChannel[SubChannelKey(s)] = byChannel[SubChannelKey(s)].Add(s.Amount)
	}

	out.ByCountry = shares(byCountry, out.TotalAmount)
	out.ByMacroChannel = shares(byMacro, out.TotalAmount)
	out.ByChannel = shares(byChannel, out.TotalAmount)
	return out
}

func macroChannel(c entity.Channel) string {
	switch {
	case c.IsStore():
		return macroNegozio
	case c == entity.ChannelEcommerce:
		return macroSito
	case c == entity.ChannelMarketplace:
		return macroMarketplace
	default:
		return macroAltro
	}
}

func shares(amounts map[string]decimal.Decimal, total decimal.Decimal) []BrandShare {
	out := make([]BrandShare, 0, len(amounts))
	for key, amount := range amounts {
		share := BrandShare{Key: key, Amount: amount}
		if total.IsPositive() {
			share.Percent = amount.Div(total).Mul(hundred).Round(2)
		}
		out = append(out, share)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Key < out[j].Key
	})
	return out
}
