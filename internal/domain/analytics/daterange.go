package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// Nomi delle finestre temporali supportate. Un nome sconosciuto equivale a "all".
const (
	RangeAll          = "all"
	Range7Days        = "7d"
	Range30Days       = "30d"
	Range90Days       = "90d"
	Range1Year        = "1y"
	RangeCurrentYear  = "current_year"
	RangePreviousYear = "previous_year"
	RangeCustom       = "custom"
)

// Period intervallo chiuso [Start, End].
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains indica se t cade nell'intervallo, estremi inclusi.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// ChangeType direzione di una variazione anno su anno.
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeNeutral  ChangeType = "neutral"
)

// YoYChange variazione percentuale rispetto alla stessa finestra di un anno fa.
type YoYChange struct {
	Change decimal.Decimal // percentuale, 1 decimale
	Type   ChangeType
}

// Window traduce un nome di finestra nel periodo concreto. Il secondo valore è
// false per "all" (e per qualsiasi nome sconosciuto): nessun filtro.
// Per "custom" la fine è inclusiva fino a fine giornata.
func Window(name string, custom *Period, now time.Time) (Period, bool) {
	switch name {
	case Range7Days:
		return Period{Start: now.AddDate(0, 0, -7), End: now}, true
	case Range30Days:
		return Period{Start: now.AddDate(0, 0, -30), End: now}, true
	case Range90Days:
		return Period{Start: now.AddDate(0, 0, -90), End: now}, true
	case Range1Year:
		return Period{Start: now.AddDate(-1, 0, 0), End: now}, true
	case RangeCurrentYear:
		return yearPeriod(now.Year(), now.Location()), true
	case RangePreviousYear:
		return yearPeriod(now.Year()-1, now.Location()), true
	case RangeCustom:
		if custom == nil || custom.Start.IsZero() || custom.End.IsZero() || custom.Start.After(custom.End) {
			return Period{}, false
		}
		return Period{Start: custom.Start, End: EndOfDay(custom.End)}, true
	default:
		return Period{}, false
	}
}

func yearPeriod(year int, loc *time.Location) Period {
	return Period{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year, time.December, 31, 23, 59, 59, 999999999, loc),
	}
}

// EndOfDay estende t alla fine della sua giornata (intervalli inclusivi).
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// FilterSales restituisce le vendite che cadono nella finestra indicata.
func FilterSales(sales []entity.Sale, name string, custom *Period, now time.Time) []entity.Sale {
	p, bounded := Window(name, custom, now)
	if !bounded {
		return sales
	}
	out := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if p.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}

// FilterReturns restituisce i resi che cadono nella finestra indicata.
func FilterReturns(returns []entity.Return, name string, custom *Period, now time.Time) []entity.Return {
	p, bounded := Window(name, custom, now)
	if !bounded {
		return returns
	}
	out := make([]entity.Return, 0, len(returns))
	for _, r := range returns {
		if p.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}

// CalculateYoYChange calcola la metrica sulla finestra corrente e sulla stessa
// finestra esattamente un anno prima.
//
// Convenzioni deliberate, da preservare:
//   - precedente 0 e corrente 0  → variazione 0, neutral;
//   - precedente 0 e corrente >0 → variazione 100, increase (non è un artefatto
//     di divisione per zero);
//   - finestra illimitata ("all") → nessun confronto possibile, neutral.
func CalculateYoYChange(
	sales []entity.Sale,
	name string,
	custom *Period,
	now time.Time,
	metric func([]entity.Sale) decimal.Decimal,
) YoYChange {
	p, bounded := Window(name, custom, now)
	if !bounded {
		return YoYChange{Change: decimal.Zero, Type: ChangeNeutral}
	}
	prev := Period{Start: p.Start.AddDate(-1, 0, 0), End: p.End.AddDate(-1, 0, 0)}

	var curSlice, prevSlice []entity.Sale
	for _, s := range sales {
		if p.Contains(s.Date) {
			curSlice = append(curSlice, s)
		}
		if prev.Contains(s.Date) {
			prevSlice = append(prevSlice, s)
		}
	}

	current := metric(curSlice)
	previous := metric(prevSlice)

	if previous.IsZero() {
		if current.IsZero() {
			return YoYChange{Change: decimal.Zero, Type: ChangeNeutral}
		}
		return YoYChange{Change: hundred, Type: ChangeIncrease}
	}

	change := current.Sub(previous).Div(previous).Mul(hundred).Round(1)
	switch {
	case change.IsPositive():
		return YoYChange{Change: change, Type: ChangeIncrease}
	case change.IsNegative():
		return YoYChange{Change: change, Type: ChangeDecrease}
	default:
		return YoYChange{Change: change, Type: ChangeNeutral}
	}
}

// SumSalesAmount la metrica di default per il confronto anno su anno.
func SumSalesAmount(sales []entity.Sale) decimal.Decimal {
	var tot decimal.Decimal
	for _, s := range sales {
		tot = tot.Add(s.Amount)
	}
	return tot
}
