// Package normalize canonicalizza SKU, numeri in formato valuta e date
// flessibili provenienti dai file caricati. Nessuna funzione restituisce mai un
// errore: un valore malformato diventa un default sicuro (stringa vuota, zero,
// data assente) così una riga sporca non interrompe mai un batch.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// excelEpochOffset giorni tra il 1899-12-30 (epoca seriale Excel) e il 1970-01-01.
const excelEpochOffset = 25569

var (
	nonAlnumRe   = regexp.MustCompile(`[^A-Z0-9]`)
	separatorRe  = regexp.MustCompile(`[-_./\s]`)
	flexDateRe   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})(?:\s+(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?)?$`)
	currencyRepl = strings.NewReplacer("€", "", "EUR", "", " ", "")
)

// Sku normalizzazione di presentazione: trim e maiuscole.
// Idempotente: Sku(Sku(x)) == Sku(x). Vuota per nil o stringa vuota.
func Sku(v any) string {
	return strings.ToUpper(strings.TrimSpace(toString(v)))
}

// MatchKeyLoose chiave di matching intermedia: come Sku, ma rimuove anche
// separatori (-_./) e spazi interni. Il resto della punteggiatura rimane.
// Da usare solo per lookup di catalogo, mai per la visualizzazione.
func MatchKeyLoose(v any) string {
	return separatorRe.ReplaceAllString(Sku(v), "")
}

// MatchKeyStrict chiave di matching rigorosa: solo lettere e cifre maiuscole.
// Da usare solo per lookup di catalogo, mai per la visualizzazione.
func MatchKeyStrict(v any) string {
	return nonAlnumRe.ReplaceAllString(MatchKeyLoose(v), "")
}

// ParseEuroNumber interpreta un numero eventualmente formattato alla europea.
// Se '.' e ',' compaiono entrambi, '.' è separatore delle migliaia e ',' il
// decimale ("1.234,56" → 1234.56); se compare solo ',', è il decimale.
// Restituisce zero su qualsiasi input non interpretabile.
func ParseEuroNumber(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	}

	s := strings.TrimSpace(toString(v))
	s = currencyRepl.Replace(s)
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return decimal.Zero
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0 && lastComma > lastDot:
		// Convenzione europea: '.' migliaia, ',' decimale ("1.234,56").
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case lastDot >= 0 && lastComma >= 0:
		// Convenzione anglosassone: ',' migliaia, '.' decimale ("1,234.56").
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseQuantity interpreta una quantità come intero; zero su input non valido.
func ParseQuantity(v any) int {
	return int(ParseEuroNumber(v).IntPart())
}

// ParseDateFlexible interpreta una data nei formati accettati dai caricamenti:
// time.Time nativo, seriale Excel numerico (giorni dal 1899-12-30), ISO-8601,
// oppure "G/M/A[ H:M[:S]]" con anno a 2 o 4 cifre (≤30 → anni 2000, altrimenti
// 1900). Il secondo valore è false per qualsiasi input non interpretabile o per
// date di calendario inesistenti (es. 31/02/2024).
func ParseDateFlexible(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d.UTC(), true
	case float64:
		return fromExcelSerial(d)
	case float32:
		return fromExcelSerial(float64(d))
	case int:
		return fromExcelSerial(float64(d))
	case int64:
		return fromExcelSerial(float64(d))
	}

	s := strings.TrimSpace(toString(v))
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	m := flexDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day := atoi(m[1])
	month := atoi(m[2])
	year := atoi(m[3])
	if len(m[3]) == 2 {
		if year <= 30 {
			year += 2000
		} else {
			year += 1900
		}
	}
	hour, minute, sec := atoi(m[4]), atoi(m[5]), atoi(m[6])

	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC)
	// Round-trip dei campi di calendario: time.Date normalizza 31/02 in 2/03,
	// qui invece deve risultare una data inesistente.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	if hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, false
	}
	return t, true
}

func fromExcelSerial(serial float64) (time.Time, bool) {
	if serial <= 0 {
		return time.Time{}, false
	}
	ms := int64((serial - excelEpochOffset) * 24 * 60 * 60 * 1000)
	return time.UnixMilli(ms).UTC(), true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
