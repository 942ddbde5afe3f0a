package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// TransactionType tipo di riga nel dettaglio transazioni.
type TransactionType string

const (
	TransactionSale   TransactionType = "sale"
	TransactionReturn TransactionType = "return"
)

// keyND bucket per i record privi della dimensione richiesta.
const keyND = "N/D"

// TransactionDetail vista denormalizzata di una vendita o di un reso, usata
// solo per le liste espandibili dei drill-down. Derivata, mai persistita.
type TransactionDetail struct {
	Type            TransactionType
	DocumentType    string
	DocumentNumber  string
	Date            time.Time
	Amount          decimal.Decimal // con segno
	Channel         string
	ChannelSpecific string
	Country         string
	Brand           string
	OrderReference  string
}

// Bucket un gruppo di un drill-down con i suoi aggregati e la lista delle
// transazioni che vi contribuiscono.
// Invariante: NetAmount == SalesAmount - ReturnsAmount.
type Bucket struct {
	Key              string
	SalesAmount      decimal.Decimal
	ReturnsAmount    decimal.Decimal
	NetAmount        decimal.Decimal
	SalesCount       int
	ReturnsCount     int
	TransactionCount int
	Transactions     []TransactionDetail
}

// AggregateByCountry raggruppa vendite e resi per paese di destinazione.
// I record dei negozi fisici sono esclusi (nessuna dimensione paese
// significativa). Bucket ordinati per SalesAmount decrescente.
func AggregateByCountry(sales []entity.Sale, returns []entity.Return) []Bucket {
	return aggregate(sales, returns,
		func(s entity.Sale) (string, bool) {
			if s.Channel.IsStore() {
				return "", false
			}
			return countryKey(s.Country), true
		},
		func(r entity.Return) (string, bool) {
			if r.Channel.IsStore() {
				return "", false
			}
			return countryKey(r.Country), true
		},
		bySalesAmountDesc,
	)
}

// AggregateByChannel raggruppa per canale online. Le vendite marketplace
// finiscono nel loro sotto-canale specifico (metodo di pagamento o nome del
// marketplace), non nel tag generico. Negozi fisici esclusi. Bucket ordinati
// per SalesAmount decrescente.
func AggregateByChannel(sales []entity.Sale, returns []entity.Return) []Bucket {
	return aggregate(sales, returns,
		func(s entity.Sale) (string, bool) {
			if s.Channel.IsStore() {
				return "", false
			}
			return SubChannelKey(s), true
		},
		func(r entity.Return) (string, bool) {
			if r.Channel.IsStore() {
				return "", false
			}
			return returnSubChannelKey(r), true
		},
		bySalesAmountDesc,
	)
}

// AggregateByDocumentType raggruppa tutti i record per tag tipo documento
// (Documento per le vendite, Reason per i resi). Bucket ordinati per
// TransactionCount decrescente.
func AggregateByDocumentType(sales []entity.Sale, returns []entity.Return) []Bucket {
	return aggregate(sales, returns,
		func(s entity.Sale) (string, bool) { return docTypeKey(s.Documento), true },
		func(r entity.Return) (string, bool) { return docTypeKey(r.Reason), true },
		byTransactionCountDesc,
	)
}

func countryKey(country string) string {
	c := strings.ToUpper(strings.TrimSpace(country))
	if c == "" {
		return keyND
	}
	return c
}

func docTypeKey(tag string) string {
	t := strings.ToUpper(strings.TrimSpace(tag))
	if t == "" {
		return keyND
	}
	return t
}

type bucketLess func(a, b *Bucket) bool

func bySalesAmountDesc(a, b *Bucket) bool {
	if !a.SalesAmount.Equal(b.SalesAmount) {
		return a.SalesAmount.GreaterThan(b.SalesAmount)
	}
	return a.Key < b.Key
}

func byTransactionCountDesc(a, b *Bucket) bool {
	if a.TransactionCount != b.TransactionCount {
		return a.TransactionCount > b.TransactionCount
	}
	return a.Key < b.Key
}

// aggregate il contratto comune dei tre drill-down: bucket per chiave, importi
// di vendita e reso (somma con segno, valore assoluto dopo), conteggi e lista
// transazioni ordinata per data decrescente.
func aggregate(
	sales []entity.Sale,
	returns []entity.Return,
	saleKey func(entity.Sale) (string, bool),
	returnKey func(entity.Return) (string, bool),
	less bucketLess,
) []Bucket {
	type acc struct {
		bucket     *Bucket
		returnsSum decimal.Decimal // con segno; l'assoluto si prende alla fine
	}
	buckets := make(map[string]*acc)
	get := func(key string) *acc {
		a, ok := buckets[key]
		if !ok {
			a = &acc{bucket: &Bucket{Key: key}}
			buckets[key] = a
		}
		return a
	}

	for _, s := range sales {
		key, ok := saleKey(s)
		if !ok {
			continue
		}
		a := get(key)
		a.bucket.SalesAmount = a.bucket.SalesAmount.Add(s.Amount)
		a.bucket.SalesCount++
		a.bucket.Transactions = append(a.bucket.Transactions, saleDetail(s))
	}
	for _, r := range returns {
		key, ok := returnKey(r)
		if !ok {
			continue
		}
		a := get(key)
		a.returnsSum = a.returnsSum.Add(r.Amount)
		a.bucket.ReturnsCount++
		a.bucket.Transactions = append(a.bucket.Transactions, returnDetail(r))
	}

	out := make([]Bucket, 0, len(buckets))
	for _, a := range buckets {
		b := a.bucket
		b.ReturnsAmount = a.returnsSum.Abs()
		b.NetAmount = b.SalesAmount.Sub(b.ReturnsAmount)
		b.TransactionCount = b.SalesCount + b.ReturnsCount
		sort.SliceStable(b.Transactions, func(i, j int) bool {
			return b.Transactions[i].Date.After(b.Transactions[j].Date)
		})
		out = append(out, *b)
	}

	sort.Slice(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

func saleDetail(s entity.Sale) TransactionDetail {
	d := TransactionDetail{
		Type:           TransactionSale,
		DocumentType:   docTypeKey(s.Documento),
		DocumentNumber: s.Numero,
		Date:           s.Date,
		Amount:         s.Amount,
		Channel:        string(s.Channel),
		Country:        countryKey(s.Country),
		Brand:          s.Brand,
		OrderReference: s.OrderReference,
	}
	if s.Channel == entity.ChannelMarketplace {
		d.ChannelSpecific = SubChannelKey(s)
	}
	return d
}

func returnDetail(r entity.Return) TransactionDetail {
	d := TransactionDetail{
		Type:           TransactionReturn,
		DocumentType:   docTypeKey(r.Reason),
		Date:           r.Date,
		Amount:         r.Amount,
		Channel:        string(r.Channel),
		Country:        countryKey(r.Country),
		OrderReference: r.OrderReference,
	}
	if r.Channel == entity.ChannelMarketplace {
		d.ChannelSpecific = returnSubChannelKey(r)
	}
	return d
}
