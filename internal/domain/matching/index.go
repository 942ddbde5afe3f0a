// Package matching risolve lo SKU grezzo di una vendita in una voce di catalogo
// nonostante la formattazione incoerente delle sorgenti di caricamento
// ("ABC-123", "abc123", "abc 123" devono colpire la stessa voce).
package matching

import (
	"github.com/shopspring/decimal"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/normalize"
)

// Match la voce di catalogo risolta per una vendita.
type Match struct {
	Brand         string
	PurchasePrice decimal.Decimal
}

// keyFuncs le tre normalizzazioni provate in sequenza sul lookup: rigorosa
// (solo alfanumerico), intermedia (senza separatori), semplice (trim+maiuscole).
// L'ordine rigorosa→intermedia→semplice è quello che massimizza i match reali e
// non va alterato.
var keyFuncs = []func(any) string{
	normalize.MatchKeyStrict,
	normalize.MatchKeyLoose,
	normalize.Sku,
}

// CatalogIndex indice di catalogo costruito una volta per batch con tutte e tre
// le varianti di chiave pre-popolate. First-write-wins per variante: un
// duplicato successivo nel catalogo non sovrascrive un mapping già stabilito.
type CatalogIndex struct {
	entries map[string]Match
}

// BuildCatalogIndex costruisce l'indice inserendo ogni SKU del catalogo sotto
// tutte e tre le varianti di chiave. Costruire una volta e riusare: ricalcolare
// l'indice a ogni lookup costerebbe O(n·m).
func BuildCatalogIndex(items []entity.InventoryItem) *CatalogIndex {
	idx := &CatalogIndex{entries: make(map[string]Match, len(items)*3)}
	for _, it := range items {
		m := Match{Brand: it.Brand, PurchasePrice: it.PurchasePrice}
		for _, key := range keyFuncs {
			k := key(it.SKU)
			if k == "" {
				continue
			}
			if _, exists := idx.entries[k]; !exists {
				idx.entries[k] = m
			}
		}
	}
	return idx
}

// Lookup prova le tre chiavi in ordine di priorità e restituisce la prima voce
// trovata. L'assenza di match è un esito normale e atteso, non un errore: il
// brand resta non riconosciuto e la vendita non contribuisce al margine.
func (idx *CatalogIndex) Lookup(rawSKU string) (Match, bool) {
	if idx == nil || rawSKU == "" {
		return Match{}, false
	}
	for _, key := range keyFuncs {
		k := key(rawSKU)
		if k == "" {
			continue
		}
		if m, ok := idx.entries[k]; ok {
			return m, true
		}
	}
	return Match{}, false
}

// LookupSale risolve usando lo SKU canonico e in subordine l'alias legacy.
func (idx *CatalogIndex) LookupSale(s entity.Sale) (Match, bool) {
	if m, ok := idx.Lookup(s.SKU); ok {
		return m, ok
	}
	return idx.Lookup(s.ProductID)
}

// Size numero di chiavi indicizzate (tutte le varianti incluse).
func (idx *CatalogIndex) Size() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}
