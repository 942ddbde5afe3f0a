// Package dedup deriva una firma per record usata per saltare le righe
// ri-caricate. È un'euristica, non una deduplica crittografica: due transazioni
// genuinamente distinte con stessi data/SKU/quantità/importo collidono e la
// seconda viene scartata. Limite accettato e documentato; includere
// documento/numero nella firma cambierebbe il comportamento osservabile.
package dedup

import (
	"strconv"
	"strings"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/normalize"
)

const sep = "|"

// SaleSignature firma di una vendita: data, SKU (o alias legacy), quantità,
// importo. Deterministica rispetto alla formattazione dell'input.
func SaleSignature(s entity.Sale) string {
	sku := s.SKU
	if strings.TrimSpace(sku) == "" {
		sku = s.ProductID
	}
	return strings.Join([]string{
		s.Date.UTC().Format("2006-01-02"),
		normalize.Sku(sku),
		strconv.Itoa(s.Quantity),
		s.Amount.StringFixed(2),
	}, sep)
}

// ReturnSignature firma di un reso: data, riferimento ordine (o SKU), quantità,
// importo.
func ReturnSignature(r entity.Return) string {
	ref := strings.TrimSpace(r.OrderReference)
	if ref == "" {
		ref = normalize.Sku(r.SKU)
	}
	return strings.Join([]string{
		r.Date.UTC().Format("2006-01-02"),
		ref,
		strconv.Itoa(r.Quantity),
		r.Amount.StringFixed(2),
	}, sep)
}
