package dedup_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/dedup"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

func vendita(sku string, qty int, amount float64) entity.Sale {
	return entity.Sale{
		Date:     time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		SKU:      sku,
		Quantity: qty,
		Amount:   decimal.NewFromFloat(amount),
	}
}

func TestSaleSignature_Deterministica(t *testing.T) {
	a := vendita("ABC-123", 2, 200)
	b := vendita("abc-123 ", 2, 200)
	assert.Equal(t, dedup.SaleSignature(a), dedup.SaleSignature(b),
		"la formattazione dello SKU non deve cambiare la firma")

	c := vendita("ABC-123", 2, 200)
	c.Amount = decimal.RequireFromString("200.00")
	assert.Equal(t, dedup.SaleSignature(a), dedup.SaleSignature(c),
		"200 e 200.00 sono lo stesso importo")
}

func TestSaleSignature_CampiDiscriminanti(t *testing.T) {
	base := vendita("ABC-123", 2, 200)

	diversa := vendita("ABC-123", 3, 200)
	assert.NotEqual(t, dedup.SaleSignature(base), dedup.SaleSignature(diversa))

	diversa = vendita("ABC-123", 2, 199.99)
	assert.NotEqual(t, dedup.SaleSignature(base), dedup.SaleSignature(diversa))

	diversa = vendita("XYZ", 2, 200)
	assert.NotEqual(t, dedup.SaleSignature(base), dedup.SaleSignature(diversa))
}

func TestSaleSignature_FallbackProductID(t *testing.T) {
	s := vendita("", 1, 50)
	s.ProductID = "LEG-1"
	alias := vendita("LEG-1", 1, 50)
	assert.Equal(t, dedup.SaleSignature(alias), dedup.SaleSignature(s))
}

func TestReturnSignature(t *testing.T) {
	r := entity.Return{
		Date:           time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		OrderReference: "ORD-1",
		Quantity:       1,
		Amount:         decimal.NewFromInt(-80),
	}
	r2 := r
	assert.Equal(t, dedup.ReturnSignature(r), dedup.ReturnSignature(r2))

	r2.OrderReference = ""
	r2.SKU = "abc"
	assert.NotEqual(t, dedup.ReturnSignature(r), dedup.ReturnSignature(r2),
		"senza riferimento ordine la firma cade sullo SKU")
}

func TestSignature_CollisioneDocumentata(t *testing.T) {
	// Due clienti che comprano stesso SKU/quantità/prezzo lo stesso giorno sono
	// indistinguibili: la firma è un'euristica.
	a := vendita("ABC-123", 1, 100)
	b := vendita("ABC-123", 1, 100)
	b.ID = "altro-id"
	assert.Equal(t, dedup.SaleSignature(a), dedup.SaleSignature(b))
}
