package matching_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/matching"
)

func catalogo(items ...entity.InventoryItem) *matching.CatalogIndex {
	return matching.BuildCatalogIndex(items)
}

func TestLookup_VariantiDiSeparatore(t *testing.T) {
	idx := catalogo(entity.InventoryItem{
		SKU:           "ABC-123",
		Brand:         "Nike",
		PurchasePrice: decimal.NewFromInt(50),
	})

	for _, raw := range []string{"ABC-123", "abc123", "abc 123", " ABC_123 ", "abc.123"} {
		m, ok := idx.Lookup(raw)
		require.True(t, ok, "lo SKU %q deve risolvere la stessa voce di catalogo", raw)
		assert.Equal(t, "Nike", m.Brand)
		assert.True(t, decimal.NewFromInt(50).Equal(m.PurchasePrice))
	}
}

func TestLookup_AssenzaNonEUnErrore(t *testing.T) {
	idx := catalogo(entity.InventoryItem{SKU: "XYZ", Brand: "Prada"})

	_, ok := idx.Lookup("ABC-123")
	assert.False(t, ok, "nessun match è un esito normale")

	_, ok = idx.Lookup("")
	assert.False(t, ok)

	var nilIdx *matching.CatalogIndex
	_, ok = nilIdx.Lookup("XYZ")
	assert.False(t, ok, "indice nil non deve andare in panico")
}

func TestBuildCatalogIndex_FirstWriteWins(t *testing.T) {
	idx := catalogo(
		entity.InventoryItem{SKU: "ABC-123", Brand: "Nike", PurchasePrice: decimal.NewFromInt(50)},
		entity.InventoryItem{SKU: "abc123", Brand: "Adidas", PurchasePrice: decimal.NewFromInt(99)},
	)

	m, ok := idx.Lookup("abc123")
	require.True(t, ok)
	assert.Equal(t, "Nike", m.Brand, "un duplicato di catalogo non sovrascrive il mapping già stabilito")
}

func TestLookupSale_FallbackSuProductID(t *testing.T) {
	idx := catalogo(entity.InventoryItem{SKU: "DEF-9", Brand: "Gucci", PurchasePrice: decimal.NewFromInt(80)})

	m, ok := idx.LookupSale(entity.Sale{SKU: "", ProductID: "def 9"})
	require.True(t, ok, "l'alias legacy deve valere come fallback")
	assert.Equal(t, "Gucci", m.Brand)
}
