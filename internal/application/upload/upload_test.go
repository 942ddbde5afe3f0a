package upload

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

type fakeSaleRepo struct {
	sales []entity.Sale
}

func (f *fakeSaleRepo) BulkInsert(_ context.Context, sales []*entity.Sale) error {
	for _, s := range sales {
		f.sales = append(f.sales, *s)
	}
	return nil
}

func (f *fakeSaleRepo) ListAll(_ context.Context) ([]entity.Sale, error) {
	return append([]entity.Sale(nil), f.sales...), nil
}

func (f *fakeSaleRepo) ListPage(_ context.Context, limit, offset int, _ repository.SaleFilter) ([]entity.Sale, int, error) {
	return nil, len(f.sales), nil
}

func (f *fakeSaleRepo) UpdateChannelByIDs(_ context.Context, ids []string, ch entity.Channel) (int64, error) {
	var n int64
	for i := range f.sales {
		for _, id := range ids {
			if f.sales[i].ID == id {
				f.sales[i].Channel = ch
				n++
			}
		}
	}
	return n, nil
}

func (f *fakeSaleRepo) DeleteByIDs(_ context.Context, ids []string) (int64, error) {
	return 0, nil
}

func (f *fakeSaleRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(f.sales))
	f.sales = nil
	return n, nil
}

type fakeMappingRepo struct {
	mappings []entity.PaymentMapping
}

func (f *fakeMappingRepo) Upsert(_ context.Context, m entity.PaymentMapping) error {
	f.mappings = append(f.mappings, m)
	return nil
}

func (f *fakeMappingRepo) List(_ context.Context) ([]entity.PaymentMapping, error) {
	return f.mappings, nil
}

func (f *fakeMappingRepo) Delete(_ context.Context, method string) error { return nil }

type fakeUserFixRepo struct {
	fixes []entity.UserChannelMapping
}

func (f *fakeUserFixRepo) Upsert(_ context.Context, m entity.UserChannelMapping) error {
	f.fixes = append(f.fixes, m)
	return nil
}

func (f *fakeUserFixRepo) List(_ context.Context) ([]entity.UserChannelMapping, error) {
	return f.fixes, nil
}

type fakeInventoryRepo struct {
	items map[string]entity.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]entity.InventoryItem)}
}

func (f *fakeInventoryRepo) BulkInsertSkipExisting(_ context.Context, items []*entity.InventoryItem) (int, error) {
	inserted := 0
	for _, it := range items {
		if _, ok := f.items[it.SKU]; ok {
			continue
		}
		f.items[it.SKU] = *it
		inserted++
	}
	return inserted, nil
}

func (f *fakeInventoryRepo) ListAll(_ context.Context) ([]entity.InventoryItem, error) {
	out := make([]entity.InventoryItem, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeInventoryRepo) ListPage(_ context.Context, limit, offset int, brand, category string) ([]entity.InventoryItem, int, error) {
	return nil, len(f.items), nil
}

func (f *fakeInventoryRepo) DistinctBrands(_ context.Context) ([]string, error)     { return nil, nil }
func (f *fakeInventoryRepo) DistinctCategories(_ context.Context) ([]string, error) { return nil, nil }

func sampleSaleRows() []dto.SaleRow {
	return []dto.SaleRow{
		{Date: "15/03/2024", Channel: "negozio_donna", SKU: "GG-001", Quantity: 1, Price: "100,00", Amount: "100,00", Brand: "Gucci", PaymentMethod: "Contanti"},
		{Date: "16/03/2024", Channel: "", SKU: "PR-002", Quantity: 2, Price: "50,00", Amount: "100,00", Brand: "Prada", PaymentMethod: "Amazon FBA", Documento: "RICEVUTA", Numero: "42"},
		{Date: "2024-03-17", Channel: "ecommerce", SKU: "MM-003", Quantity: 1, Price: 75.5, Amount: 75.5, Brand: "Max Mara"},
	}
}

func TestSalesBulkUpload(t *testing.T) {
	repo := &fakeSaleRepo{}
	uc := NewSalesUseCase(repo, &fakeMappingRepo{}, &fakeUserFixRepo{})

	res, err := uc.BulkUpload(context.Background(), sampleSaleRows(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Processed, "tutte le righe valide vanno inserite")
	assert.Zero(t, res.SkippedDuplicates)
	assert.Zero(t, res.SkippedInvalid)
	require.Len(t, repo.sales, 3)

	for _, s := range repo.sales {
		assert.NotEmpty(t, s.ID)
		assert.False(t, s.Date.IsZero())
	}
}

func TestSalesBulkUploadRicaricoIdempotente(t *testing.T) {
	repo := &fakeSaleRepo{}
	uc := NewSalesUseCase(repo, &fakeMappingRepo{}, &fakeUserFixRepo{})
	rows := sampleSaleRows()

	first, err := uc.BulkUpload(context.Background(), rows, nil)
	require.NoError(t, err)
	require.Equal(t, len(rows), first.Processed)

	second, err := uc.BulkUpload(context.Background(), rows, nil)
	require.NoError(t, err)
	assert.Zero(t, second.Processed, "il secondo caricamento non inserisce nulla")
	assert.Equal(t, len(rows), second.SkippedDuplicates, "ogni riga ricaricata è un duplicato")
	assert.Len(t, repo.sales, len(rows))
}

func TestSalesBulkUploadRigheInvalide(t *testing.T) {
	repo := &fakeSaleRepo{}
	uc := NewSalesUseCase(repo, &fakeMappingRepo{}, &fakeUserFixRepo{})

	rows := []dto.SaleRow{
		{Date: "non-una-data", SKU: "GG-001", Amount: "10,00"},
		{Date: "15/03/2024", SKU: "", ProductID: "", Amount: "10,00"},
		{Date: "15/03/2024", SKU: "OK-1", Quantity: 1, Amount: "10,00"},
	}
	res, err := uc.BulkUpload(context.Background(), rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 2, res.SkippedInvalid)
	assert.Len(t, res.Errors, 2)
}

func TestSalesBulkUploadClassificaCanale(t *testing.T) {
	repo := &fakeSaleRepo{}
	mappings := &fakeMappingRepo{mappings: []entity.PaymentMapping{
		{Method: "Amazon FBA", MacroArea: entity.MacroAreaMarketplace, Channel: entity.ChannelMarketplace},
	}}
	uc := NewSalesUseCase(repo, mappings, &fakeUserFixRepo{})

	rows := []dto.SaleRow{
		{Date: "15/03/2024", Channel: "negozio_uomo", SKU: "A-1", Quantity: 1, Amount: "10,00", PaymentMethod: "Amazon FBA"},
		{Date: "15/03/2024", Channel: "", SKU: "B-2", Quantity: 1, Amount: "20,00", Documento: "RICEVUTA", Numero: "7"},
		{Date: "15/03/2024", Channel: "boh", SKU: "C-3", Quantity: 1, Amount: "30,00"},
	}
	_, err := uc.BulkUpload(context.Background(), rows, nil)
	require.NoError(t, err)
	require.Len(t, repo.sales, 3)

	bySKU := make(map[string]entity.Sale)
	for _, s := range repo.sales {
		bySKU[s.SKU] = s
	}
	assert.Equal(t, entity.ChannelNegozioUomo, bySKU["A-1"].Channel, "i negozi fisici non vengono mai rimappati")
	assert.Equal(t, entity.ChannelEcommerce, bySKU["B-2"].Channel, "documento+numero implica ordine e-commerce")
	assert.Equal(t, entity.ChannelUnknown, bySKU["C-3"].Channel)
}

func TestInventoryBulkUploadSaltaEsistenti(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := NewInventoryUseCase(repo)

	rows := []dto.InventoryRow{
		{SKU: "GG-001", Brand: "Gucci", PurchasePrice: "40,00", SellPrice: "100,00"},
		{SKU: "PR-002", Brand: "Prada", PurchasePrice: "30,00", SellPrice: "80,00"},
		{SKU: "", Brand: "Prada"},
		{SKU: "XX-9", Brand: ""},
	}
	first, err := uc.BulkUpload(context.Background(), rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Processed)
	assert.Equal(t, 2, first.SkippedInvalid)

	second, err := uc.BulkUpload(context.Background(), rows[:2], nil)
	require.NoError(t, err)
	assert.Zero(t, second.Processed)
	assert.Equal(t, 2, second.SkippedDuplicates, "gli SKU già presenti non vengono sovrascritti")
}

func TestReturnsBulkUpload(t *testing.T) {
	repo := &fakeReturnRepo{}
	uc := NewReturnsUseCase(repo, &fakeMappingRepo{})

	rows := []dto.ReturnRow{
		{Date: "20/03/2024", Channel: "ecommerce", SKU: "GG-001", Quantity: 1, Amount: "-100,00", Reason: "RESO"},
		{Date: "21/03/2024", Channel: "marketplace", OrderReference: "AMZ-1", Quantity: 1, Amount: "-50,00"},
	}
	res, err := uc.BulkUpload(context.Background(), rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)

	again, err := uc.BulkUpload(context.Background(), rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, again.SkippedDuplicates)

	require.Len(t, repo.returns, 2)
	assert.True(t, repo.returns[0].Amount.IsNegative(), "l'importo del reso conserva il segno")
}

type fakeReturnRepo struct {
	returns []entity.Return
}

func (f *fakeReturnRepo) BulkInsert(_ context.Context, returns []*entity.Return) error {
	for _, r := range returns {
		f.returns = append(f.returns, *r)
	}
	return nil
}

func (f *fakeReturnRepo) ListAll(_ context.Context) ([]entity.Return, error) {
	return append([]entity.Return(nil), f.returns...), nil
}

func (f *fakeReturnRepo) ListPage(_ context.Context, limit, offset int) ([]entity.Return, int, error) {
	return nil, len(f.returns), nil
}

func (f *fakeReturnRepo) DeleteByIDs(_ context.Context, ids []string) (int64, error) { return 0, nil }

func (f *fakeReturnRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(f.returns))
	f.returns = nil
	return n, nil
}
