package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/analytics"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// DrilldownUseCase i drill-down espandibili del dashboard: per paese, per
// canale online, per tipo documento e per singolo brand.
type DrilldownUseCase struct {
	loader *Loader
	cache  Cache
}

// NewDrilldownUseCase costruisce il caso d'uso. cache può essere nil.
func NewDrilldownUseCase(loader *Loader, cache Cache) *DrilldownUseCase {
	return &DrilldownUseCase{loader: loader, cache: cache}
}

// Countries drill-down per paese di destinazione (negozi fisici esclusi).
func (uc *DrilldownUseCase) Countries(ctx context.Context, rangeName string, custom *analytics.Period) ([]dto.BucketDTO, error) {
	return uc.buckets(ctx, "drilldown:countries", rangeName, custom, analytics.AggregateByCountry)
}

// Channels drill-down per canale online, marketplace esplosi per sotto-canale.
func (uc *DrilldownUseCase) Channels(ctx context.Context, rangeName string, custom *analytics.Period) ([]dto.BucketDTO, error) {
	return uc.buckets(ctx, "drilldown:channels", rangeName, custom, analytics.AggregateByChannel)
}

// Documents drill-down per tipo documento, tutti i record inclusi.
func (uc *DrilldownUseCase) Documents(ctx context.Context, rangeName string, custom *analytics.Period) ([]dto.BucketDTO, error) {
	return uc.buckets(ctx, "drilldown:documents", rangeName, custom, analytics.AggregateByDocumentType)
}

func (uc *DrilldownUseCase) buckets(
	ctx context.Context,
	prefix, rangeName string,
	custom *analytics.Period,
	aggregate func([]entity.Sale, []entity.Return) []analytics.Bucket,
) ([]dto.BucketDTO, error) {
	key := cacheKey(prefix, rangeName, custom)
	var cached []dto.BucketDTO
	if cacheGet(ctx, uc.cache, key, &cached) {
		return cached, nil
	}

	ds, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sales := analytics.FilterSales(ds.Sales, rangeName, custom, now)
	returns := analytics.FilterReturns(ds.Returns, rangeName, custom, now)

	out := dto.FromBuckets(aggregate(sales, returns))
	cacheSet(ctx, uc.cache, key, out)
	return out, nil
}

// Brand metriche e ripartizioni del brand indicato.
func (uc *DrilldownUseCase) Brand(ctx context.Context, brand, rangeName string, custom *analytics.Period) (dto.BrandAnalyticsDTO, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return dto.BrandAnalyticsDTO{}, fmt.Errorf("%w: brand mancante", domain.ErrInvalidInput)
	}

	key := cacheKey("drilldown:brand:"+strings.ToLower(brand), rangeName, custom)
	var cached dto.BrandAnalyticsDTO
	if cacheGet(ctx, uc.cache, key, &cached) {
		return cached, nil
	}

	ds, err := uc.loader.Load(ctx)
	if err != nil {
		return dto.BrandAnalyticsDTO{}, err
	}
	sales := analytics.FilterSales(ds.Sales, rangeName, custom, time.Now())

	out := dto.FromBrandAnalytics(analytics.CalculateBrandAnalytics(brand, sales))
	cacheSet(ctx, uc.cache, key, out)
	return out, nil
}
