package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/analytics"
)

// DashboardUseCase calcola le metriche aggregate del dashboard per la finestra
// richiesta, con confronto anno su anno e cache read-through.
type DashboardUseCase struct {
	loader *Loader
	cache  Cache
}

// NewDashboardUseCase costruisce il caso d'uso. cache può essere nil.
func NewDashboardUseCase(loader *Loader, cache Cache) *DashboardUseCase {
	return &DashboardUseCase{loader: loader, cache: cache}
}

// GetMetrics calcola le metriche sulla finestra indicata.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context, rangeName string, custom *analytics.Period) (dto.DashboardDTO, error) {
	key := cacheKey("dashboard", rangeName, custom)
	var cached dto.DashboardDTO
	if cacheGet(ctx, uc.cache, key, &cached) {
		return cached, nil
	}

	ds, err := uc.loader.Load(ctx)
	if err != nil {
		return dto.DashboardDTO{}, err
	}

	now := time.Now()
	sales := analytics.FilterSales(ds.Sales, rangeName, custom, now)
	returns := analytics.FilterReturns(ds.Returns, rangeName, custom, now)

	metrics := analytics.CalculateMetrics(sales, returns, ds.Catalog, ds.Costs)
	yoy := analytics.CalculateYoYChange(ds.Sales, rangeName, custom, now, analytics.SumSalesAmount)

	out := dto.FromMetrics(metrics, yoy)
	cacheSet(ctx, uc.cache, key, out)
	return out, nil
}

// cacheKey chiave deterministica per finestra; il periodo custom entra con le
// date esplicite.
func cacheKey(prefix, rangeName string, custom *analytics.Period) string {
	if custom != nil {
		return fmt.Sprintf("%s:%s:%s_%s", prefix, rangeName,
			custom.Start.Format(dateLayout), custom.End.Format(dateLayout))
	}
	return fmt.Sprintf("%s:%s", prefix, rangeName)
}
