package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/analytics"
)

// OSSReportRenderer serializza un report OSS in un formato scaricabile
// (PDF, XML). Implementato in infrastruttura.
type OSSReportRenderer interface {
	Render(report dto.OSSReportDTO) ([]byte, error)
}

// OSSUseCase il calcolatore IVA/OSS per le vendite intra-UE.
type OSSUseCase struct {
	loader *Loader
	pdf    OSSReportRenderer
	xml    OSSReportRenderer
}

// NewOSSUseCase costruisce il caso d'uso. I renderer possono essere nil se il
// relativo export non è esposto.
func NewOSSUseCase(loader *Loader, pdf, xml OSSReportRenderer) *OSSUseCase {
	return &OSSUseCase{loader: loader, pdf: pdf, xml: xml}
}

// Report calcola imponibile e IVA dovuta per paese nel periodo indicato.
func (uc *OSSUseCase) Report(ctx context.Context, start, end time.Time) (dto.OSSReportDTO, error) {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return dto.OSSReportDTO{}, fmt.Errorf("%w: periodo OSS", domain.ErrInvalidPeriod)
	}
	ds, err := uc.loader.Load(ctx)
	if err != nil {
		return dto.OSSReportDTO{}, err
	}
	period := analytics.Period{Start: start, End: analytics.EndOfDay(end)}
	rows := analytics.CalculateVATByCountry(ds.Sales, ds.Returns, period)
	return dto.FromVATReport(period, rows), nil
}

// ReportPDF il report OSS reso come documento PDF.
func (uc *OSSUseCase) ReportPDF(ctx context.Context, start, end time.Time) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("%w: export PDF non configurato", domain.ErrInvalidInput)
	}
	report, err := uc.Report(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Render(report)
}

// ReportXML il report OSS reso come documento XML.
func (uc *OSSUseCase) ReportXML(ctx context.Context, start, end time.Time) ([]byte, error) {
	if uc.xml == nil {
		return nil, fmt.Errorf("%w: export XML non configurato", domain.ErrInvalidInput)
	}
	report, err := uc.Report(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return uc.xml.Render(report)
}
