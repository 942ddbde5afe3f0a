package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain"
)

// OSSHandler gestisce il report IVA/OSS e i suoi export.
type OSSHandler struct {
	oss *usecase.OSSUseCase
}

// NewOSSHandler costruisce l'handler.
func NewOSSHandler(oss *usecase.OSSUseCase) *OSSHandler {
	return &OSSHandler{oss: oss}
}

func (h *OSSHandler) period(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate %q", domain.ErrInvalidPeriod, c.Query("startDate"))
	}
	end, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate %q", domain.ErrInvalidPeriod, c.Query("endDate"))
	}
	return start, end, nil
}

// GetReport godoc
// @Summary      Report IVA/OSS per paese
// @Tags         oss
// @Produce      json
// @Param        startDate  query  string  true  "Inizio periodo (YYYY-MM-DD)"
// @Param        endDate    query  string  true  "Fine periodo (YYYY-MM-DD)"
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/oss/report [get]
func (h *OSSHandler) GetReport(c *fiber.Ctx) error {
	start, end, err := h.period(c)
	if err != nil {
		return fail(c, err)
	}
	report, err := h.oss.Report(c.Context(), start, end)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, report)
}

// GetReportPDF godoc
// @Summary      Report IVA/OSS in PDF
// @Tags         oss
// @Produce      application/pdf
// @Param        startDate  query  string  true  "Inizio periodo (YYYY-MM-DD)"
// @Param        endDate    query  string  true  "Fine periodo (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  ErrorResponse
// @Router       /api/oss/report/pdf [get]
func (h *OSSHandler) GetReportPDF(c *fiber.Ctx) error {
	start, end, err := h.period(c)
	if err != nil {
		return fail(c, err)
	}
	raw, err := h.oss.ReportPDF(c.Context(), start, end)
	if err != nil {
		return fail(c, err)
	}
	filename := fmt.Sprintf("oss_%s_%s.pdf", start.Format("20060102"), end.Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}

// GetReportXML godoc
// @Summary      Report IVA/OSS in XML
// @Tags         oss
// @Produce      application/xml
// @Param        startDate  query  string  true  "Inizio periodo (YYYY-MM-DD)"
// @Param        endDate    query  string  true  "Fine periodo (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  ErrorResponse
// @Router       /api/oss/report/xml [get]
func (h *OSSHandler) GetReportXML(c *fiber.Ctx) error {
	start, end, err := h.period(c)
	if err != nil {
		return fail(c, err)
	}
	raw, err := h.oss.ReportXML(c.Context(), start, end)
	if err != nil {
		return fail(c, err)
	}
	filename := fmt.Sprintf("oss_%s_%s.xml", start.Format("20060102"), end.Format("20060102"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}
