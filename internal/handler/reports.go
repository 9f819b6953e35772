package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wicaksn/gostore/internal/domain"
	"github.com/wicaksn/gostore/internal/server"
	"github.com/wicaksn/gostore/internal/service"
)

// ReportHandler serves the read-only analytics endpoints.
type ReportHandler struct {
	Handler
	reports *service.ReportService
}

func NewReportHandler(s *server.Server, reports *service.ReportService) *ReportHandler {
	return &ReportHandler{
		Handler: NewHandler(s),
		reports: reports,
	}
}

// ReportRequest has no parameters; every report is a plain GET.
type ReportRequest struct{}

func (r *ReportRequest) Validate() error { return nil }

func (h *ReportHandler) MonthlySales(c echo.Context, _ *ReportRequest) ([]domain.MonthlySales, error) {
	return h.reports.MonthlySales(c.Request().Context())
}

func (h *ReportHandler) BoardStats(c echo.Context, _ *ReportRequest) (*domain.BoardStats, error) {
	return h.reports.BoardStats(c.Request().Context())
}

func (h *ReportHandler) TopProducts(c echo.Context, _ *ReportRequest) ([]domain.TopProduct, error) {
	return h.reports.TopProducts(c.Request().Context())
}

func (h *ReportHandler) LowStock(c echo.Context, _ *ReportRequest) ([]domain.LowStockProduct, error) {
	return h.reports.LowStock(c.Request().Context())
}

func (h *ReportHandler) TopSpenders(c echo.Context, _ *ReportRequest) ([]domain.TopSpender, error) {
	return h.reports.TopSpenders(c.Request().Context())
}

// ExportMonthlySales renders the monthly sales report as CSV for
// download.
func (h *ReportHandler) ExportMonthlySales(c echo.Context, _ *ReportRequest) ([]byte, error) {
	rows, err := h.reports.MonthlySales(c.Request().Context())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"year", "month", "order_count", "revenue"}); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Month),
			strconv.Itoa(row.OrderCount),
			row.Revenue.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
