package service

import (
	"context"

	"github.com/wicaksn/gostore/internal/domain"
)

// ReportService exposes the read-only analytics queries. Each call is
// a single aggregate query; nothing here mutates state.
type ReportService struct {
	store             Store
	lowStockThreshold int
}

func NewReportService(store Store, lowStockThreshold int) *ReportService {
	return &ReportService{
		store:             store,
		lowStockThreshold: lowStockThreshold,
	}
}

// MonthlySales returns per-month revenue and order counts over paid
// orders.
func (s *ReportService) MonthlySales(ctx context.Context) ([]domain.MonthlySales, error) {
	return s.store.Reports().MonthlySales(ctx)
}

// BoardStats returns the dashboard counters.
func (s *ReportService) BoardStats(ctx context.Context) (*domain.BoardStats, error) {
	return s.store.Reports().BoardStats(ctx)
}

// TopProducts returns the best sellers by units sold.
func (s *ReportService) TopProducts(ctx context.Context) ([]domain.TopProduct, error) {
	return s.store.Reports().TopProducts(ctx)
}

// LowStock returns products at or below the configured threshold.
func (s *ReportService) LowStock(ctx context.Context) ([]domain.LowStockProduct, error) {
	return s.store.Reports().LowStock(ctx, s.lowStockThreshold)
}

// TopSpenders returns the customers with the highest completed
// payment totals.
func (s *ReportService) TopSpenders(ctx context.Context) ([]domain.TopSpender, error) {
	return s.store.Reports().TopSpenders(ctx)
}
