package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/gostore/internal/domain"
)

func TestLowStockPassesConfiguredThreshold(t *testing.T) {
	store := newFakeStore()
	store.reports.lowStock = []domain.LowStockProduct{
		{SKU: "SKU-1", Name: "Cable", Stock: 2},
	}
	svc := NewReportService(store, 7)

	rows, err := svc.LowStock(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, store.reports.lowStockThreshold)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cable", rows[0].Name)
}

func TestMonthlySales(t *testing.T) {
	store := newFakeStore()
	store.reports.monthlySales = []domain.MonthlySales{
		{Year: 2026, Month: 7, OrderCount: 12, Revenue: decimal.NewFromInt(1400)},
		{Year: 2026, Month: 8, OrderCount: 3, Revenue: decimal.NewFromInt(250)},
	}
	svc := NewReportService(store, 5)

	rows, err := svc.MonthlySales(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 7, rows[0].Month)
	assert.True(t, rows[1].Revenue.Equal(decimal.NewFromInt(250)))
}

func TestBoardStats(t *testing.T) {
	store := newFakeStore()
	store.reports.boardStats = &domain.BoardStats{
		TotalUsers:    10,
		TotalProducts: 4,
		TotalOrders:   25,
		TotalRevenue:  decimal.NewFromInt(9000),
	}
	svc := NewReportService(store, 5)

	stats, err := svc.BoardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(9000)))
}
