package services

import (
	"context"
	"testing"
	"time"

	"kampus-admin/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, so the week window (Monday start) cuts mid-week
var statsNow = time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)

func newStatsFixture() (*StatsService, *fakeCustomerRepo, *fakeCodeRepo) {
	customerRepo := newFakeCustomerRepo()
	codeRepo := newFakeCodeRepo()
	svc := NewStatsService(customerRepo, codeRepo)
	svc.now = func() time.Time { return statsNow }
	return svc, customerRepo, codeRepo
}

func addCustomer(repo *fakeCustomerRepo, prices string, createdAt time.Time, code *string, deleted bool) *models.Customer {
	c := &models.Customer{
		Name:      "Test",
		Surname:   "Customer",
		Email:     "test@example.com",
		Prices:    prices,
		Code:      code,
		CreatedAt: createdAt,
		IsDeleted: deleted,
	}
	_ = repo.Create(context.Background(), c)
	return c
}

func TestFinancialStatsWindows(t *testing.T) {
	svc, customerRepo, _ := newStatsFixture()

	// Created today
	addCustomer(customerRepo, "[100]", statsNow.Add(-2*time.Hour), nil, false)
	// Created Monday this week, before today
	addCustomer(customerRepo, "[200]", time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC), nil, false)
	// Created Sunday, previous week but same month
	addCustomer(customerRepo, "[400]", time.Date(2026, time.August, 23, 9, 0, 0, 0, time.UTC), nil, false)
	// Created in January, same year
	addCustomer(customerRepo, "[800]", time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC), nil, false)
	// Created last year
	addCustomer(customerRepo, "[1600]", time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC), nil, false)

	stats, err := svc.GetFinancialStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 100.0, stats.Daily.Revenue)
	assert.Equal(t, 1, stats.Daily.CustomerCount)

	assert.Equal(t, 300.0, stats.Weekly.Revenue)
	assert.Equal(t, 2, stats.Weekly.CustomerCount)

	assert.Equal(t, 700.0, stats.Monthly.Revenue)
	assert.Equal(t, 3, stats.Monthly.CustomerCount)

	assert.Equal(t, 1500.0, stats.Yearly.Revenue)
	assert.Equal(t, 4, stats.Yearly.CustomerCount)

	assert.Equal(t, 3100.0, stats.Total.Revenue)
	assert.Equal(t, 5, stats.Total.CustomerCount)
	assert.Equal(t, 620.0, stats.Total.AverageRevenue)
}

func TestFinancialStatsExcludesDeleted(t *testing.T) {
	svc, customerRepo, _ := newStatsFixture()

	addCustomer(customerRepo, "[100]", statsNow.Add(-time.Hour), nil, false)
	addCustomer(customerRepo, "[9999]", statsNow.Add(-time.Hour), nil, true)

	stats, err := svc.GetFinancialStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 100.0, stats.Total.Revenue)
	assert.Equal(t, 1, stats.Total.CustomerCount)
}

func TestFinancialStatsEmpty(t *testing.T) {
	svc, _, _ := newStatsFixture()

	stats, err := svc.GetFinancialStats(context.Background())
	require.NoError(t, err)

	// No customers: everything zero, averages must not divide by zero
	assert.Equal(t, 0.0, stats.Total.Revenue)
	assert.Equal(t, 0, stats.Total.CustomerCount)
	assert.Equal(t, 0.0, stats.Total.AverageRevenue)
	assert.Equal(t, 0.0, stats.Daily.AverageRevenue)
}

func TestFinancialStatsMixedPriceFormats(t *testing.T) {
	svc, customerRepo, _ := newStatsFixture()

	addCustomer(customerRepo, "[100, 200]", statsNow.Add(-time.Hour), nil, false)
	addCustomer(customerRepo, "50, 25", statsNow.Add(-time.Hour), nil, false)
	addCustomer(customerRepo, "not a price", statsNow.Add(-time.Hour), nil, false)

	stats, err := svc.GetFinancialStats(context.Background())
	require.NoError(t, err)

	// The unparseable customer still counts, contributing zero revenue
	assert.Equal(t, 375.0, stats.Total.Revenue)
	assert.Equal(t, 3, stats.Total.CustomerCount)
	assert.Equal(t, 125.0, stats.Total.AverageRevenue)
}

func TestCustomerRevenueLedgerSortedDescending(t *testing.T) {
	svc, customerRepo, _ := newStatsFixture()

	addCustomer(customerRepo, "[100]", statsNow, nil, false)
	addCustomer(customerRepo, "[500]", statsNow, nil, false)
	addCustomer(customerRepo, "[250]", statsNow, nil, false)
	addCustomer(customerRepo, "[9999]", statsNow, nil, true)

	ledger, err := svc.GetCustomerRevenue(context.Background())
	require.NoError(t, err)

	require.Len(t, ledger, 3)
	assert.Equal(t, 500.0, ledger[0].Revenue)
	assert.Equal(t, 250.0, ledger[1].Revenue)
	assert.Equal(t, 100.0, ledger[2].Revenue)
}

func TestCollaborationStats(t *testing.T) {
	svc, customerRepo, codeRepo := newStatsFixture()

	active := &models.CollaborationCode{Code: "SUMMER26", IsActive: true}
	require.NoError(t, codeRepo.Create(context.Background(), active))
	inactive := &models.CollaborationCode{Code: "OLD25", IsActive: false}
	require.NoError(t, codeRepo.Create(context.Background(), inactive))
	empty := &models.CollaborationCode{Code: "FRESH", IsActive: true}
	require.NoError(t, codeRepo.Create(context.Background(), empty))

	summer := "SUMMER26"
	old := "OLD25"
	addCustomer(customerRepo, "[100]", statsNow, &summer, false)
	addCustomer(customerRepo, "[300]", statsNow, &summer, false)
	// Inactive code holder is not listed under any active bucket
	addCustomer(customerRepo, "[50]", statsNow, &old, false)
	// No code at all
	addCustomer(customerRepo, "[70]", statsNow, nil, false)
	// Deleted customers never count
	addCustomer(customerRepo, "[9999]", statsNow, &summer, true)

	stats, err := svc.GetCollaborationStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.Stats, 2)

	var summerStats, freshStats *CodeStats
	for i := range stats.Stats {
		switch stats.Stats[i].Code {
		case "SUMMER26":
			summerStats = &stats.Stats[i]
		case "FRESH":
			freshStats = &stats.Stats[i]
		}
	}

	require.NotNil(t, summerStats)
	assert.Equal(t, 2, summerStats.CustomerCount)
	assert.Equal(t, 400.0, summerStats.TotalRevenue)
	assert.Equal(t, 200.0, summerStats.AverageRevenue)

	// A code without customers shows up with zeroed buckets
	require.NotNil(t, freshStats)
	assert.Equal(t, 0, freshStats.CustomerCount)
	assert.Equal(t, 0.0, freshStats.TotalRevenue)
	assert.Equal(t, 0.0, freshStats.AverageRevenue)

	assert.Equal(t, 1, stats.WithoutCode.CustomerCount)
	assert.Equal(t, 70.0, stats.WithoutCode.Revenue)
}

func TestStartOfWeekIsMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday",
			in:   time.Date(2026, time.August, 26, 15, 30, 0, 0, time.UTC),
			want: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday stays monday",
			in:   time.Date(2026, time.August, 24, 0, 0, 1, 0, time.UTC),
			want: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the previous monday",
			in:   time.Date(2026, time.August, 30, 23, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, startOfWeek(tt.in))
		})
	}
}
