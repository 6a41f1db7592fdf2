package services

import (
	"context"
	"sort"
	"time"

	"kampus-admin/internal/adapters/persistence/models"
	"kampus-admin/internal/adapters/persistence/repositories"
	"kampus-admin/internal/pkg/pricing"
)

// StatsService computes revenue statistics. Every request reads a full
// snapshot of non-deleted customers and aggregates in memory; nothing is
// cached between calls.
type StatsService struct {
	customerRepo repositories.CustomerRepository
	codeRepo     repositories.CodeRepository
	now          func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(
	customerRepo repositories.CustomerRepository,
	codeRepo repositories.CodeRepository,
) *StatsService {
	return &StatsService{
		customerRepo: customerRepo,
		codeRepo:     codeRepo,
		now:          time.Now,
	}
}

// RevenueBucket is a named aggregation scope: summed revenue, customer
// count, and the average guarded against empty buckets
type RevenueBucket struct {
	Revenue        float64 `json:"revenue"`
	CustomerCount  int     `json:"customer_count"`
	AverageRevenue float64 `json:"average_revenue"`
}

// FinancialStats groups revenue buckets by time window, all computed from
// the customer creation timestamps
type FinancialStats struct {
	Daily   RevenueBucket `json:"daily"`
	Weekly  RevenueBucket `json:"weekly"`
	Monthly RevenueBucket `json:"monthly"`
	Yearly  RevenueBucket `json:"yearly"`
	Total   RevenueBucket `json:"total"`
}

// CustomerRevenue is one row of the per-customer revenue ledger
type CustomerRevenue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Revenue   float64   `json:"revenue"`
	CreatedAt time.Time `json:"created_at"`
}

// CodeStats aggregates customers attributed to one collaboration code
type CodeStats struct {
	CodeID         string  `json:"code_id"`
	Code           string  `json:"code"`
	CustomerCount  int     `json:"customer_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	AverageRevenue float64 `json:"average_revenue"`
}

// CollaborationStats holds per-code aggregates for active codes plus the
// bucket of customers who signed up without a code
type CollaborationStats struct {
	Stats       []CodeStats   `json:"stats"`
	WithoutCode RevenueBucket `json:"without_code"`
}

// GetFinancialStats buckets non-deleted customers into day, week (Monday
// start), month, year, and all-time windows over their creation timestamps
func (s *StatsService) GetFinancialStats(ctx context.Context) (*FinancialStats, error) {
	customers, err := s.customerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dailyStart := startOfDay(now)
	weeklyStart := startOfWeek(now)
	monthlyStart := startOfMonth(now)
	yearlyStart := startOfYear(now)

	return &FinancialStats{
		Daily:   bucketSince(customers, dailyStart),
		Weekly:  bucketSince(customers, weeklyStart),
		Monthly: bucketSince(customers, monthlyStart),
		Yearly:  bucketSince(customers, yearlyStart),
		Total:   bucketAll(customers),
	}, nil
}

// GetCustomerRevenue returns one ledger row per non-deleted customer,
// sorted by descending revenue
func (s *StatsService) GetCustomerRevenue(ctx context.Context) ([]CustomerRevenue, error) {
	customers, err := s.customerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	ledger := make([]CustomerRevenue, len(customers))
	for i, c := range customers {
		ledger[i] = CustomerRevenue{
			ID:        c.ID,
			Name:      c.FullName(),
			Email:     c.Email,
			Revenue:   pricing.Sum(c.Prices),
			CreatedAt: c.CreatedAt,
		}
	}

	sort.SliceStable(ledger, func(i, j int) bool {
		return ledger[i].Revenue > ledger[j].Revenue
	})

	return ledger, nil
}

// GetCollaborationStats aggregates non-deleted customers per currently
// active code (newest code first), matching on the code text snapshot, plus
// a separate bucket for customers without any code
func (s *StatsService) GetCollaborationStats(ctx context.Context) (*CollaborationStats, error) {
	codes, err := s.codeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	// Group customers by their code snapshot
	byCode := make(map[string][]*models.Customer)
	var withoutCode []*models.Customer
	for _, c := range customers {
		if c.HasCode() {
			byCode[*c.Code] = append(byCode[*c.Code], c)
		} else {
			withoutCode = append(withoutCode, c)
		}
	}

	stats := make([]CodeStats, len(codes))
	for i, code := range codes {
		bucket := bucketAll(byCode[code.Code])
		stats[i] = CodeStats{
			CodeID:         code.ID,
			Code:           code.Code,
			CustomerCount:  bucket.CustomerCount,
			TotalRevenue:   bucket.Revenue,
			AverageRevenue: bucket.AverageRevenue,
		}
	}

	return &CollaborationStats{
		Stats:       stats,
		WithoutCode: bucketAll(withoutCode),
	}, nil
}

// bucketSince aggregates customers created at or after the window start
func bucketSince(customers []*models.Customer, start time.Time) RevenueBucket {
	var bucket RevenueBucket
	for _, c := range customers {
		if c.CreatedAt.Before(start) {
			continue
		}
		bucket.Revenue += pricing.Sum(c.Prices)
		bucket.CustomerCount++
	}
	bucket.AverageRevenue = average(bucket.Revenue, bucket.CustomerCount)
	return bucket
}

// bucketAll aggregates every customer in the slice
func bucketAll(customers []*models.Customer) RevenueBucket {
	var bucket RevenueBucket
	for _, c := range customers {
		bucket.Revenue += pricing.Sum(c.Prices)
		bucket.CustomerCount++
	}
	bucket.AverageRevenue = average(bucket.Revenue, bucket.CustomerCount)
	return bucket
}

// average guards the divide-by-zero on empty buckets
func average(revenue float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return revenue / float64(count)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the most recent Monday at midnight
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -daysSinceMonday)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}
