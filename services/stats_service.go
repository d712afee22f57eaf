package services

import (
	"math"
	"time"

	"github.com/Ashitosh2004/hotellucky/entity"
	"github.com/Ashitosh2004/hotellucky/repository"
)

type TodayStats struct {
	TodayOrders     int     `json:"todayOrders"`
	TodayRevenue    float64 `json:"todayRevenue"`
	AvgPrepTime     int     `json:"avgPrepTime"` // whole minutes
	CompletedOrders int     `json:"completedOrders"`
}

type AdminStats struct {
	TodayStats
	Growth         int   `json:"growth"` // revenue vs. yesterday, percent
	TotalMenuItems int64 `json:"totalMenuItems"`
	ActiveKitchens int   `json:"activeKitchens"`
}

type KitchenStats struct {
	TodayStats
	ActiveOrders int `json:"activeOrders"`
}

// EarningsPoint is one bar of the admin earnings chart: a day or a month,
// its delivered revenue and how many delivered orders produced it.
type EarningsPoint struct {
	Label    string  `json:"label"`
	Date     string  `json:"date"`
	Earnings float64 `json:"earnings"`
	Orders   int     `json:"orders"`
}

type EarningsSeries struct {
	Weekly       []EarningsPoint `json:"weekly"`  // current calendar week, Sunday first
	Monthly      []EarningsPoint `json:"monthly"` // last 6 calendar months
	WeeklyTotal  float64         `json:"weeklyTotal"`
	MonthlyTotal float64         `json:"monthlyTotal"`
}

type StatsService struct {
	OrderRepo *repository.OrderRepository
	MenuRepo  *repository.MenuRepository
}

func NewStatsService(orderRepo *repository.OrderRepository, menuRepo *repository.MenuRepository) *StatsService {
	return &StatsService{OrderRepo: orderRepo, MenuRepo: menuRepo}
}

// ComputeTodayStats derives the same-day counters from a full order list.
// Same-day means createdAt within the local calendar day of now.
//
// avgPrepTime averages (preparedAt - acceptedAt) over today's delivered
// orders; a delivered order missing either timestamp contributes zero to
// the sum but still counts toward the divisor. That skew matches the
// behavior the dashboards have always shown and is pinned by tests.
func ComputeTodayStats(orders []entity.Order, now time.Time) TodayStats {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var stats TodayStats
	var prepTotal time.Duration

	for _, o := range orders {
		if o.CreatedAt.Before(dayStart) || !o.CreatedAt.Before(dayEnd) {
			continue
		}
		stats.TodayOrders++

		if o.Status != entity.OrderRejected {
			stats.TodayRevenue += o.TotalAmount
		}
		if o.Status == entity.OrderDelivered {
			stats.CompletedOrders++
			if o.AcceptedAt != nil && o.PreparedAt != nil {
				prepTotal += o.PreparedAt.Sub(*o.AcceptedAt)
			}
		}
	}

	if stats.CompletedOrders > 0 {
		avg := prepTotal / time.Duration(stats.CompletedOrders)
		stats.AvgPrepTime = int(math.Round(avg.Minutes()))
	}
	return stats
}

// revenueForDay sums non-rejected totals for the calendar day containing t.
func revenueForDay(orders []entity.Order, t time.Time) float64 {
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var sum float64
	for _, o := range orders {
		if o.CreatedAt.Before(dayStart) || !o.CreatedAt.Before(dayEnd) {
			continue
		}
		if o.Status != entity.OrderRejected {
			sum += o.TotalAmount
		}
	}
	return sum
}

// ComputeAdminStats adds the dashboard extras on top of the daily counters.
func ComputeAdminStats(orders []entity.Order, totalMenuItems int64, now time.Time) AdminStats {
	stats := AdminStats{
		TodayStats:     ComputeTodayStats(orders, now),
		TotalMenuItems: totalMenuItems,
		ActiveKitchens: 2, // south-indian and kolhapuri
	}

	yesterday := revenueForDay(orders, now.AddDate(0, 0, -1))
	if yesterday > 0 {
		stats.Growth = int(math.Round((stats.TodayRevenue - yesterday) / yesterday * 100))
	}
	return stats
}

// ComputeKitchenStats scopes the counters to one kitchen's category. Active
// orders are everything still in the pipeline, regardless of day.
func ComputeKitchenStats(orders []entity.Order, category string, now time.Time) KitchenStats {
	scoped := make([]entity.Order, 0, len(orders))
	active := 0
	for _, o := range orders {
		if o.Category != category {
			continue
		}
		scoped = append(scoped, o)
		if o.Active() {
			active++
		}
	}
	return KitchenStats{
		TodayStats:   ComputeTodayStats(scoped, now),
		ActiveOrders: active,
	}
}

// ComputeEarningsSeries builds the admin earnings chart from delivered
// orders only. Weekly buckets cover the current calendar week starting
// Sunday, monthly buckets the last 6 calendar months; each order lands in
// the bucket containing its createdAt. MonthlyTotal is the current month's
// earnings, not the sum of all six buckets.
func ComputeEarningsSeries(orders []entity.Order, now time.Time) EarningsSeries {
	delivered := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == entity.OrderDelivered {
			delivered = append(delivered, o)
		}
	}

	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -int(now.Weekday()))

	series := EarningsSeries{
		Weekly:  make([]EarningsPoint, 0, 7),
		Monthly: make([]EarningsPoint, 0, 6),
	}

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		next := day.AddDate(0, 0, 1)
		point := EarningsPoint{Label: day.Format("Mon"), Date: day.Format("2006-01-02")}
		for _, o := range delivered {
			if !o.CreatedAt.Before(day) && o.CreatedAt.Before(next) {
				point.Earnings += o.TotalAmount
				point.Orders++
			}
		}
		series.Weekly = append(series.Weekly, point)
		series.WeeklyTotal += point.Earnings
	}

	for i := 5; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		next := month.AddDate(0, 1, 0)
		point := EarningsPoint{Label: month.Format("Jan"), Date: month.Format("2006-01")}
		for _, o := range delivered {
			if !o.CreatedAt.Before(month) && o.CreatedAt.Before(next) {
				point.Earnings += o.TotalAmount
				point.Orders++
			}
		}
		series.Monthly = append(series.Monthly, point)
	}
	series.MonthlyTotal = series.Monthly[len(series.Monthly)-1].Earnings

	return series
}

// ----- Service wrappers: full re-scan per request, no caching -----

func (s *StatsService) AdminStats() (*AdminStats, error) {
	orders, err := s.OrderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	menuCount, err := s.MenuRepo.CountVisible()
	if err != nil {
		return nil, err
	}
	stats := ComputeAdminStats(orders, menuCount, time.Now())
	return &stats, nil
}

func (s *StatsService) Earnings() (*EarningsSeries, error) {
	orders, err := s.OrderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	series := ComputeEarningsSeries(orders, time.Now())
	return &series, nil
}

func (s *StatsService) KitchenStats(role string) (*KitchenStats, error) {
	category := entity.KitchenCategory(role)
	if category == "" {
		return nil, ErrForbidden
	}
	orders, err := s.OrderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	stats := ComputeKitchenStats(orders, category, time.Now())
	return &stats, nil
}
