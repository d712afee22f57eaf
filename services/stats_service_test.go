package services

import (
	"testing"
	"time"

	"github.com/Ashitosh2004/hotellucky/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t time.Time) *time.Time { return &t }

func TestComputeTodayStatsCountsAndRevenue(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)
	today := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	orders := []entity.Order{
		{TotalAmount: 160, Status: entity.OrderNew, CreatedAt: today},
		{TotalAmount: 90, Status: entity.OrderDelivered, CreatedAt: today},
		{TotalAmount: 200, Status: entity.OrderRejected, CreatedAt: today},
		{TotalAmount: 500, Status: entity.OrderDelivered, CreatedAt: yesterday},
	}

	stats := ComputeTodayStats(orders, now)

	// every same-day order counts, regardless of status
	assert.Equal(t, 3, stats.TodayOrders)
	// revenue excludes rejected, and yesterday's order entirely
	assert.Equal(t, 250.0, stats.TodayRevenue)
	assert.Equal(t, 1, stats.CompletedOrders)
}

func TestComputeTodayStatsDayBoundaries(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)

	orders := []entity.Order{
		{TotalAmount: 10, Status: entity.OrderNew, CreatedAt: time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)},
		{TotalAmount: 20, Status: entity.OrderNew, CreatedAt: time.Date(2025, 3, 14, 23, 59, 59, 0, time.Local)},
		{TotalAmount: 40, Status: entity.OrderNew, CreatedAt: time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)},
		{TotalAmount: 80, Status: entity.OrderNew, CreatedAt: time.Date(2025, 3, 13, 23, 59, 59, 0, time.Local)},
	}

	stats := ComputeTodayStats(orders, now)
	assert.Equal(t, 2, stats.TodayOrders)
	assert.Equal(t, 30.0, stats.TodayRevenue)
}

func TestAvgPrepTime(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.Local)
	base := time.Date(2025, 3, 14, 10, 0, 0, 0, time.Local)

	t.Run("averages delivered orders in whole minutes", func(t *testing.T) {
		orders := []entity.Order{
			{Status: entity.OrderDelivered, CreatedAt: base,
				AcceptedAt: ts(base), PreparedAt: ts(base.Add(10 * time.Minute))},
			{Status: entity.OrderDelivered, CreatedAt: base,
				AcceptedAt: ts(base), PreparedAt: ts(base.Add(15 * time.Minute))},
		}
		stats := ComputeTodayStats(orders, now)
		assert.Equal(t, 13, stats.AvgPrepTime) // 12.5 rounds up
	})

	t.Run("zero when nothing delivered", func(t *testing.T) {
		orders := []entity.Order{
			{Status: entity.OrderReady, CreatedAt: base,
				AcceptedAt: ts(base), PreparedAt: ts(base.Add(30 * time.Minute))},
		}
		stats := ComputeTodayStats(orders, now)
		assert.Equal(t, 0, stats.AvgPrepTime)
	})

	// A delivered order without its timestamps contributes nothing to the
	// sum but still counts toward the divisor. Long-standing dashboard
	// behavior; this test pins it.
	t.Run("missing timestamps stay in the divisor", func(t *testing.T) {
		orders := []entity.Order{
			{Status: entity.OrderDelivered, CreatedAt: base,
				AcceptedAt: ts(base), PreparedAt: ts(base.Add(10 * time.Minute))},
			{Status: entity.OrderDelivered, CreatedAt: base},
		}
		stats := ComputeTodayStats(orders, now)
		assert.Equal(t, 5, stats.AvgPrepTime)
		assert.Equal(t, 2, stats.CompletedOrders)
	})
}

func TestComputeKitchenStats(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.Local)
	base := time.Date(2025, 3, 14, 10, 0, 0, 0, time.Local)

	orders := []entity.Order{
		{Category: entity.CategorySouthIndian, Status: entity.OrderNew, TotalAmount: 80, CreatedAt: base},
		{Category: entity.CategorySouthIndian, Status: entity.OrderPreparing, TotalAmount: 80, CreatedAt: base},
		{Category: entity.CategorySouthIndian, Status: entity.OrderDelivered, TotalAmount: 80, CreatedAt: base,
			AcceptedAt: ts(base), PreparedAt: ts(base.Add(8 * time.Minute))},
		// yesterday's south order is active but not today's
		{Category: entity.CategorySouthIndian, Status: entity.OrderReady, TotalAmount: 80, CreatedAt: base.AddDate(0, 0, -1)},
		// the other kitchen's orders never leak in
		{Category: entity.CategoryKolhapuri, Status: entity.OrderNew, TotalAmount: 90, CreatedAt: base},
	}

	stats := ComputeKitchenStats(orders, entity.CategorySouthIndian, now)
	assert.Equal(t, 3, stats.TodayOrders)
	assert.Equal(t, 240.0, stats.TodayRevenue)
	assert.Equal(t, 1, stats.CompletedOrders)
	assert.Equal(t, 8, stats.AvgPrepTime)
	assert.Equal(t, 3, stats.ActiveOrders) // new + preparing + yesterday's ready

	kol := ComputeKitchenStats(orders, entity.CategoryKolhapuri, now)
	assert.Equal(t, 1, kol.TodayOrders)
	assert.Equal(t, 90.0, kol.TodayRevenue)
}

func TestComputeAdminStats(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.Local)
	today := time.Date(2025, 3, 14, 10, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	orders := []entity.Order{
		{Status: entity.OrderNew, TotalAmount: 300, CreatedAt: today},
		{Status: entity.OrderDelivered, TotalAmount: 150, CreatedAt: yesterday},
		{Status: entity.OrderRejected, TotalAmount: 999, CreatedAt: yesterday},
	}

	stats := ComputeAdminStats(orders, 12, now)
	assert.Equal(t, int64(12), stats.TotalMenuItems)
	assert.Equal(t, 2, stats.ActiveKitchens)
	assert.Equal(t, 100, stats.Growth) // 300 vs 150

	// growth is zero when yesterday had no revenue
	stats = ComputeAdminStats(orders[:1], 12, now)
	assert.Equal(t, 0, stats.Growth)
}

func TestComputeEarningsSeries(t *testing.T) {
	// Friday 2025-03-14; the chart week runs Sunday Mar 9 through Saturday Mar 15
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.Local)
	at := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
	}

	orders := []entity.Order{
		{Status: entity.OrderDelivered, TotalAmount: 100, CreatedAt: at(2025, 3, 14)}, // Fri
		{Status: entity.OrderDelivered, TotalAmount: 50, CreatedAt: at(2025, 3, 10)},  // Mon
		{Status: entity.OrderDelivered, TotalAmount: 70, CreatedAt: at(2025, 3, 8)},   // Sat before the week
		{Status: entity.OrderDelivered, TotalAmount: 200, CreatedAt: at(2025, 1, 20)},
		{Status: entity.OrderDelivered, TotalAmount: 400, CreatedAt: at(2024, 9, 2)}, // older than 6 months
		{Status: entity.OrderReady, TotalAmount: 999, CreatedAt: at(2025, 3, 14)},    // not delivered
	}

	series := ComputeEarningsSeries(orders, now)

	require.Len(t, series.Weekly, 7)
	assert.Equal(t, "Sun", series.Weekly[0].Label)
	assert.Equal(t, "Sat", series.Weekly[6].Label)
	assert.Equal(t, 50.0, series.Weekly[1].Earnings) // Monday
	assert.Equal(t, 100.0, series.Weekly[5].Earnings)
	assert.Equal(t, 1, series.Weekly[5].Orders)
	assert.Equal(t, 150.0, series.WeeklyTotal) // Mar 8 falls outside the week

	require.Len(t, series.Monthly, 6)
	assert.Equal(t, "Oct", series.Monthly[0].Label)
	assert.Equal(t, "Mar", series.Monthly[5].Label)
	jan := series.Monthly[3]
	assert.Equal(t, "Jan", jan.Label)
	assert.Equal(t, 200.0, jan.Earnings)
	assert.Equal(t, 1, jan.Orders)
	// current month picks up the week's orders plus Mar 8
	assert.Equal(t, 220.0, series.Monthly[5].Earnings)
	assert.Equal(t, 220.0, series.MonthlyTotal)
	// the September order predates every bucket
	assert.Equal(t, 0.0, series.Monthly[0].Earnings)
}

func TestComputeEarningsSeriesEmpty(t *testing.T) {
	series := ComputeEarningsSeries(nil, time.Date(2025, 3, 14, 18, 0, 0, 0, time.Local))
	require.Len(t, series.Weekly, 7)
	require.Len(t, series.Monthly, 6)
	assert.Equal(t, 0.0, series.WeeklyTotal)
	assert.Equal(t, 0.0, series.MonthlyTotal)
}

func TestStatsServiceEndToEnd(t *testing.T) {
	db := newTestDB(t)
	menus := newMenuService(t, db)
	orders := newOrderService(t, db)
	stats := NewStatsService(orders.Repo, menus.Repo)

	item := mustCreateItem(t, menus, "Dosa", 80, entity.CategorySouthIndian)

	o := mustPlaceOrder(t, orders, item.ID, 2, 5)
	cancelled := mustPlaceOrder(t, orders, item.ID, 1, 6)
	_, err := orders.CustomerCancel(cancelled.ID)
	require.NoError(t, err)

	got, err := stats.AdminStats()
	require.NoError(t, err)
	assert.Equal(t, 2, got.TodayOrders)
	assert.Equal(t, 160.0, got.TodayRevenue) // the cancelled order's 80 is excluded
	assert.Equal(t, int64(1), got.TotalMenuItems)

	// delivering the order makes it count as completed
	for _, status := range []string{entity.OrderAccepted, entity.OrderPreparing, entity.OrderReady, entity.OrderDelivered} {
		_, err = orders.KitchenUpdateStatus(entity.RoleSouthKitchen, o.ID, status, "")
		require.NoError(t, err)
	}
	kitchen, err := stats.KitchenStats(entity.RoleSouthKitchen)
	require.NoError(t, err)
	assert.Equal(t, 1, kitchen.CompletedOrders)
	assert.Equal(t, 0, kitchen.ActiveOrders)
}
