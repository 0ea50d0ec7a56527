package catalog

import (
	"testing"
	"time"

	"thattukada/internal/domain"
)

func TestComputeDashboardStats_TodayRevenue(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.Local)
	orders := []domain.Order{
		{ID: "o1", Total: 100, CreatedAt: now.Add(-time.Hour)},
		{ID: "o2", Total: 200, CreatedAt: now.Add(-2 * time.Hour)},
	}

	stats := ComputeDashboardStats(nil, orders, now)
	if stats.TotalRevenue != 300 {
		t.Fatalf("total revenue expected 300, got %d", stats.TotalRevenue)
	}
	if stats.TodayOrders != 2 {
		t.Fatalf("today orders expected 2, got %d", stats.TodayOrders)
	}
}

func TestComputeDashboardStats_TodayBoundary(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 30, 0, 0, time.Local)
	orders := []domain.Order{
		{ID: "today", Total: 50, CreatedAt: midnight(now)},                      // ровно полночь — сегодня
		{ID: "yesterday", Total: 70, CreatedAt: midnight(now).Add(-time.Minute)},
	}

	stats := ComputeDashboardStats(nil, orders, now)
	if stats.TodayOrders != 1 {
		t.Fatalf("today orders expected 1, got %d", stats.TodayOrders)
	}
	// выручка считается по всем заказам, не только сегодняшним
	if stats.TotalRevenue != 120 {
		t.Fatalf("total revenue expected 120, got %d", stats.TotalRevenue)
	}
}

func TestComputeDashboardStats_LowStock(t *testing.T) {
	products := []domain.Product{
		{ID: "p0", Stock: 0},  // нет на складе — не low stock
		{ID: "p1", Stock: 1},
		{ID: "p9", Stock: 9},
		{ID: "p10", Stock: 10}, // граница не включается
		{ID: "p50", Stock: 50},
	}

	stats := ComputeDashboardStats(products, nil, time.Now())
	if stats.LowStockCount != 2 {
		t.Fatalf("low stock expected 2, got %d", stats.LowStockCount)
	}
	if stats.TotalProducts != 5 {
		t.Fatalf("total products expected 5, got %d", stats.TotalProducts)
	}
}

func TestComputeDashboardStats_SalesByDay(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	day := func(offset int, h int) time.Time {
		return midnight(now).AddDate(0, 0, offset).Add(time.Duration(h) * time.Hour)
	}
	orders := []domain.Order{
		{Total: 10, CreatedAt: day(0, 9)},
		{Total: 15, CreatedAt: day(0, 20)},
		{Total: 40, CreatedAt: day(-3, 13)},
		{Total: 99, CreatedAt: day(-7, 5)}, // за пределами окна
	}

	stats := ComputeDashboardStats(nil, orders, now)
	if len(stats.SalesByDay) != 7 {
		t.Fatalf("expected 7 points, got %d", len(stats.SalesByDay))
	}
	// старые дни первыми, сегодня последним
	if stats.SalesByDay[6].Date != "2026-08-28" {
		t.Fatalf("last point should be today, got %s", stats.SalesByDay[6].Date)
	}
	if stats.SalesByDay[6].Total != 25 {
		t.Fatalf("today total expected 25, got %d", stats.SalesByDay[6].Total)
	}
	if stats.SalesByDay[3].Total != 40 {
		t.Fatalf("day -3 total expected 40, got %d", stats.SalesByDay[3].Total)
	}
	for i, p := range stats.SalesByDay {
		if i == 3 || i == 6 {
			continue
		}
		if p.Total != 0 {
			t.Fatalf("day %s expected 0, got %d", p.Date, p.Total)
		}
	}
}

func TestComputeDashboardStats_RecentOrdersCap(t *testing.T) {
	orders := make([]domain.Order, 0, 12)
	for i := 0; i < 12; i++ {
		orders = append(orders, domain.Order{ID: string(rune('a' + i)), Total: 1})
	}
	stats := ComputeDashboardStats(nil, orders, time.Now())
	if len(stats.RecentOrders) != 10 {
		t.Fatalf("recent orders expected 10, got %d", len(stats.RecentOrders))
	}
	if stats.RecentOrders[0].ID != "a" {
		t.Fatalf("recent orders should keep fetch order")
	}
}
