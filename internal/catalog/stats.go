package catalog

import (
	"time"

	"thattukada/internal/domain"
)

// SalesPoint дневная выручка для графика
type SalesPoint struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Total int64  `json:"total"`
}

// DashboardStats сводка для админской панели
type DashboardStats struct {
	TotalRevenue  int64          `json:"total_revenue"`
	TodayOrders   int            `json:"today_orders"`
	TotalProducts int            `json:"total_products"`
	LowStockCount int            `json:"low_stock_count"`
	SalesByDay    []SalesPoint   `json:"sales_by_day"`
	RecentOrders  []domain.Order `json:"recent_orders"`
}

// ComputeDashboardStats чистая свёртка по результатам двух fetch-ей.
// Сутки считаются от локальной полуночи now; график — 7 точек,
// старые первыми, сегодняшняя последней.
func ComputeDashboardStats(products []domain.Product, orders []domain.Order, now time.Time) DashboardStats {
	todayStart := midnight(now)

	stats := DashboardStats{
		TotalProducts: len(products),
		SalesByDay:    make([]SalesPoint, 0, 7),
	}

	for _, o := range orders {
		stats.TotalRevenue += o.Total
		if !o.CreatedAt.Before(todayStart) {
			stats.TodayOrders++
		}
	}

	for _, p := range products {
		if p.Stock > 0 && p.Stock < 10 {
			stats.LowStockCount++
		}
	}

	for i := 6; i >= 0; i-- {
		dayStart := todayStart.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)
		var total int64
		for _, o := range orders {
			if !o.CreatedAt.Before(dayStart) && o.CreatedAt.Before(dayEnd) {
				total += o.Total
			}
		}
		stats.SalesByDay = append(stats.SalesByDay, SalesPoint{
			Date:  dayStart.Format("2006-01-02"),
			Day:   dayStart.Format("Mon"),
			Total: total,
		})
	}

	recent := orders
	if len(recent) > 10 {
		recent = recent[:10]
	}
	stats.RecentOrders = append([]domain.Order{}, recent...)

	return stats
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
