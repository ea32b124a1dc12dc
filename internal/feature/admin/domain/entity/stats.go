// Package entity defines the domain models for the admin feature.
package entity

// ProductSales is one row of the popular-products ranking.
type ProductSales struct {
	ProductID uint
	Name      string
	UnitsSold int64
}

// DashboardStats aggregates the figures shown on the admin dashboard.
type DashboardStats struct {
	Products      int64
	Orders        int64
	Users         int64
	Revenue       float64
	PendingOrders int64
	TopProducts   []ProductSales
}
