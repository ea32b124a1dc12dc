// Package dto defines data transfer objects for the admin feature's HTTP transport layer.
package dto

import "shop_backend/internal/feature/admin/domain/entity"

// ProductSalesItem is one row of the popular-products ranking.
type ProductSalesItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitsSold int64  `json:"units_sold"`
}

// StatsResponse is the JSON body for GET /api/admin/stats.
type StatsResponse struct {
	Products      int64              `json:"products"`
	Orders        int64              `json:"orders"`
	Users         int64              `json:"users"`
	Revenue       float64            `json:"revenue"`
	PendingOrders int64              `json:"pending_orders"`
	TopProducts   []ProductSalesItem `json:"top_products"`
}

// NewStatsResponse converts dashboard stats into their JSON representation.
func NewStatsResponse(s *entity.DashboardStats) StatsResponse {
	res := StatsResponse{
		Products:      s.Products,
		Orders:        s.Orders,
		Users:         s.Users,
		Revenue:       s.Revenue,
		PendingOrders: s.PendingOrders,
	}
	for _, p := range s.TopProducts {
		res.TopProducts = append(res.TopProducts, ProductSalesItem{
			ProductID: p.ProductID,
			Name:      p.Name,
			UnitsSold: p.UnitsSold,
		})
	}
	return res
}
