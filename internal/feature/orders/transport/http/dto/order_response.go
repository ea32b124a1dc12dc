// Package dto はordersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "shop_backend/internal/feature/orders/domain/entity"

// timeLayout は注文のcreated_atの表示形式です。
const timeLayout = "2006-01-02 15:04:05"

// OrderItemResponse は注文明細1行のJSON表現です。
// ProductNameは読み取り時に解決され、削除済み商品にはプレースホルダが入ります。
type OrderItemResponse struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderResponse は注文1件のJSON表現です。
type OrderResponse struct {
	ID              uint                `json:"id"`
	UserID          *uint               `json:"user_id,omitempty"`
	OrderNumber     string              `json:"order_number"`
	Status          string              `json:"status"`
	Total           float64             `json:"total"`
	CreatedAt       string              `json:"created_at"`
	ShippingAddress string              `json:"shipping_address"`
	TrackingNumber  string              `json:"tracking_number,omitempty"`
	PaymentID       string              `json:"payment_id,omitempty"`
	PaymentStatus   string              `json:"payment_status"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

// NewOrderResponse はエンティティからOrderResponseを生成します。
func NewOrderResponse(o *entity.Order) OrderResponse {
	res := OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		OrderNumber:     o.Number,
		Status:          o.Status,
		Total:           o.Total,
		CreatedAt:       o.CreatedAt.Format(timeLayout),
		ShippingAddress: o.ShippingAddress,
		TrackingNumber:  o.TrackingNumber,
		PaymentID:       o.PaymentID,
		PaymentStatus:   o.PaymentStatus,
	}
	for _, it := range o.Items {
		res.Items = append(res.Items, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return res
}
