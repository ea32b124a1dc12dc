// Package dto defines data transfer objects for the orders feature's HTTP transport layer.
package dto

// OrderItemReq is one line item in an order creation request.
// Price is the unit-price snapshot supplied by the caller; a pointer so an
// explicit 0 passes the required check.
type OrderItemReq struct {
	ProductID uint     `json:"product_id" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,gt=0"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
}

// CreateOrderReq represents the request body for POST /api/orders.
// UserID is optional (guest checkout).
type CreateOrderReq struct {
	UserID          *uint          `json:"user_id"`
	ShippingAddress string         `json:"shipping_address"`
	Total           *float64       `json:"total" binding:"required,gte=0"`
	Items           []OrderItemReq `json:"items" binding:"required,min=1,dive"`
}
