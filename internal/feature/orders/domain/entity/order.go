// Package entity defines the domain entities for the orders feature.
package entity

import "time"

// Order statuses as managed from the admin side.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Payment statuses reflecting the payment-gateway outcome.
const (
	PaymentPending = "pending"
	PaymentCreated = "created"
	PaymentFailed  = "failed"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order represents a purchase transaction.
// It exclusively owns its Items; they are created in the same transaction
// and never mutated independently.
type Order struct {
	// ID is the unique identifier for the order.
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user. Nil for guest checkout.
	UserID *uint `gorm:"index"`

	// Number is the human-readable order number, distinct from ID.
	// It must be globally unique.
	Number string `gorm:"column:order_number;size:30;uniqueIndex;not null"`

	// Status is the fulfilment status, one of the Status* constants.
	Status string `gorm:"size:20;default:processing"`

	// Total is the order total as confirmed at creation time.
	Total float64 `gorm:"not null"`

	// ShippingAddress is free-text shipping information.
	ShippingAddress string `gorm:"type:text"`

	// TrackingNumber is set by the admin side once the order ships.
	TrackingNumber string `gorm:"size:50"`

	// PaymentID is the payment-gateway reference, empty until a payment exists.
	PaymentID string `gorm:"size:100"`

	// PaymentStatus is one of the Payment* constants.
	PaymentStatus string `gorm:"size:20;default:pending"`

	// CreatedAt is the timestamp when the order was placed.
	CreatedAt time.Time

	// Items are the line items belonging to this order.
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is one line within an order.
// Price is a snapshot of the unit price at purchase time and is
// intentionally decoupled from the live Product.Price.
type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index;not null"`
	ProductID uint `gorm:"not null"`

	// Quantity is the number of units ordered, always positive.
	Quantity int `gorm:"not null"`

	// Price is the unit price at purchase time.
	Price float64 `gorm:"not null"`

	// ProductName is resolved at read time from the catalog and is not
	// persisted. A placeholder is used when the product no longer exists.
	ProductName string `gorm:"-"`
}
