// Package entity defines the domain entities for the catalog feature.
package entity

// Product represents a sellable item in the catalog.
// Price and Stock must never be negative; the usecase layer validates
// writes and the order subsystem snapshots Price onto line items.
type Product struct {
	// ID is the unique identifier for the product.
	ID uint `gorm:"primaryKey"`

	// Name is the display name of the product.
	Name string `gorm:"size:100;not null"`

	// Price is the current unit price.
	Price float64 `gorm:"not null"`

	// Description is free-form marketing copy.
	Description string `gorm:"type:text"`

	// Category groups the product in the storefront (bath, gemstone, tealight, trees).
	Category string `gorm:"size:50"`

	// Image is the path or URL of the product image, managed by an external upload service.
	Image string `gorm:"size:200"`

	// Rating is the average review rating.
	Rating float64 `gorm:"default:0"`

	// Featured marks the product for the storefront's featured section.
	Featured bool `gorm:"default:false"`

	// Stock is the number of units available. The creation default is
	// applied at the transport edge so an explicit 0 is stored as 0.
	Stock int `gorm:"not null"`

	Benefits    string `gorm:"type:text"`
	Ingredients string `gorm:"type:text"`
	Size        string `gorm:"size:50"`
	Color       string `gorm:"size:50"`

	// Reviews is the number of reviews behind Rating.
	Reviews int `gorm:"default:0"`
}
